package domain

// Avatar slot keys
const (
	AvatarSlotShirt = "shirt"
	AvatarSlotHair  = "hair"
)

// Inventory slot keys
const (
	InventorySlotShirts = "shirts"
	InventorySlotHair   = "hair"
)

// Default appearance for a fresh record
const (
	DefaultShirt = "red"
	DefaultHair  = "black"
	DefaultLevel = 1
)

// GameRecord is the persisted progress of one player
type GameRecord struct {
	XP             int                      `json:"xp"`
	Coins          int                      `json:"coins"`
	CompletedTasks int                      `json:"completedTasks"`
	Level          int                      `json:"level"`
	Avatar         map[string]string        `json:"avatar"`
	Inventory      map[string][]string      `json:"inventory"`
	SaveSlots      map[string]*SaveSnapshot `json:"saveSlots"`
}

// SaveSnapshot is a frozen copy of a GameRecord captured by a save.
// The record fields are flattened next to lastSave on the wire.
type SaveSnapshot struct {
	GameRecord
	LastSave string `json:"lastSave"`
}

// SaveSlotSummary is the display view of one save slot
type SaveSlotSummary struct {
	SlotID   string `json:"slot_id"`
	Empty    bool   `json:"empty"`
	Level    int    `json:"level,omitempty"`
	XP       int    `json:"xp,omitempty"`
	LastSave string `json:"last_save,omitempty"`
}

// DefaultRecord returns the record a new player starts with
func DefaultRecord() GameRecord {
	return GameRecord{
		XP:             0,
		Coins:          0,
		CompletedTasks: 0,
		Level:          DefaultLevel,
		Avatar:         DefaultAvatar(),
		Inventory:      DefaultInventory(),
		SaveSlots:      map[string]*SaveSnapshot{},
	}
}

// DefaultAvatar returns the starting equipment
func DefaultAvatar() map[string]string {
	return map[string]string{
		AvatarSlotShirt: DefaultShirt,
		AvatarSlotHair:  DefaultHair,
	}
}

// DefaultInventory returns the starting inventory. It always contains the
// default equipped item of every slot.
func DefaultInventory() map[string][]string {
	return map[string][]string{
		InventorySlotShirts: {DefaultShirt},
		InventorySlotHair:   {DefaultHair},
	}
}

// Clone returns a deep copy of the record. Snapshots are shared by pointer;
// they are never mutated after creation.
func (r GameRecord) Clone() GameRecord {
	out := r

	out.Avatar = make(map[string]string, len(r.Avatar))
	for k, v := range r.Avatar {
		out.Avatar[k] = v
	}

	out.Inventory = make(map[string][]string, len(r.Inventory))
	for k, items := range r.Inventory {
		cp := make([]string, len(items))
		copy(cp, items)
		out.Inventory[k] = cp
	}

	out.SaveSlots = make(map[string]*SaveSnapshot, len(r.SaveSlots))
	for k, snap := range r.SaveSlots {
		out.SaveSlots[k] = snap
	}

	return out
}

// Owns reports whether item is in the inventory slot
func (r GameRecord) Owns(inventorySlot, item string) bool {
	for _, owned := range r.Inventory[inventorySlot] {
		if owned == item {
			return true
		}
	}
	return false
}

// Summary returns the display view of a snapshot stored under slotID.
// A nil snapshot yields an empty slot.
func (s *SaveSnapshot) Summary(slotID string) SaveSlotSummary {
	if s == nil {
		return SaveSlotSummary{SlotID: slotID, Empty: true}
	}
	return SaveSlotSummary{
		SlotID:   slotID,
		Level:    s.Level,
		XP:       s.XP,
		LastSave: s.LastSave,
	}
}
