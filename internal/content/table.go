package content

import "github.com/osse101/QuestTown_Go/internal/domain"

// Version returns the document version string
func (t *Table) Version() string {
	return t.version
}

// Location looks up a location by key
func (t *Table) Location(key string) (domain.Location, bool) {
	idx, ok := t.locationIndex[key]
	if !ok {
		return domain.Location{}, false
	}
	loc := t.locations[idx]
	loc.Quests = append([]string(nil), loc.Quests...)
	return loc, true
}

// Locations returns all locations in document order
func (t *Table) Locations() []domain.Location {
	out := make([]domain.Location, len(t.locations))
	for i, loc := range t.locations {
		loc.Quests = append([]string(nil), loc.Quests...)
		out[i] = loc
	}
	return out
}

// LocationKeys returns location keys in document order
func (t *Table) LocationKeys() []string {
	keys := make([]string, len(t.locations))
	for i, loc := range t.locations {
		keys[i] = loc.Key
	}
	return keys
}

// Shop returns the shop catalog in document order
func (t *Table) Shop() []domain.ShopItem {
	return append([]domain.ShopItem(nil), t.shop...)
}

// ShopItem looks up a catalog entry by id
func (t *Table) ShopItem(id string) (domain.ShopItem, bool) {
	idx, ok := t.shopIndex[id]
	if !ok {
		return domain.ShopItem{}, false
	}
	return t.shop[idx], true
}

// UnlockThreshold is the number of completed tasks that opens the shop
func (t *Table) UnlockThreshold() int {
	return t.unlockThreshold
}

// ShopUnlocked reports whether a player with completedTasks may use the shop
func (t *Table) ShopUnlocked(completedTasks int) bool {
	return completedTasks >= t.unlockThreshold
}

// Wardrobe returns the avatar/inventory slot mapping
func (t *Table) Wardrobe() []domain.WardrobeSlot {
	return append([]domain.WardrobeSlot(nil), t.wardrobe...)
}

// InventorySlotFor maps an avatar slot to its inventory slot.
// Unmapped slots map to themselves.
func (t *Table) InventorySlotFor(avatarSlot string) string {
	for _, w := range t.wardrobe {
		if w.AvatarSlot == avatarSlot {
			return w.InventorySlot
		}
	}
	return avatarSlot
}

// AvatarSlotFor maps an inventory slot back to its avatar slot.
// Unmapped slots map to themselves.
func (t *Table) AvatarSlotFor(inventorySlot string) string {
	for _, w := range t.wardrobe {
		if w.InventorySlot == inventorySlot {
			return w.AvatarSlot
		}
	}
	return inventorySlot
}

// SaveSlotIDs returns the save slot ids offered to players
func (t *Table) SaveSlotIDs() []string {
	return append([]string(nil), t.saveSlots...)
}
