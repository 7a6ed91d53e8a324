package domain

// Rewards is the XP and coin payout of a quest
type Rewards struct {
	XP    int `json:"xp"`
	Coins int `json:"coins"`
}

// Quest is a transient task handed out at a location. It is never persisted.
type Quest struct {
	Text     string  `json:"text"`
	Location string  `json:"location"`
	Rewards  Rewards `json:"rewards"`
}

// Location is one entry of the content table
type Location struct {
	Key     string   `json:"key"`
	Name    string   `json:"name"`
	Rewards Rewards  `json:"rewards"`
	Quests  []string `json:"quests"`
}

// ShopItem is a cosmetic offered in the shop
type ShopItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slot string `json:"slot"` // inventory slot, e.g. "shirts"
	Item string `json:"item"`
	Cost int    `json:"cost"`
}

// WardrobeSlot maps an avatar slot to the inventory slot holding its items
type WardrobeSlot struct {
	AvatarSlot    string `json:"avatar_slot"`
	InventorySlot string `json:"inventory_slot"`
}
