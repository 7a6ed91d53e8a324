package content

// Embedded schema name used with the schema validator
const SchemaName = "content.schema.json"

// DefaultShopUnlockThreshold is the completed-task count that opens the shop
const DefaultShopUnlockThreshold = 5

// Error messages
const (
	ErrMsgReadContentFailed  = "failed to read content file %s: %w"
	ErrMsgParseContentFailed = "failed to parse content: %w"
	ErrMsgNoLocations        = "content must define at least one location"
	ErrMsgNoQuestsFmt        = "location %q has no quests"
	ErrMsgNegativeRewardFmt  = "location %q has negative rewards"
	ErrMsgEmptyKey           = "empty key"
	ErrMsgNegativeCostFmt    = "shop item %q has negative cost"
	ErrMsgUnknownShopSlotFmt = "shop item %q uses slot %q which is not in the wardrobe"
	ErrMsgNegativeThreshold  = "shop unlock threshold must not be negative"
)

// Log messages
const (
	LogMsgContentLoaded = "Content table loaded"
)
