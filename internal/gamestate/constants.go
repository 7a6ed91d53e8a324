package gamestate

// Serialized field names of a GameRecord
const (
	fieldXP             = "xp"
	fieldCoins          = "coins"
	fieldCompletedTasks = "completedTasks"
	fieldLevel          = "level"
	fieldAvatar         = "avatar"
	fieldInventory      = "inventory"
	fieldSaveSlots      = "saveSlots"
	fieldLastSave       = "lastSave"
)

// Persistence operations, used in logs and events
const (
	OpLoad = "load"
	OpSave = "save"
)

// Log messages
const (
	LogMsgStateInitialized   = "Game state initialized"
	LogMsgStateDefaulted     = "No stored game state, starting fresh"
	LogMsgStateReadFailed    = "Stored game state unreadable, starting fresh"
	LogMsgFieldFallback      = "Stored game state field invalid, using default"
	LogMsgPersistFailed      = "Failed to persist game state"
	LogMsgQuestRequested     = "Quest requested"
	LogMsgQuestAbandoned     = "Active quest abandoned"
	LogMsgQuestCompleted     = "Quest completed"
	LogMsgPurchaseDenied     = "Purchase denied"
	LogMsgPurchaseCompleted  = "Purchase completed"
	LogMsgItemEquipped       = "Item equipped"
	LogMsgGameSaved          = "Game saved"
	LogMsgGameLoaded         = "Game loaded"
	LogMsgLoadEmptySlot      = "Load requested for empty save slot"
	LogMsgEventPublishFailed = "Failed to publish game event"
)

// Error messages
const (
	ErrMsgNullBlob       = "stored blob is null"
	ErrMsgFieldFormat    = "field %s: %w"
	ErrMsgEmptyAvatarKey = "avatar slot and item are required"
)
