package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPathParam      = "Invalid %s path parameter"

	ErrMsgCreatePlayerFailed = "Failed to create player"
	ErrMsgGetPlayerFailed    = "Failed to load player"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundError  = "Player not found"
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgInvalidLocationError = "That location does not exist"
	ErrMsgNoActiveQuestError   = "You have no active quest. Request one first."
	ErrMsgShopLockedError      = "The shop is locked. Complete more quests to unlock it."
	ErrMsgShopItemNotFoundErr  = "That item is not sold here"
	ErrMsgNotEnoughCoinsError  = "Not enough coins"
	ErrMsgAlreadyOwnedError    = "You already own that item"
	ErrMsgItemNotOwnedError    = "You don't own that item"
)

// Success messages for API responses
const (
	MsgGameSaved       = "Game saved"
	MsgGameLoaded      = "Game loaded"
	MsgEmptySlot       = "That save slot is empty"
	MsgPurchaseDone    = "Purchase complete"
	MsgPurchaseSkipped = "Purchase not made"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgServiceError      = "Request failed"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgPlayerCreated     = "Player created"
	LogMsgPathParamRejected = "Path parameter rejected"
)

// Path parameter names
const (
	ParamPlayerID = "playerID"
	ParamSlotID   = "slotID"
)
