package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Quest errors
	ErrMsgNoActiveQuest   = "no active quest"
	ErrMsgInvalidLocation = "invalid location"

	// Save errors
	ErrMsgEmptySaveSlot = "save slot is empty"

	// Persistence errors
	ErrMsgPersistenceRead  = "failed to read persisted game state"
	ErrMsgPersistenceWrite = "failed to write game state"
	ErrMsgBlobNotFound     = "blob not found"

	// Wardrobe errors
	ErrMsgItemNotOwned = "item not owned"

	// Shop errors
	ErrMsgShopLocked        = "shop is locked"
	ErrMsgShopItemNotFound  = "shop item not found"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadyOwned      = "item already owned"

	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNoActiveQuest   = errors.New(ErrMsgNoActiveQuest)
	ErrInvalidLocation = errors.New(ErrMsgInvalidLocation)

	ErrEmptySaveSlot = errors.New(ErrMsgEmptySaveSlot)

	ErrPersistenceRead  = errors.New(ErrMsgPersistenceRead)
	ErrPersistenceWrite = errors.New(ErrMsgPersistenceWrite)
	ErrBlobNotFound     = errors.New(ErrMsgBlobNotFound)

	ErrItemNotOwned = errors.New(ErrMsgItemNotOwned)

	ErrShopLocked        = errors.New(ErrMsgShopLocked)
	ErrShopItemNotFound  = errors.New(ErrMsgShopItemNotFound)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadyOwned      = errors.New(ErrMsgAlreadyOwned)

	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// PurchaseError converts a failed purchase outcome into the matching sentinel.
// Returns nil for a completed purchase.
func PurchaseError(o PurchaseOutcome) error {
	switch o {
	case PurchaseCompleted:
		return nil
	case PurchaseInsufficientFunds:
		return ErrInsufficientFunds
	case PurchaseAlreadyOwned:
		return ErrAlreadyOwned
	default:
		return ErrInvalidInput
	}
}
