package domain

// PurchaseOutcome describes what a purchase attempt did
type PurchaseOutcome int

const (
	PurchaseCompleted PurchaseOutcome = iota
	PurchaseInsufficientFunds
	PurchaseAlreadyOwned
	PurchaseInvalidCost
)

// String returns the label used in logs, metrics and API responses
func (o PurchaseOutcome) String() string {
	switch o {
	case PurchaseCompleted:
		return "completed"
	case PurchaseInsufficientFunds:
		return "insufficient_funds"
	case PurchaseAlreadyOwned:
		return "already_owned"
	case PurchaseInvalidCost:
		return "invalid_cost"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the purchase changed the record
func (o PurchaseOutcome) Succeeded() bool {
	return o == PurchaseCompleted
}

// CheckPurchase applies the purchase guard: enough coins and not yet owned.
// Presentation layers use it to disable affordances; the store enforces it.
func CheckPurchase(r GameRecord, inventorySlot, item string, cost int) PurchaseOutcome {
	if cost < 0 {
		return PurchaseInvalidCost
	}
	if r.Owns(inventorySlot, item) {
		return PurchaseAlreadyOwned
	}
	if r.Coins < cost {
		return PurchaseInsufficientFunds
	}
	return PurchaseCompleted
}
