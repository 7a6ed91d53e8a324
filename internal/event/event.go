package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	QuestRequested    Type = "quest.requested"
	QuestCompleted    Type = "quest.completed"
	ItemPurchased     Type = "shop.purchase"
	ItemEquipped      Type = "wardrobe.equipped"
	GameSaved         Type = "save.saved"
	GameLoaded        Type = "save.loaded"
	PersistenceFailed Type = "persistence.failed"
)

// AllTypes lists every game event type
func AllTypes() []Type {
	return []Type{
		QuestRequested,
		QuestCompleted,
		ItemPurchased,
		ItemEquipped,
		GameSaved,
		GameLoaded,
		PersistenceFailed,
	}
}

// QuestPayloadV1 is the typed payload for quest events
type QuestPayloadV1 struct {
	Location string `json:"location"`
	XP       int    `json:"xp"`
	Coins    int    `json:"coins"`
}

// PurchasePayloadV1 is the typed payload for purchase attempts
type PurchasePayloadV1 struct {
	Slot    string `json:"slot"`
	Item    string `json:"item"`
	Cost    int    `json:"cost"`
	Outcome string `json:"outcome"`
}

// EquipPayloadV1 is the typed payload for equip events
type EquipPayloadV1 struct {
	Slot string `json:"slot"`
	Item string `json:"item"`
}

// SavePayloadV1 is the typed payload for save and load events
type SavePayloadV1 struct {
	SlotID string `json:"slot_id"`
	Loaded bool   `json:"loaded,omitempty"`
}

// PersistencePayloadV1 is the typed payload for persistence failures
type PersistencePayloadV1 struct {
	Op    string `json:"op"`
	Error string `json:"error"`
}

// New builds an event for the given player key
func New(t Type, playerKey string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
		Metadata: map[string]interface{}{
			MetadataKeyPlayer: playerKey,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
