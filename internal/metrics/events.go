package metrics

import (
	"context"

	"github.com/osse101/QuestTown_Go/internal/domain"
	"github.com/osse101/QuestTown_Go/internal/event"
	"github.com/osse101/QuestTown_Go/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent updates the counters for one event. Payloads that cannot be
// decoded are logged and skipped.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.QuestRequested:
		var p event.QuestPayloadV1
		if p, err = event.DecodePayload[event.QuestPayloadV1](evt.Payload); err == nil {
			QuestsRequested.WithLabelValues(p.Location).Inc()
		}

	case event.QuestCompleted:
		var p event.QuestPayloadV1
		if p, err = event.DecodePayload[event.QuestPayloadV1](evt.Payload); err == nil {
			QuestsCompleted.WithLabelValues(p.Location).Inc()
			XPAwarded.Add(float64(p.XP))
			CoinsEarned.Add(float64(p.Coins))
		}

	case event.ItemPurchased:
		var p event.PurchasePayloadV1
		if p, err = event.DecodePayload[event.PurchasePayloadV1](evt.Payload); err == nil {
			Purchases.WithLabelValues(p.Outcome).Inc()
			if p.Outcome == domain.PurchaseCompleted.String() {
				CoinsSpent.Add(float64(p.Cost))
			}
		}

	case event.ItemEquipped:
		var p event.EquipPayloadV1
		if p, err = event.DecodePayload[event.EquipPayloadV1](evt.Payload); err == nil {
			ItemsEquipped.WithLabelValues(p.Slot).Inc()
		}

	case event.GameSaved:
		GamesSaved.Inc()

	case event.GameLoaded:
		var p event.SavePayloadV1
		if p, err = event.DecodePayload[event.SavePayloadV1](evt.Payload); err == nil {
			result := ResultEmptySlot
			if p.Loaded {
				result = ResultLoaded
			}
			GamesLoaded.WithLabelValues(result).Inc()
		}

	case event.PersistenceFailed:
		var p event.PersistencePayloadV1
		if p, err = event.DecodePayload[event.PersistencePayloadV1](evt.Payload); err == nil {
			PersistenceFailures.WithLabelValues(p.Op).Inc()
		}
	}

	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgPayloadDecodeFailed,
			"type", evt.Type, "player", evt.GetMetadataValue(event.MetadataKeyPlayer), "error", err)
	}
	return nil
}
