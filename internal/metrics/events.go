package metrics

import (
	"context"

	"github.com/questward/craftforge/internal/event"
	"github.com/questward/craftforge/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemCrafted,
		event.PlayerLeveledUp,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemCrafted:
		payload, ok := evt.Payload.(event.ItemCraftedPayloadV1)
		if !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		XPAwarded.Add(float64(payload.XPGained))

	case event.PlayerLeveledUp:
		if _, ok := evt.Payload.(event.PlayerLeveledUpPayloadV1); !ok {
			log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
			return nil
		}
		LevelUps.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
