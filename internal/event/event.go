package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	ItemCrafted     Type = "item.crafted"
	PlayerLeveledUp Type = "player.leveled_up"
)

// Typed event payloads for type safety

// ItemCraftedPayloadV1 is the typed payload for item crafted events
type ItemCraftedPayloadV1 struct {
	UserID    string `json:"user_id"`
	RecipeID  string `json:"recipe_id"`
	ItemID    string `json:"item_id"`
	Quantity  int    `json:"quantity"`
	XPGained  int    `json:"xp_gained"`
	Timestamp int64  `json:"timestamp"`
}

// PlayerLeveledUpPayloadV1 is the typed payload for player level up events
type PlayerLeveledUpPayloadV1 struct {
	UserID    string `json:"user_id"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Source    string `json:"source,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewItemCraftedEvent creates a new item crafted event with type-safe payload
func NewItemCraftedEvent(userID, recipeID, itemID string, quantity, xpGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemCrafted,
		Payload: ItemCraftedPayloadV1{
			UserID:    userID,
			RecipeID:  recipeID,
			ItemID:    itemID,
			Quantity:  quantity,
			XPGained:  xpGained,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlayerLeveledUpEvent creates a new player level up event
func NewPlayerLeveledUpEvent(userID string, oldLevel, newLevel int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerLeveledUp,
		Payload: PlayerLeveledUpPayloadV1{
			UserID:    userID,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Source:    source,
			Timestamp: time.Now().Unix(),
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

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a worker pool could take over here if
	// handler latency ever becomes a problem.
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
