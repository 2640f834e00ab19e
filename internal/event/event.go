package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleSect_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Event schema version for all events emitted by this service
const EventSchemaVersion = "1.0"

// Event types emitted by the progression engine
const (
	ClaimGranted        Type = "claim.granted"
	ClaimDuplicate      Type = "claim.duplicate"
	OfflineStarted      Type = "offline.session_started"
	OfflineClaimed      Type = "offline.session_claimed"
	EnhancementResolved Type = "enhancement.resolved"
	FusionCompleted     Type = "fusion.completed"
	LoginRecorded       Type = "login.recorded"
)

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata interface{} `json:"metadata"`
}

// ClaimGrantedPayloadV1 is the typed payload for claim events
type ClaimGrantedPayloadV1 struct {
	UserID     string `json:"user_id"`
	SourceKind string `json:"source_kind"`
	Key        string `json:"key"`
	Timestamp  int64  `json:"timestamp"`
}

// OfflineClaimedPayloadV1 is the typed payload for resolved offline sessions
type OfflineClaimedPayloadV1 struct {
	UserID        string  `json:"user_id"`
	SessionID     string  `json:"session_id"`
	ElapsedHours  float64 `json:"elapsed_hours"`
	Experience    int64   `json:"experience"`
	SpiritStone   int64   `json:"spirit_stone"`
	Primary       int64   `json:"primary"`
	TreasureCount int     `json:"treasure_count"`
}

// EnhancementResolvedPayloadV1 is the typed payload for enhancement attempts
type EnhancementResolvedPayloadV1 struct {
	UserID        string  `json:"user_id"`
	ItemID        string  `json:"item_id"`
	Outcome       string  `json:"outcome"`
	ChancePercent int     `json:"chance_percent"`
	Roll          float64 `json:"roll"`
	Tier          int     `json:"tier"`
}

// FusionCompletedPayloadV1 is the typed payload for completed fusions
type FusionCompletedPayloadV1 struct {
	UserID    string `json:"user_id"`
	RecipeKey string `json:"recipe_key"`
	Produced  string `json:"produced"`
	Count     int64  `json:"count"`
}

// NewClaimGrantedEvent creates a claim granted event with a type-safe payload
func NewClaimGrantedEvent(userID, sourceKind, key string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ClaimGranted,
		Payload: ClaimGrantedPayloadV1{
			UserID:     userID,
			SourceKind: sourceKind,
			Key:        key,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewEnhancementResolvedEvent creates an enhancement resolved event
func NewEnhancementResolvedEvent(userID, itemID, outcome string, chance int, roll float64, tier int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EnhancementResolved,
		Payload: EnhancementResolvedPayloadV1{
			UserID:        userID,
			ItemID:        itemID,
			Outcome:       outcome,
			ChancePercent: chance,
			Roll:          roll,
			Tier:          tier,
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

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler(s) failed for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
