package eventlog

import (
	"context"
	"encoding/json"

	"github.com/osse101/IdleSect_Go/internal/event"
	"github.com/osse101/IdleSect_Go/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all engine events
	Subscribe(bus event.Bus)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all engine event types
func (s *service) Subscribe(bus event.Bus) {
	eventTypes := []event.Type{
		event.ClaimGranted,
		event.ClaimDuplicate,
		event.OfflineStarted,
		event.OfflineClaimed,
		event.EnhancementResolved,
		event.FusionCompleted,
		event.LoginRecorded,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
}

// handleEvent persists one event. Typed payloads are flattened to a map via
// their JSON form so the log schema stays uniform.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := payloadAsMap(evt.Payload)
	if err != nil {
		log.Debug("Event payload not serializable, skipping log", "type", evt.Type, "error", err)
		return nil
	}

	var userID *string
	if uid, ok := payload["user_id"].(string); ok {
		userID = &uid
	}

	var metadata map[string]interface{}
	if m, ok := evt.Metadata.(map[string]interface{}); ok {
		metadata = m
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error("Failed to log event to database", "error", err, "type", evt.Type)
		return err
	}

	log.Debug("Event logged to database", "type", evt.Type, "user_id", userID)
	return nil
}

func payloadAsMap(payload interface{}) (map[string]interface{}, error) {
	if m, ok := payload.(map[string]interface{}); ok {
		return m, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
