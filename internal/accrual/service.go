package accrual

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/event"
	"github.com/osse101/IdleSect_Go/internal/logger"
	"github.com/osse101/IdleSect_Go/internal/metrics"
	"github.com/osse101/IdleSect_Go/internal/notify"
	"github.com/osse101/IdleSect_Go/internal/repository"
	"github.com/osse101/IdleSect_Go/internal/utils"
)

// Outcome classifies a session resolve attempt
type Outcome string

const (
	// OutcomeClaimed means rewards were credited and the session is gone
	OutcomeClaimed Outcome = "claimed"
	// OutcomeSessionTooShort means the session stays active and accruing
	OutcomeSessionTooShort Outcome = "session_too_short"
	// OutcomeAlreadyClaimed means a claim record already existed for the
	// session; the stale session row is removed without crediting.
	OutcomeAlreadyClaimed Outcome = "already_claimed"
)

// ClaimResult describes a resolve or preview of an offline session
type ClaimResult struct {
	Outcome      Outcome              `json:"outcome"`
	SessionID    uuid.UUID            `json:"session_id"`
	ElapsedHours float64              `json:"elapsed_hours"`
	Reward       domain.ResourceDelta `json:"reward"`
	State        *domain.PlayerState  `json:"state,omitempty"`
}

// RatesConfig is the JSON shape of the offline rates file
type RatesConfig struct {
	Rates        domain.AccrualRates `json:"rates"`
	TreasurePool []string            `json:"treasure_pool"`
}

// Service manages offline cultivation sessions
type Service interface {
	// StartSession begins idle accrual for a player.
	// Fails with domain.ErrSessionAlreadyActive when one is running.
	StartSession(ctx context.Context, userID string, speedMultiplierPercent int) (*domain.OfflineSession, error)

	// PreviewSession evaluates the active session without resolving it
	PreviewSession(ctx context.Context, userID string) (*ClaimResult, error)

	// ClaimSession resolves the active session: claim ledger entry first,
	// then credit, then delete the session. Terminal on success.
	ClaimSession(ctx context.Context, userID string) (*ClaimResult, error)
}

type service struct {
	repo  repository.Session
	bus   event.Bus
	sink  notify.Sink
	rng   utils.Source
	rates domain.AccrualRates
	pool  []string
}

// NewService creates a new accrual service, loading rates from configPath
func NewService(repo repository.Session, bus event.Bus, sink notify.Sink, rng utils.Source, configPath string) (Service, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read offline rates file: %w", err)
	}

	var cfg RatesConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse offline rates file: %w", err)
	}

	return &service{
		repo:  repo,
		bus:   bus,
		sink:  sink,
		rng:   rng,
		rates: cfg.Rates,
		pool:  cfg.TreasurePool,
	}, nil
}

func (s *service) StartSession(ctx context.Context, userID string, speedMultiplierPercent int) (*domain.OfflineSession, error) {
	log := logger.FromContext(ctx)

	if speedMultiplierPercent < 0 {
		return nil, fmt.Errorf("%w: speed multiplier must be non-negative", domain.ErrInvalidInput)
	}
	if speedMultiplierPercent == 0 {
		speedMultiplierPercent = BaselineSpeedPercent
	}

	existing, err := s.repo.GetActiveSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrSessionAlreadyActive
	}

	session := &domain.OfflineSession{
		ID:                     uuid.New(),
		UserID:                 userID,
		StartedAt:              time.Now().UTC(),
		Rates:                  s.rates,
		SpeedMultiplierPercent: speedMultiplierPercent,
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.OfflineStarted,
		Payload: map[string]interface{}{
			"user_id":    userID,
			"session_id": session.ID.String(),
		},
	})

	log.Info("Offline session started", "user_id", userID, "session_id", session.ID, "multiplier", speedMultiplierPercent)
	return session, nil
}

func (s *service) PreviewSession(ctx context.Context, userID string) (*ClaimResult, error) {
	session, err := s.repo.GetActiveSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}

	result := Compute(session, time.Now().UTC())
	claim := &ClaimResult{
		Outcome:      OutcomeSessionTooShort,
		SessionID:    session.ID,
		ElapsedHours: result.ElapsedHours,
	}
	if result.Eligible {
		claim.Outcome = OutcomeClaimed
		claim.Reward = result.Reward
	}
	return claim, nil
}

func (s *service) ClaimSession(ctx context.Context, userID string) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	session, err := s.repo.GetActiveSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrNoActiveSession
	}

	result := Compute(session, time.Now().UTC())
	if !result.Eligible {
		// Too short to resolve. No claim record, session keeps accruing.
		log.Info("Offline session too short to claim", "user_id", userID, "elapsed_hours", result.ElapsedHours)
		return &ClaimResult{
			Outcome:      OutcomeSessionTooShort,
			SessionID:    session.ID,
			ElapsedHours: result.ElapsedHours,
		}, nil
	}

	reward := result.Reward
	reward.Treasures = s.drawTreasures(result.TreasureCount)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	won, err := tx.TryInsertClaim(ctx, userID, domain.SourceOfflineSession, session.ID.String(), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to insert claim: %w", err)
	}

	if !won {
		// A prior resolve claimed this session but its row survived.
		// Remove the stale session; credit nothing.
		if err := tx.DeleteOfflineSession(ctx, session.ID); err != nil {
			return nil, fmt.Errorf("failed to delete stale session: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit stale session cleanup: %w", err)
		}
		metrics.Claims.WithLabelValues(string(domain.SourceOfflineSession), string(domain.ClaimAlreadyClaimed)).Inc()
		log.Warn("Offline session was already claimed", "user_id", userID, "session_id", session.ID)
		return &ClaimResult{
			Outcome:      OutcomeAlreadyClaimed,
			SessionID:    session.ID,
			ElapsedHours: result.ElapsedHours,
		}, nil
	}

	state, err := tx.ApplyDelta(ctx, userID, reward)
	if err != nil {
		return nil, fmt.Errorf("failed to credit accrual reward: %w", err)
	}

	if err := tx.DeleteOfflineSession(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	metrics.Claims.WithLabelValues(string(domain.SourceOfflineSession), string(domain.ClaimGranted)).Inc()
	metrics.OfflineSessionsResolved.Inc()
	metrics.OfflineHoursAccrued.Observe(result.ElapsedHours)

	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.OfflineClaimed,
		Payload: event.OfflineClaimedPayloadV1{
			UserID:        userID,
			SessionID:     session.ID.String(),
			ElapsedHours:  result.ElapsedHours,
			Experience:    reward.Experience,
			SpiritStone:   reward.Currencies[domain.CurrencySpiritStone],
			Primary:       reward.Currencies[domain.CurrencyPrimary],
			TreasureCount: len(reward.Treasures),
		},
	})

	if s.sink != nil {
		s.sink.Notify(ctx, userID, notify.FormatOfflineReward(result.ElapsedHours, reward), notify.SeveritySuccess)
	}

	log.Info("Offline session claimed",
		"user_id", userID,
		"session_id", session.ID,
		"elapsed_hours", result.ElapsedHours,
		"treasures", len(reward.Treasures),
	)

	return &ClaimResult{
		Outcome:      OutcomeClaimed,
		SessionID:    session.ID,
		ElapsedHours: result.ElapsedHours,
		Reward:       reward,
		State:        state,
	}, nil
}

// drawTreasures picks count random treasures from the configured pool
func (s *service) drawTreasures(count int) []string {
	if count <= 0 || len(s.pool) == 0 {
		return nil
	}
	treasures := make([]string, 0, count)
	for i := 0; i < count; i++ {
		treasures = append(treasures, s.pool[utils.RandomInt(s.rng, 0, len(s.pool)-1)])
	}
	return treasures
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish accrual event", "error", err, "type", evt.Type)
	}
}
