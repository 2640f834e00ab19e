package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/event"
	"github.com/osse101/IdleSect_Go/internal/logger"
	"github.com/osse101/IdleSect_Go/internal/metrics"
	"github.com/osse101/IdleSect_Go/internal/repository"
)

// Service is the single gate in front of every reward credit. Any code path
// that grants a reward must route through TryClaim or TryClaimAndCredit
// before touching player currency.
type Service interface {
	// TryClaim records a claim for (user, source kind, key).
	// Returns ClaimAlreadyClaimed without mutation when a grant exists.
	TryClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (domain.ClaimOutcome, error)

	// TryClaimAndCredit atomically records the claim and credits the reward
	// in one transaction, claim first. On ClaimAlreadyClaimed nothing is
	// credited and the returned state is nil.
	TryClaimAndCredit(ctx context.Context, userID string, kind domain.SourceKind, key string, reward domain.ResourceDelta) (domain.ClaimOutcome, *domain.PlayerState, error)

	// HasClaim reports whether a claim record exists
	HasClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (bool, error)

	// Claims lists all claim records for a user and source kind
	Claims(ctx context.Context, userID string, kind domain.SourceKind) ([]domain.ClaimRecord, error)
}

type service struct {
	repo repository.Ledger
	bus  event.Bus
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) TryClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (domain.ClaimOutcome, error) {
	if !domain.IsValidSourceKind(kind) {
		return "", fmt.Errorf("%w: source kind %q", domain.ErrInvalidInput, kind)
	}

	won, err := s.repo.TryInsertClaim(ctx, userID, kind, key, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("failed to insert claim: %w", err)
	}

	return s.finish(ctx, userID, kind, key, won), nil
}

func (s *service) TryClaimAndCredit(ctx context.Context, userID string, kind domain.SourceKind, key string, reward domain.ResourceDelta) (domain.ClaimOutcome, *domain.PlayerState, error) {
	if !domain.IsValidSourceKind(kind) {
		return "", nil, fmt.Errorf("%w: source kind %q", domain.ErrInvalidInput, kind)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin claim transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	won, err := tx.TryInsertClaim(ctx, userID, kind, key, time.Now().UTC())
	if err != nil {
		return "", nil, fmt.Errorf("failed to insert claim: %w", err)
	}

	if !won {
		return s.finish(ctx, userID, kind, key, false), nil, nil
	}

	state, err := tx.ApplyDelta(ctx, userID, reward)
	if err != nil {
		return "", nil, fmt.Errorf("failed to credit reward: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return s.finish(ctx, userID, kind, key, true), state, nil
}

// finish records metrics, publishes the claim event and returns the outcome
func (s *service) finish(ctx context.Context, userID string, kind domain.SourceKind, key string, won bool) domain.ClaimOutcome {
	log := logger.FromContext(ctx)

	outcome := domain.ClaimAlreadyClaimed
	evtType := event.ClaimDuplicate
	if won {
		outcome = domain.ClaimGranted
		evtType = event.ClaimGranted
	}

	metrics.Claims.WithLabelValues(string(kind), string(outcome)).Inc()

	if s.bus != nil {
		evt := event.NewClaimGrantedEvent(userID, string(kind), key)
		evt.Type = evtType
		if err := s.bus.Publish(ctx, evt); err != nil {
			log.Warn("Failed to publish claim event", "error", err, "kind", kind, "key", key)
		}
	}

	log.Info("Claim resolved", "user_id", userID, "kind", kind, "key", key, "outcome", outcome)
	return outcome
}

func (s *service) HasClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (bool, error) {
	return s.repo.HasClaim(ctx, userID, kind, key)
}

func (s *service) Claims(ctx context.Context, userID string, kind domain.SourceKind) ([]domain.ClaimRecord, error) {
	return s.repo.ListClaims(ctx, userID, kind)
}
