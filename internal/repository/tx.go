package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Tx defines the interface for transactional operations. Claim insertion and
// currency credit happen inside one transaction, claim first, so a duplicate
// claim can never leave a credit behind.
type Tx interface {
	// TryInsertClaim inserts a claim record if none exists for the
	// (user, source kind, key) tuple. Returns true when the insert won.
	TryInsertClaim(ctx context.Context, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error)

	// ApplyDelta applies a resource delta to the player row and returns the
	// updated state. Safe to call with a zero delta.
	ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error)

	// DeleteOfflineSession removes a resolved session (terminal transition)
	DeleteOfflineSession(ctx context.Context, sessionID uuid.UUID) error

	// UpdateEnhancementTier sets the tier of an enhancement target
	UpdateEnhancementTier(ctx context.Context, userID, itemID string, newTier int) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
