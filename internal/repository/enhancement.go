package repository

import (
	"context"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Enhancement defines the interface for enhancement target persistence
type Enhancement interface {
	// GetTarget returns a target, or domain.ErrTargetNotFound
	GetTarget(ctx context.Context, userID, itemID string) (*domain.EnhancementTarget, error)

	// UpsertTarget creates or replaces a target definition
	UpsertTarget(ctx context.Context, target *domain.EnhancementTarget) error

	BeginTx(ctx context.Context) (Tx, error)
}
