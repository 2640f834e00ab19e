package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Player defines the interface for player state persistence
type Player interface {
	// GetPlayer returns the player state, or domain.ErrPlayerNotFound
	GetPlayer(ctx context.Context, userID string) (*domain.PlayerState, error)

	// CreatePlayer inserts a fresh player row with zeroed resources.
	// Returns the existing row unchanged if the player already exists.
	CreatePlayer(ctx context.Context, userID string) (*domain.PlayerState, error)

	// ApplyDelta applies a resource delta outside a transaction
	ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error)

	// UpdateLoginStreak records a login and the resulting streak value
	UpdateLoginStreak(ctx context.Context, userID string, streak int, at time.Time) error

	BeginTx(ctx context.Context) (Tx, error)
}
