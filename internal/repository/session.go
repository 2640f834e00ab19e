package repository

import (
	"context"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Session defines the interface for offline session persistence
type Session interface {
	// GetActiveSession returns the player's active session, or nil when none
	GetActiveSession(ctx context.Context, userID string) (*domain.OfflineSession, error)

	// CreateSession inserts a new active session. Fails with
	// domain.ErrSessionAlreadyActive if one already exists for the player.
	CreateSession(ctx context.Context, session *domain.OfflineSession) error

	BeginTx(ctx context.Context) (Tx, error)
}
