package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// Ledger defines the interface for claim record persistence
type Ledger interface {
	// TryInsertClaim atomically inserts a claim record if absent.
	// Returns true when the insert won the (user, source kind, key) slot.
	TryInsertClaim(ctx context.Context, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error)

	// HasClaim reports whether a claim record exists
	HasClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (bool, error)

	// ListClaims returns all claim records for a user and source kind,
	// ordered by claim time ascending
	ListClaims(ctx context.Context, userID string, kind domain.SourceKind) ([]domain.ClaimRecord, error)

	BeginTx(ctx context.Context) (Tx, error)
}
