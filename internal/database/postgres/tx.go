package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// progressionTx implements repository.Tx on top of a pgx transaction
type progressionTx struct {
	tx pgx.Tx
}

func (t *progressionTx) TryInsertClaim(ctx context.Context, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error) {
	return tryInsertClaim(ctx, t.tx, userID, kind, key, claimedAt)
}

func (t *progressionTx) ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	return applyDelta(ctx, t.tx, userID, delta)
}

func (t *progressionTx) DeleteOfflineSession(ctx context.Context, sessionID uuid.UUID) error {
	return deleteOfflineSession(ctx, t.tx, sessionID)
}

func (t *progressionTx) UpdateEnhancementTier(ctx context.Context, userID, itemID string, newTier int) error {
	return updateEnhancementTier(ctx, t.tx, userID, itemID, newTier)
}

func (t *progressionTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction. Rolling back after a commit is a
// normal part of the defer pattern and reports no error.
func (t *progressionTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
