package repository

import (
	"context"

	"github.com/osse101/IdleSect_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs unexpected failures.
// Rolling back an already-committed transaction is a no-op by contract.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
