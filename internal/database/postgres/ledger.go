package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// tryInsertClaim races an insert against the unique constraint on
// (user_id, source_kind, claim_key). Exactly one concurrent caller wins.
func tryInsertClaim(ctx context.Context, q dbtx, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}

	tag, err := q.Exec(ctx, `
		INSERT INTO claim_records (user_id, source_kind, claim_key, claimed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, source_kind, claim_key) DO NOTHING`,
		uid, string(kind), key, claimedAt,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

// TryInsertClaim atomically inserts a claim record if absent
func (r *Repository) TryInsertClaim(ctx context.Context, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error) {
	return tryInsertClaim(ctx, r.db, userID, kind, key, claimedAt)
}

// HasClaim reports whether a claim record exists
func (r *Repository) HasClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (bool, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM claim_records
			WHERE user_id = $1 AND source_kind = $2 AND claim_key = $3
		)`,
		uid, string(kind), key,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListClaims returns all claim records for a user and source kind
func (r *Repository) ListClaims(ctx context.Context, userID string, kind domain.SourceKind) ([]domain.ClaimRecord, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT user_id, source_kind, claim_key, claimed_at
		FROM claim_records
		WHERE user_id = $1 AND source_kind = $2
		ORDER BY claimed_at ASC`,
		uid, string(kind),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ClaimRecord
	for rows.Next() {
		var (
			rec domain.ClaimRecord
			id  uuid.UUID
		)
		if err := rows.Scan(&id, &rec.SourceKind, &rec.Key, &rec.ClaimedAt); err != nil {
			return nil, err
		}
		rec.UserID = id.String()
		records = append(records, rec)
	}
	return records, rows.Err()
}
