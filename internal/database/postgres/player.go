package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/repository"
)

const playerColumns = `user_id, level, experience, currencies, elements, treasures, login_streak_days, last_login_at, updated_at`

func scanPlayer(row pgx.Row) (*domain.PlayerState, error) {
	var (
		state domain.PlayerState
		uid   uuid.UUID
	)
	err := row.Scan(
		&uid,
		&state.Level,
		&state.Experience,
		&state.Currencies,
		&state.Elements,
		&state.Treasures,
		&state.LoginStreakDays,
		&state.LastLoginAt,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, err
	}
	state.UserID = uid.String()
	return &state, nil
}

func getPlayer(ctx context.Context, q dbtx, userID string, forUpdate bool) (*domain.PlayerState, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	return scanPlayer(q.QueryRow(ctx, query, uid))
}

// applyDelta performs a locked read-modify-write of the player row.
// Currency and element balances must not go negative; the caller is expected
// to have validated sufficiency, this is the backstop.
func applyDelta(ctx context.Context, q dbtx, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	state, err := getPlayer(ctx, q, userID, true)
	if err != nil {
		return nil, err
	}

	newExperience := state.Experience + delta.Experience
	if newExperience < 0 {
		newExperience = 0
	}

	currencies := make(map[domain.CurrencyKind]int64, len(state.Currencies))
	for k, v := range state.Currencies {
		currencies[k] = v
	}
	for k, v := range delta.Currencies {
		next := currencies[k] + v
		if next < 0 {
			return nil, domain.ErrInsufficientFunds
		}
		currencies[k] = next
	}

	elements := make(map[domain.ElementID]int64, len(state.Elements))
	for k, v := range state.Elements {
		elements[k] = v
	}
	for k, v := range delta.Elements {
		next := elements[k] + v
		if next < 0 {
			return nil, domain.ErrInsufficientStock
		}
		elements[k] = next
	}

	treasures := append(append([]string{}, state.Treasures...), delta.Treasures...)
	newLevel := domain.LevelForExperience(newExperience)

	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	row := q.QueryRow(ctx, `
		UPDATE players
		SET level = $2,
		    experience = $3,
		    currencies = $4,
		    elements = $5,
		    treasures = $6,
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+playerColumns,
		uid, newLevel, newExperience, currencies, elements, treasures,
	)

	return scanPlayer(row)
}

// GetPlayer returns the player state, or domain.ErrPlayerNotFound
func (r *Repository) GetPlayer(ctx context.Context, userID string) (*domain.PlayerState, error) {
	return getPlayer(ctx, r.db, userID, false)
}

// CreatePlayer inserts a fresh player row, returning the existing row if present
func (r *Repository) CreatePlayer(ctx context.Context, userID string) (*domain.PlayerState, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO players (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING`,
		uid,
	)
	if err != nil {
		return nil, err
	}

	return r.GetPlayer(ctx, userID)
}

// ApplyDelta applies a resource delta in its own short transaction
func (r *Repository) ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := tx.ApplyDelta(ctx, userID, delta)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return state, nil
}

// UpdateLoginStreak records a login and the resulting streak value
func (r *Repository) UpdateLoginStreak(ctx context.Context, userID string, streak int, at time.Time) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE players
		SET login_streak_days = $2, last_login_at = $3, updated_at = NOW()
		WHERE user_id = $1`,
		uid, streak, at,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}
