package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// GetActiveSession returns the player's active session, or nil when none
func (r *Repository) GetActiveSession(ctx context.Context, userID string) (*domain.OfflineSession, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var (
		session domain.OfflineSession
		userUID uuid.UUID
	)
	err = r.db.QueryRow(ctx, `
		SELECT session_id, user_id, started_at,
		       experience_per_hour, spirit_stone_per_hour, primary_per_hour,
		       speed_multiplier_percent
		FROM offline_sessions
		WHERE user_id = $1`,
		uid,
	).Scan(
		&session.ID,
		&userUID,
		&session.StartedAt,
		&session.Rates.ExperiencePerHour,
		&session.Rates.SpiritStonePerHour,
		&session.Rates.PrimaryPerHour,
		&session.SpeedMultiplierPercent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	session.UserID = userUID.String()
	return &session, nil
}

// CreateSession inserts a new active session. The unique constraint on
// user_id enforces the one-active-session invariant.
func (r *Repository) CreateSession(ctx context.Context, session *domain.OfflineSession) error {
	uid, err := parseUserUUID(session.UserID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO offline_sessions
			(session_id, user_id, started_at,
			 experience_per_hour, spirit_stone_per_hour, primary_per_hour,
			 speed_multiplier_percent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, uid, session.StartedAt,
		session.Rates.ExperiencePerHour,
		session.Rates.SpiritStonePerHour,
		session.Rates.PrimaryPerHour,
		session.SpeedMultiplierPercent,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSessionAlreadyActive
		}
		return err
	}
	return nil
}

func deleteOfflineSession(ctx context.Context, q dbtx, sessionID uuid.UUID) error {
	_, err := q.Exec(ctx, `DELETE FROM offline_sessions WHERE session_id = $1`, sessionID)
	return err
}
