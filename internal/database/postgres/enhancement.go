package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/IdleSect_Go/internal/domain"
)

// GetTarget returns a target, or domain.ErrTargetNotFound
func (r *Repository) GetTarget(ctx context.Context, userID, itemID string) (*domain.EnhancementTarget, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	target := domain.EnhancementTarget{UserID: userID, ItemID: itemID}
	err = r.db.QueryRow(ctx, `
		SELECT current_tier, max_tier, primary_element, compatible_elements
		FROM enhancement_targets
		WHERE user_id = $1 AND item_id = $2`,
		uid, itemID,
	).Scan(
		&target.CurrentTier,
		&target.MaxTier,
		&target.PrimaryElement,
		&target.CompatibleElements,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTargetNotFound
		}
		return nil, err
	}

	return &target, nil
}

// UpsertTarget creates or replaces a target definition
func (r *Repository) UpsertTarget(ctx context.Context, target *domain.EnhancementTarget) error {
	uid, err := parseUserUUID(target.UserID)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO enhancement_targets
			(user_id, item_id, current_tier, max_tier, primary_element, compatible_elements)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, item_id) DO UPDATE
		SET current_tier = EXCLUDED.current_tier,
		    max_tier = EXCLUDED.max_tier,
		    primary_element = EXCLUDED.primary_element,
		    compatible_elements = EXCLUDED.compatible_elements`,
		uid, target.ItemID, target.CurrentTier, target.MaxTier,
		string(target.PrimaryElement), target.CompatibleElements,
	)
	return err
}

func updateEnhancementTier(ctx context.Context, q dbtx, userID, itemID string, newTier int) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := q.Exec(ctx, `
		UPDATE enhancement_targets
		SET current_tier = $3
		WHERE user_id = $1 AND item_id = $2 AND current_tier < $3`,
		uid, itemID, newTier,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTargetNotFound
	}
	return nil
}
