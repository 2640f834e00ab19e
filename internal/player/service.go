package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/event"
	"github.com/osse101/IdleSect_Go/internal/logger"
	"github.com/osse101/IdleSect_Go/internal/repository"
)

// Service owns player state snapshots and the login streak counter
type Service interface {
	// GetState returns the player's current snapshot, cached briefly
	GetState(ctx context.Context, userID string) (*domain.PlayerState, error)

	// EnsurePlayer creates the player row if missing and returns the state
	EnsurePlayer(ctx context.Context, userID string) (*domain.PlayerState, error)

	// ApplyDelta applies a resource delta and returns the updated state
	ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error)

	// RecordLogin advances the login streak at most once per UTC calendar
	// day. A missed day resets the streak to 1.
	RecordLogin(ctx context.Context, userID string) (*domain.PlayerState, error)
}

type service struct {
	repo  repository.Player
	bus   event.Bus
	cache *stateCache
	now   func() time.Time
}

// NewService creates a new player service with the given cache bounds
func NewService(repo repository.Player, bus event.Bus, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:  repo,
		bus:   bus,
		cache: newStateCache(cacheSize, cacheTTL),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) GetState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	if state, ok := s.cache.Get(userID); ok {
		return state, nil
	}

	state, err := s.repo.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(userID, state)
	return state, nil
}

func (s *service) EnsurePlayer(ctx context.Context, userID string) (*domain.PlayerState, error) {
	state, err := s.repo.CreatePlayer(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure player: %w", err)
	}
	s.cache.Set(userID, state)
	return state, nil
}

func (s *service) ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	if delta.IsZero() {
		return s.GetState(ctx, userID)
	}

	state, err := s.repo.ApplyDelta(ctx, userID, delta)
	if err != nil {
		s.cache.Invalidate(userID)
		return nil, err
	}

	s.cache.Set(userID, state)
	return state, nil
}

func (s *service) RecordLogin(ctx context.Context, userID string) (*domain.PlayerState, error) {
	log := logger.FromContext(ctx)

	state, err := s.repo.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Truncate(24 * time.Hour)

	streak := 1
	if state.LastLoginAt != nil {
		lastDay := state.LastLoginAt.UTC().Truncate(24 * time.Hour)
		switch {
		case lastDay.Equal(today):
			// Already counted today; idempotent.
			return state, nil
		case today.Sub(lastDay) == 24*time.Hour:
			streak = state.LoginStreakDays + 1
		}
	}

	if err := s.repo.UpdateLoginStreak(ctx, userID, streak, now); err != nil {
		return nil, fmt.Errorf("failed to update login streak: %w", err)
	}

	state.LoginStreakDays = streak
	state.LastLoginAt = &now
	s.cache.Set(userID, state)

	s.publish(ctx, event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.LoginRecorded,
		Payload: map[string]interface{}{
			"user_id":     userID,
			"streak_days": streak,
		},
	})

	log.Info("Login recorded", "user_id", userID, "streak_days", streak)
	return state, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish player event", "error", err, "type", evt.Type)
	}
}
