package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleSect_Go/internal/accrual"
	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/reward"
)

// MockAccrualService mocks accrual.Service
type MockAccrualService struct {
	mock.Mock
}

func (m *MockAccrualService) StartSession(ctx context.Context, userID string, speedMultiplierPercent int) (*domain.OfflineSession, error) {
	args := m.Called(ctx, userID, speedMultiplierPercent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OfflineSession), args.Error(1)
}

func (m *MockAccrualService) PreviewSession(ctx context.Context, userID string) (*accrual.ClaimResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accrual.ClaimResult), args.Error(1)
}

func (m *MockAccrualService) ClaimSession(ctx context.Context, userID string) (*accrual.ClaimResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accrual.ClaimResult), args.Error(1)
}

// MockEnhanceService mocks enhance.Service
type MockEnhanceService struct {
	mock.Mock
}

func (m *MockEnhanceService) Enhance(ctx context.Context, userID, itemID string, element domain.ElementID) (*domain.EnhanceResult, error) {
	args := m.Called(ctx, userID, itemID, element)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnhanceResult), args.Error(1)
}

func (m *MockEnhanceService) Fuse(ctx context.Context, userID, recipeKey string) (*domain.FusionResult, error) {
	args := m.Called(ctx, userID, recipeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FusionResult), args.Error(1)
}

func (m *MockEnhanceService) GetTarget(ctx context.Context, userID, itemID string) (*domain.EnhancementTarget, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnhancementTarget), args.Error(1)
}

func (m *MockEnhanceService) RegisterTarget(ctx context.Context, target *domain.EnhancementTarget) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

// MockLadderService mocks ladder.Service
type MockLadderService struct {
	mock.Mock
}

func (m *MockLadderService) DailySlots(ctx context.Context, userID string) ([]domain.LadderSlotView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LadderSlotView), args.Error(1)
}

func (m *MockLadderService) LevelSlots(ctx context.Context, userID string) ([]domain.LadderSlotView, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LadderSlotView), args.Error(1)
}

func (m *MockLadderService) ClaimDaily(ctx context.Context, userID string, day int) (domain.ClaimOutcome, *domain.PlayerState, error) {
	args := m.Called(ctx, userID, day)
	var state *domain.PlayerState
	if args.Get(1) != nil {
		state = args.Get(1).(*domain.PlayerState)
	}
	return args.Get(0).(domain.ClaimOutcome), state, args.Error(2)
}

func (m *MockLadderService) ClaimLevel(ctx context.Context, userID string, level int) (domain.ClaimOutcome, *domain.PlayerState, error) {
	args := m.Called(ctx, userID, level)
	var state *domain.PlayerState
	if args.Get(1) != nil {
		state = args.Get(1).(*domain.PlayerState)
	}
	return args.Get(0).(domain.ClaimOutcome), state, args.Error(2)
}

// MockRewardService mocks reward.Service
type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Claim(ctx context.Context, userID string, kind domain.SourceKind, key string) (domain.ClaimOutcome, *domain.PlayerState, error) {
	args := m.Called(ctx, userID, kind, key)
	var state *domain.PlayerState
	if args.Get(1) != nil {
		state = args.Get(1).(*domain.PlayerState)
	}
	return args.Get(0).(domain.ClaimOutcome), state, args.Error(2)
}

func (m *MockRewardService) List(kind domain.SourceKind) []reward.CatalogEntry {
	args := m.Called(kind)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]reward.CatalogEntry)
}

// MockPlayerService mocks player.Service
type MockPlayerService struct {
	mock.Mock
}

func (m *MockPlayerService) GetState(ctx context.Context, userID string) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerService) EnsurePlayer(ctx context.Context, userID string) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerService) ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerService) RecordLogin(ctx context.Context, userID string) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}
