package ladder

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/repository"
)

// MockPlayerRepository
type MockPlayerRepository struct {
	mock.Mock
}

func (m *MockPlayerRepository) GetPlayer(ctx context.Context, userID string) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerRepository) CreatePlayer(ctx context.Context, userID string) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerRepository) ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockPlayerRepository) UpdateLoginStreak(ctx context.Context, userID string, streak int, at time.Time) error {
	args := m.Called(ctx, userID, streak, at)
	return args.Error(0)
}

func (m *MockPlayerRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockLedger mocks the claim ledger service
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) TryClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (domain.ClaimOutcome, error) {
	args := m.Called(ctx, userID, kind, key)
	return args.Get(0).(domain.ClaimOutcome), args.Error(1)
}

func (m *MockLedger) TryClaimAndCredit(ctx context.Context, userID string, kind domain.SourceKind, key string, reward domain.ResourceDelta) (domain.ClaimOutcome, *domain.PlayerState, error) {
	args := m.Called(ctx, userID, kind, key, reward)
	var state *domain.PlayerState
	if args.Get(1) != nil {
		state = args.Get(1).(*domain.PlayerState)
	}
	return args.Get(0).(domain.ClaimOutcome), state, args.Error(2)
}

func (m *MockLedger) HasClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (bool, error) {
	args := m.Called(ctx, userID, kind, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedger) Claims(ctx context.Context, userID string, kind domain.SourceKind) ([]domain.ClaimRecord, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimRecord), args.Error(1)
}
