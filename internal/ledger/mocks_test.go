package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) TryInsertClaim(ctx context.Context, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, kind, key, claimedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) HasClaim(ctx context.Context, userID string, kind domain.SourceKind, key string) (bool, error) {
	args := m.Called(ctx, userID, kind, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ListClaims(ctx context.Context, userID string, kind domain.SourceKind) ([]domain.ClaimRecord, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimRecord), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx
type MockTx struct {
	mock.Mock
}

func (m *MockTx) TryInsertClaim(ctx context.Context, userID string, kind domain.SourceKind, key string, claimedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, kind, key, claimedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) ApplyDelta(ctx context.Context, userID string, delta domain.ResourceDelta) (*domain.PlayerState, error) {
	args := m.Called(ctx, userID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerState), args.Error(1)
}

func (m *MockTx) DeleteOfflineSession(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockTx) UpdateEnhancementTier(ctx context.Context, userID, itemID string, newTier int) error {
	args := m.Called(ctx, userID, itemID, newTier)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
