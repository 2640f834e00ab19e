package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleSect_Go/internal/event"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	args := m.Called(ctx, eventType, userID, payload, metadata)
	return args.Error(0)
}

func (m *MockRepository) GetEvents(ctx context.Context, filter EventFilter) ([]Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	args := m.Called(ctx, retentionDays)
	return args.Get(0).(int64), args.Error(1)
}

func TestSubscribeLogsTypedPayloads(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	bus := event.NewMemoryBus()
	svc.Subscribe(bus)

	repo.On("LogEvent", mock.Anything, string(event.ClaimGranted), mock.Anything, mock.Anything, mock.Anything).Return(nil)

	evt := event.NewClaimGrantedEvent("b7b7ce45-10a9-4be2-a5a0-7a3c1c4ad9a1", "daily", "cycle0-day1")
	err := bus.Publish(context.Background(), evt)
	require.NoError(t, err)

	repo.AssertExpectations(t)

	// The typed payload must arrive flattened with a user_id extracted
	call := repo.Calls[0]
	userID := call.Arguments.Get(2).(*string)
	require.NotNil(t, userID)
	assert.Equal(t, "b7b7ce45-10a9-4be2-a5a0-7a3c1c4ad9a1", *userID)

	payload := call.Arguments.Get(3).(map[string]interface{})
	assert.Equal(t, "daily", payload["source_kind"])
}

func TestCleanupOldEvents(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("CleanupOldEvents", mock.Anything, 30).Return(int64(12), nil)

	removed, err := svc.CleanupOldEvents(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
}
