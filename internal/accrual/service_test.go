package accrual

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleSect_Go/internal/domain"
	"github.com/osse101/IdleSect_Go/internal/event"
)

const testUserID = "1f0a2b6e-9f1c-4f3a-8e6f-0123456789ab"

const testRatesJSON = `{
	"rates": {
		"experience_per_hour": 50,
		"spirit_stone_per_hour": 20,
		"primary_per_hour": 30
	},
	"treasure_pool": ["jade_gourd", "ember_talisman", "cloud_boots"]
}`

func writeRatesFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "offline_rates.json")
	require.NoError(t, os.WriteFile(path, []byte(testRatesJSON), 0o600))
	return path
}

func newTestService(t *testing.T, repo *MockRepository, bus event.Bus) Service {
	t.Helper()
	svc, err := NewService(repo, bus, nil, fixedSource{value: 0.5}, writeRatesFile(t))
	require.NoError(t, err)
	return svc
}

func activeSessionStarted(startedAt time.Time) *domain.OfflineSession {
	return &domain.OfflineSession{
		ID:        uuid.New(),
		UserID:    testUserID,
		StartedAt: startedAt,
		Rates: domain.AccrualRates{
			ExperiencePerHour:  50,
			SpiritStonePerHour: 20,
			PrimaryPerHour:     30,
		},
		SpeedMultiplierPercent: 100,
	}
}

func TestNewServiceMissingConfig(t *testing.T) {
	_, err := NewService(new(MockRepository), nil, nil, fixedSource{}, "/nonexistent/rates.json")
	assert.Error(t, err)
}

func TestStartSessionRejectsNegativeMultiplier(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(t, repo, nil)

	_, err := svc.StartSession(context.Background(), testUserID, -5)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestStartSessionRejectsActiveSession(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(t, repo, nil)

	existing := activeSessionStarted(time.Now().UTC().Add(-time.Hour))
	repo.On("GetActiveSession", mock.Anything, testUserID).Return(existing, nil)

	_, err := svc.StartSession(context.Background(), testUserID, 100)

	assert.ErrorIs(t, err, domain.ErrSessionAlreadyActive)
	repo.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestStartSessionDefaultsMultiplierToBaseline(t *testing.T) {
	repo := new(MockRepository)
	bus := event.NewMemoryBus()
	svc := newTestService(t, repo, bus)

	repo.On("GetActiveSession", mock.Anything, testUserID).Return(nil, nil)
	repo.On("CreateSession", mock.Anything, mock.MatchedBy(func(s *domain.OfflineSession) bool {
		return s.UserID == testUserID && s.SpeedMultiplierPercent == BaselineSpeedPercent
	})).Return(nil)

	session, err := svc.StartSession(context.Background(), testUserID, 0)

	require.NoError(t, err)
	assert.Equal(t, BaselineSpeedPercent, session.SpeedMultiplierPercent)
	assert.Equal(t, int64(50), session.Rates.ExperiencePerHour)
	repo.AssertExpectations(t)
}

func TestPreviewSessionNoActive(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(t, repo, nil)

	repo.On("GetActiveSession", mock.Anything, testUserID).Return(nil, nil)

	_, err := svc.PreviewSession(context.Background(), testUserID)

	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestPreviewSessionDoesNotResolve(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(t, repo, nil)

	session := activeSessionStarted(time.Now().UTC().Add(-5 * time.Hour))
	repo.On("GetActiveSession", mock.Anything, testUserID).Return(session, nil)

	result, err := svc.PreviewSession(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, OutcomeClaimed, result.Outcome)
	assert.Equal(t, int64(250), result.Reward.Experience)
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestClaimSessionTooShortKeepsSession(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(t, repo, nil)

	session := activeSessionStarted(time.Now().UTC().Add(-2 * time.Minute))
	repo.On("GetActiveSession", mock.Anything, testUserID).Return(session, nil)

	result, err := svc.ClaimSession(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, OutcomeSessionTooShort, result.Outcome)
	assert.True(t, result.Reward.IsZero())
	repo.AssertNotCalled(t, "BeginTx", mock.Anything)
}

func TestClaimSessionCreditsAndDeletes(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	bus := event.NewMemoryBus()
	svc := newTestService(t, repo, bus)

	session := activeSessionStarted(time.Now().UTC().Add(-5 * time.Hour))
	state := &domain.PlayerState{UserID: testUserID, Experience: 250, Level: 1}

	repo.On("GetActiveSession", mock.Anything, testUserID).Return(session, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("TryInsertClaim", mock.Anything, testUserID, domain.SourceOfflineSession, session.ID.String(), mock.Anything).Return(true, nil)
	tx.On("ApplyDelta", mock.Anything, testUserID, mock.MatchedBy(func(delta domain.ResourceDelta) bool {
		return delta.Experience == 250 && delta.Currencies[domain.CurrencySpiritStone] == 100 && delta.Treasures != nil
	})).Return(state, nil)
	tx.On("DeleteOfflineSession", mock.Anything, session.ID).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	result, err := svc.ClaimSession(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, OutcomeClaimed, result.Outcome)
	assert.Equal(t, int64(250), result.Reward.Experience)
	assert.Len(t, result.Reward.Treasures, 1)
	assert.Equal(t, state, result.State)
	repo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestClaimSessionAlreadyClaimedSkipsCredit(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	svc := newTestService(t, repo, nil)

	session := activeSessionStarted(time.Now().UTC().Add(-5 * time.Hour))

	repo.On("GetActiveSession", mock.Anything, testUserID).Return(session, nil)
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("TryInsertClaim", mock.Anything, testUserID, domain.SourceOfflineSession, session.ID.String(), mock.Anything).Return(false, nil)
	tx.On("DeleteOfflineSession", mock.Anything, session.ID).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	result, err := svc.ClaimSession(context.Background(), testUserID)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyClaimed, result.Outcome)
	assert.True(t, result.Reward.IsZero())
	tx.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertExpectations(t)
}

func TestClaimSessionNoActive(t *testing.T) {
	repo := new(MockRepository)
	svc := newTestService(t, repo, nil)

	repo.On("GetActiveSession", mock.Anything, testUserID).Return(nil, nil)

	_, err := svc.ClaimSession(context.Background(), testUserID)

	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}
