package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleSect_Go/internal/event"
)

type fakeEventLog struct {
	deleted       int64
	err           error
	retentionDays int
}

func (f *fakeEventLog) Subscribe(bus event.Bus) {}

func (f *fakeEventLog) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	f.retentionDays = retentionDays
	return f.deleted, f.err
}

func TestRetentionJob_Process(t *testing.T) {
	log := &fakeEventLog{deleted: 42}
	job := NewRetentionJob(log, 30)

	err := job.Process(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 30, log.retentionDays)
}

func TestRetentionJob_DefaultsRetention(t *testing.T) {
	log := &fakeEventLog{}
	job := NewRetentionJob(log, 0)

	require.NoError(t, job.Process(context.Background()))
	assert.Equal(t, DefaultEventRetentionDays, log.retentionDays)
}

func TestRetentionJob_PropagatesError(t *testing.T) {
	log := &fakeEventLog{err: errors.New("connection lost")}
	job := NewRetentionJob(log, 30)

	assert.Error(t, job.Process(context.Background()))
}
