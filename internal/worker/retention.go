package worker

import (
	"context"

	"github.com/osse101/IdleSect_Go/internal/eventlog"
	"github.com/osse101/IdleSect_Go/internal/logger"
)

// RetentionJob prunes old rows from the event log. Scheduled periodically so
// the events table does not grow without bound.
type RetentionJob struct {
	events        eventlog.Service
	retentionDays int
}

// NewRetentionJob creates a retention job for the given event log service
func NewRetentionJob(events eventlog.Service, retentionDays int) *RetentionJob {
	if retentionDays <= 0 {
		retentionDays = DefaultEventRetentionDays
	}
	return &RetentionJob{
		events:        events,
		retentionDays: retentionDays,
	}
}

// Process removes events older than the retention window
func (j *RetentionJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	deleted, err := j.events.CleanupOldEvents(ctx, j.retentionDays)
	if err != nil {
		log.Error(LogMsgRetentionSweepFailed, "error", err, "retention_days", j.retentionDays)
		return err
	}

	log.Info(LogMsgRetentionSweepCompleted, "deleted", deleted, "retention_days", j.retentionDays)
	return nil
}
