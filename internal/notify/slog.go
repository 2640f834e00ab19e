package notify

import (
	"context"

	"github.com/osse101/IdleSect_Go/internal/logger"
)

// slogSink writes notifications to the structured log. Always wired; acts as
// the fallback sink when no external channel is configured.
type slogSink struct{}

// NewSlogSink creates a log-backed notification sink
func NewSlogSink() Sink {
	return slogSink{}
}

func (slogSink) Notify(ctx context.Context, userID, message string, severity Severity) {
	log := logger.FromContext(ctx)

	switch severity {
	case SeverityWarning:
		log.Warn("Player notification", "user_id", userID, "message", message)
	default:
		log.Info("Player notification", "user_id", userID, "message", message, "severity", severity)
	}
}
