package notify

import "context"

// Severity classifies a user-facing message
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Sink receives human-readable outcome messages. Fire-and-forget: the engine
// never consumes a return value and requires no ordering guarantee.
type Sink interface {
	Notify(ctx context.Context, userID, message string, severity Severity)
}

// MultiSink fans a message out to several sinks
type MultiSink []Sink

// Notify forwards the message to every configured sink
func (m MultiSink) Notify(ctx context.Context, userID, message string, severity Severity) {
	for _, sink := range m {
		sink.Notify(ctx, userID, message, severity)
	}
}
