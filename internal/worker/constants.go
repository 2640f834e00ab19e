package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// Log messages for the event retention job
const (
	LogMsgRetentionSweepCompleted = "Event retention sweep completed"
	LogMsgRetentionSweepFailed    = "Event retention sweep failed"
)

// DefaultEventRetentionDays is how long engine events are kept before the
// retention job removes them
const DefaultEventRetentionDays = 90

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
