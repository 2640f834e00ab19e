package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// HTTP metric help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
)

// Business metric names
const (
	MetricNameClaims              = "reward_claims_total"
	MetricNameEnhancements        = "enhancement_attempts_total"
	MetricNameFusions             = "fusions_total"
	MetricNameOfflineSessions     = "offline_sessions_resolved_total"
	MetricNameOfflineHoursAccrued = "offline_hours_accrued"
	MetricNameEventsPublished     = "events_published_total"
)

// Business metric help texts
const (
	HelpTextClaims              = "Reward claim attempts by source kind and outcome"
	HelpTextEnhancements        = "Enhancement attempts by outcome"
	HelpTextFusions             = "Completed elemental fusions by recipe"
	HelpTextOfflineSessions     = "Offline sessions resolved and claimed"
	HelpTextOfflineHoursAccrued = "Elapsed hours of resolved offline sessions"
	HelpTextEventsPublished     = "Events published to the in-process bus"
)

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelSource  = "source"
	LabelOutcome = "outcome"
	LabelRecipe  = "recipe"
	LabelType    = "type"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = prometheus.DefBuckets

// OfflineHoursBuckets cover session lengths from minutes to multiple days
var OfflineHoursBuckets = []float64{0.1, 0.5, 1, 2, 4, 8, 12, 24, 48, 96}
