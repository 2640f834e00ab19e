package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	Claims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClaims,
			Help: HelpTextClaims,
		},
		[]string{LabelSource, LabelOutcome},
	)

	Enhancements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnhancements,
			Help: HelpTextEnhancements,
		},
		[]string{LabelOutcome},
	)

	Fusions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFusions,
			Help: HelpTextFusions,
		},
		[]string{LabelRecipe},
	)

	OfflineSessionsResolved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameOfflineSessions,
			Help: HelpTextOfflineSessions,
		},
	)

	OfflineHoursAccrued = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameOfflineHoursAccrued,
			Help:    HelpTextOfflineHoursAccrued,
			Buckets: OfflineHoursBuckets,
		},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)
