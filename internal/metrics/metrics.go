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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	CraftsAttempted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsAttempted,
			Help: HelpTextCraftsAttempted,
		},
		[]string{LabelRecipe},
	)

	CraftsSucceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsSucceeded,
			Help: HelpTextCraftsSucceeded,
		},
		[]string{LabelRecipe},
	)

	CraftsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsFailed,
			Help: HelpTextCraftsFailed,
		},
		[]string{LabelRecipe, LabelReason},
	)

	CraftDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCraftDuration,
			Help:    HelpTextCraftDuration,
			Buckets: CraftLatencyBuckets,
		},
		[]string{LabelRecipe},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)
)
