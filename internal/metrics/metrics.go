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
)

// Game Metrics
var (
	QuestsRequested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsRequested,
			Help: HelpTextQuestsRequested,
		},
		[]string{LabelLocation},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelLocation},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	CoinsEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchases,
			Help: HelpTextPurchases,
		},
		[]string{LabelOutcome},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelSlot},
	)

	GamesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGamesSaved,
			Help: HelpTextGamesSaved,
		},
	)

	GamesLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesLoaded,
			Help: HelpTextGamesLoaded,
		},
		[]string{LabelResult},
	)

	PersistenceFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePersistenceFailures,
			Help: HelpTextPersistenceFailures,
		},
		[]string{LabelOp},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)
)
