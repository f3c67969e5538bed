package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics. Unknown names are ignored.
const (
	MetricLedgerMutation      = "ledger.mutation"
	MetricBalanceDrift        = "balance.drift"
	MetricCategorization      = "categorization"
	MetricAIRequest           = "ai.request"
	MetricAIDuration          = "ai.duration"
	MetricRuleLearned         = "rule.learned"
	MetricSyncRun             = "sync.run"
	MetricSyncDuration        = "sync.duration"
	MetricSyncEntries         = "sync.entries"
	MetricProviderRequest     = "provider.request"
	MetricProviderDuration    = "provider.duration"
	MetricCircuitBreakerState = "circuit_breaker.state"
	MetricImportRows          = "import.rows"
	MetricNotification        = "notification"
)

type PrometheusMetrics struct {
	ledgerMutations     *prometheus.CounterVec
	balanceDrift        prometheus.Counter
	categorizations     *prometheus.CounterVec
	aiRequests          *prometheus.CounterVec
	aiDuration          prometheus.Histogram
	rulesLearned        prometheus.Counter
	syncRuns            *prometheus.CounterVec
	syncDuration        prometheus.Histogram
	syncEntries         *prometheus.CounterVec
	providerRequests    *prometheus.CounterVec
	providerDuration    prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
	importRows          *prometheus.CounterVec
	notifications       *prometheus.CounterVec
}

// NewPrometheusMetrics registers the ledger metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of ledger mutations",
			},
			[]string{"operation", "status"},
		),
		balanceDrift: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_balance_drift_total",
				Help: "Number of recomputes where the cached balance differed from the ledger",
			},
		),
		categorizations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "categorizations_total",
				Help: "Total number of categorizations by resolving tier",
			},
			[]string{"method"},
		),
		aiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_classifier_requests_total",
				Help: "Total number of AI classifier calls",
			},
			[]string{"backend", "status"},
		),
		aiDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ai_classifier_duration_seconds",
				Help:    "AI classifier call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		rulesLearned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "category_rules_learned_total",
				Help: "Total number of rules written back by the AI tier",
			},
		),
		syncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_runs_total",
				Help: "Total number of connection sync runs",
			},
			[]string{"status"},
		),
		syncDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sync_duration_milliseconds",
				Help:    "Connection sync duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(10, 2, 12),
			},
		),
		syncEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sync_entries_total",
				Help: "Provider records seen during sync by outcome",
			},
			[]string{"outcome"},
		),
		providerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "provider_requests_total",
				Help: "Total number of provider API calls",
			},
			[]string{"operation", "status"},
		),
		providerDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "provider_request_duration_milliseconds",
				Help:    "Provider API call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		importRows: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "import_rows_total",
				Help: "Imported rows by outcome",
			},
			[]string{"outcome"},
		),
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notifications_total",
				Help: "Notifications emitted by status",
			},
			[]string{"status"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricLedgerMutation:
		m.ledgerMutations.WithLabelValues(tags["operation"], status).Inc()
	case MetricBalanceDrift:
		m.balanceDrift.Inc()
	case MetricCategorization:
		m.categorizations.WithLabelValues(tags["method"]).Inc()
	case MetricAIRequest:
		m.aiRequests.WithLabelValues(tags["backend"], status).Inc()
	case MetricRuleLearned:
		m.rulesLearned.Inc()
	case MetricSyncRun:
		m.syncRuns.WithLabelValues(status).Inc()
	case MetricProviderRequest:
		m.providerRequests.WithLabelValues(tags["operation"], status).Inc()
	case MetricNotification:
		m.notifications.WithLabelValues(status).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricAIDuration:
		m.aiDuration.Observe(duration.Seconds())
	case MetricSyncDuration:
		m.syncDuration.Observe(float64(duration.Milliseconds()))
	case MetricProviderDuration:
		m.providerDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case MetricSyncEntries:
		m.syncEntries.WithLabelValues(tags["outcome"]).Add(value)
	case MetricImportRows:
		m.importRows.WithLabelValues(tags["outcome"]).Add(value)
	}
}

// noopMetrics is used when a service is built without a recorder.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
