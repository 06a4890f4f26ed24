package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the console.
// It includes counters for upstream requests, validation failures, conflicts,
// discarded stale responses, undecodable page items and imported rows, and a
// histogram for request duration.
type Metrics struct {
	Requests           *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	ValidationFailures *prometheus.CounterVec
	Conflicts          *prometheus.CounterVec
	StaleResponses     *prometheus.CounterVec
	SkippedItems       *prometheus.CounterVec
	ImportRows         *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		Requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_console_api_requests_total",
			Help: "Total requests sent to the employee service, by operation and outcome.",
		}, []string{"op", "outcome"}),
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ems_console_api_request_duration_seconds",
			Help:    "Duration of requests to the employee service.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}), // op: 'list', 'search', 'create', ...
		ValidationFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_console_validation_failures_total",
			Help: "Total local validation failures, by field.",
		}, []string{"field"}),
		Conflicts: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_console_conflicts_total",
			Help: "Total conflict responses mapped onto a form field.",
		}, []string{"field"}),
		StaleResponses: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_console_stale_responses_total",
			Help: "Total list or search responses discarded because a newer request was issued.",
		}, []string{"kind"}),
		SkippedItems: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_console_skipped_items_total",
			Help: "Total page items dropped because they did not decode as employees.",
		}, []string{"kind"}),
		ImportRows: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "ems_console_import_rows_total",
			Help: "Total spreadsheet rows processed by bulk import, by result.",
		}, []string{"result"}),
	}

	metrics.ImportRows.WithLabelValues("success")
	metrics.ImportRows.WithLabelValues("failure")

	return metrics
}
