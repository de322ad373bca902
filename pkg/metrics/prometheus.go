// Package metrics provides Prometheus metrics for the careerlens service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the careerlens service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Analysis
	analyses           *prometheus.CounterVec
	findings           *prometheus.CounterVec
	scores             *prometheus.HistogramVec
	recordsPerAnalysis *prometheus.HistogramVec
	analysisLatency    *prometheus.HistogramVec
	validationFailures *prometheus.CounterVec
	batchSize          prometheus.Histogram

	// Repository
	storedReports       prometheus.Gauge
	repositoryEvictions prometheus.Counter
	repositoryLatency   *prometheus.HistogramVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "careerlens",
		subsystem:        "analysis",
		histogramBuckets: prometheus.DefBuckets,
		customLabels:     map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // one block per metric
	auto := promauto.With(m.registry)
	counterOpts := func(name, help string) prometheus.CounterOpts {
		return prometheus.CounterOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: m.customLabels,
		}
	}
	histogramOpts := func(name, help string, buckets []float64) prometheus.HistogramOpts {
		return prometheus.HistogramOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        name,
			Help:        help,
			Buckets:     buckets,
			ConstLabels: m.customLabels,
		}
	}
	gaugeOpts := func(name, help string) prometheus.GaugeOpts {
		return prometheus.GaugeOpts{
			Namespace:   m.namespace,
			Subsystem:   m.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: m.customLabels,
		}
	}

	m.analyses = auto.NewCounterVec(
		counterOpts("analyses_total", "Total number of record lists analysed"),
		[]string{"domain"},
	)
	m.findings = auto.NewCounterVec(
		counterOpts("findings_total", "Total number of findings by kind"),
		[]string{"domain", "kind"},
	)
	m.scores = auto.NewHistogramVec(
		histogramOpts("score", "Distribution of profile quality scores", prometheus.LinearBuckets(10, 10, 10)),
		[]string{"domain"},
	)
	m.recordsPerAnalysis = auto.NewHistogramVec(
		histogramOpts("records_per_analysis", "Number of records per analysed list", prometheus.ExponentialBuckets(1, 2, 8)),
		[]string{"domain"},
	)
	m.analysisLatency = auto.NewHistogramVec(
		histogramOpts("latency_milliseconds", "Analysis latency in milliseconds", m.histogramBuckets),
		[]string{"domain"},
	)
	m.validationFailures = auto.NewCounterVec(
		counterOpts("validation_failures_total", "Total number of record lists that failed validation"),
		[]string{"domain"},
	)
	m.batchSize = auto.NewHistogram(
		histogramOpts("batch_size", "Number of profiles per batch request", prometheus.ExponentialBuckets(1, 2, 10)),
	)

	m.storedReports = auto.NewGauge(gaugeOpts("repository_reports", "Number of reports held in the report store"))
	m.repositoryEvictions = auto.NewCounter(
		counterOpts("repository_evictions_total", "Total number of reports evicted to stay within capacity"),
	)
	m.repositoryLatency = auto.NewHistogramVec(
		histogramOpts("repository_latency_milliseconds", "Report store operation latency in milliseconds", m.histogramBuckets),
		[]string{"operation"},
	)

	m.httpRequests = auto.NewCounterVec(
		counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		counterOpts("errors_by_component_total", "Total number of errors by component"),
		[]string{"component", "error_type"},
	)
	m.errorRateByEndpoint = auto.NewCounterVec(
		counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(
		histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// RecordAnalysis records one completed analysis.
func (m *Manager) RecordAnalysis(domain string, records, score int, latencyMs float64) {
	m.analyses.WithLabelValues(domain).Inc()
	m.recordsPerAnalysis.WithLabelValues(domain).Observe(float64(records))
	m.scores.WithLabelValues(domain).Observe(float64(score))
	m.analysisLatency.WithLabelValues(domain).Observe(latencyMs)
}

// RecordFindings adds n findings of the given kind.
func (m *Manager) RecordFindings(domain, kind string, n int) {
	if n > 0 {
		m.findings.WithLabelValues(domain, kind).Add(float64(n))
	}
}

// RecordAnalysis records one completed analysis on the global manager.
func RecordAnalysis(domain string, records, score int, latencyMs float64) {
	globalManager.RecordAnalysis(domain, records, score, latencyMs)
}

// RecordFindings adds n findings of the given kind on the global manager.
func RecordFindings(domain, kind string, n int) {
	globalManager.RecordFindings(domain, kind, n)
}

// RecordValidationFailure increments the validation failure counter.
func RecordValidationFailure(domain string) {
	globalManager.validationFailures.WithLabelValues(domain).Inc()
}

// RecordBatchSize records the number of items in a batch.
func RecordBatchSize(size int) {
	globalManager.batchSize.Observe(float64(size))
}

// UpdateStoredReports sets the number of reports held in the store.
func UpdateStoredReports(n int) {
	globalManager.storedReports.Set(float64(n))
}

// RecordRepositoryEviction counts one evicted report.
func RecordRepositoryEviction() {
	globalManager.repositoryEvictions.Inc()
}

// RecordRepositoryLatency records the latency of a store operation.
func RecordRepositoryLatency(operation string, latencyMs float64) {
	globalManager.repositoryLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
