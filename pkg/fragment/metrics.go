package fragment

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics middleware.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "htmltag").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics middleware.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "htmltag",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for fragment serving.
type metrics struct {
	rendersTotal       *prometheus.CounterVec
	renderDuration     *prometheus.HistogramVec
	renderErrors       *prometheus.CounterVec
	liveConnections    prometheus.Gauge
	invalidationsTotal prometheus.Counter
	liveSendErrors     prometheus.Counter
}

// globalMetrics is the singleton metrics instance.
// Created on first call to Metrics().
var (
	globalMetrics   *metrics
	globalMetricsMu sync.Mutex
)

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fragment_renders_total",
			Help:        "Total number of fragment requests served",
			ConstLabels: config.ConstLabels,
		}, []string{"fragment", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fragment_render_seconds",
			Help:        "Fragment render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"fragment"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fragment_render_errors_total",
			Help:        "Total number of fragment request failures",
			ConstLabels: config.ConstLabels,
		}, []string{"fragment", "error_type"}),

		liveConnections: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_connections",
			Help:        "Number of open live fragment connections",
			ConstLabels: config.ConstLabels,
		}),

		invalidationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_invalidations_total",
			Help:        "Total number of fragment invalidations broadcast",
			ConstLabels: config.ConstLabels,
		}),

		liveSendErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "live_send_errors_total",
			Help:        "Total number of failed live fragment sends",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// Metrics creates middleware that collects Prometheus metrics for
// fragment requests.
//
// Metrics collected:
//   - htmltag_fragment_renders_total: Counter of requests by fragment and status
//   - htmltag_fragment_render_seconds: Histogram of render duration by fragment
//   - htmltag_fragment_render_errors_total: Counter of failures by fragment and error type
//   - htmltag_live_connections: Gauge of open live connections
//   - htmltag_live_invalidations_total: Counter of invalidation broadcasts
//   - htmltag_live_send_errors_total: Counter of failed live sends
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(fragment.Metrics(fragment.WithNamespace("myapp")))
//	r.Mount("/fragments", fragment.Handler(reg))
//
//	// Expose metrics endpoint
//	http.Handle("/metrics", promhttp.Handler())
func Metrics(opts ...MetricsOption) func(http.Handler) http.Handler {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	// Initialize metrics once
	globalMetricsMu.Lock()
	if globalMetrics == nil {
		globalMetrics = initMetrics(config)
	}
	m := globalMetrics
	globalMetricsMu.Unlock()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			// Time the request
			start := time.Now()

			next.ServeHTTP(ww, r)

			// The route params are filled in during routing, so the
			// fragment name is only readable after the handler ran.
			name := chi.URLParam(r, "name")
			if name == "" {
				name = "unknown"
			}

			duration := time.Since(start).Seconds()
			m.renderDuration.WithLabelValues(name).Observe(duration)

			status := "success"
			if ww.Status() >= http.StatusBadRequest {
				status = "error"
				m.renderErrors.WithLabelValues(name, categorizeStatus(ww.Status())).Inc()
			}
			m.rendersTotal.WithLabelValues(name, status).Inc()
		})
	}
}

// categorizeStatus returns a low-cardinality error type for a status
// code. Error messages never become label values.
func categorizeStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "bad_params"
	default:
		return "internal"
	}
}

// =============================================================================
// Metrics Recording Functions
// =============================================================================

// RecordLiveConnect records a live connection opening.
// Called by the Hub when a WebSocket client subscribes.
func RecordLiveConnect() {
	if globalMetrics != nil {
		globalMetrics.liveConnections.Inc()
	}
}

// RecordLiveDisconnect records a live connection closing.
func RecordLiveDisconnect() {
	if globalMetrics != nil {
		globalMetrics.liveConnections.Dec()
	}
}

// RecordInvalidation records a fragment invalidation broadcast.
func RecordInvalidation() {
	if globalMetrics != nil {
		globalMetrics.invalidationsTotal.Inc()
	}
}

// RecordLiveSendError records a failed send to a live connection.
func RecordLiveSendError() {
	if globalMetrics != nil {
		globalMetrics.liveSendErrors.Inc()
	}
}

// =============================================================================
// Metrics Collector
// =============================================================================

// Collector exposes the registered metrics for custom inspection.
type Collector struct {
	rendersTotal       *prometheus.CounterVec
	renderDuration     *prometheus.HistogramVec
	renderErrors       *prometheus.CounterVec
	liveConnections    prometheus.Gauge
	invalidationsTotal prometheus.Counter
	liveSendErrors     prometheus.Counter
}

// GetMetrics returns the global metrics collector.
// Returns nil if Metrics middleware has not been initialized.
func GetMetrics() *Collector {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()
	if globalMetrics == nil {
		return nil
	}
	return &Collector{
		rendersTotal:       globalMetrics.rendersTotal,
		renderDuration:     globalMetrics.renderDuration,
		renderErrors:       globalMetrics.renderErrors,
		liveConnections:    globalMetrics.liveConnections,
		invalidationsTotal: globalMetrics.invalidationsTotal,
		liveSendErrors:     globalMetrics.liveSendErrors,
	}
}
