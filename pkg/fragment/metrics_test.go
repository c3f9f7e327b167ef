package fragment

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func resetGlobalMetricsForTest() {
	globalMetricsMu.Lock()
	globalMetrics = nil
	globalMetricsMu.Unlock()
}

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func metricsTestServer(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Use(Metrics(WithRegistry(prometheus.NewRegistry())))
	r.Mount("/fragments", Handler(testRegistry(t), WithLogger(discardLogger())))
	return r
}

func TestMetricsRecordsSuccess(t *testing.T) {
	resetGlobalMetricsForTest()
	h := metricsTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/fragments/greet", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	c := GetMetrics()
	if c == nil {
		t.Fatal("expected GetMetrics to return collector after initialization")
	}
	if got := metricCounterValue(t, c.rendersTotal.WithLabelValues("greet", "success")); got != 1 {
		t.Errorf("fragment_renders_total(success) = %v, want 1", got)
	}
	if got := metricCounterValue(t, c.rendersTotal.WithLabelValues("greet", "error")); got != 0 {
		t.Errorf("fragment_renders_total(error) = %v, want 0", got)
	}
	if got := metricHistogramCount(t, c.renderDuration.WithLabelValues("greet")); got == 0 {
		t.Error("expected fragment_render_seconds to have samples")
	}
}

func TestMetricsRecordsErrors(t *testing.T) {
	resetGlobalMetricsForTest()
	h := metricsTestServer(t)

	tests := []struct {
		name      string
		target    string
		fragment  string
		errorType string
	}{
		{"not found", "/fragments/ghost", "ghost", "not_found"},
		{"producer failure", "/fragments/boom", "boom", "internal"},
		{"bad token", "/fragments/greet?token=x.y", "greet", "bad_params"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			c := GetMetrics()
			if got := metricCounterValue(t, c.rendersTotal.WithLabelValues(tt.fragment, "error")); got != 1 {
				t.Errorf("fragment_renders_total(%s, error) = %v, want 1", tt.fragment, got)
			}
			if got := metricCounterValue(t, c.renderErrors.WithLabelValues(tt.fragment, tt.errorType)); got != 1 {
				t.Errorf("fragment_render_errors_total(%s, %s) = %v, want 1", tt.fragment, tt.errorType, got)
			}
		})
	}
}

func TestRecordHelpersWithoutInit(t *testing.T) {
	resetGlobalMetricsForTest()

	// Must not panic when middleware was never installed.
	RecordLiveConnect()
	RecordLiveDisconnect()
	RecordInvalidation()
	RecordLiveSendError()

	if GetMetrics() != nil {
		t.Fatal("GetMetrics() should be nil before initialization")
	}
}
