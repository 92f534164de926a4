package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"mercator-hq/textutil/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testConfig() config.MetricsConfig {
	return config.MetricsConfig{
		Namespace:              "test",
		Subsystem:              "metrics",
		RequestDurationBuckets: []float64{0.1, 0.5, 1.0, 5.0},
	}
}

func TestCollector_NewCollector(t *testing.T) {
	registry := prometheus.NewRegistry()

	collector := NewCollector(testConfig(), registry)

	if collector.Registry() != registry {
		t.Error("Collector registry not set correctly")
	}
	if !collector.Enabled() {
		t.Error("nil Enabled should mean enabled")
	}
}

func TestCollector_NewCollectorDefaults(t *testing.T) {
	collector := NewCollector(config.MetricsConfig{}, nil)
	collector.RecordQuery("gpt-4o-mini", StatusSuccess, time.Second, 1, 1, 0)

	count, err := testutil.GatherAndCount(collector.Registry(), "textutil_query_requests_total")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 series, got %d", count)
	}
}

func TestCollector_RecordQuery(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordQuery("gpt-4o-mini", StatusSuccess, 1200*time.Millisecond, 10, 50, 0.0033)
	collector.RecordQuery("gpt-4o-mini", StatusSuccess, 300*time.Millisecond, 5, 5, 0.00045)
	collector.RecordQuery("gpt-4o-mini", StatusError, 10*time.Millisecond, 0, 0, 0)

	rm := collector.requestMetrics
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues("gpt-4o-mini", StatusSuccess)); got != 2 {
		t.Errorf("success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues("gpt-4o-mini", StatusError)); got != 1 {
		t.Errorf("error count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rm.tokensTotal.WithLabelValues("gpt-4o-mini", "prompt")); got != 15 {
		t.Errorf("prompt tokens = %v, want 15", got)
	}
	if got := testutil.ToFloat64(rm.tokensTotal.WithLabelValues("gpt-4o-mini", "completion")); got != 55 {
		t.Errorf("completion tokens = %v, want 55", got)
	}

	cost := testutil.ToFloat64(collector.costMetrics.costTotal.WithLabelValues("gpt-4o-mini"))
	if cost < 0.00374 || cost > 0.00376 {
		t.Errorf("cost total = %v, want 0.00375", cost)
	}
}

func TestCollector_RecordProviderError(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	collector.RecordProviderError("gpt-4o-mini", 401)
	collector.RecordProviderError("gpt-4o-mini", 401)
	collector.RecordProviderError("gpt-4o-mini", 0)

	errs := collector.providerMetrics.errors
	if got := testutil.ToFloat64(errs.WithLabelValues("gpt-4o-mini", "401")); got != 2 {
		t.Errorf("401 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(errs.WithLabelValues("gpt-4o-mini", "none")); got != 1 {
		t.Errorf("transport error count = %v, want 1", got)
	}
}

func TestCollector_RecordProviderLatency(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.RecordProviderLatency("gpt-4o-mini", 250*time.Millisecond)

	count, err := testutil.GatherAndCount(collector.Registry(), "test_metrics_provider_latency_seconds")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 histogram series, got %d", count)
	}
}

func TestCollector_TrackInFlight(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	done := collector.TrackInFlight()
	if got := testutil.ToFloat64(collector.requestMetrics.inFlight); got != 1 {
		t.Errorf("in flight = %v, want 1", got)
	}

	done()
	if got := testutil.ToFloat64(collector.requestMetrics.inFlight); got != 0 {
		t.Errorf("in flight = %v, want 0", got)
	}
}

func TestCollector_ObservePromptLoads(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	var loads int64 = 3
	if err := collector.ObservePromptLoads(func() int64 { return loads }); err != nil {
		t.Fatal(err)
	}

	expected := `
# HELP test_metrics_prompt_loads_total Number of successful system prompt loads
# TYPE test_metrics_prompt_loads_total counter
test_metrics_prompt_loads_total 3
`
	if err := testutil.GatherAndCompare(collector.Registry(), strings.NewReader(expected), "test_metrics_prompt_loads_total"); err != nil {
		t.Error(err)
	}

	if err := collector.ObservePromptLoads(func() int64 { return 0 }); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestCollector_Disabled(t *testing.T) {
	cfg := testConfig()
	disabled := false
	cfg.Enabled = &disabled
	collector := NewCollector(cfg, nil)

	collector.RecordQuery("gpt-4o-mini", StatusSuccess, time.Second, 10, 10, 0.1)
	collector.RecordProviderError("gpt-4o-mini", 500)
	collector.TrackInFlight()()
	if err := collector.ObservePromptLoads(func() int64 { return 1 }); err != nil {
		t.Fatal(err)
	}

	count, err := testutil.GatherAndCount(collector.Registry())
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("disabled collector recorded %d series", count)
	}
}

func TestCollector_ModelCardinality(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.cardinalityLimiter = NewCardinalityLimiter(1)

	collector.RecordQuery("model-a", StatusSuccess, time.Second, 0, 0, 0)
	collector.RecordQuery("model-b", StatusSuccess, time.Second, 0, 0, 0)

	rm := collector.requestMetrics
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues("model-a", StatusSuccess)); got != 1 {
		t.Errorf("model-a = %v, want 1", got)
	}
	if got := testutil.ToFloat64(rm.requestsTotal.WithLabelValues(otherLabel, StatusSuccess)); got != 1 {
		t.Errorf("overflow = %v, want 1", got)
	}
}

func TestCardinalityLimiter(t *testing.T) {
	limiter := NewCardinalityLimiter(2)

	if !limiter.Allow("a") || !limiter.Allow("b") {
		t.Fatal("first two label sets should be allowed")
	}
	if limiter.Allow("c") {
		t.Error("third label set should be rejected")
	}
	if !limiter.Allow("a") {
		t.Error("existing label set should stay allowed")
	}
	if limiter.Count() != 2 {
		t.Errorf("Count() = %d, want 2", limiter.Count())
	}
}

func TestCostMetrics_IgnoresNonPositive(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.costMetrics.RecordRequestCost("gpt-4o-mini", 0)
	collector.costMetrics.RecordRequestCost("gpt-4o-mini", -1)

	count, err := testutil.GatherAndCount(collector.Registry(), "test_metrics_cost_usd_total")
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("expected no cost series, got %d", count)
	}
}

func TestCollector_Handler(t *testing.T) {
	collector := NewCollector(testConfig(), nil)
	collector.RecordQuery("gpt-4o-mini", StatusSuccess, time.Second, 10, 50, 0.0033)

	rec := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `test_metrics_requests_total{model="gpt-4o-mini",status="success"} 1`) {
		t.Errorf("metrics output missing request counter:\n%s", rec.Body.String())
	}
}

func TestCollector_ConcurrentRecording(t *testing.T) {
	collector := NewCollector(testConfig(), nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				done := collector.TrackInFlight()
				collector.RecordQuery("gpt-4o-mini", StatusSuccess, time.Millisecond, 1, 1, 0.001)
				done()
			}
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(collector.requestMetrics.requestsTotal.WithLabelValues("gpt-4o-mini", StatusSuccess)); got != 1000 {
		t.Errorf("requests = %v, want 1000", got)
	}
}
