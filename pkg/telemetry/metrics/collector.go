package metrics

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"mercator-hq/textutil/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Query status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// otherLabel replaces label values once the cardinality limit is reached.
const otherLabel = "other"

// Collector owns the Prometheus metrics recorded by the query service.
// All Record methods are no-ops when metrics are disabled.
type Collector struct {
	config   config.MetricsConfig
	registry *prometheus.Registry
	enabled  bool

	requestMetrics  *RequestMetrics
	providerMetrics *ProviderMetrics
	costMetrics     *CostMetrics

	cardinalityLimiter *CardinalityLimiter
}

// NewCollector creates a collector and registers its metrics with registry.
// A nil registry gets a fresh one. A disabled collector registers nothing.
//
// Example:
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
func NewCollector(cfg config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}
	if len(cfg.RequestDurationBuckets) == 0 {
		cfg.RequestDurationBuckets = append([]float64(nil), config.DefaultRequestDurationBuckets...)
	}

	c := &Collector{
		config:             cfg,
		registry:           registry,
		enabled:            cfg.IsEnabled(),
		cardinalityLimiter: NewCardinalityLimiter(1000),
	}

	if !c.enabled {
		return c
	}

	c.requestMetrics = NewRequestMetrics(cfg, registry)
	c.providerMetrics = NewProviderMetrics(cfg, registry)
	c.costMetrics = NewCostMetrics(cfg, registry)

	return c
}

// Enabled reports whether the collector records anything.
func (c *Collector) Enabled() bool {
	return c.enabled
}

// RecordQuery records a finished query.
//
// Parameters:
//   - model: Model name reported in the response metrics
//   - status: StatusSuccess or StatusError
//   - duration: Wall time of the query
//   - promptTokens, completionTokens: Token usage (zero on failure)
//   - costUSD: Estimated cost (zero on failure)
func (c *Collector) RecordQuery(model, status string, duration time.Duration, promptTokens, completionTokens int, costUSD float64) {
	if !c.enabled {
		return
	}

	model = c.limitModel(model, status)

	c.requestMetrics.RecordRequest(model, status, duration)
	c.requestMetrics.RecordTokens(model, promptTokens, completionTokens)
	c.costMetrics.RecordRequestCost(model, costUSD)
}

// RecordProviderError records a failed provider call. A zero status code
// means the request never got a response.
func (c *Collector) RecordProviderError(model string, statusCode int) {
	if !c.enabled {
		return
	}

	code := "none"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}

	c.providerMetrics.RecordError(c.limitModel(model, code), code)
}

// RecordProviderLatency records the latency of a provider call.
func (c *Collector) RecordProviderLatency(model string, latency time.Duration) {
	if !c.enabled {
		return
	}

	c.providerMetrics.RecordLatency(c.limitModel(model, "latency"), latency)
}

// TrackInFlight increments the in-flight gauge and returns the matching
// decrement.
func (c *Collector) TrackInFlight() func() {
	if !c.enabled {
		return func() {}
	}

	c.requestMetrics.inFlight.Inc()
	return c.requestMetrics.inFlight.Dec
}

// ObservePromptLoads exposes a monotonically increasing count of system
// prompt loads, read from fn at scrape time.
func (c *Collector) ObservePromptLoads(fn func() int64) error {
	if !c.enabled {
		return nil
	}

	counter := prometheus.NewCounterFunc(
		prometheus.CounterOpts{
			Namespace: c.config.Namespace,
			Subsystem: c.config.Subsystem,
			Name:      "prompt_loads_total",
			Help:      "Number of successful system prompt loads",
		},
		func() float64 { return float64(fn()) },
	)

	if err := c.registry.Register(counter); err != nil {
		return fmt.Errorf("failed to register prompt load counter: %w", err)
	}
	return nil
}

// Registry returns the Prometheus registry used by this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) limitModel(model, qualifier string) string {
	if !c.cardinalityLimiter.Allow(model + ":" + qualifier) {
		return otherLabel
	}
	return model
}

// CardinalityLimiter prevents metric cardinality explosion by limiting
// the number of unique label combinations per metric.
type CardinalityLimiter struct {
	maxCardinality int
	current        map[string]struct{}
	mu             sync.RWMutex
}

// NewCardinalityLimiter creates a new cardinality limiter with the specified
// maximum cardinality.
func NewCardinalityLimiter(maxCardinality int) *CardinalityLimiter {
	return &CardinalityLimiter{
		maxCardinality: maxCardinality,
		current:        make(map[string]struct{}),
	}
}

// Allow checks if a label set is allowed. Returns true if the label set
// already exists or if we haven't reached the cardinality limit yet.
func (cl *CardinalityLimiter) Allow(labelSet string) bool {
	cl.mu.RLock()
	if _, exists := cl.current[labelSet]; exists {
		cl.mu.RUnlock()
		return true
	}
	cl.mu.RUnlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.current[labelSet]; exists {
		return true
	}

	if len(cl.current) >= cl.maxCardinality {
		return false
	}

	cl.current[labelSet] = struct{}{}
	return true
}

// Count returns the current cardinality.
func (cl *CardinalityLimiter) Count() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.current)
}
