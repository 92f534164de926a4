// Package metrics records Prometheus metrics for the query service.
//
// # Metrics
//
// With the default namespace "textutil" and subsystem "query":
//
//	textutil_query_requests_total{model,status}
//	textutil_query_request_duration_seconds{model}
//	textutil_query_tokens_total{model,type}
//	textutil_query_in_flight
//	textutil_query_provider_latency_seconds{model}
//	textutil_query_provider_errors_total{model,status_code}
//	textutil_query_cost_usd_total{model}
//	textutil_query_cost_per_request_usd{model}
//	textutil_query_prompt_loads_total
//
// # Usage
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	collector.RecordQuery("gpt-4o-mini", metrics.StatusSuccess, elapsed, 10, 50, 0.0033)
//	mux.Handle("/metrics", collector.Handler())
//
// Model labels are capped by a cardinality limiter. Label sets beyond the
// limit are folded into model="other".
package metrics
