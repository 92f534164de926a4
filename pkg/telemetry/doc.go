// Package telemetry groups the observability packages of textutil.
//
// # Components
//
//   - logging: log/slog setup with request IDs and credential redaction
//   - metrics: Prometheus collector for queries, tokens, cost and provider errors
//   - tracing: OpenTelemetry spans for inbound requests and provider calls
//   - health: liveness, readiness and version endpoints
//
// # Usage
//
//	logger, err := logging.Setup(logging.FromConfig(cfg.Telemetry.Logging))
//
//	collector := metrics.NewCollector(cfg.Telemetry.Metrics, nil)
//	mux.Handle(cfg.Telemetry.Metrics.Path, collector.Handler())
//
//	tracer, err := tracing.New(cfg.Telemetry.Tracing, version)
//	defer tracer.Shutdown(ctx)
//
//	checker := health.New(0)
//	checker.RegisterCheck(health.CheckCredential, health.CredentialCheck(cfg.LLM.APIKey))
//	checker.Mount(mux, version, commit, buildTime)
package telemetry
