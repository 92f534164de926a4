// Package server provides the HTTP server for the query service.
//
// It routes the query endpoint, the health endpoints and, when enabled, the
// Prometheus metrics endpoint, and manages the listener lifecycle.
//
// # Basic Usage
//
//	srv := server.NewServer(&cfg.Server, server.Options{
//	    Query:       handlers.NewQueryHandler(client, calculator, collector),
//	    Health:      checker,
//	    Metrics:     collector,
//	    MetricsPath: cfg.Telemetry.Metrics.Path,
//	})
//
//	ctx := cli.SetupSignalHandler()
//	if err := srv.Start(ctx); err != nil {
//	    return err
//	}
//
// Start blocks until ctx is canceled. Cancellation stops accepting new
// connections and waits up to server.shutdown_timeout for in-flight
// queries to finish.
//
// # Routes
//
//   - POST /query - answer a question
//   - GET /health - liveness probe (always 200)
//   - GET /ready - readiness probe (503 when a check fails)
//   - GET /version - build information
//   - GET /metrics - Prometheus exposition (path configurable)
//
// # Middleware Chain
//
// Outermost first: RequestID, Logging, Recovery, tracing.
package server
