// Package tracing wires OpenTelemetry tracing into the service.
//
// Tracing is off by default. When telemetry.tracing.enabled is set, spans are
// batched to an OTLP gRPC collector and the tracer becomes the global
// provider:
//
//	tracer, err := tracing.New(cfg.Telemetry.Tracing, version)
//	if err != nil {
//	    return err
//	}
//	defer tracer.Shutdown(context.Background())
//
// Components start spans with the package-level Start, which reads the
// global provider. HTTPMiddleware continues W3C traceparent headers from
// callers, and the provider transport injects them into outbound calls, so a
// query shows up as one trace: server span, llm.call, provider request.
package tracing
