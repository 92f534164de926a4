// Package logging configures log/slog for the service.
//
// # Usage
//
//	logger, err := logging.Setup(logging.FromConfig(cfg.Telemetry.Logging))
//	if err != nil {
//	    return err
//	}
//
//	ctx = logging.WithRequestID(ctx, "req-123")
//	slog.InfoContext(ctx, "query answered", "latency_ms", 412)
//	// {"level":"INFO","msg":"query answered","latency_ms":412,"request_id":"req-123"}
//
// # Redaction
//
// Values logged under keys such as api_key, authorization, token or secret
// are masked to their first four characters. Bearer credentials and
// sk-prefixed keys are replaced wherever they appear in string values.
// Token counters (prompt_tokens, tokens) are left alone.
package logging
