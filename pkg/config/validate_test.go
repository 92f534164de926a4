package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
}

func TestValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{
			name: "tracing without endpoint",
			mutate: func(cfg *Config) {
				cfg.Telemetry.Tracing.Enabled = true
				cfg.Telemetry.Tracing.Endpoint = ""
			},
			field: "telemetry.tracing.endpoint",
		},
		{
			name: "tracing with unknown sampler",
			mutate: func(cfg *Config) {
				cfg.Telemetry.Tracing.Enabled = true
				cfg.Telemetry.Tracing.Sampler = "sometimes"
			},
			field: "telemetry.tracing.sampler",
		},
		{
			name: "tracing ratio out of range",
			mutate: func(cfg *Config) {
				cfg.Telemetry.Tracing.Enabled = true
				cfg.Telemetry.Tracing.Sampler = "ratio"
				cfg.Telemetry.Tracing.SampleRatio = 1.5
			},
			field: "telemetry.tracing.sample_ratio",
		},
		{
			name:   "metrics path shadows version route",
			mutate: func(cfg *Config) { cfg.Telemetry.Metrics.Path = "/version" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "empty listen address",
			mutate: func(cfg *Config) { cfg.Server.ListenAddress = "" },
			field:  "server.listen_address",
		},
		{
			name:   "negative read timeout",
			mutate: func(cfg *Config) { cfg.Server.ReadTimeout = -1 },
			field:  "server.read_timeout",
		},
		{
			name:   "oversized header limit",
			mutate: func(cfg *Config) { cfg.Server.MaxHeaderBytes = 11 * 1024 * 1024 },
			field:  "server.max_header_bytes",
		},
		{
			name:   "api base without scheme",
			mutate: func(cfg *Config) { cfg.LLM.APIBase = "api.openai.com/v1" },
			field:  "llm.api_base",
		},
		{
			name:   "api base without host",
			mutate: func(cfg *Config) { cfg.LLM.APIBase = "https://" },
			field:  "llm.api_base",
		},
		{
			name:   "empty model",
			mutate: func(cfg *Config) { cfg.LLM.Model = "" },
			field:  "llm.model",
		},
		{
			name:   "negative prompt rate",
			mutate: func(cfg *Config) { cfg.LLM.CostPromptPer1K = -0.01 },
			field:  "llm.cost_prompt_per_1k",
		},
		{
			name:   "negative completion rate",
			mutate: func(cfg *Config) { cfg.LLM.CostCompletionPer1K = -0.01 },
			field:  "llm.cost_completion_per_1k",
		},
		{
			name:   "zero default max tokens",
			mutate: func(cfg *Config) { cfg.LLM.DefaultMaxTokens = 0 },
			field:  "llm.default_max_tokens",
		},
		{
			name:   "watch without prompt file",
			mutate: func(cfg *Config) { cfg.LLM.WatchPrompt = true },
			field:  "llm.watch_prompt",
		},
		{
			name:   "template without question",
			mutate: func(cfg *Config) { cfg.LLM.UserTemplate = "Answer this" },
			field:  "llm.user_template",
		},
		{
			name:   "unknown log level",
			mutate: func(cfg *Config) { cfg.Telemetry.Logging.Level = "trace" },
			field:  "telemetry.logging.level",
		},
		{
			name:   "unknown log format",
			mutate: func(cfg *Config) { cfg.Telemetry.Logging.Format = "xml" },
			field:  "telemetry.logging.format",
		},
		{
			name:   "relative metrics path",
			mutate: func(cfg *Config) { cfg.Telemetry.Metrics.Path = "metrics" },
			field:  "telemetry.metrics.path",
		},
		{
			name:   "metrics path collides with query route",
			mutate: func(cfg *Config) { cfg.Telemetry.Metrics.Path = "/query" },
			field:  "telemetry.metrics.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if len(validationErr.Errors) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(validationErr.Errors), validationErr.Errors)
			}
			if validationErr.Errors[0].Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, validationErr.Errors[0].Field)
			}
		})
	}
}

func TestValidate_MissingAPIKeyIsAllowed(t *testing.T) {
	cfg := Default()
	cfg.LLM.APIKey = ""

	if err := Validate(cfg); err != nil {
		t.Errorf("missing credential must not fail validation: %v", err)
	}
}

func TestValidate_DisabledMetricsSkipsPathChecks(t *testing.T) {
	cfg := Default()
	disabled := false
	cfg.Telemetry.Metrics.Enabled = &disabled
	cfg.Telemetry.Metrics.Path = "/query"

	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error with metrics disabled, got %v", err)
	}
}

func TestValidate_DisabledTracingSkipsChecks(t *testing.T) {
	cfg := Default()
	cfg.Telemetry.Tracing.Sampler = "bogus"

	if err := Validate(cfg); err != nil {
		t.Errorf("expected no error with tracing disabled, got %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	single := ValidationError{Errors: []FieldError{{Field: "llm.model", Message: "model is required"}}}
	if got := single.Error(); got != "configuration validation failed: llm.model: model is required" {
		t.Errorf("unexpected single error message: %q", got)
	}

	multi := ValidationError{Errors: []FieldError{
		{Field: "a", Message: "first"},
		{Field: "b", Message: "second"},
	}}
	got := multi.Error()
	if !strings.Contains(got, "2 errors") || !strings.Contains(got, "  - a: first") || !strings.Contains(got, "  - b: second") {
		t.Errorf("unexpected multi error message: %q", got)
	}

	if (ValidationError{}).Error() != "configuration validation failed" {
		t.Error("unexpected empty error message")
	}
}
