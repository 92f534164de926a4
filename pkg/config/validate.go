package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g., "llm.api_base").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It implements the error interface and provides access to all field errors.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. It returns nil if the configuration is valid.
// All validation errors are collected and returned together.
//
// The provider credential is deliberately not required: offline and test
// deployments run without one, and readiness reports its absence instead.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateServer(&cfg.Server)...)
	errs = append(errs, validateLLM(&cfg.LLM)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}

	return nil
}

// validateServer validates server configuration.
func validateServer(cfg *ServerConfig) []FieldError {
	var errs []FieldError

	if cfg.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "server.listen_address",
			Message: "listen address is required",
		})
	}

	if cfg.ReadTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.read_timeout",
			Message: "read timeout must be positive",
		})
	}
	if cfg.WriteTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.write_timeout",
			Message: "write timeout must be positive",
		})
	}
	if cfg.IdleTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.idle_timeout",
			Message: "idle timeout must be positive",
		})
	}
	if cfg.ShutdownTimeout < 0 {
		errs = append(errs, FieldError{
			Field:   "server.shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}

	if cfg.MaxHeaderBytes < 0 {
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes must be non-negative",
		})
	}
	if cfg.MaxHeaderBytes > 10*1024*1024 { // 10MB is excessive
		errs = append(errs, FieldError{
			Field:   "server.max_header_bytes",
			Message: "max header bytes exceeds reasonable limit (10MB)",
		})
	}

	return errs
}

// validateLLM validates the provider snapshot.
func validateLLM(cfg *LLMConfig) []FieldError {
	var errs []FieldError

	if cfg.APIBase == "" {
		errs = append(errs, FieldError{
			Field:   "llm.api_base",
			Message: "api base URL is required",
		})
	} else if u, err := url.Parse(cfg.APIBase); err != nil {
		errs = append(errs, FieldError{
			Field:   "llm.api_base",
			Message: fmt.Sprintf("invalid URL: %v", err),
		})
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, FieldError{
			Field:   "llm.api_base",
			Message: "URL scheme must be http or https",
		})
	} else if u.Host == "" {
		errs = append(errs, FieldError{
			Field:   "llm.api_base",
			Message: "URL must include a host",
		})
	}

	if cfg.Model == "" {
		errs = append(errs, FieldError{
			Field:   "llm.model",
			Message: "model is required",
		})
	}

	if cfg.CostPromptPer1K < 0 {
		errs = append(errs, FieldError{
			Field:   "llm.cost_prompt_per_1k",
			Message: "cost must be non-negative",
		})
	}
	if cfg.CostCompletionPer1K < 0 {
		errs = append(errs, FieldError{
			Field:   "llm.cost_completion_per_1k",
			Message: "cost must be non-negative",
		})
	}

	if cfg.DefaultMaxTokens <= 0 {
		errs = append(errs, FieldError{
			Field:   "llm.default_max_tokens",
			Message: "default max tokens must be positive",
		})
	}

	if cfg.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "llm.timeout",
			Message: "timeout must be positive",
		})
	}

	if cfg.WatchPrompt && cfg.SystemPromptFile == "" {
		errs = append(errs, FieldError{
			Field:   "llm.watch_prompt",
			Message: "watching requires llm.system_prompt_file",
		})
	}

	if cfg.UserTemplate != "" && !strings.Contains(cfg.UserTemplate, "{question}") {
		errs = append(errs, FieldError{
			Field:   "llm.user_template",
			Message: "template must reference {question}",
		})
	}

	return errs
}

// validateTelemetry validates telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("invalid log level %q (must be debug, info, warn, or error)", cfg.Logging.Level),
		})
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("invalid log format %q (must be json or text)", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.IsEnabled() {
		if !strings.HasPrefix(cfg.Metrics.Path, "/") {
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: "metrics path must start with /",
			})
		}
		switch cfg.Metrics.Path {
		case "/query", "/health", "/ready", "/version":
			errs = append(errs, FieldError{
				Field:   "telemetry.metrics.path",
				Message: fmt.Sprintf("metrics path %q collides with a built-in route", cfg.Metrics.Path),
			})
		}
	}

	errs = append(errs, validateTracing(&cfg.Tracing)...)

	return errs
}

// validateTracing validates tracing configuration. Settings are only checked
// when tracing is enabled.
func validateTracing(cfg *TracingConfig) []FieldError {
	if !cfg.Enabled {
		return nil
	}

	var errs []FieldError

	if cfg.Endpoint == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.endpoint",
			Message: "endpoint is required when tracing is enabled",
		})
	}

	switch cfg.Sampler {
	case "always", "never":
	case "ratio":
		if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
			errs = append(errs, FieldError{
				Field:   "telemetry.tracing.sample_ratio",
				Message: fmt.Sprintf("sample ratio must be between 0 and 1, got %g", cfg.SampleRatio),
			})
		}
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.tracing.sampler",
			Message: fmt.Sprintf("invalid sampler %q (must be always, never, or ratio)", cfg.Sampler),
		})
	}

	return errs
}
