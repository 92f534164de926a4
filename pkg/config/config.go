package config

import "time"

// Config is the root configuration structure for textutil.
// It contains the HTTP server settings, the LLM provider settings used by the
// query client, and telemetry settings.
type Config struct {
	// Server contains HTTP server configuration including listen address
	// and timeouts.
	Server ServerConfig `yaml:"server" toml:"server"`

	// LLM contains the provider endpoint, credential, model, pricing and
	// prompt settings used for every query.
	LLM LLMConfig `yaml:"llm" toml:"llm"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`
}

// ServerConfig contains configuration for the HTTP server.
type ServerConfig struct {
	// ListenAddress is the address and port to listen on.
	// Format: "host:port" (e.g., "127.0.0.1:8000", "0.0.0.0:8000").
	// Default: "127.0.0.1:8000"
	ListenAddress string `yaml:"listen_address" toml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the
	// response. It must leave room for the provider timeout.
	// Default: 75s
	WriteTimeout time.Duration `yaml:"write_timeout" toml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 120s
	IdleTimeout time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for in-flight requests
	// during graceful shutdown.
	// Default: 30s
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" toml:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	// Default: 1048576 (1MB)
	MaxHeaderBytes int `yaml:"max_header_bytes" toml:"max_header_bytes"`
}

// LLMConfig is the provider snapshot consumed by the query client.
// It is built once at startup and passed by value afterwards.
type LLMConfig struct {
	// APIBase is the base URL of the chat-completions API.
	// Default: "https://api.openai.com/v1"
	APIBase string `yaml:"api_base" toml:"api_base"`

	// APIKey is the bearer credential sent to the provider. It may be empty
	// in offline and test setups.
	APIKey string `yaml:"api_key" toml:"api_key"`

	// Model is the model identifier sent with every request and reported in
	// query metrics.
	// Default: "gpt-4o-mini"
	Model string `yaml:"model" toml:"model"`

	// CostPromptPer1K is the USD price of 1000 prompt tokens.
	// Default: 0.03
	CostPromptPer1K float64 `yaml:"cost_prompt_per_1k" toml:"cost_prompt_per_1k"`

	// CostCompletionPer1K is the USD price of 1000 completion tokens.
	// Default: 0.06
	CostCompletionPer1K float64 `yaml:"cost_completion_per_1k" toml:"cost_completion_per_1k"`

	// DefaultMaxTokens is the completion limit used when a query does not
	// carry its own.
	// Default: 512
	DefaultMaxTokens int `yaml:"default_max_tokens" toml:"default_max_tokens"`

	// Timeout bounds a single provider call.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`

	// SystemPromptFile optionally replaces the built-in system prompt with
	// the contents of a file.
	SystemPromptFile string `yaml:"system_prompt_file" toml:"system_prompt_file"`

	// WatchPrompt reloads SystemPromptFile when it changes on disk.
	// Default: false
	WatchPrompt bool `yaml:"watch_prompt" toml:"watch_prompt"`

	// UserTemplate renders the user turn. "{question}" is replaced with the
	// incoming question.
	// Default: "{question}"
	UserTemplate string `yaml:"user_template" toml:"user_template"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging" toml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`

	// Tracing contains OpenTelemetry tracing configuration.
	Tracing TracingConfig `yaml:"tracing" toml:"tracing"`
}

// LoggingConfig contains configuration for structured logging.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Options: "debug", "info", "warn", "error"
	// Default: "info"
	Level string `yaml:"level" toml:"level"`

	// Format is the log output format.
	// Options: "json", "text"
	// Default: "json"
	Format string `yaml:"format" toml:"format"`

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool `yaml:"add_source" toml:"add_source"`
}

// TracingConfig contains configuration for OpenTelemetry tracing.
type TracingConfig struct {
	// Enabled turns span export on. When false a no-op tracer is used.
	// Default: false
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Endpoint is the OTLP gRPC collector address.
	// Default: "localhost:4317"
	Endpoint string `yaml:"endpoint" toml:"endpoint"`

	// Insecure disables TLS towards the collector.
	// Default: false
	Insecure bool `yaml:"insecure" toml:"insecure"`

	// Timeout bounds each export.
	// Default: 10s
	Timeout time.Duration `yaml:"timeout" toml:"timeout"`

	// Sampler is the sampling strategy.
	// Options: "always", "never", "ratio"
	// Default: "always"
	Sampler string `yaml:"sampler" toml:"sampler"`

	// SampleRatio is the fraction of traces kept by the "ratio" sampler.
	// Default: 1.0
	SampleRatio float64 `yaml:"sample_ratio" toml:"sample_ratio"`

	// ServiceName is reported as the service.name resource attribute.
	// Default: "textutil"
	ServiceName string `yaml:"service_name" toml:"service_name"`
}

// MetricsConfig contains configuration for Prometheus metrics.
type MetricsConfig struct {
	// Enabled controls whether metrics are recorded and exposed.
	// Default: true
	Enabled *bool `yaml:"enabled" toml:"enabled"`

	// Path is the HTTP path for the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path" toml:"path"`

	// Namespace prefixes every metric name.
	// Default: "textutil"
	Namespace string `yaml:"namespace" toml:"namespace"`

	// Subsystem is the second metric name component.
	// Default: "query"
	Subsystem string `yaml:"subsystem" toml:"subsystem"`

	// RequestDurationBuckets are the histogram buckets for query latency in
	// seconds.
	RequestDurationBuckets []float64 `yaml:"request_duration_buckets" toml:"request_duration_buckets"`
}

// IsEnabled reports whether metrics are enabled. A nil Enabled means the
// default (enabled).
func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}
