package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidYAML(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
server:
  listen_address: "0.0.0.0:9000"
  read_timeout: "45s"

llm:
  api_base: "http://localhost:4000/v1"
  api_key: "test-key-123"
  model: "gpt-4o"
  cost_prompt_per_1k: 0.005
  cost_completion_per_1k: 0.015
  default_max_tokens: 256
  timeout: "20s"

telemetry:
  logging:
    level: "debug"
    format: "text"
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "0.0.0.0:9000" {
		t.Errorf("expected listen address %q, got %q", "0.0.0.0:9000", cfg.Server.ListenAddress)
	}
	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("expected read timeout %v, got %v", 45*time.Second, cfg.Server.ReadTimeout)
	}
	if cfg.LLM.APIKey != "test-key-123" {
		t.Errorf("expected API key %q, got %q", "test-key-123", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("expected model %q, got %q", "gpt-4o", cfg.LLM.Model)
	}
	if cfg.LLM.CostPromptPer1K != 0.005 || cfg.LLM.CostCompletionPer1K != 0.015 {
		t.Errorf("unexpected cost rates %v / %v", cfg.LLM.CostPromptPer1K, cfg.LLM.CostCompletionPer1K)
	}
	if cfg.LLM.DefaultMaxTokens != 256 {
		t.Errorf("expected default max tokens 256, got %d", cfg.LLM.DefaultMaxTokens)
	}
	if cfg.LLM.Timeout != 20*time.Second {
		t.Errorf("expected timeout %v, got %v", 20*time.Second, cfg.LLM.Timeout)
	}
	if cfg.Telemetry.Logging.Level != "debug" {
		t.Errorf("expected logging level %q, got %q", "debug", cfg.Telemetry.Logging.Level)
	}

	// Unset fields fall back to defaults
	if cfg.Server.WriteTimeout != DefaultWriteTimeout {
		t.Errorf("expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.LLM.UserTemplate != DefaultUserTemplate {
		t.Errorf("expected default user template, got %q", cfg.LLM.UserTemplate)
	}
}

func TestLoadConfig_ValidTOML(t *testing.T) {
	configPath := writeFile(t, "config.toml", `
[server]
listen_address = "127.0.0.1:9100"

[llm]
model = "gpt-4o-mini"
default_max_tokens = 64
timeout = "15s"

[telemetry.logging]
format = "text"
`)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Server.ListenAddress != "127.0.0.1:9100" {
		t.Errorf("expected listen address %q, got %q", "127.0.0.1:9100", cfg.Server.ListenAddress)
	}
	if cfg.LLM.DefaultMaxTokens != 64 {
		t.Errorf("expected default max tokens 64, got %d", cfg.LLM.DefaultMaxTokens)
	}
	if cfg.LLM.Timeout != 15*time.Second {
		t.Errorf("expected timeout 15s, got %v", cfg.LLM.Timeout)
	}
	if cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("expected text format, got %q", cfg.Telemetry.Logging.Format)
	}
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.LLM.APIBase != DefaultAPIBase {
		t.Errorf("expected api base %q, got %q", DefaultAPIBase, cfg.LLM.APIBase)
	}
	if cfg.LLM.Model != DefaultModel {
		t.Errorf("expected model %q, got %q", DefaultModel, cfg.LLM.Model)
	}
	if cfg.LLM.CostPromptPer1K != 0.03 || cfg.LLM.CostCompletionPer1K != 0.06 {
		t.Errorf("unexpected default rates %v / %v", cfg.LLM.CostPromptPer1K, cfg.LLM.CostCompletionPer1K)
	}
	if cfg.LLM.DefaultMaxTokens != 512 {
		t.Errorf("expected default max tokens 512, got %d", cfg.LLM.DefaultMaxTokens)
	}
	if cfg.LLM.Timeout != 60*time.Second {
		t.Errorf("expected 60s provider timeout, got %v", cfg.LLM.Timeout)
	}
	if cfg.LLM.APIKey != "" {
		t.Errorf("expected no API key without environment, got %q", cfg.LLM.APIKey)
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected file not found error, got: %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
server:
  listen_address: "0.0.0.0:8080"
  invalid yaml here: [
`)

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadConfig_ValidationFailure(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
llm:
  api_base: "ftp://example.com"
  default_max_tokens: -5

telemetry:
  logging:
    level: "verbose"
`)

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validationErr.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(validationErr.Errors), validationErr.Errors)
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	configPath := writeFile(t, "config.yaml", `
llm:
  api_key: "file-key"
  model: "gpt-4o"
`)

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvAPIBase, "http://127.0.0.1:9999/v1")
	t.Setenv(EnvModel, "")
	t.Setenv(EnvCostPromptPer1K, "0.5")
	t.Setenv(EnvCostCompletionPer1K, "not-a-number")
	t.Setenv(EnvDefaultMaxTokens, "42")
	t.Setenv(EnvPrefix+"SERVER_LISTEN_ADDRESS", "0.0.0.0:7000")
	t.Setenv(EnvPrefix+"TELEMETRY_METRICS_ENABLED", "false")

	cfg, err := LoadConfigWithEnvOverrides(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.LLM.APIKey != "env-key" {
		t.Errorf("expected env API key to win, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.APIBase != "http://127.0.0.1:9999/v1" {
		t.Errorf("unexpected api base %q", cfg.LLM.APIBase)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("empty env var must not override model, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.CostPromptPer1K != 0.5 {
		t.Errorf("expected prompt rate 0.5, got %v", cfg.LLM.CostPromptPer1K)
	}
	if cfg.LLM.CostCompletionPer1K != DefaultCostCompletionPer1K {
		t.Errorf("malformed env rate must be ignored, got %v", cfg.LLM.CostCompletionPer1K)
	}
	if cfg.LLM.DefaultMaxTokens != 42 {
		t.Errorf("expected default max tokens 42, got %d", cfg.LLM.DefaultMaxTokens)
	}
	if cfg.Server.ListenAddress != "0.0.0.0:7000" {
		t.Errorf("unexpected listen address %q", cfg.Server.ListenAddress)
	}
	if cfg.Telemetry.Metrics.IsEnabled() {
		t.Error("expected metrics disabled by environment")
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	t.Setenv(EnvDefaultMaxTokens, "0")

	_, err := LoadConfigWithEnvOverrides("")
	if err == nil {
		t.Fatal("expected validation error after overrides")
	}
	if !strings.Contains(err.Error(), "llm.default_max_tokens") {
		t.Errorf("expected default_max_tokens error, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	envPath := writeFile(t, ".env", "OPENAI_MODEL=gpt-from-dotenv\n")

	// Register cleanup for the variable godotenv sets.
	t.Setenv(EnvModel, "")
	os.Unsetenv(EnvModel)

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}

	cfg, err := LoadConfigWithEnvOverrides("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.LLM.Model != "gpt-from-dotenv" {
		t.Errorf("expected model from .env, got %q", cfg.LLM.Model)
	}
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("expected missing .env to be ignored, got %v", err)
	}
	if err := LoadDotEnv(""); err != nil {
		t.Errorf("expected empty path to be ignored, got %v", err)
	}
}
