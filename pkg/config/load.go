package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every textutil-specific environment variable.
const EnvPrefix = "TEXTUTIL_"

// Provider environment variables. These keep the names the service has
// always read so existing deployments need no changes.
const (
	EnvAPIKey              = "OPENAI_API_KEY"
	EnvAPIBase             = "OPENAI_API_BASE"
	EnvModel               = "OPENAI_MODEL"
	EnvCostPromptPer1K     = "LLM_COST_PROMPT_PER_1K"
	EnvCostCompletionPer1K = "LLM_COST_COMPLETION_PER_1K"
	EnvDefaultMaxTokens    = "LLM_DEFAULT_MAX_TOKENS"
)

// LoadConfig loads configuration from a YAML or TOML file at the specified
// path. Files ending in ".toml" are decoded as TOML, everything else as YAML.
// It applies default values, validates the configuration, and returns any
// errors. An empty path yields the defaults.
//
// The configuration is not modified by environment variables; use
// LoadConfigWithEnvOverrides for that functionality.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a file (optional) and
// applies environment variable overrides. Environment variables always take
// precedence over file-based configuration.
//
// The loading sequence is:
// 1. Load YAML/TOML from file (skipped when path is empty)
// 2. Apply default values
// 3. Apply environment variable overrides
// 4. Validate final configuration
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads environment variables from a dotenv file. Variables that
// are already set in the process environment win. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load env file %q: %w", path, err)
	}
	return nil
}

// decodeFile reads path and decodes it into cfg based on its extension.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Malformed numeric, boolean and duration values are ignored.
func applyEnvOverrides(cfg *Config) {
	// Provider overrides
	if val := os.Getenv(EnvAPIKey); val != "" {
		cfg.LLM.APIKey = val
	}
	if val := os.Getenv(EnvAPIBase); val != "" {
		cfg.LLM.APIBase = val
	}
	if val := os.Getenv(EnvModel); val != "" {
		cfg.LLM.Model = val
	}
	if val := os.Getenv(EnvCostPromptPer1K); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.LLM.CostPromptPer1K = f
		}
	}
	if val := os.Getenv(EnvCostCompletionPer1K); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.LLM.CostCompletionPer1K = f
		}
	}
	if val := os.Getenv(EnvDefaultMaxTokens); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.LLM.DefaultMaxTokens = i
		}
	}
	if val := os.Getenv(EnvPrefix + "LLM_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.LLM.Timeout = d
		}
	}
	if val := os.Getenv(EnvPrefix + "LLM_SYSTEM_PROMPT_FILE"); val != "" {
		cfg.LLM.SystemPromptFile = val
	}
	if val := os.Getenv(EnvPrefix + "LLM_WATCH_PROMPT"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.LLM.WatchPrompt = b
		}
	}
	if val := os.Getenv(EnvPrefix + "LLM_USER_TEMPLATE"); val != "" {
		cfg.LLM.UserTemplate = val
	}

	// Server overrides
	if val := os.Getenv(EnvPrefix + "SERVER_LISTEN_ADDRESS"); val != "" {
		cfg.Server.ListenAddress = val
	}
	if val := os.Getenv(EnvPrefix + "SERVER_READ_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ReadTimeout = d
		}
	}
	if val := os.Getenv(EnvPrefix + "SERVER_WRITE_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.WriteTimeout = d
		}
	}
	if val := os.Getenv(EnvPrefix + "SERVER_SHUTDOWN_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	// Telemetry overrides
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Metrics.Enabled = &b
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_METRICS_PATH"); val != "" {
		cfg.Telemetry.Metrics.Path = val
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_TRACING_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.Tracing.Enabled = b
		}
	}
	if val := os.Getenv(EnvPrefix + "TELEMETRY_TRACING_ENDPOINT"); val != "" {
		cfg.Telemetry.Tracing.Endpoint = val
	}
}
