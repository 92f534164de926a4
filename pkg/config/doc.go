// Package config provides configuration management for textutil.
//
// Configuration is read once at startup and treated as an immutable snapshot
// afterwards. It may come from a YAML or TOML file, and environment variables
// always take precedence over the file.
//
// # Configuration Loading
//
//	// Defaults + environment only
//	cfg, err := config.LoadConfigWithEnvOverrides("")
//
//	// File + defaults + environment
//	cfg, err := config.LoadConfigWithEnvOverrides("textutil.yaml")
//
// Files ending in ".toml" are decoded as TOML; any other extension is YAML.
//
// # Environment Variables
//
// The provider settings keep their historical names:
//
//   - OPENAI_API_KEY, OPENAI_API_BASE, OPENAI_MODEL
//   - LLM_COST_PROMPT_PER_1K, LLM_COST_COMPLETION_PER_1K
//   - LLM_DEFAULT_MAX_TOKENS
//
// Everything else follows TEXTUTIL_SECTION_FIELD, for example
// TEXTUTIL_SERVER_LISTEN_ADDRESS or TEXTUTIL_TELEMETRY_LOGGING_LEVEL.
// LoadDotEnv populates the environment from a .env file before loading.
//
// # Configuration Precedence
//
//  1. Values from the file
//  2. Default values (defined in defaults.go) for fields left empty
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Example YAML
//
//	server:
//	  listen_address: "0.0.0.0:8000"
//	llm:
//	  api_base: "https://api.openai.com/v1"
//	  model: "gpt-4o-mini"
//	  cost_prompt_per_1k: 0.03
//	  cost_completion_per_1k: 0.06
//	  default_max_tokens: 512
//	telemetry:
//	  logging:
//	    level: "info"
//	    format: "json"
package config
