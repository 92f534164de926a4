package config

import "sync/atomic"

var current atomic.Pointer[Config]

// GetConfig returns the process-wide configuration, or nil before
// SetConfig. Components take a *Config explicitly; this is for the
// command layer.
func GetConfig() *Config {
	return current.Load()
}

// SetConfig replaces the process-wide configuration. The CLI installs the
// loaded configuration here before any command runs against it.
func SetConfig(cfg *Config) {
	current.Store(cfg)
}

// MustGetConfig is GetConfig that panics when nothing has been installed.
func MustGetConfig() *Config {
	cfg := GetConfig()
	if cfg == nil {
		panic("configuration not initialized: call SetConfig first")
	}
	return cfg
}
