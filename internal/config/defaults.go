// Package config loads the diagnostics configuration.
package config

import (
	"github.com/smykla-skalski/packetguard/pkg/config"
)

// DefaultLogLevel is the level used when none is configured.
const DefaultLogLevel config.LogLevel = "info"

// DefaultConfig returns a Config with all default values populated.
// Logging is disabled by default.
func DefaultConfig() *config.Config {
	return &config.Config{
		Log: &config.LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// defaultsToMap flattens DefaultConfig for the koanf confmap provider.
func defaultsToMap() map[string]any {
	cfg := DefaultConfig()

	return map[string]any{
		"log.file":  cfg.Log.File,
		"log.level": cfg.Log.Level,
	}
}
