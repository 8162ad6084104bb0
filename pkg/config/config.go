// Package config provides the configuration schema for packetguard
// diagnostics. Nothing here changes what the guard allows or denies.
package config

// LogLevel is a diagnostics log level name.
type LogLevel string

// Config represents the root configuration.
type Config struct {
	// Log configures the diagnostics log.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log,omitempty" jsonschema:"description=Diagnostics log settings"`
}

// LogConfig configures the diagnostics log file.
type LogConfig struct {
	// File is the log file path. Empty disables logging. A leading "~/" is
	// expanded to the home directory.
	File string `json:"file,omitempty" koanf:"file" toml:"file,omitempty" jsonschema:"description=Log file path; empty disables logging"`

	// Level is one of "debug", "info" or "error". Default: "info".
	Level LogLevel `json:"level,omitempty" koanf:"level" toml:"level,omitempty" jsonschema:"enum=debug,enum=info,enum=error,default=info"`
}

// GetLog returns the log config, never nil.
func (c *Config) GetLog() *LogConfig {
	if c == nil || c.Log == nil {
		return &LogConfig{}
	}

	return c.Log
}

// IsEnabled reports whether a log file is configured.
func (c *LogConfig) IsEnabled() bool {
	return c != nil && c.File != ""
}
