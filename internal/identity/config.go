package identity

import (
	"log/slog"
)

// Config holds the configuration for the weak identity table.
type Config struct {
	// Presize hints how many live entries the table should be sized for up front.
	// Zero uses the xsync default. Must not be negative.
	Presize int

	// Logger receives debug records for misses and reclaimed entries.
	// Nil falls back to slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a Config with sensible defaults for most use cases.
func DefaultConfig() Config {
	return Config{
		Presize: 1024,
	}
}

// Validate checks if the configuration values are valid.
// Returns an error if any configuration parameter is invalid.
func (c Config) Validate() error {
	if c.Presize < 0 {
		return &ConfigError{Field: "Presize", Message: "must be non-negative"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
