// Package config provides configuration management for hazwaste tools.
package config

import "time"

// Config holds runtime configuration for the hazwaste CLI and its
// reference database.
type Config struct {
	DatabaseURL    string
	RequestTimeout time.Duration
	BatchLimit     int
	LogLevel       string
	LogFormat      string
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		DatabaseURL:    "sqlite://hazwaste.db",
		RequestTimeout: 30 * time.Second,
		BatchLimit:     500,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}
