package config

import (
	"fmt"
	"time"
)

// Config holds server configuration
type Config struct {
	// Server settings
	Port int
	Host string

	// Scenario settings
	ScenarioDirectory string
	SchemaPath        string

	// Operational settings
	MaxConcurrentRuns       int64
	GracefulShutdownTimeout time.Duration
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	if c.ScenarioDirectory == "" {
		return fmt.Errorf("scenario directory is required")
	}

	if c.SchemaPath == "" {
		return fmt.Errorf("schema path is required")
	}

	if c.MaxConcurrentRuns <= 0 {
		return fmt.Errorf("max concurrent runs must be positive, got %d", c.MaxConcurrentRuns)
	}

	return nil
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Port:                    8080,
		Host:                    "0.0.0.0",
		SchemaPath:              "schemas/scenario_v1.json",
		MaxConcurrentRuns:       8,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
