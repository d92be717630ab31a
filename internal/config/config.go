package config

import (
	"fmt"
	"os"
	"strconv"

	"gocsvlab/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Export   ExportConfig
	Database DatabaseConfig
	Sessions SessionConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port        string
	GinMode     string
	MaxUploadMB int
}

// LoggingConfig holds log settings
type LoggingConfig struct {
	Level string
}

// ExportConfig holds export settings
type ExportConfig struct {
	Dir       string
	TopValues int // categorical values listed per column in reports
}

// DatabaseConfig holds the optional PostgreSQL export target
type DatabaseConfig struct {
	URL   string
	Table string
}

// SessionConfig bounds the in-memory session store
type SessionConfig struct {
	Limit int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:        getEnvOrDefault("PORT", "8080"),
			GinMode:     getEnvOrDefault("GIN_MODE", "release"),
			MaxUploadMB: getEnvIntOrDefault("MAX_UPLOAD_MB", 32),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
		Export: ExportConfig{
			Dir:       getEnvOrDefault("EXPORT_DIR", "exports"),
			TopValues: getEnvIntOrDefault("REPORT_TOP_VALUES", 5),
		},
		Database: DatabaseConfig{
			URL:   os.Getenv("DATABASE_URL"),
			Table: getEnvOrDefault("EXPORT_TABLE", "dataset_export"),
		},
		Sessions: SessionConfig{
			Limit: getEnvIntOrDefault("SESSION_LIMIT", 64),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT is required")
	}
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("PORT %q is not a number", config.Server.Port))
	}
	if config.Server.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.Export.TopValues <= 0 {
		return errors.ConfigInvalid("REPORT_TOP_VALUES must be positive")
	}
	if config.Sessions.Limit <= 0 {
		return errors.ConfigInvalid("SESSION_LIMIT must be positive")
	}
	return nil
}

// DatabaseEnabled reports whether a PostgreSQL export target is configured
func (c *Config) DatabaseEnabled() bool {
	return c.Database.URL != ""
}

// MaxUploadBytes returns the multipart memory limit
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
