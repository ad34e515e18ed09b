package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port string
	// DataDir holds teams.json and standings.json; empty means the embedded data set.
	DataDir   string
	LogLevel  string
	LogFormat string
	Metrics   MetricsConfig
	// Warnings lists settings that were ignored while loading; callers log them once a logger exists.
	Warnings []string
}

// Load reads configuration from a .env file (if any) and environment variables,
// falling back to defaults for missing or invalid values.
func Load() Config {
	var warnings []string
	if err := loadDotEnv(); err != nil {
		warnings = append(warnings, fmt.Sprintf("ignoring .env file: %v", err))
	}

	port, rejected := portEnvOrDefault(envPort, defaultPort)
	if rejected != "" {
		warnings = append(warnings, fmt.Sprintf("invalid %s %q, using default %s", envPort, rejected, defaultPort))
	}

	return Config{
		Port:      port,
		DataDir:   envOrDefault(envDataDir, ""),
		LogLevel:  envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat: envOrDefault(envLogFormat, defaultLogFormat),
		Metrics:   loadMetrics(),
		Warnings:  warnings,
	}
}

// loadDotEnv reads ./.env without overriding variables already set.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
