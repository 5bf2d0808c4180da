package server

import (
	"os"
	"strings"
)

// Config holds the HTTP server configuration, resolved from the environment.
type Config struct {
	Address     string
	Environment string
	LogLevel    string
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// local-development defaults.
func ConfigFromEnv() Config {
	return Config{
		Address:     GetenvOrDefault("SERVER_ADDRESS", ":3000"),
		Environment: GetenvOrDefault("ENV_NAME", "local"),
		LogLevel:    GetenvOrDefault("LOG_LEVEL", ""),
	}
}

// GetenvOrDefault returns the value of the environment variable key, or
// defaultValue when the variable is unset or blank.
func GetenvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}

	return defaultValue
}
