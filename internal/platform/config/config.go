// Package config loads client configuration from .env and the environment.
package config

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const defaultBaseURL = "http://localhost:8000"

type Config struct {
	// Base address of the logistics backend. LOGISTICS_API_URL overrides the
	// local default at startup; there is no per-call override.
	BaseURL string
	// Session ID binding optimizations and manifests to this client run.
	// Generated fresh unless LOGISTICS_SESSION_ID pins one.
	SessionID string
	// Driver name recorded on created manifests.
	DriverName string
	// LogLevel and LogFile control diagnostic output. Empty LogFile means
	// logs are discarded under the TUI (stdout belongs to the interface).
	LogLevel string
	LogFile  string
}

// Load reads .env when present and resolves the configuration. A missing
// .env is not an error; plain environment variables work the same way.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		BaseURL:    getEnv("LOGISTICS_API_URL", defaultBaseURL),
		SessionID:  getEnv("LOGISTICS_SESSION_ID", uuid.NewString()),
		DriverName: getEnv("DRIVER_NAME", "Driver_001"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    os.Getenv("LOG_FILE"),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
