package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first, without overriding variables already set in the process.
const (
	envServerBaseURL  = "USERDESK_SERVER_URL"
	envDatabasePath   = "USERDESK_DB_PATH"
	envRequestTimeout = "USERDESK_REQUEST_TIMEOUT"
)

// parseEnv overlays Config with values from the environment. Missing or
// malformed variables leave the current value untouched.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
