// Package config assembles the runtime settings of the CLI from, in order
// of increasing precedence: built-in defaults, a .env file / environment
// variables, a JSON config file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the user-management CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including the
//     /api/auth prefix.
//   - DatabasePath: sqlite file holding the persisted session record.
//   - RequestTimeout: per-request deadline for backend calls.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8082/api/auth"
	c.DatabasePath = "userdesk.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
