// Package config holds the runtime settings of the reeflog CLI. Values are
// layered: defaults first, then an optional JSON file, then command-line
// flags, with later sources taking precedence.
package config

import "time"

// Config holds the runtime settings.
//
//   - ServerBaseURL: base URL of the backend REST API.
//   - DatabasePath: location of the local SQLite database (draft + session).
//   - HTTPTimeout: per-request timeout for backend calls.
type Config struct {
	ServerBaseURL string
	DatabasePath  string
	HTTPTimeout   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.DatabasePath = "reeflog.db"
	c.HTTPTimeout = 30 * time.Second
}

// LoadConfig constructs a Config from defaults, JSON file (if given via
// -c/-config) and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
