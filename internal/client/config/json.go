package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/reeflog/reeflog/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. The timeout is an
// integer number of seconds there.
type jsonConfig struct {
	ServerBaseURL      string `json:"server_base_url"`
	DatabasePath       string `json:"database_path"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`
}

// parseJSON overlays Config with values from the JSON file named by the
// -c/-config flag. No flag means no JSON is loaded. Read or parse failures
// panic; the config layer runs before anything the user could lose.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.HTTPTimeoutSeconds > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeoutSeconds) * time.Second
	}
}
