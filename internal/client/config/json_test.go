package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"server_base_url":      "https://dive.example.com",
		"database_path":        "/var/lib/reeflog/client.db",
		"http_timeout_seconds": 10,
	})

	t.Run("loads values from the file named by -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJSON(cfg)

		assert.Equal(t, "https://dive.example.com", cfg.ServerBaseURL)
		assert.Equal(t, "/var/lib/reeflog/client.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	})

	t.Run("absent fields keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"server_base_url": "https://other.example.com",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{DatabasePath: "keep.db", HTTPTimeout: 42 * time.Second}
		parseJSON(cfg)

		assert.Equal(t, "https://other.example.com", cfg.ServerBaseURL)
		assert.Equal(t, "keep.db", cfg.DatabasePath)
		assert.Equal(t, 42*time.Second, cfg.HTTPTimeout)
	})

	t.Run("no flag means no JSON is loaded", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerBaseURL: "defaults", HTTPTimeout: 7 * time.Second}
		parseJSON(cfg)

		assert.Equal(t, "defaults", cfg.ServerBaseURL)
		assert.Equal(t, 7*time.Second, cfg.HTTPTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJSON(&Config{}) })
	})
}
