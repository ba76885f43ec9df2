package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", c.ServerBaseURL)
	assert.Equal(t, "reeflog.db", c.DatabasePath)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:3000", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}
