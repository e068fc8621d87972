package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, "friendsdir.db", c.LocalDBPath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	require.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad scheme", func(c *Config) { c.ServerURL = "ftp://host" }},
		{"no host", func(c *Config) { c.ServerURL = "http://" }},
		{"empty db", func(c *Config) { c.LocalDBPath = "" }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.modify(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_Layering(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))

	t.Setenv("FRIENDSDIR_SERVER_URL", "http://env:1")
	t.Setenv("FRIENDSDIR_LOCAL_DB", "env.db")
	path := writeTempJSON(t, map[string]any{"local_db_path": "json.db", "request_timeout": "2s"})
	os.Args = []string{"bin", "-c", path, "-t", "7"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.ServerURL)
	assert.Equal(t, "json.db", cfg.LocalDBPath)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Invalid(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	withEnvFile(t, filepath.Join(t.TempDir(), "none.env"))

	os.Args = []string{"bin", "-a", "localhost:5000"}
	_, err := LoadConfig()
	require.Error(t, err)
}
