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

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overlays present fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_url":      "https://api.example",
			"request_timeout": "3s",
		})
		os.Args = []string{"bin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "https://api.example", cfg.ServerURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "friendsdir.db", cfg.LocalDBPath)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		os.Args = []string{"bin"}
		cfg := &Config{ServerURL: "http://keep"}
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, "http://keep", cfg.ServerURL)
	})

	t.Run("missing file", func(t *testing.T) {
		os.Args = []string{"bin", "-c", filepath.Join(t.TempDir(), "nope.json")}
		require.Error(t, parseJson(&Config{}))
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		os.Args = []string{"bin", "-c", path}
		require.Error(t, parseJson(&Config{}))
	})
}
