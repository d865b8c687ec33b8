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
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_base_url":         "http://www.example:9000/api/auth",
		"database_path":           "elsewhere.db",
		"request_timeout_seconds": 7,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://www.example:9000/api/auth", cfg.ServerBaseURL)
		assert.Equal(t, "elsewhere.db", cfg.DatabasePath)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	})

	t.Run("no config flag leaves values unchanged", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerBaseURL:  "http://defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("zero fields in file leave values unchanged", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"database_path": "only.db",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{ServerBaseURL: "http://kept:1", RequestTimeout: 9 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://kept:1", cfg.ServerBaseURL)
		assert.Equal(t, "only.db", cfg.DatabasePath)
		assert.Equal(t, 9*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}

func Test_parseEnv(t *testing.T) {
	t.Setenv(envServerBaseURL, "http://env:8000/api/auth")
	t.Setenv(envRequestTimeout, "3")

	cfg := &Config{DatabasePath: "kept.db"}
	parseEnv(cfg)

	assert.Equal(t, "http://env:8000/api/auth", cfg.ServerBaseURL)
	assert.Equal(t, "kept.db", cfg.DatabasePath)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}
