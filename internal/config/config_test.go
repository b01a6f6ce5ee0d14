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
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "ko", cfg.Locale)
	assert.Equal(t, ":8080", cfg.HTTPServer.Address)
	assert.Equal(t, 4*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, int64(20250101), cfg.Dataset.Seed)
	assert.False(t, cfg.Auth.DevHeaders)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV", "dev")
	t.Setenv("LOCALE", "en")
	t.Setenv("DATASET_SEED", "42")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, int64(42), cfg.Dataset.Seed)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "env: prod\nlocale: en\nhttp_server:\n  address: \":7070\"\n  timeout: 2s\ndataset:\n  seed: 7\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":7070", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.Timeout)
	assert.Equal(t, int64(7), cfg.Dataset.Seed)
}

func TestLoadRejectsInvalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "staging"}},
		{name: "dev headers in prod", env: map[string]string{"ENV": "prod", "AUTH_DEV_HEADERS": "true"}},
		{name: "missing config file", env: map[string]string{"CONFIG_PATH": "/does/not/exist.yaml"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("CONFIG_PATH", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
