package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestParseEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("WORKFORCE_API_URL=http://dotenv:5000\nWORKFORCE_LOG_LEVEL=debug\n"), 0o600))

	t.Run("dotenv file applies", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseEnv(cfg, dotenv, lookupFrom(nil)))
		assert.Equal(t, "http://dotenv:5000", cfg.APIBaseURL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("process environment wins over dotenv", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseEnv(cfg, dotenv, lookupFrom(map[string]string{EnvAPIURL: "http://env:5000"})))
		assert.Equal(t, "http://env:5000", cfg.APIBaseURL)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing dotenv file is ignored", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseEnv(cfg, filepath.Join(dir, "absent.env"), lookupFrom(nil)))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("empty values are ignored", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseEnv(cfg, filepath.Join(dir, "absent.env"), lookupFrom(map[string]string{EnvLogLevel: ""})))
		assert.Equal(t, "info", cfg.LogLevel)
	})
}
