package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	want := Config{
		APIBaseURL:   "http://localhost:8000",
		StoreBackend: StoreSQLite,
		RedisAddr:    "127.0.0.1:6379",
		RedisPrefix:  "craftconnect:",
		LogLevel:     "warn",
		LogFormat:    "text",
	}
	assert.Empty(t, cmp.Diff(want, c))
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, StoreSQLite, cfg.StoreBackend)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"api_base_url":  "http://from-json",
		"store_backend": "redis",
		"redis_db":      2,
		"log_format":    "json",
	})
	t.Setenv("CRAFTCONNECT_API_URL", "http://from-env")
	t.Setenv("CRAFTCONNECT_LOG_FORMAT", "zap")
	withArgs(t, "-c", path, "-a", "http://from-flag")

	cfg := LoadConfig()

	assert.Equal(t, "http://from-flag", cfg.APIBaseURL, "flags override env and JSON")
	assert.Equal(t, "zap", cfg.LogFormat, "env overrides JSON")
	assert.Equal(t, StoreRedis, cfg.StoreBackend, "JSON overrides defaults")
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "craftconnect:", cfg.RedisPrefix, "untouched fields keep defaults")
}
