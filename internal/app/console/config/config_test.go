package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := setupEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, defaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, dir, cfg.ConfigDir)
	assert.Equal(t, filepath.Join(dir, defaultSessionDB), cfg.SessionDBPath)
	assert.Equal(t, 15*time.Minute, cfg.SessionMaxDuration)
	assert.Equal(t, defaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "/os-updater-dashboard", cfg.WebBasePath)
	assert.Equal(t, "HidupBanjaran", cfg.DefaultAppName)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	setupEnv(t)
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SERVER_ADDRESS", "updates.example.com")
	t.Setenv("ENABLE_TLS", "true")
	t.Setenv("SESSION_MAX_DURATION", "30m")
	t.Setenv("WEB_BASE_PATH", "admin/")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.SessionMaxDuration)
	assert.Equal(t, "https://updates.example.com", cfg.BaseURL())
	assert.Equal(t, "/admin", cfg.WebBasePath)
}

func TestLoad_InvalidDuration(t *testing.T) {
	setupEnv(t)
	t.Setenv("SESSION_MAX_DURATION", "0s")

	_, err := Load()
	assert.ErrorContains(t, err, "session_max_duration")
}

func TestConfig_BaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "plain host", cfg: Config{ServerAddress: "localhost:8080"}, want: "http://localhost:8080"},
		{name: "tls host", cfg: Config{ServerAddress: "api.local", EnableTLS: true}, want: "https://api.local"},
		{name: "explicit scheme", cfg: Config{ServerAddress: "http://127.0.0.1:9000/", EnableTLS: true}, want: "http://127.0.0.1:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.BaseURL())
		})
	}
}

func TestNormalizeBasePath(t *testing.T) {
	assert.Equal(t, "", normalizeBasePath(""))
	assert.Equal(t, "", normalizeBasePath("/"))
	assert.Equal(t, "/x", normalizeBasePath("x"))
	assert.Equal(t, "/x/y", normalizeBasePath("/x/y/"))
}
