package logger

import (
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"osupdater/internal/app/console/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestNewWithLevel(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "prod with debug", env: config.EnvProd, level: "debug", wantDebug: true, wantInfo: true},
		{name: "local with warn", env: config.EnvLocal, level: "warn", wantDebug: false, wantInfo: false},
		{name: "dev with upper case", env: config.EnvDev, level: "ERROR", wantDebug: false, wantInfo: false},
		{name: "empty level keeps env default", env: config.EnvLocal, level: "", wantDebug: true, wantInfo: true},
		{name: "unknown level keeps env default", env: config.EnvProd, level: "loud", wantDebug: false, wantInfo: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewWithLevel(tt.env, tt.level)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.wantDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.wantInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel(" info ")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, ok = ParseLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, ok = ParseLevel("")
	assert.False(t, ok)

	_, ok = ParseLevel("verbose")
	assert.False(t, ok)
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog(&slog.HandlerOptions{Level: slog.LevelDebug})
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)

	// Discard не должен падать при записи
	logger.Info("message", "key", "value")
}
