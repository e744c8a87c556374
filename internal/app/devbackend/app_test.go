package devbackend_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osupdater/internal/app/console"
	consoleConfig "osupdater/internal/app/console/config"
	"osupdater/internal/app/devbackend"
	"osupdater/internal/app/devbackend/config"
	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
	"osupdater/internal/session"
	"osupdater/internal/utils/logger"
)

// newConsole поднимает dev-бэкенд на httptest и подключает к нему консоль
func newConsole(t *testing.T) (*console.App, *console.Recorder) {
	t.Helper()
	ctx := context.Background()
	log := logger.Discard()

	backendCfg := &config.Config{Env: config.EnvLocal}
	backendCfg.Auth.Secret = "integration"
	backendCfg.Auth.TokenTTL = time.Hour
	backendCfg.Seed.AdminUsername = "admin"
	backendCfg.Seed.AdminPassword = "admin-pass"
	backendCfg.Seed.AppName = "HidupBanjaran"

	backend, err := devbackend.New(ctx, backendCfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	cfg := &consoleConfig.Config{
		Env:                consoleConfig.EnvLocal,
		ServerAddress:      srv.URL,
		SessionMaxDuration: consoleConfig.DefaultSessionMaxDuration,
		RequestTimeout:     5 * time.Second,
		DefaultAppName:     "HidupBanjaran",
	}

	mgr := session.NewManager(session.NewMemoryStore(), cfg.SessionMaxDuration, log)
	t.Cleanup(mgr.Close)

	rec := console.NewRecorder()
	app := console.NewWithBackend(cfg, log, rec, mgr, console.NewHTTPClient(cfg, mgr.Token, log))
	return app, rec
}

func TestConsoleAgainstDevBackend(t *testing.T) {
	ctx := context.Background()
	app, rec := newConsole(t)

	require.NoError(t, app.Login(ctx, user.LoginRequest{Username: "admin", Password: "admin-pass"}))
	assert.True(t, app.Session().Active())
	assert.Equal(t, user.RoleAdmin, app.Session().Role())

	require.NoError(t, app.Versions.Load(ctx))
	require.Len(t, app.Versions.Items(), 1)

	t.Run("duplicate version keeps table", func(t *testing.T) {
		rec.Drain()

		err := app.Versions.Create(ctx, version.CreateRequest{AppName: "HidupBanjaran", Version: "1.0.0"})
		require.Error(t, err)

		last, ok := rec.Last()
		require.True(t, ok)
		assert.Equal(t, console.VariantDestructive, last.Variant)
		assert.Equal(t, "duplicate version", last.Description)
		assert.Len(t, app.Versions.Items(), 1)
	})

	t.Run("create refreshes table", func(t *testing.T) {
		err := app.Versions.Create(ctx, version.CreateRequest{AppName: "HidupBanjaran", Version: "1.1.0"})
		require.NoError(t, err)
		assert.Len(t, app.Versions.Items(), 2)
	})

	t.Run("users", func(t *testing.T) {
		err := app.Users.Add(ctx, user.RegisterRequest{Username: "operator", Password: "secret", Role: user.RoleUser})
		require.NoError(t, err)
		require.Len(t, app.Users.Items(), 2)

		var id string
		for _, u := range app.Users.Items() {
			if u.Username == "operator" {
				id = u.ID
			}
		}
		require.NotEmpty(t, id)

		require.NoError(t, app.Users.SetRole(ctx, id, user.RoleAdmin))
		got, ok := app.Users.Find(id)
		require.True(t, ok)
		assert.Equal(t, user.RoleAdmin, got.Role)

		require.NoError(t, app.Users.Delete(ctx, id, func(string) bool { return true }))
		assert.Len(t, app.Users.Items(), 1)
	})

	t.Run("analytics without enrollments", func(t *testing.T) {
		require.NoError(t, app.Analytics.Load(ctx, ""))
		view := app.Analytics.View()
		assert.Equal(t, "HidupBanjaran", view.AppName)
		assert.Zero(t, view.Total)
	})

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.Session().Active())
}

func TestConsoleWrongPassword(t *testing.T) {
	app, rec := newConsole(t)

	err := app.Login(context.Background(), user.LoginRequest{Username: "admin", Password: "nope"})
	require.Error(t, err)
	assert.False(t, app.Session().Active())

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "invalid credentials", last.Description)
}
