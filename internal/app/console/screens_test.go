package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"osupdater/internal/app/console/config"
	"osupdater/internal/domain/analytics"
	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
	"osupdater/internal/session"
	"osupdater/internal/utils/logger"
)

// MockBackend is a mock implementation of the Backend interface for testing
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.LoginResponse), args.Error(1)
}

func (m *MockBackend) Register(ctx context.Context, req user.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockBackend) ListVersions(ctx context.Context) ([]version.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]version.Record), args.Error(1)
}

func (m *MockBackend) CreateVersion(ctx context.Context, req version.CreateRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockBackend) UpdateVersion(ctx context.Context, id string, req version.UpdateRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *MockBackend) ListUsers(ctx context.Context) ([]user.Record, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.Record), args.Error(1)
}

func (m *MockBackend) UpdateUserRole(ctx context.Context, id, role string) error {
	return m.Called(ctx, id, role).Error(0)
}

func (m *MockBackend) DeleteUser(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBackend) EnrollAnalytics(ctx context.Context, appName string) ([]analytics.Point, error) {
	args := m.Called(ctx, appName)
	return args.Get(0).([]analytics.Point), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                config.EnvLocal,
		ServerAddress:      "localhost:8080",
		SessionMaxDuration: config.DefaultSessionMaxDuration,
		RequestTimeout:     time.Second,
		DefaultAppName:     "HidupBanjaran",
	}
}

func newTestApp(t *testing.T, backend Backend, loggedIn bool) (*App, *Recorder) {
	t.Helper()

	log := logger.Discard()
	mgr := session.NewManager(session.NewMemoryStore(), config.DefaultSessionMaxDuration, log)
	t.Cleanup(mgr.Close)

	if loggedIn {
		require.NoError(t, mgr.Login(context.Background(), "token-1"))
	}

	rec := NewRecorder()
	return NewWithBackend(testConfig(), log, rec, mgr, backend), rec
}

var seedVersions = []version.Record{
	{ID: "v1", AppName: "HidupBanjaran", Version: "1.0.0"},
	{ID: "v2", AppName: "HidupBanjaran", Version: "1.1.0"},
}

func TestVersions_CreateDuplicateKeepsTable(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, true)
	ctx := context.Background()

	backend.On("ListVersions", mock.Anything).Return(seedVersions, nil).Once()
	require.NoError(t, app.Versions.Load(ctx))

	req := version.CreateRequest{AppName: "HidupBanjaran", Version: "1.1.0"}
	backend.On("CreateVersion", mock.Anything, req).
		Return(&APIError{Status: 400, Message: "duplicate version"}).Once()

	err := app.Versions.Create(ctx, req)
	require.Error(t, err)

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "duplicate version", n.Description)
	assert.Equal(t, VariantDestructive, n.Variant)
	assert.Equal(t, seedVersions, app.Versions.Items())

	// повторной загрузки после ошибки не было
	backend.AssertNumberOfCalls(t, "ListVersions", 1)
	backend.AssertExpectations(t)
}

func TestVersions_CreateRefetches(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, true)
	ctx := context.Background()

	req := version.CreateRequest{AppName: "HidupBanjaran", Version: "1.2.0", DownloadLink: "https://cdn.example.com/a.apk"}
	updated := append(append([]version.Record{}, seedVersions...), version.Record{ID: "v3", AppName: "HidupBanjaran", Version: "1.2.0"})

	backend.On("CreateVersion", mock.Anything, req).Return(nil).Once()
	backend.On("ListVersions", mock.Anything).Return(updated, nil).Once()

	require.NoError(t, app.Versions.Create(ctx, req))

	notes := rec.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, VariantDefault, notes[0].Variant)
	assert.Equal(t, "Версия создана.", notes[0].Description)
	assert.Len(t, app.Versions.Items(), 3)
	backend.AssertExpectations(t)
}

func TestVersions_TransportErrorUsesGenericText(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, true)

	req := version.UpdateRequest{Version: "2.0.0"}
	backend.On("UpdateVersion", mock.Anything, "v1", req).
		Return(&TransportError{Op: "выполнение запроса", Err: errors.New("connection refused")}).Once()

	err := app.Versions.Update(context.Background(), "v1", req)
	require.Error(t, err)

	n, _ := rec.Last()
	assert.Equal(t, genericFailure, n.Description)
}

func TestVersions_ValidationSkipsBackend(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, true)

	err := app.Versions.Create(context.Background(), version.CreateRequest{AppName: "HidupBanjaran"})
	assert.ErrorIs(t, err, version.ErrInvalidInput)

	n, _ := rec.Last()
	assert.Contains(t, n.Description, "version is required")
	backend.AssertNotCalled(t, "CreateVersion", mock.Anything, mock.Anything)
}

func TestScreens_RequireSession(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, false)
	ctx := context.Background()

	assert.ErrorIs(t, app.Versions.Load(ctx), session.ErrNotAuthenticated)
	assert.ErrorIs(t, app.Users.Load(ctx), session.ErrNotAuthenticated)
	assert.ErrorIs(t, app.Analytics.Load(ctx, ""), session.ErrNotAuthenticated)

	n, _ := rec.Last()
	assert.Equal(t, "Требуется вход в систему.", n.Description)
	backend.AssertExpectations(t)
}

func TestScreens_ExpiredSession(t *testing.T) {
	backend := new(MockBackend)
	log := logger.Discard()

	now := time.Date(2024, 10, 5, 10, 0, 0, 0, time.UTC)
	mgr := session.NewManager(session.NewMemoryStore(), 15*time.Minute, log,
		session.WithClock(func() time.Time { return now }, func(time.Duration, func()) session.Timer {
			return stubTimer{}
		}))
	require.NoError(t, mgr.Login(context.Background(), "token-1"))

	rec := NewRecorder()
	app := NewWithBackend(testConfig(), log, rec, mgr, backend)

	now = now.Add(15 * time.Minute)
	assert.ErrorIs(t, app.Versions.Load(context.Background()), session.ErrExpired)
	assert.False(t, mgr.Active())

	n, _ := rec.Last()
	assert.Equal(t, "Сессия истекла. Войдите снова.", n.Description)
}

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }

func TestUsers_FixedFailureText(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, true)

	req := user.RegisterRequest{Username: "operator", Password: "s3cret", Role: user.RoleUser}
	backend.On("Register", mock.Anything, req).
		Return(&APIError{Status: 409, Message: "user exists"}).Once()

	require.Error(t, app.Users.Add(context.Background(), req))

	n, _ := rec.Last()
	assert.Equal(t, "Не удалось добавить пользователя. Попробуйте еще раз.", n.Description)
	backend.AssertExpectations(t)
}

func TestUsers_SetRoleAndDelete(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, true)
	ctx := context.Background()

	promoted := []user.Record{{ID: "u1", Username: "alice", Role: user.RoleAdmin}}

	backend.On("UpdateUserRole", mock.Anything, "u1", user.RoleAdmin).Return(nil).Once()
	backend.On("ListUsers", mock.Anything).Return(promoted, nil).Once()

	require.NoError(t, app.Users.SetRole(ctx, "u1", user.RoleAdmin))
	got, ok := app.Users.Find("u1")
	require.True(t, ok)
	assert.Equal(t, user.RoleAdmin, got.Role)

	// отказ от подтверждения
	err := app.Users.Delete(ctx, "u1", func(string) bool { return false })
	assert.ErrorIs(t, err, ErrCancelled)
	backend.AssertNotCalled(t, "DeleteUser", mock.Anything, "u1")

	backend.On("DeleteUser", mock.Anything, "u1").Return(nil).Once()
	backend.On("ListUsers", mock.Anything).Return([]user.Record{}, nil).Once()

	require.NoError(t, app.Users.Delete(ctx, "u1", func(string) bool { return true }))
	assert.Empty(t, app.Users.Items())

	n, _ := rec.Last()
	assert.Equal(t, "Пользователь удален.", n.Description)
	backend.AssertExpectations(t)
}

func TestUsers_SetRoleRejectsUnknownRole(t *testing.T) {
	backend := new(MockBackend)
	app, _ := newTestApp(t, backend, true)

	err := app.Users.SetRole(context.Background(), "u1", "root")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
	backend.AssertNotCalled(t, "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalytics_LoadAndFilter(t *testing.T) {
	backend := new(MockBackend)
	app, _ := newTestApp(t, backend, true)

	points := []analytics.Point{
		{ID: analytics.Key{Day: 5, Month: 10, Year: 2024, Version: "1.0.0"}, Count: 3},
		{ID: analytics.Key{Day: 6, Month: 10, Year: 2024, Version: "1.1.0"}, Count: 7},
		{ID: analytics.Key{Day: 7, Month: 10, Year: 2024, Version: "1.0.0"}, Count: 2},
	}
	backend.On("EnrollAnalytics", mock.Anything, "HidupBanjaran").Return(points, nil).Once()

	require.NoError(t, app.Analytics.Load(context.Background(), ""))

	view := app.Analytics.View()
	assert.Equal(t, "HidupBanjaran", view.AppName)
	assert.Equal(t, analytics.AllVersions, view.Selected)
	assert.Equal(t, []string{"Semua", "1.0.0", "1.1.0"}, view.Options)
	assert.Len(t, view.Bars, 3)
	assert.Equal(t, 12, view.Total)
	assert.Equal(t, "(1.0.0) 5 Oktober 2024", view.Bars[0].Label)

	app.Analytics.Select("1.0.0")
	view = app.Analytics.View()
	assert.Len(t, view.Bars, 2)
	assert.Equal(t, 5, view.Total)
	assert.Equal(t, 3, view.Max)

	app.Analytics.Select("")
	assert.Len(t, app.Analytics.View().Bars, 3)
	backend.AssertExpectations(t)
}

func TestApp_LoginAppliesRole(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, false)
	ctx := context.Background()

	req := user.LoginRequest{Username: "admin", Password: "secret"}
	backend.On("Login", mock.Anything, req).Return(user.LoginResponse{Token: "jwt", Role: user.RoleAdmin}, nil).Once()

	require.NoError(t, app.Login(ctx, req))
	assert.True(t, app.Session().Active())
	assert.Equal(t, "jwt", app.Session().Token())
	assert.Equal(t, user.RoleAdmin, app.Session().Role())

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.Session().Active())
	assert.Empty(t, app.Session().Role())

	notes := rec.Drain()
	require.Len(t, notes, 2)
	assert.Equal(t, VariantDefault, notes[1].Variant)
}

func TestApp_LoginFailureKeepsLoggedOut(t *testing.T) {
	backend := new(MockBackend)
	app, rec := newTestApp(t, backend, false)

	req := user.LoginRequest{Username: "admin", Password: "wrong"}
	backend.On("Login", mock.Anything, req).
		Return(user.LoginResponse{}, &APIError{Status: 401, Message: "invalid credentials"}).Once()

	require.Error(t, app.Login(context.Background(), req))
	assert.False(t, app.Session().Active())

	n, _ := rec.Last()
	assert.Equal(t, "invalid credentials", n.Description)
}

func TestApp_RegisterDefaultsRole(t *testing.T) {
	backend := new(MockBackend)
	app, _ := newTestApp(t, backend, false)

	backend.On("Register", mock.Anything, user.RegisterRequest{Username: "newbie", Password: "pass1", Role: user.RoleUser}).
		Return(nil).Once()

	require.NoError(t, app.Register(context.Background(), user.RegisterRequest{Username: "newbie", Password: "pass1"}))
	backend.AssertExpectations(t)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "boom", describe(&APIError{Status: 500, Message: "boom"}, "fallback"))
	assert.Equal(t, "fallback", describe(&APIError{Status: 500}, "fallback"))
	assert.Equal(t, "fallback", describe(&TransportError{Op: "x", Err: errors.New("y")}, "fallback"))
	assert.Equal(t, "fallback", describeLocal(&APIError{Status: 400, Message: "boom"}, "fallback"))
	assert.Equal(t, "Требуется вход в систему.", describeLocal(session.ErrNotAuthenticated, "fallback"))
}
