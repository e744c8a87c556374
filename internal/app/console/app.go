// Package console - ядро админ-консоли сервиса обновлений: сессия,
// клиент бэкенда и экраны версий, пользователей и аналитики.
package console

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"osupdater/internal/app/console/config"
	"osupdater/internal/infrastructure/migration"
	"osupdater/internal/infrastructure/storage/sqlite"
	"osupdater/internal/session"
)

type App struct {
	config   *config.Config
	log      *slog.Logger
	notifier Notifier
	session  *session.Manager
	backend  Backend
	closer   io.Closer

	Versions  *VersionsScreen
	Users     *UsersScreen
	Analytics *AnalyticsScreen
}

// New открывает локальное хранилище сессии, восстанавливает сессию и
// собирает экраны консоли поверх HTTP клиента бэкенда.
func New(cfg *config.Config, log *slog.Logger, notifier Notifier) (*App, error) {
	var store session.Store
	var closer io.Closer

	kv, err := openSessionStore(cfg.SessionDBPath)
	if err != nil {
		log.Warn("Не удалось инициализировать SQLite, используем память", "error", err)
		store = session.NewMemoryStore()
	} else {
		store = kv
		closer = kv
	}

	mgr := session.NewManager(store, cfg.SessionMaxDuration, log)
	httpCl := NewHTTPClient(cfg, mgr.Token, log)

	app := NewWithBackend(cfg, log, notifier, mgr, httpCl)
	app.closer = closer

	if err := mgr.Restore(context.Background()); err != nil {
		app.Close()
		return nil, fmt.Errorf("ошибка восстановления сессии: %w", err)
	}

	return app, nil
}

// NewWithBackend собирает консоль из готовых зависимостей. Restore не вызывается.
func NewWithBackend(cfg *config.Config, log *slog.Logger, notifier Notifier, mgr *session.Manager, backend Backend) *App {
	app := &App{
		config:   cfg,
		log:      log,
		notifier: notifier,
		session:  mgr,
		backend:  backend,
	}

	base := screen{backend: backend, session: mgr, notifier: notifier, log: log}
	app.Versions = &VersionsScreen{screen: base.named("versions")}
	app.Users = &UsersScreen{screen: base.named("users")}
	app.Analytics = &AnalyticsScreen{screen: base.named("analytics"), appName: cfg.DefaultAppName}

	mgr.OnExpire(func() {
		notifier.Notify(failure("Сессия истекла. Войдите снова."))
	})

	return app
}

func openSessionStore(path string) (*sqlite.KVStore, error) {
	if err := migration.NewMigration(path, migration.DefaultEngine).Up(); err != nil {
		return nil, fmt.Errorf("migrate session store: %w", err)
	}
	return sqlite.NewKVStore(path)
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) Session() *session.Manager {
	return a.session
}

// Close останавливает таймер сессии и закрывает хранилище
func (a *App) Close() error {
	a.session.Close()
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}

// screen - общие зависимости экранов
type screen struct {
	backend  Backend
	session  *session.Manager
	notifier Notifier
	log      *slog.Logger
}

func (s screen) named(name string) screen {
	s.log = s.log.With(slog.String("screen", name))
	return s
}

// guard пропускает операцию только при действующей сессии
func (s screen) guard(ctx context.Context) error {
	if err := s.session.Check(ctx); err != nil {
		s.notifier.Notify(failure(describe(err, "")))
		return err
	}
	return nil
}

func (s screen) fail(err error, description string) error {
	s.log.Error("операция не выполнена", "error", err)
	s.notifier.Notify(failure(description))
	return err
}
