package devbackend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"osupdater/internal/app/devbackend/api"
	"osupdater/internal/app/devbackend/config"
	"osupdater/internal/app/devbackend/store"
	"osupdater/internal/app/devbackend/token"
	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
	"osupdater/internal/utils/server"
)

type App struct {
	cfg     *config.Config
	log     *slog.Logger
	storage *store.Memory
	tokens  *token.Issuer
}

// New создает dev-бэкенд и заводит администратора и первую версию приложения
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	storage := store.NewMemory()

	if _, err := storage.CreateUser(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, user.RoleAdmin); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	if cfg.Seed.AppName != "" {
		_, err := storage.CreateVersion(ctx, version.CreateRequest{
			AppName:   cfg.Seed.AppName,
			Version:   "1.0.0",
			Changelog: "Initial release",
		})
		if err != nil {
			return nil, fmt.Errorf("seed version: %w", err)
		}
	}

	return &App{
		cfg:     cfg,
		log:     log,
		storage: storage,
		tokens:  token.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL),
	}, nil
}

func (a *App) Handler() http.Handler {
	return api.New(a.storage, a.tokens, a.log)
}

// Run обслуживает API до отмены ctx
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Address,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	a.log.Info("Dev-бэкенд запущен",
		"addr", a.cfg.Server.Address,
		"admin", a.cfg.Seed.AdminUsername,
		"env", a.cfg.Env,
	)
	return server.Run(ctx, srv, a.log)
}
