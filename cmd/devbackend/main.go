package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"osupdater/internal/app/devbackend"
	"osupdater/internal/app/devbackend/config"
	"osupdater/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.NewWithLevel(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := devbackend.New(ctx, cfg, log)
	if err != nil {
		log.Error("Ошибка инициализации dev-бэкенда", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("Dev-бэкенд остановлен с ошибкой", "error", err)
		os.Exit(1)
	}
}
