package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"osupdater/cmd/osupdater/cmd/types"
	"osupdater/internal/app/console"
	"osupdater/internal/app/console/config"
	"osupdater/internal/session"
	"osupdater/internal/utils/logger"
)

// webNotifier - аннотация команды, которой нужны уведомления для веб-страниц
const webNotifier = "web"

var (
	cfgFile    string
	cfg        *config.Config
	log        *slog.Logger
	app        *console.App
	flash      *console.Recorder
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "osupdater",
	Short: "OS Updater - консоль администратора сервиса обновлений",
	Long: `OS Updater - консоль администратора сервиса обновлений ОС.

Позволяет публиковать и редактировать версии приложений, управлять
пользователями и смотреть статистику установок. Сессия администратора
хранится локально и живет не дольше 15 минут с момента входа.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if app != nil {
			app.Close()
		}
		if !errors.Is(err, types.ErrReported) {
			fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		}
		if errors.Is(err, session.ErrNotAuthenticated) || errors.Is(err, session.ErrExpired) {
			fmt.Fprintln(os.Stderr, "Выполните вход: osupdater login")
		}
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Флаги командной строки важнее конфигурации
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	switch {
	case debug:
		log = logger.New(config.EnvDev)
	case cmd.Annotations["notifier"] == webNotifier:
		log = logger.NewWithLevel(cfg.Env, cfg.LogLevel)
	default:
		log = logger.Discard()
	}

	var notifier console.Notifier = console.NewTerminalNotifier(os.Stderr)
	if cmd.Annotations["notifier"] == webNotifier {
		flash = console.NewRecorder()
		notifier = flash
	}

	app, err = console.New(cfg, log, notifier)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	cmd.SetContext(types.WithApp(cmd.Context(), app, jsonOutput))
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	return app.Close()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}

		viper.AddConfigPath(filepath.Join(home, ".osupdater"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес бэкенда сервиса обновлений")
}
