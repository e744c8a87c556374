package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"osupdater/internal/app/console/config"
)

// out - приемник логов. Клиент печатает таблицы в stdout, поэтому логи идут в stderr.
var out io.Writer = os.Stderr

// New создает логгер в зависимости от окружения
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel создает логгер окружения env. Непустой level (debug, info,
// warn, error) заменяет уровень окружения по умолчанию.
func NewWithLevel(env, level string) *slog.Logger {
	lvl := slog.LevelInfo
	if env == config.EnvLocal || env == "" || env == config.EnvDev {
		lvl = slog.LevelDebug
	}
	if parsed, ok := ParseLevel(level); ok {
		lvl = parsed
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch env {
	case config.EnvLocal, "":
		return setupPrettySlog(opts)
	default:
		return slog.New(slog.NewJSONHandler(out, opts))
	}
}

// ParseLevel разбирает имя уровня; ok=false для пустой или неизвестной строки
func ParseLevel(level string) (slog.Level, bool) {
	var lvl slog.Level
	if strings.TrimSpace(level) == "" {
		return lvl, false
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return lvl, false
	}
	return lvl, true
}

// Discard возвращает логгер, который ничего не пишет (для тестов и --quiet)
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupPrettySlog(opts *slog.HandlerOptions) *slog.Logger {
	return slog.New(slog.NewTextHandler(out, opts))
}
