// Package types - общие для команд ключи контекста, ввод и вывод
package types

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"osupdater/internal/app/console"
)

type contextKey string

const (
	AppKey  contextKey = "app"
	JSONKey contextKey = "json"
)

// ErrReported - ошибка уже показана пользователю уведомлением
var ErrReported = errors.New("операция не выполнена")

// Reported помечает ошибку как уже показанную
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}

// WithApp кладет приложение и формат вывода в контекст команды
func WithApp(ctx context.Context, app *console.App, jsonOutput bool) context.Context {
	ctx = context.WithValue(ctx, AppKey, app)
	return context.WithValue(ctx, JSONKey, jsonOutput)
}

// App достает приложение из контекста команды
func App(ctx context.Context) (*console.App, error) {
	app, ok := ctx.Value(AppKey).(*console.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func JSON(ctx context.Context) bool {
	v, _ := ctx.Value(JSONKey).(bool)
	return v
}

func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
