package console

import (
	"errors"
	"fmt"
	"net/http"

	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
	"osupdater/internal/session"
)

// ErrCancelled - пользователь отказался от подтверждения
var ErrCancelled = errors.New("cancelled")

// APIError - ответ бэкенда с кодом не из 2xx
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ошибка сервера: %s", e.Message)
	}
	return fmt.Sprintf("ошибка сервера: статус %d (%s)", e.Status, http.StatusText(e.Status))
}

// TransportError - запрос не удалось выполнить или разобрать ответ
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// describe возвращает текст уведомления для ошибки. Сообщение бэкенда
// показывается как есть.
func describe(err error, fallback string) string {
	var apiErr *APIError
	var domainErr *user.DomainError

	switch {
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return fallback
	case errors.Is(err, session.ErrExpired):
		return "Сессия истекла. Войдите снова."
	case errors.Is(err, session.ErrNotAuthenticated):
		return "Требуется вход в систему."
	case errors.As(err, &domainErr):
		return domainErr.Error()
	case errors.Is(err, version.ErrInvalidInput):
		return err.Error()
	default:
		return fallback
	}
}

// describeLocal как describe, но текст ответа бэкенда не показывается:
// для операций с пользователями всегда выводится фиксированное сообщение.
func describeLocal(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return fallback
	}
	return describe(err, fallback)
}
