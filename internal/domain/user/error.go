package user

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("invalid role")
)

// DomainError - ошибка проверки формы пользователя с указанием поля
type DomainError struct {
	Err     error
	Field   string
	Message string
}

// Error возвращает текст для уведомления; Message показывается как есть
func (e *DomainError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Field != "":
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *DomainError) Unwrap() error { return e.Err }
