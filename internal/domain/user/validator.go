package user

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MinPasswordLen = 4
)

// ValidateLogin проверяет форму входа
func ValidateLogin(req LoginRequest) error {
	if strings.TrimSpace(req.Username) == "" {
		return &DomainError{Err: ErrInvalidInput, Field: "username", Message: "username is required"}
	}
	if req.Password == "" {
		return &DomainError{Err: ErrInvalidInput, Field: "password", Message: "password is required"}
	}
	return nil
}

// ValidateRegister проверяет форму добавления пользователя
func ValidateRegister(req RegisterRequest) error {
	if err := ValidateUsername(req.Username); err != nil {
		return err
	}

	if len(req.Password) < MinPasswordLen {
		return &DomainError{
			Err:     ErrInvalidInput,
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters", MinPasswordLen),
		}
	}

	return ValidateRole(req.Role)
}

// ValidateUsername валидирует имя пользователя
func ValidateUsername(username string) error {
	if len(username) < MinUsernameLen {
		return &DomainError{
			Err:     ErrInvalidInput,
			Field:   "username",
			Message: fmt.Sprintf("username must be at least %d characters", MinUsernameLen),
		}
	}

	if len(username) > MaxUsernameLen {
		return &DomainError{
			Err:     ErrInvalidInput,
			Field:   "username",
			Message: fmt.Sprintf("username must be at most %d characters", MaxUsernameLen),
		}
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return &DomainError{
				Err:     ErrInvalidInput,
				Field:   "username",
				Message: "username can only contain letters, digits, '_', '-', '.'",
			}
		}
	}

	return nil
}

// ValidateRole проверяет, что роль выбрана и известна
func ValidateRole(role string) error {
	if role == "" {
		return &DomainError{Err: ErrInvalidRole, Field: "role", Message: "role is required"}
	}
	if !IsValidRole(role) {
		return &DomainError{
			Err:     ErrInvalidRole,
			Field:   "role",
			Message: fmt.Sprintf("role must be one of: %s", strings.Join(Roles, ", ")),
		}
	}
	return nil
}
