// Package session хранит сессию администратора консоли: токен, роль и
// время входа, а также следит за максимальным временем жизни сессии.
package session

import (
	"errors"
	"time"
)

// Ключи в локальном хранилище
const (
	KeyToken     = "token"
	KeyRole      = "role"
	KeyLoginTime = "loginTime"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrExpired          = errors.New("session expired")
	ErrEmptyToken       = errors.New("empty token")
)

// State - состояние сессии
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	switch s {
	case LoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Info - снимок текущей сессии
type Info struct {
	State     State     `json:"state"`
	Token     string    `json:"-"`
	Role      string    `json:"role,omitempty"`
	LoginTime time.Time `json:"login_time,omitzero"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Remaining возвращает оставшееся время жизни сессии
func (i Info) Remaining(now time.Time) time.Duration {
	if i.State != LoggedIn {
		return 0
	}
	d := i.ExpiresAt.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
