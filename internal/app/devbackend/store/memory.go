// Package store - хранилище dev-бэкенда в памяти процесса
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"osupdater/internal/domain/analytics"
	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserExists         = errors.New("user already exists")
	ErrDuplicateVersion   = errors.New("duplicate version")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownVersion     = errors.New("unknown version")
)

type account struct {
	user.Record
	passwordHash []byte
}

type enrollment struct {
	appName string
	version string
	at      time.Time
}

type Memory struct {
	mu          sync.RWMutex
	users       []account
	versions    []version.Record
	enrollments []enrollment
	now         func() time.Time
}

func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) CreateUser(_ context.Context, username, password, role string) (user.Record, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.Record{}, fmt.Errorf("hash password: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.users {
		if strings.EqualFold(a.Username, username) {
			return user.Record{}, ErrUserExists
		}
	}

	rec := user.Record{ID: uuid.NewString(), Username: username, Role: role}
	m.users = append(m.users, account{Record: rec, passwordHash: hash})
	return rec, nil
}

// Authenticate сверяет пароль с bcrypt-хешем
func (m *Memory) Authenticate(_ context.Context, username, password string) (user.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.users {
		if !strings.EqualFold(a.Username, username) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)); err != nil {
			return user.Record{}, ErrInvalidCredentials
		}
		return a.Record, nil
	}
	return user.Record{}, ErrInvalidCredentials
}

func (m *Memory) ListUsers(_ context.Context) []user.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]user.Record, 0, len(m.users))
	for _, a := range m.users {
		out = append(out, a.Record)
	}
	return out
}

func (m *Memory) SetRole(_ context.Context, id, role string) (user.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Role = role
			return m.users[i].Record, nil
		}
	}
	return user.Record{}, ErrNotFound
}

func (m *Memory) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) CountUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

func (m *Memory) CountVersions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.versions)
}

func (m *Memory) ListVersions(_ context.Context) []version.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]version.Record, len(m.versions))
	copy(out, m.versions)
	return out
}

// CreateVersion добавляет версию; пара appName+version уникальна
func (m *Memory) CreateVersion(_ context.Context, req version.CreateRequest) (version.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findVersionLocked(req.AppName, req.Version) >= 0 {
		return version.Record{}, ErrDuplicateVersion
	}

	rec := version.Record{
		ID:           uuid.NewString(),
		AppName:      req.AppName,
		Version:      req.Version,
		Changelog:    req.Changelog,
		DownloadLink: req.DownloadLink,
		CreatedAt:    m.now().UTC(),
	}
	m.versions = append(m.versions, rec)
	return rec, nil
}

// UpdateVersion меняет версию. Пустое appName оставляет приложение прежним.
func (m *Memory) UpdateVersion(_ context.Context, id string, req version.UpdateRequest) (version.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.versions {
		if m.versions[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return version.Record{}, ErrNotFound
	}

	appName := m.versions[idx].AppName
	if req.AppName != "" {
		appName = req.AppName
	}

	if other := m.findVersionLocked(appName, req.Version); other >= 0 && other != idx {
		return version.Record{}, ErrDuplicateVersion
	}

	rec := &m.versions[idx]
	rec.AppName = appName
	rec.Version = req.Version
	rec.Changelog = req.Changelog
	rec.DownloadLink = req.DownloadLink
	return *rec, nil
}

func (m *Memory) findVersionLocked(appName, ver string) int {
	for i, v := range m.versions {
		if v.AppName == appName && v.Version == ver {
			return i
		}
	}
	return -1
}

// Enroll фиксирует установку версии приложения на устройство
func (m *Memory) Enroll(_ context.Context, appName, ver string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findVersionLocked(appName, ver) < 0 {
		return ErrUnknownVersion
	}

	m.enrollments = append(m.enrollments, enrollment{appName: appName, version: ver, at: m.now().UTC()})
	return nil
}

// Analytics группирует установки приложения по дню и версии
func (m *Memory) Analytics(_ context.Context, appName string) []analytics.Point {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[analytics.Key]int)
	for _, e := range m.enrollments {
		if e.appName != appName {
			continue
		}
		key := analytics.Key{
			Day:     e.at.Day(),
			Month:   int(e.at.Month()),
			Year:    e.at.Year(),
			Version: e.version,
		}
		counts[key]++
	}

	points := make([]analytics.Point, 0, len(counts))
	for k, c := range counts {
		points = append(points, analytics.Point{ID: k, Count: c})
	}

	sort.Slice(points, func(i, j int) bool {
		a, b := points[i].ID, points[j].ID
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Version < b.Version
	})
	return points
}
