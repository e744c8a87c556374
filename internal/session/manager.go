package session

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// Timer - остановимый одноразовый таймер (*time.Timer)
type Timer interface {
	Stop() bool
}

// Option настраивает Manager
type Option func(*Manager)

// WithClock подменяет источник времени и планировщик таймеров
func WithClock(now func() time.Time, after func(time.Duration, func()) Timer) Option {
	return func(m *Manager) {
		m.nowFunc = now
		m.afterFunc = after
	}
}

// Manager управляет единственной сессией консоли с жестким ограничением
// времени жизни, не зависящим от срока действия токена на сервере.
type Manager struct {
	store       Store
	log         *slog.Logger
	maxDuration time.Duration
	nowFunc     func() time.Time
	afterFunc   func(time.Duration, func()) Timer

	mu        sync.Mutex
	token     string
	role      string
	loginTime time.Time
	watchdog  Timer
	// gen меняется при каждом перепланировании, чтобы устаревший таймер не
	// завершил более новую сессию
	gen      uint64
	onExpire []func()
}

func NewManager(store Store, maxDuration time.Duration, log *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		store:       store,
		log:         log.With(slog.String("component", "session")),
		maxDuration: maxDuration,
		nowFunc:     time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// MaxDuration возвращает максимальное время жизни сессии
func (m *Manager) MaxDuration() time.Duration {
	return m.maxDuration
}

// OnExpire регистрирует обработчик, вызываемый после истечения сессии по таймеру
func (m *Manager) OnExpire(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = append(m.onExpire, fn)
}

// Login начинает новую сессию, безусловно заменяя предыдущую
func (m *Manager) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.nowFunc()
	err := m.store.Put(ctx, map[string]string{
		KeyToken:     token,
		KeyLoginTime: strconv.FormatInt(now.UnixMilli(), 10),
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	m.token = token
	m.loginTime = now.Truncate(time.Millisecond)
	m.scheduleLocked(now.Sub(m.loginTime))

	m.log.Info("сессия начата", "expires_at", m.loginTime.Add(m.maxDuration))
	return nil
}

// ApplyRole назначает роль текущей сессии. Наличие токена не проверяется:
// роль может быть сохранена и без активной сессии.
func (m *Manager) ApplyRole(ctx context.Context, role string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Put(ctx, map[string]string{KeyRole: role}); err != nil {
		return fmt.Errorf("save role: %w", err)
	}

	m.role = role
	return nil
}

// Logout завершает сессию в памяти и в хранилище. Идемпотентен.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.logoutLocked(ctx)
}

// Restore восстанавливает сессию из хранилища при старте процесса
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	role, ok, err := m.store.Get(ctx, KeyRole)
	if err != nil {
		return fmt.Errorf("read role: %w", err)
	}
	if ok && role != "" {
		m.role = role
	}

	token, hasToken, err := m.store.Get(ctx, KeyToken)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	rawLoginTime, hasLoginTime, err := m.store.Get(ctx, KeyLoginTime)
	if err != nil {
		return fmt.Errorf("read login time: %w", err)
	}

	if !hasToken || token == "" || !hasLoginTime {
		m.log.Debug("сохраненная сессия не найдена")
		return nil
	}

	ms, err := strconv.ParseInt(rawLoginTime, 10, 64)
	if err != nil || ms <= 0 {
		m.log.Warn("некорректное время входа в хранилище", "value", rawLoginTime)
		return nil
	}

	loginTime := time.UnixMilli(ms)
	elapsed := m.nowFunc().Sub(loginTime)

	if elapsed < 0 {
		m.log.Warn("время входа в будущем, таймер ограничен максимальным сроком", "login_time", loginTime)
	}

	if elapsed >= m.maxDuration {
		m.log.Info("сохраненная сессия истекла", "login_time", loginTime)
		return m.logoutLocked(ctx)
	}

	m.token = token
	m.loginTime = loginTime
	m.scheduleLocked(elapsed)

	m.log.Debug("сессия восстановлена", "remaining", m.maxDuration-max(elapsed, 0))
	return nil
}

// Close останавливает таймер сессии. Сохраненное состояние не трогается.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
}

// Check возвращает ошибку, если активной сессии нет. Если срок уже вышел,
// а таймер еще не сработал, сессия завершается здесь же.
func (m *Manager) Check(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" {
		return ErrNotAuthenticated
	}

	if m.expiredLocked() {
		if err := m.logoutLocked(ctx); err != nil {
			return err
		}
		return ErrExpired
	}

	return nil
}

// Active сообщает, есть ли действующая сессия
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token != "" && !m.expiredLocked()
}

// Token возвращает токен действующей сессии или пустую строку
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token == "" || m.expiredLocked() {
		return ""
	}
	return m.token
}

// Role возвращает роль, даже если сессии нет
func (m *Manager) Role() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.role
}

func (m *Manager) State() State {
	return m.Info().State
}

func (m *Manager) LoginTime() time.Time {
	return m.Info().LoginTime
}

// ExpiresAt возвращает момент истечения или нулевое время без сессии
func (m *Manager) ExpiresAt() time.Time {
	return m.Info().ExpiresAt
}

// Info возвращает снимок сессии
func (m *Manager) Info() Info {
	m.mu.Lock()
	defer m.mu.Unlock()

	info := Info{State: LoggedOut, Role: m.role}
	if m.token == "" || m.expiredLocked() {
		return info
	}

	info.State = LoggedIn
	info.Token = m.token
	info.LoginTime = m.loginTime
	info.ExpiresAt = m.loginTime.Add(m.maxDuration)
	return info
}

func (m *Manager) expiredLocked() bool {
	return !m.nowFunc().Before(m.loginTime.Add(m.maxDuration))
}

func (m *Manager) logoutLocked(ctx context.Context) error {
	m.stopLocked()
	m.token = ""
	m.role = ""
	m.loginTime = time.Time{}

	if err := m.store.Delete(ctx, KeyToken, KeyRole, KeyLoginTime); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (m *Manager) stopLocked() {
	m.gen++
	if m.watchdog != nil {
		m.watchdog.Stop()
		m.watchdog = nil
	}
}

// scheduleLocked перепланирует таймер на момент loginTime + maxDuration,
// но не дальше maxDuration от текущего момента
func (m *Manager) scheduleLocked(elapsed time.Duration) {
	m.stopLocked()

	gen := m.gen
	delay := m.maxDuration - max(elapsed, 0)
	m.watchdog = m.afterFunc(delay, func() {
		m.expire(gen)
	})
}

func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.token == "" {
		m.mu.Unlock()
		return
	}

	m.watchdog = nil
	if err := m.logoutLocked(context.Background()); err != nil {
		m.log.Error("ошибка очистки истекшей сессии", "error", err)
	}
	hooks := append([]func(){}, m.onExpire...)
	m.mu.Unlock()

	m.log.Info("сессия истекла")
	for _, fn := range hooks {
		fn()
	}
}
