package console

import (
	"context"
	"sync"

	"osupdater/internal/domain/user"
)

// Confirm задает пользователю вопрос и возвращает его согласие
type Confirm func(question string) bool

// UsersScreen - управление учетными записями и ролями
type UsersScreen struct {
	screen

	mu    sync.RWMutex
	items []user.Record
}

func (s *UsersScreen) Load(ctx context.Context) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	return s.fetch(ctx)
}

func (s *UsersScreen) fetch(ctx context.Context) error {
	items, err := s.backend.ListUsers(ctx)
	if err != nil {
		return s.fail(err, describeLocal(err, "Не удалось загрузить пользователей. Попробуйте еще раз."))
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *UsersScreen) Items() []user.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.Record, len(s.items))
	copy(out, s.items)
	return out
}

func (s *UsersScreen) Find(id string) (user.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.items {
		if u.ID == id {
			return u, true
		}
	}
	return user.Record{}, false
}

// Add создает пользователя через POST /register
func (s *UsersScreen) Add(ctx context.Context, req user.RegisterRequest) error {
	const fallback = "Не удалось добавить пользователя. Попробуйте еще раз."

	if err := s.guard(ctx); err != nil {
		return err
	}

	if err := user.ValidateRegister(req); err != nil {
		return s.fail(err, describeLocal(err, fallback))
	}

	if err := s.backend.Register(ctx, req); err != nil {
		return s.fail(err, describeLocal(err, fallback))
	}

	s.log.Info("пользователь добавлен", "username", req.Username, "role", req.Role)
	s.notifier.Notify(success("Пользователь добавлен."))
	_ = s.fetch(ctx)
	return nil
}

func (s *UsersScreen) SetRole(ctx context.Context, id, role string) error {
	const fallback = "Не удалось изменить роль пользователя. Попробуйте еще раз."

	if err := s.guard(ctx); err != nil {
		return err
	}

	if err := user.ValidateRole(role); err != nil {
		return s.fail(err, describeLocal(err, fallback))
	}

	if err := s.backend.UpdateUserRole(ctx, id, role); err != nil {
		return s.fail(err, describeLocal(err, fallback))
	}

	s.log.Info("роль изменена", "id", id, "role", role)
	s.notifier.Notify(success("Роль пользователя изменена."))
	_ = s.fetch(ctx)
	return nil
}

// Delete удаляет пользователя после подтверждения. Отказ возвращает
// ErrCancelled без запроса к бэкенду.
func (s *UsersScreen) Delete(ctx context.Context, id string, confirm Confirm) error {
	if err := s.guard(ctx); err != nil {
		return err
	}

	if confirm == nil || !confirm("Удалить этого пользователя?") {
		return ErrCancelled
	}

	if err := s.backend.DeleteUser(ctx, id); err != nil {
		return s.fail(err, describeLocal(err, "Не удалось удалить пользователя. Попробуйте еще раз."))
	}

	s.log.Info("пользователь удален", "id", id)
	s.notifier.Notify(success("Пользователь удален."))
	_ = s.fetch(ctx)
	return nil
}
