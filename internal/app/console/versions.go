package console

import (
	"context"
	"sync"

	"osupdater/internal/domain/version"
)

// VersionsScreen - список версий приложений с созданием и редактированием
type VersionsScreen struct {
	screen

	mu    sync.RWMutex
	items []version.Record
}

// Load загружает версии. При ошибке показанные ранее данные сохраняются.
func (s *VersionsScreen) Load(ctx context.Context) error {
	if err := s.guard(ctx); err != nil {
		return err
	}
	return s.fetch(ctx)
}

func (s *VersionsScreen) fetch(ctx context.Context) error {
	items, err := s.backend.ListVersions(ctx)
	if err != nil {
		return s.fail(err, describe(err, "Не удалось загрузить версии."))
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.log.Debug("версии загружены", "count", len(items))
	return nil
}

// Items возвращает копию последнего загруженного списка
func (s *VersionsScreen) Items() []version.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]version.Record, len(s.items))
	copy(out, s.items)
	return out
}

func (s *VersionsScreen) Find(id string) (version.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.items {
		if r.ID == id {
			return r, true
		}
	}
	return version.Record{}, false
}

func (s *VersionsScreen) Create(ctx context.Context, req version.CreateRequest) error {
	if err := s.guard(ctx); err != nil {
		return err
	}

	if err := version.ValidateCreate(req); err != nil {
		return s.fail(err, describe(err, genericFailure))
	}

	if err := s.backend.CreateVersion(ctx, req); err != nil {
		return s.fail(err, describe(err, genericFailure))
	}

	s.log.Info("версия создана", "app", req.AppName, "version", req.Version)
	s.notifier.Notify(success("Версия создана."))
	s.refresh(ctx)
	return nil
}

// Update сохраняет форму редактирования версии id
func (s *VersionsScreen) Update(ctx context.Context, id string, req version.UpdateRequest) error {
	if err := s.guard(ctx); err != nil {
		return err
	}

	if err := version.ValidateUpdate(req); err != nil {
		return s.fail(err, describe(err, genericFailure))
	}

	if err := s.backend.UpdateVersion(ctx, id, req); err != nil {
		return s.fail(err, describe(err, genericFailure))
	}

	s.log.Info("версия обновлена", "id", id, "version", req.Version)
	s.notifier.Notify(success("Версия обновлена."))
	s.refresh(ctx)
	return nil
}

// refresh перечитывает список после успешного изменения. Ошибка уже
// показана пользователем через fetch, само изменение выполнено.
func (s *VersionsScreen) refresh(ctx context.Context) {
	_ = s.fetch(ctx)
}
