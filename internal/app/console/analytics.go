package console

import (
	"context"
	"sync"

	"osupdater/internal/domain/analytics"
)

// AnalyticsView - данные экрана аналитики для одного приложения
type AnalyticsView struct {
	AppName  string          `json:"appName"`
	Selected string          `json:"selected"`
	Options  []string        `json:"options"`
	Bars     []analytics.Bar `json:"bars"`
	Total    int             `json:"total"`
	Max      int             `json:"-"`
}

// AnalyticsScreen показывает установки приложения по дням и версиям
type AnalyticsScreen struct {
	screen
	appName string

	mu       sync.RWMutex
	loaded   string
	points   []analytics.Point
	selected string
}

// Load загружает статистику приложения. Пустое имя - приложение по умолчанию.
func (s *AnalyticsScreen) Load(ctx context.Context, appName string) error {
	if err := s.guard(ctx); err != nil {
		return err
	}

	if appName == "" {
		appName = s.appName
	}

	points, err := s.backend.EnrollAnalytics(ctx, appName)
	if err != nil {
		return s.fail(err, describe(err, "Не удалось загрузить статистику."))
	}

	s.mu.Lock()
	if s.loaded != appName {
		s.selected = analytics.AllVersions
	}
	s.loaded = appName
	s.points = points
	s.mu.Unlock()

	s.log.Debug("статистика загружена", "app", appName, "points", len(points))
	return nil
}

// Select выбирает версию для фильтра; пустое значение означает все версии
func (s *AnalyticsScreen) Select(v string) {
	if v == "" {
		v = analytics.AllVersions
	}

	s.mu.Lock()
	s.selected = v
	s.mu.Unlock()
}

func (s *AnalyticsScreen) View() AnalyticsView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := s.selected
	if selected == "" {
		selected = analytics.AllVersions
	}

	bars := analytics.Filter(analytics.Bars(s.points), selected)
	return AnalyticsView{
		AppName:  s.loaded,
		Selected: selected,
		Options:  analytics.VersionOptions(s.points),
		Bars:     bars,
		Total:    analytics.Total(bars),
		Max:      analytics.MaxCount(bars),
	}
}
