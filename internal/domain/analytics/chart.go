package analytics

import (
	"fmt"
	"strconv"
)

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName возвращает название месяца (1-12) по-индонезийски
func MonthName(month int) string {
	if month < 1 || month > len(months) {
		return strconv.Itoa(month)
	}
	return months[month-1]
}

// Label формирует подпись столбца: "(1.0.0) 5 Oktober 2024"
func Label(p Point) string {
	return fmt.Sprintf("(%s) %d %s %d", p.ID.Version, p.ID.Day, MonthName(p.ID.Month), p.ID.Year)
}

// Bars преобразует точки в столбцы, сохраняя порядок бэкенда
func Bars(points []Point) []Bar {
	bars := make([]Bar, 0, len(points))
	for _, p := range points {
		bars = append(bars, Bar{
			Label:   Label(p),
			Version: p.ID.Version,
			Count:   p.Count,
		})
	}
	return bars
}

// VersionOptions возвращает варианты фильтра: "Semua" и уникальные версии
// в порядке первого появления
func VersionOptions(points []Point) []string {
	seen := make(map[string]struct{}, len(points))
	options := []string{AllVersions}
	for _, p := range points {
		if _, ok := seen[p.ID.Version]; ok {
			continue
		}
		seen[p.ID.Version] = struct{}{}
		options = append(options, p.ID.Version)
	}
	return options
}

// Filter оставляет столбцы выбранной версии. Пустой выбор или "Semua" - все.
func Filter(bars []Bar, selected string) []Bar {
	if selected == "" || selected == AllVersions {
		return bars
	}

	out := make([]Bar, 0, len(bars))
	for _, b := range bars {
		// Точное совпадение: "1.0.0" не должен захватывать "11.0.0"
		if b.Version == selected {
			out = append(out, b)
		}
	}
	return out
}

// Total - сумма установок по столбцам
func Total(bars []Bar) int {
	total := 0
	for _, b := range bars {
		total += b.Count
	}
	return total
}

// MaxCount - максимальное значение среди столбцов
func MaxCount(bars []Bar) int {
	maxCount := 0
	for _, b := range bars {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	return maxCount
}
