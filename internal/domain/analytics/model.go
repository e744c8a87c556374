// Package analytics форматирует уже посчитанную бэкендом статистику
// установок для отображения в консоли.
package analytics

// AllVersions - пункт фильтра "все версии"
const AllVersions = "Semua"

// Key - группировка точки на бэкенде: день и версия
type Key struct {
	Day     int    `json:"day"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Version string `json:"version"`
}

// Point - количество установок версии за день
type Point struct {
	ID    Key `json:"_id"`
	Count int `json:"count"`
}

// Response - ответ GET /enroll/analytics
type Response struct {
	Data []Point `json:"data"`
}

// Bar - подготовленный к выводу столбец графика
type Bar struct {
	Label   string `json:"date"`
	Version string `json:"version"`
	Count   int    `json:"count"`
}
