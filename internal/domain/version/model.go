package version

import "time"

// Record - версия приложения, принадлежащая бэкенду
type Record struct {
	ID           string    `json:"_id"`
	AppName      string    `json:"appName"`
	Version      string    `json:"version"`
	Changelog    string    `json:"changelog"`
	DownloadLink string    `json:"downloadLink"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateRequest - тело POST /versions
type CreateRequest struct {
	AppName      string `json:"appName"`
	Version      string `json:"version"`
	Changelog    string `json:"changelog"`
	DownloadLink string `json:"downloadLink"`
}

// UpdateRequest - тело PUT /versions/:id
type UpdateRequest struct {
	AppName      string `json:"appName,omitempty"`
	Version      string `json:"version"`
	Changelog    string `json:"changelog"`
	DownloadLink string `json:"downloadLink"`
}

// EditForm возвращает форму редактирования, заполненную текущими значениями
func EditForm(rec Record) UpdateRequest {
	return UpdateRequest{
		AppName:      rec.AppName,
		Version:      rec.Version,
		Changelog:    rec.Changelog,
		DownloadLink: rec.DownloadLink,
	}
}

// AppNames возвращает уникальные имена приложений в порядке появления
func AppNames(records []Record) []string {
	seen := make(map[string]struct{}, len(records))
	names := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.AppName]; ok {
			continue
		}
		seen[r.AppName] = struct{}{}
		names = append(names, r.AppName)
	}
	return names
}
