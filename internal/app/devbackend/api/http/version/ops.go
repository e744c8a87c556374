package version

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "versions-list",
		Method:      http.MethodGet,
		Path:        "/versions",
		Summary:     "Список версий приложений",
		Tags:        []string{"versions"},
		Middlewares: h.public,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "versions-create",
		Method:        http.MethodPost,
		Path:          "/versions",
		Summary:       "Опубликовать версию",
		Description:   "Пара appName и version должна быть уникальной, иначе 400 duplicate version.",
		Tags:          []string{"versions"},
		Security:      []map[string][]string{{"bearer": {}}},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "versions-update",
		Method:      http.MethodPut,
		Path:        "/versions/{id}",
		Summary:     "Изменить версию",
		Tags:        []string{"versions"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
