package enroll

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) enrollOp() huma.Operation {
	return huma.Operation{
		OperationID:   "enroll-create",
		Method:        http.MethodPost,
		Path:          "/enroll",
		Summary:       "Зафиксировать установку версии на устройство",
		Tags:          []string{"enroll"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.public,
	}
}

func (h *Handler) analyticsOp() huma.Operation {
	return huma.Operation{
		OperationID: "enroll-analytics",
		Method:      http.MethodGet,
		Path:        "/enroll/analytics",
		Summary:     "Установки по дням и версиям",
		Tags:        []string{"enroll"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
