package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Состояние dev-бэкенда",
		Description: "Статус и размер хранилища: число учетных записей и версий",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
