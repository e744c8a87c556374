package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Counter сообщает размер хранилища
type Counter interface {
	CountUsers() int
	CountVersions() int
}

type Handler struct {
	counter    Counter
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(counter Counter, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		counter:    counter,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status:   "OK",
			Users:    h.counter.CountUsers(),
			Versions: h.counter.CountVersions(),
		},
	}, nil
}
