package enroll

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/devbackend/store"
	"osupdater/internal/domain/analytics"
)

type Service interface {
	Enroll(ctx context.Context, appName, version string) error
	Analytics(ctx context.Context, appName string) []analytics.Point
}

type Handler struct {
	service   Service
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service Service, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.enrollOp(), h.enroll)
	huma.Register(api, h.analyticsOp(), h.analytics)
}

func (h *Handler) enroll(ctx context.Context, input *enrollInput) (*enrollOutput, error) {
	err := h.service.Enroll(ctx, input.Body.AppName, input.Body.Version)
	if errors.Is(err, store.ErrUnknownVersion) {
		return nil, huma.Error404NotFound("version not found")
	}
	if err != nil {
		return nil, err
	}

	out := &enrollOutput{}
	out.Body.Status = "Ok"
	return out, nil
}

func (h *Handler) analytics(ctx context.Context, input *analyticsInput) (*analyticsOutput, error) {
	return &analyticsOutput{
		Body: analytics.Response{Data: h.service.Analytics(ctx, input.AppName)},
	}, nil
}
