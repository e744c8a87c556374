package version

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/devbackend/store"
	"osupdater/internal/domain/version"
)

type Service interface {
	ListVersions(ctx context.Context) []version.Record
	CreateVersion(ctx context.Context, req version.CreateRequest) (version.Record, error)
	UpdateVersion(ctx context.Context, id string, req version.UpdateRequest) (version.Record, error)
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
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: h.service.ListVersions(ctx)}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*output, error) {
	req := version.CreateRequest{
		AppName:      input.Body.AppName,
		Version:      input.Body.Version,
		Changelog:    input.Body.Changelog,
		DownloadLink: input.Body.DownloadLink,
	}
	if err := version.ValidateCreate(req); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	rec, err := h.service.CreateVersion(ctx, req)
	if err != nil {
		return nil, h.mapError(err)
	}

	h.log.Info("версия опубликована", "app", rec.AppName, "version", rec.Version)
	return &output{Body: rec}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	req := version.UpdateRequest{
		AppName:      input.Body.AppName,
		Version:      input.Body.Version,
		Changelog:    input.Body.Changelog,
		DownloadLink: input.Body.DownloadLink,
	}
	if err := version.ValidateUpdate(req); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	rec, err := h.service.UpdateVersion(ctx, input.ID, req)
	if err != nil {
		return nil, h.mapError(err)
	}

	return &output{Body: rec}, nil
}

func (h *Handler) mapError(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicateVersion):
		return huma.Error400BadRequest("duplicate version")
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("version not found")
	default:
		h.log.Error("ошибка хранилища версий", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
