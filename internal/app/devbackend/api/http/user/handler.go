package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/devbackend/store"
	"osupdater/internal/app/devbackend/token"
	"osupdater/internal/domain/user"
)

// Service - операции хранилища с учетными записями
type Service interface {
	CreateUser(ctx context.Context, username, password, role string) (user.Record, error)
	Authenticate(ctx context.Context, username, password string) (user.Record, error)
	ListUsers(ctx context.Context) []user.Record
	SetRole(ctx context.Context, id, role string) (user.Record, error)
	DeleteUser(ctx context.Context, id string) error
}

type Issuer interface {
	Issue(u user.Record) (string, error)
}

// ClaimsReader разбирает необязательный заголовок Authorization
type ClaimsReader interface {
	Claims(header string) (*token.Claims, error)
}

type Handler struct {
	service   Service
	tokens    Issuer
	claims    ClaimsReader
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(service Service, tokens Issuer, claims ClaimsReader, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		tokens:    tokens,
		claims:    claims,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.roleOp(), h.setRole)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, huma.Error401Unauthorized("invalid credentials")
	}

	tok, err := h.tokens.Issue(u)
	if err != nil {
		h.log.Error("ошибка выпуска токена", "error", err)
		return nil, huma.Error500InternalServerError("failed to issue token")
	}

	return &loginOutput{Body: user.LoginResponse{Token: tok, Role: u.Role}}, nil
}

// register создает пользователя. Роль admin может выдать только администратор.
func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	role := input.Body.Role
	if role == "" {
		role = user.RoleUser
	}

	if role == user.RoleAdmin {
		claims, err := h.claims.Claims(input.Authorization)
		if err != nil || claims.Role != user.RoleAdmin {
			return nil, huma.Error403Forbidden("only admin can create admin accounts")
		}
	}

	if err := user.ValidateUsername(input.Body.Username); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	rec, err := h.service.CreateUser(ctx, input.Body.Username, input.Body.Password, role)
	if errors.Is(err, store.ErrUserExists) {
		return nil, huma.Error400BadRequest("username already taken")
	}
	if err != nil {
		return nil, err
	}

	h.log.Info("пользователь зарегистрирован", "username", rec.Username, "role", rec.Role)
	return &registerOutput{Body: rec}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: h.service.ListUsers(ctx)}, nil
}

func (h *Handler) setRole(ctx context.Context, input *roleInput) (*roleOutput, error) {
	rec, err := h.service.SetRole(ctx, input.ID, input.Body.Role)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("user not found")
	}
	if err != nil {
		return nil, err
	}

	return &roleOutput{Body: rec}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	if err := h.service.DeleteUser(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("user not found")
		}
		return nil, err
	}
	return nil, nil
}
