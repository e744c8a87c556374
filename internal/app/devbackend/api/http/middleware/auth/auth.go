package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/devbackend/token"
)

// Parser проверяет bearer-токен
type Parser interface {
	Parse(tokenString string) (*token.Claims, error)
}

type Auth struct {
	tokens Parser
	log    *slog.Logger
}

func New(tokens Parser, log *slog.Logger) *Auth {
	return &Auth{
		tokens: tokens,
		log:    log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const claimsKey contextKey = "claims"

// Middleware пропускает запрос только с действующим bearer-токеном
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		claims, err := a.Claims(ctx.Header("Authorization"))
		if err != nil {
			a.log.Warn("отказ в доступе", "path", ctx.URL().Path, "error", err)
			unauthorized(ctx)
			return
		}

		next(huma.WithContext(ctx, WithClaims(ctx.Context(), claims)))
	}
}

// Claims разбирает значение заголовка Authorization
func (a *Auth) Claims(header string) (*token.Claims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, errMissingBearer
	}
	return a.tokens.Parse(raw)
}

func unauthorized(ctx huma.Context) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(http.StatusUnauthorized)
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

type authError string

func (e authError) Error() string { return string(e) }

const errMissingBearer = authError("missing bearer token")

func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func GetClaims(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}
