//dev-бэкенд для консоли обновлений ОС:
//реализует REST контракт, который ожидает консоль;
//хранит пользователей, версии и установки в памяти процесса.

//POST   /login                 # Логин (публичный)
//POST   /register              # Регистрация (публичный, роль admin только с токеном админа)
//GET    /users                 # Список пользователей (auth)
//PUT    /users/{id}/role       # Изменить роль (auth)
//DELETE /users/{id}            # Удалить пользователя (auth)
//GET    /versions              # Список версий (публичный)
//POST   /versions              # Опубликовать версию (auth)
//PUT    /versions/{id}         # Изменить версию (auth)
//POST   /enroll                # Зафиксировать установку (публичный)
//GET    /enroll/analytics      # Установки по дням и версиям (auth)

package api

import (
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/devbackend/api/http/enroll"
	healthAPI "osupdater/internal/app/devbackend/api/http/health"
	"osupdater/internal/app/devbackend/api/http/middleware"
	"osupdater/internal/app/devbackend/api/http/middleware/auth"
	"osupdater/internal/app/devbackend/api/http/middleware/logger"
	userAPI "osupdater/internal/app/devbackend/api/http/user"
	versionAPI "osupdater/internal/app/devbackend/api/http/version"
	"osupdater/internal/app/devbackend/store"
	"osupdater/internal/app/devbackend/token"
)

type Handlers struct {
	Health  *healthAPI.Handler
	User    *userAPI.Handler
	Version *versionAPI.Handler
	Enroll  *enroll.Handler
}

// New создает *chi.Mux со всеми операциями dev-бэкенда
func New(storage *store.Memory, tokens *token.Issuer, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	API := humachi.New(mux, Config())

	Register(API, storage, tokens, log)
	return mux
}

// Config - конфигурация huma с bearer-схемой и именами схем по пакетам
func Config() huma.Config {
	config := huma.DefaultConfig("OS Updater dev backend", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	return config
}

// Register регистрирует операции на готовом huma.API
func Register(API huma.API, storage *store.Memory, tokens *token.Issuer, log *slog.Logger) {
	useErrorBodies()

	h := handlers(storage, tokens, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Version.SetupRoutes(API)
	h.Enroll.SetupRoutes(API)
}

func handlers(storage *store.Memory, tokens *token.Issuer, log *slog.Logger) *Handlers {
	authMW := auth.New(tokens, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	healthHandler := healthAPI.NewHandler(storage, log, middlewares.Add(loggerMW.Middleware()).GetAllAndClear())

	public := middlewares.Add(loggerMW.Middleware()).GetAllAndClear()
	protected := middlewares.Add(loggerMW.Middleware(), authMW.Middleware()).GetAllAndClear()

	return &Handlers{
		Health:  healthHandler,
		User:    userAPI.NewHandler(storage, tokens, authMW, log, public, protected),
		Version: versionAPI.NewHandler(storage, log, public, protected),
		Enroll:  enroll.NewHandler(storage, log, public, protected),
	}
}

func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return name
	}

	pkg := path.Base(t.PkgPath())
	return strings.ToUpper(pkg[:1]) + pkg[1:] + name
}
