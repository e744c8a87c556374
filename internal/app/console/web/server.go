// Package web - локальная веб-версия консоли поверх console.App
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/console"
	"osupdater/internal/session"
	"osupdater/internal/utils/server"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pages = []string{"login", "register", "dashboard", "users", "analytics"}

type Server struct {
	app   *console.App
	flash *console.Recorder
	log   *slog.Logger
	base  string
	pages map[string]*template.Template
}

// New создает веб-консоль. flash должен быть тем же Recorder, который
// передан в console.App как Notifier.
func New(app *console.App, flash *console.Recorder, log *slog.Logger) (*Server, error) {
	s := &Server{
		app:   app,
		flash: flash,
		log:   log.With(slog.String("component", "web")),
		base:  app.Config().WebBasePath,
		pages: make(map[string]*template.Template, len(pages)),
	}

	funcs := template.FuncMap{
		"url":     s.url,
		"percent": percent,
		"time":    func(t time.Time) string { return t.Local().Format("02.01.2006 15:04") },
	}

	layout, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	for _, name := range pages {
		t, err := layout.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		s.pages[name] = t
	}

	return s, nil
}

// Handler возвращает роутер консоли, смонтированный под базовым путем
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.redirect(w, r, "/login")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.redirect(w, r, "/login")
	})

	routes := func(r chi.Router) {
		r.Get("/login", s.loginPage)
		r.Post("/login", s.login)
		r.Get("/register", s.registerPage)
		r.Post("/register", s.register)
		r.Post("/logout", s.logout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)

			r.Get("/dashboard", s.dashboard)
			r.Post("/dashboard/versions", s.createVersion)
			r.Post("/dashboard/versions/{id}", s.updateVersion)

			r.Get("/users", s.users)
			r.Post("/users", s.addUser)
			r.Post("/users/{id}/role", s.setRole)
			r.Post("/users/{id}/delete", s.deleteUser)

			r.Get("/analytics", s.analytics)
		})
	}

	if s.base == "" {
		routes(r)
	} else {
		r.Route(s.base, routes)
	}

	return r
}

// Run обслуживает консоль до отмены ctx
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("Веб-консоль доступна", "url", "http://"+addr+s.url("/login"))
	return server.Run(ctx, srv, s.log)
}

// requireSession пускает на защищенные страницы только при действующей сессии
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := s.app.Session().Check(r.Context())
		if err == nil {
			next.ServeHTTP(w, r)
			return
		}

		if errors.Is(err, session.ErrExpired) {
			s.flash.Notify(console.Notification{
				Title:       "Ошибка",
				Description: "Сессия истекла. Войдите снова.",
				Variant:     console.VariantDestructive,
			})
		}
		s.redirect(w, r, "/login")
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Debug("HTTP request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) url(path string) string {
	return s.base + path
}

func (s *Server) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, s.url(path), http.StatusSeeOther)
}

func percent(count, max int) int {
	if max <= 0 {
		return 0
	}
	return count * 100 / max
}
