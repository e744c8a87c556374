package web

import (
	"bytes"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"osupdater/internal/app/console"
	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
	"osupdater/internal/session"
)

type pageData struct {
	Title     string
	LoggedIn  bool
	Role      string
	ExpiresAt time.Time
	Flashes   []console.Notification

	Versions  []version.Record
	Apps      []string
	Edit      map[string]version.UpdateRequest
	Users     []user.Record
	Roles     []string
	Analytics console.AnalyticsView
	Username  string
}

func (s *Server) render(w http.ResponseWriter, page string, data pageData) {
	sess := s.app.Session()
	data.LoggedIn = sess.State() == session.LoggedIn
	data.Role = sess.Role()
	data.ExpiresAt = sess.ExpiresAt()
	data.Flashes = s.flash.Drain()

	var buf bytes.Buffer
	if err := s.pages[page].ExecuteTemplate(&buf, "layout.html", data); err != nil {
		s.log.Error("ошибка рендеринга страницы", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request) {
	if s.app.Session().Active() {
		s.redirect(w, r, "/dashboard")
		return
	}
	s.render(w, "login", pageData{Title: "Вход"})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req := user.LoginRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	if err := s.app.Login(r.Context(), req); err != nil {
		s.render(w, "login", pageData{Title: "Вход", Username: req.Username})
		return
	}

	s.redirect(w, r, "/dashboard")
}

func (s *Server) registerPage(w http.ResponseWriter, r *http.Request) {
	s.render(w, "register", pageData{Title: "Регистрация"})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	req := user.RegisterRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}

	if err := s.app.Register(r.Context(), req); err != nil {
		s.render(w, "register", pageData{Title: "Регистрация", Username: req.Username})
		return
	}

	s.redirect(w, r, "/login")
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Logout(r.Context()); err != nil {
		s.log.Error("ошибка выхода", "error", err)
	}
	s.redirect(w, r, "/login")
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	_ = s.app.Versions.Load(r.Context())

	items := s.app.Versions.Items()
	edit := make(map[string]version.UpdateRequest, len(items))
	for _, rec := range items {
		edit[rec.ID] = version.EditForm(rec)
	}

	s.render(w, "dashboard", pageData{
		Title:    "Управление приложениями",
		Versions: items,
		Apps:     version.AppNames(items),
		Edit:     edit,
	})
}

func (s *Server) createVersion(w http.ResponseWriter, r *http.Request) {
	req := version.CreateRequest{
		AppName:      strings.TrimSpace(r.PostFormValue("appName")),
		Version:      strings.TrimSpace(r.PostFormValue("version")),
		Changelog:    r.PostFormValue("changelog"),
		DownloadLink: strings.TrimSpace(r.PostFormValue("downloadLink")),
	}

	_ = s.app.Versions.Create(r.Context(), req)
	s.redirect(w, r, "/dashboard")
}

func (s *Server) updateVersion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	req := version.UpdateRequest{
		AppName:      strings.TrimSpace(r.PostFormValue("appName")),
		Version:      strings.TrimSpace(r.PostFormValue("version")),
		Changelog:    r.PostFormValue("changelog"),
		DownloadLink: strings.TrimSpace(r.PostFormValue("downloadLink")),
	}

	_ = s.app.Versions.Update(r.Context(), id, req)
	s.redirect(w, r, "/dashboard")
}

func (s *Server) users(w http.ResponseWriter, r *http.Request) {
	_ = s.app.Users.Load(r.Context())
	s.render(w, "users", pageData{Title: "Пользователи", Users: s.app.Users.Items(), Roles: user.Roles})
}

func (s *Server) addUser(w http.ResponseWriter, r *http.Request) {
	req := user.RegisterRequest{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
		Role:     r.PostFormValue("role"),
	}

	_ = s.app.Users.Add(r.Context(), req)
	s.redirect(w, r, "/users")
}

func (s *Server) setRole(w http.ResponseWriter, r *http.Request) {
	_ = s.app.Users.SetRole(r.Context(), chi.URLParam(r, "id"), r.PostFormValue("role"))
	s.redirect(w, r, "/users")
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	confirmed := r.PostFormValue("confirm") == "yes"

	err := s.app.Users.Delete(r.Context(), chi.URLParam(r, "id"), func(string) bool { return confirmed })
	if errors.Is(err, console.ErrCancelled) {
		s.log.Debug("удаление отменено", slog.String("id", chi.URLParam(r, "id")))
	}
	s.redirect(w, r, "/users")
}

func (s *Server) analytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	// app - старое имя параметра
	appName := strings.TrimSpace(q.Get("appName"))
	if appName == "" {
		appName = strings.TrimSpace(q.Get("app"))
	}

	_ = s.app.Analytics.Load(r.Context(), appName)
	s.app.Analytics.Select(q.Get("version"))

	view := s.app.Analytics.View()
	s.render(w, "analytics", pageData{Title: "Статистика " + view.AppName, Analytics: view})
}
