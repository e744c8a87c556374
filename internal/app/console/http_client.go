package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"osupdater/internal/app/console/config"
	"osupdater/internal/domain/analytics"
	"osupdater/internal/domain/user"
	"osupdater/internal/domain/version"
)

// Backend - REST контракт сервиса обновлений, которым пользуется консоль
type Backend interface {
	Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error)
	Register(ctx context.Context, req user.RegisterRequest) error
	ListVersions(ctx context.Context) ([]version.Record, error)
	CreateVersion(ctx context.Context, req version.CreateRequest) error
	UpdateVersion(ctx context.Context, id string, req version.UpdateRequest) error
	ListUsers(ctx context.Context) ([]user.Record, error)
	UpdateUserRole(ctx context.Context, id, role string) error
	DeleteUser(ctx context.Context, id string) error
	EnrollAnalytics(ctx context.Context, appName string) ([]analytics.Point, error)
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     func() string
	userAgent string
}

// NewHTTPClient создает клиента бэкенда. token вызывается перед каждым
// запросом; непустой токен передается в заголовке Authorization.
func NewHTTPClient(cfg *config.Config, token func() string, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With(slog.String("component", "http_client")),
		baseURL:   cfg.BaseURL(),
		token:     token,
		userAgent: "OSUpdater-Console/1.0",
	}
}

func (h *httpClient) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	var resp user.LoginResponse
	if err := h.do(ctx, http.MethodPost, "/login", req, &resp); err != nil {
		return user.LoginResponse{}, err
	}
	return resp, nil
}

func (h *httpClient) Register(ctx context.Context, req user.RegisterRequest) error {
	return h.do(ctx, http.MethodPost, "/register", req, nil)
}

func (h *httpClient) ListVersions(ctx context.Context) ([]version.Record, error) {
	var versions []version.Record
	if err := h.do(ctx, http.MethodGet, "/versions", nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

func (h *httpClient) CreateVersion(ctx context.Context, req version.CreateRequest) error {
	return h.do(ctx, http.MethodPost, "/versions", req, nil)
}

func (h *httpClient) UpdateVersion(ctx context.Context, id string, req version.UpdateRequest) error {
	return h.do(ctx, http.MethodPut, "/versions/"+url.PathEscape(id), req, nil)
}

func (h *httpClient) ListUsers(ctx context.Context) ([]user.Record, error) {
	var users []user.Record
	if err := h.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpClient) UpdateUserRole(ctx context.Context, id, role string) error {
	return h.do(ctx, http.MethodPut, "/users/"+url.PathEscape(id)+"/role", user.RoleRequest{Role: role}, nil)
}

func (h *httpClient) DeleteUser(ctx context.Context, id string) error {
	return h.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
}

func (h *httpClient) EnrollAnalytics(ctx context.Context, appName string) ([]analytics.Point, error) {
	q := url.Values{}
	q.Set("appName", appName)

	var resp analytics.Response
	if err := h.do(ctx, http.MethodGet, "/enroll/analytics?"+q.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (h *httpClient) do(ctx context.Context, method, path string, body, result interface{}) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: "маршалинг тела запроса", Err: err}
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, &TransportError{Op: "создание запроса", Err: err}
	}

	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := h.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "выполнение запроса", Err: err}
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: "чтение ответа", Err: err}
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"size", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return &TransportError{Op: "парсинг ответа", Err: fmt.Errorf("статус %d: %w", resp.StatusCode, err)}
		}
	}

	return nil
}
