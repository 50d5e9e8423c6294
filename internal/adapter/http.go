// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/utils"
	"github.com/MKhiriev/go-accounts/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// userEnvelope is the {"status","payload","message"} body of single-user
// responses.
type userEnvelope struct {
	Status  int         `json:"status"`
	Payload models.User `json:"payload"`
	Message string      `json:"message"`
}

// userListEnvelope is the paginated body of GET /users/.
type userListEnvelope struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  struct {
		Status  int           `json:"status"`
		Payload []models.User `json:"payload"`
		Token   string        `json:"token"`
	} `json:"results"`
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ObtainToken implements [ServerAdapter] via POST /api/token/.
func (h *httpServerAdapter) ObtainToken(ctx context.Context, creds models.Credentials) (models.TokenPair, error) {
	var pair models.TokenPair

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&pair).
		Post("/api/token/")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("obtain token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}
	if pair.Access == "" {
		return models.TokenPair{}, fmt.Errorf("obtain token: %w", ErrUnexpectedPayload)
	}

	h.SetToken(pair.Access)
	h.logger.Debug().Str("username", creds.Username).Msg("token pair obtained")
	return pair, nil
}

// RefreshToken implements [ServerAdapter] via POST /api/token/refresh/.
func (h *httpServerAdapter) RefreshToken(ctx context.Context, refresh string) (string, error) {
	var access models.AccessResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.RefreshRequest{Refresh: refresh}).
		SetResult(&access).
		Post("/api/token/refresh/")
	if err != nil {
		return "", fmt.Errorf("refresh token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return access.Access, nil
}

// VerifyToken implements [ServerAdapter] via POST /api/token/verify/.
func (h *httpServerAdapter) VerifyToken(ctx context.Context, token string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.VerifyRequest{Token: token}).
		Post("/api/token/verify/")
	if err != nil {
		return fmt.Errorf("verify token request: %w", err)
	}

	return mapHTTPError(resp)
}

// AppInfo implements [ServerAdapter] via GET /api/version/.
func (h *httpServerAdapter) AppInfo(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("app info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

// ListUsers implements [ServerAdapter] via GET /users/.
func (h *httpServerAdapter) ListUsers(ctx context.Context, page, pageSize int) (models.UserList, error) {
	var body userListEnvelope

	req := h.authedRequest(ctx).SetResult(&body)
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		req.SetQueryParam("page_size", strconv.Itoa(pageSize))
	}

	resp, err := req.Get("/users/")
	if err != nil {
		return models.UserList{}, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserList{}, err
	}

	list := models.UserList{
		Count: body.Count,
		Users: body.Results.Payload,
		Token: body.Results.Token,
	}
	if body.Next != nil {
		list.Next = *body.Next
	}
	if body.Previous != nil {
		list.Previous = *body.Previous
	}
	return list, nil
}

// GetUser implements [ServerAdapter] via GET /users/{id}/.
func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.User, error) {
	var body userEnvelope

	resp, err := h.authedRequest(ctx).
		SetResult(&body).
		Get(userPath(id))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return body.Payload, nil
}

// CreateUser implements [ServerAdapter] via POST /users/.
func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	var body userEnvelope

	resp, err := h.authedRequest(ctx).
		SetBody(user).
		SetResult(&body).
		Post("/users/")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return body.Payload, nil
}

// DeleteUser implements [ServerAdapter] via DELETE /users/{id}/.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete(userPath(id))
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func userPath(id int64) string {
	return "/users/" + strconv.FormatInt(id, 10) + "/"
}
