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
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

type httpUsersClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPUsersClient constructs the HTTP implementation of [UsersClient].
// address may omit the scheme, in which case http:// is assumed.
func NewHTTPUsersClient(address string, timeout time.Duration, logger *logger.Logger) (UsersClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid users client address: %w", err)
	}

	return &httpUsersClient{
		client: utils.NewHTTPClient(baseURL, timeout),
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

func (h *httpUsersClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpUsersClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// List implements [UsersClient]. It sends GET /users with skip and take
// query parameters; take is omitted when params.Take is nil.
func (h *httpUsersClient) List(ctx context.Context, params models.ListParams) ([]models.User, error) {
	users := make([]models.User, 0)

	req := h.authedRequest(ctx).
		SetQueryParam("skip", strconv.Itoa(params.Skip)).
		SetResult(&users)
	if params.Take != nil {
		req.SetQueryParam("take", strconv.Itoa(*params.Take))
	}

	resp, err := req.Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpUsersClient) Get(ctx context.Context, id int64) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&user).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpUsersClient) Create(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(userPayload{Username: user.Username, Email: user.Email}).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	h.logger.Debug().
		Str("func", "*httpUsersClient.Create").
		Str("location", resp.Header().Get("Location")).
		Msg("user created")

	return created, nil
}

func (h *httpUsersClient) Update(ctx context.Context, user models.User) (models.User, error) {
	var updated models.User

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(user.ID, 10)).
		SetHeader("Content-Type", "application/json").
		SetBody(userPayload{Username: user.Username, Email: user.Email}).
		SetResult(&updated).
		Put("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return updated, nil
}

func (h *httpUsersClient) Delete(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpUsersClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// userPayload is the request body of create and update; the id travels in
// the path.
type userPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
