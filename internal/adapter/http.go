// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

const apiPrefix = "/api/v1"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for the server at cfg.Address. A token from cfg is attached to
// authenticated requests right away.
//
// Returns an error if cfg.Address is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL+apiPrefix, cfg.RequestTimeout)
	client.SetError(&models.ErrorResponse{})
	client.SetLogger(restyLogger{logger})

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/users/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/users/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("%w: login response without token", ErrUnexpectedResponse)
	}

	h.SetToken(result.Token)
	return result.Token, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.UserListItem, error) {
	var users []models.UserListItem

	resp, err := h.authedRequest(ctx).SetResult(&users).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return users, nil
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	resp, err := h.authedRequest(ctx).SetBody(req).Post("/users")
	if err != nil {
		return fmt.Errorf("create user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreatePost(ctx context.Context, req models.CreatePostRequest) error {
	resp, err := h.authedRequest(ctx).SetBody(req).Post("/posts/create")
	if err != nil {
		return fmt.Errorf("create post request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListOwnPosts(ctx context.Context) ([]models.Post, error) {
	return h.listPosts(ctx, "/posts")
}

func (h *httpServerAdapter) ListPublicPosts(ctx context.Context) ([]models.Post, error) {
	return h.listPosts(ctx, "/posts/getall")
}

func (h *httpServerAdapter) UpdatePost(ctx context.Context, postID string, req models.UpdatePostRequest) (int64, error) {
	return h.affected(h.authedRequest(ctx).SetBody(req), http.MethodPut, "/posts/{id}", postID)
}

func (h *httpServerAdapter) UpdateVisibility(ctx context.Context, postID string, isHidden bool) (int64, error) {
	req := models.UpdateVisibilityRequest{IsHidden: &isHidden}
	return h.affected(h.authedRequest(ctx).SetBody(req), http.MethodPut, "/posts/visibility/{id}", postID)
}

func (h *httpServerAdapter) DeletePost(ctx context.Context, postID string) (int64, error) {
	return h.affected(h.authedRequest(ctx), http.MethodDelete, "/posts/{id}", postID)
}

func (h *httpServerAdapter) DeleteAnyPost(ctx context.Context, postID string) (int64, error) {
	return h.affected(h.authedRequest(ctx), http.MethodDelete, "/posts/deleteAdmin/{id}", postID)
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) listPosts(ctx context.Context, path string) ([]models.Post, error) {
	var posts []models.Post

	resp, err := h.authedRequest(ctx).SetResult(&posts).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return posts, nil
}

// affected sends req and decodes the [n] body of post mutations.
func (h *httpServerAdapter) affected(req *resty.Request, method, path, postID string) (int64, error) {
	var counts []int64

	resp, err := req.
		SetPathParam("id", postID).
		SetResult(&counts).
		Execute(method, path)
	if err != nil {
		return 0, fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	if len(counts) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUnexpectedResponse, resp.String())
	}

	return counts[0], nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
