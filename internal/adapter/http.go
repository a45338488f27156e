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

	"github.com/MKhiriev/go-pay-trial/internal/config"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/utils"
	"github.com/MKhiriev/go-pay-trial/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter] via POST /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.SessionStatus, error) {
	return h.authenticate(ctx, "/api/auth/signup", req)
}

// Login implements [ServerAdapter] via POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.SessionStatus, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

// authenticate posts body to path and stores the bearer token returned in
// the Authorization response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (models.SessionStatus, error) {
	var status models.SessionStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&status).
		Post(path)
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionStatus{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	h.SetToken(token)
	if accountID, err := utils.ParseAccountIDFromJWT(token); err == nil {
		h.logger.Debug().Str("account_id", accountID).Msgf("%s: token stored", path)
	}
	return status, nil
}

// Logout implements [ServerAdapter] via POST /api/auth/logout. The token is
// forgotten even when the server no longer accepts it.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	h.SetToken("")
	return mapHTTPError(resp)
}

// Session implements [ServerAdapter] via GET /api/session.
func (h *httpServerAdapter) Session(ctx context.Context) (models.SessionStatus, error) {
	var status models.SessionStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/api/session")
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionStatus{}, err
	}

	return status, nil
}

// StartTrial implements [ServerAdapter] via POST /api/trial.
func (h *httpServerAdapter) StartTrial(ctx context.Context, card models.CardDetails) (models.SessionStatus, error) {
	var status models.SessionStatus

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(card).
		SetResult(&status).
		Post("/api/trial")
	if err != nil {
		return models.SessionStatus{}, fmt.Errorf("start trial request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionStatus{}, err
	}

	return status, nil
}

// Tools implements [ServerAdapter] via GET /api/dashboard/tools.
func (h *httpServerAdapter) Tools(ctx context.Context) ([]models.ToolAccess, error) {
	var tools []models.ToolAccess

	resp, err := h.authedRequest(ctx).
		SetResult(&tools).
		Get("/api/dashboard/tools")
	if err != nil {
		return nil, fmt.Errorf("tools request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tools, nil
}

// LaunchTool implements [ServerAdapter] via
// POST /api/dashboard/tools/{name}/launch. The name is path-escaped.
func (h *httpServerAdapter) LaunchTool(ctx context.Context, name string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		Post("/api/dashboard/tools/{name}/launch")
	if err != nil {
		return fmt.Errorf("launch tool request: %w", err)
	}

	return mapHTTPError(resp)
}

// Notifications implements [ServerAdapter] via GET /api/notifications.
func (h *httpServerAdapter) Notifications(ctx context.Context, limit int) ([]models.Notification, error) {
	var notifications []models.Notification

	req := h.client.R().
		SetContext(ctx).
		SetResult(&notifications)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/notifications")
	if err != nil {
		return nil, fmt.Errorf("notifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notifications, nil
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
