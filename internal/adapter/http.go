// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-session-keeper/internal/config"
	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/internal/utils"
	"github.com/MKhiriev/go-session-keeper/models"
)

const (
	loginPath    = "/login"
	registerPath = "/register"
	logoutPath   = "/logout"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/JSON implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress, configures the underlying HTTP client with the
// resolved base URL and request timeout, and prepares the HMAC hasher used for
// the HashSHA256 request header when appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(utils.NewUUIDGenerator())
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{
		client: client,
		hasher: utils.NewHasher(appCfg.HashKey),
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

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var out models.LoginResponse

	status, err := h.postJSON(ctx, loginPath, req, &out)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}

	if strings.TrimSpace(out.Token) == "" || out.User == nil {
		return models.LoginResponse{}, &ResponseError{
			StatusCode: status,
			Message:    out.Message,
			Err:        ErrIncompleteLoginResponse,
		}
	}

	h.SetToken(out.Token)
	return out, nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse

	if _, err := h.postJSON(ctx, registerPath, req, &out); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}

	return out, nil
}

// Logout implements [ServerAdapter].
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	defer h.SetToken("")

	if _, err := h.postJSON(ctx, logoutPath, nil, nil); err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return nil
}

// postJSON sends body (nil for an empty body) to path and decodes a 2xx
// response into out when out is non-nil and the body is non-empty. It returns
// the HTTP status of the response.
func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body any, out any) (int, error) {
	log := logger.FromContext(ctx)

	req := h.authedRequest(ctx)
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
		if sum := h.hasher.Sum(payload); sum != "" {
			req.SetHeader(utils.HashHeader, sum)
		}
	}

	resp, err := req.Post(path)
	if err != nil {
		log.Err(err).Str("func", "httpServerAdapter.postJSON").Str("path", path).Msg("request did not complete")
		return 0, fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	log.Debug().
		Str("func", "httpServerAdapter.postJSON").
		Str("path", path).
		Str("request_id", resp.Request.Header.Get(utils.RequestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("request completed")

	if err = mapHTTPError(resp); err != nil {
		return resp.StatusCode(), err
	}

	if out != nil && len(strings.TrimSpace(string(resp.Body()))) > 0 {
		if err = json.Unmarshal(resp.Body(), out); err != nil {
			return resp.StatusCode(), fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
