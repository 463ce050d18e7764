// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/utils"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

const tenantHeader = "Fineract-Platform-TenantId"

type fineractAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	username string
	password string

	logger *logger.Logger
}

// NewFineractAdapter constructs the HTTP implementation of
// [FineractAdapter]. The base URL must point at the API root, e.g.
// https://host/fineract-provider/api/v1. A positive cfg.RateLimit throttles
// outgoing requests to that many per second.
func NewFineractAdapter(cfg config.ClientAdapter, log *logger.Logger) (FineractAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.RateBurst, 1))
	}

	client := utils.NewHTTPClient(limiter)
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader(tenantHeader, cfg.Tenant).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &fineractAdapter{
		client:   client,
		username: cfg.Username,
		password: cfg.Password,
		logger:   log.WithComponent("fineract-adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
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

// SetToken implements [FineractAdapter].
func (f *fineractAdapter) SetToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = strings.TrimSpace(token)
}

// Token implements [FineractAdapter].
func (f *fineractAdapter) Token() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.token
}

// Authenticate implements [FineractAdapter]. It POSTs to /authentication.
func (f *fineractAdapter) Authenticate(ctx context.Context, username, password string) (models.AuthResult, error) {
	var result models.AuthResult

	resp, err := f.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&result).
		Post("/authentication")
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("authentication request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResult{}, err
	}
	if !result.Authenticated || result.AuthKey == "" {
		return models.AuthResult{}, ErrNotAuthenticated
	}

	f.SetToken(result.AuthKey)
	f.logger.Info().Str("func", "fineractAdapter.Authenticate").
		Int64("user_id", result.UserID).
		Int64("office_id", result.OfficeID).
		Msg("authenticated against fineract")

	return result, nil
}

// CreateClient implements [FineractAdapter]. It POSTs to /clients.
func (f *fineractAdapter) CreateClient(ctx context.Context, payload models.ClientPayload) (models.CreateResult, error) {
	return f.create(ctx, "/clients", payload)
}

// CreateGroup implements [FineractAdapter]. It POSTs to /groups.
func (f *fineractAdapter) CreateGroup(ctx context.Context, payload models.GroupPayload) (models.CreateResult, error) {
	return f.create(ctx, "/groups", payload)
}

func (f *fineractAdapter) create(ctx context.Context, path string, body any) (models.CreateResult, error) {
	if err := f.ensureToken(ctx); err != nil {
		return models.CreateResult{}, err
	}

	var result models.CreateResult

	resp, err := f.authedRequest(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.CreateResult{}, fmt.Errorf("create request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		f.logger.Debug().Str("func", "fineractAdapter.create").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("create rejected by server")
		return models.CreateResult{}, err
	}

	return result, nil
}

func (f *fineractAdapter) ensureToken(ctx context.Context) error {
	if f.Token() != "" || f.username == "" {
		return nil
	}
	if _, err := f.Authenticate(ctx, f.username, f.password); err != nil {
		return fmt.Errorf("login before create: %w", err)
	}
	return nil
}

func (f *fineractAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := f.client.R().SetContext(ctx)
	if token := f.Token(); token != "" {
		req.SetHeader("Authorization", "Basic "+token)
	}
	return req
}
