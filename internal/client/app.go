// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/workers"
)

type App struct {
	auth    Authenticator
	loaders []Loader
	workers *workers.Workers
	ui      UI
	closer  func()

	cfg    *config.ClientConfig
	logger *logger.Logger
}

// AppDeps are the parts an App runs.
type AppDeps struct {
	Auth    Authenticator
	Loaders []Loader
	Workers *workers.Workers
	UI      UI
	// Closer runs after the UI exits and the workers stopped.
	Closer func()
}

func NewApp(deps AppDeps, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if deps.UI == nil {
		return nil, fmt.Errorf("client app: ui is required")
	}
	if deps.Workers == nil {
		deps.Workers = workers.NewWorkers()
	}

	return &App{
		auth:    deps.Auth,
		loaders: deps.Loaders,
		workers: deps.Workers,
		ui:      deps.UI,
		closer:  deps.Closer,
		cfg:     cfg,
		logger:  log.WithComponent("app"),
	}, nil
}

// Run logs in when credentials are configured, loads every queue, starts the
// workers and hands control to the UI. SIGINT and SIGTERM end the run.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if a.closer != nil {
		defer a.closer()
	}

	a.authenticate(ctx)

	// a queue that fails to load shows its error state; r in the UI retries
	for _, l := range a.loaders {
		if err := l.Load(ctx); err != nil {
			a.logger.Err(err).Str("func", "App.run").Msg("failed to load queue")
		}
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	a.logger.Info().Str("mode", string(a.cfg.App.Mode)).Msg("client started")
	return a.ui.Run(ctx)
}

// authenticate only warns on failure: queued work stays local and the
// adapter logs in again before the next create.
func (a *App) authenticate(ctx context.Context) {
	if a.auth == nil || a.cfg.Adapter.Username == "" {
		return
	}

	if _, err := a.auth.Authenticate(ctx, a.cfg.Adapter.Username, a.cfg.Adapter.Password); err != nil {
		a.logger.Warn().Err(err).Str("func", "App.authenticate").Msg("login failed, continuing without token")
	}
}
