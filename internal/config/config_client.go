// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

// ClientApp holds client behaviour settings.
type ClientApp struct {
	// Mode is injected into the create service; it is never read from a
	// process-wide singleton.
	Mode       models.Mode
	Locale     string
	DateFormat string
	LogFile    string
}

// ClientAdapter holds network settings used by the Fineract adapter.
type ClientAdapter struct {
	HTTPAddress    string
	Tenant         string
	Username       string
	Password       string
	RequestTimeout time.Duration
	RateLimit      float64
	RateBurst      int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite file path or PostgreSQL URL.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs; zero disables it.
	SyncInterval time.Duration
}

// ClientMetrics contains the optional metrics server settings.
type ClientMetrics struct {
	Address string
}

// ClientConfig is the configuration view consumed by cmd/client.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Metrics ClientMetrics
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	mode, err := models.ParseMode(cfg.App.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Mode:       mode,
			Locale:     cfg.App.Locale,
			DateFormat: cfg.App.DateFormat,
			LogFile:    cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			Tenant:         cfg.Adapter.Tenant,
			Username:       cfg.Adapter.Username,
			Password:       cfg.Adapter.Password,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Metrics: ClientMetrics{Address: cfg.Metrics.Address},
	}

	return clientCfg, clientCfg.validate()
}
