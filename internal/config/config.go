// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: online/offline mode and the
	// locale and date format stamped on staged payloads.
	App App `envPrefix:"APP_"`

	// Adapter holds the Fineract server endpoint, tenant, credentials and
	// outbound request limits.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local payload database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background sync job.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the optional Prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour settings.
type App struct {
	// Mode is either "online" (create directly on the server) or "offline"
	// (stage payloads locally and sync later).
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// Locale is sent with every create command (e.g. "en").
	// Env: APP_LOCALE
	Locale string `env:"LOCALE"`

	// DateFormat is the Fineract date pattern matching the date strings in
	// staged payloads (e.g. "dd MMMM yyyy").
	// Env: APP_DATE_FORMAT
	DateFormat string `env:"DATE_FORMAT"`

	// LogFile is where the client writes its JSON log. Empty means a "logs"
	// file next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings for the Fineract REST adapter.
type Adapter struct {
	// HTTPAddress is the Fineract API base URL,
	// e.g. "https://demo.mifos.io/fineract-provider/api/v1".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Tenant is sent in the Fineract-Platform-TenantId header.
	// Env: ADAPTER_TENANT
	Tenant string `env:"TENANT"`

	// Username and Password are exchanged for an authentication key on
	// startup when running online.
	// Env: ADAPTER_USERNAME, ADAPTER_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of requests per second sent to the
	// server. Zero disables throttling.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size used together with RateLimit.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local payload database.
type DB struct {
	// DSN is either a SQLite file path (default) or a PostgreSQL URL
	// ("postgres://..." / "postgresql://...").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is how often the background job replays pending
	// payloads. Zero disables the job; sync is then manual only.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Metrics holds the optional Prometheus endpoint settings.
type Metrics struct {
	// Address is the host:port the metrics server listens on. Empty
	// disables the server.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// defaults returns the built-in configuration merged underneath all other
// sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:       "offline",
			Locale:     "en",
			DateFormat: "dd MMMM yyyy",
		},
		Adapter: Adapter{
			Tenant:         "default",
			RequestTimeout: 30 * time.Second,
			RateLimit:      5,
			RateBurst:      1,
		},
		Storage: Storage{
			DB: DB{DSN: "fineract-offline.db"},
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
