// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front end. Run blocks until the user quits or ctx
// is cancelled.
type UI interface {
	Run(ctx context.Context) error
}

// Authenticator logs in against the remote server.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.AuthResult, error)
}

// Loader starts a coordinator's subscription to the local store.
type Loader interface {
	Load(ctx context.Context) error
}
