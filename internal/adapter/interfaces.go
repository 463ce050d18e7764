// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the Apache Fineract REST API.
//
// The primary abstraction is [FineractAdapter], which decouples the service
// layer from the HTTP details. Error values defined in errors.go are mapped
// from HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrBadRequest] for 400, [ErrUnauthorized] for 401). The Fineract
// error body, when present, is available through [*FineractError].
package adapter

import (
	"context"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/fineract_adapter_mock.go -package=mock

// FineractAdapter performs the remote calls needed by the sync client.
type FineractAdapter interface {
	// SetToken stores the base64 basic-auth key attached to every
	// subsequent request.
	SetToken(token string)

	// Token returns the stored key, or an empty string.
	Token() string

	// Authenticate exchanges username and password for a basic-auth key.
	// On success the key is stored via SetToken.
	Authenticate(ctx context.Context, username, password string) (models.AuthResult, error)

	// CreateClient submits a create-client command.
	CreateClient(ctx context.Context, payload models.ClientPayload) (models.CreateResult, error)

	// CreateGroup submits a create-group command.
	CreateGroup(ctx context.Context, payload models.GroupPayload) (models.CreateResult, error)
}
