// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client's business logic: the per-entity sync
// coordinators that replay staged payloads against Fineract, the create
// service that decides between staging and sending, and the background
// sync job.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

// SyncCoordinator drives the offline queue of one entity type.
type SyncCoordinator[P models.Pending[P]] interface {
	// Load subscribes to the local store. Every emission replaces the
	// in-memory list and recomputes the state. Calling Load again replaces
	// the previous subscription.
	Load(ctx context.Context) error

	// Sync replays pending payloads in list order, starting from the first
	// one without an error. A successful create deletes the row and moves on;
	// a failed one is annotated with the error and ends the run.
	Sync(ctx context.Context) (models.SyncResult, error)

	// Retry sends one payload regardless of its error state.
	Retry(ctx context.Context, id int64) error

	// ClearError makes a failed payload eligible for Sync again.
	ClearError(ctx context.Context, id int64) error

	// Discard removes a payload from the queue without sending it.
	Discard(ctx context.Context, id int64) error

	// State returns a copy of the current state.
	State() models.SyncState[P]

	// States delivers state changes. Only the most recent unread state is
	// kept.
	States() <-chan models.SyncState[P]

	// Summary condenses the state for health reporting.
	Summary() models.QueueSummary

	Entity() models.Entity

	// Close ends the store subscription.
	Close()
}

// Syncer is the part of a coordinator the background job needs.
type Syncer interface {
	Entity() models.Entity
	Sync(ctx context.Context) (models.SyncResult, error)
}

// ClientCreateService accepts new create requests from the UI.
type ClientCreateService interface {
	// CreateClient validates payload and either stages it locally (offline
	// mode) or sends it to the server (online mode). Queued reports which
	// of the two happened.
	CreateClient(ctx context.Context, payload models.ClientPayload) (result CreateOutcome, err error)

	// CreateGroup is the group counterpart of CreateClient.
	CreateGroup(ctx context.Context, payload models.GroupPayload) (result CreateOutcome, err error)

	// Mode returns the mode the service was built with.
	Mode() models.Mode
}

// ClientSyncJob runs Sync for every coordinator on a ticker.
type ClientSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
