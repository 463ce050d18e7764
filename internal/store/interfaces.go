// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PayloadRepository is the low-level local store for one kind of staged
// payload. Rows are returned in insertion (id) order.
type PayloadRepository[P any] interface {
	// GetAll returns every staged payload, oldest first.
	GetAll(ctx context.Context) ([]P, error)
	// Get returns the payload with the given local id or
	// [ErrPayloadNotFound].
	Get(ctx context.Context, id int64) (P, error)
	// Save inserts a new payload. The returned copy carries the assigned id
	// and a creation timestamp (set to now if it was zero).
	Save(ctx context.Context, payload P) (P, error)
	// Update overwrites the stored row identified by the payload's local id.
	Update(ctx context.Context, payload P) error
	// Delete removes the row matching both id and creation time.
	Delete(ctx context.Context, id int64, createdAt time.Time) error
}

// Snapshot is one emission of a [WatchableRepository] stream.
type Snapshot[P any] struct {
	Payloads []P
	// Err is set when the store could not be read after a mutation.
	Err error
}

// WatchableRepository is a [PayloadRepository] that also exposes a reactive
// "all payloads" stream.
type WatchableRepository[P any] interface {
	PayloadRepository[P]
	// Watch emits the current contents immediately and again after every
	// successful mutation. Slow consumers only see the latest snapshot. The
	// channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan Snapshot[P], error)
}

// ErrorClassificator decides whether a failed database operation is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
