// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing background workers of
// the client. It defines the Worker interface and a Workers aggregate that
// starts and stops several workers together.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: long-running work goes into goroutines owned by the
// worker. Stop blocks until that work has finished.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
