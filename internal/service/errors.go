// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrSyncInProgress is returned by Sync and Retry while another run of
	// the same coordinator has not finished.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrReadingQueue wraps local store failures seen while syncing.
	ErrReadingQueue = errors.New("failed to read local queue")

	// ErrWritingQueue wraps local store failures while recording the
	// outcome of a remote call.
	ErrWritingQueue = errors.New("failed to update local queue")

	ErrCreateOnServer = errors.New("failed to create on server")
	ErrStagePayload   = errors.New("failed to stage payload")
)
