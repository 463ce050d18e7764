// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Phase describes where a coordinator is in loading its queue.
type Phase int

const (
	PhaseLoading Phase = iota
	PhasePopulated
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePopulated:
		return "populated"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncStatus is the explicit outcome of the most recent sync activity.
//
//   - SyncIdle: eligible payloads remain and nothing is running.
//   - SyncRunning: a sync run is in progress.
//   - SyncAllSynced: the queue is empty.
//   - SyncPartiallyFailed: the queue is not empty and nothing in it is
//     eligible for the automatic scan, or the last attempt failed.
type SyncStatus int

const (
	SyncIdle SyncStatus = iota
	SyncRunning
	SyncAllSynced
	SyncPartiallyFailed
)

func (s SyncStatus) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncRunning:
		return "syncing"
	case SyncAllSynced:
		return "all synced"
	case SyncPartiallyFailed:
		return "partially failed"
	default:
		return "unknown"
	}
}

// SyncState is a snapshot of a coordinator, safe to hand to the UI.
type SyncState[P any] struct {
	Phase    Phase
	Status   SyncStatus
	Payloads []P
	// Err is set when Phase is PhaseError.
	Err error
}

// SyncResult summarises a single Sync or Retry call.
type SyncResult struct {
	Attempted int
	Synced    int
	Failed    int
}

// QueueSummary is a type-independent view of a coordinator's queue.
type QueueSummary struct {
	Entity  Entity `json:"entity"`
	Phase   string `json:"phase"`
	Status  string `json:"status"`
	Queued  int    `json:"queued"`
	Failed  int    `json:"failed"`
	LastErr string `json:"last_error,omitempty"`
}
