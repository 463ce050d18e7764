// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/fineract-offline-sync/models"

// FirstPending returns the first payload in list order that has not failed.
func FirstPending[P models.Pending[P]](payloads []P) (P, bool) {
	for _, p := range payloads {
		if !p.Failed() {
			return p, true
		}
	}

	var zero P
	return zero, false
}

// syncStatus derives the queue status shown when no run is active.
func syncStatus[P models.Pending[P]](payloads []P, lastRunFailed bool) models.SyncStatus {
	if len(payloads) == 0 {
		return models.SyncAllSynced
	}
	if _, ok := FirstPending(payloads); !ok || lastRunFailed {
		return models.SyncPartiallyFailed
	}
	return models.SyncIdle
}
