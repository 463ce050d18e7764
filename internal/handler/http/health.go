// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/fineract-offline-sync/models"
)

type healthResponse struct {
	Status string                `json:"status"`
	Queues []models.QueueSummary `json:"queues"`
}

// health reports every queue. It answers 503 when any store could not be
// read, so a supervisor can notice a broken local database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Queues: make([]models.QueueSummary, 0, len(h.queues))}
	code := http.StatusOK

	for _, q := range h.queues {
		s := q.Summary()
		if s.Phase == models.PhaseError.String() {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
		resp.Queues = append(resp.Queues, s)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Err(err).Str("func", "Handler.health").Msg("failed to write health response")
	}
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.buildInfo.Version + " (" + h.buildInfo.Commit + ", " + h.buildInfo.Date + ")"))
}
