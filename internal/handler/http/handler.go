// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// QueueReporter is implemented by the sync coordinators.
type QueueReporter interface {
	Summary() models.QueueSummary
}

type Handler struct {
	gatherer  prometheus.Gatherer
	queues    []QueueReporter
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func NewHandler(gatherer prometheus.Gatherer, buildInfo models.BuildInfo, logger *logger.Logger, queues ...QueueReporter) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		gatherer:  gatherer,
		queues:    queues,
		buildInfo: buildInfo.WithDefaults(),
		logger:    logger,
	}
}
