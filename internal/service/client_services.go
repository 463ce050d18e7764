// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/fineract-offline-sync/internal/adapter"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/metrics"
	"github.com/MKhiriev/fineract-offline-sync/internal/store"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

type ClientServices struct {
	ClientSync    SyncCoordinator[models.ClientPayload]
	GroupSync     SyncCoordinator[models.GroupPayload]
	CreateService ClientCreateService
	SyncJob       ClientSyncJob
}

func NewClientServices(
	mode models.Mode,
	defaults CreateDefaults,
	storages *store.ClientStorages,
	fineract adapter.FineractAdapter,
	recorder metrics.Recorder,
	log *logger.Logger,
) *ClientServices {
	clientSync := NewCoordinator(models.EntityClient, storages.Clients, fineract.CreateClient, recorder, log)
	groupSync := NewCoordinator(models.EntityGroup, storages.Groups, fineract.CreateGroup, recorder, log)

	return &ClientServices{
		ClientSync:    clientSync,
		GroupSync:     groupSync,
		CreateService: NewClientCreateService(mode, defaults, storages, fineract, log),
		SyncJob:       NewClientSyncJob(log, clientSync, groupSync),
	}
}

// Close ends the store subscriptions of both coordinators and stops the job.
func (s *ClientServices) Close() {
	s.SyncJob.Stop()
	s.ClientSync.Close()
	s.GroupSync.Close()
}
