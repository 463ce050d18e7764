// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fineract-offline-sync/internal/adapter"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/mock"
	"github.com/MKhiriev/fineract-offline-sync/internal/validators"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

var testDefaults = CreateDefaults{Locale: "en", DateFormat: "dd MMMM yyyy"}

func TestCreateService_OfflineStagesClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	fineract := mock.NewMockFineractAdapter(ctrl) // no calls expected

	svc := NewClientCreateService(models.ModeOffline, testDefaults, storages, fineract, logger.Nop())
	assert.Equal(t, models.ModeOffline, svc.Mode())

	out, err := svc.CreateClient(context.Background(), models.ClientPayload{
		FirstName: "  Amina ", LastName: "Okafor", OfficeID: 1,
	})
	require.NoError(t, err)
	assert.True(t, out.Queued)

	got, err := storages.Clients.Get(context.Background(), out.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "Amina", got.FirstName)
	assert.Equal(t, "en", got.Locale)
	assert.Equal(t, "dd MMMM yyyy", got.DateFormat)
	assert.Nil(t, got.ErrorMessage)

	id, err := uuid.Parse(got.ExternalID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestCreateService_OfflineKeepsGivenValues(t *testing.T) {
	storages := newTestStorages(t)
	svc := NewClientCreateService(models.ModeOffline, testDefaults, storages, nil, logger.Nop())

	out, err := svc.CreateGroup(context.Background(), models.GroupPayload{
		Name: "Market Women", OfficeID: 2, ExternalID: "ext-1", Locale: "fr", DateFormat: "dd/MM/yyyy",
		ErrorMessage: strPtr("stale"),
	})
	require.NoError(t, err)

	got, err := storages.Groups.Get(context.Background(), out.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "ext-1", got.ExternalID)
	assert.Equal(t, "fr", got.Locale)
	assert.Equal(t, "dd/MM/yyyy", got.DateFormat)
	assert.Nil(t, got.ErrorMessage)
}

func TestCreateService_EmptyGroupNameRejected(t *testing.T) {
	storages := newTestStorages(t)
	svc := NewClientCreateService(models.ModeOffline, testDefaults, storages, nil, logger.Nop())

	_, err := svc.CreateGroup(context.Background(), models.GroupPayload{Name: "   ", OfficeID: 1})
	require.ErrorIs(t, err, validators.ErrInvalidPayload)
	assert.Contains(t, validators.FieldErrors(err), "name")

	all, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateService_OnlineSendsDirectly(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	fineract := mock.NewMockFineractAdapter(ctrl)

	fineract.EXPECT().
		CreateGroup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.GroupPayload) (models.CreateResult, error) {
			assert.Equal(t, "Market Women", p.Name)
			assert.Equal(t, "en", p.Locale)
			return models.CreateResult{GroupID: 9, ResourceID: 9}, nil
		})

	svc := NewClientCreateService(models.ModeOnline, testDefaults, storages, fineract, logger.Nop())
	out, err := svc.CreateGroup(context.Background(), models.GroupPayload{Name: "Market Women", OfficeID: 1})
	require.NoError(t, err)

	assert.False(t, out.Queued)
	assert.Equal(t, int64(9), out.Remote.GroupID)

	all, err := storages.Groups.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateService_OnlineServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	fineract := mock.NewMockFineractAdapter(ctrl)

	fineract.EXPECT().
		CreateClient(gomock.Any(), gomock.Any()).
		Return(models.CreateResult{}, adapter.ErrUnauthorized)

	svc := NewClientCreateService(models.ModeOnline, testDefaults, storages, fineract, logger.Nop())
	_, err := svc.CreateClient(context.Background(), models.ClientPayload{FirstName: "A", LastName: "B", OfficeID: 1})

	require.ErrorIs(t, err, ErrCreateOnServer)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), msgUnauthorized)
}
