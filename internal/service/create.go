// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fineract-offline-sync/internal/adapter"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/store"
	"github.com/MKhiriev/fineract-offline-sync/internal/utils"
	"github.com/MKhiriev/fineract-offline-sync/internal/validators"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

// CreateOutcome tells the caller where a new payload went.
type CreateOutcome struct {
	// Queued is true when the payload was staged locally.
	Queued bool
	// LocalID is set when Queued.
	LocalID int64
	// Remote is set when the payload was created on the server.
	Remote models.CreateResult
}

// CreateDefaults are applied to payloads that leave the fields empty.
type CreateDefaults struct {
	Locale     string
	DateFormat string
}

type clientCreateService struct {
	mode      models.Mode
	defaults  CreateDefaults
	clients   store.PayloadRepository[models.ClientPayload]
	groups    store.PayloadRepository[models.GroupPayload]
	adapter   adapter.FineractAdapter
	validator validators.Validator
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewClientCreateService builds a [ClientCreateService]. mode decides
// whether creations are staged (offline) or sent right away (online).
func NewClientCreateService(
	mode models.Mode,
	defaults CreateDefaults,
	storages *store.ClientStorages,
	fineract adapter.FineractAdapter,
	log *logger.Logger,
) ClientCreateService {
	return &clientCreateService{
		mode:      mode,
		defaults:  defaults,
		clients:   storages.Clients,
		groups:    storages.Groups,
		adapter:   fineract,
		validator: validators.NewPayloadValidator(),
		ids:       utils.NewUUIDGenerator(),
		logger:    log.WithComponent("create-service"),
	}
}

func (s *clientCreateService) Mode() models.Mode {
	return s.mode
}

func (s *clientCreateService) CreateClient(ctx context.Context, payload models.ClientPayload) (CreateOutcome, error) {
	payload.FirstName = strings.TrimSpace(payload.FirstName)
	payload.MiddleName = strings.TrimSpace(payload.MiddleName)
	payload.LastName = strings.TrimSpace(payload.LastName)
	payload.MobileNo = strings.TrimSpace(payload.MobileNo)
	payload.Locale, payload.DateFormat = s.applyDefaults(payload.Locale, payload.DateFormat)
	if payload.ExternalID == "" {
		payload.ExternalID = s.ids.Generate()
	}
	payload.ErrorMessage = nil

	if err := s.validator.Validate(ctx, payload); err != nil {
		return CreateOutcome{}, err
	}

	if s.mode == models.ModeOffline {
		saved, err := s.clients.Save(ctx, payload)
		if err != nil {
			return CreateOutcome{}, fmt.Errorf("%w: %w", ErrStagePayload, err)
		}
		s.logger.Info().Str("func", "clientCreateService.CreateClient").
			Int64("local_id", saved.ID).
			Msg("client staged for sync")
		return CreateOutcome{Queued: true, LocalID: saved.ID}, nil
	}

	result, err := s.adapter.CreateClient(ctx, payload)
	if err != nil {
		return CreateOutcome{}, fmt.Errorf("%w: %s: %w", ErrCreateOnServer, errorMessage(err), err)
	}
	return CreateOutcome{Remote: result}, nil
}

func (s *clientCreateService) CreateGroup(ctx context.Context, payload models.GroupPayload) (CreateOutcome, error) {
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Locale, payload.DateFormat = s.applyDefaults(payload.Locale, payload.DateFormat)
	if payload.ExternalID == "" {
		payload.ExternalID = s.ids.Generate()
	}
	payload.ErrorMessage = nil

	if err := s.validator.Validate(ctx, payload); err != nil {
		return CreateOutcome{}, err
	}

	if s.mode == models.ModeOffline {
		saved, err := s.groups.Save(ctx, payload)
		if err != nil {
			return CreateOutcome{}, fmt.Errorf("%w: %w", ErrStagePayload, err)
		}
		s.logger.Info().Str("func", "clientCreateService.CreateGroup").
			Int64("local_id", saved.ID).
			Msg("group staged for sync")
		return CreateOutcome{Queued: true, LocalID: saved.ID}, nil
	}

	result, err := s.adapter.CreateGroup(ctx, payload)
	if err != nil {
		return CreateOutcome{}, fmt.Errorf("%w: %s: %w", ErrCreateOnServer, errorMessage(err), err)
	}
	return CreateOutcome{Remote: result}, nil
}

func (s *clientCreateService) applyDefaults(locale, dateFormat string) (string, string) {
	if strings.TrimSpace(locale) == "" {
		locale = s.defaults.Locale
	}
	if strings.TrimSpace(dateFormat) == "" {
		dateFormat = s.defaults.DateFormat
	}
	return locale, dateFormat
}
