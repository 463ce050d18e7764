// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end: a queue screen per entity with
// sync controls, and forms that create clients and groups.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/service"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, info models.BuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: info, logger: log.WithComponent("tui")}, nil
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newRootModel(ctx, t.services.CreateService, t.buildInfo,
		newQueueTab("Clients", t.services.ClientSync),
		newQueueTab("Groups", t.services.GroupSync),
	)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program stopped with error")
		return err
	}
	return nil
}
