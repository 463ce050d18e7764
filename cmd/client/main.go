// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fineract-offline-sync/internal/adapter"
	"github.com/MKhiriev/fineract-offline-sync/internal/client"
	"github.com/MKhiriev/fineract-offline-sync/internal/config"
	handler "github.com/MKhiriev/fineract-offline-sync/internal/handler/http"
	"github.com/MKhiriev/fineract-offline-sync/internal/logger"
	"github.com/MKhiriev/fineract-offline-sync/internal/metrics"
	"github.com/MKhiriev/fineract-offline-sync/internal/server"
	"github.com/MKhiriev/fineract-offline-sync/internal/service"
	"github.com/MKhiriev/fineract-offline-sync/internal/store"
	"github.com/MKhiriev/fineract-offline-sync/internal/tui"
	"github.com/MKhiriev/fineract-offline-sync/internal/workers"
	"github.com/MKhiriev/fineract-offline-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.BuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}.WithDefaults()
	printBuildInfo(info)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("fineract-sync-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("fineract-sync-client", cfg.App.LogFile)

	fineract, err := adapter.NewFineractAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create fineract adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	var recorder metrics.Recorder = metrics.NewNoOpCollector()
	var collector *metrics.Collector
	if cfg.Metrics.Address != "" {
		collector = metrics.NewCollector("")
		recorder = collector
	}

	defaults := service.CreateDefaults{Locale: cfg.App.Locale, DateFormat: cfg.App.DateFormat}
	services := service.NewClientServices(cfg.App.Mode, defaults, storages, fineract, recorder, log)

	bg := workers.NewWorkers(workers.NewSyncJobWorker(services.SyncJob, cfg.Workers.SyncInterval))
	if collector != nil {
		h := handler.NewHandler(collector.Registry(), info, log, services.ClientSync, services.GroupSync)
		srv, err := server.NewHTTPServer(cfg.Metrics.Address, h.Init(), log)
		if err != nil {
			log.Fatal().Err(err).Msg("create metrics server")
		}
		bg.Add(workers.NewServerWorker(srv))
	}

	ui, err := tui.New(services, info, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(client.AppDeps{
		Auth:    fineract,
		Loaders: []client.Loader{services.ClientSync, services.GroupSync},
		Workers: bg,
		UI:      ui,
		Closer: func() {
			services.Close()
			if err := storages.Close(); err != nil {
				log.Err(err).Msg("close local storage")
			}
		},
	}, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
