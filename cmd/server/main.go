// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pay-trial/internal/config"
	"github.com/MKhiriev/go-pay-trial/internal/handler"
	"github.com/MKhiriev/go-pay-trial/internal/logger"
	"github.com/MKhiriev/go-pay-trial/internal/notify"
	"github.com/MKhiriev/go-pay-trial/internal/server"
	"github.com/MKhiriev/go-pay-trial/internal/service"
	"github.com/MKhiriev/go-pay-trial/internal/session"
	"github.com/MKhiriev/go-pay-trial/internal/store"
	"github.com/MKhiriev/go-pay-trial/internal/utils"
	"github.com/MKhiriev/go-pay-trial/internal/workers"
	"github.com/MKhiriev/go-pay-trial/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pay-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Str("storage", cfg.Storage.Driver).Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	clock := utils.NewSystemClock()
	ids := utils.NewUUIDGenerator()

	seed, err := session.LoadSeedAccounts(cfg.App.SeedAccountsPath, ids, clock.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("error loading seed accounts")
	}

	feed := notify.NewFeed(notify.DefaultFeedSize)
	notifier := notify.NewFanout(log, notify.NewLogNotifier(log), feed)

	manager := session.NewManager(storages, notifier, ids, clock, log, seed...)
	manager.Initialize(ctx)
	manager.Subscribe(func(account *models.Account) {
		if account == nil {
			log.Info().Msg("session ended")
			return
		}
		log.Info().Str("account_id", account.ID).Bool("trial_active", account.TrialActive).Msg("session changed")
	})

	services, err := service.NewServices(manager, notifier, clock, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, manager, feed, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(log,
		workers.NewTrialWatcher(manager, notifier, clock, cfg.Workers.TrialWatchInterval, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
