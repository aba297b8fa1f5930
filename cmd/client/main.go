// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bank-client/internal/adapter"
	"github.com/MKhiriev/go-bank-client/internal/client"
	"github.com/MKhiriev/go-bank-client/internal/config"
	"github.com/MKhiriev/go-bank-client/internal/logger"
	"github.com/MKhiriev/go-bank-client/internal/service"
	"github.com/MKhiriev/go-bank-client/internal/store"
	"github.com/MKhiriev/go-bank-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("bank-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App.StorageKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	bank, err := adapter.NewHTTPBankAdapter(cfg.Adapter, storages.Tokens, log)
	if err != nil {
		_ = storages.Close()
		log.Fatal().Err(err).Msg("create bank adapter")
	}

	services := service.NewClientServices(storages, bank, cfg.Workers, log)
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	var app client.Client = client.NewApp(services, build, os.Stdin, os.Stdout, log)
	runErr := app.Run(ctx, cfg.Args)

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
