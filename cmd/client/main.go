package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/athenc-client/internal/adapter"
	"github.com/MKhiriev/athenc-client/internal/client"
	"github.com/MKhiriev/athenc-client/internal/config"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/service"
	"github.com/MKhiriev/athenc-client/internal/store"
	"github.com/MKhiriev/athenc-client/internal/tui"
	"github.com/MKhiriev/athenc-client/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("athenc-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	downloads := store.NewDownloadStore(cfg.Storage, log)
	services := service.NewClientServices(downloads, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	jobs := workers.NewWorkers(workers.NewJanitor(downloads, cfg.Workers, log))

	app, err := client.NewApp(services, ui, jobs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
