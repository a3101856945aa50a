package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-review-keeper/internal/adapter"
	"github.com/MKhiriev/go-review-keeper/internal/client"
	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/handler"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/server"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/internal/store"
	"github.com/MKhiriev/go-review-keeper/internal/tui"
	"github.com/MKhiriev/go-review-keeper/internal/workers"
	"github.com/MKhiriev/go-review-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	log := logger.NewClientLogger("review-keeper-client", logFile(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	tracking, err := adapter.NewHTTPTrackingAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create tracking adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	broker := events.NewBroker()
	services := service.NewClientServices(storages, tracking, broker, cfg.Workers.PollInterval)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	var apiServer server.Server
	handlers, err := handler.NewHandlers(services, buildInfo, cfg.API, log)
	switch {
	case err == nil:
		apiServer, err = server.NewServer(handlers.HTTP.Init(), cfg.API, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create local API server")
		}
	case handler.IsNoHandlers(err):
		log.Info().Msg("local API is disabled")
	default:
		log.Fatal().Err(err).Msg("create handlers")
	}

	background := workers.NewWorkers(workers.NewTombstoneJanitor(storages.Versions, cfg.Workers))

	var runners []client.Runner
	if apiServer != nil {
		runners = append(runners, apiServer)
	}
	runners = append(runners, background)

	app, err := client.NewApp(ui, log, runners...)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}
	app.CloseWith(storages)
	app.OnClose(func() error {
		broker.Close()
		return nil
	}, func() error {
		services.Close()
		return nil
	})

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func logFile(cfg *config.ClientConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.App.LogFile
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
