package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-replisync/internal/adapter"
	"github.com/MKhiriev/go-replisync/internal/client"
	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/service"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/internal/workers"
	"github.com/MKhiriev/go-replisync/models"
)

const logFile = "replisync-client.log"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("replisync-client", logFile)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	services := service.NewClientServices(localStorage, serverAdapter, cfg.Sync, log)

	app, err := client.NewApp(services, workers.NewWorkers(services, cfg.Workers, log), os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}
