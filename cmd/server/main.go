package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-replisync/internal/cache"
	"github.com/MKhiriev/go-replisync/internal/config"
	"github.com/MKhiriev/go-replisync/internal/handler"
	"github.com/MKhiriev/go-replisync/internal/logger"
	"github.com/MKhiriev/go-replisync/internal/server"
	"github.com/MKhiriev/go-replisync/internal/service"
	"github.com/MKhiriev/go-replisync/internal/store"
	"github.com/MKhiriev/go-replisync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("replisync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Any("cache", cfg.Cache).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cache.New(cfg.Cache), *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
