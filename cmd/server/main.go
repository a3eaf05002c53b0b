package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ranking-mk2/internal/config"
	"github.com/MKhiriev/ranking-mk2/internal/handler/http"
	"github.com/MKhiriev/ranking-mk2/internal/logger"
	"github.com/MKhiriev/ranking-mk2/internal/presenter"
	"github.com/MKhiriev/ranking-mk2/internal/server"
	"github.com/MKhiriev/ranking-mk2/internal/service"
	"github.com/MKhiriev/ranking-mk2/internal/store"
	"github.com/MKhiriev/ranking-mk2/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ranking-mk2-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, *cfg, log)

	cache := presenter.NewListCache(storages.RankingRepository, log)
	if err := cache.Refresh(ctx); err != nil {
		log.Err(err).Msg("initial list cache refresh failed, serving an empty list until the next refresh")
	}

	workers.NewWorkers(ctx, cache, cfg.Workers, log).Run()

	handler := http.NewHandler(services, cache, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
