package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/handler"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/sandbox"
	"github.com/MKhiriev/go-visit-feedback/internal/server"
	"github.com/MKhiriev/go-visit-feedback/internal/store"
	"github.com/MKhiriev/go-visit-feedback/internal/utils"
	"github.com/MKhiriev/go-visit-feedback/internal/validators"
	"github.com/MKhiriev/go-visit-feedback/internal/workers"
	"github.com/MKhiriev/go-visit-feedback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("visit-feedback-sandbox")
	cfg, err := config.GetSandboxConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("set log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ids := utils.NewUUIDGenerator()
	storage := store.NewMemoryStorage(ids, log)

	service := sandbox.NewService(storage, validators.NewFeedbackValidator(), cfg.Links, log)

	handlers, err := handler.NewHandlers(service, ids, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewTokenSweeper(storage, cfg.Links.SweepInterval, log),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
