package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-visit-feedback/internal/adapter"
	"github.com/MKhiriev/go-visit-feedback/internal/client"
	"github.com/MKhiriev/go-visit-feedback/internal/config"
	"github.com/MKhiriev/go-visit-feedback/internal/logger"
	"github.com/MKhiriev/go-visit-feedback/internal/service"
	"github.com/MKhiriev/go-visit-feedback/internal/tui"
	"github.com/MKhiriev/go-visit-feedback/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("visit-feedback-client", cfg.App.LogFile)
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("set log level")
	}

	api, err := adapter.NewHTTPFeedbackAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create feedback api adapter")
	}

	services := service.NewServices(api, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
