package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-app-config/internal/config"
	"github.com/MKhiriev/go-app-config/internal/handler"
	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/server"
	"github.com/MKhiriev/go-app-config/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("go-app-config", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-app-config", cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	snapshot, err := services.AppConfiguration.Load(context.Background(), cfg.Consul.Keys...)
	if err != nil {
		if errors.Is(err, service.ErrFatalConfiguration) {
			log.Fatal().Err(err).Msg("configuration could not be resolved")
		}
		log.Fatal().Err(err).Msg("error loading configuration")
	}
	log.Info().
		Str("version", snapshot.Version).
		Int("values", len(snapshot.Values)).
		Msg("configuration loaded")

	handlers, err := handler.NewHandlers(services, snapshot, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
