package main

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/aognev/go-notes-api/internal/adapter"
	"github.com/aognev/go-notes-api/internal/config"
	httphandler "github.com/aognev/go-notes-api/internal/handler/http"
	"github.com/aognev/go-notes-api/internal/logger"
	"github.com/aognev/go-notes-api/internal/server"
	"github.com/aognev/go-notes-api/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is a local development convenience; in production the
	// environment is expected to be set by the platform.
	_ = godotenv.Load()

	log := logger.NewLogger("notes-api")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("environment", cfg.Environment).Str("address", cfg.Server.Address).Msg("received configs")

	boundaries, err := adapter.NewBoundaries(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating provider adapters")
	}

	services := service.NewServices(boundaries, *cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(cfg.CORSOrigins()), cfg.Server, log)
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
