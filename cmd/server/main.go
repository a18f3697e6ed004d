package main

import (
	"context"
	"fmt"
	"os"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/handler"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/server"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/internal/workers"
	"github.com/csmblade/PANfm/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// sessionKeyPurpose binds the derived session signing key to its use.
const sessionKeyPurpose = "panfm-session-sign-key"

func main() {
	printBuildInfo()

	log := logger.NewLogger("panfm-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	keyPath := cfg.Storage.Path(cfg.Storage.KeyFile)
	key, created, err := crypto.LoadOrCreateKey(keyPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", keyPath).Msg("error loading encryption key")
	}
	if created {
		log.Warn().Str("path", keyPath).Msg("generated new encryption key")
	}

	codec, err := crypto.NewSecretCodec(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret codec")
	}

	if cfg.App.SessionSignKey == "" {
		cfg.App.SessionSignKey = utils.DeriveKey(key, sessionKeyPurpose)
	}

	storages := store.NewStorages(cfg.Storage, codec, log)

	settings, err := storages.SettingsStorage.LoadSettings(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("error loading settings")
	}
	logger.SetDebug(settings.DebugLogging)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
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
