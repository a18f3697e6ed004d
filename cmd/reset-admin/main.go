// Command reset-admin rewrites the dashboard account with the default
// credentials and forces a password change on the next login.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/internal/utils"
	"github.com/csmblade/PANfm/models"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config", "", "JSON or YAML config file path")
	flag.Parse()

	log := logger.NewLogger("panfm-reset-admin")
	cfg, err := config.GetToolConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	codec, err := crypto.NewSecretCodecFromFile(cfg.Storage.Path(cfg.Storage.KeyFile), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading encryption key")
	}

	storages := store.NewStorages(cfg.Storage, codec, log)
	auth := service.NewAuthService(storages.AuthStorage, storages.SettingsStorage, cfg.App, utils.RealClock{}, log)

	if err = auth.ResetAdmin(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error resetting admin account")
	}

	fmt.Printf("Account reset to %s/%s; a password change is required on next login.\n",
		models.DefaultAdminUsername, models.DefaultAdminPassword)
}
