// Command migrate-keys re-encrypts every device API key under the current
// encryption key. Plaintext keys and keys sealed by earlier releases are
// rewritten in place; keys that cannot be decoded are left untouched and
// counted as corrupt.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/csmblade/PANfm/internal/config"
	"github.com/csmblade/PANfm/internal/crypto"
	"github.com/csmblade/PANfm/internal/logger"
	"github.com/csmblade/PANfm/internal/service"
	"github.com/csmblade/PANfm/internal/store"
	"github.com/csmblade/PANfm/models"
)

func main() {
	var configPath string
	var legacyBase64 bool

	flag.StringVar(&configPath, "config", "", "JSON or YAML config file path")
	flag.BoolVar(&legacyBase64, "legacy-base64", false, "Also decode keys stored with the base64 obfuscation of early releases")
	flag.Parse()

	log := logger.NewLogger("panfm-migrate-keys")
	cfg, err := config.GetToolConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	codec, err := crypto.NewSecretCodecFromFile(cfg.Storage.Path(cfg.Storage.KeyFile), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading encryption key")
	}

	storages := store.NewStorages(cfg.Storage, codec, log)
	services, err := service.NewServices(storages, *cfg, models.NewAppBuildInfo("", "", ""), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	report, err := services.DeviceService.MigrateAPIKeys(context.Background(), store.MigrationOptions{LegacyBase64: legacyBase64})
	if err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))

	if report.Corrupt > 0 {
		os.Exit(1)
	}
}
