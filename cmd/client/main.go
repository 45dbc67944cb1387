package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dkhalenko/go-pass-mirror/internal/adapter"
	"github.com/dkhalenko/go-pass-mirror/internal/config"
	"github.com/dkhalenko/go-pass-mirror/internal/crypto"
	"github.com/dkhalenko/go-pass-mirror/internal/logger"
	"github.com/dkhalenko/go-pass-mirror/internal/service"
	"github.com/dkhalenko/go-pass-mirror/internal/store"
	"github.com/dkhalenko/go-pass-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-pass-mirror")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open mirror database")
	}
	defer db.Close()

	mirror := store.NewMirrorRepository(db, log)

	catalog := adapter.NewHTTPCatalogClient(adapter.HTTPClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.RequestTimeout,
	}, log)
	catalog.SetToken(cfg.Server.SessionToken)

	scope, err := catalog.SessionScope()
	if err != nil {
		log.Fatal().Err(err).Msg("recover sync scope from session token")
	}

	keyring := crypto.NewMetadataKeyring()

	services := service.NewMirrorServices(catalog, keyring, mirror, syncMode(cfg.Sync), log)

	services.SyncJob.Start(ctx, scope, cfg.Sync.Interval)
	log.Info().
		Str("account_id", scope.AccountID.String()).
		Dur("interval", cfg.Sync.Interval).
		Str("mode", cfg.Sync.Mode).
		Msg("mirror sync job started")

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, stopping sync job")
	services.SyncJob.Stop()
}

func syncMode(cfg config.Sync) models.SyncMode {
	if cfg.Mode == "concurrent" {
		return models.Concurrent(cfg.MaxTasks, cfg.ChunkSize)
	}
	return models.Serial(cfg.ChunkSize)
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
