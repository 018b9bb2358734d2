package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/factbot/internal/catalog"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/service/dialog"
	"github.com/sandevgo/factbot/internal/storage/sqlite"
	"github.com/sandevgo/factbot/internal/transport/webhook"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/sandevgo/factbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	srvCfg := config.NewServerConfig(ctx)

	// 2. Fact catalog, validated before anything listens
	cat, err := catalog.Load(appCfg.GetCatalogPath())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load fact catalog")
	}

	// 3. Session storage
	db, sessions, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 4. Dialog engine
	engine := dialog.New(cat, nil)

	// 5. Fulfillment webhook
	services = append(services, webhook.NewServer(ctx, srvCfg, engine, sessions))

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.SessionRepository, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewSessionsRepo(db), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
