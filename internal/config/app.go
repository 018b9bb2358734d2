package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/factbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"FACTBOT_RUNTIME_PATH" envDefault:".factbot"`

	// Optional path to a catalog file. Empty means the embedded catalog.
	CatalogPath string `env:"FACTBOT_CATALOG_PATH"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "factbot.db")
}

func (c AppConfig) GetCatalogPath() string {
	return c.CatalogPath
}
