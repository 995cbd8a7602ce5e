package config

import (
	"context"
	"path/filepath"

	"github.com/autonara/smartmatch/pkg/log"
	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"SMARTMATCH_RUNTIME_PATH" envDefault:".smartmatch"`
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
	return filepath.Join(c.RuntimePath, "smartmatch.db")
}
