package config

import (
	"context"
	"time"

	"github.com/autonara/smartmatch/pkg/log"
	"github.com/caarlos0/env/v11"
)

// BackendConfig selects the recommendation backend host. The base URL is
// read once at startup; there is no runtime switching.
type BackendConfig struct {
	BaseURL            string        `env:"API_BASE_URL" envDefault:"http://localhost:8000"`
	HealthPollInterval time.Duration `env:"HEALTH_POLL_INTERVAL" envDefault:"30s"`
}

func NewBackendConfig(ctx context.Context) *BackendConfig {
	c := &BackendConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Backend config")
	}
	return c
}

func (c BackendConfig) GetBaseURL() string {
	return c.BaseURL
}

func (c BackendConfig) GetHealthPollInterval() time.Duration {
	return c.HealthPollInterval
}
