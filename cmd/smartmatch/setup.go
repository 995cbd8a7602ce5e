package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/autonara/smartmatch/internal/providers/backend"
	"github.com/autonara/smartmatch/internal/service/advisor"
	"github.com/autonara/smartmatch/internal/service/health"
	"github.com/autonara/smartmatch/internal/storage/sqlite"
	"github.com/autonara/smartmatch/internal/transport/cli"
	"github.com/autonara/smartmatch/pkg/log"
	"github.com/autonara/smartmatch/pkg/srv"
	"github.com/joho/godotenv"
)

// NewServices wires the chat page stack. done is invoked when the page
// exits so the remaining services shut down with it.
func NewServices(ctx context.Context, done func()) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	backendCfg := config.NewBackendConfig(ctx)

	// 2. Session storage
	db, repo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Backend client + health poller
	client := backend.NewClient(ctx, backendCfg)
	poller := health.NewPoller(client, backendCfg.GetHealthPollInterval(), nil)
	services = append(services, poller)

	// 4. Page controller, seeded from the persisted session
	adv := advisor.NewAdvisor(client, repo, poller)
	adv.Restore(ctx)

	// 5. Chat page
	services = append(services, cli.NewChatPage(adv, poller, done))

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, *sqlite.SessionRepo, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewSessionRepo(db), nil
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
