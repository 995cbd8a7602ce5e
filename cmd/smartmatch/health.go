package main

import (
	"fmt"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/autonara/smartmatch/internal/providers/backend"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the recommendation backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		backendCfg := config.NewBackendConfig(ctx)
		client := backend.NewClient(ctx, backendCfg)

		status, err := client.Health(ctx)
		if err != nil {
			return fmt.Errorf("backend at %s is unavailable: %w", backendCfg.GetBaseURL(), err)
		}

		fmt.Printf("status: %s\n", status.Status)
		if status.Env != "" {
			fmt.Printf("env:    %s\n", status.Env)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
