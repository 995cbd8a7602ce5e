package main

import (
	"fmt"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored session",
	Long:  `Removes the persisted chat transcript and the last recommendation response.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		db, repo, err := initStorage(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := repo.Reset(ctx); err != nil {
			return err
		}

		fmt.Println("Session cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
