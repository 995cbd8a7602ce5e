package main

import (
	"os"
	"os/signal"

	"github.com/autonara/smartmatch/pkg/log"
	"github.com/autonara/smartmatch/pkg/srv"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the interactive Smart Match chat",
	Long:  `Restores the previous session and opens the chat page. Messages are sent to the recommendation backend and results are rendered inline.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting smartmatch")

		services := NewServices(ctx, stop)

		srv.StartServices(ctx, services)

		// Wait for the page to exit or for a shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("smartmatch has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
