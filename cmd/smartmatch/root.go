package main

import (
	"context"
	"os"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/autonara/smartmatch/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "smartmatch",
	Short: "Smart Match — lifestyle to vehicle recommendations",
	Long:  `Smart Match describes your lifestyle to a recommendation backend and renders the persona and vehicle matches it returns.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
