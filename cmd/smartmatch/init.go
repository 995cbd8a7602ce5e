package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/autonara/smartmatch/pkg/env"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .env into the runtime directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		runtimePath := config.GetRuntimePath()
		envFile := filepath.Join(runtimePath, ".env")

		if _, err := os.Stat(envFile); err == nil {
			return fmt.Errorf("%s already exists", envFile)
		}

		if err := os.MkdirAll(runtimePath, 0755); err != nil {
			return fmt.Errorf("failed to create runtime directory: %w", err)
		}

		defaults := &config.BackendConfig{
			BaseURL:            "http://localhost:8000",
			HealthPollInterval: 30 * time.Second,
		}
		content, err := env.MarshalEnv(defaults)
		if err != nil {
			return err
		}

		if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", envFile, err)
		}

		fmt.Printf("Wrote %s\n", envFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
