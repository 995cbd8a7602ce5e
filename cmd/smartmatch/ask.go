package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/autonara/smartmatch/internal/config"
	"github.com/autonara/smartmatch/internal/providers/backend"
	"github.com/autonara/smartmatch/internal/render"
	"github.com/autonara/smartmatch/internal/service/advisor"
	"github.com/autonara/smartmatch/pkg/log"
	"github.com/spf13/cobra"
)

var askJSON bool

// staticHealth freezes the result of a single probe; the one-shot command
// has no poller running.
type staticHealth bool

func (s staticHealth) Healthy() bool { return bool(s) }

var askCmd = &cobra.Command{
	Use:   "ask [description]",
	Short: "One-shot recommendation from a lifestyle description",
	Long:  `Sends a single lifestyle description (appended to the stored session) and renders the persona and vehicle matches.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()
		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg := config.NewAppConfig(ctx)
		backendCfg := config.NewBackendConfig(ctx)

		db, repo, err := initStorage(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		client := backend.NewClient(ctx, backendCfg)

		status, err := client.Health(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("health check failed")
		}
		healthy := err == nil && status.OK()

		adv := advisor.NewAdvisor(client, repo, staticHealth(healthy))
		adv.Restore(ctx)

		reply := adv.Ask(ctx, strings.Join(args, " "))
		snap := adv.Snapshot()

		if askJSON {
			if snap.Response == nil {
				return fmt.Errorf("no recommendation available: %s", reply)
			}
			out, err := json.MarshalIndent(snap.Response, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(reply)

		if snap.State != advisor.StateSuccess || snap.Response == nil {
			return nil
		}

		fmt.Println()
		fmt.Println(render.PersonaBanner(snap.Response.Persona))
		for _, m := range snap.Response.Matches {
			fmt.Println(render.VehicleCard(m))
		}
		if table := render.ComparisonTable(snap.Response.Matches); table != "" {
			fmt.Println(table)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "print the raw recommendation response")
	rootCmd.AddCommand(askCmd)
}
