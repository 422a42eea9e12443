package cmd

import (
	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// checkCmd validates the roster file (fails on violations).
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the roster file (fails on violations)",
	Long: `Decode the roster leniently and report grades outside 0-100 and non-positive weights.

Exits with a non-zero status when violations are found, which makes it usable
as a CI gate for hand-edited rosters. With --repair, grades are clamped into
range, bad weights are reset to 1.0 and the roster is saved.

Examples:
  gradebook check
  gradebook check --output json
  gradebook check --repair`,
	Args:    cobra.NoArgs,
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cmd.OutOrStdout(), cfg, viper.GetBool("repair")); err != nil {
			contract.LogFatal("Roster check failed", err)
		}
	},
}
