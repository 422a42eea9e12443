package cmd

import (
	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/spf13/cobra"
)

// importCmd merges other roster files into the roster.
var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Merge roster CSV files into the roster file",
	Long: `Decode one or more roster CSV files and merge them into the roster file.

Rows for an existing student and subject append their grades. Malformed rows
and grade tokens are skipped and counted; a warning summarizes what was lost.

Examples:
  gradebook import term1.csv term2.csv
  gradebook --file all.csv import class-a.csv class-b.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteImport(rootCtx, cmd.OutOrStdout(), cfg, args); err != nil {
			contract.LogFatal("Cannot import rosters", err)
		}
	},
}

// exportCmd writes the roster in its canonical encoding to another file.
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the roster in canonical form to another CSV file",
	Long: `Encode the roster into a new CSV file.

The export is the canonical form: one row per graded subject, weights with
two decimals, names quoted when needed.

Examples:
  gradebook export backup.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteExport(rootCtx, cmd.OutOrStdout(), cfg, args[0]); err != nil {
			contract.LogFatal("Cannot export roster", err)
		}
	},
}
