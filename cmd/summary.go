package cmd

import (
	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd reports one row per student.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize every student in the roster",
	Long: `Report overall and weighted averages, subject counts and grade range per student.

Students are ranked by weighted average and labeled with a grade band
(Excellent, Good, Pass, Fail). Each run is recorded in the history store
when history tracking is enabled.

Examples:
  # Table output
  gradebook summary

  # Spreadsheet and analytics outputs
  gradebook summary --output xlsx --output-file summary.xlsx
  gradebook summary --output parquet --output-file summary.parquet

  # Disable history tracking
  gradebook summary --history-backend none`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot summarize roster", err)
		}
	},
}
