package cmd

import (
	"fmt"
	"strconv"

	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/spf13/cobra"
)

// gradeCmd groups grade mutations.
var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Record grades",
}

var gradeAddCmd = &cobra.Command{
	Use:   "add <name> <subject> <grade>",
	Short: "Record an integer grade between 0 and 100",
	Long: `Append a grade to a student's subject and save the roster.

Unknown students and subjects are created. The grade must be an integer
between 0 and 100; anything else leaves the roster untouched.

Examples:
  gradebook grade add Alice Math 95
  gradebook --file class-b.csv grade add "Bob, Jr." History 72`,
	Args:    cobra.ExactArgs(3),
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		grade, err := strconv.Atoi(args[2])
		if err != nil {
			contract.LogFatal("Cannot add grade", fmt.Errorf("grade must be an integer: %q", args[2]))
		}
		if err := core.ExecuteGradeAdd(rootCtx, cmd.OutOrStdout(), cfg, args[0], args[1], grade); err != nil {
			contract.LogFatal("Cannot add grade", err)
		}
	},
}

// weightCmd groups subject weight mutations.
var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Set subject weights used by the weighted average",
}

var weightSetCmd = &cobra.Command{
	Use:   "set <name> <subject> <weight>",
	Short: "Set a positive subject weight",
	Long: `Set the weight of one subject for an existing student and save the roster.

Subjects without an explicit weight count as 1.0. A weight on a subject that
has no grades yet is not saved, since the roster only stores graded subjects.

Examples:
  gradebook weight set Alice Math 1.5`,
	Args:    cobra.ExactArgs(3),
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		weight, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			contract.LogFatal("Cannot set weight", fmt.Errorf("weight must be a number: %q", args[2]))
		}
		if err := core.ExecuteWeightSet(rootCtx, cmd.OutOrStdout(), cfg, args[0], args[1], weight); err != nil {
			contract.LogFatal("Cannot set weight", err)
		}
	},
}
