package cmd

import (
	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/spf13/cobra"
)

// studentCmd groups the student roster operations.
var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Add, remove, list and inspect students",
	Long: `Manage the students of the roster file.

Student names are matched case-insensitively and keep their original spelling.
A student is written to the roster once they have at least one grade.

Subcommands:
  add    - Validate a new student name
  remove - Delete a student and all their grades
  list   - List students with their number of graded subjects
  show   - Show per-subject grades, averages and weights

Examples:
  # Show one student
  gradebook student show "Bob, Jr."

  # List students as JSON
  gradebook student list --output json`,
}

var studentAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Validate a new student name",
	Long: `Validate a student name against the roster.

Only students with at least one grade are written to the roster file, so this
command does not change it. Use 'grade add' to create and store the student.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteStudentAdd(rootCtx, cmd.OutOrStdout(), cfg, args[0]); err != nil {
			contract.LogFatal("Cannot add student", err)
		}
	},
}

var studentRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Short:   "Delete a student and all their grades",
	Args:    cobra.ExactArgs(1),
	PreRunE: rosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteStudentRemove(rootCtx, cmd.OutOrStdout(), cfg, args[0]); err != nil {
			contract.LogFatal("Cannot remove student", err)
		}
	},
}

var studentListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List students with their number of graded subjects",
	Args:    cobra.NoArgs,
	PreRunE: rosterSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStudentList(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list students", err)
		}
	},
}

var studentShowCmd = &cobra.Command{
	Use:     "show <name>",
	Short:   "Show per-subject grades, averages and weights",
	Args:    cobra.ExactArgs(1),
	PreRunE: rosterSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteStudentShow(rootCtx, cfg, args[0]); err != nil {
			contract.LogFatal("Cannot show student", err)
		}
	},
}
