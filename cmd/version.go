package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// versionCmd shows the verbose version for diagnostic purposes.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gradebook.",
	Long: `Display the release version, Git commit, build timestamp and Go runtime.

Include this output when reporting bugs.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		w := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(w, "gradebook CLI\n")
		_, _ = fmt.Fprintf(w, "  Version: %s\n", version)
		_, _ = fmt.Fprintf(w, "  Commit:  %s\n", commit)
		_, _ = fmt.Fprintf(w, "  Built:   %s\n", date)
		_, _ = fmt.Fprintf(w, "  Runtime: %s\n", runtime.Version())
	},
}
