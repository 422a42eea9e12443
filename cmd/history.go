package cmd

import (
	"fmt"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/iostore"
	"github.com/huangsam/gradebook/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := backendFromViper("history-backend")
	connStr := viper.GetString("history-db-connect")
	if _, ok := schema.ValidHistoryBackends[backend]; !ok {
		return fmt.Errorf("invalid history backend '%s'", backend)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr, "history-db-connect"); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")
	return nil
}

// historySetupWrapper wraps historySetup and opens the history store only.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	if err := historySetup(); err != nil {
		return err
	}
	if err := iostore.InitStores("", "", cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize history: %w", err)
	}
	return nil
}

// historyCmd focused on summary run history.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by roster commands.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the history of summary runs",
	Long: `Manage the history recorded by every summary run.

When enabled, Gradebook stores:
- Run metadata (timestamp, configuration, duration)
- Every student's summary row at the time of the run

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  gradebook history status

  # Export for analysis in pandas/DuckDB
  gradebook history export --output-file history.parquet`,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all summary run history",
	Long: `Delete all stored summary runs and student summary rows.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  gradebook history export --output-file backup.parquet
  gradebook history clear`,
	Args:    cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error { return historySetup() },
	Run: func(cmd *cobra.Command, _ []string) {
		dbFilePath := sqliteFilePath(cfg.HistoryDBConnect, contract.GetHistoryDBFilePath())
		if err := iostore.ClearHistory(cfg.HistoryBackend, dbFilePath, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared successfully.")
	},
}

var historyStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display history tracking statistics and connection details",
	Args:    cobra.NoArgs,
	PreRunE: historySetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		store := iostore.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", fmt.Errorf("history store is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iostore.PrintHistoryStatus(cmd.OutOrStdout(), status)
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export summary history to Parquet for BI tools and analytics",
	Long: `Export all stored history to Parquet format.

Exports two datasets next to --output-file:
- Summary runs - metadata about each run
- Student summaries - every recorded summary row

Requires: --output-file parameter

Examples:
  gradebook history export --output-file history.parquet
  duckdb -c "SELECT * FROM read_parquet('history.parquet.history_runs.parquet') LIMIT 10"`,
	Args:    cobra.NoArgs,
	PreRunE: historySetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := iostore.ExecuteHistoryExport(cmd.OutOrStdout(), iostore.Manager.GetHistoryStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the history store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gradebook history migrate

  # Rollback to the initial state
  gradebook history migrate --target-version 0`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		if err := historySetup(); err != nil {
			return err
		}
		// For SQLite backend with empty connection string, use default path
		if cfg.HistoryBackend == schema.SQLiteBackend && cfg.HistoryDBConnect == "" {
			cfg.HistoryDBConnect = contract.GetHistoryDBFilePath()
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateHistory(cmd.OutOrStdout(), cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
