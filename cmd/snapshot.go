package cmd

import (
	"fmt"

	"github.com/huangsam/gradebook/core"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/iostore"
	"github.com/huangsam/gradebook/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot store operations.
// This is used by commands that need snapshot access without the roster config.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := backendFromViper("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")
	if _, ok := schema.ValidSnapshotBackends[backend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'", backend)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr, "snapshot-db-connect"); err != nil {
		return err
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	return nil
}

// snapshotSetupWrapper wraps snapshotSetup and opens the snapshot store only.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	if err := snapshotSetup(); err != nil {
		return err
	}
	if err := iostore.InitStores(cfg.SnapshotBackend, cfg.SnapshotDBConnect, "", ""); err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}
	return nil
}

// snapshotRosterSetupWrapper validates the full config and opens the snapshot store only.
func snapshotRosterSetupWrapper(_ *cobra.Command, _ []string) error {
	if err := rosterSetup(); err != nil {
		return err
	}
	if err := iostore.InitStores(cfg.SnapshotBackend, cfg.SnapshotDBConnect, "", ""); err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}
	return nil
}

// snapshotCmd focused on roster snapshots.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save and restore labeled copies of the roster",
	Long: `Store the encoded roster under a label and restore it later.

Supported backends: SQLite (default), MySQL, PostgreSQL, Redis, or None (disabled)

Subcommands:
  save   - Store the current roster under a label
  load   - Overwrite the roster file with a stored snapshot
  status - Show snapshot statistics and connection info
  clear  - Remove all snapshots

Examples:
  # Keep the end-of-term roster in Redis
  GRADEBOOK_SNAPSHOT_BACKEND=redis GRADEBOOK_SNAPSHOT_DB_CONNECT=redis://localhost:6379/0 gradebook snapshot save term1

  # Roll back to it
  gradebook snapshot load term1`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:     "save <label>",
	Short:   "Store the current roster under a label",
	Args:    cobra.ExactArgs(1),
	PreRunE: snapshotRosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteSnapshotSave(rootCtx, cmd.OutOrStdout(), cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot save snapshot", err)
		}
	},
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <label>",
	Short: "Overwrite the roster file with a stored snapshot",
	Long: `Restore a labeled snapshot into the roster file.

WARNING: The current roster file is replaced. Save a snapshot of it first if needed.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: snapshotRosterSetupWrapper,
	Run: func(cmd *cobra.Command, args []string) {
		if err := core.ExecuteSnapshotLoad(rootCtx, cmd.OutOrStdout(), cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Cannot load snapshot", err)
		}
	},
}

var snapshotStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Display snapshot statistics and connection details",
	Args:    cobra.NoArgs,
	PreRunE: snapshotSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		store := iostore.Manager.GetSnapshotStore()
		if store == nil {
			contract.LogFatal("Failed to get snapshot status", core.ErrSnapshotsDisabled)
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		iostore.PrintSnapshotStatus(cmd.OutOrStdout(), status)
	},
}

var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored snapshots",
	Long: `Delete every snapshot from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the snapshot table
For Redis: Deletes the snapshot keys

WARNING: This action cannot be undone.`,
	Args:    cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error { return snapshotSetup() },
	Run: func(cmd *cobra.Command, _ []string) {
		dbFilePath := sqliteFilePath(cfg.SnapshotDBConnect, contract.GetSnapshotDBFilePath())
		if err := iostore.ClearSnapshots(cfg.SnapshotBackend, dbFilePath, cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshots", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Snapshots cleared successfully.")
	},
}

// sqliteFilePath returns connStr when it names a file, or the default path otherwise.
func sqliteFilePath(connStr, defaultPath string) string {
	if connStr == "" {
		return defaultPath
	}
	return connStr
}
