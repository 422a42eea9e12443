package contract

import (
	"fmt"
	"strings"

	"github.com/huangsam/gradebook/schema"
)

// Default values for configuration.
const (
	DefaultRosterFile = "grades.csv"
	DefaultPrecision  = 2
	MaxPrecision      = 4
)

// SnapshotFormatVersion is stored next to every snapshot so older encodings can be told apart.
const SnapshotFormatVersion = 1

// DateTimeFormat is the default date time representation.
const DateTimeFormat = "2006-01-02 15:04:05"

// Config holds the runtime configuration for a gradebook command.
// This struct is the "final, validated" config.
type Config struct {
	RosterFile string
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	Strict     bool
	UseColors  bool

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	File              string `mapstructure:"file"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Precision         int    `mapstructure:"precision"`
	Width             int    `mapstructure:"width"`
	Strict            bool   `mapstructure:"strict"`
	Color             string `mapstructure:"color"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
	HistoryBackend    string `mapstructure:"history-backend"`
	HistoryDBConnect  string `mapstructure:"history-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutput(cfg, input); err != nil {
		return err
	}
	return validateBackendConfigs(cfg, input)
}

// validateSimpleInputs transfers and checks the fields that need no cross-validation.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.RosterFile = strings.TrimSpace(input.File)
	if cfg.RosterFile == "" {
		cfg.RosterFile = DefaultRosterFile
	}
	cfg.Strict = input.Strict

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	if input.Precision < 0 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 0 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	colors := true
	if input.Color != "" {
		var err error
		colors, err = ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
	}
	cfg.UseColors = colors
	return nil
}

// validateOutput checks the output format and that binary formats are not sent to a terminal.
func validateOutput(cfg *Config, input *ConfigRawInput) error {
	output := input.Output
	if output == "" {
		output = string(schema.TextOut)
	}
	cfg.Output = schema.OutputMode(strings.ToLower(output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	if _, binary := schema.BinaryOutputModes[cfg.Output]; binary && cfg.OutputFile == "" {
		return fmt.Errorf("%s output requires --output-file", cfg.Output)
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of connection strings
// for the networked backends. flagName is used in error messages.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr, flagName string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flagName, backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flagName, backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	case schema.RedisBackend:
		if connStr == "" {
			return fmt.Errorf("%s is required when using %s backend", flagName, backend)
		}
		if !strings.HasPrefix(connStr, "redis://") && !strings.HasPrefix(connStr, "rediss://") {
			return fmt.Errorf("Redis connection string must be a redis:// or rediss:// URL")
		}
	}
	return nil
}

// validateBackendConfigs validates snapshot and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Snapshot Backend Validation ---
	cfg.SnapshotBackend = parseBackend(input.SnapshotBackend)
	if _, ok := schema.ValidSnapshotBackends[cfg.SnapshotBackend]; !ok {
		return fmt.Errorf("invalid snapshot backend '%s'. must be sqlite, mysql, postgresql, redis, none", input.SnapshotBackend)
	}
	cfg.SnapshotDBConnect = input.SnapshotDBConnect
	if err := ValidateDatabaseConnectionString(cfg.SnapshotBackend, cfg.SnapshotDBConnect, "snapshot-db-connect"); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = parseBackend(input.HistoryBackend)
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect, "history-db-connect"); err != nil {
		return err
	}

	// Both stores create their own tables, so two SQLite stores must not share a file.
	if cfg.SnapshotBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		snapshotPath := cfg.SnapshotDBConnect
		if snapshotPath == "" {
			snapshotPath = GetSnapshotDBFilePath()
		}
		historyPath := cfg.HistoryDBConnect
		if historyPath == "" {
			historyPath = GetHistoryDBFilePath()
		}
		if snapshotPath == historyPath && snapshotPath != ":memory:" {
			return fmt.Errorf("snapshot and history storage must use different SQLite database files. Both resolve to %q", snapshotPath)
		}
	}
	return nil
}

// parseBackend normalizes a backend name; empty means the SQLite default.
func parseBackend(s string) schema.DatabaseBackend {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return schema.SQLiteBackend
	}
	return schema.DatabaseBackend(s)
}
