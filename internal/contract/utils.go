package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/gradebook/schema"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // ExcellentColor marks top marks.
	GoodColor      = color.New(color.FgCyan)              // GoodColor marks solid results.
	PassColor      = color.New(color.FgYellow)            // PassColor is standard caution, not bold.
	FailColor      = color.New(color.FgRed, color.Bold)   // FailColor represents standard danger.
)

// GetPlainLabel returns the grade band of an average as plain text.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(avg *float64) string {
	return string(schema.BandFor(avg))
}

// GetColorLabel returns a colored grade band label for console output (table).
func GetColorLabel(avg *float64) string {
	band := schema.BandFor(avg)
	switch band {
	case schema.ExcellentBand:
		return ExcellentColor.Sprint(band)
	case schema.GoodBand:
		return GoodColor.Sprint(band)
	case schema.PassBand:
		return PassColor.Sprint(band)
	case schema.FailBand:
		return FailColor.Sprint(band)
	default:
		return string(band)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gradebook_snapshots.db"
	}
	return filepath.Join(homeDir, ".gradebook_snapshots.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gradebook_history.db"
	}
	return filepath.Join(homeDir, ".gradebook_history.db")
}

// TruncateName shortens a display name to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the "..." and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
