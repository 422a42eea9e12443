package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/schema"
	"github.com/stretchr/testify/require"
)

const sampleRosterText = `name,subject,grades,weight
Alice,Math,90;85;100,1.50
Alice,Science,70,1.00
"Bob, Jr.",History,60;75,1.00
`

// writeRoster writes content to a roster file in a temp dir and returns a config pointing at it.
func writeRoster(t *testing.T, content string) *contract.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grades.csv")
	if content != "" {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return &contract.Config{
		RosterFile:     path,
		Output:         schema.TextOut,
		Precision:      contract.DefaultPrecision,
		Width:          100,
		HistoryBackend: schema.NoneBackend,
	}
}

// readRoster returns the current roster file content.
func readRoster(t *testing.T, cfg *contract.Config) string {
	t.Helper()
	data, err := os.ReadFile(cfg.RosterFile)
	require.NoError(t, err)
	return string(data)
}
