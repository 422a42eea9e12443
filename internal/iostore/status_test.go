package iostore

import (
	"bytes"
	"testing"
	"time"

	"github.com/huangsam/gradebook/schema"
	"github.com/stretchr/testify/assert"
)

func TestPrintSnapshotStatus(t *testing.T) {
	t.Run("disconnected", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSnapshotStatus(&buf, schema.SnapshotStatus{Backend: "none"})
		assert.Equal(t, "Snapshot Backend: none\nConnected: false\n", buf.String())
	})

	t.Run("connected with entries", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSnapshotStatus(&buf, schema.SnapshotStatus{
			Backend:         "sqlite",
			Connected:       true,
			TotalEntries:    3,
			LastEntryTime:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			OldestEntryTime: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
			TableSizeBytes:  4096,
		})
		out := buf.String()
		assert.Contains(t, out, "Total Entries: 3")
		assert.Contains(t, out, "Last Entry: 2024-05-01 12:00:00")
		assert.Contains(t, out, "Oldest Entry: 2024-01-01 08:30:00")
		assert.Contains(t, out, "Table Size: 4096 bytes")
	})

	t.Run("connected and empty", func(t *testing.T) {
		var buf bytes.Buffer
		PrintSnapshotStatus(&buf, schema.SnapshotStatus{Backend: "redis", Connected: true})
		assert.NotContains(t, buf.String(), "Last Entry")
	})
}

func TestPrintHistoryStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintHistoryStatus(&buf, schema.HistoryStatus{
		Backend:        "sqlite",
		Connected:      true,
		TotalRuns:      2,
		LastRunID:      7,
		LastRunTime:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		OldestRunTime:  time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC),
		TotalSummaries: 5,
		TableSizes: map[string]int64{
			studentSummariesTable: 5,
			historyRunsTable:      2,
		},
	})
	out := buf.String()
	assert.Contains(t, out, "Last Run ID: 7")
	assert.Contains(t, out, "Total Student Summaries: 5")

	runsIdx := bytes.Index(buf.Bytes(), []byte(historyRunsTable))
	summariesIdx := bytes.Index(buf.Bytes(), []byte(studentSummariesTable))
	assert.Less(t, runsIdx, summariesIdx, "table sizes are sorted by name")
}
