//go:build basic

package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGradebookWorkflow drives the CLI through a full term with the default SQLite stores.
func TestGradebookWorkflow(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"grade", "add", "Alice", "Math", "90"},
		{"grade", "add", "alice", "Math", "80"},
		{"grade", "add", "Alice", "Art", "70"},
		{"weight", "set", "Alice", "Math", "2"},
		{"grade", "add", "Bob, Jr.", "History", "60"},
	} {
		res := runGradebook(t, dir, nil, args...)
		require.NoError(t, res.Err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "grades.csv"))
	require.NoError(t, err)
	assert.Equal(t, "name,subject,grades,weight\n"+
		"Alice,Math,90;80,2.00\n"+
		"Alice,Art,70,1.00\n"+
		"\"Bob, Jr.\",History,60,1.00\n", string(data))

	t.Run("student show", func(t *testing.T) {
		res := runGradebook(t, dir, nil, "student", "show", "ALICE")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Student: Alice")
		assert.Contains(t, res.Stdout, "Weighted average: 80.00")
	})

	t.Run("summary json", func(t *testing.T) {
		res := runGradebook(t, dir, nil, "summary", "--output", "json")
		require.NoError(t, res.Err)
		var rows []map[string]any
		require.NoError(t, json.Unmarshal([]byte(res.Stdout), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Alice", rows[0]["name"])
		assert.Equal(t, "Good", rows[0]["band"])
		assert.InDelta(t, 80.0, rows[0]["weighted_avg"], 1e-9)
		assert.Equal(t, "Pass", rows[1]["band"])
	})

	t.Run("history records summary runs", func(t *testing.T) {
		res := runGradebook(t, dir, nil, "history", "status")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Total Runs: 1")
		assert.Contains(t, res.Stdout, "Total Student Summaries: 2")

		res = runGradebook(t, dir, nil, "history", "export", "--output-file", filepath.Join(dir, "history"))
		require.NoError(t, res.Err)
		assert.FileExists(t, filepath.Join(dir, "history.history_runs.parquet"))
		assert.FileExists(t, filepath.Join(dir, "history.student_summaries.parquet"))
	})

	t.Run("xlsx needs output file", func(t *testing.T) {
		res := runGradebook(t, dir, nil, "summary", "--output", "xlsx")
		require.Error(t, res.Err)
		assert.Contains(t, res.Stderr, "xlsx output requires --output-file")

		out := filepath.Join(dir, "summary.xlsx")
		res = runGradebook(t, dir, nil, "summary", "--output", "xlsx", "--output-file", out, "--history-backend", "none")
		require.NoError(t, res.Err)
		assert.FileExists(t, out)
	})

	t.Run("snapshot save and load", func(t *testing.T) {
		res := runGradebook(t, dir, nil, "snapshot", "save", "midterm")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Saved snapshot midterm with 2 students")

		res = runGradebook(t, dir, nil, "grade", "add", "Carol", "Math", "100")
		require.NoError(t, res.Err)

		res = runGradebook(t, dir, nil, "snapshot", "load", "midterm")
		require.NoError(t, res.Err)

		res = runGradebook(t, dir, nil, "student", "list", "--output", "csv")
		require.NoError(t, res.Err)
		assert.Equal(t, "name,subjects_count\nAlice,2\n\"Bob, Jr.\",1\n", res.Stdout)

		res = runGradebook(t, dir, nil, "snapshot", "status")
		require.NoError(t, res.Err)
		assert.Contains(t, res.Stdout, "Total Entries: 1")
	})

	t.Run("export and import", func(t *testing.T) {
		exported := filepath.Join(dir, "backup.csv")
		res := runGradebook(t, dir, nil, "export", exported)
		require.NoError(t, res.Err)

		other := filepath.Join(dir, "other.csv")
		res = runGradebook(t, dir, nil, "--file", other, "import", exported)
		require.NoError(t, res.Err)

		got, err := os.ReadFile(other)
		require.NoError(t, err)
		assert.Equal(t, string(data), string(got))
	})

	t.Run("invalid mutations fail", func(t *testing.T) {
		assert.Error(t, runGradebook(t, dir, nil, "grade", "add", "Alice", "Math", "101").Err)
		assert.Error(t, runGradebook(t, dir, nil, "grade", "add", "Alice", "Math", "ninety").Err)
		assert.Error(t, runGradebook(t, dir, nil, "weight", "set", "Alice", "Math", "0").Err)
		assert.Error(t, runGradebook(t, dir, nil, "student", "remove", "Nobody").Err)
	})
}

// TestGradebookCheck exercises the validation gate on a hand-edited roster.
func TestGradebookCheck(t *testing.T) {
	dir := t.TempDir()
	roster := filepath.Join(dir, "grades.csv")
	require.NoError(t, os.WriteFile(roster, []byte("name,subject,grades,weight\nAlice,Math,120;-5;80,1.00\n"), 0o644))

	res := runGradebook(t, dir, nil, "check")
	require.Error(t, res.Err)
	assert.Contains(t, res.Stdout, "Found 2 violations")

	res = runGradebook(t, dir, nil, "--strict", "summary", "--history-backend", "none")
	require.Error(t, res.Err)

	res = runGradebook(t, dir, nil, "check", "--repair")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Repaired 2 values")

	data, err := os.ReadFile(roster)
	require.NoError(t, err)
	assert.Equal(t, "name,subject,grades,weight\nAlice,Math,100;0;80,1.00\n", string(data))

	res = runGradebook(t, dir, nil, "check")
	require.NoError(t, res.Err)
}

// TestGradebookHistoryMigrate runs migrations against a fresh SQLite file.
func TestGradebookHistoryMigrate(t *testing.T) {
	dir := t.TempDir()
	env := map[string]string{"GRADEBOOK_HISTORY_DB_CONNECT": filepath.Join(dir, "history.db")}

	res := runGradebook(t, dir, env, "history", "migrate")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Successfully migrated")

	res = runGradebook(t, dir, env, "history", "migrate", "--target-version", "0")
	require.NoError(t, res.Err)
}

func TestGradebookVersion(t *testing.T) {
	res := runGradebook(t, t.TempDir(), nil, "version")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "gradebook CLI")
}
