package iostore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gradebook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecuteHistoryExport_Validation(t *testing.T) {
	assert.ErrorContains(t, ExecuteHistoryExport(&bytes.Buffer{}, &MockHistoryStore{}, ""), "--output-file")
	assert.ErrorContains(t, ExecuteHistoryExport(&bytes.Buffer{}, nil, "out"), "not initialized")
}

func TestExecuteHistoryExport_NoData(t *testing.T) {
	store := &MockHistoryStore{}
	store.On("GetStatus").Return(schema.HistoryStatus{Backend: "sqlite", Connected: true}, nil)

	err := ExecuteHistoryExport(&bytes.Buffer{}, store, filepath.Join(t.TempDir(), "out"))
	assert.ErrorContains(t, err, "no history data")
	store.AssertExpectations(t)
}

func TestExecuteHistoryExport_StoreErrors(t *testing.T) {
	status := schema.HistoryStatus{Backend: "sqlite", Connected: true, TotalRuns: 1}

	t.Run("status", func(t *testing.T) {
		store := &MockHistoryStore{}
		store.On("GetStatus").Return(schema.HistoryStatus{}, errors.New("boom"))
		assert.ErrorContains(t, ExecuteHistoryExport(&bytes.Buffer{}, store, "out"), "boom")
	})

	t.Run("runs", func(t *testing.T) {
		store := &MockHistoryStore{}
		store.On("GetStatus").Return(status, nil)
		store.On("GetAllRuns").Return(nil, errors.New("runs failed"))
		assert.ErrorContains(t, ExecuteHistoryExport(&bytes.Buffer{}, store, "out"), "runs failed")
	})

	t.Run("summaries", func(t *testing.T) {
		store := &MockHistoryStore{}
		store.On("GetStatus").Return(status, nil)
		store.On("GetAllRuns").Return([]schema.HistoryRunRecord{{RunID: 1}}, nil)
		store.On("GetAllStudentSummaries").Return(nil, errors.New("summaries failed"))
		assert.ErrorContains(t, ExecuteHistoryExport(&bytes.Buffer{}, store, "out"), "summaries failed")
	})
}

func TestExecuteHistoryExport_Mock(t *testing.T) {
	store := &MockHistoryStore{}
	store.On("GetStatus").Return(schema.HistoryStatus{Backend: "sqlite", Connected: true, TotalRuns: 1, TotalSummaries: 1}, nil)
	store.On("GetAllRuns").Return([]schema.HistoryRunRecord{
		{RunID: 1, Command: "summary", StartTime: time.Now(), TotalStudents: 1},
	}, nil)
	store.On("GetAllStudentSummaries").Return([]schema.StudentSummaryRecord{
		{RunID: 1, StudentName: "Alice", RecordedAt: time.Now(), SubjectCount: 2},
	}, nil)

	outputFile := filepath.Join(t.TempDir(), "export")
	var buf bytes.Buffer
	require.NoError(t, ExecuteHistoryExport(&buf, store, outputFile))

	assert.FileExists(t, outputFile+".history_runs.parquet")
	assert.FileExists(t, outputFile+".student_summaries.parquet")
	assert.Contains(t, buf.String(), "💾 Exported 1 runs to:")
	assert.Contains(t, buf.String(), "💾 Exported 1 student summaries to:")
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "BeginRun", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecuteHistoryExport_SQLite(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun("summary", time.Now(), nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordStudentSummary(runID, time.Now(), schema.StudentSummary{
		Name: "Bob, Jr.", OverallAverage: schema.Float64Ptr(67.5), SubjectCount: 1,
	}))
	require.NoError(t, store.EndRun(runID, time.Now(), 1))

	outputFile := filepath.Join(t.TempDir(), "history")
	require.NoError(t, ExecuteHistoryExport(&bytes.Buffer{}, store, outputFile))

	info, err := os.Stat(outputFile + ".student_summaries.parquet")
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
