package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gradebook/internal/iostore"
	"github.com/huangsam/gradebook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSummaryResults_NoHistory(t *testing.T) {
	mgr := &iostore.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(nil)

	summaries, _, err := GetSummaryResults(context.Background(), writeRoster(t, sampleRosterText), mgr)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	alice := summaries[0]
	assert.Equal(t, "Alice", alice.Name)
	assert.InDelta(t, 86.25, *alice.OverallAverage, 1e-9)
	assert.InDelta(t, 83.0, *alice.WeightedAverage, 1e-9)
	assert.Equal(t, 100, *alice.Highest)
	assert.Equal(t, 70, *alice.Lowest)
	mgr.AssertExpectations(t)
}

func TestGetSummaryResults_NilManager(t *testing.T) {
	summaries, _, err := GetSummaryResults(context.Background(), writeRoster(t, ""), nil)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestGetSummaryResults_RecordsHistory(t *testing.T) {
	history := &iostore.MockHistoryStore{}
	history.On("BeginRun", "summary", mock.AnythingOfType("time.Time"), mock.MatchedBy(func(params map[string]any) bool {
		return params["output"] == "text" && params["precision"] == 2
	})).Return(int64(7), nil)
	history.On("RecordStudentSummary", int64(7), mock.AnythingOfType("time.Time"), mock.AnythingOfType("schema.StudentSummary")).Return(nil).Twice()
	history.On("EndRun", int64(7), mock.AnythingOfType("time.Time"), 2).Return(nil)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(history)

	_, _, err := GetSummaryResults(context.Background(), writeRoster(t, sampleRosterText), mgr)
	require.NoError(t, err)
	history.AssertExpectations(t)
}

func TestGetSummaryResults_TrackingFailuresAreNotFatal(t *testing.T) {
	history := &iostore.MockHistoryStore{}
	history.On("BeginRun", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), errors.New("db down"))

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(history)

	summaries, _, err := GetSummaryResults(WithQuiet(context.Background()), writeRoster(t, sampleRosterText), mgr)
	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	history.AssertNotCalled(t, "RecordStudentSummary", mock.Anything, mock.Anything, mock.Anything)
	history.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSummaryResults_EndsRunOnLoadFailure(t *testing.T) {
	history := &iostore.MockHistoryStore{}
	history.On("BeginRun", "summary", mock.AnythingOfType("time.Time"), mock.Anything).Return(int64(3), nil)
	history.On("EndRun", int64(3), mock.AnythingOfType("time.Time"), 0).Return(nil)

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(history)

	cfg := writeRoster(t, "name,subject,grades,weight\nAlice,Math,150,1.00\n")
	cfg.Strict = true
	_, _, err := GetSummaryResults(WithQuiet(context.Background()), cfg, mgr)
	assert.ErrorIs(t, err, ErrViolations)
	history.AssertExpectations(t)
	history.AssertNotCalled(t, "RecordStudentSummary", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetSummaryResults_SQLiteHistory(t *testing.T) {
	store, err := iostore.NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	mgr := &iostore.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(store)

	cfg := writeRoster(t, sampleRosterText)
	for range 2 {
		_, _, err := GetSummaryResults(context.Background(), cfg, mgr)
		require.NoError(t, err)
	}

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalRuns)
	assert.Equal(t, 4, status.TotalSummaries)

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, int32(2), runs[1].TotalStudents)
	assert.NotNil(t, runs[1].EndTime)
}

func TestExecuteSummary(t *testing.T) {
	mgr := &iostore.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(nil)

	cfg := writeRoster(t, sampleRosterText+"Empty,Math,,1.00\n")
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "summary.csv")

	require.NoError(t, ExecuteSummary(context.Background(), cfg, mgr))
	content, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "name,overall_avg,weighted_avg,subjects_count,highest,lowest\n"+
		"Alice,86.25,83.00,2,100,70\n"+
		"\"Bob, Jr.\",67.50,67.50,1,75,60\n"+
		"Empty,-,-,0,-,-\n", string(content))
}

func TestExecuteSummary_StrictFailure(t *testing.T) {
	cfg := writeRoster(t, "name,subject,grades,weight\nAlice,Math,150,1.00\n")
	cfg.Strict = true
	err := ExecuteSummary(context.Background(), cfg, nil)
	assert.ErrorIs(t, err, ErrViolations)
}
