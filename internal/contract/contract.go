// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"errors"
	"time"

	"github.com/huangsam/gradebook/schema"
)

// ErrNotFound is returned by a store lookup that matches nothing.
var ErrNotFound = errors.New("not found")

// StoreManager defines the interface for managing the persistent stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetSnapshotStore() SnapshotStore
	GetHistoryStore() HistoryStore
}

// SnapshotStore keeps labeled copies of an encoded roster.
type SnapshotStore interface {
	// Get returns the stored value, its format version and the unix timestamp it was saved at.
	// A missing key yields an error wrapping ErrNotFound.
	Get(key string) ([]byte, int, int64, error)

	// Set inserts or replaces the value stored under key.
	Set(key string, value []byte, version int, timestamp int64) error

	// GetStatus returns status information about the snapshot store
	GetStatus() (schema.SnapshotStatus, error)

	// Close closes the underlying connection
	Close() error
}

// HistoryStore defines the interface for tracking CLI runs and the summaries they produced.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(command string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, totalStudents int) error

	// RecordStudentSummary stores the summary of one student for a run
	RecordStudentSummary(runID int64, recordedAt time.Time, summary schema.StudentSummary) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns returns every recorded run ordered by ID
	GetAllRuns() ([]schema.HistoryRunRecord, error)

	// GetAllStudentSummaries returns every recorded student summary ordered by run and name
	GetAllStudentSummaries() ([]schema.StudentSummaryRecord, error)

	// Close closes the underlying connection
	Close() error
}
