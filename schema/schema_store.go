package schema

import "time"

// HistoryRunRecord represents a row from the gradebook_history_runs table.
type HistoryRunRecord struct {
	RunID         int64
	Command       string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalStudents int32
	ConfigParams  *string
}

// StudentSummaryRecord represents a row from the gradebook_student_summaries table.
type StudentSummaryRecord struct {
	RunID           int64
	StudentName     string
	RecordedAt      time.Time
	OverallAverage  *float64
	WeightedAverage *float64
	SubjectCount    int32
	Highest         *int32
	Lowest          *int32
}
