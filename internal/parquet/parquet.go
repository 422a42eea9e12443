// Package parquet provides data structures and functions for exporting gradebook
// summaries and run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/gradebook/schema"
	"github.com/parquet-go/parquet-go"
)

// SummaryRow is the Parquet form of one student summary.
type SummaryRow struct {
	// Name is the display name of the student
	Name string `parquet:"name,snappy"`

	// OverallAverage is the mean of every grade (nullable when the student has none)
	OverallAverage *float64 `parquet:"overall_avg,optional,snappy"`

	// WeightedAverage is the weight-adjusted mean of subject averages (nullable)
	WeightedAverage *float64 `parquet:"weighted_avg,optional,snappy"`

	// SubjectCount is the number of graded subjects
	SubjectCount int32 `parquet:"subjects_count,snappy"`

	// Highest is the top grade across all subjects (nullable)
	Highest *int32 `parquet:"highest,optional,snappy"`

	// Lowest is the bottom grade across all subjects (nullable)
	Lowest *int32 `parquet:"lowest,optional,snappy"`

	// Band is the grade band of the overall average
	Band string `parquet:"band,snappy"`
}

// HistoryRun represents a single recorded CLI run.
// This struct maps to the gradebook_history_runs database table.
type HistoryRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the CLI command that produced the run
	Command string `parquet:"command,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalStudents is the number of students summarized in this run
	TotalStudents int32 `parquet:"total_students,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// HistoryStudentSummary is one student summary recorded during a run.
// This struct maps to the gradebook_student_summaries database table.
type HistoryStudentSummary struct {
	RunID           int64     `parquet:"run_id,snappy"`
	StudentName     string    `parquet:"student_name,snappy"`
	RecordedAt      time.Time `parquet:"recorded_at,snappy"`
	OverallAverage  *float64  `parquet:"overall_avg,optional,snappy"`
	WeightedAverage *float64  `parquet:"weighted_avg,optional,snappy"`
	SubjectCount    int32     `parquet:"subjects_count,snappy"`
	Highest         *int32    `parquet:"highest,optional,snappy"`
	Lowest          *int32    `parquet:"lowest,optional,snappy"`
}

// writeRows streams rows to w using a schema inferred from the struct tags of T.
func writeRows[T any](w io.Writer, data []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// writeRowsToFile creates outputPath and writes rows into it.
func writeRowsToFile[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeRows(file, data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteSummaryRows writes summary rows to w.
func WriteSummaryRows(w io.Writer, data []SummaryRow) error {
	return writeRows(w, data)
}

// WriteHistoryRunsParquet writes a slice of HistoryRun structs to a Parquet file.
func WriteHistoryRunsParquet(data []HistoryRun, outputPath string) error {
	return writeRowsToFile(data, outputPath)
}

// WriteHistoryStudentSummariesParquet writes a slice of HistoryStudentSummary structs to a Parquet file.
func WriteHistoryStudentSummariesParquet(data []HistoryStudentSummary, outputPath string) error {
	return writeRowsToFile(data, outputPath)
}

// ConvertStudentSummaries converts summaries into Parquet rows.
func ConvertStudentSummaries(summaries []schema.StudentSummary) []SummaryRow {
	result := make([]SummaryRow, len(summaries))
	for i, s := range summaries {
		result[i] = SummaryRow{
			Name:            s.Name,
			OverallAverage:  s.OverallAverage,
			WeightedAverage: s.WeightedAverage,
			SubjectCount:    int32(s.SubjectCount),
			Highest:         int32Ptr(s.Highest),
			Lowest:          int32Ptr(s.Lowest),
			Band:            string(schema.BandFor(s.OverallAverage)),
		}
	}
	return result
}

// ConvertHistoryRunRecords converts schema.HistoryRunRecord to HistoryRun.
func ConvertHistoryRunRecords(records []schema.HistoryRunRecord) []HistoryRun {
	result := make([]HistoryRun, len(records))
	for i, r := range records {
		result[i] = HistoryRun{
			RunID:         r.RunID,
			Command:       r.Command,
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			RunDurationMs: r.RunDurationMs,
			TotalStudents: r.TotalStudents,
			ConfigParams:  r.ConfigParams,
		}
	}
	return result
}

// ConvertStudentSummaryRecords converts schema.StudentSummaryRecord to HistoryStudentSummary.
func ConvertStudentSummaryRecords(records []schema.StudentSummaryRecord) []HistoryStudentSummary {
	result := make([]HistoryStudentSummary, len(records))
	for i, r := range records {
		result[i] = HistoryStudentSummary{
			RunID:           r.RunID,
			StudentName:     r.StudentName,
			RecordedAt:      r.RecordedAt,
			OverallAverage:  r.OverallAverage,
			WeightedAverage: r.WeightedAverage,
			SubjectCount:    r.SubjectCount,
			Highest:         r.Highest,
			Lowest:          r.Lowest,
		}
	}
	return result
}

func int32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}
