package iostore

import (
	"errors"
	"fmt"
	"io"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/parquet"
)

// ExecuteHistoryExport writes the run history of store to two Parquet files
// named after outputFile and reports progress to w.
func ExecuteHistoryExport(w io.Writer, store contract.HistoryStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("history store is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no history data found to export")
	}

	_, _ = fmt.Fprintf(w, "Exporting data from %s backend...\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Total runs: %d\n", status.TotalRuns)
	_, _ = fmt.Fprintf(w, "Total student summaries: %d\n", status.TotalSummaries)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve history runs: %w", err)
	}
	summaries, err := store.GetAllStudentSummaries()
	if err != nil {
		return fmt.Errorf("failed to retrieve student summaries: %w", err)
	}

	parquetRuns := parquet.ConvertHistoryRunRecords(runs)
	runsFile := outputFile + ".history_runs.parquet"
	if err := parquet.WriteHistoryRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write history runs: %w", err)
	}
	_, _ = fmt.Fprintf(w, "💾 Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	parquetSummaries := parquet.ConvertStudentSummaryRecords(summaries)
	summariesFile := outputFile + ".student_summaries.parquet"
	if err := parquet.WriteHistoryStudentSummariesParquet(parquetSummaries, summariesFile); err != nil {
		return fmt.Errorf("failed to write student summaries: %w", err)
	}
	_, _ = fmt.Fprintf(w, "💾 Exported %d student summaries to: %s\n", len(parquetSummaries), summariesFile)

	return nil
}
