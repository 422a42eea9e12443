package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/parquet"
	"github.com/huangsam/gradebook/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// summaryCSVHeader is the column layout of the CSV summary export.
var summaryCSVHeader = []string{"name", "overall_avg", "weighted_avg", "subjects_count", "highest", "lowest"}

// WriteSummaryResults outputs the summary rows, dispatching based on the output format configured.
func WriteSummaryResults(summaries []schema.StudentSummary, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryJSON(w, summaries)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryCSV(w, summaries, cfg.Precision)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteSummaryRows(w, parquet.ConvertStudentSummaries(summaries))
		}, "Wrote Parquet"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryXLSX(w, summaries)
		}, "Wrote XLSX"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, summaries, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeSummaryTable generates and writes the human-readable summary table.
func writeSummaryTable(w io.Writer, summaries []schema.StudentSummary, cfg *contract.Config, duration time.Duration) error {
	_, fmtOpt := createFormatters(cfg.Precision)
	nameWidth := GetMaxTableNameWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Name", "Overall", "Weighted", "Subjects", "High", "Low", "Band"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	graded := 0
	for i, s := range summaries {
		if s.OverallAverage != nil {
			graded++
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(s.Name, nameWidth),
			fmtOpt(s.OverallAverage),
			fmtOpt(s.WeightedAverage),
			strconv.Itoa(s.SubjectCount),
			schema.FormatOptionalInt(s.Highest),
			schema.FormatOptionalInt(s.Lowest),
			bandLabel(s.WeightedAverage, cfg.UseColors),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing %d students (%d with grades)\n", len(summaries), graded); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Summary completed in %v. History backend: %s\n", duration, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeSummaryCSV writes one CSV row per student with "-" for absent statistics.
func writeSummaryCSV(w io.Writer, summaries []schema.StudentSummary, precision int) error {
	_, fmtOpt := createFormatters(precision)
	return writeCSVWithHeader(w, summaryCSVHeader, func(cw *csv.Writer) error {
		for _, s := range summaries {
			rec := []string{
				s.Name,
				fmtOpt(s.OverallAverage),
				fmtOpt(s.WeightedAverage),
				strconv.Itoa(s.SubjectCount),
				schema.FormatOptionalInt(s.Highest),
				schema.FormatOptionalInt(s.Lowest),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeSummaryJSON writes the summary rows with their grade band.
func writeSummaryJSON(w io.Writer, summaries []schema.StudentSummary) error {
	type JSONSummary struct {
		Rank int    `json:"rank"`
		Band string `json:"band"`
		schema.StudentSummary
	}

	output := make([]JSONSummary, len(summaries))
	for i, s := range summaries {
		output[i] = JSONSummary{
			Rank:           i + 1,
			Band:           contract.GetPlainLabel(s.WeightedAverage),
			StudentSummary: s,
		}
	}
	return writeJSON(w, output)
}

// bandLabel picks the colored or plain band label.
func bandLabel(avg *float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(avg)
	}
	return contract.GetPlainLabel(avg)
}
