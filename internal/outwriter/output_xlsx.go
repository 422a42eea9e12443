package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/schema"
	"github.com/xuri/excelize/v2"
)

// summarySheet is the worksheet holding the summary export.
const summarySheet = "Summary"

// xlsxHeaders are the column titles of the summary worksheet.
var xlsxHeaders = []string{"Name", "Overall Average", "Weighted Average", "Subjects", "Highest", "Lowest", "Band"}

// writeSummaryXLSX writes the summary as a single-sheet workbook.
// Absent statistics are left as empty cells so spreadsheet formulas skip them.
func writeSummaryXLSX(w io.Writer, summaries []schema.StudentSummary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}

	for i, header := range xlsxHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return err
		}
	}

	for i, s := range summaries {
		row := i + 2
		values := []any{
			s.Name,
			optionalCell(s.OverallAverage),
			optionalCell(s.WeightedAverage),
			s.SubjectCount,
			optionalCell(s.Highest),
			optionalCell(s.Lowest),
			contract.GetPlainLabel(s.WeightedAverage),
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// optionalCell dereferences an optional statistic, or returns nil for an empty cell.
func optionalCell[T int | float64](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
