package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteViolationResults prints the violations found by a validation pass.
func WriteViolationResults(violations []schema.Violation, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if violations == nil {
				violations = []schema.Violation{}
			}
			return writeJSON(w, violations)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"student", "subject", "reason"}, func(cw *csv.Writer) error {
				for _, v := range violations {
					if err := cw.Write([]string{v.Student, v.Subject, v.Reason}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeViolationTable(w, violations)
		}, "Wrote table")
	}
}

// writeViolationTable renders violations as a table, or a single line when there are none.
func writeViolationTable(w io.Writer, violations []schema.Violation) error {
	if len(violations) == 0 {
		_, err := fmt.Fprintln(w, "✅ No violations found.")
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Student", "Subject", "Reason"})
	var data [][]string
	for _, v := range violations {
		data = append(data, []string{v.Student, v.Subject, v.Reason})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Found %d violations\n", len(violations))
	return err
}
