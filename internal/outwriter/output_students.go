package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteStudentList prints every student with a grade count, in roster order.
func WriteStudentList(summaries []schema.StudentSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summaries)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"name", "subjects_count"}, func(cw *csv.Writer) error {
				for _, s := range summaries {
					if err := cw.Write([]string{s.Name, strconv.Itoa(s.SubjectCount)}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStudentListText(w, summaries, cfg)
		}, "Wrote list")
	}
}

// writeStudentListText prints one name per line followed by its subject count.
func writeStudentListText(w io.Writer, summaries []schema.StudentSummary, cfg *contract.Config) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No students found.")
		return err
	}
	nameWidth := GetMaxTableNameWidth(cfg)
	for _, s := range summaries {
		if _, err := fmt.Fprintf(w, "%-*s  %d subjects\n", nameWidth, contract.TruncateName(s.Name, nameWidth), s.SubjectCount); err != nil {
			return err
		}
	}
	return nil
}

// WriteStudentDetail prints the details view of one student.
func WriteStudentDetail(detail schema.StudentDetail, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, detail)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStudentDetailText(w, detail, cfg)
		}, "Wrote details")
	}
}

// writeStudentDetailText renders per-subject summary lines and the aggregates.
func writeStudentDetailText(w io.Writer, detail schema.StudentDetail, cfg *contract.Config) error {
	_, fmtOpt := createFormatters(cfg.Precision)

	if _, err := fmt.Fprintf(w, "Student: %s\n", detail.Name); err != nil {
		return err
	}
	if len(detail.Subjects) == 0 {
		if _, err := fmt.Fprintln(w, "No subjects recorded."); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(w)
		table.Header([]string{"Subject", "Summary"})
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignLeft
		})
		var data [][]string
		for _, sd := range detail.Subjects {
			data = append(data, []string{sd.Subject, sd.Summary})
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Overall average: %s\n", fmtOpt(detail.OverallAverage)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Weighted average: %s (%s)\n", fmtOpt(detail.WeightedAverage), bandLabel(detail.WeightedAverage, cfg.UseColors))
	return err
}
