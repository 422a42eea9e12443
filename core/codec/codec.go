// Package codec reads and writes the gradebook CSV format:
//
//	name,subject,grades,weight
//	Alice,Math,90;85;100,1.50
//	"Bob, Jr.",History,60;75,1.00
//
// One row is written per graded subject. Grades are joined with ';' and the
// weight always carries two decimals. Decoding is best-effort: malformed rows
// and tokens are skipped rather than reported.
package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/gradebook/core/record"
)

// Header is the fixed first line of every encoded file.
const Header = "name,subject,grades,weight"

// GradeSeparator joins the grades of one subject inside the grades field.
const GradeSeparator = ";"

// Encode renders records in the gradebook CSV format. Records without graded
// subjects produce no rows, so they do not survive a save and reload.
func Encode(records []*record.Record) string {
	var sb strings.Builder
	_ = Write(&sb, records)
	return sb.String()
}

// EncodeRoster is Encode over a roster, in roster order.
func EncodeRoster(r *record.Roster) string {
	return Encode(r.Records())
}

// Write streams the encoded form of records to w.
func Write(w io.Writer, records []*record.Record) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}
	for _, rec := range records {
		for _, line := range encodeRecord(rec) {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeRecord returns one line per graded subject of rec.
func encodeRecord(rec *record.Record) []string {
	subjects := rec.GradedSubjects()
	lines := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		grades := rec.Grades(subject)
		parts := make([]string, len(grades))
		for i, g := range grades {
			parts[i] = strconv.Itoa(g)
		}
		lines = append(lines, fmt.Sprintf("%s,%s,%s,%.2f",
			quoteField(rec.Name()),
			quoteField(subject),
			strings.Join(parts, GradeSeparator),
			rec.SubjectWeight(subject),
		))
	}
	return lines
}

// quoteField wraps s in double quotes when it contains a comma or a quote,
// doubling any embedded quotes. Nothing else triggers quoting.
func quoteField(s string) string {
	if !strings.ContainsAny(s, `,"`) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
