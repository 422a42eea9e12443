package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/gradebook/core/record"
)

// minRowFields is the number of fields a row needs to be considered: name, subject, grades.
const minRowFields = 3

// DecodeStats counts what a lenient decode skipped or replaced.
type DecodeStats struct {
	RowsRead           int // non-blank lines after the header
	RowsSkipped        int // rows with too few fields or an empty name/subject
	GradeTokensSkipped int // non-empty grade tokens that are not integers
	WeightsDefaulted   int // non-empty weights replaced by the default weight
}

// Lossy reports whether anything in the input was dropped or replaced.
func (s DecodeStats) Lossy() bool {
	return s.RowsSkipped > 0 || s.GradeTokensSkipped > 0 || s.WeightsDefaulted > 0
}

// Add accumulates other into s.
func (s *DecodeStats) Add(other DecodeStats) {
	s.RowsRead += other.RowsRead
	s.RowsSkipped += other.RowsSkipped
	s.GradeTokensSkipped += other.GradeTokensSkipped
	s.WeightsDefaulted += other.WeightsDefaulted
}

// Decode parses text into a new roster.
func Decode(text string) (*record.Roster, DecodeStats) {
	r := record.NewRoster()
	stats := DecodeInto(r, text)
	return r, stats
}

// DecodeInto parses text and merges every row into r. For a student already in r,
// the row's weight overwrites the stored one and its grades are appended.
// The first line is treated as the header and skipped without inspection.
// Grade tokens are not range checked.
func DecodeInto(r *record.Roster, text string) DecodeStats {
	var stats DecodeStats
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i == 0 {
			continue
		}
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.RowsRead++

		fields := parseRow(line)
		if len(fields) < minRowFields {
			stats.RowsSkipped++
			continue
		}
		name := strings.TrimSpace(fields[0])
		subject := strings.TrimSpace(fields[1])
		if name == "" || subject == "" {
			stats.RowsSkipped++
			continue
		}

		weight := record.DefaultWeight
		if len(fields) > minRowFields && fields[3] != "" {
			w, ok := parseWeight(fields[3])
			if ok {
				weight = w
			} else {
				stats.WeightsDefaulted++
			}
		}

		grades, skipped := parseGrades(fields[2])
		stats.GradeTokensSkipped += skipped

		if err := r.MergeRow(name, subject, grades, weight); err != nil {
			stats.RowsSkipped++
		}
	}
	return stats
}

// parseRow splits one line into fields, one character at a time. Inside quotes a
// doubled quote is a literal quote and a single quote ends the quoted section.
// Outside quotes a comma ends the field and a quote starts a quoted section.
func parseRow(line string) []string {
	var out []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					cur.WriteRune('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteRune(c)
			}
			continue
		}
		switch c {
		case ',':
			out = append(out, cur.String())
			cur.Reset()
		case '"':
			inQuotes = true
		default:
			cur.WriteRune(c)
		}
	}
	return append(out, cur.String())
}

// parseGrades splits the grades field and returns the integer tokens in order,
// along with the count of non-empty tokens that failed to parse.
func parseGrades(field string) ([]int, int) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, 0
	}
	var grades []int
	skipped := 0
	for _, tok := range strings.Split(field, GradeSeparator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		g, err := strconv.Atoi(tok)
		if err != nil {
			skipped++
			continue
		}
		grades = append(grades, g)
	}
	return grades, skipped
}

// parseWeight parses a weight field. Malformed, non-positive and non-finite
// values are rejected so the caller falls back to the default weight.
func parseWeight(field string) (float64, bool) {
	w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || !(w > 0) || math.IsInf(w, 0) {
		return 0, false
	}
	return w, true
}
