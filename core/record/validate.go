package record

import (
	"fmt"

	"github.com/huangsam/gradebook/schema"
)

// Validate reports every grade outside [0,100] and every non-positive weight.
// Decoding is lenient, so this is the strict pass callers run afterwards.
func Validate(r *Roster) []schema.Violation {
	var out []schema.Violation
	for _, rec := range r.Records() {
		for _, subject := range rec.order {
			for i, g := range rec.grades[subject] {
				if g < MinGrade || g > MaxGrade {
					out = append(out, schema.Violation{
						Student: rec.Name(),
						Subject: subject,
						Reason:  fmt.Sprintf("grade #%d is %d, outside %d-%d", i+1, g, MinGrade, MaxGrade),
					})
				}
			}
		}
		for _, subject := range rec.AllWeightedSubjects() {
			if w := rec.weights[subject]; !(w > 0) {
				out = append(out, schema.Violation{
					Student: rec.Name(),
					Subject: subject,
					Reason:  fmt.Sprintf("weight is %v, must be positive", w),
				})
			}
		}
	}
	return out
}

// Repair clamps out-of-range grades into [0,100] and resets non-positive weights
// to the default weight. It returns the number of values changed.
func Repair(r *Roster) int {
	changed := 0
	for _, rec := range r.Records() {
		for _, subject := range rec.order {
			grades := rec.grades[subject]
			for i, g := range grades {
				if c := min(max(g, MinGrade), MaxGrade); c != g {
					grades[i] = c
					changed++
				}
			}
		}
		for subject, w := range rec.weights {
			if !(w > 0) {
				rec.weights[subject] = DefaultWeight
				changed++
			}
		}
	}
	return changed
}
