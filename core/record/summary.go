package record

import (
	"github.com/huangsam/gradebook/schema"
)

// Summarize reduces every student of the roster to a summary row, in roster order.
func Summarize(r *Roster) []schema.StudentSummary {
	out := make([]schema.StudentSummary, 0, r.Len())
	for _, rec := range r.Records() {
		out = append(out, SummaryOf(rec))
	}
	return out
}

// SummaryOf computes the overall and weighted averages, the number of graded
// subjects, and the highest and lowest grade across all subjects.
func SummaryOf(rec *Record) schema.StudentSummary {
	s := schema.StudentSummary{
		Name:         rec.Name(),
		SubjectCount: len(rec.order),
	}
	if avg, ok := rec.OverallAverage(); ok {
		s.OverallAverage = schema.Float64Ptr(avg)
	}
	if avg, ok := rec.WeightedAverage(); ok {
		s.WeightedAverage = schema.Float64Ptr(avg)
	}
	for _, subject := range rec.order {
		if hi, ok := rec.SubjectHighest(subject); ok && (s.Highest == nil || hi > *s.Highest) {
			s.Highest = schema.IntPtr(hi)
		}
		if lo, ok := rec.SubjectLowest(subject); ok && (s.Lowest == nil || lo < *s.Lowest) {
			s.Lowest = schema.IntPtr(lo)
		}
	}
	return s
}

// DetailOf builds the per-subject view of a student. Weight-only subjects are
// included when withWeightOnly is set.
func DetailOf(rec *Record, withWeightOnly bool) schema.StudentDetail {
	subjects := rec.GradedSubjects()
	if withWeightOnly {
		subjects = rec.AllWeightedSubjects()
	}
	d := schema.StudentDetail{
		Name:     rec.Name(),
		Subjects: make([]schema.SubjectDetail, 0, len(subjects)),
	}
	for _, subject := range subjects {
		sd := rec.subjectDetail(subject)
		sd.Summary = rec.SummaryLine(subject)
		d.Subjects = append(d.Subjects, sd)
	}
	if avg, ok := rec.OverallAverage(); ok {
		d.OverallAverage = schema.Float64Ptr(avg)
	}
	if avg, ok := rec.WeightedAverage(); ok {
		d.WeightedAverage = schema.Float64Ptr(avg)
	}
	return d
}
