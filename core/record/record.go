// Package record holds the in-memory student model: grades and weights per subject,
// plus the statistics derived from them.
package record

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/huangsam/gradebook/schema"
)

// Record is one student with ordered per-subject grade sequences and per-subject weights.
// Subjects keep the order in which their first grade was added.
type Record struct {
	name    string
	order   []string           // graded subjects in first-grade order
	grades  map[string][]int   // subject -> grades in insertion order
	weights map[string]float64 // subject -> weight, may include subjects without grades
}

// NewRecord creates an empty record. The name is trimmed and must not be empty.
func NewRecord(name string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Record{
		name:    name,
		grades:  make(map[string][]int),
		weights: make(map[string]float64),
	}, nil
}

// Key returns the case-insensitive identity of a student name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Name returns the trimmed display name.
func (r *Record) Name() string {
	return r.name
}

// Key returns the identity key used by any collection holding the record.
func (r *Record) Key() string {
	return Key(r.name)
}

// AddGrade appends a grade in [0,100] to the subject, creating the subject if needed.
// A subject without a weight gets the default weight.
func (r *Record) AddGrade(subject string, grade int) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrEmptySubject
	}
	if grade < MinGrade || grade > MaxGrade {
		return fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidGrade, grade, MinGrade, MaxGrade)
	}
	r.appendRaw(subject, grade)
	return nil
}

// SetSubjectWeight overwrites the weight of a subject, whether or not it has grades.
func (r *Record) SetSubjectWeight(subject string, weight float64) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ErrEmptySubject
	}
	if !(weight > 0) || math.IsInf(weight, 1) {
		return fmt.Errorf("%w: %v (must be positive)", ErrInvalidWeight, weight)
	}
	r.weights[subject] = weight
	return nil
}

// appendRaw appends a grade without range validation. Decoding uses it so that
// persisted out-of-range values survive a load.
func (r *Record) appendRaw(subject string, grade int) {
	if _, ok := r.grades[subject]; !ok {
		r.order = append(r.order, subject)
	}
	r.grades[subject] = append(r.grades[subject], grade)
	if _, ok := r.weights[subject]; !ok {
		r.weights[subject] = DefaultWeight
	}
}

// setWeightRaw stores a weight without validation.
func (r *Record) setWeightRaw(subject string, weight float64) {
	r.weights[subject] = weight
}

// SubjectWeight returns the weight of a subject, or the default weight if none is set.
func (r *Record) SubjectWeight(subject string) float64 {
	if w, ok := r.weights[strings.TrimSpace(subject)]; ok {
		return w
	}
	return DefaultWeight
}

// HasWeight reports whether a weight was stored for the subject.
func (r *Record) HasWeight(subject string) bool {
	_, ok := r.weights[strings.TrimSpace(subject)]
	return ok
}

// Grades returns a copy of the grades of a subject.
func (r *Record) Grades(subject string) []int {
	return slices.Clone(r.grades[strings.TrimSpace(subject)])
}

// GradedSubjects returns the subjects with at least one grade, in insertion order.
func (r *Record) GradedSubjects() []string {
	return slices.Clone(r.order)
}

// Subjects is the same view as GradedSubjects. Subjects that only carry a weight
// are not listed.
func (r *Record) Subjects() []string {
	return r.GradedSubjects()
}

// AllWeightedSubjects returns graded subjects in insertion order followed by
// weight-only subjects in lexical order.
func (r *Record) AllWeightedSubjects() []string {
	out := slices.Clone(r.order)
	var extra []string
	for subject := range r.weights {
		if _, ok := r.grades[subject]; !ok {
			extra = append(extra, subject)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// GradeCount returns the total number of grades across all subjects.
func (r *Record) GradeCount() int {
	n := 0
	for _, g := range r.grades {
		n += len(g)
	}
	return n
}

// SubjectAverage returns the arithmetic mean of a subject's grades.
func (r *Record) SubjectAverage(subject string) (float64, bool) {
	return mean(r.grades[strings.TrimSpace(subject)])
}

// SubjectHighest returns the highest grade of a subject.
func (r *Record) SubjectHighest(subject string) (int, bool) {
	g := r.grades[strings.TrimSpace(subject)]
	if len(g) == 0 {
		return 0, false
	}
	return slices.Max(g), true
}

// SubjectLowest returns the lowest grade of a subject.
func (r *Record) SubjectLowest(subject string) (int, bool) {
	g := r.grades[strings.TrimSpace(subject)]
	if len(g) == 0 {
		return 0, false
	}
	return slices.Min(g), true
}

// OverallAverage returns the mean of all grades pooled together, not the mean of
// the subject averages.
func (r *Record) OverallAverage() (float64, bool) {
	var all []int
	for _, subject := range r.order {
		all = append(all, r.grades[subject]...)
	}
	return mean(all)
}

// WeightedAverage weighs each graded subject's average by its weight. Subjects
// without grades count in neither the numerator nor the denominator.
func (r *Record) WeightedAverage() (float64, bool) {
	var totalWeighted, totalWeight float64
	for _, subject := range r.order {
		avg, ok := r.SubjectAverage(subject)
		if !ok {
			continue
		}
		w := r.SubjectWeight(subject)
		totalWeighted += avg * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0, false
	}
	return totalWeighted / totalWeight, true
}

// SummaryLine renders "Grades: [..] | avg: .. | high: .. | low: .. | weight: .."
// with "-" for any absent statistic.
func (r *Record) SummaryLine(subject string) string {
	subject = strings.TrimSpace(subject)
	d := r.subjectDetail(subject)
	return fmt.Sprintf("Grades: %s | avg: %s | high: %s | low: %s | weight: %.2f",
		schema.FormatGrades(d.Grades),
		schema.FormatOptionalFloat(d.Average, 2),
		schema.FormatOptionalInt(d.Highest),
		schema.FormatOptionalInt(d.Lowest),
		d.Weight,
	)
}

// subjectDetail collects the statistics of one subject.
func (r *Record) subjectDetail(subject string) schema.SubjectDetail {
	d := schema.SubjectDetail{
		Subject: subject,
		Grades:  r.Grades(subject),
		Weight:  r.SubjectWeight(subject),
	}
	if avg, ok := r.SubjectAverage(subject); ok {
		d.Average = schema.Float64Ptr(avg)
	}
	if hi, ok := r.SubjectHighest(subject); ok {
		d.Highest = schema.IntPtr(hi)
	}
	if lo, ok := r.SubjectLowest(subject); ok {
		d.Lowest = schema.IntPtr(lo)
	}
	return d
}

// mean returns the arithmetic mean of values, or false when there are none.
func mean(values []int) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values)), true
}
