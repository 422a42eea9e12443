package core

import (
	"context"
	"fmt"
	"io"

	"github.com/huangsam/gradebook/core/record"
	"github.com/huangsam/gradebook/internal/contract"
)

// AddGrade appends a validated grade and returns the subject's summary line
// after the change. An unknown student is created, since only students with
// grades are persisted.
func AddGrade(ctx context.Context, cfg *contract.Config, name, subject string, grade int) (string, error) {
	var line string
	err := mutateRoster(ctx, cfg, func(r *record.Roster) error {
		rec, err := r.GetOrCreate(name)
		if err != nil {
			return err
		}
		if err := rec.AddGrade(subject, grade); err != nil {
			return err
		}
		line = rec.SummaryLine(subject)
		return nil
	})
	return line, err
}

// SetWeight sets a subject weight of an existing student and returns the
// subject's summary line after the change. The subject need not have grades,
// but a weight-only subject is not persisted.
func SetWeight(ctx context.Context, cfg *contract.Config, name, subject string, weight float64) (string, bool, error) {
	var line string
	var graded bool
	err := mutateRoster(ctx, cfg, func(r *record.Roster) error {
		rec, err := r.MustGet(name)
		if err != nil {
			return err
		}
		if err := rec.SetSubjectWeight(subject, weight); err != nil {
			return err
		}
		line = rec.SummaryLine(subject)
		graded = len(rec.Grades(subject)) > 0
		return nil
	})
	return line, graded, err
}

// ExecuteGradeAdd is the entry point for 'grade add'.
func ExecuteGradeAdd(ctx context.Context, w io.Writer, cfg *contract.Config, name, subject string, grade int) error {
	line, err := AddGrade(ctx, cfg, name, subject, grade)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s / %s: %s\n", name, subject, line)
	return nil
}

// ExecuteWeightSet is the entry point for 'weight set'.
func ExecuteWeightSet(ctx context.Context, w io.Writer, cfg *contract.Config, name, subject string, weight float64) error {
	line, graded, err := SetWeight(ctx, cfg, name, subject, weight)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s / %s: %s\n", name, subject, line)
	if !graded {
		contract.LogWarn("Weight not saved", fmt.Errorf("%s has no grades in %s yet", name, subject))
	}
	return nil
}
