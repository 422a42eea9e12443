package core

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/gradebook/core/record"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/outwriter"
	"github.com/huangsam/gradebook/schema"
)

// AddStudent inserts a new student into the roster file. The student only
// survives the save once they have a grade.
func AddStudent(ctx context.Context, cfg *contract.Config, name string) (string, error) {
	var added string
	err := mutateRoster(ctx, cfg, func(r *record.Roster) error {
		rec, err := r.Add(name)
		if err != nil {
			return err
		}
		added = rec.Name()
		return nil
	})
	return added, err
}

// RemoveStudent deletes a student and all of their grades from the roster file.
func RemoveStudent(ctx context.Context, cfg *contract.Config, name string) error {
	return mutateRoster(ctx, cfg, func(r *record.Roster) error {
		if !r.Remove(name) {
			return fmt.Errorf("%w: %s", record.ErrStudentNotFound, strings.TrimSpace(name))
		}
		return nil
	})
}

// GetStudentList returns one summary per student in roster order.
func GetStudentList(ctx context.Context, cfg *contract.Config) ([]schema.StudentSummary, error) {
	roster, err := LoadRoster(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return record.Summarize(roster), nil
}

// GetStudentDetail returns the details view of one student, weight-only subjects included.
func GetStudentDetail(ctx context.Context, cfg *contract.Config, name string) (schema.StudentDetail, error) {
	roster, err := LoadRoster(ctx, cfg)
	if err != nil {
		return schema.StudentDetail{}, err
	}
	rec, err := roster.MustGet(name)
	if err != nil {
		return schema.StudentDetail{}, err
	}
	return record.DetailOf(rec, true), nil
}

// ExecuteStudentAdd is the entry point for 'student add'.
func ExecuteStudentAdd(ctx context.Context, w io.Writer, cfg *contract.Config, name string) error {
	added, err := AddStudent(ctx, cfg, name)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Student %s is valid; add a grade to store them in %s\n", added, cfg.RosterFile)
	contract.LogWarn("Student not saved", fmt.Errorf("%s has no grades yet; add one with 'grade add'", added))
	return nil
}

// ExecuteStudentRemove is the entry point for 'student remove'.
func ExecuteStudentRemove(ctx context.Context, w io.Writer, cfg *contract.Config, name string) error {
	if err := RemoveStudent(ctx, cfg, name); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Removed student %s from %s\n", strings.TrimSpace(name), cfg.RosterFile)
	return nil
}

// ExecuteStudentList is the entry point for 'student list'.
func ExecuteStudentList(ctx context.Context, cfg *contract.Config) error {
	students, err := GetStudentList(ctx, cfg)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStudents(students, cfg)
}

// ExecuteStudentShow is the entry point for 'student show'.
func ExecuteStudentShow(ctx context.Context, cfg *contract.Config, name string) error {
	detail, err := GetStudentDetail(ctx, cfg, name)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteStudentDetail(detail, cfg)
}
