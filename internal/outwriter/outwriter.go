// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints the per-student summary using the configured output format.
func (ow *OutWriter) WriteSummary(summaries []schema.StudentSummary, cfg *contract.Config, duration time.Duration) error {
	return WriteSummaryResults(summaries, cfg, duration)
}

// WriteStudents prints the student list using the configured output format.
func (ow *OutWriter) WriteStudents(summaries []schema.StudentSummary, cfg *contract.Config) error {
	return WriteStudentList(summaries, cfg)
}

// WriteStudentDetail prints the details view of one student.
func (ow *OutWriter) WriteStudentDetail(detail schema.StudentDetail, cfg *contract.Config) error {
	return WriteStudentDetail(detail, cfg)
}

// WriteViolations prints the result of a validation pass.
func (ow *OutWriter) WriteViolations(violations []schema.Violation, cfg *contract.Config) error {
	return WriteViolationResults(violations, cfg)
}
