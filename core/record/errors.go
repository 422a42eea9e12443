package record

import "errors"

// Errors returned by the strict mutation API. Callers match them with errors.Is.
var (
	ErrInvalidGrade     = errors.New("invalid grade")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrEmptyName        = errors.New("student name cannot be empty")
	ErrEmptySubject     = errors.New("subject cannot be empty")
	ErrDuplicateStudent = errors.New("student already exists")
	ErrStudentNotFound  = errors.New("student not found")
)

// Grade bounds accepted by AddGrade.
const (
	MinGrade = 0
	MaxGrade = 100
)

// DefaultWeight applies to any graded subject without an explicit weight.
const DefaultWeight = 1.0
