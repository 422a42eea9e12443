// Package schema has models and constants shared by all parts of gradebook.
package schema

// StudentSummary is the read-only reduction of one student used by summary exports.
// Optional statistics are nil when the student has no grades.
type StudentSummary struct {
	Name            string   `json:"name"`
	OverallAverage  *float64 `json:"overall_avg"`
	WeightedAverage *float64 `json:"weighted_avg"`
	SubjectCount    int      `json:"subjects_count"`
	Highest         *int     `json:"highest"`
	Lowest          *int     `json:"lowest"`
}

// SubjectDetail holds the statistics of one subject for a single student.
type SubjectDetail struct {
	Subject string   `json:"subject"`
	Grades  []int    `json:"grades"`
	Average *float64 `json:"avg"`
	Highest *int     `json:"high"`
	Lowest  *int     `json:"low"`
	Weight  float64  `json:"weight"`
	Summary string   `json:"summary"`
}

// StudentDetail is the full per-student view: every graded subject plus the aggregates.
type StudentDetail struct {
	Name            string          `json:"name"`
	Subjects        []SubjectDetail `json:"subjects"`
	OverallAverage  *float64        `json:"overall_avg"`
	WeightedAverage *float64        `json:"weighted_avg"`
}

// Violation is a single invariant breach found in a decoded roster.
type Violation struct {
	Student string `json:"student"`
	Subject string `json:"subject"`
	Reason  string `json:"reason"`
}
