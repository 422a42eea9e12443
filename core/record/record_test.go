package record

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newAlice builds the record used throughout the statistics tests:
// Math [90, 85, 100] at weight 1.5 and Science [70] at the default weight.
func newAlice(t *testing.T) *Record {
	t.Helper()
	rec, err := NewRecord("Alice")
	require.NoError(t, err)
	for _, g := range []int{90, 85, 100} {
		require.NoError(t, rec.AddGrade("Math", g))
	}
	require.NoError(t, rec.AddGrade("Science", 70))
	require.NoError(t, rec.SetSubjectWeight("Math", 1.5))
	return rec
}

func TestNewRecord(t *testing.T) {
	rec, err := NewRecord("  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", rec.Name())
	assert.Equal(t, "alice", rec.Key())
	assert.Empty(t, rec.GradedSubjects())

	_, err = NewRecord("   ")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestAddGrade(t *testing.T) {
	t.Run("accepts the full range", func(t *testing.T) {
		rec, err := NewRecord("Alice")
		require.NoError(t, err)
		for _, g := range []int{0, 1, 50, 99, 100} {
			require.NoError(t, rec.AddGrade("Math", g))
			grades := rec.Grades("Math")
			assert.Equal(t, g, grades[len(grades)-1], "grade %d should be appended last", g)
		}
		assert.Equal(t, []int{0, 1, 50, 99, 100}, rec.Grades("Math"))
	})

	t.Run("rejects out of range without mutation", func(t *testing.T) {
		rec, err := NewRecord("Alice")
		require.NoError(t, err)
		require.NoError(t, rec.AddGrade("Math", 80))
		for _, g := range []int{-1, 101, -100, 1000} {
			err := rec.AddGrade("Math", g)
			assert.True(t, errors.Is(err, ErrInvalidGrade), "grade %d should be rejected", g)
		}
		assert.Equal(t, []int{80}, rec.Grades("Math"))

		err = rec.AddGrade("Physics", 101)
		assert.ErrorIs(t, err, ErrInvalidGrade)
		assert.Equal(t, []string{"Math"}, rec.GradedSubjects())
		assert.False(t, rec.HasWeight("Physics"))
	})

	t.Run("trims the subject", func(t *testing.T) {
		rec, err := NewRecord("Alice")
		require.NoError(t, err)
		require.NoError(t, rec.AddGrade("  Math ", 90))
		assert.Equal(t, []int{90}, rec.Grades("Math"))
		assert.Equal(t, []string{"Math"}, rec.GradedSubjects())
	})

	t.Run("rejects an empty subject", func(t *testing.T) {
		rec, err := NewRecord("Alice")
		require.NoError(t, err)
		assert.ErrorIs(t, rec.AddGrade("  ", 90), ErrEmptySubject)
	})

	t.Run("sets default weight only when absent", func(t *testing.T) {
		rec, err := NewRecord("Alice")
		require.NoError(t, err)
		require.NoError(t, rec.SetSubjectWeight("Math", 2))
		require.NoError(t, rec.AddGrade("Math", 90))
		assert.Equal(t, 2.0, rec.SubjectWeight("Math"))

		require.NoError(t, rec.AddGrade("Art", 60))
		assert.True(t, rec.HasWeight("Art"))
		assert.Equal(t, DefaultWeight, rec.SubjectWeight("Art"))
	})
}

func TestSetSubjectWeight(t *testing.T) {
	rec, err := NewRecord("Alice")
	require.NoError(t, err)
	require.NoError(t, rec.SetSubjectWeight("Math", 1.5))

	for _, w := range []float64{0.01, 1, 2.5, 100} {
		require.NoError(t, rec.SetSubjectWeight("Math", w))
		assert.Equal(t, w, rec.SubjectWeight("Math"))
	}

	require.NoError(t, rec.SetSubjectWeight("Math", 1.5))
	for _, w := range []float64{0, -0.5, -10} {
		err := rec.SetSubjectWeight("Math", w)
		assert.ErrorIs(t, err, ErrInvalidWeight, "weight %v should be rejected", w)
	}
	assert.Equal(t, 1.5, rec.SubjectWeight("Math"), "prior weight must be unchanged")

	assert.ErrorIs(t, rec.SetSubjectWeight(" ", 1), ErrEmptySubject)
}

func TestSubjectStatistics(t *testing.T) {
	rec := newAlice(t)

	avg, ok := rec.SubjectAverage("Math")
	require.True(t, ok)
	assert.InDelta(t, 91.6667, avg, 0.001)

	hi, ok := rec.SubjectHighest("Math")
	require.True(t, ok)
	assert.Equal(t, 100, hi)

	lo, ok := rec.SubjectLowest("Math")
	require.True(t, ok)
	assert.Equal(t, 85, lo)

	_, ok = rec.SubjectAverage("History")
	assert.False(t, ok)
	_, ok = rec.SubjectHighest("History")
	assert.False(t, ok)
	_, ok = rec.SubjectLowest("History")
	assert.False(t, ok)
}

func TestOverallAveragePoolsGrades(t *testing.T) {
	rec := newAlice(t)

	overall, ok := rec.OverallAverage()
	require.True(t, ok)
	assert.InDelta(t, 86.25, overall, 1e-9)

	mathAvg, _ := rec.SubjectAverage("Math")
	sciAvg, _ := rec.SubjectAverage("Science")
	assert.NotEqual(t, (mathAvg+sciAvg)/2, overall, "overall average must pool grades, not average subject averages")

	empty, err := NewRecord("Bob")
	require.NoError(t, err)
	_, ok = empty.OverallAverage()
	assert.False(t, ok)
}

func TestWeightedAverage(t *testing.T) {
	rec := newAlice(t)

	weighted, ok := rec.WeightedAverage()
	require.True(t, ok)
	want := (91.0+2.0/3.0)*1.5 + 70*1.0
	assert.InDelta(t, want/2.5, weighted, 1e-9)
	assert.InDelta(t, 83.0, weighted, 0.01)

	// A weight without grades contributes to neither sum.
	require.NoError(t, rec.SetSubjectWeight("History", 10))
	again, ok := rec.WeightedAverage()
	require.True(t, ok)
	assert.InDelta(t, weighted, again, 1e-12)

	weightOnly, err := NewRecord("Bob")
	require.NoError(t, err)
	require.NoError(t, weightOnly.SetSubjectWeight("Math", 2))
	_, ok = weightOnly.WeightedAverage()
	assert.False(t, ok)
}

func TestSubjectViews(t *testing.T) {
	rec := newAlice(t)
	require.NoError(t, rec.SetSubjectWeight("Zoology", 3))
	require.NoError(t, rec.SetSubjectWeight("Art", 2))

	assert.Equal(t, []string{"Math", "Science"}, rec.GradedSubjects())
	assert.Equal(t, rec.GradedSubjects(), rec.Subjects())
	assert.Equal(t, []string{"Math", "Science", "Art", "Zoology"}, rec.AllWeightedSubjects())
	assert.Equal(t, 3.0, rec.SubjectWeight("Zoology"))
	assert.Equal(t, 4, rec.GradeCount())

	// Returned slices are copies.
	subjects := rec.GradedSubjects()
	subjects[0] = "Changed"
	grades := rec.Grades("Math")
	grades[0] = -1
	assert.Equal(t, []string{"Math", "Science"}, rec.GradedSubjects())
	assert.Equal(t, []int{90, 85, 100}, rec.Grades("Math"))
}

func TestSummaryLine(t *testing.T) {
	rec := newAlice(t)
	assert.Equal(t, "Grades: [90, 85, 100] | avg: 91.67 | high: 100 | low: 85 | weight: 1.50", rec.SummaryLine("Math"))
	assert.Equal(t, "Grades: [70] | avg: 70.00 | high: 70 | low: 70 | weight: 1.00", rec.SummaryLine("Science"))

	require.NoError(t, rec.SetSubjectWeight("History", 2))
	assert.Equal(t, "Grades: [] | avg: - | high: - | low: - | weight: 2.00", rec.SummaryLine("History"))
	assert.Equal(t, "Grades: [] | avg: - | high: - | low: - | weight: 1.00", rec.SummaryLine("Unknown"))
}
