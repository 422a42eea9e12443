package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAndRepair(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.MergeRow("Alice", "Math", []int{90, 150, -5}, 1.0))
	require.NoError(t, r.MergeRow("Bob", "Art", []int{70}, 1.0))

	// Force a bad weight through the raw path.
	bob, _ := r.Get("Bob")
	bob.setWeightRaw("Art", -2)

	violations := Validate(r)
	require.Len(t, violations, 3)
	assert.Equal(t, "Alice", violations[0].Student)
	assert.Equal(t, "Math", violations[0].Subject)
	assert.Contains(t, violations[0].Reason, "150")
	assert.Contains(t, violations[1].Reason, "-5")
	assert.Equal(t, "Bob", violations[2].Student)
	assert.Contains(t, violations[2].Reason, "weight")

	changed := Repair(r)
	assert.Equal(t, 3, changed)
	alice, _ := r.Get("Alice")
	assert.Equal(t, []int{90, 100, 0}, alice.Grades("Math"))
	assert.Equal(t, DefaultWeight, bob.SubjectWeight("Art"))
	assert.Empty(t, Validate(r))
	assert.Zero(t, Repair(r))
}

func TestValidateCleanRoster(t *testing.T) {
	r := NewRoster()
	require.NoError(t, r.Insert(newAlice(t)))
	assert.Empty(t, Validate(r))
}
