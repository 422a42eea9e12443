package core

import (
	"sort"

	"github.com/huangsam/gradebook/schema"
)

// rankSummaries sorts summaries by weighted average in descending order.
// Students without grades go last; ties keep roster order.
func rankSummaries(summaries []schema.StudentSummary) []schema.StudentSummary {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].WeightedAverage, summaries[j].WeightedAverage
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return *a > *b
	})
	return summaries
}
