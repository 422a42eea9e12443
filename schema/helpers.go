package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Float64Ptr returns a pointer to v.
func Float64Ptr(v float64) *float64 {
	return &v
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}

// FormatOptionalFloat renders v with the given precision, or the placeholder when v is nil.
func FormatOptionalFloat(v *float64, precision int) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.*f", precision, *v)
}

// FormatOptionalInt renders v, or the placeholder when v is nil.
func FormatOptionalInt(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}

// FormatGrades renders grades as a bracketed, comma-separated list such as "[90, 85]".
func FormatGrades(grades []int) string {
	parts := make([]string, len(grades))
	for i, g := range grades {
		parts[i] = strconv.Itoa(g)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// BandFor maps an average grade to a coarse band. A nil average has no band.
func BandFor(avg *float64) GradeBand {
	if avg == nil {
		return NoneBand
	}
	switch v := *avg; {
	case v >= 90:
		return ExcellentBand
	case v >= 75:
		return GoodBand
	case v >= 50:
		return PassBand
	default:
		return FailBand
	}
}
