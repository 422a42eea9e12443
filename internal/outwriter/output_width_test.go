package outwriter

import (
	"testing"

	"github.com/huangsam/gradebook/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestGetMaxTableNameWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{"narrow terminal clamps to minimum", 60, 12},
		{"exact fit", 82, 12},
		{"medium terminal", 100, 30},
		{"wide terminal clamps to maximum", 300, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetMaxTableNameWidth(&contract.Config{Width: tt.width}))
		})
	}
}

func TestGetMaxTableNameWidthDetected(t *testing.T) {
	// Under test there is no terminal, so detection falls back to 80 columns
	width := GetMaxTableNameWidth(&contract.Config{})
	assert.GreaterOrEqual(t, width, 12)
	assert.LessOrEqual(t, width, 60)
}
