package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gradebook/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outOfRangeRoster = `name,subject,grades,weight
Alice,Math,90;120;-5,1.00
Bob,History,60,1.00
`

func TestCheckRoster(t *testing.T) {
	ctx := context.Background()

	t.Run("clean roster", func(t *testing.T) {
		violations, changed, err := CheckRoster(ctx, writeRoster(t, sampleRosterText), false)
		require.NoError(t, err)
		assert.Empty(t, violations)
		assert.Zero(t, changed)
	})

	t.Run("report only", func(t *testing.T) {
		cfg := writeRoster(t, outOfRangeRoster)
		violations, changed, err := CheckRoster(ctx, cfg, false)
		require.NoError(t, err)
		require.Len(t, violations, 2)
		assert.Equal(t, schema.Violation{Student: "Alice", Subject: "Math", Reason: "grade #2 is 120, outside 0-100"}, violations[0])
		assert.Zero(t, changed)
		assert.Equal(t, outOfRangeRoster, readRoster(t, cfg))
	})

	t.Run("repair", func(t *testing.T) {
		cfg := writeRoster(t, outOfRangeRoster)
		violations, changed, err := CheckRoster(ctx, cfg, true)
		require.NoError(t, err)
		assert.Len(t, violations, 2)
		assert.Equal(t, 2, changed)
		assert.Contains(t, readRoster(t, cfg), "Alice,Math,90;100;0,1.00")
	})

	t.Run("strict config does not block the check", func(t *testing.T) {
		cfg := writeRoster(t, outOfRangeRoster)
		cfg.Strict = true
		violations, _, err := CheckRoster(ctx, cfg, false)
		require.NoError(t, err)
		assert.Len(t, violations, 2)
		assert.True(t, cfg.Strict)
	})
}

func TestExecuteCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("violations fail", func(t *testing.T) {
		cfg := writeRoster(t, outOfRangeRoster)
		cfg.Output = schema.CSVOut
		cfg.OutputFile = filepath.Join(t.TempDir(), "check.csv")

		err := ExecuteCheck(ctx, &bytes.Buffer{}, cfg, false)
		require.ErrorIs(t, err, ErrViolations)
		assert.Contains(t, err.Error(), "2 found")

		content, readErr := os.ReadFile(cfg.OutputFile)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "Alice,Math,\"grade #3 is -5, outside 0-100\"")
	})

	t.Run("repair succeeds", func(t *testing.T) {
		cfg := writeRoster(t, outOfRangeRoster)
		cfg.OutputFile = filepath.Join(t.TempDir(), "check.txt")

		var buf bytes.Buffer
		require.NoError(t, ExecuteCheck(ctx, &buf, cfg, true))
		assert.Contains(t, buf.String(), "🔧 Repaired 2 values")

		// A second pass is clean
		require.NoError(t, ExecuteCheck(ctx, &buf, cfg, false))
	})
}
