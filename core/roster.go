// Package core has the gradebook workflows shared by the CLI and the MCP server.
package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/gradebook/core/codec"
	"github.com/huangsam/gradebook/core/record"
	"github.com/huangsam/gradebook/internal/contract"
)

// ErrViolations is returned when a roster breaks the grade or weight invariants.
var ErrViolations = errors.New("roster has invalid values")

// LoadRoster decodes the configured roster file. A missing file is an empty roster.
// Lossy loads are reported as warnings. With cfg.Strict any violation is an error.
func LoadRoster(ctx context.Context, cfg *contract.Config) (*record.Roster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	roster, stats, err := codec.LoadFile(cfg.RosterFile)
	if err != nil {
		return nil, err
	}
	if stats.Lossy() && !isQuiet(ctx) {
		contract.LogWarn("Lossy load of "+cfg.RosterFile, statsError(stats))
	}
	if cfg.Strict {
		if violations := record.Validate(roster); len(violations) > 0 {
			first := violations[0]
			return nil, fmt.Errorf("%w: %d found, first is %s/%s: %s",
				ErrViolations, len(violations), first.Student, first.Subject, first.Reason)
		}
	}
	return roster, nil
}

// SaveRoster writes the roster back to the configured file.
func SaveRoster(cfg *contract.Config, roster *record.Roster) error {
	return codec.SaveFile(cfg.RosterFile, roster.Records())
}

// mutateRoster loads the roster, applies fn and saves the result when fn succeeds.
func mutateRoster(ctx context.Context, cfg *contract.Config, fn func(*record.Roster) error) error {
	roster, err := LoadRoster(ctx, cfg)
	if err != nil {
		return err
	}
	if err := fn(roster); err != nil {
		return err
	}
	return SaveRoster(cfg, roster)
}

// statsError describes what a lossy decode dropped or defaulted.
func statsError(stats codec.DecodeStats) error {
	return fmt.Errorf("%d of %d rows skipped, %d grade tokens skipped, %d weights defaulted",
		stats.RowsSkipped, stats.RowsRead, stats.GradeTokensSkipped, stats.WeightsDefaulted)
}
