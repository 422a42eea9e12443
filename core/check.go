package core

import (
	"context"
	"fmt"
	"io"

	"github.com/huangsam/gradebook/core/record"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/outwriter"
	"github.com/huangsam/gradebook/schema"
)

// CheckRoster runs the strict validation pass over the roster file. With repair
// set, out-of-range values are fixed and the file is rewritten. It returns the
// violations found before any repair and the number of values changed.
func CheckRoster(ctx context.Context, cfg *contract.Config, repair bool) ([]schema.Violation, int, error) {
	lenient := *cfg
	lenient.Strict = false // the check itself reports what strict loading would reject

	roster, err := LoadRoster(ctx, &lenient)
	if err != nil {
		return nil, 0, err
	}
	violations := record.Validate(roster)
	if !repair || len(violations) == 0 {
		return violations, 0, nil
	}
	changed := record.Repair(roster)
	if err := SaveRoster(cfg, roster); err != nil {
		return violations, 0, err
	}
	return violations, changed, nil
}

// ExecuteCheck is the entry point for 'check'. It fails with ErrViolations
// when violations remain, so CI can gate on the exit code.
func ExecuteCheck(ctx context.Context, w io.Writer, cfg *contract.Config, repair bool) error {
	violations, changed, err := CheckRoster(ctx, cfg, repair)
	if err != nil {
		return err
	}
	if err := outwriter.NewOutWriter().WriteViolations(violations, cfg); err != nil {
		return err
	}
	if repair && changed > 0 {
		_, _ = fmt.Fprintf(w, "🔧 Repaired %d values in %s\n", changed, cfg.RosterFile)
		return nil
	}
	if len(violations) > 0 {
		return fmt.Errorf("%w: %d found", ErrViolations, len(violations))
	}
	return nil
}
