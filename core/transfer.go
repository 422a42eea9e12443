package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/gradebook/core/codec"
	"github.com/huangsam/gradebook/core/record"
	"github.com/huangsam/gradebook/internal/contract"
)

// ImportFiles decodes each file and merges it into the roster file, in order.
// Unlike the roster file itself, an import source must exist.
func ImportFiles(ctx context.Context, cfg *contract.Config, files []string) (codec.DecodeStats, error) {
	var total codec.DecodeStats
	err := mutateRoster(ctx, cfg, func(r *record.Roster) error {
		for _, file := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := os.Stat(file); err != nil {
				return fmt.Errorf("%w: %w", codec.ErrIOFailure, err)
			}
			stats, err := codec.LoadFileInto(r, file)
			if err != nil {
				return err
			}
			if stats.Lossy() && !isQuiet(ctx) {
				contract.LogWarn("Lossy import of "+file, statsError(stats))
			}
			total.Add(stats)
		}
		return nil
	})
	return total, err
}

// ExportFile encodes the roster into another CSV file.
func ExportFile(ctx context.Context, cfg *contract.Config, path string) (int, error) {
	roster, err := LoadRoster(ctx, cfg)
	if err != nil {
		return 0, err
	}
	if err := codec.SaveFile(path, roster.Records()); err != nil {
		return 0, err
	}
	return roster.Len(), nil
}

// ExecuteImport is the entry point for 'import'.
func ExecuteImport(ctx context.Context, w io.Writer, cfg *contract.Config, files []string) error {
	stats, err := ImportFiles(ctx, cfg, files)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Imported %d rows from %d files into %s (%d skipped)\n",
		stats.RowsRead-stats.RowsSkipped, len(files), cfg.RosterFile, stats.RowsSkipped)
	return nil
}

// ExecuteExport is the entry point for 'export'.
func ExecuteExport(ctx context.Context, w io.Writer, cfg *contract.Config, path string) error {
	n, err := ExportFile(ctx, cfg, path)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "💾 Exported %d students to %s\n", n, path)
	return nil
}
