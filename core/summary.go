package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gradebook/core/record"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/outwriter"
	"github.com/huangsam/gradebook/schema"
)

// GetSummaryResults loads the roster and reduces every student to a summary row,
// ranked by weighted average.
// When a history store is configured, the run and every row are recorded.
func GetSummaryResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.StudentSummary, time.Duration, error) {
	start := time.Now()

	// --- 0. Begin History Tracking (if configured) ---
	var runID int64
	historyStore := historyStoreOf(mgr)
	if historyStore != nil {
		configParams := map[string]any{
			"file":      cfg.RosterFile,
			"output":    string(cfg.Output),
			"precision": cfg.Precision,
			"strict":    cfg.Strict,
		}
		var err error
		runID, err = historyStore.BeginRun("summary", start, configParams)
		if err != nil {
			logTrackingError(ctx, "BeginRun", err)
		}
	}

	// --- 1. Load and Summarize ---
	roster, err := LoadRoster(ctx, cfg)
	if err != nil {
		if historyStore != nil && runID > 0 {
			if endErr := historyStore.EndRun(runID, time.Now(), 0); endErr != nil {
				logTrackingError(ctx, "EndRun", endErr)
			}
		}
		return nil, 0, err
	}
	summaries := rankSummaries(record.Summarize(roster))

	// --- 2. Record and End History Tracking ---
	if historyStore != nil && runID > 0 {
		recordedAt := time.Now()
		for _, s := range summaries {
			if err := historyStore.RecordStudentSummary(runID, recordedAt, s); err != nil {
				logTrackingError(ctx, "RecordStudentSummary for "+s.Name, err)
			}
		}
		if err := historyStore.EndRun(runID, time.Now(), len(summaries)); err != nil {
			logTrackingError(ctx, "EndRun", err)
		}
	}

	return summaries, time.Since(start), nil
}

// ExecuteSummary is the entry point for 'summary'.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	summaries, duration, err := GetSummaryResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteSummary(summaries, cfg, duration)
}

// historyStoreOf returns the history store of mgr, or nil when tracking is off.
func historyStoreOf(mgr contract.StoreManager) contract.HistoryStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetHistoryStore()
}

// logTrackingError is a helper to log history tracking errors consistently.
func logTrackingError(ctx context.Context, operation string, err error) {
	if isQuiet(ctx) {
		return
	}
	contract.LogWarn(fmt.Sprintf("History tracking failed for %s", operation), err)
}
