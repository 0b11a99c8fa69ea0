// Package pipeline wires the reconciliation stages together: load →
// clean → reject → charge blocks → analyze → export. Every stage
// consumes one in-memory table and produces a new one; nothing is
// shared or mutated across stages.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dkrause/famrecon/internal/analyze"
	"github.com/dkrause/famrecon/internal/chargeblock"
	"github.com/dkrause/famrecon/internal/clean"
	"github.com/dkrause/famrecon/internal/config"
	"github.com/dkrause/famrecon/internal/kvlookup"
	"github.com/dkrause/famrecon/internal/logging"
	"github.com/dkrause/famrecon/internal/model"
	"github.com/dkrause/famrecon/internal/reject"
	"github.com/dkrause/famrecon/internal/workbook"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full reconciliation pipeline and writes the result
// workbook. Structural failures abort before any output is written.
func Run(log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()
	summary := &model.RunSummary{
		RunID:      uuid.NewString(),
		InputPath:  cfg.InputPath,
		OutputPath: cfg.OutputPath,
	}
	log = logging.WithRun(log, summary.RunID)

	// Phase 1: Load
	log.Info().Str("file", cfg.InputPath).Msg("loading input workbook")
	loadStart := time.Now()

	rawFAM, rawTM, err := workbook.ReadInput(cfg.InputPath, cfg.FAMSheet, cfg.TMSheet)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}

	var kv *kvlookup.Resolver
	if cfg.KVLookupPath != "" {
		kv, err = kvlookup.Load(cfg.KVLookupPath)
		if err != nil {
			return nil, &PipelineError{Phase: "load", Err: err}
		}
	} else {
		log.Warn().Msg("no kv lookup file configured, resolving districts by name only")
		kv = kvlookup.New(nil)
	}

	summary.FAMRowsRead = rawFAM.Len()
	summary.TMRowsRead = rawTM.Len()
	summary.DurationLoad = time.Since(loadStart)
	log.Info().
		Int("fam_rows", rawFAM.Len()).
		Int("tm_rows", rawTM.Len()).
		Str("duration", summary.DurationLoad.String()).
		Msg("input loaded")

	// Phase 2: Clean
	cleanStart := time.Now()
	now := time.Now()
	famClean := clean.FAM(rawFAM, kv, now, cfg.DateWindowYears)
	tmClean := clean.TM(rawTM)
	summary.DurationClean = time.Since(cleanStart)
	log.Info().Str("duration", summary.DurationClean.String()).Msg("normalization complete")

	// Phase 3: Reject
	rejectStart := time.Now()

	famBuckets := reject.NewBuckets()
	activeFAM := reject.Apply(rawFAM, famClean, reject.FAMRules(), false, famBuckets)

	tmBuckets := reject.NewBuckets()
	activeTM := reject.Apply(rawTM, tmClean, reject.TMRawRules(), true, tmBuckets)
	activeTM = reject.Apply(rawTM, activeTM, reject.TMRules(), false, tmBuckets)

	summary.FAMRowsRejected = famBuckets.Total()
	summary.TMRowsRejected = tmBuckets.Total()
	summary.DurationReject = time.Since(rejectStart)
	log.Info().
		Int("fam_rejected", famBuckets.Total()).
		Int("tm_rejected", tmBuckets.Total()).
		Str("duration", summary.DurationReject.String()).
		Msg("rejection complete")

	// Phase 4: Charge blocks
	activeTM = chargeblock.Assign(activeTM)
	summary.FAMRowsActive = activeFAM.Len()
	summary.TMRowsActive = activeTM.Len()
	log.Info().
		Int("fam_active", activeFAM.Len()).
		Int("tm_active", activeTM.Len()).
		Msg("charge blocks assigned")

	// Phase 5: Analyze
	analyzeStart := time.Now()
	results := analyze.Run(rawFAM, activeFAM, rawTM, activeTM, "vo-datum", cfg.PriceTolerance)
	summary.PriceType = results.PriceType
	summary.PriceConsistency = results.PriceConsistency
	summary.DateFormat = results.DateFormat
	summary.DurationAnalyze = time.Since(analyzeStart)
	log.Info().
		Str("price_type", results.PriceType).
		Str("price_consistency", results.PriceConsistency).
		Str("date_format", results.DateFormat).
		Str("duration", summary.DurationAnalyze.String()).
		Msg("analysis complete")

	// Phase 6: Export
	exportStart := time.Now()
	err = workbook.Write(cfg.OutputPath, workbook.Result{
		ActiveFAM:   activeFAM,
		ActiveTM:    activeTM,
		Notes:       results.Notes,
		RejectedFAM: famBuckets,
		RejectedTM:  tmBuckets,
	})
	if err != nil {
		return nil, &PipelineError{Phase: "export", Err: err}
	}
	summary.DurationExport = time.Since(exportStart)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int("fam_active", summary.FAMRowsActive).
		Int("fam_rejected", summary.FAMRowsRejected).
		Int("tm_active", summary.TMRowsActive).
		Int("tm_rejected", summary.TMRowsRejected).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("reconciliation complete")

	return summary, nil
}
