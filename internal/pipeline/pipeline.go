// Package pipeline orchestrates a consolidation run: resolve paths, load the
// reference inputs, parse every RIPS file through a worker pool, link
// hospitalization stays, consolidate, and write the artifacts.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/ripsload/internal/affiliation"
	"github.com/gyeh/ripsload/internal/catalog"
	"github.com/gyeh/ripsload/internal/config"
	"github.com/gyeh/ripsload/internal/consolidate"
	"github.com/gyeh/ripsload/internal/linker"
	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/paths"
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

// Run executes the full consolidation pipeline: resolve → load references →
// parse → link → consolidate → write.
func Run(ctx context.Context, log zerolog.Logger, cfg *config.Config) (*model.RunSummary, error) {
	totalStart := time.Now()

	summary := &model.RunSummary{
		RunID:         uuid.New().String(),
		RecordsByType: make(map[string]int),
	}
	log = log.With().Str("run_id", summary.RunID).Logger()

	// Phase 1: resolve the directory layout
	log.Info().Str("base", cfg.BaseDir).Msg("resolving run layout")
	p, err := paths.Resolve(cfg.BaseDir, cfg.OutDir, cfg.AffiliationDir, cfg.CatalogFile)
	if err != nil {
		return nil, &PipelineError{Phase: "resolve", Err: err}
	}

	// Phase 2: reference inputs; both degrade to empty rather than failing
	cups, err := catalog.Load(p.CatalogFile)
	if err != nil {
		log.Warn().Err(err).Msg("catalog unavailable, service descriptions will be missing")
		cups = catalog.Table{}
	} else {
		log.Info().Int("codes", len(cups)).Msg("catalog loaded")
	}

	aff, err := affiliation.Load(p.AffiliationDir, log)
	if err != nil {
		log.Warn().Err(err).Msg("affiliation data unavailable, geography will be unresolved")
		aff = nil
	} else {
		log.Info().Int("files", aff.Files).Int("keys", aff.Len()).Msg("affiliation data loaded")
		summary.AffiliationKeys = aff.Len()
	}

	// Phase 3: parse all input files through the worker pool
	log.Info().Int("workers", cfg.Workers).Msg("starting parse")
	parseStart := time.Now()
	byType, stays, err := parseAll(ctx, log, cfg, p, cups, summary)
	if err != nil {
		return nil, &PipelineError{Phase: "parse", Err: err}
	}
	summary.DurationParse = time.Since(parseStart)

	// Phase 4: hospitalization linkage. The parse barrier has passed; every
	// record set is complete here.
	linkStart := time.Now()
	ix := linker.NewIndex(stays)
	summary.HospitalStays = ix.Stays()
	ix.Annotate(byType["AC"])
	ix.Annotate(byType["AP"])
	log.Info().
		Int("stays", ix.Stays()).
		Int("consultas", len(byType["AC"])).
		Int("procedimientos", len(byType["AP"])).
		Str("duration", time.Since(linkStart).String()).
		Msg("hospitalization linkage complete")
	summary.DurationLink = time.Since(linkStart)

	// Phase 5: consolidate
	consStart := time.Now()
	rows := consolidate.Run(byType, aff)
	summary.ConsolidatedRows = len(rows)
	for i := range rows {
		if rows[i].Municipio == affiliation.Unaffiliated {
			summary.Unaffiliated++
		}
	}
	log.Info().
		Int("rows", len(rows)).
		Int("unaffiliated", summary.Unaffiliated).
		Str("duration", time.Since(consStart).String()).
		Msg("consolidation complete")
	summary.DurationConsolidate = time.Since(consStart)

	// Phase 6: write artifacts; failures here abort the run
	writeStart := time.Now()
	if err := writeOutputs(log, cfg, p, rows, aff); err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}
	summary.DurationWrite = time.Since(writeStart)

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int("files", summary.FilesProcessed).
		Int("files_failed", summary.FilesFailed).
		Int("consolidated_rows", summary.ConsolidatedRows).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("consolidation pipeline complete")

	return summary, nil
}
