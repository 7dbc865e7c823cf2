package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gyeh/ripsload/internal/catalog"
	"github.com/gyeh/ripsload/internal/config"
	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/normalize"
	"github.com/gyeh/ripsload/internal/paths"
	"github.com/gyeh/ripsload/internal/ripsread"
	"github.com/gyeh/ripsload/internal/schema"
)

// fileJob is one input file bound to its record type.
type fileJob struct {
	ft   model.FileType
	path string
}

// fileResult carries a parsed file across the pool barrier. Exactly one of
// records or stays is populated, depending on the type.
type fileResult struct {
	records []model.Record
	stays   []model.Hospitalization
	stats   *ripsread.Stats
	err     error
}

// parseAll runs every input file through repair → tokenize → map → normalize
// on a bounded worker pool. Results are reassembled in sorted-file order per
// type after the barrier so downstream first-wins reductions stay
// deterministic regardless of scheduling. A file that fails contributes zero
// records without failing the run.
func parseAll(ctx context.Context, log zerolog.Logger, cfg *config.Config, p *paths.Paths, cups catalog.Table, summary *model.RunSummary) (map[string][]model.Record, []model.Hospitalization, error) {
	jobs, err := listJobs(cfg, p, log)
	if err != nil {
		return nil, nil, err
	}

	results := make([]fileResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range jobs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = parseFile(jobs[i], cups)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	byType := make(map[string][]model.Record)
	var stays []model.Hospitalization
	for i, job := range jobs {
		res := &results[i]
		name := filepath.Base(job.path)
		if res.err != nil {
			summary.FilesFailed++
			log.Error().Err(res.err).Str("file", name).Msg("file skipped")
			continue
		}

		summary.FilesProcessed++
		summary.LinesRepaired += int64(res.stats.LinesRepaired)
		summary.RowsDropped += int64(res.stats.RowsDropped)

		n := len(res.records)
		if job.ft.Code == "AH" {
			n = len(res.stays)
			stays = append(stays, res.stays...)
		} else {
			byType[job.ft.Code] = append(byType[job.ft.Code], res.records...)
		}
		summary.RecordsByType[job.ft.Code] += n

		ev := log.Info().
			Str("file", name).
			Str("tipo", job.ft.Code).
			Int("records", n).
			Str("delimiter", res.stats.Delimiter)
		if res.stats.LinesRepaired > 0 {
			ev = ev.Int("lines_repaired", res.stats.LinesRepaired)
		}
		if res.stats.RowsDropped > 0 {
			ev = ev.Int("rows_dropped", res.stats.RowsDropped)
		}
		ev.Msg("file parsed")
	}
	return byType, stays, nil
}

// parseFile processes one file end to end. The service-code backfill table
// lives inside ApplyServiceCodes, scoped to this file only.
func parseFile(job fileJob, cups catalog.Table) fileResult {
	rows, stats, err := ripsread.ReadFile(job.path, len(job.ft.Columns))
	if err != nil {
		return fileResult{err: err}
	}

	if job.ft.Code == "AH" {
		return fileResult{stays: schema.MapHospitalizations(rows, job.path), stats: stats}
	}

	records := schema.MapRecords(rows, job.ft, job.path)
	normalize.ApplyServiceCodes(records, job.ft, cups)
	normalize.AssignKeys(records)
	return fileResult{records: records, stats: stats}
}

// listJobs enumerates the txt inputs per enabled type, in type order then
// file-name order.
func listJobs(cfg *config.Config, p *paths.Paths, log zerolog.Logger) ([]fileJob, error) {
	enabled := make(map[string]bool, len(cfg.Types))
	for _, code := range cfg.Types {
		enabled[code] = true
	}

	var jobs []fileJob
	for _, ft := range model.AllFileTypes {
		if !enabled[ft.Code] {
			continue
		}
		entries, err := os.ReadDir(p.TypeDir(ft.Code))
		if err != nil {
			return nil, err
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		if len(names) == 0 {
			log.Info().Str("tipo", ft.Code).Msg("no input files found")
			continue
		}
		for _, name := range names {
			jobs = append(jobs, fileJob{ft: ft, path: filepath.Join(p.TypeDir(ft.Code), name)})
		}
	}
	return jobs, nil
}
