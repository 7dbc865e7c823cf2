package pipeline

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gyeh/ripsload/internal/affiliation"
	"github.com/gyeh/ripsload/internal/config"
	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/paths"
	"github.com/gyeh/ripsload/internal/xlsxwrite"
)

const sheetName = "Consolidado"

// writeOutputs persists the consolidated artifact, the affiliation summary,
// and the optional parquet export.
func writeOutputs(log zerolog.Logger, cfg *config.Config, p *paths.Paths, rows []model.ConsolidatedRow, aff *affiliation.Data) error {
	hasDep := aff != nil && aff.HasDepartamento

	headers := append([]string(nil), model.ConsolidatedColumns...)
	if hasDep {
		headers = append(headers, "Departamento")
	}
	cells := make([][]string, len(rows))
	for i := range rows {
		cells[i] = consolidatedCells(&rows[i], hasDep)
	}

	dest := p.ConsolidatedFile()
	if err := xlsxwrite.SaveTable(dest, sheetName, headers, cells); err != nil {
		return err
	}
	log.Info().Str("path", dest).Int("rows", len(rows)).Msg("consolidated artifact written")

	if aff != nil {
		if err := writeAffiliationSummary(log, p, aff, hasDep); err != nil {
			return err
		}
	}

	if cfg.WriteParquet {
		dest := p.ParquetFile()
		if err := xlsxwrite.SaveParquet(dest, rows); err != nil {
			return err
		}
		log.Info().Str("path", dest).Msg("parquet export written")
	}
	return nil
}

func writeAffiliationSummary(log zerolog.Logger, p *paths.Paths, aff *affiliation.Data, hasDep bool) error {
	headers := []string{"Periodo"}
	if hasDep {
		headers = append(headers, "Departamento")
	}
	headers = append(headers, "Municipio", "Cantidad")

	cells := make([][]string, 0, len(aff.Summary))
	for _, s := range aff.Summary {
		row := []string{s.Periodo}
		if hasDep {
			row = append(row, derefOrEmpty(s.Departamento))
		}
		row = append(row, s.Municipio, strconv.Itoa(s.Cantidad))
		cells = append(cells, row)
	}

	dest := p.AffiliationSummaryFile()
	if err := xlsxwrite.SaveTable(dest, sheetName, headers, cells); err != nil {
		return err
	}
	log.Info().Str("path", dest).Int("rows", len(cells)).Msg("affiliation summary written")
	return nil
}

// consolidatedCells renders one row in the fixed output column order.
func consolidatedCells(r *model.ConsolidatedRow, hasDep bool) []string {
	cells := []string{
		r.Key,
		r.Key2,
		r.KeyIps,
		r.Archivo,
		r.Periodo,
		r.CodIPS,
		r.Identificacion,
		derefOrEmpty(r.Fecha),
		r.Factura,
		derefOrEmpty(r.CodServicio),
		derefOrEmpty(r.NombreServicio),
		r.ValorText,
		strconv.FormatFloat(r.Cantidad, 'f', -1, 64),
		derefOrEmpty(r.CIE10),
		strconv.Itoa(int(r.DiasInternacion)),
		r.Municipio,
	}
	if hasDep {
		cells = append(cells, derefOrEmpty(r.Departamento))
	}
	return cells
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
