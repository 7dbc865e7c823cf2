// Package schema maps positional RIPS rows to named records, one mapping per
// record type.
package schema

import (
	"path/filepath"
	"strings"

	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/normalize"
)

// FileMeta derives the record-type code and billing period token from a RIPS
// file name: the first two characters name the type, everything up to the
// extension is the period.
func FileMeta(path string) (archivo, periodo string) {
	name := filepath.Base(path)
	if len(name) < 2 {
		return name, ""
	}
	archivo = name[:2]
	if len(name) > 6 {
		periodo = name[2 : len(name)-4]
	}
	return archivo, periodo
}

// field returns the trimmed, quote-stripped value at position idx, or nil
// when the column is missing or empty.
func field(row []string, idx int) *string {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	v := strings.TrimSpace(strings.ReplaceAll(row[idx], `"`, ""))
	if v == "" {
		return nil
	}
	return &v
}

func str(row []string, idx int) string {
	if v := field(row, idx); v != nil {
		return *v
	}
	return ""
}

// MapRecords maps a positional table to normalized records for the
// consolidatable types (AC, AP, AM, AT, AN). Rows are truncated or
// null-padded to the type's header list: extra trailing columns are dropped
// and missing trailing columns become nil.
func MapRecords(rows [][]string, ft model.FileType, path string) []model.Record {
	archivo, periodo := FileMeta(path)
	name := filepath.Base(path)
	col := columnIndex(ft)

	records := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		if len(row) > len(ft.Columns) {
			row = row[:len(ft.Columns)]
		}
		r := model.Record{
			Archivo:    archivo,
			Periodo:    periodo,
			SourceFile: name,
			SourceRow:  i,

			Factura:        str(row, col["Factura"]),
			CodIPS:         str(row, col["Cod_IPS"]),
			TipoID:         str(row, col["Tipo_id"]),
			Identificacion: normalize.CleanIdentification(str(row, col["Identificacion"])),
			Fecha:          field(row, col["Fecha"]),
			Autorizacion:   str(row, col["Autorizacion"]),
			CodServicio:    field(row, col["cod_servicio"]),
			NombreServicio: field(row, col["Nombre_servicio"]),
			Cantidad:       field(row, col["Cantidad"]),
			Valor:          field(row, col["Valor"]),
		}
		// Principal diagnosis feeds CIE10 for consultation and procedure rows only.
		if ft.UsesCatalog {
			r.CIE10 = field(row, col["dx_principal"])
		}
		records = append(records, r)
	}
	return records
}

// MapHospitalizations maps the fixed 19-column AH layout, which interleaves
// non-business columns among the admission data. Shorter rows degrade to the
// safely identifiable subset rather than failing.
func MapHospitalizations(rows [][]string, path string) []model.Hospitalization {
	archivo, periodo := FileMeta(path)
	name := filepath.Base(path)

	hs := make([]model.Hospitalization, 0, len(rows))
	for i, row := range rows {
		h := model.Hospitalization{
			Archivo:    archivo,
			Periodo:    periodo,
			SourceFile: name,
			SourceRow:  i,

			Factura:        str(row, 0),
			CodIPS:         str(row, 1),
			TipoID:         str(row, 2),
			Identificacion: normalize.CleanIdentification(str(row, 3)),
			FechaIngreso:   field(row, 5),
			Autorizacion:   str(row, 8),
			DxPrincipal:    field(row, 9),
			DxRelacionado1: field(row, 10),
			DxRelacionado2: field(row, 11),
			FechaSalida:    field(row, 17),
		}
		if len(row) >= 19 {
			h.DxRelacionado3 = field(row, 12)
			h.DxRelacionado4 = field(row, 13)
			h.DxRelacionado5 = field(row, 14)
		}
		h.Key = normalize.BuildKey(h.Factura, h.CodIPS, h.Identificacion, h.Periodo, h.Autorizacion)
		hs = append(hs, h)
	}
	return hs
}

// columnIndex maps the type's header names to positions; names absent from
// the type's layout resolve to -1 so lookups degrade to nil fields.
func columnIndex(ft model.FileType) map[string]int {
	idx := map[string]int{
		"Factura": -1, "Cod_IPS": -1, "Tipo_id": -1, "Identificacion": -1,
		"Fecha": -1, "Autorizacion": -1, "cod_servicio": -1,
		"Nombre_servicio": -1, "Cantidad": -1, "Valor": -1, "dx_principal": -1,
	}
	for i, name := range ft.Columns {
		idx[name] = i
	}
	return idx
}
