// Package consolidate unions the per-type record sets, re-derives identity
// keys, aggregates by key, and joins affiliation data into the final dataset.
package consolidate

import (
	"sort"

	"github.com/gyeh/ripsload/internal/affiliation"
	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/normalize"
)

// unionOrder fixes the cross-type row order feeding the first-wins
// reductions: consultation and procedure rows lead so they dominate Fecha,
// diagnosis, and stay-length fields.
var unionOrder = []string{"AC", "AP", "AM", "AT", "AN"}

// group accumulates one Key's rows during aggregation.
type group struct {
	row        model.ConsolidatedRow
	diasSet    bool
	valorSum   float64
	valorCount int
}

// Run consolidates all per-type record sets (hospitalizations are already
// consumed by the linker and must not appear in byType).
func Run(byType map[string][]model.Record, aff *affiliation.Data) []model.ConsolidatedRow {
	backfillFechas(byType)

	groups := make(map[string]*group)
	var order []string

	for _, code := range unionOrder {
		for i := range byType[code] {
			r := &byType[code][i]
			token := normalize.ServiceToken(r.CodServicio, r.NombreServicio)
			key := normalize.BuildKey(r.Factura, r.CodIPS, r.Identificacion, r.Periodo, token)
			key2 := normalize.BuildKey2(r.CodIPS, r.Identificacion, derefOr(r.Fecha, ""), token)

			g, ok := groups[key]
			if !ok {
				g = &group{row: model.ConsolidatedRow{Key: key, Key2: key2}}
				groups[key] = g
				order = append(order, key)
			}
			g.absorb(r)
		}
	}

	rows := make([]model.ConsolidatedRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if g.valorCount > 0 {
			mean := g.valorSum / float64(g.valorCount)
			g.row.Valor = &mean
		}
		g.row.ValorText = normalize.RenderAmount(g.row.Valor)
		g.row.KeyIps = normalize.BuildKeyIps(g.row.Fecha, g.row.Periodo, g.row.Identificacion)
		joinAffiliation(&g.row, aff)
		rows = append(rows, g.row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// absorb folds one record into the group: identity and category fields keep
// the first value seen, the amount accumulates toward a mean, and the
// quantity sums.
func (g *group) absorb(r *model.Record) {
	row := &g.row

	if row.Archivo == "" {
		row.Archivo = r.Archivo
	}
	if row.Periodo == "" {
		row.Periodo = r.Periodo
	}
	if row.CodIPS == "" {
		row.CodIPS = r.CodIPS
	}
	if row.Identificacion == "" {
		row.Identificacion = r.Identificacion
	}
	if row.Factura == "" {
		row.Factura = r.Factura
	}
	if row.Fecha == nil {
		row.Fecha = r.Fecha
	}
	if row.CodServicio == nil {
		row.CodServicio = r.CodServicio
	}
	if row.NombreServicio == nil {
		row.NombreServicio = r.NombreServicio
	}
	if row.CIE10 == nil {
		row.CIE10 = r.CIE10
	}

	// Only consultation and procedure rows went through the linker; the
	// first of them fixes the group's stay length.
	if !g.diasSet && (r.Archivo == "AC" || r.Archivo == "AP") {
		row.DiasInternacion = int32(r.DiasInternacion)
		g.diasSet = true
	}

	if v := normalize.ParseAmount(r.Valor); v != nil {
		g.valorSum += *v
		g.valorCount++
	}
	if q := normalize.ParseAmount(r.Cantidad); q != nil {
		row.Cantidad += *q
	}
}

// backfillFechas fills the service date of the types that lack their own by
// borrowing it from a consultation or procedure record sharing the same Key;
// the first match wins.
func backfillFechas(byType map[string][]model.Record) {
	fechas := make(map[string]*string)
	for _, code := range []string{"AC", "AP"} {
		for i := range byType[code] {
			r := &byType[code][i]
			if _, seen := fechas[r.Key]; !seen {
				fechas[r.Key] = r.Fecha
			}
		}
	}
	for _, code := range []string{"AM", "AT", "AN"} {
		for i := range byType[code] {
			r := &byType[code][i]
			if f, ok := fechas[r.Key]; ok {
				r.Fecha = f
			}
		}
	}
}

// joinAffiliation resolves municipality and department through Key-Ips.
// Unmatched rows carry the explicit unaffiliated sentinel instead of null.
func joinAffiliation(row *model.ConsolidatedRow, aff *affiliation.Data) {
	row.Municipio = affiliation.Unaffiliated
	if aff == nil {
		return
	}
	e, ok := aff.Lookup(row.KeyIps)
	if ok && e.Municipio != "" {
		row.Municipio = e.Municipio
	}
	if aff.HasDepartamento {
		dep := affiliation.Unaffiliated
		if ok && e.Departamento != nil {
			dep = *e.Departamento
		}
		row.Departamento = &dep
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
