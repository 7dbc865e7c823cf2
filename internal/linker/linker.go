// Package linker matches outpatient and procedure records to overlapping
// hospitalization stays and annotates them with the stay length.
package linker

import (
	"time"

	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/normalize"
)

// interval is one hospitalization stay with parsed bounds. Stays whose
// admission or discharge date does not parse never match anything.
type interval struct {
	ingreso *time.Time
	salida  *time.Time
	dias    int

	dxPrincipal    string
	dxRelacionado1 string
	dxRelacionado2 string
}

// Index holds hospitalization intervals grouped per patient, in encounter
// order, ready for stay-length lookups.
type Index struct {
	byPatient map[string][]interval
	stays     int
}

// NewIndex builds the interval index from the run's AH records.
func NewIndex(hs []model.Hospitalization) *Index {
	ix := &Index{byPatient: make(map[string][]interval)}
	for i := range hs {
		h := &hs[i]
		iv := interval{
			dxPrincipal:    deref(h.DxPrincipal),
			dxRelacionado1: deref(h.DxRelacionado1),
			dxRelacionado2: deref(h.DxRelacionado2),
		}
		if h.FechaIngreso != nil {
			iv.ingreso = normalize.ParseDate(*h.FechaIngreso)
		}
		if h.FechaSalida != nil {
			iv.salida = normalize.ParseDate(*h.FechaSalida)
		}
		iv.dias = stayLength(iv.ingreso, iv.salida)
		ix.byPatient[h.Identificacion] = append(ix.byPatient[h.Identificacion], iv)
		ix.stays++
	}
	return ix
}

// Stays returns the number of indexed hospitalization intervals.
func (ix *Index) Stays() int { return ix.stays }

// Annotate writes the stay length onto every record whose service date falls
// inside one of the patient's stays. Records without a parseable date, or
// with no overlapping stay, keep zero.
func (ix *Index) Annotate(records []model.Record) {
	for i := range records {
		records[i].DiasInternacion = ix.lookup(&records[i])
	}
}

// lookup selects the stay for one record: among the patient's intervals
// covering the service date, one matching the record's diagnosis against the
// principal or first two related codes wins; otherwise the first candidate in
// encounter order does.
func (ix *Index) lookup(r *model.Record) int {
	if r.Fecha == nil {
		return 0
	}
	fecha := normalize.ParseDate(*r.Fecha)
	if fecha == nil {
		return 0
	}

	var candidates []interval
	for _, iv := range ix.byPatient[r.Identificacion] {
		if iv.ingreso == nil || iv.salida == nil {
			continue
		}
		if fecha.Before(*iv.ingreso) || fecha.After(*iv.salida) {
			continue
		}
		candidates = append(candidates, iv)
	}
	if len(candidates) == 0 {
		return 0
	}

	if r.CIE10 != nil && *r.CIE10 != "" {
		for _, iv := range candidates {
			if *r.CIE10 == iv.dxPrincipal || *r.CIE10 == iv.dxRelacionado1 || *r.CIE10 == iv.dxRelacionado2 {
				return iv.dias
			}
		}
	}
	return candidates[0].dias
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// stayLength computes (discharge − admission) in days, inclusive of both
// ends: positive spans are floored at one day, everything else is zero.
func stayLength(ingreso, salida *time.Time) int {
	if ingreso == nil || salida == nil {
		return 0
	}
	days := int(salida.Sub(*ingreso).Hours()/24) + 1
	if days <= 0 {
		return 0
	}
	return days
}
