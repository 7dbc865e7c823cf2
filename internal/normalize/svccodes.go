package normalize

import "github.com/gyeh/ripsload/internal/model"

// ApplyServiceCodes guarantees every record of one file carries a usable
// service identity. Consultation and procedure codes resolve against the
// reference catalog; medication, other-service, and attachment codes repair
// themselves from valid codes elsewhere in the same file. The backfill table
// is scoped to this call, never shared across files.
func ApplyServiceCodes(records []model.Record, ft model.FileType, catalog map[string]string) {
	// Malformed input sometimes lands a date where a service code belongs;
	// convert those to the legacy day-serial before anything else.
	for i := range records {
		if records[i].CodServicio != nil {
			v := DateToSerial(*records[i].CodServicio)
			records[i].CodServicio = &v
		}
	}

	switch {
	case ft.UsesCatalog && len(catalog) > 0:
		for i := range records {
			r := &records[i]
			if r.CodServicio != nil {
				code := CleanCUPS(*r.CodServicio)
				if code == "" {
					r.CodServicio = nil
				} else {
					r.CodServicio = &code
					if desc, ok := catalog[code]; ok {
						r.NombreServicio = &desc
					}
				}
			}
			one := "1"
			r.Cantidad = &one
		}

	case ft.BackfillsCodes:
		backfill := NewCodeBackfill()
		for i := range records {
			backfill.Observe(records[i].CodServicio, records[i].NombreServicio)
		}
		for i := range records {
			r := &records[i]
			if IsInvalidCode(r.CodServicio) {
				code := backfill.Repair(r.NombreServicio)
				r.CodServicio = &code
			}
		}
	}
}

// AssignKeys derives the per-type identity key for one file's records.
func AssignKeys(records []model.Record) {
	for i := range records {
		r := &records[i]
		token := ServiceToken(r.CodServicio, r.NombreServicio)
		r.Key = BuildKey(r.Factura, r.CodIPS, r.Identificacion, r.Periodo, token)
	}
}
