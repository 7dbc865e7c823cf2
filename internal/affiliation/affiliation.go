// Package affiliation loads the per-provider affiliation workbooks that map
// patients to their municipality and department per billing period.
package affiliation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// Unaffiliated is the sentinel used when a consolidated record matches no
// affiliation row; it distinguishes "not affiliated" from missing data.
const Unaffiliated = "No Afiliado"

// Entry is the geographic affiliation for one patient and period.
type Entry struct {
	Municipio    string
	Departamento *string
}

// SummaryRow is one row of the affiliation-summary artifact: affiliate count
// per period, department (when tracked), and municipality.
type SummaryRow struct {
	Periodo      string
	Departamento *string
	Municipio    string
	Cantidad     int
}

// Data holds the loaded affiliation lookup and its per-period summary.
type Data struct {
	byKey map[string]Entry

	// HasDepartamento is true when at least one workbook carried a
	// department column; it controls whether the outputs include it.
	HasDepartamento bool
	Summary         []SummaryRow
	Files           int
	Rows            int
}

// Len returns the number of distinct affiliation join keys.
func (d *Data) Len() int { return len(d.byKey) }

// Lookup resolves the affiliation entry for a Key-Ips join key.
func (d *Data) Lookup(keyIps string) (Entry, bool) {
	e, ok := d.byKey[keyIps]
	return e, ok
}

// Load reads every xlsx workbook under dir, in file-name order. The first 7
// characters of each file name form the period prefix of the join key. Column
// positions are discovered by fuzzy header matching; a workbook without a
// recognizable document or municipality column is skipped with a warning.
func Load(dir string, log zerolog.Logger) (*Data, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read affiliation dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".xlsx") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	d := &Data{byKey: make(map[string]Entry)}
	counts := make(map[groupKey]int)

	for _, name := range files {
		if err := d.loadFile(filepath.Join(dir, name), counts, log); err != nil {
			log.Warn().Err(err).Str("file", name).Msg("affiliation workbook skipped")
			continue
		}
		d.Files++
	}

	d.Summary = make([]SummaryRow, 0, len(counts))
	for key, n := range counts {
		row := SummaryRow{Periodo: key.periodo, Municipio: key.municipio, Cantidad: n}
		if key.hasDep {
			dep := key.departamento
			row.Departamento = &dep
		}
		d.Summary = append(d.Summary, row)
	}
	sort.Slice(d.Summary, func(i, j int) bool {
		a, b := d.Summary[i], d.Summary[j]
		if a.Periodo != b.Periodo {
			return a.Periodo < b.Periodo
		}
		if da, db := deref(a.Departamento), deref(b.Departamento); da != db {
			return da < db
		}
		return a.Municipio < b.Municipio
	})
	return d, nil
}

// groupKey is the comparable grouping axis of the summary artifact.
type groupKey struct {
	periodo      string
	departamento string
	hasDep       bool
	municipio    string
}

func (d *Data) loadFile(path string, counts map[groupKey]int, log zerolog.Logger) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil
	}

	docCol := matchColumn(rows[0], "número de documento", "numero de documento", "identificación")
	munCol := matchColumn(rows[0], "municipio afili")
	depCol := matchColumn(rows[0], "departamento")
	if docCol < 0 || munCol < 0 {
		return fmt.Errorf("no document or municipality column recognized")
	}
	if depCol >= 0 {
		d.HasDepartamento = true
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	prefix := stem
	if len(prefix) > 7 {
		prefix = prefix[:7]
	}
	// The summary groups by the period token, which runs up to the first
	// separator of the join key.
	periodo, _, _ := strings.Cut(prefix, "-")

	for _, row := range rows[1:] {
		doc := cell(row, docCol)
		if doc == "" {
			continue
		}
		mun := cell(row, munCol)
		var dep *string
		if depCol >= 0 {
			if v := cell(row, depCol); v != "" {
				dep = &v
			}
		}

		key := prefix + "-" + doc
		if _, dup := d.byKey[key]; !dup {
			d.byKey[key] = Entry{Municipio: mun, Departamento: dep}
		}
		d.Rows++

		gk := groupKey{periodo: periodo, municipio: mun}
		if dep != nil {
			gk.departamento = *dep
			gk.hasDep = true
		}
		counts[gk]++
	}

	log.Info().Str("file", filepath.Base(path)).Int("keys", d.Len()).Msg("affiliation workbook loaded")
	return nil
}

// matchColumn finds the first header cell whose lowercased text contains any
// of the given needles. Returns -1 when no header matches.
func matchColumn(headers []string, needles ...string) int {
	for i, h := range headers {
		lower := strings.ToLower(strings.TrimSpace(h))
		for _, n := range needles {
			if strings.Contains(lower, n) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
