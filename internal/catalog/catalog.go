// Package catalog loads the CUPS service-code reference: an xlsx workbook
// with a code column and a description column, consumed read-only as an
// opaque lookup table.
package catalog

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	codeHeader = "CUPS"
	descHeader = "DESCRIPCION CUPS"
)

// Table maps a CUPS service code to its human-readable description.
type Table map[string]string

// Load reads the catalog workbook at path. The first sheet's header row must
// name the CUPS and DESCRIPCION CUPS columns; everything else is ignored.
func Load(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read catalog sheet: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, nil
	}

	codeCol, descCol := -1, -1
	for i, h := range rows[0] {
		switch strings.TrimSpace(h) {
		case codeHeader:
			codeCol = i
		case descHeader:
			descCol = i
		}
	}
	if codeCol < 0 || descCol < 0 {
		return nil, fmt.Errorf("catalog is missing %q or %q column", codeHeader, descHeader)
	}

	t := make(Table, len(rows)-1)
	for _, row := range rows[1:] {
		if codeCol >= len(row) || descCol >= len(row) {
			continue
		}
		code := strings.TrimSpace(row[codeCol])
		if code == "" {
			continue
		}
		if _, seen := t[code]; !seen {
			t[code] = strings.TrimSpace(row[descCol])
		}
	}
	return t, nil
}
