// Package xlsxwrite is the tabular file store for run outputs: workbooks are
// written to a temporary file and moved into place, retrying a bounded number
// of times when the destination is locked.
package xlsxwrite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	maxRetries = 3
	retryDelay = time.Second

	// maxColWidth caps auto-sizing at the excelize limit.
	maxColWidth = 255.0
)

// SaveTable writes headers plus rows to an xlsx workbook at path, atomically
// from the reader's perspective. Columns are auto-sized to their content.
func SaveTable(path, sheet string, headers []string, rows [][]string) error {
	return replaceFile(path, func(tmp string) error {
		return writeWorkbook(tmp, sheet, headers, rows)
	})
}

func writeWorkbook(path, sheet string, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	widths := make([]int, len(headers))
	if err := writeRow(f, sheet, 1, headers, widths); err != nil {
		return err
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row, widths); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		width := float64(w + 2)
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []string, widths []int) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write row %d: %w", rowNum, err)
	}
	for i, v := range values {
		if i < len(widths) && len(v) > widths[i] {
			widths[i] = len(v)
		}
	}
	return nil
}

// replaceFile runs write against a temporary file in the destination
// directory and renames it over path. A permission failure, the signature of
// the destination being held open by a spreadsheet application, is retried
// with a fixed delay; any other error propagates immediately.
func replaceFile(path string, write func(tmp string) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		tmp, err := os.CreateTemp(dir, ".tmp-*"+filepath.Ext(path))
		if err != nil {
			return fmt.Errorf("create temp file: %w", err)
		}
		tmpPath := tmp.Name()
		tmp.Close()

		if err := write(tmpPath); err != nil {
			os.Remove(tmpPath)
			return err
		}

		err = os.Rename(tmpPath, path)
		if err == nil {
			return nil
		}
		os.Remove(tmpPath)
		if !errors.Is(err, os.ErrPermission) {
			return fmt.Errorf("replace %s: %w", path, err)
		}
		lastErr = err
		if attempt < maxRetries {
			time.Sleep(retryDelay)
		}
	}
	return fmt.Errorf("replace %s after %d attempts: %w", path, maxRetries, lastErr)
}
