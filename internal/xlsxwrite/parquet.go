package xlsxwrite

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/ripsload/internal/model"
)

// SaveParquet writes the consolidated dataset as a typed Parquet file for
// analytics consumers, through the same temp-then-rename path as the
// workbooks.
func SaveParquet(path string, rows []model.ConsolidatedRow) error {
	return replaceFile(path, func(tmp string) error {
		f, err := os.Create(tmp)
		if err != nil {
			return fmt.Errorf("create parquet file: %w", err)
		}

		w := parquet.NewGenericWriter[model.ConsolidatedRow](f)
		if _, err := w.Write(rows); err != nil {
			f.Close()
			return fmt.Errorf("write parquet rows: %w", err)
		}
		if err := w.Close(); err != nil {
			f.Close()
			return fmt.Errorf("close parquet writer: %w", err)
		}
		return f.Close()
	})
}
