package xlsxwrite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/ripsload/internal/model"
)

func TestSaveTable_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "consolidado.xlsx")

	headers := []string{"Key", "Valor"}
	rows := [][]string{{"k1", "100"}, {"k2", "187,5"}}
	if err := SaveTable(path, "Consolidado", headers, rows); err != nil {
		t.Fatalf("SaveTable: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open written workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("Consolidado")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("rows = %d, want 3", len(got))
	}
	if got[0][0] != "Key" || got[2][1] != "187,5" {
		t.Errorf("content mismatch: %v", got)
	}
}

func TestSaveTable_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "consolidado.xlsx")

	if err := SaveTable(path, "Consolidado", []string{"A"}, [][]string{{"old"}}); err != nil {
		t.Fatal(err)
	}
	if err := SaveTable(path, "Consolidado", []string{"A"}, [][]string{{"new"}}); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, _ := f.GetRows("Consolidado")
	if got[1][0] != "new" {
		t.Errorf("existing file not replaced: %v", got)
	}
}

func TestSaveTable_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "consolidado.xlsx")
	if err := SaveTable(path, "Consolidado", []string{"A"}, nil); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSaveParquet_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "consolidado.parquet")

	valor := 200.0
	rows := []model.ConsolidatedRow{
		{Key: "k1", Archivo: "AC", Periodo: "2024-01", Valor: &valor, Cantidad: 3, Municipio: "MEDELLIN"},
	}
	if err := SaveParquet(path, rows); err != nil {
		t.Fatalf("SaveParquet: %v", err)
	}

	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Fatalf("parquet file missing or empty: %v", err)
	}
}
