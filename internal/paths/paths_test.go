package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_CreatesLayout(t *testing.T) {
	base := t.TempDir()
	p, err := Resolve(base, "", "", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	for _, code := range []string{"AC", "AP", "AM", "AT", "AH", "AN"} {
		if st, err := os.Stat(p.TypeDir(code)); err != nil || !st.IsDir() {
			t.Errorf("type dir %s not created: %v", code, err)
		}
	}
	if st, err := os.Stat(p.OutputDir); err != nil || !st.IsDir() {
		t.Errorf("output dir not created: %v", err)
	}
	if filepath.Base(p.CatalogFile) != "Resolucion CUPS.xlsx" {
		t.Errorf("catalog path = %q", p.CatalogFile)
	}
}

func TestResolve_Overrides(t *testing.T) {
	base := t.TempDir()
	out := filepath.Join(base, "custom-out")
	p, err := Resolve(base, out, "/aff", "/cat.xlsx")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.OutputDir != out || p.AffiliationDir != "/aff" || p.CatalogFile != "/cat.xlsx" {
		t.Errorf("overrides not honored: %+v", p)
	}
	if p.ConsolidatedFile() != filepath.Join(out, "consolidado_rips.xlsx") {
		t.Errorf("consolidated path = %q", p.ConsolidatedFile())
	}
}
