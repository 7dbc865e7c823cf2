package normalize

import (
	"testing"

	"github.com/gyeh/ripsload/internal/model"
)

func strp(s string) *string { return &s }

func TestIsInvalidCode(t *testing.T) {
	invalid := []*string{
		nil, strp(""), strp("null"), strp("NA"), strp("N/A"),
		strp("0"), strp("7"), strp("10"), strp("15/01/2024"),
	}
	for _, c := range invalid {
		if !IsInvalidCode(c) {
			t.Errorf("IsInvalidCode(%v) = false, want true", c)
		}
	}
	valid := []*string{strp("M001"), strp("11"), strp("890201")}
	for _, c := range valid {
		if IsInvalidCode(c) {
			t.Errorf("IsInvalidCode(%q) = true, want false", *c)
		}
	}
}

func TestCleanCUPS(t *testing.T) {
	if got := CleanCUPS(" $89.02 01 "); got != "890201" {
		t.Errorf("CleanCUPS = %q, want 890201", got)
	}
}

func TestCodeBackfill(t *testing.T) {
	b := NewCodeBackfill()
	b.Observe(strp("0"), strp("Paracetamol"))    // invalid, ignored
	b.Observe(strp("M001"), strp("Paracetamol")) // first valid wins
	b.Observe(strp("M999"), strp("Paracetamol")) // later codes ignored

	if got := b.Repair(strp("Paracetamol")); got != "M001" {
		t.Errorf("Repair = %q, want M001", got)
	}
	if got := b.Repair(strp("Ibuprofeno")); got != UnidentifiedService {
		t.Errorf("Repair of unknown name = %q, want %q", got, UnidentifiedService)
	}
	if got := b.Repair(nil); got != UnidentifiedService {
		t.Errorf("Repair of nil name = %q, want %q", got, UnidentifiedService)
	}
}

func TestApplyServiceCodes_Backfill(t *testing.T) {
	ft, _ := model.FileTypeByCode("AM")
	records := []model.Record{
		{CodServicio: strp("M001"), NombreServicio: strp("Paracetamol")},
		{CodServicio: strp("0"), NombreServicio: strp("Paracetamol")},
		{CodServicio: strp("null"), NombreServicio: strp("Desconocido")},
	}
	ApplyServiceCodes(records, ft, nil)

	if got := *records[1].CodServicio; got != "M001" {
		t.Errorf("invalid code backfilled to %q, want M001", got)
	}
	if got := *records[2].CodServicio; got != UnidentifiedService {
		t.Errorf("unrepairable code = %q, want %q", got, UnidentifiedService)
	}
}

func TestApplyServiceCodes_Catalog(t *testing.T) {
	ft, _ := model.FileTypeByCode("AC")
	cat := map[string]string{"890201": "CONSULTA PRIMERA VEZ"}
	records := []model.Record{
		{CodServicio: strp("$890201 ")},
		{CodServicio: strp("999999")},
	}
	ApplyServiceCodes(records, ft, cat)

	if records[0].NombreServicio == nil || *records[0].NombreServicio != "CONSULTA PRIMERA VEZ" {
		t.Errorf("catalog description not resolved: %v", records[0].NombreServicio)
	}
	if records[1].NombreServicio != nil {
		t.Errorf("unknown code should have no description, got %q", *records[1].NombreServicio)
	}
	for i := range records {
		if records[i].Cantidad == nil || *records[i].Cantidad != "1" {
			t.Errorf("record %d: quantity not defaulted to 1", i)
		}
	}
}

func TestApplyServiceCodes_DateShapedCode(t *testing.T) {
	ft, _ := model.FileTypeByCode("AM")
	records := []model.Record{
		{CodServicio: strp("01/03/1900"), NombreServicio: strp("X")},
	}
	ApplyServiceCodes(records, ft, nil)
	if got := *records[0].CodServicio; got != "61" {
		t.Errorf("date-shaped code = %q, want serial 61", got)
	}
}
