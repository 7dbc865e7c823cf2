package schema

import (
	"strings"
	"testing"

	"github.com/gyeh/ripsload/internal/model"
)

func TestFileMeta(t *testing.T) {
	archivo, periodo := FileMeta("/data/RIPS/AC/AC2024-01.txt")
	if archivo != "AC" || periodo != "2024-01" {
		t.Errorf("FileMeta = %q, %q", archivo, periodo)
	}
}

func acRow(fields ...string) []string {
	row := []string{
		"FAC001", "IPS01", "CC", "1000001.0", "15/01/2024",
		"AUT1", "890201", "10", "13",
		"J00", "", "", "", "1", "35000", "2000", "33000",
	}
	copy(row, fields)
	return row
}

func TestMapRecords_AC(t *testing.T) {
	ft, _ := model.FileTypeByCode("AC")
	records := MapRecords([][]string{acRow()}, ft, "AC2024-01.txt")
	if len(records) != 1 {
		t.Fatalf("got %d records", len(records))
	}
	r := records[0]

	if r.Archivo != "AC" || r.Periodo != "2024-01" {
		t.Errorf("file meta: %q %q", r.Archivo, r.Periodo)
	}
	if r.Factura != "FAC001" || r.CodIPS != "IPS01" {
		t.Errorf("identity fields: %q %q", r.Factura, r.CodIPS)
	}
	if r.Identificacion != "1000001" {
		t.Errorf("identification not cleaned: %q", r.Identificacion)
	}
	if r.Fecha == nil || *r.Fecha != "15/01/2024" {
		t.Errorf("fecha: %v", r.Fecha)
	}
	if r.CIE10 == nil || *r.CIE10 != "J00" {
		t.Errorf("principal diagnosis not mapped to CIE10: %v", r.CIE10)
	}
	if r.Valor == nil || *r.Valor != "35000" {
		t.Errorf("valor: %v", r.Valor)
	}
	if r.NombreServicio != nil {
		t.Errorf("AC has no native service name, got %v", *r.NombreServicio)
	}
}

func TestMapRecords_TruncatesAndPads(t *testing.T) {
	ft, _ := model.FileTypeByCode("AT") // 11 columns
	long := make([]string, 15)
	for i := range long {
		long[i] = "x"
	}
	short := []string{"FAC", "IPS", "CC", "123"}

	records := MapRecords([][]string{long, short}, ft, "AT2024-01.txt")

	if records[0].Valor == nil {
		t.Error("long row: in-range column lost")
	}
	if records[1].Factura != "FAC" || records[1].Identificacion != "123" {
		t.Errorf("short row: leading fields lost: %+v", records[1])
	}
	if records[1].CodServicio != nil || records[1].Valor != nil {
		t.Error("short row: missing trailing columns should be nil")
	}
}

func TestMapRecords_NoCIE10ForMedicationTypes(t *testing.T) {
	ft, _ := model.FileTypeByCode("AM")
	row := []string{"FAC", "IPS", "CC", "123", "AUT", "M001", "1", "PARACETAMOL", "TAB", "500", "UND", "2", "150", "300"}
	records := MapRecords([][]string{row}, ft, "AM2024-01.txt")
	if records[0].CIE10 != nil {
		t.Errorf("AM should carry no CIE10, got %q", *records[0].CIE10)
	}
	if records[0].NombreServicio == nil || *records[0].NombreServicio != "PARACETAMOL" {
		t.Errorf("service name: %v", records[0].NombreServicio)
	}
}

func ahRow() []string {
	return []string{
		"FAC004", "IPS01", "CC", "1000001", "1", "10/01/2024", "08:00", "1",
		"AUT4", "J00", "J06", "A09", "B20", "", "", "1", "1", "15/01/2024", "10:00",
	}
}

func TestMapHospitalizations_FullLayout(t *testing.T) {
	hs := MapHospitalizations([][]string{ahRow()}, "AH2024-01.txt")
	if len(hs) != 1 {
		t.Fatalf("got %d", len(hs))
	}
	h := hs[0]

	if h.FechaIngreso == nil || *h.FechaIngreso != "10/01/2024" {
		t.Errorf("fecha ingreso: %v", h.FechaIngreso)
	}
	if h.FechaSalida == nil || *h.FechaSalida != "15/01/2024" {
		t.Errorf("fecha salida: %v", h.FechaSalida)
	}
	if h.Autorizacion != "AUT4" {
		t.Errorf("autorizacion: %q", h.Autorizacion)
	}
	if h.DxPrincipal == nil || *h.DxPrincipal != "J00" {
		t.Errorf("dx principal: %v", h.DxPrincipal)
	}
	if h.DxRelacionado3 == nil || *h.DxRelacionado3 != "B20" {
		t.Errorf("dx relacionado 3: %v", h.DxRelacionado3)
	}
	want := "FAC004-IPS01-1000001-2024-01-AUT4"
	if h.Key != want {
		t.Errorf("key = %q, want %q", h.Key, want)
	}
}

func TestMapHospitalizations_DegradedLayout(t *testing.T) {
	row := ahRow()[:12] // truncated extract
	hs := MapHospitalizations([][]string{row}, "AH2024-01.txt")
	h := hs[0]

	if h.Identificacion != "1000001" || h.FechaIngreso == nil {
		t.Errorf("safely identifiable subset missing: %+v", h)
	}
	if h.FechaSalida != nil {
		t.Errorf("fecha salida should be nil on a truncated row, got %q", *h.FechaSalida)
	}
	if h.DxRelacionado3 != nil {
		t.Error("extended diagnosis columns should stay nil below 19 columns")
	}
}

func TestMapRecords_TrimsQuotes(t *testing.T) {
	ft, _ := model.FileTypeByCode("AC")
	row := acRow()
	row[0] = ` "FAC001" `
	records := MapRecords([][]string{row}, ft, "AC2024-01.txt")
	if records[0].Factura != "FAC001" {
		t.Errorf("quotes not stripped: %q", records[0].Factura)
	}
	if strings.Contains(records[0].Factura, " ") {
		t.Error("whitespace not trimmed")
	}
}
