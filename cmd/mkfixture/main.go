// mkfixture writes a small synthetic RIPS tree for local testing: one file
// per record type (including a deliberately line-wrapped AC record), a CUPS
// catalog workbook, and an affiliation workbook.
// Usage: go run ./cmd/mkfixture --out testdata/fixture
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

func main() {
	out := flag.String("out", "testdata/fixture", "output base directory")
	flag.Parse()

	if err := write(*out); err != nil {
		fmt.Fprintf(os.Stderr, "mkfixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("fixture written to %s\n", *out)
}

func write(base string) error {
	files := map[string][]string{
		"AC/AC2024-01.txt": {
			// Second record is wrapped across two physical lines.
			`FAC001,IPS01,CC,1000001,15/01/2024,AUT1,890201,10,13,J00,,,,1,35000,2000,33000`,
			`FAC002,IPS01,CC,1000002,16/01/2024,AUT2,890301,10,`,
			`13,A09,,,,1,42000,0,42000`,
		},
		"AP/AP2024-01.txt": {
			`FAC003;IPS01;CC;1000001;12/01/2024;AUT3;873101;1;1;1;J00;;;1;120000`,
		},
		"AM/AM2024-01.txt": {
			`FAC001,IPS01,CC,1000001,AUT1,M001,1,ACETAMINOFEN 500MG,TAB,500mg,UND,2,150,300`,
			`FAC001,IPS01,CC,1000001,AUT1,0,1,ACETAMINOFEN 500MG,TAB,500mg,UND,1,150,150`,
		},
		"AT/AT2024-01.txt": {
			`FAC002,IPS01,CC,1000002,AUT2,1,T001,TRASLADO ASISTENCIAL,1,80000,80000`,
		},
		"AH/AH2024-01.txt": {
			`FAC004,IPS01,CC,1000001,1,10/01/2024,08:00,1,AUT4,J00,J06,,,,,1,1,15/01/2024,10:00`,
		},
		"AN/AN2024-01.txt": {
			`FAC002,IPS01,CC,1000002,AUT2,N001,1,CERTIFICADO NACIDO VIVO,1,0,0`,
		},
	}

	for rel, lines := range files {
		path := filepath.Join(base, "RIPS", rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
			return err
		}
	}

	if err := writeCatalog(filepath.Join(base, "Resolucion CUPS.xlsx")); err != nil {
		return err
	}
	return writeAffiliation(filepath.Join(base, "HOSVITAL", "2024-01 AFILIADOS.xlsx"))
}

func writeCatalog(path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{"CUPS", "DESCRIPCION CUPS"},
		{"890201", "CONSULTA DE PRIMERA VEZ POR MEDICINA GENERAL"},
		{"890301", "CONSULTA DE CONTROL POR MEDICINA GENERAL"},
		{"873101", "RADIOGRAFIA DE TORAX"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func writeAffiliation(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := [][]interface{}{
		{"Número de Documento", "Municipio Afiliación", "Departamento"},
		{"1000001", "MEDELLIN", "ANTIOQUIA"},
		{"1000002", "ENVIGADO", "ANTIOQUIA"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
