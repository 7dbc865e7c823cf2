// Package paths resolves the run's directory layout: per-type input folders,
// the affiliation folder, the reference catalog, and the output location.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gyeh/ripsload/internal/model"
)

// Default locations relative to the base directory, matching the layout the
// extracts are delivered in.
const (
	ripsDirName        = "RIPS"
	outputDirName      = "_INFORME"
	affiliationDirName = "HOSVITAL"
	catalogFileName    = "Resolucion CUPS.xlsx"

	ConsolidatedFileName       = "consolidado_rips.xlsx"
	AffiliationSummaryFileName = "consolidado_hosvital.xlsx"
	ParquetFileName            = "consolidado_rips.parquet"
)

// Paths holds every resolved location for one run.
type Paths struct {
	Base           string
	OutputDir      string
	AffiliationDir string
	CatalogFile    string
}

// Resolve builds the run layout under base, creating the per-type input
// folders and the output folder when absent. Explicit overrides win over the
// conventional locations.
func Resolve(base, outDir, affiliationDir, catalogFile string) (*Paths, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base dir: %w", err)
	}

	p := &Paths{
		Base:           abs,
		OutputDir:      filepath.Join(abs, outputDirName),
		AffiliationDir: filepath.Join(abs, affiliationDirName),
		CatalogFile:    filepath.Join(abs, catalogFileName),
	}
	if outDir != "" {
		p.OutputDir = outDir
	}
	if affiliationDir != "" {
		p.AffiliationDir = affiliationDir
	}
	if catalogFile != "" {
		p.CatalogFile = catalogFile
	}

	for _, ft := range model.AllFileTypes {
		if err := os.MkdirAll(p.TypeDir(ft.Code), 0o755); err != nil {
			return nil, fmt.Errorf("create input dir for %s: %w", ft.Code, err)
		}
	}
	if err := os.MkdirAll(p.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return p, nil
}

// TypeDir returns the input folder for one record type.
func (p *Paths) TypeDir(code string) string {
	return filepath.Join(p.Base, ripsDirName, code)
}

// ConsolidatedFile returns the destination of the consolidated artifact.
func (p *Paths) ConsolidatedFile() string {
	return filepath.Join(p.OutputDir, ConsolidatedFileName)
}

// AffiliationSummaryFile returns the destination of the summary artifact.
func (p *Paths) AffiliationSummaryFile() string {
	return filepath.Join(p.OutputDir, AffiliationSummaryFileName)
}

// ParquetFile returns the destination of the optional analytics export.
func (p *Paths) ParquetFile() string {
	return filepath.Join(p.OutputDir, ParquetFileName)
}
