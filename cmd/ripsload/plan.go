package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gyeh/ripsload/internal/exitcode"
	"github.com/gyeh/ripsload/internal/logging"
	"github.com/gyeh/ripsload/internal/model"
	"github.com/gyeh/ripsload/internal/normalize"
	"github.com/gyeh/ripsload/internal/ripsread"
	"github.com/gyeh/ripsload/internal/schema"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run repair and tokenize stats for one RIPS file (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to a RIPS txt file (required)")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.ValidateFile(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	archivo, periodo := schema.FileMeta(cfg.FilePath)
	ft, ok := model.FileTypeByCode(archivo)
	if !ok {
		log.Error().Str("prefix", archivo).Msg("file name does not start with a known RIPS type")
		os.Exit(exitcode.ValidationError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	rows, stats, err := ripsread.ReadFile(cfg.FilePath, len(ft.Columns))
	if err != nil {
		log.Error().Err(err).Msg("failed to read file")
		os.Exit(exitcode.ParseError)
	}

	short, long := 0, 0
	for _, row := range rows {
		switch {
		case len(row) < len(ft.Columns):
			short++
		case len(row) > len(ft.Columns):
			long++
		}
	}

	fmt.Println("=== ripsload plan ===")
	fmt.Printf("File:        %s\n", filepath.Base(cfg.FilePath))
	fmt.Printf("SHA-256:     %s\n", sha)
	fmt.Printf("Size:        %d bytes\n", stat.Size())
	fmt.Printf("Tipo:        %s (%s, %d columns)\n", ft.Code, ft.Name, len(ft.Columns))
	fmt.Printf("Periodo:     %s\n", periodo)
	fmt.Println()
	fmt.Printf("Lines read:     %d\n", stats.LinesRead)
	fmt.Printf("Lines repaired: %d\n", stats.LinesRepaired)
	fmt.Printf("Rows out:       %d (delimiter %q)\n", stats.RowsOut, stats.Delimiter)
	fmt.Printf("Rows dropped:   %d\n", stats.RowsDropped)
	fmt.Printf("Short rows:     %d (padded)\n", short)
	fmt.Printf("Long rows:      %d (truncated)\n", long)

	if len(rows) > 0 {
		fmt.Println()
		fmt.Println("Sample:")
		for i := 0; i < len(rows) && i < 3; i++ {
			fmt.Printf("  %s\n", strings.Join(rows[i], " | "))
		}
	}
	return nil
}
