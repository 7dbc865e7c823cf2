package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/ripsload/internal/exitcode"
	"github.com/gyeh/ripsload/internal/logging"
	"github.com/gyeh/ripsload/internal/pipeline"
)

var configPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Consolidate every RIPS extract under the base directory",
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&cfg.OutDir, "out", "", "Output directory (default <dir>/_INFORME)")
	f.StringVar(&cfg.CatalogFile, "catalog", "", "CUPS catalog workbook (default <dir>/Resolucion CUPS.xlsx)")
	f.StringVar(&cfg.AffiliationDir, "affiliation-dir", "", "Affiliation workbook directory (default <dir>/HOSVITAL)")
	f.StringSliceVar(&cfg.Types, "types", nil, "RIPS types to process (default all six)")
	f.IntVar(&cfg.Workers, "workers", 0, "Parse worker count (default NumCPU)")
	f.BoolVar(&cfg.WriteParquet, "parquet", false, "Also export the consolidated dataset as Parquet")
	f.StringVar(&configPath, "config", "", "Optional YAML config file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config file invalid")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := pipeline.Run(ctx, log, &cfg)
	if err != nil {
		if pe, ok := err.(*pipeline.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("run failed")
			switch pe.Phase {
			case "resolve":
				os.Exit(exitcode.ValidationError)
			case "parse":
				os.Exit(exitcode.ParseError)
			case "write":
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.ConsolidateError)
			}
		}
		log.Error().Err(err).Msg("run failed")
		os.Exit(exitcode.ConsolidateError)
	}

	fmt.Printf("Run complete: %d files, %d consolidated rows (%.1fs)\n",
		summary.FilesProcessed, summary.ConsolidatedRows, summary.DurationTotal.Seconds())
	if summary.FilesFailed > 0 {
		fmt.Printf("Warning: %d files skipped due to errors\n", summary.FilesFailed)
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
