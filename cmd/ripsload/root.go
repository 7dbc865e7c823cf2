package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/ripsload/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "ripsload",
	Short: "RIPS billing extract consolidator",
	Long:  "Repairs, normalizes, and cross-links RIPS billing extracts into one consolidated dataset enriched with hospitalization stay lengths and patient affiliation.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.BaseDir, "dir", envOr("RIPS_DIR", "."), "Base directory holding the RIPS/<TYPE> folders (or set RIPS_DIR)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
