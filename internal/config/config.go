package config

import (
	"fmt"
	"os"
	"runtime"

	"github.com/gyeh/ripsload/internal/model"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for a ripsload run.
type Config struct {
	BaseDir        string
	OutDir         string
	CatalogFile    string
	AffiliationDir string
	FilePath       string // single-file input for the plan subcommand
	LogFormat      string // "text" or "json"
	LogLevel       string
	WriteParquet   bool
	Workers        int      `yaml:"workers"`
	Types          []string `yaml:"types"` // subset of AllFileTypes codes to process
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Workers int      `yaml:"workers"`
	Types   []string `yaml:"types"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if yc.Workers > 0 {
		c.Workers = yc.Workers
	}
	c.Types = yc.Types
	return c.validateTypes()
}

// validateTypes checks that every entry in Types is a known RIPS type code.
// If Types is empty, it defaults to all AllFileTypes codes.
func (c *Config) validateTypes() error {
	if len(c.Types) == 0 {
		c.Types = model.FileTypeCodes()
		return nil
	}
	for _, code := range c.Types {
		if _, ok := model.FileTypeByCode(code); !ok {
			return fmt.Errorf("unknown RIPS type %q in config", code)
		}
	}
	return nil
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return fmt.Errorf("--dir is required")
	}
	if _, err := os.Stat(c.BaseDir); err != nil {
		return fmt.Errorf("base dir not accessible: %w", err)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c.validateTypes()
}

// ValidateFile checks the single-file input used by the plan subcommand.
func (c *Config) ValidateFile() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	return nil
}
