package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("types:\n  - AC\n  - AH\nworkers: 4\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Types) != 2 {
		t.Fatalf("expected 2 types, got %d", len(c.Types))
	}
	if c.Types[0] != "AC" || c.Types[1] != "AH" {
		t.Errorf("unexpected types: %v", c.Types)
	}
	if c.Workers != 4 {
		t.Errorf("workers = %d, want 4", c.Workers)
	}
}

func TestLoadFromFile_UnknownType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("types:\n  - AC\n  - XX\n"), 0644)

	var c Config
	err := c.LoadFromFile(path)
	if err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestLoadFromFile_EmptyDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte("types: []\n"), 0644)

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(c.Types) != 6 {
		t.Errorf("expected 6 default types, got %d: %v", len(c.Types), c.Types)
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	err := c.LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidate_DefaultsWorkers(t *testing.T) {
	c := Config{BaseDir: t.TempDir()}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if c.Workers <= 0 {
		t.Errorf("workers not defaulted: %d", c.Workers)
	}
	if len(c.Types) != 6 {
		t.Errorf("types not defaulted: %v", c.Types)
	}
}

func TestValidate_MissingBaseDir(t *testing.T) {
	var c Config
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing base dir")
	}
	c.BaseDir = "/nonexistent/rips"
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for inaccessible base dir")
	}
}
