package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.OutputDir != "assets/meshes/items" {
		t.Errorf("expected default output dir, got %q", cfg.OutputDir)
	}
	if cfg.ListenAddr != ":8000" {
		t.Errorf("expected listen addr :8000, got %q", cfg.ListenAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "" {
		t.Errorf("expected empty log file, got %q", cfg.LogFile)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != Default().OutputDir {
		t.Errorf("empty path should return defaults, got %q", cfg.OutputDir)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	manifest := `
output_dir: /tmp/models
log_level: debug
budgets:
  medkit: 600
`
	if err := os.WriteFile(path, []byte(manifest), 0666); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutputDir != "/tmp/models" {
		t.Errorf("expected output dir override, got %q", cfg.OutputDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
	// unset keys keep their defaults
	if cfg.ListenAddr != ":8000" {
		t.Errorf("expected default listen addr, got %q", cfg.ListenAddr)
	}

	if got := cfg.Budget("medkit", 900); got != 600 {
		t.Errorf("expected medkit budget override 600, got %d", got)
	}
	if got := cfg.Budget("toolbox", 1000); got != 1000 {
		t.Errorf("expected builtin toolbox budget 1000, got %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing manifest")
	}
}
