package parity

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Tolerance != DefaultToleranceValue {
		t.Errorf("Tolerance = %v, want %v", cfg.Tolerance, DefaultToleranceValue)
	}
	if cfg.DataDir == "" || cfg.ReportDir == "" {
		t.Error("Default directories must be set")
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "certify.yaml")
	content := "tolerance: 1e-6\ndata_dir: /tmp/data\nworkers: 3\nworkloads:\n  - primes\n  - matmul\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tolerance != 1e-6 {
		t.Errorf("Tolerance = %v, want 1e-6", cfg.Tolerance)
	}
	if cfg.DataDir != "/tmp/data" {
		t.Errorf("DataDir = %q, want /tmp/data", cfg.DataDir)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if len(cfg.Workloads) != 2 || cfg.Workloads[0] != "primes" {
		t.Errorf("Workloads = %v, want [primes matmul]", cfg.Workloads)
	}
	// Unset fields fall back to defaults.
	if cfg.ReportDir != DefaultConfig().ReportDir {
		t.Errorf("ReportDir = %q, want default", cfg.ReportDir)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "certify.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tolerance != DefaultToleranceValue {
		t.Errorf("Tolerance = %v, want default", cfg.Tolerance)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Workers)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig("/nonexistent/certify.yaml")
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
	if !IsDataError(err) {
		t.Errorf("Expected a data error, got %v", err)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("tolerance: [not a number\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for malformed YAML")
	}
}
