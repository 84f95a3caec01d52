// Package parity configuration constants and run configuration
package parity

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Tuning constants shared by the optimized kernel variants.
const (
	// Block size for blocked matrix multiplication (sized for L1 cache)
	MatrixBlockSize = 64

	// Buffer size for streaming file scans
	ScanBufferSize = 64 * 1024

	// Default tolerance for floating point comparisons
	DefaultToleranceValue = 1e-10
)

// Config describes one certification run. Zero values fall back to defaults,
// so a partial YAML file is fine.
type Config struct {
	// Tolerance is the absolute floating-point tolerance for the run.
	Tolerance float64 `yaml:"tolerance"`

	// DataDir is where generated datasets live.
	DataDir string `yaml:"data_dir"`

	// ReportDir is where certification reports are written.
	ReportDir string `yaml:"report_dir"`

	// Workers bounds parallel optimized variants. Output must not depend
	// on this value; it only changes how the work is decomposed.
	Workers int `yaml:"workers"`

	// Workloads selects a subset of the catalogue; empty means all.
	Workloads []string `yaml:"workloads"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Tolerance: DefaultToleranceValue,
		DataDir:   "testdata/generated",
		ReportDir: "reports",
		Workers:   runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML config file and fills unset fields from defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, NewDataError("LoadConfig", "failed to read config file", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, NewDataError("LoadConfig", "failed to parse config file", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Tolerance <= 0 {
		c.Tolerance = def.Tolerance
	}
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.ReportDir == "" {
		c.ReportDir = def.ReportDir
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
}
