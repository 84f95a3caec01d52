// Package parity certification run reports
package parity

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
)

// HostInfo records where a certification ran. Outcomes must be identical
// everywhere; when they are not, this is the first thing to look at.
type HostInfo struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	NumCPU   int    `json:"num_cpu"`
	Features string `json:"cpu_features"`
}

// CertificationReport aggregates the outcomes of one certification run.
type CertificationReport struct {
	mu sync.Mutex

	RunID     string            `json:"run_id"`
	StartedAt time.Time         `json:"started_at"`
	Tolerance float64           `json:"tolerance"`
	Workers   int               `json:"workers"`
	Host      HostInfo          `json:"host"`
	Outcomes  []WorkloadOutcome `json:"outcomes"`
}

// NewReport starts an empty report for a run with the given policy.
func NewReport(tolerance float64, workers int) *CertificationReport {
	return &CertificationReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Tolerance: tolerance,
		Workers:   workers,
		Host: HostInfo{
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			NumCPU:   runtime.NumCPU(),
			Features: GetCPUInfo(),
		},
	}
}

// Add appends one workload outcome. Safe for concurrent use.
func (r *CertificationReport) Add(outcome WorkloadOutcome) {
	r.mu.Lock()
	r.Outcomes = append(r.Outcomes, outcome)
	r.mu.Unlock()
}

// Passed reports whether every recorded outcome passed.
func (r *CertificationReport) Passed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.Outcomes {
		if !o.Result.Passed {
			return false
		}
	}
	return true
}

// Summary returns a one-line pass/fail tally.
func (r *CertificationReport) Summary() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	passed, failed := 0, 0
	for _, o := range r.Outcomes {
		if o.Result.Passed {
			passed++
		} else {
			failed++
		}
	}
	return fmt.Sprintf("%d passed, %d failed", passed, failed)
}

// WriteFile writes the report as indented JSON into dir, named by timestamp
// and run ID, and returns the path.
func (r *CertificationReport) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", NewDataError("CertificationReport.WriteFile", "failed to create report dir", err)
	}

	r.mu.Lock()
	data, err := json.MarshalIndent(r, "", "  ")
	r.mu.Unlock()
	if err != nil {
		return "", NewDataError("CertificationReport.WriteFile", "failed to marshal report", err)
	}

	name := fmt.Sprintf("certify_%s_%s.json",
		r.StartedAt.Format("20060102_150405"), r.RunID)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", NewDataError("CertificationReport.WriteFile", "failed to write report", err)
	}
	return path, nil
}
