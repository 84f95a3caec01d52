package parity

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPassedAndSummary(t *testing.T) {
	r := NewReport(1e-10, 4)
	assert.True(t, r.Passed(), "empty report should pass")

	r.Add(WorkloadOutcome{Name: "primes", Result: Success()})
	r.Add(WorkloadOutcome{Name: "matmul", Result: Success()})
	assert.True(t, r.Passed())
	assert.Equal(t, "2 passed, 0 failed", r.Summary())

	r.Add(WorkloadOutcome{Name: "similarity", Result: Failure("value mismatch at index 3")})
	assert.False(t, r.Passed())
	assert.Equal(t, "2 passed, 1 failed", r.Summary())
}

func TestReportHostInfo(t *testing.T) {
	r := NewReport(1e-10, 2)
	assert.NotEmpty(t, r.RunID)
	assert.NotEmpty(t, r.Host.OS)
	assert.NotEmpty(t, r.Host.Arch)
	assert.Greater(t, r.Host.NumCPU, 0)
}

func TestReportWriteFile(t *testing.T) {
	dir := t.TempDir()

	r := NewReport(1e-10, 4)
	r.Add(WorkloadOutcome{Name: "primes", Result: Success()})
	r.Add(WorkloadOutcome{Name: "fibonacci", Result: Failure("fibonacci mismatch")})

	path, err := r.WriteFile(dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, dir))
	assert.True(t, strings.HasSuffix(path, ".json"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded struct {
		RunID     string            `json:"run_id"`
		Tolerance float64           `json:"tolerance"`
		Outcomes  []WorkloadOutcome `json:"outcomes"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, 1e-10, decoded.Tolerance)
	require.Len(t, decoded.Outcomes, 2)
	assert.Equal(t, "primes", decoded.Outcomes[0].Name)
	assert.True(t, decoded.Outcomes[0].Result.Passed)
	assert.False(t, decoded.Outcomes[1].Result.Passed)
}

func TestReportWriteCreatesDir(t *testing.T) {
	dir := t.TempDir() + "/nested/reports"
	r := NewReport(1e-10, 1)
	_, err := r.WriteFile(dir)
	require.NoError(t, err)
}
