// Package parity data transformation pipeline, multi-pass vs fused
package parity

import "math"

// PipelineWorkload certifies a fused single-pass transformation against the
// same pipeline written as four separate passes with intermediate slices.
// Per-element arithmetic is identical in both, so outputs match exactly.
type PipelineWorkload struct {
	validator *Validator
	n         int
}

// NewPipelineWorkload returns a workload transforming the integers [0, n).
func NewPipelineWorkload(v *Validator, n int) *PipelineWorkload {
	return &PipelineWorkload{validator: v, n: n}
}

func (w *PipelineWorkload) RunBaseline() ([]float64, error) {
	data := make([]int, w.n)
	for i := range data {
		data[i] = i
	}

	step1 := []int{}
	for _, x := range data {
		if x%2 == 0 {
			step1 = append(step1, x)
		}
	}

	step2 := []int{}
	for _, x := range step1 {
		step2 = append(step2, x*2)
	}

	step3 := []float64{}
	for _, x := range step2 {
		step3 = append(step3, float64(x)*1.5)
	}

	result := []float64{}
	for _, x := range step3 {
		if x > 1000.0 {
			result = append(result, math.Sqrt(x))
		}
	}
	return result, nil
}

func (w *PipelineWorkload) RunOptimized() ([]float64, error) {
	result := make([]float64, 0, w.n/2)
	for x := 0; x < w.n; x++ {
		if x%2 != 0 {
			continue
		}
		scaled := float64(x*2) * 1.5
		if scaled > 1000.0 {
			result = append(result, math.Sqrt(scaled))
		}
	}
	return result, nil
}

func (w *PipelineWorkload) ValidateOutputs(baseline, optimized []float64) ValidationResult {
	return w.validator.CompareFloat64Slice(baseline, optimized)
}
