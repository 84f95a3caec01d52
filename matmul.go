// Package parity matrix multiplication, naive vs blocked parallel
package parity

import (
	"golang.org/x/sync/errgroup"
)

// matMulInputs builds the two deterministic input matrices in row-major
// order. Each variant builds its own copies so the runs share no state.
func matMulInputs(n int) (a, b []float64) {
	a = make([]float64, n*n)
	b = make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i*n+j] = float64(i * j)
			b[i*n+j] = float64(i + j)
		}
	}
	return a, b
}

// MatMulBaseline computes C = A*B with the naive triple loop, walking B
// column-wise. Ground truth.
func MatMulBaseline(a, b []float64, n int) []float64 {
	c := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < n; k++ {
				sum += a[i*n+k] * b[k*n+j]
			}
			c[i*n+j] = sum
		}
	}
	return c
}

// MatMulOptimized computes the same product with cache-blocked inner loops
// and the row range split across workers. Workers own disjoint row blocks,
// and for every output cell the k contributions still accumulate in
// ascending order, so the result is independent of worker count and matches
// the baseline exactly, not just within tolerance.
func MatMulOptimized(a, b []float64, n, workers int) []float64 {
	c := make([]float64, n*n)
	if workers < 1 {
		workers = 1
	}

	rowsPer := (n + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * rowsPer
		hi := min(lo+rowsPer, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			for kk := 0; kk < n; kk += MatrixBlockSize {
				kEnd := min(kk+MatrixBlockSize, n)
				for i := lo; i < hi; i++ {
					for k := kk; k < kEnd; k++ {
						aik := a[i*n+k]
						row := c[i*n : i*n+n]
						brow := b[k*n : k*n+n]
						for j := range row {
							row[j] += aik * brow[j]
						}
					}
				}
			}
			return nil
		})
	}
	g.Wait()
	return c
}

// MatMulWorkload certifies the blocked parallel product against the naive
// one for a fixed square size.
type MatMulWorkload struct {
	validator *Validator
	size      int
	workers   int
}

// NewMatMulWorkload returns a workload multiplying two size x size matrices.
func NewMatMulWorkload(v *Validator, size, workers int) *MatMulWorkload {
	return &MatMulWorkload{validator: v, size: size, workers: workers}
}

func (w *MatMulWorkload) RunBaseline() ([]float64, error) {
	a, b := matMulInputs(w.size)
	return MatMulBaseline(a, b, w.size), nil
}

func (w *MatMulWorkload) RunOptimized() ([]float64, error) {
	a, b := matMulInputs(w.size)
	return MatMulOptimized(a, b, w.size, w.workers), nil
}

func (w *MatMulWorkload) ValidateOutputs(baseline, optimized []float64) ValidationResult {
	return w.validator.CompareFloat64Slice(baseline, optimized)
}
