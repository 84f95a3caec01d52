// Package parity small compute kernels: sorting, fibonacci, string building
package parity

import (
	"fmt"
	"slices"
	"strings"
)

// SortingWorkload certifies the standard library sort against bubble sort on
// the reverse-sorted worst case. Equality is positional: the optimized sort
// must produce the identical ascending sequence.
type SortingWorkload struct {
	validator *Validator
	n         int
}

// NewSortingWorkload returns a workload sorting n reverse-ordered ints.
func NewSortingWorkload(v *Validator, n int) *SortingWorkload {
	return &SortingWorkload{validator: v, n: n}
}

func reverseSorted(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - 1 - i
	}
	return data
}

func (w *SortingWorkload) RunBaseline() ([]int, error) {
	data := reverseSorted(w.n)
	for i := 0; i < len(data); i++ {
		for j := 0; j < len(data)-1-i; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
			}
		}
	}
	return data, nil
}

func (w *SortingWorkload) RunOptimized() ([]int, error) {
	data := reverseSorted(w.n)
	slices.Sort(data)
	return data, nil
}

func (w *SortingWorkload) ValidateOutputs(baseline, optimized []int) ValidationResult {
	return CompareSlices(w.validator, baseline, optimized)
}

// FibonacciBaseline is the naive exponential recursion.
func FibonacciBaseline(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	return FibonacciBaseline(n-1) + FibonacciBaseline(n-2)
}

// FibonacciOptimized fills a table bottom-up.
func FibonacciOptimized(n uint) uint64 {
	if n <= 1 {
		return uint64(n)
	}
	fib := make([]uint64, n+1)
	fib[1] = 1
	for i := uint(2); i <= n; i++ {
		fib[i] = fib[i-1] + fib[i-2]
	}
	return fib[n]
}

// FibonacciWorkload certifies the memoized fibonacci against the recursive
// definition for one n.
type FibonacciWorkload struct {
	validator *Validator
	n         uint
}

// NewFibonacciWorkload returns a workload computing fibonacci(n).
func NewFibonacciWorkload(v *Validator, n uint) *FibonacciWorkload {
	return &FibonacciWorkload{validator: v, n: n}
}

func (w *FibonacciWorkload) RunBaseline() (uint64, error) {
	return FibonacciBaseline(w.n), nil
}

func (w *FibonacciWorkload) RunOptimized() (uint64, error) {
	return FibonacciOptimized(w.n), nil
}

func (w *FibonacciWorkload) ValidateOutputs(baseline, optimized uint64) ValidationResult {
	if baseline == optimized {
		return Success()
	}
	return Failure(fmt.Sprintf("fibonacci mismatch: baseline=%d, optimized=%d", baseline, optimized))
}

// StringBuildWorkload certifies pre-allocated building via strings.Builder
// against naive repeated concatenation. Outputs must be byte-identical.
type StringBuildWorkload struct {
	validator *Validator
	count     int
}

// NewStringBuildWorkload returns a workload building count lines.
func NewStringBuildWorkload(v *Validator, count int) *StringBuildWorkload {
	return &StringBuildWorkload{validator: v, count: count}
}

func (w *StringBuildWorkload) RunBaseline() (string, error) {
	result := ""
	for i := 0; i < w.count; i++ {
		result = result + fmt.Sprintf("Item %d: %d\n", i, i*i)
	}
	return result, nil
}

func (w *StringBuildWorkload) RunOptimized() (string, error) {
	var b strings.Builder
	b.Grow(w.count * 20)
	for i := 0; i < w.count; i++ {
		fmt.Fprintf(&b, "Item %d: %d\n", i, i*i)
	}
	return b.String(), nil
}

func (w *StringBuildWorkload) ValidateOutputs(baseline, optimized string) ValidationResult {
	return w.validator.CompareStrings(baseline, optimized)
}
