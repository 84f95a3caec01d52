// Package parity tolerance-based comparison of baseline and optimized outputs
package parity

import (
	"fmt"
	"math"
	"os"
)

// Validator decides whether two concrete values, one from a baseline run and
// one from an optimized run, are equal enough to certify. A Validator is
// immutable after construction and may be shared across concurrent
// validations.
type Validator struct {
	// Tolerance is the maximum allowed absolute difference between two
	// floating-point values.
	Tolerance float64

	// MaxDiffChars caps how much of a mismatching value is embedded in a
	// failure message, keeping diagnostics bounded for large elements.
	MaxDiffChars int
}

// NewValidator returns a validator with the given absolute tolerance.
func NewValidator(tolerance float64) *Validator {
	return &Validator{
		Tolerance:    tolerance,
		MaxDiffChars: 64,
	}
}

// DefaultValidator returns the standard validator: 1e-10 absolute tolerance,
// strict enough that only representation-level noise passes.
func DefaultValidator() *Validator {
	return NewValidator(1e-10)
}

// StrictValidator returns a validator for results that must match to the
// last representable bit or very near it.
func StrictValidator() *Validator {
	return NewValidator(1e-12)
}

// RelaxedValidator returns a validator for reductions whose optimized variant
// legitimately reorders floating-point accumulation (chunked or parallel
// sums). Reordering shifts rounding, not semantics.
func RelaxedValidator() *Validator {
	return NewValidator(1e-6)
}

// CompareFloat64 reports whether two floats are equal within tolerance.
// NaN is treated as interchangeable with NaN, and infinities match when their
// signs do: optimized numeric paths may produce differently-signed zeros or
// NaN payloads that are semantically the same result.
func (v *Validator) CompareFloat64(baseline, optimized float64) bool {
	if math.IsNaN(baseline) && math.IsNaN(optimized) {
		return true
	}
	if math.IsInf(baseline, 0) && math.IsInf(optimized, 0) {
		return math.Signbit(baseline) == math.Signbit(optimized)
	}
	return math.Abs(baseline-optimized) <= v.Tolerance
}

// CompareFloat64Slice compares two float sequences position by position.
// Lengths are checked first; afterwards the first out-of-tolerance pair fails
// with its index, both values, and the absolute difference. Ordering is part
// of the contract being certified, so a reordered result fails even when the
// multiset of values is identical.
func (v *Validator) CompareFloat64Slice(baseline, optimized []float64) ValidationResult {
	if len(baseline) != len(optimized) {
		return Failure(fmt.Sprintf("length mismatch: baseline=%d, optimized=%d",
			len(baseline), len(optimized)))
	}
	for i, b := range baseline {
		o := optimized[i]
		if !v.CompareFloat64(b, o) {
			return Failure(fmt.Sprintf("value mismatch at index %d: baseline=%v, optimized=%v, diff=%v",
				i, b, o, math.Abs(b-o)))
		}
	}
	return Success()
}

// CompareSlices compares two ordered sequences of any comparable element type
// exactly. Like CompareFloat64Slice this is position-sensitive: a sieve must
// enumerate ascending, a sort must keep its order.
func CompareSlices[T comparable](v *Validator, baseline, optimized []T) ValidationResult {
	if len(baseline) != len(optimized) {
		return Failure(fmt.Sprintf("length mismatch: baseline=%d, optimized=%d",
			len(baseline), len(optimized)))
	}
	for i, b := range baseline {
		if b != optimized[i] {
			return Failure(fmt.Sprintf("value mismatch at index %d: baseline=%s, optimized=%s",
				i, v.clip(fmt.Sprintf("%v", b)), v.clip(fmt.Sprintf("%v", optimized[i]))))
		}
	}
	return Success()
}

// CompareStrings compares two texts byte for byte. Failure reports the two
// lengths only, never the content, so diagnostics stay bounded for large
// outputs.
func (v *Validator) CompareStrings(baseline, optimized string) ValidationResult {
	if baseline == optimized {
		return Success()
	}
	return Failure(fmt.Sprintf("string mismatch: baseline length=%d, optimized length=%d",
		len(baseline), len(optimized)))
}

// CompareKeyCounts compares two key-count containers regardless of their
// underlying storage. Cardinalities are checked first; every key of the
// baseline must then appear in the optimized container with an equal count.
// With equal cardinalities the directional check implies full equivalence.
func (v *Validator) CompareKeyCounts(baseline, optimized KeyCounts) ValidationResult {
	if baseline.Len() != optimized.Len() {
		return Failure(fmt.Sprintf("key count size mismatch: baseline=%d, optimized=%d",
			baseline.Len(), optimized.Len()))
	}
	result := Success()
	baseline.Range(func(key string, count int) bool {
		got, ok := optimized.Count(key)
		if !ok {
			result = Failure(fmt.Sprintf("key %q missing in optimized counts", v.clip(key)))
			return false
		}
		if got != count {
			result = Failure(fmt.Sprintf("count mismatch for key %q: baseline=%d, optimized=%d",
				v.clip(key), count, got))
			return false
		}
		return true
	})
	return result
}

// CompareFiles compares the contents of two files produced by the baseline
// and optimized runs. Read errors are reported as failures rather than value
// mismatches.
func (v *Validator) CompareFiles(baselinePath, optimizedPath string) ValidationResult {
	baseline, err := os.ReadFile(baselinePath)
	if err != nil {
		return Failure(fmt.Sprintf("failed to read baseline file: %v", err))
	}
	optimized, err := os.ReadFile(optimizedPath)
	if err != nil {
		return Failure(fmt.Sprintf("failed to read optimized file: %v", err))
	}
	return v.CompareStrings(string(baseline), string(optimized))
}

// ValidateNumericResult wraps a scalar comparison with a labeled diagnostic
// so batch reports can name which check diverged.
func (v *Validator) ValidateNumericResult(baseline, optimized float64, name string) ValidationResult {
	if v.CompareFloat64(baseline, optimized) {
		return Success()
	}
	return Failure(fmt.Sprintf("%s: numeric mismatch - baseline=%v, optimized=%v, diff=%v",
		name, baseline, optimized, math.Abs(baseline-optimized)))
}

// clip truncates an embedded value for diagnostics.
func (v *Validator) clip(s string) string {
	max := v.MaxDiffChars
	if max <= 0 {
		max = 64
	}
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
