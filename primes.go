// Package parity prime enumeration, trial division vs sieve
package parity

import "math"

// PrimesBaseline enumerates all primes <= limit by naive trial division:
// each candidate n is tested against every integer in [2, n-1].
func PrimesBaseline(limit int) []int {
	primes := []int{}
	for n := 2; n <= limit; n++ {
		isPrime := true
		for i := 2; i < n; i++ {
			if n%i == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes = append(primes, n)
		}
	}
	return primes
}

// PrimesOptimized enumerates the same primes with a Sieve of Eratosthenes.
// Equality with the baseline is exact: the identical ascending sequence for
// every limit >= 0.
func PrimesOptimized(limit int) []int {
	if limit < 2 {
		return []int{}
	}

	isPrime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		isPrime[i] = true
	}

	for i := 2; i <= int(math.Sqrt(float64(limit))); i++ {
		if isPrime[i] {
			for j := i * i; j <= limit; j += i {
				isPrime[j] = false
			}
		}
	}

	primes := []int{}
	for i, p := range isPrime {
		if p {
			primes = append(primes, i)
		}
	}
	return primes
}

// PrimeWorkload certifies the two prime kernels for one inclusive bound.
type PrimeWorkload struct {
	validator *Validator
	limit     int
}

// NewPrimeWorkload returns a workload enumerating primes up to limit.
func NewPrimeWorkload(v *Validator, limit int) *PrimeWorkload {
	return &PrimeWorkload{validator: v, limit: limit}
}

func (w *PrimeWorkload) RunBaseline() ([]int, error) {
	return PrimesBaseline(w.limit), nil
}

func (w *PrimeWorkload) RunOptimized() ([]int, error) {
	return PrimesOptimized(w.limit), nil
}

func (w *PrimeWorkload) ValidateOutputs(baseline, optimized []int) ValidationResult {
	return CompareSlices(w.validator, baseline, optimized)
}
