// Package parity generic certification protocol and workload suite
package parity

import (
	"fmt"
)

// Workload binds a baseline run, an optimized run, and an output-equality
// rule into one certifiable unit. The two runs must be independently
// computable from the same input, with no shared mutable state.
type Workload[T any] interface {
	RunBaseline() (T, error)
	RunOptimized() (T, error)
	ValidateOutputs(baseline, optimized T) ValidationResult
}

// Validate certifies one workload: baseline first, then optimized, then the
// workload's equality rule. The runs are sequential, never overlapped, so a
// failure is always attributable to one variant. An error in either run is
// terminal and reported distinctly from a value mismatch.
func Validate[T any](w Workload[T]) ValidationResult {
	baseline, err := w.RunBaseline()
	if err != nil {
		return Failure(fmt.Sprintf("Baseline failed: %v", err))
	}
	optimized, err := w.RunOptimized()
	if err != nil {
		return Failure(fmt.Sprintf("Optimized failed: %v", err))
	}
	return w.ValidateOutputs(baseline, optimized)
}

// WorkloadOutcome pairs a workload name with its certification result.
type WorkloadOutcome struct {
	Name   string           `json:"name"`
	Result ValidationResult `json:"result"`
}

// Suite is the registry of certifiable workloads, bound to a dataset
// directory and a comparison policy.
type Suite struct {
	entries []suiteEntry
}

type suiteEntry struct {
	name string
	run  func() ValidationResult
}

// NewSuite builds the full workload catalogue over a generated dataset.
// Reductions whose optimized variant reorders float accumulation get the
// relaxed validator; everything else uses the supplied one.
func NewSuite(v *Validator, ds *Dataset, workers int) *Suite {
	if workers < 1 {
		workers = 1
	}
	s := &Suite{}
	Register[[]float64](s, "similarity", NewSimilarityWorkload(v, ds.StringPairsPath()))
	Register[[]int](s, "primes", NewPrimeWorkload(v, 100000))
	Register[[]float64](s, "matmul", NewMatMulWorkload(v, 256, workers))
	Register[AggregateStats](s, "aggregate", NewAggregateWorkload(RelaxedValidator(), ds.NumericPath()))
	Register[KeyCounts](s, "wordcount", NewWordCountWorkload(v, []string{ds.CorpusPath(), ds.LargeTextPath()}, workers))
	Register[[]int](s, "textsearch", NewTextSearchWorkload(v, ds.CorpusPath(), "optimization"))
	Register[[]float64](s, "pipeline", NewPipelineWorkload(v, 1000000))
	Register[[]int](s, "sorting", NewSortingWorkload(v, 10000))
	Register[uint64](s, "fibonacci", NewFibonacciWorkload(v, 35))
	Register[string](s, "stringbuild", NewStringBuildWorkload(v, 10000))
	Register[FilePair](s, "csvtransform", NewCSVTransformWorkload(v, ds.CSVPath(), ds.Dir))
	Register[int](s, "linecount", NewLineCountWorkload(v, ds.CorpusPath()))
	Register[int](s, "filewords", NewFileWordsWorkload(v, ds.LargeTextPath()))
	return s
}

// Register adds a workload to the suite under a unique name. Exported so
// callers can certify their own kernel pairs alongside the built-in
// catalogue.
func Register[T any](s *Suite, name string, w Workload[T]) {
	s.entries = append(s.entries, suiteEntry{
		name: name,
		run:  func() ValidationResult { return Validate(w) },
	})
}

// Names lists registered workloads in registration order.
func (s *Suite) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.name
	}
	return names
}

// Run certifies a single workload by name.
func (s *Suite) Run(name string) (ValidationResult, error) {
	for _, e := range s.entries {
		if e.name == name {
			return e.run(), nil
		}
	}
	return ValidationResult{}, NewInvalidArgError("Suite.Run",
		fmt.Sprintf("unknown workload %q", name))
}

// RunAll certifies every registered workload and returns the outcomes in
// registration order. Failures do not stop the sweep.
func (s *Suite) RunAll() []WorkloadOutcome {
	outcomes := make([]WorkloadOutcome, len(s.entries))
	for i, e := range s.entries {
		outcomes[i] = WorkloadOutcome{Name: e.name, Result: e.run()}
	}
	return outcomes
}
