// Package parity word frequency counting, sequential vs parallel
package parity

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WordCountWorkload certifies a parallel word counter against a sequential
// one over a set of text files. The containers differ on purpose: the
// baseline fills a plain map, the optimized path merges worker-local counts
// into a sharded counter, and the comparator sees both only through the
// KeyCounts interface.
type WordCountWorkload struct {
	validator *Validator
	paths     []string
	workers   int
}

// NewWordCountWorkload returns a workload counting words in paths.
func NewWordCountWorkload(v *Validator, paths []string, workers int) *WordCountWorkload {
	if workers < 1 {
		workers = 1
	}
	return &WordCountWorkload{validator: v, paths: paths, workers: workers}
}

func (w *WordCountWorkload) RunBaseline() (KeyCounts, error) {
	counts := MapCounts{}
	for _, path := range w.paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, NewDataError("WordCountWorkload.RunBaseline", "failed to read "+path, err)
		}
		for _, line := range strings.Split(string(content), "\n") {
			for _, word := range strings.Fields(line) {
				counts.Add(strings.ToLower(word), 1)
			}
		}
	}
	return counts, nil
}

func (w *WordCountWorkload) RunOptimized() (KeyCounts, error) {
	counts := NewShardedCounts()
	for _, path := range w.paths {
		lines, err := readLines(path)
		if err != nil {
			return nil, NewDataError("WordCountWorkload.RunOptimized", "failed to read "+path, err)
		}

		// Each worker counts a contiguous chunk of lines into a local
		// map, then folds it into the shared counter. Word counts are
		// additive, so the merged content is independent of worker
		// count and merge order.
		chunk := (len(lines) + w.workers - 1) / w.workers
		var g errgroup.Group
		for lo := 0; lo < len(lines); lo += chunk {
			hi := min(lo+chunk, len(lines))
			part := lines[lo:hi]
			g.Go(func() error {
				local := make(map[string]int)
				for _, line := range part {
					for _, word := range strings.Fields(line) {
						local[strings.ToLower(word)]++
					}
				}
				counts.Merge(local)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}
	return counts, nil
}

func (w *WordCountWorkload) ValidateOutputs(baseline, optimized KeyCounts) ValidationResult {
	return w.validator.CompareKeyCounts(baseline, optimized)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, ScanBufferSize), ScanBufferSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
