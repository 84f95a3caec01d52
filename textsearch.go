// Package parity substring search over a text corpus
package parity

import (
	"bufio"
	"os"
	"strings"
)

// TextSearchWorkload certifies two substring searchers: a naive
// position-by-position scan against the standard library's optimized
// searcher. Each line contributes at most one match, encoded as
// line*1000+offset; corpus lines are generated shorter than the encoding
// base, so the encoding is lossless.
type TextSearchWorkload struct {
	validator *Validator
	path      string
	pattern   string
}

// NewTextSearchWorkload returns a workload searching for pattern in the file
// at path.
func NewTextSearchWorkload(v *Validator, path, pattern string) *TextSearchWorkload {
	return &TextSearchWorkload{validator: v, path: path, pattern: pattern}
}

func (w *TextSearchWorkload) RunBaseline() ([]int, error) {
	content, err := os.ReadFile(w.path)
	if err != nil {
		return nil, NewDataError("TextSearchWorkload.RunBaseline", "failed to read corpus", err)
	}

	matches := []int{}
	for lineNum, line := range strings.Split(string(content), "\n") {
		if pos := naiveIndex(line, w.pattern); pos >= 0 {
			matches = append(matches, lineNum*1000+pos)
		}
	}
	return matches, nil
}

func (w *TextSearchWorkload) RunOptimized() ([]int, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return nil, NewDataError("TextSearchWorkload.RunOptimized", "failed to open corpus", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, ScanBufferSize), ScanBufferSize)

	matches := []int{}
	lineNum := 0
	for scanner.Scan() {
		if pos := strings.Index(scanner.Text(), w.pattern); pos >= 0 {
			matches = append(matches, lineNum*1000+pos)
		}
		lineNum++
	}
	if err := scanner.Err(); err != nil {
		return nil, NewDataError("TextSearchWorkload.RunOptimized", "failed to scan corpus", err)
	}
	return matches, nil
}

func (w *TextSearchWorkload) ValidateOutputs(baseline, optimized []int) ValidationResult {
	return CompareSlices(w.validator, baseline, optimized)
}

// naiveIndex is the baseline substring scan: compare pattern at every
// position, first hit wins.
func naiveIndex(s, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	for i := 0; i+len(pattern) <= len(s); i++ {
		match := true
		for j := 0; j < len(pattern); j++ {
			if s[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
