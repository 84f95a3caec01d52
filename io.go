// Package parity file processing workloads: CSV rewriting and counting
package parity

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// FilePair names the two output files a file-producing workload writes; the
// equality rule compares their contents.
type FilePair struct {
	BaselinePath  string
	OptimizedPath string
}

// CSVTransformWorkload certifies a buffered streaming CSV rewrite against a
// naive build-it-all-in-memory one. Both uppercase every field; the outputs
// are separate files compared byte for byte.
type CSVTransformWorkload struct {
	validator *Validator
	csvPath   string
	outDir    string
}

// NewCSVTransformWorkload returns a workload rewriting csvPath into outDir.
func NewCSVTransformWorkload(v *Validator, csvPath, outDir string) *CSVTransformWorkload {
	return &CSVTransformWorkload{validator: v, csvPath: csvPath, outDir: outDir}
}

func (w *CSVTransformWorkload) RunBaseline() (FilePair, error) {
	content, err := os.ReadFile(w.csvPath)
	if err != nil {
		return FilePair{}, NewDataError("CSVTransformWorkload.RunBaseline", "failed to read csv", err)
	}

	output := ""
	for _, line := range splitLines(string(content)) {
		fields := strings.Split(line, ",")
		for i, field := range fields {
			if i > 0 {
				output = output + ","
			}
			output = output + strings.ToUpper(field)
		}
		output = output + "\n"
	}

	outPath := filepath.Join(w.outDir, "output_baseline.csv")
	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		return FilePair{}, NewDataError("CSVTransformWorkload.RunBaseline", "failed to write output", err)
	}
	return FilePair{BaselinePath: outPath}, nil
}

func (w *CSVTransformWorkload) RunOptimized() (FilePair, error) {
	in, err := os.Open(w.csvPath)
	if err != nil {
		return FilePair{}, NewDataError("CSVTransformWorkload.RunOptimized", "failed to open csv", err)
	}
	defer in.Close()

	outPath := filepath.Join(w.outDir, "output_optimized.csv")
	out, err := os.Create(outPath)
	if err != nil {
		return FilePair{}, NewDataError("CSVTransformWorkload.RunOptimized", "failed to create output", err)
	}
	defer out.Close()

	writer := bufio.NewWriterSize(out, ScanBufferSize)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, ScanBufferSize), ScanBufferSize)

	// Field-wise uppercasing of ASCII CSV is the same as uppercasing the
	// whole line; the comma is untouched either way.
	for scanner.Scan() {
		writer.WriteString(strings.ToUpper(scanner.Text()))
		writer.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return FilePair{}, NewDataError("CSVTransformWorkload.RunOptimized", "failed to scan csv", err)
	}
	if err := writer.Flush(); err != nil {
		return FilePair{}, NewDataError("CSVTransformWorkload.RunOptimized", "failed to flush output", err)
	}
	return FilePair{OptimizedPath: outPath}, nil
}

func (w *CSVTransformWorkload) ValidateOutputs(baseline, optimized FilePair) ValidationResult {
	return w.validator.CompareFiles(baseline.BaselinePath, optimized.OptimizedPath)
}

// LineCountWorkload certifies streaming line counting against a whole-file
// read.
type LineCountWorkload struct {
	validator *Validator
	path      string
}

// NewLineCountWorkload returns a workload counting lines in the file at path.
func NewLineCountWorkload(v *Validator, path string) *LineCountWorkload {
	return &LineCountWorkload{validator: v, path: path}
}

func (w *LineCountWorkload) RunBaseline() (int, error) {
	content, err := os.ReadFile(w.path)
	if err != nil {
		return 0, NewDataError("LineCountWorkload.RunBaseline", "failed to read file", err)
	}
	return len(splitLines(string(content))), nil
}

func (w *LineCountWorkload) RunOptimized() (int, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return 0, NewDataError("LineCountWorkload.RunOptimized", "failed to open file", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, ScanBufferSize), ScanBufferSize)

	count := 0
	for scanner.Scan() {
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, NewDataError("LineCountWorkload.RunOptimized", "failed to scan file", err)
	}
	return count, nil
}

func (w *LineCountWorkload) ValidateOutputs(baseline, optimized int) ValidationResult {
	return w.validator.ValidateNumericResult(float64(baseline), float64(optimized), "line count")
}

// FileWordsWorkload certifies streaming word counting against a whole-file
// read.
type FileWordsWorkload struct {
	validator *Validator
	path      string
}

// NewFileWordsWorkload returns a workload counting words in the file at path.
func NewFileWordsWorkload(v *Validator, path string) *FileWordsWorkload {
	return &FileWordsWorkload{validator: v, path: path}
}

func (w *FileWordsWorkload) RunBaseline() (int, error) {
	content, err := os.ReadFile(w.path)
	if err != nil {
		return 0, NewDataError("FileWordsWorkload.RunBaseline", "failed to read file", err)
	}
	count := 0
	for _, line := range splitLines(string(content)) {
		count += len(strings.Fields(line))
	}
	return count, nil
}

func (w *FileWordsWorkload) RunOptimized() (int, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return 0, NewDataError("FileWordsWorkload.RunOptimized", "failed to open file", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, ScanBufferSize), ScanBufferSize)

	count := 0
	for scanner.Scan() {
		count += len(strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return 0, NewDataError("FileWordsWorkload.RunOptimized", "failed to scan file", err)
	}
	return count, nil
}

func (w *FileWordsWorkload) ValidateOutputs(baseline, optimized int) ValidationResult {
	return w.validator.ValidateNumericResult(float64(baseline), float64(optimized), "word count")
}

// splitLines splits text the way a line scanner sees it: a trailing newline
// terminates the last line instead of opening an empty one.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
