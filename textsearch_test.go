package parity

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNaiveIndex(t *testing.T) {
	tests := []struct {
		s, pattern string
		want       int
	}{
		{"hello world", "world", 6},
		{"hello world", "hello", 0},
		{"hello world", "xyz", -1},
		{"", "a", -1},
		{"abc", "", 0},
		{"aaab", "aab", 1},
		{"mississippi", "issip", 4},
	}

	for _, tt := range tests {
		if got := naiveIndex(tt.s, tt.pattern); got != tt.want {
			t.Errorf("naiveIndex(%q, %q) = %d, want %d", tt.s, tt.pattern, got, tt.want)
		}
	}
}

func TestTextSearchWorkload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	content := "the kernel boots\n" +
		"no match here\n" +
		"tuned kernel paths\n" +
		"kernel kernel twice, first position wins\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewTextSearchWorkload(DefaultValidator(), path, "kernel")

	baseline, err := w.RunBaseline()
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0*1000 + 4, 2*1000 + 6, 3*1000 + 0}
	if r := CompareSlices(DefaultValidator(), want, baseline); !r.Passed {
		t.Errorf("Baseline matches wrong: %s", r.Message)
	}

	if r := Validate[[]int](w); !r.Passed {
		t.Errorf("Textsearch workload failed: %s", r.Message)
	}
}

func TestTextSearchOnGeneratedCorpus(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.txt")
	if err := GenerateTextCorpus(path, 500, 11); err != nil {
		t.Fatal(err)
	}

	w := NewTextSearchWorkload(DefaultValidator(), path, "optimization")
	if r := Validate[[]int](w); !r.Passed {
		t.Errorf("Textsearch workload failed on generated corpus: %s", r.Message)
	}
}
