package parity

import (
	"math"
	"strings"
	"testing"
)

func TestCompareFloat64(t *testing.T) {
	v := DefaultValidator()

	tests := []struct {
		name      string
		baseline  float64
		optimized float64
		want      bool
	}{
		{"exact match", 1.5, 1.5, true},
		{"within tolerance", 1.0, 1.0 + 9e-11, true},
		{"at tolerance boundary", 0.0, 1e-10, true},
		{"beyond tolerance", 1.0, 1.0 + 2e-10, false},
		{"both NaN", math.NaN(), math.NaN(), true},
		{"NaN vs value", math.NaN(), 1.0, false},
		{"value vs NaN", 1.0, math.NaN(), false},
		{"both positive inf", math.Inf(1), math.Inf(1), true},
		{"both negative inf", math.Inf(-1), math.Inf(-1), true},
		{"opposite infinities", math.Inf(1), math.Inf(-1), false},
		{"inf vs finite", math.Inf(1), 1e308, false},
		{"zeros of opposite sign", 0.0, math.Copysign(0, -1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.CompareFloat64(tt.baseline, tt.optimized); got != tt.want {
				t.Errorf("CompareFloat64(%v, %v) = %v, want %v",
					tt.baseline, tt.optimized, got, tt.want)
			}
		})
	}
}

func TestValidatorPresets(t *testing.T) {
	if got := DefaultValidator().Tolerance; got != 1e-10 {
		t.Errorf("Default tolerance = %v, want 1e-10", got)
	}
	if got := StrictValidator().Tolerance; got != 1e-12 {
		t.Errorf("Strict tolerance = %v, want 1e-12", got)
	}
	if got := RelaxedValidator().Tolerance; got != 1e-6 {
		t.Errorf("Relaxed tolerance = %v, want 1e-6", got)
	}
}

func TestCompareFloat64Slice(t *testing.T) {
	v := DefaultValidator()

	t.Run("equal slices pass", func(t *testing.T) {
		r := v.CompareFloat64Slice([]float64{1, 2, 3}, []float64{1, 2, 3})
		if !r.Passed {
			t.Errorf("Expected pass, got %q", r.Message)
		}
	})

	t.Run("length mismatch reported first", func(t *testing.T) {
		r := v.CompareFloat64Slice([]float64{1, 2, 3}, []float64{1, 2})
		if r.Passed {
			t.Fatal("Expected failure for length mismatch")
		}
		if !strings.Contains(r.Message, "baseline=3") || !strings.Contains(r.Message, "optimized=2") {
			t.Errorf("Message %q should name both lengths", r.Message)
		}
	})

	t.Run("mismatch names index", func(t *testing.T) {
		r := v.CompareFloat64Slice([]float64{1, 2, 3}, []float64{1, 2.5, 3})
		if r.Passed {
			t.Fatal("Expected failure")
		}
		if !strings.Contains(r.Message, "index 1") {
			t.Errorf("Message %q should name index 1", r.Message)
		}
	})

	t.Run("reordered values fail", func(t *testing.T) {
		r := v.CompareFloat64Slice([]float64{1, 2, 3}, []float64{3, 2, 1})
		if r.Passed {
			t.Error("Position-sensitive comparison must reject reordering")
		}
	})
}

func TestCompareSlices(t *testing.T) {
	v := DefaultValidator()

	t.Run("ints", func(t *testing.T) {
		if r := CompareSlices(v, []int{2, 3, 5, 7}, []int{2, 3, 5, 7}); !r.Passed {
			t.Errorf("Expected pass, got %q", r.Message)
		}
		r := CompareSlices(v, []int{2, 3, 5}, []int{2, 4, 5})
		if r.Passed {
			t.Fatal("Expected failure")
		}
		if !strings.Contains(r.Message, "index 1") {
			t.Errorf("Message %q should name index 1", r.Message)
		}
	})

	t.Run("strings", func(t *testing.T) {
		if r := CompareSlices(v, []string{"a", "b"}, []string{"a", "b"}); !r.Passed {
			t.Errorf("Expected pass, got %q", r.Message)
		}
	})

	t.Run("large element clipped in diagnostic", func(t *testing.T) {
		long := strings.Repeat("x", 500)
		r := CompareSlices(v, []string{long}, []string{"y"})
		if r.Passed {
			t.Fatal("Expected failure")
		}
		if len(r.Message) > 300 {
			t.Errorf("Diagnostic not clipped: %d chars", len(r.Message))
		}
	})
}

func TestCompareStrings(t *testing.T) {
	v := DefaultValidator()

	if r := v.CompareStrings("hello", "hello"); !r.Passed {
		t.Errorf("Expected pass, got %q", r.Message)
	}

	r := v.CompareStrings("hello world", "hello")
	if r.Passed {
		t.Fatal("Expected failure")
	}
	if !strings.Contains(r.Message, "11") || !strings.Contains(r.Message, "5") {
		t.Errorf("Message %q should report both lengths", r.Message)
	}
	if strings.Contains(r.Message, "hello") {
		t.Errorf("Message %q must not embed content", r.Message)
	}
}

func TestCompareKeyCounts(t *testing.T) {
	v := DefaultValidator()

	build := func(counts map[string]int, sharded bool) KeyCounts {
		if sharded {
			sc := NewShardedCounts()
			for k, n := range counts {
				sc.Add(k, n)
			}
			return sc
		}
		mc := MapCounts{}
		for k, n := range counts {
			mc.Add(k, n)
		}
		return mc
	}

	t.Run("map vs sharded equal", func(t *testing.T) {
		a := build(map[string]int{"the": 3, "quick": 1, "fox": 2}, false)
		b := build(map[string]int{"the": 3, "quick": 1, "fox": 2}, true)
		if r := v.CompareKeyCounts(a, b); !r.Passed {
			t.Errorf("Expected pass, got %q", r.Message)
		}
	})

	t.Run("count mismatch names key", func(t *testing.T) {
		a := build(map[string]int{"a": 3, "b": 2}, false)
		b := build(map[string]int{"a": 3, "b": 3}, true)
		r := v.CompareKeyCounts(a, b)
		if r.Passed {
			t.Fatal("Expected failure")
		}
		if !strings.Contains(r.Message, `"b"`) {
			t.Errorf("Message %q should name the diverging key", r.Message)
		}
		if !strings.Contains(r.Message, "baseline=2") || !strings.Contains(r.Message, "optimized=3") {
			t.Errorf("Message %q should carry both counts", r.Message)
		}
	})

	t.Run("cardinality mismatch", func(t *testing.T) {
		a := build(map[string]int{"a": 1, "b": 1}, false)
		b := build(map[string]int{"a": 1}, true)
		r := v.CompareKeyCounts(a, b)
		if r.Passed {
			t.Fatal("Expected failure")
		}
		if !strings.Contains(r.Message, "size mismatch") {
			t.Errorf("Message %q should report cardinality mismatch", r.Message)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		a := build(map[string]int{"a": 1, "b": 1}, false)
		b := build(map[string]int{"a": 1, "c": 1}, true)
		r := v.CompareKeyCounts(a, b)
		if r.Passed {
			t.Error("Expected failure for missing key")
		}
	})
}

func TestValidateNumericResult(t *testing.T) {
	v := DefaultValidator()

	if r := v.ValidateNumericResult(3.14, 3.14, "mean"); !r.Passed {
		t.Errorf("Expected pass, got %q", r.Message)
	}

	r := v.ValidateNumericResult(3.14, 2.71, "mean")
	if r.Passed {
		t.Fatal("Expected failure")
	}
	if !strings.HasPrefix(r.Message, "mean:") {
		t.Errorf("Message %q should be labeled with the check name", r.Message)
	}
}
