// ABOUTME: Tests for FFT-based autocorrelation
// ABOUTME: Checks against direct time-domain sums and known signals
package lpc

import (
	"math"
	"testing"
)

// directAutocorrelate is the O(n^2) reference the FFT path must match.
func directAutocorrelate(x []float64) []float64 {
	out := make([]float64, len(x))
	for k := range out {
		sum := 0.0
		for n := 0; n+k < len(x); n++ {
			sum += x[n] * x[n+k]
		}
		out[k] = sum
	}
	return out
}

func TestAutocorrelateMatchesDirect(t *testing.T) {
	signals := map[string][]float64{
		"small":    {1, 2, 3, 4},
		"impulse":  {1, 0, 0, 0, 0, 0},
		"negative": {0.5, -0.25, 0.75, -1, 0.125},
		"odd len":  {1, 2, 3, 4, 5, 6, 7},
	}

	for name, x := range signals {
		t.Run(name, func(t *testing.T) {
			got := autocorrelate(x)
			want := directAutocorrelate(x)
			if len(got) != len(want) {
				t.Fatalf("expected %d lags, got %d", len(want), len(got))
			}
			for k := range want {
				if math.Abs(got[k]-want[k]) > 1e-9 {
					t.Errorf("lag %d: expected %v, got %v", k, want[k], got[k])
				}
			}
		})
	}
}

func TestAutocorrelateKnownValues(t *testing.T) {
	got := autocorrelate([]float64{1, 2, 3, 4})
	want := []float64{30, 20, 11, 4}
	for k := range want {
		if math.Abs(got[k]-want[k]) > 1e-9 {
			t.Errorf("lag %d: expected %v, got %v", k, want[k], got[k])
		}
	}
}

func TestAutocorrelateEmpty(t *testing.T) {
	if got := autocorrelate(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestAutocorrelatePeriodicPeak(t *testing.T) {
	// A sine with period 32 must correlate with itself most strongly,
	// after lag zero, near lag 32.
	x := make([]float64, 256)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 32)
	}
	rxx := autocorrelate(x)

	peak := 16
	for k := 17; k < 48; k++ {
		if rxx[k] > rxx[peak] {
			peak = k
		}
	}
	if peak != 32 {
		t.Errorf("expected correlation peak at lag 32, got %d", peak)
	}
}

func TestNextPow2(t *testing.T) {
	tests := []struct{ in, out int }{
		{1, 1}, {2, 2}, {3, 4}, {512, 512}, {513, 1024},
	}
	for _, tt := range tests {
		if got := nextPow2(tt.in); got != tt.out {
			t.Errorf("nextPow2(%d): expected %d, got %d", tt.in, tt.out, got)
		}
	}
}
