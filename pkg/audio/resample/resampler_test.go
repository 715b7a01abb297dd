// ABOUTME: Tests for linear interpolation resampling
// ABOUTME: Exact ramp values for both directions plus passthrough cases
package resample

import (
	"math"
	"testing"
)

func TestConvertDownsample(t *testing.T) {
	// Halving the rate keeps every second sample of a ramp.
	in := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	out := Convert(in, 8000, 4000)

	want := []float64{0, 2, 4, 6}
	if len(out) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(out))
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestConvertUpsample(t *testing.T) {
	// Doubling the rate interpolates midpoints on a ramp, holding the
	// final value once the input runs out.
	in := []float64{0, 1, 2, 3}
	out := Convert(in, 4000, 8000)

	want := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3, 3}
	if len(out) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(out))
	}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestConvertOutputLength(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		from, to int
		expected int
	}{
		{"6x down", 48000, 48000, 8000, 8000},
		{"2x down", 1000, 16000, 8000, 500},
		{"3x down", 999, 24000, 8000, 333},
		{"up", 100, 8000, 12000, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Convert(make([]float64, tt.in), tt.from, tt.to)
			if len(out) != tt.expected {
				t.Errorf("expected %d samples, got %d", tt.expected, len(out))
			}
		})
	}
}

func TestConvertPassthrough(t *testing.T) {
	in := []float64{0.5, -0.5}

	if out := Convert(in, 8000, 8000); &out[0] != &in[0] {
		t.Error("expected same-rate input returned unchanged")
	}
	if out := Convert(in, 0, 8000); &out[0] != &in[0] {
		t.Error("expected invalid rate to pass input through")
	}
	if out := Convert(nil, 8000, 4000); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}
