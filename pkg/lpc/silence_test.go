// ABOUTME: Tests for silence detection
// ABOUTME: Level threshold behavior around the -60 dB floor
package lpc

import (
	"math"
	"testing"
)

func TestIsSilent(t *testing.T) {
	loud := make([]float64, 256)
	quiet := make([]float64, 256)
	faint := make([]float64, 256)
	for i := range loud {
		loud[i] = 0.5 * math.Sin(2*math.Pi*float64(i)/32)
		quiet[i] = 0.0009 // about -60.9 dB
		faint[i] = 0.0011 // about -59.2 dB
	}

	tests := []struct {
		name     string
		frame    []float64
		expected bool
	}{
		{"empty", nil, true},
		{"all zeros", make([]float64, 256), true},
		{"sine at half scale", loud, false},
		{"below floor", quiet, true},
		{"just above floor", faint, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSilent(tt.frame); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRMS(t *testing.T) {
	tests := []struct {
		name     string
		frame    []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"zeros", []float64{0, 0, 0}, 0},
		{"constant", []float64{0.5, 0.5, 0.5, 0.5}, 0.5},
		{"mixed signs", []float64{1, -1, 1, -1}, 1},
		{"three four", []float64{3, 4}, math.Sqrt(12.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rms(tt.frame); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
