// ABOUTME: Tests for the all-pole synthesis filter
// ABOUTME: Known impulse responses, gain scaling, and state continuity
package lpc

import (
	"math"
	"testing"
)

func TestSynthesizerIdentityFilter(t *testing.T) {
	s := NewSynthesizer(2)
	frame := []float64{1, -0.5, 0.25, 0}
	s.Process(frame, 2, []float64{1, 0, 0})

	want := []float64{2, -1, 0.5, 0}
	for i := range want {
		if frame[i] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], frame[i])
		}
	}
}

func TestSynthesizerFirstOrderImpulseResponse(t *testing.T) {
	s := NewSynthesizer(1)
	frame := []float64{1, 0, 0, 0}
	s.Process(frame, 1, []float64{1, -0.9})

	// 1/(1 - 0.9 z^-1) decays geometrically.
	want := []float64{1, 0.9, 0.81, 0.729}
	for i := range want {
		if math.Abs(frame[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], frame[i])
		}
	}
}

func TestSynthesizerSecondOrderImpulseResponse(t *testing.T) {
	s := NewSynthesizer(2)
	frame := []float64{1, 0, 0, 0, 0}
	s.Process(frame, 1, []float64{1, -1, 0.5})

	// y[n] = x[n] + y[n-1] - 0.5*y[n-2]
	want := []float64{1, 1, 0.5, 0, -0.25}
	for i := range want {
		if math.Abs(frame[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], frame[i])
		}
	}
}

func TestSynthesizerStateContinuity(t *testing.T) {
	// Processing a signal in two chunks must equal processing it whole.
	coeffs := []float64{1, -0.9, 0.4}
	whole := []float64{1, 0.5, -0.25, 0, 0.75, -1, 0.125, 0}
	split := make([]float64, len(whole))
	copy(split, whole)

	NewSynthesizer(2).Process(whole, 1.5, coeffs)

	s := NewSynthesizer(2)
	s.Process(split[:3], 1.5, coeffs)
	s.Process(split[3:], 1.5, coeffs)

	for i := range whole {
		if split[i] != whole[i] {
			t.Errorf("sample %d: split %v, whole %v", i, split[i], whole[i])
		}
	}
}

func TestSynthesizerReset(t *testing.T) {
	s := NewSynthesizer(1)
	first := []float64{1, 0}
	s.Process(first, 1, []float64{1, -0.9})

	s.Reset()
	second := []float64{1, 0}
	s.Process(second, 1, []float64{1, -0.9})

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("sample %d: expected identical output after Reset, got %v and %v", i, first[i], second[i])
		}
	}
}
