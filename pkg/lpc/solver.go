// ABOUTME: LPC coefficient and gain computation
// ABOUTME: Levinson-Durbin recursion over the frame autocorrelation
package lpc

import "math"

// Analyze computes the synthesis filter for one pre-emphasized frame:
// the denominator polynomial [1, a1, ..., aOrder] and the excitation
// gain. Degenerate frames (no energy, unstable recursion) fall back to
// the identity polynomial rather than failing.
func Analyze(frame []float64, order int) (coeffs []float64, gain float64) {
	rxx := autocorrelate(frame)
	lags := make([]float64, order+1)
	copy(lags, rxx) // zero-padded when the frame is shorter than order+1

	coeffs = levinsonDurbin(lags, order)
	gain = frameGain(lags, coeffs)
	return coeffs, gain
}

// levinsonDurbin solves the Toeplitz normal equations built from
// autocorrelation lags r[0..order] for the prediction polynomial. A
// degenerate pivot at any step (zero, negative or non-finite
// prediction error) abandons the recursion for the identity
// polynomial.
func levinsonDurbin(r []float64, order int) []float64 {
	a := identityCoefficients(order)
	if r[0] == 0 {
		return a
	}

	e := r[0]
	prev := make([]float64, order+1)
	for i := 1; i <= order; i++ {
		if e <= 0 || math.IsNaN(e) || math.IsInf(e, 0) {
			return identityCoefficients(order)
		}

		acc := r[i]
		for j := 1; j < i; j++ {
			acc += a[j] * r[i-j]
		}
		k := -acc / e

		copy(prev, a)
		for j := 1; j < i; j++ {
			a[j] = prev[j] + k*prev[i-j]
		}
		a[i] = k
		e *= 1 - k*k
	}

	for _, c := range a {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return identityCoefficients(order)
		}
	}
	return a
}

// frameGain derives the excitation gain from the autocorrelation and
// the filter polynomial: gain^2 = r[0] - sum(coeffs[k]*r[k]). The
// radicand is clamped at zero.
func frameGain(r []float64, coeffs []float64) float64 {
	g2 := r[0]
	for k := 1; k < len(coeffs); k++ {
		g2 -= coeffs[k] * r[k]
	}
	if g2 < 0 || math.IsNaN(g2) {
		return 0
	}
	return math.Sqrt(g2)
}
