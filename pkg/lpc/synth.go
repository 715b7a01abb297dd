// ABOUTME: All-pole synthesis filter
// ABOUTME: Direct form II transposed with state carried across frames
package lpc

// Synthesizer runs the all-pole filter gain/A(z) that rebuilds audio
// from excitation signals. The internal state persists across frames
// so successive windows join continuously; Reset clears it.
type Synthesizer struct {
	state []float64
}

// NewSynthesizer creates a synthesizer for polynomials of the given
// order, with zero initial state.
func NewSynthesizer(order int) *Synthesizer {
	return &Synthesizer{state: make([]float64, order)}
}

// Process filters the excitation in place through gain/A(z), where
// coeffs is the denominator polynomial [1, a1, ..., aOrder]. The
// direct form II transposed update keeps a state vector of length
// order:
//
//	y[n]       = gain*x[n] + z[0]
//	z[i]       = z[i+1] - coeffs[i+1]*y[n]
//	z[order-1] = -coeffs[order]*y[n]
func (s *Synthesizer) Process(excitation []float64, gain float64, coeffs []float64) {
	order := len(s.state)
	for n, x := range excitation {
		y := gain*x + s.state[0]
		for i := 0; i < order-1; i++ {
			s.state[i] = s.state[i+1] - coeffs[i+1]*y
		}
		s.state[order-1] = -coeffs[order] * y
		excitation[n] = y
	}
}

// Reset zeroes the filter memory.
func (s *Synthesizer) Reset() {
	for i := range s.state {
		s.state[i] = 0
	}
}
