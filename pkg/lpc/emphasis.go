// ABOUTME: Pre-emphasis and de-emphasis filters
// ABOUTME: Matched first-order pair applied around analysis and synthesis
package lpc

// emphasisCoefficient sets the spectral tilt added before analysis and
// removed after synthesis. The two filters are exact inverses.
const emphasisCoefficient = 0.9375

// Preemphasis is the first-order high-pass applied before LPC
// analysis: y[n] = x[n] - 0.9375*x[n-1]. Filter memory persists
// across calls until Reset; the encoder resets it at each frame
// boundary unless configured to carry state.
type Preemphasis struct {
	prev float64
}

// NewPreemphasis creates a pre-emphasis filter with zero memory.
func NewPreemphasis() *Preemphasis { return &Preemphasis{} }

// Process filters frame in place.
func (p *Preemphasis) Process(frame []float64) {
	for i, x := range frame {
		frame[i] = x - emphasisCoefficient*p.prev
		p.prev = x
	}
}

// Reset clears the filter memory.
func (p *Preemphasis) Reset() { p.prev = 0 }

// Prime sets the filter memory as if x had just been processed.
func (p *Preemphasis) Prime(x float64) { p.prev = x }

// Deemphasis inverts Preemphasis on the synthesis side:
// y[n] = x[n] + 0.9375*y[n-1].
type Deemphasis struct {
	prev float64
}

// NewDeemphasis creates a de-emphasis filter with zero memory.
func NewDeemphasis() *Deemphasis { return &Deemphasis{} }

// Process filters frame in place.
func (d *Deemphasis) Process(frame []float64) {
	for i, x := range frame {
		y := x + emphasisCoefficient*d.prev
		frame[i] = y
		d.prev = y
	}
}

// Reset clears the filter memory.
func (d *Deemphasis) Reset() { d.prev = 0 }
