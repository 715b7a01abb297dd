// ABOUTME: Frame iteration over a sample buffer
// ABOUTME: Fixed windows advanced by the hop size, final window zero-padded
package lpc

// Framer slices a signal into analysis windows. Frames start at
// multiples of the hop size; the final frame is zero-padded to the
// window size when the signal ends mid-window, so every input sample
// is covered by at least one frame.
type Framer struct {
	samples []float64
	window  int
	hop     int
	count   int
	next    int
}

// NewFramer creates a framer over samples. window and hop must be
// positive, as guaranteed by a validated Header.
func NewFramer(samples []float64, window, hop int) *Framer {
	f := &Framer{samples: samples, window: window, hop: hop}
	f.count = frameCount(len(samples), window, hop)
	return f
}

// frameCount is the smallest n with (n-1)*hop + window >= total, or 0
// when there is no input.
func frameCount(total, window, hop int) int {
	if total == 0 {
		return 0
	}
	if total <= window {
		return 1
	}
	return 1 + (total-window+hop-1)/hop
}

// Count returns the number of frames the framer will yield.
func (f *Framer) Count() int { return f.count }

// Next returns the next frame, or false once the signal is exhausted.
// The slice is freshly allocated each call; callers may modify it.
func (f *Framer) Next() ([]float64, bool) {
	if f.next >= f.count {
		return nil, false
	}
	start := f.next * f.hop
	f.next++

	end := start + f.window
	if end > len(f.samples) {
		end = len(f.samples)
	}
	frame := make([]float64, f.window)
	copy(frame, f.samples[start:end])
	return frame, true
}

// Reset restarts iteration from the first frame.
func (f *Framer) Reset() { f.next = 0 }
