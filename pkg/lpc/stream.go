// ABOUTME: Encoded stream model
// ABOUTME: Header parameters, per-frame analysis results, and validation
package lpc

import "fmt"

// Header carries the analysis parameters shared by every frame of a
// stream. It is fixed once encoding starts.
type Header struct {
	WindowSize     int
	SampleRate     int
	OverlapPercent int
	Order          int
}

// HopSize returns the frame advance in samples.
func (h Header) HopSize() int {
	return h.WindowSize - (h.OverlapPercent*h.WindowSize)/100
}

// Validate checks the header against the codec invariants.
func (h Header) Validate() error {
	switch {
	case h.WindowSize <= 0:
		return fmt.Errorf("%w: window size %d", ErrHeader, h.WindowSize)
	case h.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrHeader, h.SampleRate)
	case h.Order < 1:
		return fmt.Errorf("%w: order %d", ErrHeader, h.Order)
	case h.OverlapPercent < 0 || h.OverlapPercent >= 100:
		return fmt.Errorf("%w: overlap %d%%", ErrHeader, h.OverlapPercent)
	case h.HopSize() <= 0:
		return fmt.Errorf("%w: hop size %d", ErrHeader, h.HopSize())
	}
	return nil
}

// Frame holds the analysis results for one window of audio.
//
// Pitch is the estimated fundamental in Hz, 0 on silent frames, or
// Unvoiced when the window is aperiodic. Gain scales the excitation
// during synthesis; 0 marks silence. Coefficients is the denominator
// polynomial of the synthesis filter, length Order+1 with
// Coefficients[0] == 1.
type Frame struct {
	Pitch        float64
	Gain         float64
	Coefficients []float64
}

// Silent reports whether the frame carries no energy.
func (f Frame) Silent() bool { return f.Gain == 0 }

// Stream is an encoded signal: the shared header plus its frames in
// playback order. A stream is built once by an encoder and consumed
// in order by a decoder; it is not safe for concurrent mutation.
type Stream struct {
	Header Header
	Frames []Frame
}

// identityCoefficients returns [1, 0, ..., 0] of length order+1, the
// polynomial of a filter that passes the excitation through unchanged.
func identityCoefficients(order int) []float64 {
	c := make([]float64, order+1)
	c[0] = 1
	return c
}
