// ABOUTME: Signal analysis into an encoded stream
// ABOUTME: Per-frame silence, pitch, emphasis and LPC solving with optional fan-out
package lpc

import (
	"golang.org/x/sync/errgroup"
)

// Encoder defaults. A zero WindowSize derives a 30 ms window from the
// sample rate at encode time.
const (
	DefaultOrder          = 10
	DefaultOverlapPercent = 50

	defaultWindowMillis = 30
)

// EncoderConfig selects the analysis parameters.
type EncoderConfig struct {
	// WindowSize in samples; 0 derives a 30 ms window from the sample
	// rate passed to Encode.
	WindowSize int
	// OverlapPercent of consecutive windows, 0-99.
	OverlapPercent int
	// Order of the prediction filter.
	Order int
	// CarryEmphasisState keeps pre-emphasis memory across frame
	// boundaries instead of resetting it per frame.
	CarryEmphasisState bool
	// Workers fans frame analysis out across goroutines when > 1.
	// The stream is identical to the sequential result.
	Workers int
}

// DefaultConfig returns the standard encoder parameters: a 30 ms
// window, 50% overlap, order 10, sequential analysis.
func DefaultConfig() EncoderConfig {
	return EncoderConfig{
		OverlapPercent: DefaultOverlapPercent,
		Order:          DefaultOrder,
		Workers:        1,
	}
}

// Encoder analyzes mono audio into LPC streams.
type Encoder struct {
	cfg EncoderConfig
}

// NewEncoder creates an encoder with the given configuration. The
// configuration is validated at Encode time, once the window size is
// known.
func NewEncoder(cfg EncoderConfig) *Encoder {
	return &Encoder{cfg: cfg}
}

// Encode analyzes mono samples into a stream of LPC frames. Each
// window is checked for silence, its pitch estimated on the raw
// samples, then pre-emphasized and solved for filter coefficients and
// gain.
func (e *Encoder) Encode(samples []float64, sampleRate int) (*Stream, error) {
	window := e.cfg.WindowSize
	if window == 0 && sampleRate > 0 {
		window = sampleRate * defaultWindowMillis / 1000
	}
	header := Header{
		WindowSize:     window,
		SampleRate:     sampleRate,
		OverlapPercent: e.cfg.OverlapPercent,
		Order:          e.cfg.Order,
	}
	if err := header.Validate(); err != nil {
		return nil, err
	}

	framer := NewFramer(samples, window, header.HopSize())
	frames := make([]Frame, framer.Count())

	if e.cfg.Workers > 1 {
		if err := e.encodeParallel(framer, header, frames); err != nil {
			return nil, err
		}
	} else {
		e.encodeSequential(framer, header, frames)
	}
	return &Stream{Header: header, Frames: frames}, nil
}

func (e *Encoder) encodeSequential(framer *Framer, h Header, frames []Frame) {
	pre := NewPreemphasis()
	for i := 0; ; i++ {
		frame, ok := framer.Next()
		if !ok {
			break
		}
		if !e.cfg.CarryEmphasisState {
			pre.Reset()
		}
		frames[i] = analyzeFrame(frame, h, pre)
	}
}

// encodeParallel distributes frames over a bounded worker group.
// Results land at pre-assigned indices, so frame order is preserved.
// Carried emphasis state stays exact: the pre-emphasis memory entering
// frame i is the last raw sample of frame i-1, which is known without
// running the earlier frames.
func (e *Encoder) encodeParallel(framer *Framer, h Header, frames []Frame) error {
	var g errgroup.Group
	g.SetLimit(e.cfg.Workers)

	for i := 0; ; i++ {
		frame, ok := framer.Next()
		if !ok {
			break
		}
		i, frame := i, frame
		g.Go(func() error {
			pre := NewPreemphasis()
			if e.cfg.CarryEmphasisState && i > 0 {
				pre.Prime(framer.samples[(i-1)*framer.hop+framer.window-1])
			}
			frames[i] = analyzeFrame(frame, h, pre)
			return nil
		})
	}
	return g.Wait()
}

// analyzeFrame runs the analysis chain for one window. Silent windows
// short-circuit to an empty frame; frame is mutated by pre-emphasis.
func analyzeFrame(frame []float64, h Header, pre *Preemphasis) Frame {
	if IsSilent(frame) {
		return Frame{Pitch: 0, Gain: 0, Coefficients: identityCoefficients(h.Order)}
	}

	pitch := EstimatePitch(frame, h.SampleRate)
	pre.Process(frame)
	coeffs, gain := Analyze(frame, h.Order)
	return Frame{Pitch: pitch, Gain: gain, Coefficients: coeffs}
}
