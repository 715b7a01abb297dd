// ABOUTME: Stream synthesis back to audio samples
// ABOUTME: Sequential excitation, filtering, de-emphasis and overlap-add
package lpc

import (
	"fmt"
	"math/rand"
)

// DecoderConfig adjusts synthesis behavior. The zero value mirrors the
// encoder defaults: per-frame emphasis reset, raw overlap-add, seeded
// deterministic noise.
type DecoderConfig struct {
	// CarryEmphasisState keeps de-emphasis memory across frame
	// boundaries instead of resetting it per frame.
	CarryEmphasisState bool
	// NormalizeOverlap divides each output sample by the number of
	// frames covering it, correcting the overlap gain buildup.
	NormalizeOverlap bool
	// Noise overrides the unvoiced excitation source.
	Noise *rand.Rand
}

// Decoder synthesizes LPC streams back into audio.
type Decoder struct {
	cfg DecoderConfig
}

// NewDecoder creates a decoder with the given configuration.
func NewDecoder(cfg DecoderConfig) *Decoder {
	return &Decoder{cfg: cfg}
}

// Decode synthesizes the stream into mono samples at the stream's
// sample rate. Frames are processed strictly in order: the synthesis
// filter state chains from one frame into the next, so a stream
// cannot be decoded piecemeal or in parallel. Output length is
// (len(Frames)-1)*HopSize + WindowSize.
func (d *Decoder) Decode(s *Stream) ([]float64, error) {
	if err := s.Header.Validate(); err != nil {
		return nil, err
	}
	if len(s.Frames) == 0 {
		return nil, nil
	}

	h := s.Header
	hop := h.HopSize()
	out := make([]float64, (len(s.Frames)-1)*hop+h.WindowSize)
	var cover []int
	if d.cfg.NormalizeOverlap {
		cover = make([]int, len(out))
	}

	excite := NewExcitation()
	if d.cfg.Noise != nil {
		excite = NewExcitationWithNoise(d.cfg.Noise)
	}
	synth := NewSynthesizer(h.Order)
	de := NewDeemphasis()

	for i, frame := range s.Frames {
		if len(frame.Coefficients) != h.Order+1 {
			return nil, fmt.Errorf("%w: frame %d has %d coefficients, want %d",
				ErrFormat, i, len(frame.Coefficients), h.Order+1)
		}
		if frame.Coefficients[0] != 1 {
			return nil, fmt.Errorf("%w: frame %d coefficients not normalized", ErrFormat, i)
		}

		base := i * hop
		if cover != nil {
			for j := 0; j < h.WindowSize; j++ {
				cover[base+j]++
			}
		}
		if frame.Silent() {
			// Silence contributes zeros; the filter state is kept.
			continue
		}

		signal, err := excite.Generate(frame.Pitch, h.WindowSize, h.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		synth.Process(signal, frame.Gain, frame.Coefficients)
		if !d.cfg.CarryEmphasisState {
			de.Reset()
		}
		de.Process(signal)

		for j, v := range signal {
			out[base+j] += v
		}
	}

	if cover != nil {
		for i, c := range cover {
			if c > 1 {
				out[i] /= float64(c)
			}
		}
	}
	return out, nil
}
