// ABOUTME: Excitation signal generation for synthesis
// ABOUTME: Uniform noise for unvoiced frames, impulse trains for voiced
package lpc

import (
	"fmt"
	"math/rand"
)

// defaultNoiseSeed makes unvoiced excitation reproducible from run to
// run. Decoders can swap in their own source via DecoderConfig.
const defaultNoiseSeed = 1

// Excitation produces per-frame synthesis input signals.
type Excitation struct {
	noise *rand.Rand
}

// NewExcitation creates a generator with the default deterministic
// noise source.
func NewExcitation() *Excitation {
	return NewExcitationWithNoise(rand.New(rand.NewSource(defaultNoiseSeed)))
}

// NewExcitationWithNoise creates a generator drawing unvoiced samples
// from the given source.
func NewExcitationWithNoise(noise *rand.Rand) *Excitation {
	return &Excitation{noise: noise}
}

// Generate returns the excitation for one frame: uniform [0, 1) noise
// when the frame is unvoiced, otherwise a unit impulse train at the
// pitch period.
func (e *Excitation) Generate(pitch float64, frameSize, sampleRate int) ([]float64, error) {
	out := make([]float64, frameSize)
	if pitch == Unvoiced {
		for i := range out {
			out[i] = e.noise.Float64()
		}
		return out, nil
	}

	if pitch <= 0 {
		return nil, fmt.Errorf("%w: pitch %g Hz", ErrExcitation, pitch)
	}
	period := int(float64(sampleRate) / pitch)
	if period < 1 {
		return nil, fmt.Errorf("%w: pitch %g Hz at %d Hz leaves no period", ErrExcitation, pitch, sampleRate)
	}
	for i := 0; i < frameSize; i += period {
		out[i] = 1
	}
	return out, nil
}
