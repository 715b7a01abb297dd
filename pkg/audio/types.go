// ABOUTME: Core audio types and sample conversions
// ABOUTME: Defines Format, Buffer and float64/int16 PCM helpers
package audio

import (
	"math"
	"time"
)

const (
	// 16-bit PCM range constants
	MaxInt16 = 32767
	MinInt16 = -32768

	// fullScale maps the int16 range onto [-1, 1).
	fullScale = 32768.0
)

// Format describes a PCM stream.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer holds decoded PCM audio as float64 samples in [-1, 1).
// Multi-channel audio is interleaved.
type Buffer struct {
	Samples []float64
	Format  Format
}

// Duration reports the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 || b.Format.Channels <= 0 {
		return 0
	}
	frames := len(b.Samples) / b.Format.Channels
	return time.Duration(frames) * time.Second / time.Duration(b.Format.SampleRate)
}

// SampleFromInt16 converts a 16-bit PCM sample to float64 full scale.
func SampleFromInt16(s int16) float64 {
	return float64(s) / fullScale
}

// SampleToInt16 converts a float64 sample to 16-bit PCM, rounding and
// clamping to the representable range.
func SampleToInt16(s float64) int16 {
	v := math.Round(s * fullScale)
	if v > MaxInt16 {
		return MaxInt16
	}
	if v < MinInt16 {
		return MinInt16
	}
	return int16(v)
}

// Downmix folds interleaved multi-channel samples to mono by averaging
// across channels. Mono input is returned unchanged.
func Downmix(samples []float64, channels int) []float64 {
	if channels <= 1 {
		return samples
	}
	mono := make([]float64, len(samples)/channels)
	for i := range mono {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += samples[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}

// Peak returns the largest absolute sample value.
func Peak(samples []float64) float64 {
	peak := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}
