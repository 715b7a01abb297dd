// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides fundamental audio types shared by the codec packages.
//
// Samples are float64 values in [-1, 1) full scale, the working format of the
// analysis and synthesis code. This package bridges that format to the 16-bit
// integer PCM used by the container and playback layers:
//   - Format: describes a PCM stream (sample rate, channels, bit depth)
//   - Buffer: decoded PCM audio together with its format
//   - SampleFromInt16 / SampleToInt16: scaled, clamped conversions
//   - Downmix: interleaved multi-channel to mono
//
// Example:
//
//	buf := &audio.Buffer{
//	    Samples: samples,
//	    Format:  audio.Format{SampleRate: 8000, Channels: 2, BitDepth: 16},
//	}
//	mono := audio.Downmix(buf.Samples, buf.Format.Channels)
package audio
