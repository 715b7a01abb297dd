// ABOUTME: Linear predictive coding analysis and synthesis
// ABOUTME: Provides Encoder, Decoder, Stream and the binary stream format
// Package lpc implements a linear-predictive speech codec.
//
// The encoder slices mono audio into overlapping windows and reduces
// each to a handful of parameters: a pitch estimate, an excitation
// gain, and the coefficients of an all-pole filter fitted by
// Levinson-Durbin recursion. The decoder rebuilds audio by driving
// that filter with an impulse train (voiced frames) or noise
// (unvoiced frames) and overlap-adding the results.
//
// Streams serialize to a compact little-endian binary format via
// Stream.WriteTo and Stream.ReadFrom; ReadLegacyText imports the
// retired text format.
//
// Example round trip:
//
//	enc := lpc.NewEncoder(lpc.DefaultConfig())
//	stream, err := enc.Encode(samples, 8000)
//
//	dec := lpc.NewDecoder(lpc.DecoderConfig{})
//	rebuilt, err := dec.Decode(stream)
//
// The analysis building blocks (Framer, Preemphasis, EstimatePitch,
// Analyze, Excitation, Synthesizer) are exported for callers composing
// their own pipelines.
package lpc
