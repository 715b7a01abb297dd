// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts mono signals between sample rates

// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation, which is adequate for preparing speech
// for analysis. Handles both upsampling and downsampling.
//
// Example:
//
//	mono := resample.Convert(samples, 44100, 8000)
package resample
