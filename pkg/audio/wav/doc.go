// ABOUTME: WAV container codec package
// ABOUTME: Provides RIFF/WAVE decode and 16-bit PCM encode
// Package wav reads and writes RIFF/WAVE containers.
//
// Decode accepts PCM integer (16/24-bit) and IEEE float (32-bit) payloads,
// mono or multi-channel, and returns interleaved float64 samples in [-1, 1).
// Unknown chunks are skipped. Encode writes 16-bit PCM, the output format of
// the decoder command.
//
// Example:
//
//	samples, info, err := wav.Decode(in)
//	if err != nil {
//	    return err
//	}
//	err = wav.Encode(out, samples, info.SampleRate, info.Channels)
package wav
