// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides Output interface and oto implementation
// Package output provides audio playback interfaces.
//
// The oto backend streams 16-bit PCM to the platform audio device.
// Writes block on the device's consumption rate; Drain flushes the
// stream at end of playback.
//
// Example:
//
//	out := output.NewOto()
//	if err := out.Open(8000, 1); err != nil {
//	    return err
//	}
//	defer out.Close()
//
//	err := out.Write(samples)
//	err = out.Drain()
package output
