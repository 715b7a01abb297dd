// ABOUTME: Frame silence detection
// ABOUTME: RMS level against a fixed dB floor
package lpc

import "math"

// SilenceThresholdDB is the level below which a frame is coded as
// silence, in dB relative to full scale.
const SilenceThresholdDB = -60.0

// IsSilent reports whether the frame level falls below the silence
// floor. A frame with no energy has no defined level and counts as
// silent.
func IsSilent(frame []float64) bool {
	r := rms(frame)
	if r == 0 {
		return true
	}
	return 20*math.Log10(r) < SilenceThresholdDB
}

// rms returns the root mean square of the frame.
func rms(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}
