// ABOUTME: Pitch estimation from frame autocorrelation
// ABOUTME: Two-band periodicity search with energy ratio thresholds
package lpc

import "math"

// Unvoiced is the pitch value marking a frame with no detectable
// periodicity. Synthesis excites such frames with noise.
const Unvoiced = -1.0

// Fundamentals are expected in the speech range 40-600 Hz. The primary
// band is searched first; candidates at or below its shortest period
// are retried in the low band with a relaxed energy threshold, which
// rescues low fundamentals whose autocorrelation peak near lag zero
// would otherwise win.
const (
	pitchBandLowHz  = 100
	pitchBandHighHz = 600
	lowBandFloorHz  = 40

	primaryThreshold = 0.30
	lowBandThreshold = 0.10
)

// EstimatePitch returns the fundamental frequency of the frame in Hz,
// or Unvoiced when no autocorrelation peak clears the band thresholds.
// The estimate runs on the raw frame, before pre-emphasis.
func EstimatePitch(frame []float64, sampleRate int) float64 {
	rxx := autocorrelate(frame)
	if len(rxx) == 0 {
		return Unvoiced
	}
	r0 := rxx[0]
	if r0 == 0 || math.IsNaN(r0) || math.IsInf(r0, 0) {
		return Unvoiced
	}

	shortest := sampleRate / pitchBandHighHz
	period := bandPeriod(rxx, sampleRate, pitchBandLowHz, pitchBandHighHz, primaryThreshold)
	if period <= shortest {
		period = bandPeriod(rxx, sampleRate, lowBandFloorHz, pitchBandLowHz, lowBandThreshold)
		if period == 0 {
			return Unvoiced
		}
	}
	return float64(sampleRate) / float64(period)
}

// bandPeriod returns the strongest lag for fundamentals in [lowHz,
// highHz), or 0 when the peak falls below ratio*rxx[0]. The lag range
// is [sampleRate/highHz, sampleRate/lowHz), integer division,
// exclusive of the upper bound.
func bandPeriod(rxx []float64, sampleRate, lowHz, highHz int, ratio float64) int {
	minLag := sampleRate / highHz
	maxLag := sampleRate / lowHz
	if maxLag > len(rxx) {
		maxLag = len(rxx)
	}
	if minLag >= maxLag {
		return 0
	}

	best := minLag
	for lag := minLag + 1; lag < maxLag; lag++ {
		if rxx[lag] > rxx[best] {
			best = lag
		}
	}
	if rxx[best] < ratio*rxx[0] {
		return 0
	}
	return best
}
