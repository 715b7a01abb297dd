// ABOUTME: Linear interpolation sample rate conversion
// ABOUTME: Converts mono signals before analysis, typically down to speech rates
package resample

// Convert returns samples converted from fromRate to toRate by linear
// interpolation. Output positions past the final input sample hold its
// value. When no conversion is needed, or a rate is not positive, the
// input is returned unchanged.
func Convert(samples []float64, fromRate, toRate int) []float64 {
	if fromRate == toRate || fromRate <= 0 || toRate <= 0 || len(samples) == 0 {
		return samples
	}

	ratio := float64(fromRate) / float64(toRate)
	out := make([]float64, int(float64(len(samples))/ratio))
	pos := 0.0
	for i := range out {
		idx := int(pos)
		if idx >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
		} else {
			frac := pos - float64(idx)
			out[i] = samples[idx]*(1-frac) + samples[idx+1]*frac
		}
		pos += ratio
	}
	return out
}
