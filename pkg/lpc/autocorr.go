// ABOUTME: Autocorrelation of analysis frames
// ABOUTME: FFT-based computation over all non-negative lags
package lpc

import "github.com/mjibson/go-dsp/fft"

// autocorrelate returns the autocorrelation of x at lags 0..len(x)-1,
// computed in the frequency domain. The transform is padded past
// 2*len(x) so the result is the linear, not circular, correlation.
func autocorrelate(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	padded := make([]float64, nextPow2(2*n))
	copy(padded, x)

	spectrum := fft.FFTReal(padded)
	for i, c := range spectrum {
		re, im := real(c), imag(c)
		spectrum[i] = complex(re*re+im*im, 0)
	}

	corr := fft.IFFT(spectrum)
	out := make([]float64, n)
	for i := range out {
		out[i] = real(corr[i])
	}
	return out
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
