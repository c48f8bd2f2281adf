package testutil

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ToneAmplitude estimates the peak amplitude of the sinusoid at freqHz in the
// last window samples of signal, where window is the largest power of two that
// fits. Choose freqHz on an exact bin (a multiple of sampleRate/window) to
// avoid leakage; taking the tail skips the filter start-up transient.
func ToneAmplitude(signal []float64, sampleRate, freqHz float64) (float64, error) {
	n := 1
	for n*2 <= len(signal) {
		n *= 2
	}
	if n < 2 {
		return 0, fmt.Errorf("testutil: signal too short for spectrum: %d", len(signal))
	}

	bin := int(math.Round(freqHz * float64(n) / sampleRate))
	if bin <= 0 || bin >= n/2 {
		return 0, fmt.Errorf("testutil: %g Hz is outside the spectrum of %d points at %g Hz", freqHz, n, sampleRate)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return 0, fmt.Errorf("testutil: failed to create FFT plan: %w", err)
	}

	tail := signal[len(signal)-n:]
	in := make([]complex128, n)
	for i, v := range tail {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("testutil: forward FFT failed: %w", err)
	}

	return 2 * cmplx.Abs(out[bin]) / float64(n), nil
}
