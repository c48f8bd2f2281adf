package filter

import (
	"fmt"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
	"github.com/cwbudde/algo-waveform/dsp/filter/design"
)

// Response returns the complex frequency response of the filter described by
// spec at freq Hz. Bandpass is the product of its highpass and lowpass
// cascades; notch is one minus the bandpass response, matching how Apply
// builds them.
func Response(spec Spec, freq float64, opts ...Option) (complex128, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}
	if freq < 0 || freq > spec.Nyquist() {
		return 0, fmt.Errorf("%w: response frequency %g Hz outside [0, %g]", ErrInvalidParameter, freq, spec.Nyquist())
	}

	cfg := applyOptions(opts)
	at := func(pass design.Pass, cutoff float64) complex128 {
		sections := design.Sections(pass, cutoff, spec.Order, spec.SampleRate, cfg.topology)
		return biquad.NewCascade(sections).Response(freq, spec.SampleRate)
	}

	switch spec.Type {
	case Lowpass:
		return at(design.Lowpass, spec.Freq1), nil
	case Highpass:
		return at(design.Highpass, spec.Freq1), nil
	case Bandpass:
		return at(design.Highpass, spec.Freq1) * at(design.Lowpass, spec.Freq2), nil
	case Notch:
		return 1 - at(design.Highpass, spec.Freq1)*at(design.Lowpass, spec.Freq2), nil
	default:
		return 0, fmt.Errorf("%w: unknown filter type %d", ErrInvalidParameter, int(spec.Type))
	}
}

// GainDB returns the magnitude of Response in dB.
func GainDB(spec Spec, freq float64, opts ...Option) (float64, error) {
	h, err := Response(spec, freq, opts...)
	if err != nil {
		return 0, err
	}

	return biquad.MagnitudeDB(h), nil
}
