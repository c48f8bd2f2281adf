package filter

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
	"github.com/cwbudde/algo-waveform/dsp/filter/design"
)

// Apply filters samples according to spec and returns a new slice of the same
// length.
//
// Checks run in this order: empty input, order, frequencies. On failure the
// unmodified input slice is returned along with the error.
func Apply(samples []float64, spec Spec, opts ...Option) ([]float64, error) {
	if len(samples) == 0 {
		return samples, ErrEmptyInput
	}

	if err := spec.Validate(); err != nil {
		return samples, err
	}

	cfg := applyOptions(opts)

	switch spec.Type {
	case Lowpass:
		return cascade(samples, design.Lowpass, spec.Freq1, spec, cfg), nil
	case Highpass:
		return cascade(samples, design.Highpass, spec.Freq1, spec, cfg), nil
	case Bandpass:
		return bandpass(samples, spec, cfg), nil
	case Notch:
		return notch(samples, spec, cfg), nil
	default:
		return samples, fmt.Errorf("%w: unknown filter type %d", ErrInvalidParameter, int(spec.Type))
	}
}

// ApplyLowpass applies a lowpass filter at cutoff.
func ApplyLowpass(samples []float64, sampleRate, cutoff float64, order int, opts ...Option) ([]float64, error) {
	return Apply(samples, Spec{Type: Lowpass, Order: order, Freq1: cutoff, SampleRate: sampleRate}, opts...)
}

// ApplyHighpass applies a highpass filter at cutoff.
func ApplyHighpass(samples []float64, sampleRate, cutoff float64, order int, opts ...Option) ([]float64, error) {
	return Apply(samples, Spec{Type: Highpass, Order: order, Freq1: cutoff, SampleRate: sampleRate}, opts...)
}

// ApplyBandpass keeps the band between low and high.
func ApplyBandpass(samples []float64, sampleRate, low, high float64, order int, opts ...Option) ([]float64, error) {
	return Apply(samples, Spec{Type: Bandpass, Order: order, Freq1: low, Freq2: high, SampleRate: sampleRate}, opts...)
}

// ApplyNotch removes the band between low and high.
func ApplyNotch(samples []float64, sampleRate, low, high float64, order int, opts ...Option) ([]float64, error) {
	return Apply(samples, Spec{Type: Notch, Order: order, Freq1: low, Freq2: high, SampleRate: sampleRate}, opts...)
}

// Sections returns the biquad cascade used for a Lowpass or Highpass spec.
// Band types are composites and have no single cascade; they return an error.
func Sections(spec Spec, opts ...Option) ([]biquad.Coefficients, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	switch spec.Type {
	case Lowpass:
		return design.Sections(design.Lowpass, spec.Freq1, spec.Order, spec.SampleRate, cfg.topology), nil
	case Highpass:
		return design.Sections(design.Highpass, spec.Freq1, spec.Order, spec.SampleRate, cfg.topology), nil
	default:
		return nil, fmt.Errorf("%w: %s filter is a composite without a single cascade", ErrInvalidParameter, spec.Type)
	}
}

func cascade(samples []float64, pass design.Pass, freq float64, spec Spec, cfg config) []float64 {
	sections := design.Sections(pass, freq, spec.Order, spec.SampleRate, cfg.topology)
	return biquad.ApplyCascade(samples, sections)
}

// bandpass runs the highpass at Freq1 first, then the lowpass at Freq2.
func bandpass(samples []float64, spec Spec, cfg config) []float64 {
	highpassed := cascade(samples, design.Highpass, spec.Freq1, spec, cfg)
	return cascade(highpassed, design.Lowpass, spec.Freq2, spec, cfg)
}

// notch subtracts the bandpass from the input sample by sample.
func notch(samples []float64, spec Spec, cfg config) []float64 {
	band := bandpass(samples, spec, cfg)

	out := make([]float64, len(samples))
	vecmath.ScaleBlock(out, band, -1)
	vecmath.AddBlockInPlace(out, samples)

	return out
}
