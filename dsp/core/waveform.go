// Package core holds the sample-sequence data model and small numeric helpers
// shared by the filter and analysis packages.
package core

import "time"

// Waveform is a single channel of uniformly sampled data.
//
// Index i corresponds to time i/SampleRate. Packages that operate on plain
// []float64 never retain Samples beyond a call.
type Waveform struct {
	Samples    []float64
	SampleRate float64
}

// Len returns the number of samples.
func (w Waveform) Len() int {
	return len(w.Samples)
}

// Duration returns the length of the waveform in time. A non-positive sample
// rate yields 0.
func (w Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(len(w.Samples)) / w.SampleRate * float64(time.Second))
}

// TimeAt returns the time in seconds of sample i.
func (w Waveform) TimeAt(i int) float64 {
	if w.SampleRate <= 0 {
		return 0
	}

	return float64(i) / w.SampleRate
}

// Clone returns a deep copy.
func (w Waveform) Clone() Waveform {
	out := Waveform{SampleRate: w.SampleRate}
	if w.Samples != nil {
		out.Samples = make([]float64, len(w.Samples))
		copy(out.Samples, w.Samples)
	}

	return out
}

// WithSamples returns a waveform sharing w's sample rate with new samples.
func (w Waveform) WithSamples(samples []float64) Waveform {
	return Waveform{Samples: samples, SampleRate: w.SampleRate}
}
