// Package frequency reserves the frequency-domain analysis entry points.
//
// Spectral analysis is not part of this module. PSD exists so callers can be
// written against a stable signature and always receives an empty result.
package frequency

// PSD returns the power spectral density of samples at sampleRate.
//
// It is a placeholder and always returns an empty, non-nil slice. Inputs are
// not inspected and never modified.
func PSD(_ []float64, _ float64) []float64 {
	return []float64{}
}
