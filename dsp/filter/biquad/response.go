package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
// on the unit circle at freq Hz.
func (c Coefficients) Response(freq, sampleRate float64) complex128 {
	zi := cmplx.Rect(1, -2*math.Pi*freq/sampleRate)

	num := complex(c.B0, 0) + zi*(complex(c.B1, 0)+zi*complex(c.B2, 0))
	den := 1 + zi*(complex(c.A1, 0)+zi*complex(c.A2, 0))

	return num / den
}

// CascadeResponse multiplies the responses of sections at freq Hz. An empty
// cascade has unity response.
func CascadeResponse(sections []Coefficients, freq, sampleRate float64) complex128 {
	h := complex(1, 0)
	for _, c := range sections {
		h *= c.Response(freq, sampleRate)
	}

	return h
}

// CascadeMagnitudeDB returns the cascade gain at freq Hz in dB.
func CascadeMagnitudeDB(sections []Coefficients, freq, sampleRate float64) float64 {
	return MagnitudeDB(CascadeResponse(sections, freq, sampleRate))
}

// MagnitudeDB converts a complex response to 20*log10(|h|).
func MagnitudeDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}
