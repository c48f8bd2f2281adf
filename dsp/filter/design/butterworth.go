package design

import (
	"math"

	"github.com/cwbudde/algo-waveform/dsp/filter/biquad"
)

// Pass selects the response of a primitive design.
type Pass int

const (
	Lowpass Pass = iota
	Highpass
)

// Topology selects how a cascade of order n is built.
type Topology int

const (
	// TopologyReplicated repeats the same second-order Butterworth section
	// ceil(n/2) times. Its rolloff is steeper than a single section but the
	// response is not a true nth-order Butterworth; the -3 dB point moves
	// below the cutoff as sections are added.
	TopologyReplicated Topology = iota

	// TopologyButterworth places each section's pole pair at its own angle
	// of the analog prototype and adds a first-order section for odd orders.
	TopologyButterworth
)

// String returns the flag spelling of the topology.
func (t Topology) String() string {
	switch t {
	case TopologyReplicated:
		return "replicated"
	case TopologyButterworth:
		return "butterworth"
	default:
		return "unknown"
	}
}

// Prewarp maps a cutoff frequency onto the bilinear-transform frequency axis:
// tan(π·freq/sampleRate).
func Prewarp(freq, sampleRate float64) float64 {
	return math.Tan(math.Pi * freq / sampleRate)
}

// SectionCount returns the number of biquads used for a filter order.
func SectionCount(order int) int {
	if order <= 0 {
		return 0
	}

	return (order + 1) / 2
}

// LowpassSection designs the canonical second-order Butterworth lowpass:
//
//	b = (ω², 2ω², ω²) / a0
//	a = (1+√2ω+ω², 2(ω²−1), 1−√2ω+ω²) / a0
func LowpassSection(freq, sampleRate float64) biquad.Coefficients {
	return lowpassQ(Prewarp(freq, sampleRate), 1/math.Sqrt2)
}

// HighpassSection designs the canonical second-order Butterworth highpass
// with numerator (1, −2, 1) and the same denominator as [LowpassSection].
func HighpassSection(freq, sampleRate float64) biquad.Coefficients {
	return highpassQ(Prewarp(freq, sampleRate), 1/math.Sqrt2)
}

// Sections designs a cascade for the given pass, cutoff and order.
// It returns nil for order <= 0.
func Sections(pass Pass, freq float64, order int, sampleRate float64, topology Topology) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	if topology == TopologyButterworth {
		return butterworthSections(pass, freq, order, sampleRate)
	}

	n := SectionCount(order)
	sections := make([]biquad.Coefficients, n)
	for i := range sections {
		if pass == Highpass {
			sections[i] = HighpassSection(freq, sampleRate)
		} else {
			sections[i] = LowpassSection(freq, sampleRate)
		}
	}

	return sections
}

func butterworthSections(pass Pass, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	omega := Prewarp(freq, sampleRate)
	sections := make([]biquad.Coefficients, 0, SectionCount(order))

	for i := order/2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		if pass == Highpass {
			sections = append(sections, highpassQ(omega, q))
		} else {
			sections = append(sections, lowpassQ(omega, q))
		}
	}

	if order%2 != 0 {
		if pass == Highpass {
			sections = append(sections, firstOrderHP(omega))
		} else {
			sections = append(sections, firstOrderLP(omega))
		}
	}

	return sections
}

// butterworthQ returns the quality factor of pole pair index for an
// nth-order Butterworth prototype.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}

	return 1 / (2 * s)
}

func lowpassQ(omega, q float64) biquad.Coefficients {
	omega2 := omega * omega
	k := omega / q

	a0 := 1 + k + omega2
	return biquad.Coefficients{
		B0: omega2 / a0,
		B1: 2 * omega2 / a0,
		B2: omega2 / a0,
		A1: 2 * (omega2 - 1) / a0,
		A2: (1 - k + omega2) / a0,
	}
}

func highpassQ(omega, q float64) biquad.Coefficients {
	omega2 := omega * omega
	k := omega / q

	a0 := 1 + k + omega2
	return biquad.Coefficients{
		B0: 1 / a0,
		B1: -2 / a0,
		B2: 1 / a0,
		A1: 2 * (omega2 - 1) / a0,
		A2: (1 - k + omega2) / a0,
	}
}

// firstOrderLP is the bilinear first-order lowpass (B2=A2=0).
func firstOrderLP(omega float64) biquad.Coefficients {
	norm := 1 / (1 + omega)
	return biquad.Coefficients{
		B0: omega * norm,
		B1: omega * norm,
		A1: (omega - 1) * norm,
	}
}

// firstOrderHP is the bilinear first-order highpass (B2=A2=0).
func firstOrderHP(omega float64) biquad.Coefficients {
	norm := 1 / (1 + omega)
	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (omega - 1) * norm,
	}
}
