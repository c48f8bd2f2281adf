package signal

import "gonum.org/v1/gonum/floats"

// Point is one (index, value) pair of a decimated sequence.
type Point struct {
	Index int
	Value float64
}

// Normalize rescales samples linearly to [0, 1] using (x-min)/(max-min).
// The minimum maps to exactly 0 and the maximum to exactly 1. A constant signal maps every sample to exactly 0.5. Empty input returns an
// empty slice.
func Normalize(samples []float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}

	lo, hi := floats.Min(samples), floats.Max(samples)
	span := hi - lo

	if span == 0 {
		for i := range out {
			out[i] = 0.5
		}

		return out
	}

	for i, x := range samples {
		out[i] = (x - lo) / span
	}

	return out
}

// Downsample keeps indices 0, factor, 2*factor, ... without anti-alias
// filtering. A factor <= 1 returns a copy of the input.
func Downsample(samples []float64, factor int) []float64 {
	if factor <= 1 {
		return clone(samples)
	}

	out := make([]float64, 0, (len(samples)+factor-1)/factor)
	for i := 0; i < len(samples); i += factor {
		out = append(out, samples[i])
	}

	return out
}

// MovingAverage smooths samples with a centered window spanning
// [max(0, i-window/2), min(n, i+window/2+1)). The window shrinks at the edges
// instead of padding. A window <= 0 returns a copy of the input.
func MovingAverage(samples []float64, window int) []float64 {
	if window <= 0 {
		return clone(samples)
	}

	n := len(samples)
	half := window / 2

	prefix := make([]float64, n+1)
	for i, x := range samples {
		prefix[i+1] = prefix[i] + x
	}

	out := make([]float64, n)
	for i := range out {
		lo := max(0, i-half)
		hi := min(n, i+half+1)
		out[i] = (prefix[hi] - prefix[lo]) / float64(hi-lo)
	}

	return out
}

// Decimate reduces samples to roughly maxPoints chart points by taking every
// (n/maxPoints)-th sample. The last sample is always included. When
// maxPoints <= 0 or the input already fits, every sample is returned.
func Decimate(samples []float64, maxPoints int) []Point {
	n := len(samples)
	if maxPoints <= 0 || n <= maxPoints {
		out := make([]Point, n)
		for i, x := range samples {
			out[i] = Point{Index: i, Value: x}
		}

		return out
	}

	step := n / maxPoints
	out := make([]Point, 0, maxPoints+2)

	for i := 0; i < n; i += step {
		out = append(out, Point{Index: i, Value: samples[i]})
	}

	if out[len(out)-1].Index != n-1 {
		out = append(out, Point{Index: n - 1, Value: samples[n-1]})
	}

	return out
}

func clone(samples []float64) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)

	return out
}
