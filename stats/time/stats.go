// Package time computes descriptive statistics of time-domain sample
// sequences.
//
// All functions are pure: empty input yields zero values rather than an
// error, and the caller's slice is never reordered or retained.
package time

import "math"

// Stats holds descriptive statistics of a sample sequence.
type Stats struct {
	Length int
	Min    float64
	MinPos int // index of the first minimum
	Max    float64
	MaxPos int // index of the first maximum
	Peak   float64 // max(|Max|, |Min|)
	Mean   float64
	// Variance and Std are population values (divide by N).
	Variance float64
	Std      float64
	RMS      float64
	Median   float64
}

// Range returns Max - Min.
func (s Stats) Range() float64 {
	return s.Max - s.Min
}

// CrestFactor returns Peak / RMS, or 0 when RMS is zero.
func (s Stats) CrestFactor() float64 {
	if s.RMS == 0 {
		return 0
	}

	return s.Peak / s.RMS
}

// Calculate computes all statistics of signal. An empty signal returns the
// zero Stats.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		sumSq  float64
		maxVal = signal[0]
		maxPos int
		minVal = signal[0]
		minPos int
	)

	for i, x := range signal {
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}

		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	mean := Mean(signal)
	variance := sumSquaredDeviations(signal, mean) / nf

	return Stats{
		Length:   n,
		Min:      minVal,
		MinPos:   minPos,
		Max:      maxVal,
		MaxPos:   maxPos,
		Peak:     math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Mean:     mean,
		Variance: variance,
		Std:      math.Sqrt(variance),
		RMS:      math.Sqrt(sumSq / nf),
		Median:   Median(signal),
	}
}

// Mean returns the arithmetic mean of the signal.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Kahan summation keeps long recordings accurate.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// StdDev returns the population standard deviation sqrt(Σ(x-mean)²/N).
func StdDev(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	return math.Sqrt(sumSquaredDeviations(signal, Mean(signal)) / float64(len(signal)))
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Median returns the middle value of the signal. For even lengths it is the
// mean of the two central values. The value is found by selection on a
// private copy, without fully sorting it.
func Median(signal []float64) float64 {
	n := len(signal)
	if n == 0 {
		return 0
	}

	buf := make([]float64, n)
	copy(buf, signal)

	upper := selectKth(buf, n/2)
	if n%2 != 0 {
		return upper
	}

	lower := selectKth(buf, n/2-1)

	return (upper + lower) / 2
}

// ZeroCrossingRate returns the fraction of adjacent sample pairs whose signs
// differ, treating zero as positive. Signals shorter than two samples return 0.
func ZeroCrossingRate(signal []float64) float64 {
	if len(signal) < 2 {
		return 0
	}

	var crossings int

	for i := 1; i < len(signal); i++ {
		if (signal[i-1] >= 0) != (signal[i] >= 0) {
			crossings++
		}
	}

	return float64(crossings) / float64(len(signal)-1)
}

func sumSquaredDeviations(signal []float64, mean float64) float64 {
	var sum float64
	for _, x := range signal {
		d := x - mean
		sum += d * d
	}

	return sum
}

// selectKth partially orders a so that a[k] holds the k-th smallest value
// and returns it. It uses a three-way partition so runs of equal samples
// (silence, clipping) do not degrade to quadratic time.
func selectKth(a []float64, k int) float64 {
	lo, hi := 0, len(a)-1
	for lo < hi {
		pivot := medianOfThree(a[lo], a[lo+(hi-lo)/2], a[hi])

		lt, gt, i := lo, hi, lo
		for i <= gt {
			switch {
			case a[i] < pivot:
				a[lt], a[i] = a[i], a[lt]
				lt++
				i++
			case a[i] > pivot:
				a[i], a[gt] = a[gt], a[i]
				gt--
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return pivot
		}
	}

	return a[k]
}

func medianOfThree(a, b, c float64) float64 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		return a
	}

	return b
}
