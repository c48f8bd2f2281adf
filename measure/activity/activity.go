// Package activity segments a sample sequence into regions whose absolute
// level exceeds a threshold.
package activity

import "time"

// Period is a contiguous active region of a sample sequence.
//
// Periods that close before the end of the input have an exclusive End (the
// first inactive index). A period still active at the last sample has End
// equal to that last index, which is inclusive.
type Period struct {
	Start int
	End   int
}

// Len returns End - Start.
func (p Period) Len() int {
	return p.End - p.Start
}

// Duration returns the period length in time at sampleRate. A non-positive
// sample rate yields 0.
func (p Period) Duration(sampleRate float64) time.Duration {
	if sampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(p.Len()) / sampleRate * float64(time.Second))
}

// Detect returns the periods during which |x| > threshold, in index order.
// The result is empty, not nil, when no sample is active.
func Detect(samples []float64, threshold float64) []Period {
	periods := []Period{}

	active := false
	start := 0

	for i, x := range samples {
		above := x > threshold || -x > threshold

		switch {
		case above && !active:
			active = true
			start = i
		case !above && active:
			active = false
			periods = append(periods, Period{Start: start, End: i})
		}
	}

	if active {
		periods = append(periods, Period{Start: start, End: len(samples) - 1})
	}

	return periods
}
