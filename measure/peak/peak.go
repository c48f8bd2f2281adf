// Package peak locates local maxima in a sample sequence.
package peak

// Find returns the indices i with 1 <= i <= len(samples)-2 where
// samples[i] > threshold and samples[i] is strictly greater than both
// neighbours. The first and last samples never qualify, and plateaus are
// not reported.
func Find(samples []float64, threshold float64) []int {
	peaks := []int{}

	for i := 1; i < len(samples)-1; i++ {
		x := samples[i]
		if x > threshold && x > samples[i-1] && x > samples[i+1] {
			peaks = append(peaks, i)
		}
	}

	return peaks
}
