package biquad

// Apply filters samples through one section starting from zero state and
// returns a new slice of the same length. The input is not modified.
// An empty input yields an empty, non-nil output.
func Apply(samples []float64, c Coefficients) []float64 {
	out := make([]float64, len(samples))

	var s Section
	s.Coefficients = c
	s.ProcessBlockTo(out, samples)

	return out
}

// ApplyCascade runs samples through each section in order. Every section
// starts from zero state and consumes the complete output of the previous
// one. With no sections the result is a copy of the input.
func ApplyCascade(samples []float64, sections []Coefficients) []float64 {
	out := make([]float64, len(samples))
	copy(out, samples)
	NewCascade(sections).Process(out)

	return out
}
