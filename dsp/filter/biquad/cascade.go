package biquad

// Cascade is a fixed series of sections. Each section keeps its own delay
// line, so consecutive blocks of one stream can be fed through Process.
type Cascade struct {
	sections []Section
}

// NewCascade returns a Cascade with one zero-state Section per coefficient set.
func NewCascade(coeffs []Coefficients) *Cascade {
	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i].Coefficients = c
	}

	return &Cascade{sections: sections}
}

// Process filters buf in place. The whole block passes through a section
// before the next section sees it.
func (c *Cascade) Process(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset zeroes every delay line.
func (c *Cascade) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Len returns the number of sections.
func (c *Cascade) Len() int { return len(c.sections) }

// Coefficients returns a copy of the section coefficients in cascade order.
func (c *Cascade) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i, s := range c.sections {
		out[i] = s.Coefficients
	}

	return out
}

// Response evaluates the cascade's transfer function at freq Hz.
func (c *Cascade) Response(freq, sampleRate float64) complex128 {
	return CascadeResponse(c.Coefficients(), freq, sampleRate)
}
