package filter

import "fmt"

// ValidateParameters checks a sample rate and cutoff frequencies against the
// physical constraints of a digital filter:
//
//   - sampleRate > 0
//   - 0 < freq1 < sampleRate/2
//   - if freq2 != 0: 0 < freq2 < sampleRate/2 and freq2 > freq1
//
// The Nyquist bound is exclusive. NaN values fail every check.
// The returned error wraps [ErrInvalidParameter].
func ValidateParameters(sampleRate, freq1, freq2 float64) error {
	if !(sampleRate > 0) {
		return fmt.Errorf("%w: sample rate must be positive, got %g", ErrInvalidParameter, sampleRate)
	}

	nyquist := sampleRate / 2

	if !(freq1 > 0 && freq1 < nyquist) {
		return fmt.Errorf("%w: frequency must be between 0 and Nyquist frequency (%g Hz), got %g",
			ErrInvalidParameter, nyquist, freq1)
	}

	if freq2 == 0 {
		return nil
	}

	if !(freq2 > 0 && freq2 < nyquist) {
		return fmt.Errorf("%w: second frequency must be between 0 and Nyquist frequency (%g Hz), got %g",
			ErrInvalidParameter, nyquist, freq2)
	}

	if freq2 <= freq1 {
		return fmt.Errorf("%w: high cutoff (%g Hz) must be greater than low cutoff (%g Hz)",
			ErrInvalidParameter, freq2, freq1)
	}

	return nil
}
