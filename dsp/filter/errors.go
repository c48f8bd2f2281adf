package filter

import "errors"

var (
	// ErrInvalidParameter reports a sample rate, cutoff or order outside its
	// physical or supported range.
	ErrInvalidParameter = errors.New("filter: invalid parameter")

	// ErrEmptyInput reports a zero-length sample sequence.
	ErrEmptyInput = errors.New("filter: input data is empty")
)
