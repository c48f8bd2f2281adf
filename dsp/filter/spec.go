package filter

import (
	"fmt"
	"strings"
)

// Type identifies the filter response.
type Type int

const (
	Lowpass Type = iota
	Highpass
	Bandpass
	Notch
)

const (
	// MinOrder and MaxOrder bound the supported filter order.
	MinOrder = 1
	MaxOrder = 8

	// DefaultOrder is used when a caller does not choose one.
	DefaultOrder = 4
)

var typeNames = [...]string{
	Lowpass:  "lowpass",
	Highpass: "highpass",
	Bandpass: "bandpass",
	Notch:    "notch",
}

// String returns the lower-case name of the type.
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// IsBand reports whether the type needs two cutoff frequencies.
func (t Type) IsBand() bool {
	return t == Bandpass || t == Notch
}

// ParseType converts a case-insensitive type name into a Type.
// "bandstop" is accepted as an alias for notch.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "bandstop" {
		return Notch, nil
	}

	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown filter type %q", ErrInvalidParameter, s)
}

// Spec fully describes one filter application.
//
// Freq1 is the cutoff for Lowpass/Highpass and the low edge for
// Bandpass/Notch. Freq2 is the high edge and only used by the band types.
type Spec struct {
	Type       Type
	Order      int
	Freq1      float64
	Freq2      float64
	SampleRate float64
}

// Validate checks the order, the presence of a second frequency for band
// types and the frequency constraints of [ValidateParameters].
func (s Spec) Validate() error {
	if s.Type < Lowpass || s.Type > Notch {
		return fmt.Errorf("%w: unknown filter type %d", ErrInvalidParameter, int(s.Type))
	}

	if s.Order < MinOrder || s.Order > MaxOrder {
		return fmt.Errorf("%w: filter order must be between %d and %d, got %d",
			ErrInvalidParameter, MinOrder, MaxOrder, s.Order)
	}

	if s.Type.IsBand() && s.Freq2 == 0 {
		return fmt.Errorf("%w: %s filter requires a high cutoff frequency", ErrInvalidParameter, s.Type)
	}

	return ValidateParameters(s.SampleRate, s.Freq1, s.Freq2)
}

// Nyquist returns half the sample rate.
func (s Spec) Nyquist() float64 {
	return s.SampleRate / 2
}
