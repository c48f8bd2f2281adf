// Package filter applies Lowpass, Highpass, Bandpass and Notch filters to
// recorded waveforms.
//
// Every call validates its parameters, designs fresh biquad coefficients with
// dsp/filter/design and runs them through dsp/filter/biquad. Nothing is cached
// or shared between calls, so the functions are safe for concurrent use on
// independent inputs.
//
// On failure the original input slice is returned unmodified together with an
// error wrapping [ErrInvalidParameter] or [ErrEmptyInput]. Always check the
// error: a rejected call is otherwise indistinguishable from a no-op filter.
//
// Composite types keep a fixed evaluation order. Bandpass runs the highpass
// at the low cutoff first and the lowpass at the high cutoff second. Notch is
// the input minus that bandpass, so notch[i] + bandpass[i] == input[i].
package filter
