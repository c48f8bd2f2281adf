// Package design converts a cutoff frequency and sample rate into cascades of
// biquad coefficients consumable by dsp/filter/biquad.
//
// Every design prewarps the cutoff with tan(π·f/fs) and maps a second-order
// Butterworth prototype through the bilinear transform. Higher orders are
// realized as cascades; [Topology] selects how the sections are derived.
//
// Designers do not validate their inputs. Callers are expected to check the
// sample rate and cutoff against the Nyquist limit first (see dsp/filter).
package design
