// Package biquad applies second-order recursive (IIR) filter sections to
// sample sequences.
//
// [Apply] and [ApplyCascade] are the one-shot entry points: each call starts
// from zero state, so the result depends only on the input and the
// [Coefficients]. A cascade feeds the full output of one section into the next.
//
// [Section] and [Cascade] keep their delay-line state between calls and are
// meant for block-wise streaming. They are not safe for concurrent use.
//
// Coefficient design lives in dsp/filter/design.
package biquad
