// Package signal provides deterministic test-signal generation and the
// sequence transforms used for display and segmentation: normalization,
// strided downsampling, centered moving average and chart decimation.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	vecmath "github.com/cwbudde/algo-vecmath"
)

const defaultSampleRate = 48000

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the generator sample rate. Non-positive values are
// ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator at 48 kHz with seed 1, then applies opts.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: defaultSampleRate,
		seed:       1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Seed returns the current noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed replaces the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine generates a sine wave starting at phase zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz >= g.sampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %g): %g", g.sampleRate/2, freqHz)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// WhiteNoise generates deterministic uniform noise in [-amplitude, amplitude].
// Calls with the same seed produce the same sequence.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Bursts generates count tone bursts of on samples each, separated by off
// samples of silence. The sequence starts and ends with a gap so every burst
// is a closed activity period.
func (g *Generator) Bursts(freqHz, amplitude float64, on, off, count int) ([]float64, error) {
	if on <= 0 || off <= 0 || count <= 0 {
		return nil, fmt.Errorf("bursts need on, off and count > 0: %d/%d/%d", on, off, count)
	}

	tone, err := g.Sine(freqHz, amplitude, on)
	if err != nil {
		return nil, err
	}

	out := make([]float64, off+count*(on+off))
	for k := range count {
		copy(out[off+k*(on+off):], tone)
	}

	return out, nil
}

// Mix returns the sample-wise sum of equally long signals.
func Mix(signals ...[]float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("mix needs at least one signal")
	}

	n := len(signals[0])
	out := make([]float64, n)
	copy(out, signals[0])

	for i, s := range signals[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("mix length mismatch: signal %d has %d samples, want %d", i+1, len(s), n)
		}
		vecmath.AddBlockInPlace(out, s)
	}

	return out, nil
}
