// Package wavio loads and stores single-channel PCM WAV data as
// core.Waveform values.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-waveform/dsp/core"
)

const (
	pcmFormat   = 1
	floatFormat = 3
)

var (
	// ErrInvalidFile is returned for input that is not a readable PCM WAV stream.
	ErrInvalidFile = errors.New("wavio: invalid WAV file")
	// ErrChannel is returned when the requested channel does not exist.
	ErrChannel = errors.New("wavio: channel out of range")
	// ErrBitDepth is returned for unsupported sample sizes.
	ErrBitDepth = errors.New("wavio: unsupported bit depth")
)

// Info describes the format of a decoded stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Frames     int
}

// Load decodes one channel of the WAV file at path. Samples are scaled to
// [-1, 1).
func Load(path string, channel int) (core.Waveform, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Waveform{}, Info{}, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, channel)
}

// Decode reads one channel from a WAV stream.
func Decode(r io.ReadSeeker, channel int) (core.Waveform, Info, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return core.Waveform{}, Info{}, ErrInvalidFile
	}

	if dec.WavAudioFormat == floatFormat {
		return core.Waveform{}, Info{}, fmt.Errorf("%w: IEEE float samples", ErrInvalidFile)
	}

	bitDepth := int(dec.BitDepth)
	if !supportedBitDepth(bitDepth) {
		return core.Waveform{}, Info{}, fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	channels := int(dec.NumChans)
	if channel < 0 || channel >= channels {
		return core.Waveform{}, Info{}, fmt.Errorf("%w: %d of %d", ErrChannel, channel, channels)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return core.Waveform{}, Info{}, fmt.Errorf("wavio: decode PCM: %w", err)
	}

	frames := len(buf.Data) / channels
	scale := 1 / fullScale(bitDepth)

	samples := make([]float64, frames)
	for i := range samples {
		samples[i] = float64(buf.Data[i*channels+channel]) * scale
	}

	info := Info{
		SampleRate: int(dec.SampleRate),
		Channels:   channels,
		BitDepth:   bitDepth,
		Frames:     frames,
	}

	return core.Waveform{Samples: samples, SampleRate: float64(dec.SampleRate)}, info, nil
}

// Save writes wf as a mono PCM WAV file. Samples outside [-1, 1] are clipped.
func Save(path string, wf core.Waveform, bitDepth int) (err error) {
	if !supportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("wavio: close %s: %w", path, cerr)
		}
	}()

	return Encode(f, wf, bitDepth)
}

// Encode writes wf as a mono PCM WAV stream.
func Encode(w io.WriteSeeker, wf core.Waveform, bitDepth int) error {
	if !supportedBitDepth(bitDepth) {
		return fmt.Errorf("%w: %d", ErrBitDepth, bitDepth)
	}
	if wf.SampleRate <= 0 || wf.SampleRate != math.Trunc(wf.SampleRate) {
		return fmt.Errorf("wavio: sample rate must be a positive integer: %g", wf.SampleRate)
	}

	sampleRate := int(wf.SampleRate)
	maxVal := fullScale(bitDepth) - 1

	data := make([]int, len(wf.Samples))
	for i, x := range wf.Samples {
		data[i] = int(math.Round(core.Clamp(x, -1, 1) * maxVal))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}

	return nil
}

func supportedBitDepth(bitDepth int) bool {
	switch bitDepth {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}

// fullScale returns 2^(bitDepth-1).
func fullScale(bitDepth int) float64 {
	return math.Ldexp(1, bitDepth-1)
}
