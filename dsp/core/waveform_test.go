package core

import (
	"testing"
	"time"
)

func TestWaveformDuration(t *testing.T) {
	w := Waveform{Samples: make([]float64, 44100), SampleRate: 44100}

	if w.Len() != 44100 {
		t.Fatalf("Len: got %d, want 44100", w.Len())
	}
	if w.Duration() != time.Second {
		t.Fatalf("Duration: got %v, want 1s", w.Duration())
	}
	if got := w.TimeAt(22050); got != 0.5 {
		t.Fatalf("TimeAt: got %v, want 0.5", got)
	}
}

func TestWaveformZeroRate(t *testing.T) {
	w := Waveform{Samples: []float64{1, 2, 3}}
	if w.Duration() != 0 || w.TimeAt(2) != 0 {
		t.Fatal("expected zero duration and time for zero sample rate")
	}
}

func TestWaveformCloneIsDeep(t *testing.T) {
	w := Waveform{Samples: []float64{1, 2, 3}, SampleRate: 8000}
	c := w.Clone()
	c.Samples[0] = 99

	if w.Samples[0] != 1 {
		t.Fatal("Clone shares sample storage")
	}
	if c.SampleRate != 8000 {
		t.Fatalf("SampleRate: got %v, want 8000", c.SampleRate)
	}
	if (Waveform{}).Clone().Samples != nil {
		t.Fatal("Clone of empty waveform should keep nil samples")
	}
}

func TestWaveformWithSamples(t *testing.T) {
	w := Waveform{Samples: []float64{1}, SampleRate: 48000}
	next := w.WithSamples([]float64{4, 5})

	if next.SampleRate != 48000 || next.Len() != 2 {
		t.Fatalf("WithSamples: got %+v", next)
	}
}
