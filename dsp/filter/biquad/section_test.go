package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// passthrough returns coefficients for a unity gain passthrough (B0=1, all else 0).
func passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// dfiitCoeffs is the hand-traced section used across the tests.
func dfiitCoeffs() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Passthrough(t *testing.T) {
	s := NewSection(passthrough())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// x = [1, 0, 0, 0]
	//
	// n=0: y=0.25           d0=0.5+0.05=0.55       d1=0.25-0.01=0.24
	// n=1: y=0.55           d0=0.11+0.24=0.35      d1=-0.022
	// n=2: y=0.35           d0=0.07-0.022=0.048    d1=-0.014
	// n=3: y=0.048
	s := NewSection(dfiitCoeffs())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("n=%d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := []float64{1, -0.5, 0.25, 0.8, -1, 0, 0.3, 0.9, -0.7}

	ref := NewSection(dfiitCoeffs())
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	s := NewSection(dfiitCoeffs())
	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf)

	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: block=%v, sample=%v", i, buf[i], want[i])
		}
	}
	if s.State() != ref.State() {
		t.Fatalf("state mismatch: block=%v, sample=%v", s.State(), ref.State())
	}
}

func TestProcessBlockTo_LeavesSourceUntouched(t *testing.T) {
	src := []float64{1, 0, 0, 0}
	dst := make([]float64, len(src))

	NewSection(dfiitCoeffs()).ProcessBlockTo(dst, src)

	if src[0] != 1 || src[1] != 0 {
		t.Fatalf("source modified: %v", src)
	}
	if !almostEqual(dst[1], 0.55, eps) {
		t.Fatalf("dst[1] = %v, want 0.55", dst[1])
	}
}

func TestProcessBlockTo_Empty(t *testing.T) {
	s := NewSection(dfiitCoeffs())
	s.ProcessBlockTo(nil, nil)
	if s.State() != [2]float64{} {
		t.Fatalf("state changed on empty input: %v", s.State())
	}
}

func TestReset(t *testing.T) {
	s := NewSection(dfiitCoeffs())
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	s.Reset()

	if s.State() != [2]float64{} {
		t.Fatalf("state after reset: %v", s.State())
	}
	if y := s.ProcessSample(1); !almostEqual(y, 0.25, eps) {
		t.Fatalf("first output after reset: got %v, want 0.25", y)
	}
}

func TestState_SaveRestore(t *testing.T) {
	s := NewSection(dfiitCoeffs())
	s.ProcessSample(1)
	saved := s.State()

	y1 := s.ProcessSample(0.3)
	s.SetState(saved)
	y2 := s.ProcessSample(0.3)

	if !almostEqual(y1, y2, eps) {
		t.Fatalf("restored state diverged: %v != %v", y1, y2)
	}
}

func TestCoefficients_Stable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{name: "passthrough", c: passthrough(), want: true},
		{name: "dfiit", c: dfiitCoeffs(), want: true},
		{name: "pole on circle", c: Coefficients{B0: 1, A2: 1}, want: false},
		{name: "a1 too large", c: Coefficients{B0: 1, A1: -2.1, A2: 0.5}, want: false},
		{name: "nan", c: Coefficients{B0: 1, A1: math.NaN()}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Stable(); got != tt.want {
				t.Fatalf("Stable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProcessSample_StabilityLongRun(t *testing.T) {
	s := NewSection(dfiitCoeffs())
	var y float64
	for i := range 100000 {
		y = s.ProcessSample(math.Sin(float64(i) * 0.01))
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("non-finite output at %d: %v", i, y)
		}
	}
}

func BenchmarkSection_ProcessBlock(b *testing.B) {
	s := NewSection(dfiitCoeffs())
	buf := make([]float64, 4096)
	for i := range buf {
		buf[i] = math.Sin(float64(i) * 0.01)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for range b.N {
		s.ProcessBlock(buf)
	}
}
