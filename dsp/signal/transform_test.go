package signal

import (
	"math"
	"reflect"
	"testing"

	"github.com/cwbudde/algo-waveform/internal/testutil"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{-1, 0, 1, 3})
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.25, 0.5, 1}, 1e-15)
}

func TestNormalize_EndpointsAreExact(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "span 49", in: []float64{0, 24.5, 49}, want: []float64{0, 0.5, 1}},
		{name: "span 98", in: []float64{98, 0, 49}, want: []float64{1, 0, 0.5}},
		{name: "offset", in: []float64{-0.3, 0.7, 0.1}, want: []float64{0, 1, 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			for i := range got {
				if tt.want[i] == 0 || tt.want[i] == 1 {
					if got[i] != tt.want[i] {
						t.Fatalf("got[%d] = %.17g, want exactly %v", i, got[i], tt.want[i])
					}
					continue
				}
				if math.Abs(got[i]-tt.want[i]) > 1e-15 {
					t.Fatalf("got[%d] = %.17g, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalize_ConstantIsHalf(t *testing.T) {
	got := Normalize([]float64{5, 5, 5, 5})
	for i, v := range got {
		if v != 0.5 {
			t.Fatalf("got[%d] = %v, want exactly 0.5", i, v)
		}
	}
}

func TestNormalize_Empty(t *testing.T) {
	got := Normalize(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Normalize(nil) = %#v, want empty slice", got)
	}
}

func TestNormalize_Range(t *testing.T) {
	got := Normalize(testutil.DeterministicNoise(3, 10, 1000))
	for i, v := range got {
		if v < 0 || v > 1+1e-15 {
			t.Fatalf("got[%d] = %v outside [0, 1]", i, v)
		}
	}
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	in := []float64{2, 4}
	_ = Normalize(in)
	if in[0] != 2 || in[1] != 4 {
		t.Fatalf("input modified: %v", in)
	}
}

func TestDownsample(t *testing.T) {
	in := []float64{0, 1, 2, 3, 4, 5, 6}

	tests := []struct {
		name   string
		factor int
		want   []float64
	}{
		{name: "factor 2", factor: 2, want: []float64{0, 2, 4, 6}},
		{name: "factor 3", factor: 3, want: []float64{0, 3, 6}},
		{name: "factor larger than input", factor: 10, want: []float64{0}},
		{name: "factor 1", factor: 1, want: in},
		{name: "zero factor copies", factor: 0, want: in},
		{name: "negative factor copies", factor: -2, want: in},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Downsample(in, tt.factor); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Downsample(%d) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}

func TestDownsample_ReturnsCopy(t *testing.T) {
	in := []float64{1, 2}
	out := Downsample(in, 0)
	out[0] = 9
	if in[0] != 1 {
		t.Fatal("Downsample shares storage with input")
	}
}

func TestMovingAverage(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		window int
		want   []float64
	}{
		// Window 3: [i-1, i+2) shrinking at the edges.
		{name: "window 3", window: 3, want: []float64{1.5, 2, 3, 4, 4.5}},
		// Window 2: half is 1, so the span is also [i-1, i+2).
		{name: "window 2", window: 2, want: []float64{1.5, 2, 3, 4, 4.5}},
		{name: "window 1", window: 1, want: in},
		{name: "window 5", window: 5, want: []float64{2, 2.5, 3, 3.5, 4}},
		{name: "zero window copies", window: 0, want: in},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MovingAverage(in, tt.window)
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestMovingAverage_Empty(t *testing.T) {
	if got := MovingAverage(nil, 3); len(got) != 0 {
		t.Fatalf("MovingAverage(nil) = %v, want empty", got)
	}
}

func TestMovingAverage_MatchesDirectSum(t *testing.T) {
	in := testutil.DeterministicNoise(5, 1, 257)
	window := 16
	got := MovingAverage(in, window)

	for i := range in {
		lo := max(0, i-window/2)
		hi := min(len(in), i+window/2+1)

		var sum float64
		for _, x := range in[lo:hi] {
			sum += x
		}

		if want := sum / float64(hi-lo); !nearly(got[i], want, 1e-12) {
			t.Fatalf("i=%d: got %v, want %v", i, got[i], want)
		}
	}
}

func TestDecimate(t *testing.T) {
	in := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	got := Decimate(in, 4)
	// step = 10/4 = 2 -> 0,2,4,6,8 then the final sample 9.
	want := []Point{{0, 0}, {2, 2}, {4, 4}, {6, 6}, {8, 8}, {9, 9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decimate(10, 4) = %v, want %v", got, want)
	}

	got = Decimate(in, 5)
	// step = 2 again; index 9 still appended.
	if last := got[len(got)-1]; last.Index != 9 {
		t.Fatalf("last index = %d, want 9", last.Index)
	}

	got = Decimate(in[:9], 3)
	// step = 3 -> 0,3,6 then 8.
	want = []Point{{0, 0}, {3, 3}, {6, 6}, {8, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Decimate(9, 3) = %v, want %v", got, want)
	}
}

func TestDecimate_KeepsAll(t *testing.T) {
	in := []float64{3, 4, 5}

	for _, maxPoints := range []int{0, -1, 3, 100} {
		got := Decimate(in, maxPoints)
		want := []Point{{0, 3}, {1, 4}, {2, 5}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Decimate(%d) = %v, want %v", maxPoints, got, want)
		}
	}

	if got := Decimate(nil, 10); len(got) != 0 {
		t.Fatalf("Decimate(nil) = %v, want empty", got)
	}
}

func nearly(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}
