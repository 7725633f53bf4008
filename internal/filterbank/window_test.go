package filterbank

import (
	"fmt"
	"math"
	"testing"
)

func TestWindowFirstValues(t *testing.T) {
	tests := []struct {
		name  string
		win   []float32
		first float64
	}{
		{"sine 1024", LongWindow(SineWindow, 1024, false), 0.00076699031874270449},
		{"kbd 1024", LongWindow(KBDWindow, 1024, false), 0.00029256153896361},
		{"sine 128", ShortWindow(SineWindow, 128), math.Sin(math.Pi / 256 * 0.5)},
		{"kbd 128", ShortWindow(KBDWindow, 128), 4.3795704e-05},
		{"low overlap 512", LongWindow(LowOverlapWindow, 512, true), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := float64(tt.win[0]); math.Abs(got-tt.first) > 1e-8 {
				t.Errorf("got %v, want %v", got, tt.first)
			}
		})
	}
}

// Every window must satisfy w[i]^2 + w[n-1-i]^2 = 1 for overlap-add to
// cancel the time domain aliasing.
func TestWindowPowerComplementary(t *testing.T) {
	cases := []struct {
		shape uint8
		n     int
		ld    bool
	}{
		{SineWindow, 1024, false}, {KBDWindow, 1024, false},
		{SineWindow, 960, false}, {KBDWindow, 960, false},
		{SineWindow, 128, false}, {KBDWindow, 128, false},
		{SineWindow, 120, false}, {KBDWindow, 120, false},
		{SineWindow, 512, true}, {LowOverlapWindow, 512, true},
		{SineWindow, 480, true}, {LowOverlapWindow, 480, true},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("shape=%d/n=%d/ld=%v", c.shape, c.n, c.ld), func(t *testing.T) {
			w := LongWindow(c.shape, c.n, c.ld)
			if len(w) != c.n {
				t.Fatalf("got length %d, want %d", len(w), c.n)
			}
			for i := range w {
				s := float64(w[i])*float64(w[i]) + float64(w[c.n-1-i])*float64(w[c.n-1-i])
				if math.Abs(s-1) > 1e-5 {
					t.Fatalf("i=%d: got w^2 sum %v, want 1", i, s)
				}
			}
		})
	}
}

func TestLowOverlapWindowShape(t *testing.T) {
	w := LongWindow(LowOverlapWindow, 480, true)
	if w[179] != 0 || w[180] == 0 {
		t.Errorf("got w[179]=%v w[180]=%v, want the slope to start at 180", w[179], w[180])
	}
	if w[299] >= 1 || w[300] != 1 || w[479] != 1 {
		t.Errorf("got w[299]=%v w[300]=%v w[479]=%v, want the slope to end at 299", w[299], w[300], w[479])
	}
}

func TestUnknownWindowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("LongWindow(KBD, 512, false) did not panic")
		}
	}()
	LongWindow(KBDWindow, 512, false)
}
