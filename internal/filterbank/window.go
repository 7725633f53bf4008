package filterbank

import (
	"fmt"
	"math"
)

// Window shapes as signalled by window_shape.
const (
	SineWindow = 0
	KBDWindow  = 1
	// LowOverlapWindow is what window_shape 1 selects in AAC LD streams.
	LowOverlapWindow = 1
)

// Kaiser-Bessel alpha for long and short windows.
const (
	kbdAlphaLong  = 4
	kbdAlphaShort = 6
)

// Rising window halves, indexed by length. Built once at init and never
// written afterwards.
var (
	sineWindows       = map[int][]float32{}
	kbdWindows        = map[int][]float32{}
	lowOverlapWindows = map[int][]float32{}
)

func init() {
	for _, n := range []int{1024, 960, 512, 480, 128, 120} {
		sineWindows[n] = sineWindow(n)
	}
	for _, n := range []int{1024, 960} {
		kbdWindows[n] = kbdWindow(n, kbdAlphaLong)
	}
	for _, n := range []int{128, 120} {
		kbdWindows[n] = kbdWindow(n, kbdAlphaShort)
	}
	for _, n := range []int{512, 480} {
		lowOverlapWindows[n] = lowOverlapWindow(n)
	}
}

// sineWindow returns the first n samples of a 2n point sine window.
func sineWindow(n int) []float32 {
	w := make([]float32, n)
	for i := range w {
		w[i] = float32(math.Sin(math.Pi / float64(2*n) * (float64(i) + 0.5)))
	}
	return w
}

// kbdWindow returns the first n samples of a 2n point Kaiser-Bessel derived
// window.
func kbdWindow(n int, alpha float64) []float32 {
	kaiser := make([]float64, n+1)
	half := float64(n) / 2
	var total float64
	for j := range kaiser {
		r := (float64(j) - half) / half
		kaiser[j] = besselI0(math.Pi * alpha * math.Sqrt(math.Max(0, 1-r*r)))
		total += kaiser[j]
	}
	w := make([]float32, n)
	var acc float64
	for i := range w {
		acc += kaiser[i]
		w[i] = float32(math.Sqrt(acc / total))
	}
	return w
}

// besselI0 is the zeroth order modified Bessel function of the first kind,
// summed until the terms stop contributing.
func besselI0(x float64) float64 {
	sum, term := 1.0, 1.0
	for k := 1; k < 100; k++ {
		f := x / (2 * float64(k))
		term *= f * f
		sum += term
		if term < 1e-12*sum {
			break
		}
	}
	return sum
}

// lowOverlapWindow returns the rising half of the AAC LD low overlap window:
// 3n/8 zeros, a sine slope of n/4 samples and 3n/8 ones.
func lowOverlapWindow(n int) []float32 {
	zeros := 3 * n / 8
	slope := n / 4
	w := make([]float32, n)
	for i := zeros; i < n; i++ {
		if i < zeros+slope {
			w[i] = float32(math.Sin(math.Pi / float64(2*slope) * (float64(i-zeros) + 0.5)))
		} else {
			w[i] = 1
		}
	}
	return w
}

// LongWindow returns the rising half of a long window of n samples.
func LongWindow(shape uint8, n int, ld bool) []float32 {
	var w []float32
	switch {
	case shape == SineWindow:
		w = sineWindows[n]
	case ld:
		w = lowOverlapWindows[n]
	default:
		w = kbdWindows[n]
	}
	if w == nil {
		panic(fmt.Sprintf("filterbank: no window of shape %d and length %d", shape, n))
	}
	return w
}

// ShortWindow returns the rising half of a short window of n samples.
func ShortWindow(shape uint8, n int) []float32 {
	return LongWindow(shape, n, false)
}
