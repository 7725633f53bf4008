package filterbank

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/llehouerou/go-heaac/internal/mdct"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

type frameSpec struct {
	seq   syntax.WindowSequence
	shape uint8
}

// analyze produces the spectrum an encoder would send for the 2N samples in
// in, so that Inverse can be checked against the original signal.
func analyze(t *testing.T, fb *FilterBank, f frameSpec, prevShape uint8, in []float32) []float32 {
	t.Helper()
	n := fb.frameLength
	out := make([]float32, n)
	if f.seq != syntax.EightShortSequence {
		fb.Forward(f.seq, f.shape, prevShape, in, out)
		return out
	}
	ns, flat := fb.shortLength, fb.flat()
	m := mdct.NewMDCT(uint16(2 * ns))
	cur := ShortWindow(f.shape, ns)
	rise := ShortWindow(prevShape, ns)
	seg := make([]float32, 2*ns)
	for w := 0; w < 8; w++ {
		src := in[flat+w*ns:]
		for i := 0; i < ns; i++ {
			seg[i] = src[i] * rise[i]
			seg[ns+i] = src[ns+i] * cur[ns-1-i]
		}
		m.MDCT(seg, out[w*ns:(w+1)*ns])
		rise = cur
	}
	return out
}

func pcmSignal(rng *rand.Rand, n int) []float32 {
	x := make([]float32, n)
	for i := range x {
		x[i] = float32(math.Round((rng.Float64()*2 - 1) * 32767))
	}
	return x
}

func runFrames(t *testing.T, fb *FilterBank, frames []frameSpec, signal []float32) []float32 {
	t.Helper()
	n := fb.frameLength
	overlap := make([]float32, n)
	out := make([]float32, n*len(frames))
	var prevShape uint8
	for k, f := range frames {
		spec := analyze(t, fb, f, prevShape, signal[k*n:(k+2)*n])
		fb.Inverse(f.seq, f.shape, prevShape, spec, out[k*n:(k+1)*n], overlap)
		prevShape = f.shape
	}
	return out
}

func maxError(got, want []float32) float64 {
	a := make([]float64, len(got))
	b := make([]float64, len(want))
	for i := range got {
		a[i], b[i] = float64(got[i]), float64(want[i])
	}
	return floats.Distance(a, b, math.Inf(1))
}

// Output of frame k covers signal[k*N:(k+1)*N] shifted by one frame, since
// the first half of frame 0 only overlaps silence.
func TestOnlyLongRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(20))
	for _, tc := range []struct {
		frameLength uint16
		ld          bool
		shape       uint8
	}{
		{1024, false, SineWindow},
		{1024, false, KBDWindow},
		{960, false, KBDWindow},
		{512, true, SineWindow},
		{480, true, LowOverlapWindow},
	} {
		t.Run(fmt.Sprintf("n=%d/shape=%d", tc.frameLength, tc.shape), func(t *testing.T) {
			fb := NewFilterBank(tc.frameLength, tc.ld)
			n := int(tc.frameLength)
			frames := []frameSpec{
				{syntax.OnlyLongSequence, tc.shape},
				{syntax.OnlyLongSequence, tc.shape},
				{syntax.OnlyLongSequence, tc.shape},
			}
			signal := pcmSignal(rng, (len(frames)+1)*n)
			out := runFrames(t, fb, frames, signal)
			if e := maxError(out[n:], signal[n:len(frames)*n]); e >= 1 {
				t.Errorf("got max error %v, want < 1 LSB", e)
			}
		})
	}
}

func TestWindowSwitchingRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, frameLength := range []uint16{1024, 960} {
		t.Run(fmt.Sprintf("n=%d", frameLength), func(t *testing.T) {
			fb := NewFilterBank(frameLength, false)
			n := int(frameLength)
			frames := []frameSpec{
				{syntax.OnlyLongSequence, SineWindow},
				{syntax.LongStartSequence, KBDWindow},
				{syntax.EightShortSequence, SineWindow},
				{syntax.EightShortSequence, KBDWindow},
				{syntax.LongStopSequence, SineWindow},
				{syntax.OnlyLongSequence, KBDWindow},
			}
			signal := pcmSignal(rng, (len(frames)+1)*n)
			out := runFrames(t, fb, frames, signal)
			if e := maxError(out[n:], signal[n:len(frames)*n]); e >= 1 {
				t.Errorf("got max error %v, want < 1 LSB", e)
			}
		})
	}
}

func TestInverseSilence(t *testing.T) {
	fb := NewFilterBank(1024, false)
	spec := make([]float32, 1024)
	out := make([]float32, 1024)
	overlap := make([]float32, 1024)
	for _, seq := range []syntax.WindowSequence{
		syntax.OnlyLongSequence, syntax.LongStartSequence,
		syntax.EightShortSequence, syntax.LongStopSequence,
	} {
		fb.Inverse(seq, KBDWindow, SineWindow, spec, out, overlap)
		for i, v := range out {
			if v != 0 {
				t.Fatalf("seq %d: out[%d] = %v, want 0", seq, i, v)
			}
		}
	}
}

func TestForwardShortIsZero(t *testing.T) {
	fb := NewFilterBank(1024, false)
	in := make([]float32, 2048)
	for i := range in {
		in[i] = 1
	}
	out := make([]float32, 1024)
	out[3] = 5
	fb.Forward(syntax.EightShortSequence, SineWindow, SineWindow, in, out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %v, want 0", i, v)
		}
	}
}

// Every frame length and window sequence the syntax layer lets through must
// find its windows: LD frames are only ever long.
func TestFilterBank_AllWindowCombinations(t *testing.T) {
	all := []syntax.WindowSequence{
		syntax.OnlyLongSequence, syntax.LongStartSequence,
		syntax.EightShortSequence, syntax.LongStopSequence,
	}
	configs := []struct {
		frameLength uint16
		ld          bool
		seqs        []syntax.WindowSequence
	}{
		{1024, false, all},
		{960, false, all},
		{512, true, []syntax.WindowSequence{syntax.OnlyLongSequence}},
		{480, true, []syntax.WindowSequence{syntax.OnlyLongSequence}},
	}
	for _, c := range configs {
		t.Run(fmt.Sprintf("n=%d/ld=%v", c.frameLength, c.ld), func(t *testing.T) {
			n := int(c.frameLength)
			fb := NewFilterBank(c.frameLength, c.ld)
			spec := make([]float32, n)
			out := make([]float32, n)
			overlap := make([]float32, n)
			in := make([]float32, 2*n)
			for _, seq := range c.seqs {
				for shape := uint8(0); shape < 2; shape++ {
					for prev := uint8(0); prev < 2; prev++ {
						fb.Inverse(seq, shape, prev, spec, out, overlap)
						fb.Forward(seq, shape, prev, in, out)
					}
				}
			}
		})
	}
}
