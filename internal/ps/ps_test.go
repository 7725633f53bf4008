package ps

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/llehouerou/go-heaac/internal/bits"
)

func putCode(w *bits.Writer, codes []uint32, lengths []uint8, base, v int) {
	w.PutBits(codes[v-base], uint(lengths[v-base]))
}

// writePS writes a ps_data header enabling IID and ICC in the given
// modes, followed by a single envelope of frequency coded deltas.
func writePS(w *bits.Writer, iidMode, iccMode uint32, iid, icc []int) {
	w.PutBit(true)
	w.PutBit(true)
	w.PutBits(iidMode, 3)
	w.PutBit(true)
	w.PutBits(iccMode, 3)
	w.PutBit(false) // enable_ext
	w.PutBit(false) // frame_class
	w.PutBits(1, 2) // one envelope
	w.PutBit(false)
	for _, v := range iid {
		putCode(w, iidDeltaFreqCodes[:], iidDeltaFreqLengths[:], -14, v)
	}
	w.PutBit(false)
	for _, v := range icc {
		putCode(w, iccDeltaFreqCodes[:], iccDeltaFreqLengths[:], -7, v)
	}
}

func deltas(n int, head ...int) []int {
	d := make([]int, n)
	copy(d, head)
	return d
}

func TestParse_DeltaDecoding(t *testing.T) {
	tests := []struct {
		name    string
		iidMode uint32
		iid     []int
		icc     []int
		wantIID []int8
		wantICC []int8
	}{
		{
			name:    "twenty bands",
			iidMode: 1,
			iid:     deltas(20, 3),
			icc:     deltas(20, 2),
			wantIID: []int8{3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
			wantICC: []int8{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		},
		{
			name:    "clamped",
			iidMode: 1,
			iid:     deltas(20, 5, 5, -1),
			icc:     deltas(20, 6, 6),
			wantIID: []int8{5, 7, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6, 6},
			wantICC: []int8{6, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
		},
		{
			name:    "ten bands expanded",
			iidMode: 0,
			iid:     deltas(10, 1, 1),
			icc:     deltas(10, 1),
			wantIID: []int8{1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
			wantICC: []int8{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w bits.Writer
			writePS(&w, tt.iidMode, tt.iidMode, tt.iid, tt.icc)
			d := NewDecoder(32)
			if err := d.Parse(bits.NewReader(w.Bytes())); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if !d.Active() {
				t.Fatal("decoder not active after header")
			}
			d.resolve()
			if d.numEnv != 1 || d.borders[1] != 32 {
				t.Fatalf("envelopes: got %d ending at %d, want 1 ending at 32", d.numEnv, d.borders[1])
			}
			for b, want := range tt.wantIID {
				if got := d.iid[0][b]; got != want {
					t.Errorf("iid[%d]: got %d, want %d", b, got, want)
				}
			}
			for b, want := range tt.wantICC {
				if got := d.icc[0][b]; got != want {
					t.Errorf("icc[%d]: got %d, want %d", b, got, want)
				}
			}
		})
	}
}

func TestParse_ReservedMode(t *testing.T) {
	var w bits.Writer
	w.PutBit(true)
	w.PutBit(true)
	w.PutBits(6, 3)
	w.PutBits(0, 8)
	d := NewDecoder(32)
	if err := d.Parse(bits.NewReader(w.Bytes())); err != ErrMode {
		t.Errorf("got %v, want %v", err, ErrMode)
	}
}

func TestFixBorders(t *testing.T) {
	d := NewDecoder(30)
	p := &params{numEnv: 2, borders: [maxEnvelopes + 1]int{0, 20, 25}}
	d.numEnv = p.numEnv
	d.iid[1][0] = 4
	d.fixBorders(p)
	if d.numEnv != 3 {
		t.Fatalf("numEnv: got %d, want 3", d.numEnv)
	}
	want := []int{0, 20, 25, 30}
	for e, b := range want {
		if d.borders[e] != b {
			t.Errorf("border %d: got %d, want %d", e, d.borders[e], b)
		}
	}
	if d.iid[2][0] != 4 {
		t.Errorf("repeated envelope: got iid %d, want 4", d.iid[2][0])
	}

	p = &params{numEnv: 3, borders: [maxEnvelopes + 1]int{0, 10, 5, 32}}
	d.numEnv = p.numEnv
	d.fixBorders(p)
	want = []int{0, 10, 11, 30}
	for e, b := range want {
		if d.borders[e] != b {
			t.Errorf("clamped border %d: got %d, want %d", e, d.borders[e], b)
		}
	}
}

func TestMixMatrix_PreservesEnergy(t *testing.T) {
	d := NewDecoder(32)
	for _, mode := range []uint8{0, 3} {
		for _, fine := range []bool{false, true} {
			d.mode, d.fineIID = mode, fine
			limit := iidStepsCoarse
			if fine {
				limit = iidStepsFine
			}
			for iid := -limit; iid <= limit; iid++ {
				for icc := 0; icc <= iccSteps; icc++ {
					h := d.mixMatrix(int8(iid), int8(icc))
					sum := h[0]*h[0] + h[1]*h[1] + h[2]*h[2] + h[3]*h[3]
					if math.Abs(sum-2) > 1e-9 {
						t.Errorf("mode %d fine %v iid %d icc %d: energy %v, want 2", mode, fine, iid, icc, sum)
					}
				}
			}
		}
	}
}

func TestMixMatrix_Identity(t *testing.T) {
	d := NewDecoder(32)
	for _, mode := range []uint8{0, 3} {
		d.mode = mode
		h := d.mixMatrix(0, 0)
		want := [4]float64{1, 1, 0, 0}
		for i := range want {
			if math.Abs(h[i]-want[i]) > 1e-9 {
				t.Errorf("mode %d h[%d]: got %v, want %v", mode, i, h[i], want[i])
			}
		}
	}
}

func randomFrame(rng *rand.Rand, slots int) [][64]complex64 {
	x := make([][64]complex64, slots)
	for l := range x {
		for k := range x[l] {
			x[l][k] = complex(float32(rng.NormFloat64()), float32(rng.NormFloat64()))
		}
	}
	return x
}

func TestHybrid_RoundTrip(t *testing.T) {
	for _, cfg := range []*bandConfig{config20, config34} {
		const slots = 32
		h := newHybrid(cfg, slots)
		rng := rand.New(rand.NewSource(1))
		frames := [][][64]complex64{randomFrame(rng, slots), randomFrame(rng, slots)}
		sub := make([][maxHybrid]complex64, slots)
		qmf := make([][64]complex64, slots)
		out := make([][64]complex64, slots)
		for _, f := range frames {
			h.analysis(f, sub, qmf)
			h.synthesis(sub, out)
		}
		for l := hybridDelay; l < slots; l++ {
			for b := 0; b < cfg.qmfBands(); b++ {
				want := frames[1][l-hybridDelay][b]
				if cmplx.Abs(complex128(out[l][b]-want)) > 1e-4 {
					t.Errorf("%d bands slot %d band %d: got %v, want %v", cfg.params, l, b, out[l][b], want)
				}
			}
			if qmf[l][40] != frames[1][l-hybridDelay][40] {
				t.Errorf("%d bands slot %d: QMF band not delayed", cfg.params, l)
			}
		}
	}
}

func TestProcess_IdentityParameters(t *testing.T) {
	for _, mode := range []uint32{1, 2} {
		n := nrIIDPar[mode]
		const slots = 32
		d := NewDecoder(slots)
		rng := rand.New(rand.NewSource(2))
		var last, prev [][64]complex64
		left := make([][64]complex64, slots)
		right := make([][64]complex64, slots)
		for frame := 0; frame < 2; frame++ {
			var w bits.Writer
			writePS(&w, mode, mode, deltas(n), deltas(n))
			if err := d.Parse(bits.NewReader(w.Bytes())); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			prev, last = last, randomFrame(rng, slots)
			copy(left, last)
			d.Process(left, right)
		}
		for l := hybridDelay; l < slots; l++ {
			for b := 0; b < 64; b++ {
				want := last[l-hybridDelay][b]
				if cmplx.Abs(complex128(left[l][b]-want)) > 1e-4 {
					t.Fatalf("mode %d left slot %d band %d: got %v, want %v", mode, l, b, left[l][b], want)
				}
				if cmplx.Abs(complex128(right[l][b]-want)) > 1e-4 {
					t.Fatalf("mode %d right slot %d band %d: got %v, want %v", mode, l, b, right[l][b], want)
				}
			}
		}
		for l := 0; l < hybridDelay; l++ {
			want := prev[slots-hybridDelay+l][50]
			if cmplx.Abs(complex128(left[l][50]-want)) > 1e-4 {
				t.Errorf("mode %d slot %d: got %v, want previous frame %v", mode, l, left[l][50], want)
			}
		}
	}
}

func TestProcess_NoParametersCopiesMono(t *testing.T) {
	const slots = 30
	d := NewDecoder(slots)
	left := randomFrame(rand.New(rand.NewSource(3)), slots)
	right := make([][64]complex64, slots)
	d.Process(left, right)
	for l := range left {
		if left[l] != right[l] {
			t.Fatalf("slot %d: right differs from mono input", l)
		}
	}
}

func TestDecorrelator_TransientAttenuation(t *testing.T) {
	dec := newDecorrelator(config20)
	var sub, subOut [maxHybrid]complex64
	var qmf, qmfOut [64]complex64
	fill := func(v complex64) {
		for i := range sub {
			sub[i] = v
		}
		for i := range qmf {
			qmf[i] = v
		}
	}
	fill(1)
	for i := 0; i < 20; i++ {
		dec.slot(&sub, &subOut, &qmf, &qmfOut)
	}
	for bk := 0; bk < config20.params; bk++ {
		if dec.gain[bk] != 1 {
			t.Errorf("steady band %d: gain %v, want 1", bk, dec.gain[bk])
		}
	}
	fill(0.01)
	for i := 0; i < 5; i++ {
		dec.slot(&sub, &subOut, &qmf, &qmfOut)
	}
	for bk := 0; bk < config20.params; bk++ {
		if g := dec.gain[bk]; g >= 1 || g <= 0 {
			t.Errorf("after drop band %d: gain %v, want in (0, 1)", bk, g)
		}
	}
}
