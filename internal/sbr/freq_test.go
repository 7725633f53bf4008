package sbr

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testHeader() Header {
	h := DefaultHeader()
	h.StartFreq = 5
	h.StopFreq = 9
	return h
}

func TestChannels(t *testing.T) {
	tests := []struct {
		start, stop uint8
		rate        uint32
		k0, k2      int
	}{
		{5, 9, 44100, 14, 47},
		{5, 0, 44100, 14, 23},
		{5, 13, 44100, 14, 64},
		{5, 14, 44100, 14, 28},
		{5, 15, 44100, 14, 42},
		{0, 9, 44100, 8, 47},
	}
	for _, tt := range tests {
		k0 := startChannel(tt.start, tt.rate)
		if k0 != tt.k0 {
			t.Errorf("start %d at %d: got k0 %d, want %d", tt.start, tt.rate, k0, tt.k0)
		}
		if k2 := stopChannel(tt.stop, tt.rate, k0); k2 != tt.k2 {
			t.Errorf("stop %d at %d: got k2 %d, want %d", tt.stop, tt.rate, k2, tt.k2)
		}
	}
}

func TestBuild_BarkScale(t *testing.T) {
	var ft freqTables
	if err := ft.build(testHeader(), 44100); err != nil {
		t.Fatalf("build: %v", err)
	}
	wantMaster := []int{14, 15, 16, 17, 18, 19, 20, 22, 24, 26, 28, 30, 33, 36, 39, 43, 47}
	if diff := cmp.Diff(wantMaster, ft.master[:ft.nMaster+1]); diff != "" {
		t.Errorf("master table mismatch (-want +got):\n%s", diff)
	}
	wantLow := []int{14, 16, 18, 20, 24, 28, 33, 39, 47}
	if diff := cmp.Diff(wantLow, ft.low[:ft.nLow+1]); diff != "" {
		t.Errorf("low table mismatch (-want +got):\n%s", diff)
	}
	if ft.kx != 14 || ft.m != 33 {
		t.Errorf("kx, M: got %d, %d, want 14, 33", ft.kx, ft.m)
	}
	if ft.nQ != 3 {
		t.Errorf("noise bands: got %d, want 3", ft.nQ)
	}
	if diff := cmp.Diff([]int{12, 10, 11}, ft.patchBands[:ft.numPatches]); diff != "" {
		t.Errorf("patches mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{14, 18, 26, 36, 47}, ft.lim[:ft.nL+1]); diff != "" {
		t.Errorf("limiter table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Linear(t *testing.T) {
	h := testHeader()
	h.FreqScale, h.AlterScale = 0, 0
	var ft freqTables
	if err := ft.build(h, 44100); err != nil {
		t.Fatalf("build: %v", err)
	}
	if ft.nMaster != 32 {
		t.Fatalf("nMaster: got %d, want 32", ft.nMaster)
	}
	if ft.master[0] != 14 || ft.master[ft.nMaster] != 47 {
		t.Errorf("master edges: got %d..%d, want 14..47", ft.master[0], ft.master[ft.nMaster])
	}
	for k := 1; k <= ft.nMaster; k++ {
		if w := ft.master[k] - ft.master[k-1]; w < 1 || w > 2 {
			t.Errorf("band %d: width %d", k-1, w)
		}
	}
}

func TestBuild_Invariants(t *testing.T) {
	for start := uint8(0); start < 16; start++ {
		for stop := uint8(0); stop < 16; stop++ {
			for _, xover := range []uint8{0, 1, 3} {
				h := testHeader()
				h.StartFreq, h.StopFreq, h.XoverBand = start, stop, xover
				var ft freqTables
				if err := ft.build(h, 44100); err != nil {
					continue
				}
				if ft.kx > 32 || ft.kx+ft.m > 64 {
					t.Errorf("start %d stop %d xover %d: kx %d M %d out of range", start, stop, xover, ft.kx, ft.m)
				}
				if !slices.IsSorted(ft.master[:ft.nMaster+1]) {
					t.Errorf("start %d stop %d: master table not sorted", start, stop)
				}
				if ft.numPatches < 1 || ft.numPatches > maxPatches {
					t.Errorf("start %d stop %d xover %d: %d patches", start, stop, xover, ft.numPatches)
				}
				if ft.lim[0] != ft.kx || ft.lim[ft.nL] != ft.kx+ft.m {
					t.Errorf("start %d stop %d xover %d: limiter spans %d..%d, want %d..%d",
						start, stop, xover, ft.lim[0], ft.lim[ft.nL], ft.kx, ft.kx+ft.m)
				}
				if ft.noise[0] != ft.kx || ft.noise[ft.nQ] != ft.kx+ft.m {
					t.Errorf("start %d stop %d xover %d: noise table spans %d..%d", start, stop, xover, ft.noise[0], ft.noise[ft.nQ])
				}
			}
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		h    func(*Header)
		want error
	}{
		{"stop below start", func(h *Header) { h.StartFreq, h.StopFreq = 15, 0 }, ErrFrequencyRange},
		{"crossover beyond table", func(h *Header) {
			h.StartFreq, h.StopFreq, h.FreqScale, h.XoverBand = 5, 0, 3, 7
		}, ErrCrossover},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testHeader()
			tt.h(&h)
			var ft freqTables
			if err := ft.build(h, 44100); err != tt.want {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
