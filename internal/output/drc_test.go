package output

import (
	"math"
	"testing"

	"github.com/llehouerou/go-heaac/internal/syntax"
)

func ones(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = 1
	}
	return s
}

func TestDRC_SingleBand(t *testing.T) {
	tests := []struct {
		name     string
		cut      float32
		boost    float32
		sgn      bool
		ctl      uint8
		ref      uint8
		wantGain float64
	}{
		{"compress 6 dB", 1, 1, true, 24, RefLevel, 0.5},
		{"boost 6 dB", 1, 1, false, 24, RefLevel, 2},
		{"half cut", 0.5, 1, true, 24, RefLevel, math.Pow(2, -0.5)},
		{"disabled boost", 1, 0, false, 24, RefLevel, 1},
		{"reference offset", 0, 0, false, 0, RefLevel - 24, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := syntax.DRCInfo{Present: true, NumBands: 1, ProgRefLevel: tt.ref}
			info.DynRngSgn[0] = tt.sgn
			info.DynRngCtl[0] = tt.ctl
			spec := ones(1024)
			NewDRC(tt.cut, tt.boost).Apply(&info, spec)
			for i, v := range spec {
				if math.Abs(float64(v)-tt.wantGain) > 1e-6 {
					t.Fatalf("line %d: got %v, want %v", i, v, tt.wantGain)
				}
			}
		})
	}
}

func TestDRC_Bands(t *testing.T) {
	info := syntax.DRCInfo{Present: true, NumBands: 2, ProgRefLevel: RefLevel}
	info.BandTop[0] = 9 // lines 0..39
	info.BandTop[1] = 255
	info.DynRngSgn[0] = true
	info.DynRngCtl[0] = 24
	spec := ones(1024)
	NewDRC(1, 1).Apply(&info, spec)
	if spec[39] != 0.5 || spec[40] != 1 || spec[1023] != 1 {
		t.Errorf("band edges: got %v %v %v, want 0.5 1 1", spec[39], spec[40], spec[1023])
	}
}

func TestDRC_Applies(t *testing.T) {
	d := NewDRC(1, 1)
	info := syntax.DRCInfo{}
	if d.Applies(&info, 0) {
		t.Error("applies without dynamic range info")
	}
	info.Present = true
	info.ExcludeMask[1] = true
	if !d.Applies(&info, 0) || d.Applies(&info, 1) {
		t.Errorf("exclusion: got %v %v, want true false", d.Applies(&info, 0), d.Applies(&info, 1))
	}
}
