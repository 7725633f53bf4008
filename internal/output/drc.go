package output

import (
	"math"

	"github.com/llehouerou/go-heaac/internal/syntax"
)

// RefLevel is the program reference level assumed by the DRC gains, in
// quarter dB below full scale (-20 dB).
const RefLevel = 80

// DRC applies dynamic_range_info gains to a spectrum. Cut scales the
// compression values and Boost the expansion values; 1 applies them as
// transmitted and 0 disables them.
type DRC struct {
	Cut   float32
	Boost float32
}

// NewDRC returns a DRC with the given factors.
func NewDRC(cut, boost float32) *DRC {
	return &DRC{Cut: cut, Boost: boost}
}

// Applies reports whether info affects channel ch.
func (d *DRC) Applies(info *syntax.DRCInfo, ch int) bool {
	if !info.Present {
		return false
	}
	return ch >= len(info.ExcludeMask) || !info.ExcludeMask[ch]
}

// Apply scales spec band by band. Band tops are in units of four spectral
// lines; a single band covers the whole frame.
func (d *DRC) Apply(info *syntax.DRCInfo, spec []float32) {
	bottom := 0
	for b := 0; b < int(info.NumBands); b++ {
		top := len(spec)
		if info.NumBands > 1 {
			top = min(4*(int(info.BandTop[b])+1), len(spec))
		}
		ctl := float64(info.DynRngCtl[b])
		ref := float64(RefLevel - int(info.ProgRefLevel))
		var exp float64
		if info.DynRngSgn[b] {
			exp = (-float64(d.Cut)*ctl - ref) / 24
		} else {
			exp = (float64(d.Boost)*ctl - ref) / 24
		}
		g := float32(math.Exp2(exp))
		for i := bottom; i < top; i++ {
			spec[i] *= g
		}
		bottom = top
		if bottom >= len(spec) {
			return
		}
	}
}
