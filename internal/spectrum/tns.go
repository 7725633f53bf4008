package spectrum

import (
	"github.com/llehouerou/go-heaac/internal/syntax"
	"github.com/llehouerou/go-heaac/internal/tables"
)

// tnsMaxOrder bounds the order of a TNS filter.
const tnsMaxOrder = syntax.MaxTNSOrder

// TNSDecode applies the all-pole TNS synthesis filters of ics to spec.
// Reference: ISO/IEC 14496-3, 4.6.9
func TNSDecode(ics *syntax.ICStream, srIndex uint8, spec []float32, frameLength uint16) {
	tnsFrame(ics, srIndex, spec, frameLength, arFilter)
}

// TNSEncode applies the inverse, all-zero filters. Long term prediction
// runs it on its predicted spectrum so that the prediction matches the
// spectrum before TNS decoding.
func TNSEncode(ics *syntax.ICStream, srIndex uint8, spec []float32, frameLength uint16) {
	tnsFrame(ics, srIndex, spec, frameLength, maFilter)
}

type tnsFilter func(spec []float32, start, size, inc int, lpc []float32, order int)

func tnsFrame(ics *syntax.ICStream, srIndex uint8, spec []float32, frameLength uint16, filter tnsFilter) {
	if !ics.TNSDataPresent {
		return
	}
	tns := &ics.TNS
	nshort := int(frameLength) / 8
	maxSFB := int(min(tables.MaxTNSSFB(srIndex, ics.IsShort()), ics.MaxSFB))
	var lpc [tnsMaxOrder + 1]float32

	for w := 0; w < int(ics.NumWindows); w++ {
		bottom := int(ics.NumSWB)
		for f := 0; f < int(tns.NFilt[w]); f++ {
			top := bottom
			bottom = max(top-int(tns.Length[w][f]), 0)
			order := min(int(tns.Order[w][f]), tnsMaxOrder)
			if order == 0 {
				continue
			}
			decodeCoef(order, tns.CoefRes[w], tns.CoefCompress[w][f], tns.Coef[w][f][:], lpc[:])

			start := int(min(ics.SWBOffset[min(bottom, maxSFB)], ics.SWBOffsetMax))
			end := int(min(ics.SWBOffset[min(top, maxSFB)], ics.SWBOffsetMax))
			size := end - start
			if size <= 0 {
				continue
			}
			inc := 1
			if tns.Direction[w][f] != 0 {
				inc = -1
				start = end - 1
			}
			filter(spec, w*nshort+start, size, inc, lpc[:], order)
		}
	}
}

// decodeCoef converts transmitted reflection coefficient indices into
// direct form LPC coefficients, lpc[0] being 1.
func decodeCoef(order int, coefRes, coefCompress uint8, coef []uint8, lpc []float32) {
	table := tnsCoefTable(coefCompress, coefRes)
	var refl, b [tnsMaxOrder + 1]float32
	for i := 0; i < order; i++ {
		refl[i] = table[coef[i]&0x0f]
	}
	lpc[0] = 1
	for m := 1; m <= order; m++ {
		for i := 1; i < m; i++ {
			b[i] = lpc[i] + refl[m-1]*lpc[m-i]
		}
		for i := 1; i < m; i++ {
			lpc[i] = b[i]
		}
		lpc[m] = refl[m-1]
	}
}

// arFilter runs y(n) = x(n) - lpc[1]y(n-1) - ... - lpc[order]y(n-order)
// over size lines from start, stepping by inc. The state is doubled so the
// taps read contiguously.
func arFilter(spec []float32, start, size, inc int, lpc []float32, order int) {
	var state [2 * tnsMaxOrder]float32
	idx := 0
	p := start
	for i := 0; i < size; i++ {
		y := spec[p]
		for j := 0; j < order; j++ {
			y -= state[idx+j] * lpc[j+1]
		}
		idx--
		if idx < 0 {
			idx = order - 1
		}
		state[idx], state[idx+order] = y, y
		spec[p] = y
		p += inc
	}
}

// maFilter runs y(n) = x(n) + lpc[1]x(n-1) + ... + lpc[order]x(n-order).
func maFilter(spec []float32, start, size, inc int, lpc []float32, order int) {
	var state [2 * tnsMaxOrder]float32
	idx := 0
	p := start
	for i := 0; i < size; i++ {
		x := spec[p]
		y := x
		for j := 0; j < order; j++ {
			y += state[idx+j] * lpc[j+1]
		}
		idx--
		if idx < 0 {
			idx = order - 1
		}
		state[idx], state[idx+order] = x, x
		spec[p] = y
		p += inc
	}
}
