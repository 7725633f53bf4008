package spectrum

import (
	"github.com/llehouerou/go-heaac/internal/huffman"
	"github.com/llehouerou/go-heaac/internal/syntax"
	"github.com/llehouerou/go-heaac/internal/tables"
)

// Dequantize converts the quantised lines of ics into scaled coefficients.
// spec receives frameLength values; the band-interleaved order of short
// window groups is undone so that window w occupies
// spec[w*frameLength/8:(w+1)*frameLength/8].
//
// A quantised magnitude outside the inverse quantisation table yields
// tables.ErrIQRange.
func Dequantize(ics *syntax.ICStream, spec []float32, frameLength uint16) error {
	spec = spec[:frameLength]
	clear(spec)

	winInc := int(ics.SWBOffset[ics.NumSWB])
	k, gindex := 0, 0
	for g := 0; g < int(ics.NumWindowGroups); g++ {
		glen := int(ics.WindowGroupLength[g])
		j := 0
		for sfb := 0; sfb < int(ics.NumSWB); sfb++ {
			width := int(ics.SWBOffset[sfb+1] - ics.SWBOffset[sfb])
			gain := bandGain(ics, g, sfb)
			wa := gindex + j
			for win := 0; win < glen; win++ {
				for bin := 0; bin < width; bin++ {
					if q := ics.Spec[k]; q != 0 {
						v, err := tables.IQuant(q)
						if err != nil {
							return err
						}
						spec[wa+bin] = v * gain
					}
					k++
				}
				wa += winInc
			}
			j += width
		}
		gindex += glen * winInc
	}
	return nil
}

// bandGain returns the scale factor gain of a spectral band. Bands past
// max_sfb and noise or intensity bands carry no quantised lines.
func bandGain(ics *syntax.ICStream, g, sfb int) float32 {
	if sfb >= int(ics.MaxSFB) {
		return 0
	}
	if !huffman.Codebook(ics.SFBCB[g][sfb]).IsSpectral() {
		return 0
	}
	return tables.ScaleFactorGain(ics.ScaleFactors[g][sfb])
}
