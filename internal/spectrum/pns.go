package spectrum

import (
	"math"

	"github.com/llehouerou/go-heaac/internal/syntax"
)

// PNS fills the noise bands of one channel, or of both channels of a pair
// when right is not nil. Prediction and long term prediction are switched
// off for every band it fills.
//
// When a band is noise in both channels of a common window pair and M/S
// is signalled for it, the right channel receives a copy of the left
// noise instead of its own.
func PNS(left, right *syntax.ICStream, specL, specR []float32, pair bool, rng *RNG, frameLength uint16) {
	nshort := int(frameLength) / 8
	win := 0
	for g := 0; g < int(left.NumWindowGroups); g++ {
		for b := 0; b < int(left.WindowGroupLength[g]); b++ {
			base := win * nshort
			for sfb := 0; sfb < int(left.MaxSFB); sfb++ {
				leftNoise := isNoise(left.SFBCB[g][sfb])
				if leftNoise {
					disablePrediction(left, sfb)
					lo, hi := band(left, sfb)
					if hi > lo {
						noiseVector(specL[base+lo:base+hi], left.ScaleFactors[g][sfb], rng)
					}
				}
				if right == nil || sfb >= int(right.MaxSFB) || !isNoise(right.SFBCB[g][sfb]) {
					continue
				}
				lo, hi := band(right, sfb)
				if hi <= lo {
					continue
				}
				if pair && leftNoise && msUsed(left, g, sfb) {
					copy(specR[base+lo:base+hi], specL[base+lo:base+hi])
					continue
				}
				disablePrediction(right, sfb)
				noiseVector(specR[base+lo:base+hi], right.ScaleFactors[g][sfb], rng)
			}
			win++
		}
	}
}

func disablePrediction(ics *syntax.ICStream, sfb int) {
	ics.LTP.LongUsed[sfb] = false
	ics.LTP2.LongUsed[sfb] = false
	ics.Pred.PredictionUsed[sfb] = false
}

func msUsed(ics *syntax.ICStream, g, sfb int) bool {
	return ics.MSMaskPresent == 2 || (ics.MSMaskPresent == 1 && ics.MSUsed[g][sfb])
}

// noiseVector writes random lines with energy 2^(sf/2) into spec.
func noiseVector(spec []float32, sf int16, rng *RNG) {
	scale := 1 / float32(len(spec))
	var energy float32
	for i := range spec {
		v := scale * float32(int32(rng.Next()))
		spec[i] = v
		energy += v * v
	}
	if energy == 0 {
		return
	}
	scale = float32(math.Pow(2, 0.25*float64(sf)) / math.Sqrt(float64(energy)))
	for i := range spec {
		spec[i] *= scale
	}
}
