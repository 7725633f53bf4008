package spectrum

import (
	"math"

	"github.com/llehouerou/go-heaac/internal/syntax"
)

// IS reconstructs the intensity bands of the right channel from the left
// spectrum. The band's intensity position scales the copy by
// 0.5^(position/4); the sign follows the codebook, inverted where M/S is
// signalled for the band.
func IS(left, right *syntax.ICStream, specL, specR []float32, frameLength uint16) {
	nshort := int(frameLength) / 8
	win := 0
	for g := 0; g < int(right.NumWindowGroups); g++ {
		for b := 0; b < int(right.WindowGroupLength[g]); b++ {
			base := win * nshort
			for sfb := 0; sfb < int(right.MaxSFB); sfb++ {
				dir := intensity(right.SFBCB[g][sfb])
				if dir == 0 {
					continue
				}
				left.Pred.PredictionUsed[sfb] = false
				right.Pred.PredictionUsed[sfb] = false
				left.LTP.LongUsed[sfb] = false
				right.LTP.LongUsed[sfb] = false

				scale := float32(math.Pow(0.5, 0.25*float64(right.ScaleFactors[g][sfb])))
				if left.MSMaskPresent == 1 && left.MSUsed[g][sfb] {
					dir = -dir
				}
				if dir < 0 {
					scale = -scale
				}
				lo, hi := band(right, sfb)
				for i := base + lo; i < base+hi; i++ {
					specR[i] = specL[i] * scale
				}
			}
			win++
		}
	}
}
