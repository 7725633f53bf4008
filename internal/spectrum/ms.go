package spectrum

import "github.com/llehouerou/go-heaac/internal/syntax"

// MS undoes mid/side coding of a channel pair. The mask is read from left;
// intensity and noise bands of the right channel are left alone.
func MS(left, right *syntax.ICStream, specL, specR []float32, frameLength uint16) {
	if left.MSMaskPresent == 0 {
		return
	}
	nshort := int(frameLength) / 8
	win := 0
	for g := 0; g < int(left.NumWindowGroups); g++ {
		for b := 0; b < int(left.WindowGroupLength[g]); b++ {
			base := win * nshort
			for sfb := 0; sfb < int(left.MaxSFB); sfb++ {
				cb := right.SFBCB[g][sfb]
				if !msUsed(left, g, sfb) || intensity(cb) != 0 || isNoise(cb) {
					continue
				}
				lo, hi := band(left, sfb)
				for i := base + lo; i < base+hi; i++ {
					l, r := specL[i], specR[i]
					specL[i] = l + r
					specR[i] = l - r
				}
			}
			win++
		}
	}
}
