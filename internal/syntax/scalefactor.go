package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// ParseScaleFactorData reads scale_factor_data (Table 4.59). Spectral bands
// accumulate deltas from the global gain, intensity bands accumulate their
// own positions and noise bands their energies. The first noise energy is
// sent as a 9 bit offset.
func ParseScaleFactorData(r *bits.Reader, ics *ICStream) error {
	sf := int16(ics.GlobalGain)
	isPosition := int16(0)
	noiseEnergy := int16(ics.GlobalGain) - sfOffsetNoise
	noisePCM := true

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			switch cb := huffman.Codebook(ics.SFBCB[g][sfb]); {
			case cb == huffman.ZeroHCB:
				ics.ScaleFactors[g][sfb] = 0
			case cb.IsIntensity():
				isPosition += huffman.ScaleFactor(r)
				ics.ScaleFactors[g][sfb] = isPosition
			case cb == huffman.NoiseHCB:
				if noisePCM {
					noisePCM = false
					noiseEnergy += int16(r.GetBits(9)) - 256
				} else {
					noiseEnergy += huffman.ScaleFactor(r)
				}
				ics.ScaleFactors[g][sfb] = noiseEnergy
			default:
				sf += huffman.ScaleFactor(r)
				if sf < 0 || sf > 255 {
					return ErrScaleFactorRange
				}
				ics.ScaleFactors[g][sfb] = sf
			}
			if r.Error() {
				return ErrBitstreamRead
			}
		}
	}
	return nil
}
