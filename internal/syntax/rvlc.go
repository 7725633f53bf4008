package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// ParseRVLCSideInfo reads the fixed part of reversible scale factor data
// that takes the place of scale_factor_data in resilient streams.
func ParseRVLCSideInfo(r *bits.Reader, ics *ICStream) {
	rv := &ics.RVLC
	rv.SFConcealment = r.Get1Bit() != 0
	rv.RevGlobalGain = uint8(r.GetBits(8))
	n := uint(maxLongRVLCSFBits)
	if ics.IsShort() {
		n = maxShortRVLCSFBits
	}
	rv.LengthOfRVLCSF = uint16(r.GetBits(n))
	if ics.NoiseUsed {
		rv.DPCMNoiseNrg = uint16(r.GetBits(9))
		if rv.LengthOfRVLCSF >= 9 {
			rv.LengthOfRVLCSF -= 9
		} else {
			rv.LengthOfRVLCSF = 0
		}
	}
	rv.SFEscapesPresent = r.Get1Bit() != 0
	rv.LengthOfRVLCEscapes = 0
	if rv.SFEscapesPresent {
		rv.LengthOfRVLCEscapes = uint8(r.GetBits(8))
	}
	if ics.NoiseUsed {
		rv.DPCMNoiseLastPosition = uint16(r.GetBits(9))
	}
}

// DecodeRVLCScaleFactors reads the reversible codewords and escapes that
// follow the side information and decodes the scale factors forward. Once
// an invalid codeword is met the remaining bands are set to zero.
func DecodeRVLCScaleFactors(r *bits.Reader, ics *ICStream) error {
	sfData := subReader(r, uint(ics.RVLC.LengthOfRVLCSF))
	var escData *bits.Reader
	if ics.RVLC.SFEscapesPresent {
		escData = subReader(r, uint(ics.RVLC.LengthOfRVLCEscapes))
	} else {
		escData = bits.NewReader(nil)
	}
	if r.Error() {
		return ErrBitstreamRead
	}

	sf := int16(ics.GlobalGain)
	isPosition := int16(0)
	noiseEnergy := int16(ics.GlobalGain) - sfOffsetNoise - 256
	noisePCM := true
	failed := false

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			if failed {
				ics.ScaleFactors[g][sfb] = 0
				continue
			}
			switch cb := huffman.Codebook(ics.SFBCB[g][sfb]); {
			case cb == huffman.ZeroHCB:
				ics.ScaleFactors[g][sfb] = 0
			case cb.IsIntensity():
				t := huffman.RVLCScaleFactor(sfData, escData)
				if t == huffman.RVLCInvalid {
					failed = true
					ics.ScaleFactors[g][sfb] = 0
					continue
				}
				isPosition += t
				ics.ScaleFactors[g][sfb] = isPosition
			case cb == huffman.NoiseHCB:
				if noisePCM {
					noisePCM = false
					noiseEnergy += int16(ics.RVLC.DPCMNoiseNrg)
				} else {
					t := huffman.RVLCScaleFactor(sfData, escData)
					if t == huffman.RVLCInvalid {
						failed = true
						ics.ScaleFactors[g][sfb] = 0
						continue
					}
					noiseEnergy += t
				}
				ics.ScaleFactors[g][sfb] = noiseEnergy
			default:
				t := huffman.RVLCScaleFactor(sfData, escData)
				if t == huffman.RVLCInvalid {
					failed = true
					ics.ScaleFactors[g][sfb] = 0
					continue
				}
				sf += t
				if sf < 0 {
					return ErrScaleFactorRange
				}
				ics.ScaleFactors[g][sfb] = sf
			}
		}
	}
	return nil
}

// subReader moves the next n bits of r into a reader of their own.
func subReader(r *bits.Reader, n uint) *bits.Reader {
	var w bits.Writer
	for n > 0 {
		k := min(n, bits.MaxRead)
		w.PutBits(r.GetBits(k), k)
		n -= k
	}
	return bits.NewReader(w.Bytes())
}
