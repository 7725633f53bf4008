package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// ParseSectionData reads section_data (Table 4.52): runs of scale factor
// bands sharing one codebook, for every window group.
func ParseSectionData(r *bits.Reader, ics *ICStream, cfg *StreamConfig) error {
	sectBits := uint(5)
	sectLim := uint16(MaxSFB)
	if ics.IsShort() {
		sectBits = 3
		sectLim = maxSections
	}
	escVal := uint16(1)<<sectBits - 1
	cbBits := uint(4)
	if cfg.SectionDataResilience {
		cbBits = 5
	}

	ics.NoiseUsed = false
	ics.ISUsed = false
	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		var k uint16
		var i uint8
		for k < uint16(ics.MaxSFB) {
			if r.Error() {
				return ErrBitstreamRead
			}
			if uint16(i) >= sectLim {
				return ErrSectionLength
			}
			cb := huffman.Codebook(r.GetBits(cbBits))
			switch {
			case cb == huffman.ReservedHCB:
				return ErrReservedCodebook
			case cb == huffman.NoiseHCB:
				ics.NoiseUsed = true
			case cb.IsIntensity():
				ics.ISUsed = true
			}

			var sectLen uint16
			if cfg.SectionDataResilience && (cb == huffman.EscHCB || cb >= huffman.FirstVirtualHCB) {
				// One band per section for escape codebooks.
				sectLen = 1
			} else {
				for {
					incr := uint16(r.GetBits(sectBits))
					sectLen += incr
					if sectLen > sectLim || r.Error() {
						return ErrSectionLength
					}
					if incr != escVal {
						break
					}
				}
			}
			if k+sectLen > sectLim {
				return ErrSectionLength
			}
			if k+sectLen > uint16(ics.MaxSFB) {
				return ErrSectionCoverage
			}

			ics.SectCB[g][i] = uint8(cb)
			ics.SectStart[g][i] = k
			ics.SectEnd[g][i] = k + sectLen
			for sfb := k; sfb < k+sectLen; sfb++ {
				ics.SFBCB[g][sfb] = uint8(cb)
			}
			k += sectLen
			i++
		}
		ics.NumSec[g] = i
		if k != uint16(ics.MaxSFB) {
			return ErrSectionCoverage
		}
	}
	return nil
}
