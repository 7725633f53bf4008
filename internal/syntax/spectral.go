package syntax

import (
	"errors"

	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// ParseSpectralData reads spectral_data (Table 4.56) into ics.Spec. Lines
// are stored group by group in bitstream order; bands beyond max_sfb and
// bands coded with the zero, noise or intensity codebooks stay zero.
func ParseSpectralData(r *bits.Reader, ics *ICStream) error {
	clear(ics.Spec[:])
	nshort := ics.SWBOffsetMax

	var groups uint16
	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		p := groups * nshort
		for i := uint8(0); i < ics.NumSec[g]; i++ {
			cb := huffman.Codebook(ics.SectCB[g][i])
			start := ics.SectSFBOffset[g][ics.SectStart[g][i]]
			end := ics.SectSFBOffset[g][ics.SectEnd[g][i]]
			if !cb.IsSpectral() {
				p += end - start
				continue
			}
			inc := uint16(cb.Width())
			for k := start; k < end; k += inc {
				if int(p+inc) > len(ics.Spec) {
					return ErrSpectralData
				}
				if err := huffman.SpectralData(cb, r, ics.Spec[p:p+inc]); err != nil {
					return spectralError(err)
				}
				p += inc
			}
			if r.Error() {
				return ErrBitstreamRead
			}
		}
		groups += uint16(ics.WindowGroupLength[g])
	}
	return nil
}

func spectralError(err error) error {
	if errors.Is(err, huffman.ErrInvalidCodebook) {
		return ErrInvalidCodebook
	}
	return ErrSpectralData
}
