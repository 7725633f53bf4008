package spectrum

import (
	"github.com/llehouerou/go-heaac/internal/huffman"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// intensity returns +1 for an in-phase intensity band, -1 for an
// out-of-phase one and 0 otherwise.
func intensity(cb uint8) int {
	switch huffman.Codebook(cb) {
	case huffman.IntensityHCB:
		return 1
	case huffman.IntensityHCB2:
		return -1
	}
	return 0
}

func isNoise(cb uint8) bool {
	return huffman.Codebook(cb) == huffman.NoiseHCB
}

// band returns the line range of band sfb within one window, clipped to the
// window length.
func band(ics *syntax.ICStream, sfb int) (lo, hi int) {
	return int(ics.SWBOffset[sfb]), int(min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax))
}
