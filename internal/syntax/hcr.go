package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// Codebooks in the order their priority codewords are placed. Each entry
// also covers the next codebook of the same dimension and sign.
var (
	hcrSortOrder   = []huffman.Codebook{11, 9, 7, 5, 3, 1}
	hcrSortOrderER = []huffman.Codebook{11, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18, 17, 16, 9, 7, 5, 3, 1}
)

// maxCodewordLen is the longest codeword (with signs and escapes) of each
// codebook.
var maxCodewordLen = [32]uint8{
	0, 11, 9, 20, 16, 13, 11, 14, 12, 17, 14, 49, 0, 0, 0, 0,
	14, 17, 21, 21, 25, 25, 29, 29, 29, 29, 33, 33, 33, 41, 41, 49,
}

type hcrCodeword struct {
	cb      huffman.Codebook
	sp      uint16
	decoded bool
	bits    bits.Window
}

// hcrState is the scratch space of codeword reordering.
type hcrState struct {
	segments  [maxHCRSegments]bits.Window
	codewords [maxHCRCodewords]hcrCodeword
}

func sortMatches(sortCB, cb huffman.Codebook) bool {
	if !cb.IsSpectral() {
		return false
	}
	if sortCB < huffman.EscHCB {
		return cb == sortCB || cb == sortCB+1
	}
	return cb == sortCB
}

// ParseReorderedSpectralData reads reordered_spectral_data. Priority
// codewords, walked band by band in codebook priority order, start one
// segment each. The remaining codewords fill the unused tails of the
// segments, decoded set by set with the read direction alternating after
// every set.
func ParseReorderedSpectralData(r *bits.Reader, ics *ICStream, cfg *StreamConfig) error {
	clear(ics.Spec[:])
	dataLen := uint(ics.LengthOfReorderedSpectralData)
	longest := ics.LengthOfLongestCodeword
	if dataLen == 0 {
		return nil
	}
	if longest == 0 || dataLen < uint(longest) {
		return ErrHCR
	}

	if ics.hcr == nil {
		ics.hcr = &hcrState{}
	}
	st := ics.hcr
	nshort := ics.SWBOffsetMax
	var spOffset [MaxWindowGroups]uint16
	for g := uint8(1); g < ics.NumWindowGroups; g++ {
		spOffset[g] = spOffset[g-1] + nshort*uint16(ics.WindowGroupLength[g-1])
	}

	order := hcrSortOrder
	if cfg.SectionDataResilience {
		order = hcrSortOrderER
	}

	var (
		numSegments  int
		numCodewords int
		bitsRead     uint
		pcwsDone     bool
	)
	for _, sortCB := range order {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			width := min(ics.SWBOffset[sfb+1], ics.SWBOffsetMax) - ics.SWBOffset[sfb]
			for wIdx := uint16(0); 4*wIdx < width; wIdx++ {
				for g := uint8(0); g < ics.NumWindowGroups; g++ {
					for i := uint8(0); i < ics.NumSec[g]; i++ {
						if ics.SectStart[g][i] > uint16(sfb) || ics.SectEnd[g][i] <= uint16(sfb) {
							continue
						}
						cb := huffman.Codebook(ics.SectCB[g][i])
						if !sortMatches(sortCB, cb) {
							continue
						}
						sfbSize := ics.SectSFBOffset[g][sfb+1] - ics.SectSFBOffset[g][sfb]
						inc := uint16(cb.Width())
						groupCws := 4 * uint16(ics.WindowGroupLength[g]) / inc
						segWidth := uint(min(maxCodewordLen[cb], longest))

						for cws := uint16(0); cws < groupCws && cws+wIdx*groupCws < sfbSize; cws++ {
							sp := spOffset[g] + ics.SectSFBOffset[g][sfb] + inc*(cws+wIdx*groupCws)
							if int(sp+inc) > len(ics.Spec) {
								return ErrHCR
							}
							if pcwsDone {
								if numCodewords >= maxHCRCodewords {
									return ErrHCR
								}
								st.codewords[numCodewords] = hcrCodeword{cb: cb, sp: sp}
								numCodewords++
								continue
							}
							if bitsRead+segWidth <= dataLen {
								if numSegments >= maxHCRSegments {
									return ErrHCR
								}
								seg := &st.segments[numSegments]
								*seg = bits.ReadWindow(r, segWidth)
								bitsRead += segWidth
								decodeCodeword(cb, seg, ics.Spec[sp:sp+inc])
								seg.Reverse()
								numSegments++
								continue
							}

							// The bits after the last full segment extend it.
							if bitsRead < dataLen && numSegments > 0 {
								extra := bits.ReadWindow(r, dataLen-bitsRead)
								last := &st.segments[numSegments-1]
								if extra.Len+last.Len > 64 {
									return ErrHCR
								}
								last.Concat(extra)
								bitsRead = dataLen
							}
							pcwsDone = true
							st.codewords[0] = hcrCodeword{cb: cb, sp: sp}
							numCodewords = 1
						}
					}
				}
			}
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	if numSegments == 0 {
		return ErrHCR
	}

	numSets := (numCodewords + numSegments - 1) / numSegments
	for set := 0; set < numSets; set++ {
		for trial := 0; trial < numSegments; trial++ {
			for base := 0; base < numSegments; base++ {
				cwIdx := set*numSegments + base
				if cwIdx >= numCodewords {
					break
				}
				cw := &st.codewords[cwIdx]
				seg := &st.segments[(trial+base)%numSegments]
				if cw.decoded || seg.Len == 0 {
					continue
				}
				if cw.bits.Len != 0 {
					seg.Concat(cw.bits)
				}
				before := *seg
				if decodeCodeword(cw.cb, seg, ics.Spec[cw.sp:cw.sp+uint16(cw.cb.Width())]) {
					cw.decoded = true
					cw.bits = bits.Window{}
					continue
				}
				// Keep everything read so far with the codeword and
				// retry it against the next segment.
				cw.bits = before
				*seg = bits.Window{}
			}
		}
		for i := 0; i < numSegments; i++ {
			st.segments[i].Reverse()
		}
	}
	return nil
}

// decodeCodeword decodes one codeword from a segment. On failure the
// lines are left zero.
func decodeCodeword(cb huffman.Codebook, seg *bits.Window, sp []int16) bool {
	if err := huffman.SpectralData(cb, seg, sp); err != nil || seg.Error() {
		seg.ClearError()
		clear(sp)
		return false
	}
	return true
}
