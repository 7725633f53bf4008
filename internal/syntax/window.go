package syntax

import "github.com/llehouerou/go-heaac/internal/tables"

// WindowGroupingInfo derives the window and band layout of ics from its
// window sequence and scale_factor_grouping: number of windows and groups,
// the band offsets of one window and the per group section offsets used
// to address the interleaved spectrum.
func WindowGroupingInfo(ics *ICStream, srIndex uint8, frameLength uint16) error {
	if srIndex >= 12 {
		return ErrInvalidSRIndex
	}
	switch ics.WindowSequence {
	case OnlyLongSequence, LongStartSequence, LongStopSequence:
		// LD frames have no short blocks to switch to.
		if ics.WindowSequence != OnlyLongSequence && (frameLength == 512 || frameLength == 480) {
			return ErrInvalidWindow
		}
		b, err := tables.LongBands(srIndex, frameLength)
		if err != nil {
			return ErrInvalidSRIndex
		}
		ics.NumWindows = 1
		ics.NumWindowGroups = 1
		ics.WindowGroupLength[0] = 1
		ics.NumSWB = b.Num
		if ics.MaxSFB > ics.NumSWB {
			return ErrMaxSFBTooLarge
		}
		copy(ics.SWBOffset[:], b.Offsets)
		copy(ics.SectSFBOffset[0][:], b.Offsets)
		ics.SWBOffsetMax = frameLength
		return nil
	case EightShortSequence:
		b, err := tables.ShortBands(srIndex, frameLength)
		if err != nil {
			return ErrInvalidWindow
		}
		ics.NumWindows = 8
		ics.NumSWB = b.Num
		if ics.MaxSFB > ics.NumSWB {
			return ErrMaxSFBTooLarge
		}
		copy(ics.SWBOffset[:], b.Offsets)
		ics.SWBOffsetMax = frameLength / 8

		// Bit 6-i of the grouping set means window i+1 joins the group of
		// window i.
		ics.NumWindowGroups = 1
		ics.WindowGroupLength[0] = 1
		for i := uint(0); i < 7; i++ {
			if ics.ScaleFactorGrouping&(1<<(6-i)) != 0 {
				ics.WindowGroupLength[ics.NumWindowGroups-1]++
			} else {
				ics.NumWindowGroups++
				ics.WindowGroupLength[ics.NumWindowGroups-1] = 1
			}
		}

		for g := uint8(0); g < ics.NumWindowGroups; g++ {
			var offset uint16
			n := uint16(ics.WindowGroupLength[g])
			for sfb := uint8(0); sfb < ics.NumSWB; sfb++ {
				ics.SectSFBOffset[g][sfb] = offset
				offset += (b.Offsets[sfb+1] - b.Offsets[sfb]) * n
			}
			ics.SectSFBOffset[g][ics.NumSWB] = offset
		}
		return nil
	}
	return ErrInvalidWindow
}
