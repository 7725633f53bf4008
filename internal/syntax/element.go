package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// Element is one parsed channel element. Single channel and LFE elements
// use ICS1 only.
type Element struct {
	ID           ElementID
	Tag          uint8
	CommonWindow bool
	ICS1         ICStream
	ICS2         ICStream
}

// ReadElementID reads the 3 bit id_syn_ele that starts every element of a
// raw data block.
func ReadElementID(r *bits.Reader) ElementID {
	return ElementID(r.GetBits(LenSEID))
}

// ParseSingleChannelElement reads single_channel_element or
// lfe_channel_element (Tables 4.4 and 4.9). Intensity stereo has no
// meaning in a single channel.
func ParseSingleChannelElement(r *bits.Reader, el *Element, id ElementID, cfg *StreamConfig) error {
	el.ID = id
	el.CommonWindow = false
	el.Tag = uint8(r.GetBits(LenTag))
	el.ICS1.Reset()
	if err := ParseICS(r, &el.ICS1, cfg, false); err != nil {
		return err
	}
	if el.ICS1.ISUsed {
		return ErrIntensityInSCE
	}
	return nil
}

// ParseChannelPairElement reads channel_pair_element (Table 4.5). With a
// common window both channels share ics_info and the M/S mask; the second
// channel takes its LTP data from the second set carried by the first.
func ParseChannelPairElement(r *bits.Reader, el *Element, cfg *StreamConfig) error {
	el.ID = IDCPE
	el.Tag = uint8(r.GetBits(LenTag))
	el.CommonWindow = r.Get1Bit() != 0
	ics1, ics2 := &el.ICS1, &el.ICS2
	ics1.Reset()
	ics2.Reset()

	if el.CommonWindow {
		if err := ParseICSInfo(r, ics1, cfg, true); err != nil {
			return err
		}
		ics1.MSMaskPresent = uint8(r.GetBits(2))
		switch ics1.MSMaskPresent {
		case 3:
			return ErrMSMaskReserved
		case 1:
			for g := uint8(0); g < ics1.NumWindowGroups; g++ {
				for sfb := uint8(0); sfb < ics1.MaxSFB; sfb++ {
					ics1.MSUsed[g][sfb] = r.Get1Bit() != 0
				}
			}
		}
		if cfg.ER() && ics1.PredictorDataPresent {
			ics1.LTP.DataPresent = r.Get1Bit() != 0
			if ics1.LTP.DataPresent {
				if err := ParseLTPData(r, ics1, &ics1.LTP, cfg); err != nil {
					return err
				}
			}
		}
		copyWindowInfo(ics2, ics1)
	}

	if err := ParseICS(r, ics1, cfg, el.CommonWindow); err != nil {
		return err
	}
	if el.CommonWindow && cfg.ER() && ics1.PredictorDataPresent {
		ics2.LTP.DataPresent = r.Get1Bit() != 0
		if ics2.LTP.DataPresent {
			if err := ParseLTPData(r, ics2, &ics2.LTP, cfg); err != nil {
				return err
			}
		}
	}
	return ParseICS(r, ics2, cfg, el.CommonWindow)
}

// copyWindowInfo gives the second channel of a common window pair the
// layout and prediction side information of the first.
func copyWindowInfo(dst, src *ICStream) {
	dst.WindowSequence = src.WindowSequence
	dst.WindowShape = src.WindowShape
	dst.MaxSFB = src.MaxSFB
	dst.ScaleFactorGrouping = src.ScaleFactorGrouping
	dst.NumWindows = src.NumWindows
	dst.NumWindowGroups = src.NumWindowGroups
	dst.WindowGroupLength = src.WindowGroupLength
	dst.NumSWB = src.NumSWB
	dst.SWBOffset = src.SWBOffset
	dst.SWBOffsetMax = src.SWBOffsetMax
	dst.SectSFBOffset = src.SectSFBOffset
	dst.MSMaskPresent = src.MSMaskPresent
	dst.MSUsed = src.MSUsed
	dst.PredictorDataPresent = src.PredictorDataPresent
	dst.Pred = src.Pred
	dst.LTP = src.LTP2
}

// ParseCouplingChannelElement reads coupling_channel_element (Table 4.8).
// Coupling is not applied; the element is parsed to stay in sync and its
// channel stream is left in el.ICS1.
func ParseCouplingChannelElement(r *bits.Reader, el *Element, cfg *StreamConfig) error {
	el.ID = IDCCE
	el.CommonWindow = false
	el.Tag = uint8(r.GetBits(LenTag))
	indSw := r.Get1Bit() != 0
	numCoupled := r.GetBits(3)

	numGainLists := 0
	for c := uint32(0); c <= numCoupled; c++ {
		numGainLists++
		isCPE := r.Get1Bit() != 0
		r.FlushBits(LenTag)
		if isCPE {
			ccL := r.Get1Bit() != 0
			ccR := r.Get1Bit() != 0
			if ccL && ccR {
				numGainLists++
			}
		}
	}
	r.FlushBits(1 + 1 + 2) // domain, gain element sign, gain element scale

	ics := &el.ICS1
	ics.Reset()
	if err := ParseICS(r, ics, cfg, false); err != nil {
		return err
	}

	for c := 1; c < numGainLists; c++ {
		common := indSw || r.Get1Bit() != 0
		if common {
			huffman.ScaleFactor(r)
			continue
		}
		for g := uint8(0); g < ics.NumWindowGroups; g++ {
			for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
				if huffman.Codebook(ics.SFBCB[g][sfb]) != huffman.ZeroHCB {
					huffman.ScaleFactor(r)
				}
			}
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}

// ParseDataStreamElement reads data_stream_element (Table 4.10) and
// returns the number of data bytes skipped.
func ParseDataStreamElement(r *bits.Reader) int {
	r.FlushBits(LenTag)
	align := r.Get1Bit() != 0
	count := int(r.GetBits(8))
	if count == 255 {
		count += int(r.GetBits(8))
	}
	if align {
		r.ByteAlign()
	}
	r.FlushBits(uint(8 * count))
	return count
}
