package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

// DRCInfo is the dynamic_range_info of the most recent fill element that
// carried one.
type DRCInfo struct {
	Present       bool
	NumBands      uint8
	PCETagPresent bool
	PCEInstance   uint8
	ExcludeMask   [MaxChannels]bool
	BandTop       [MaxDRCBands]uint8
	ProgRefLevel  uint8
	DynRngSgn     [MaxDRCBands]bool
	DynRngCtl     [MaxDRCBands]uint8
}

// SBRHandler receives the SBR extension payload of a fill element. The
// reader is positioned at the extension type nibble and the payload spans
// cnt bytes; the caller realigns the reader afterwards.
type SBRHandler interface {
	SBRExtension(r *bits.Reader, cnt uint16) error
}

// ParseFillElement reads fill_element (Table 4.11). SBR payloads go to
// sbr, which is nil when no channel element precedes the fill element.
// Other extension payloads are parsed into drc or skipped.
func ParseFillElement(r *bits.Reader, drc *DRCInfo, sbr SBRHandler) error {
	count := uint16(r.GetBits(4))
	if count == 15 {
		count += uint16(r.GetBits(8)) - 1
	}
	if count == 0 {
		return nil
	}

	switch ExtensionType(r.ShowBits(4)) {
	case ExtSBRData, ExtSBRDataCRC:
		if sbr == nil {
			return ErrFillWithoutElement
		}
		start := r.ProcessedBits()
		err := sbr.SBRExtension(r, count)
		end := start + 8*uint32(count)
		if p := r.ProcessedBits(); p < end {
			r.FlushBits(uint(end - p))
		} else if p > end {
			r.ResetTo(end)
		}
		if err != nil {
			return err
		}
	default:
		left := int(count)
		for left > 0 {
			n := parseExtensionPayload(r, drc, left)
			if n <= 0 {
				break
			}
			left -= n
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}

// parseExtensionPayload reads one extension_payload (Table 4.51) of at most
// count bytes and returns the bytes consumed.
func parseExtensionPayload(r *bits.Reader, drc *DRCInfo, count int) int {
	switch ExtensionType(r.GetBits(4)) {
	case ExtDynamicRange:
		drc.Present = true
		return parseDynamicRangeInfo(r, drc)
	case ExtDataElement:
		if r.GetBits(4) != ancData {
			break
		}
		length, loops := 0, 0
		for {
			part := int(r.GetBits(8))
			length += part
			loops++
			if part != 255 {
				break
			}
		}
		r.FlushBits(uint(8 * length))
		return length + loops + 1
	default:
		r.FlushBits(4)
	}
	r.FlushBits(uint(8 * (count - 1)))
	return count
}

// parseDynamicRangeInfo reads dynamic_range_info (Table 4.52) and returns
// its size in bytes.
func parseDynamicRangeInfo(r *bits.Reader, drc *DRCInfo) int {
	n := 1
	drc.NumBands = 1
	clear(drc.ExcludeMask[:])
	drc.PCETagPresent = r.Get1Bit() != 0
	if drc.PCETagPresent {
		drc.PCEInstance = uint8(r.GetBits(4))
		r.FlushBits(4)
		n++
	}
	if r.Get1Bit() != 0 {
		n += parseExcludedChannels(r, drc)
	}
	if r.Get1Bit() != 0 {
		drc.NumBands += uint8(r.GetBits(4))
		r.FlushBits(4)
		n++
		for i := uint8(0); i < drc.NumBands; i++ {
			drc.BandTop[i] = uint8(r.GetBits(8))
			n++
		}
	}
	if r.Get1Bit() != 0 {
		drc.ProgRefLevel = uint8(r.GetBits(7))
		r.FlushBits(1)
		n++
	}
	for i := uint8(0); i < drc.NumBands; i++ {
		drc.DynRngSgn[i] = r.Get1Bit() != 0
		drc.DynRngCtl[i] = uint8(r.GetBits(7))
		n++
	}
	return n
}

// parseExcludedChannels reads excluded_channels: groups of seven mask bits,
// each followed by a continuation flag.
func parseExcludedChannels(r *bits.Reader, drc *DRCInfo) int {
	n := 0
	for base := 0; ; base += 7 {
		for i := base; i < base+7; i++ {
			bit := r.Get1Bit() != 0
			if i < len(drc.ExcludeMask) {
				drc.ExcludeMask[i] = bit
			}
		}
		n++
		if r.Get1Bit() == 0 || base+14 > MaxChannels || r.Error() {
			return n
		}
	}
}
