package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

const (
	adtsSyncword = 0xFFF

	// maxADTSSyncSearch bounds the bytes skipped while looking for a
	// syncword.
	maxADTSSyncSearch = 758
)

// ADTSHeader is the fixed and variable header of an ADTS frame.
type ADTSHeader struct {
	ID                   uint8 // 0 MPEG-4, 1 MPEG-2
	Layer                uint8
	ProtectionAbsent     bool
	Profile              uint8 // object type minus one
	SFIndex              uint8
	PrivateBit           bool
	ChannelConfiguration uint8
	Original             bool
	Home                 bool
	Emphasis             uint8

	CopyrightIDBit         bool
	CopyrightIDStart       bool
	AACFrameLength         uint16
	ADTSBufferFullness     uint16
	NoRawDataBlocksInFrame uint8
	CRCCheck               uint16
}

// HeaderSize returns the header length in bytes, including the CRC word.
func (h *ADTSHeader) HeaderSize() int {
	if h.ProtectionAbsent {
		return 7
	}
	return 9
}

// ParseADTS finds the next syncword and reads an adts_frame header. With
// oldFormat the two emphasis bits of early MPEG-2 streams are expected.
func ParseADTS(r *bits.Reader, h *ADTSHeader, oldFormat bool) error {
	found := false
	for i := 0; i < maxADTSSyncSearch; i++ {
		if r.ShowBits(12) == adtsSyncword {
			found = true
			break
		}
		r.FlushBits(8)
		if r.Error() {
			break
		}
	}
	if !found {
		return ErrADTSSyncword
	}
	r.FlushBits(12)

	h.ID = r.Get1Bit()
	h.Layer = uint8(r.GetBits(2))
	h.ProtectionAbsent = r.Get1Bit() != 0
	h.Profile = uint8(r.GetBits(2))
	h.SFIndex = uint8(r.GetBits(4))
	h.PrivateBit = r.Get1Bit() != 0
	h.ChannelConfiguration = uint8(r.GetBits(3))
	h.Original = r.Get1Bit() != 0
	h.Home = r.Get1Bit() != 0
	if oldFormat && h.ID == 0 {
		h.Emphasis = uint8(r.GetBits(2))
	}

	h.CopyrightIDBit = r.Get1Bit() != 0
	h.CopyrightIDStart = r.Get1Bit() != 0
	h.AACFrameLength = uint16(r.GetBits(13))
	h.ADTSBufferFullness = uint16(r.GetBits(11))
	h.NoRawDataBlocksInFrame = uint8(r.GetBits(2))
	if !h.ProtectionAbsent {
		h.CRCCheck = uint16(r.GetBits(16))
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	if h.SFIndex >= 12 {
		return ErrInvalidSRIndex
	}
	return nil
}
