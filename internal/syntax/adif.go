package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

// adifID is "ADIF" read as a 32 bit word.
const adifID = 0x41444946

// ADIFHeader is the header of an ADIF stream.
type ADIFHeader struct {
	CopyrightIDPresent       bool
	CopyrightID              [9]byte
	OriginalCopy             bool
	Home                     bool
	BitstreamType            uint8 // 0 constant rate
	Bitrate                  uint32
	NumProgramConfigElements uint8
	ADIFBufferFullness       uint32
	PCE                      [MaxPCEElements]ProgramConfig
}

// IsADIF reports whether buf starts with the ADIF magic.
func IsADIF(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 'A' && buf[1] == 'D' && buf[2] == 'I' && buf[3] == 'F'
}

// ParseADIF reads adif_header (Table 1.A.2) including its program config
// elements.
func ParseADIF(r *bits.Reader, h *ADIFHeader) error {
	if r.GetBits(32) != adifID {
		return ErrADIFHeader
	}
	h.CopyrightIDPresent = r.Get1Bit() != 0
	if h.CopyrightIDPresent {
		for i := range h.CopyrightID {
			h.CopyrightID[i] = uint8(r.GetBits(8))
		}
	}
	h.OriginalCopy = r.Get1Bit() != 0
	h.Home = r.Get1Bit() != 0
	h.BitstreamType = r.Get1Bit()
	h.Bitrate = r.GetBits(23)
	h.NumProgramConfigElements = uint8(r.GetBits(4))

	for i := uint8(0); i <= h.NumProgramConfigElements; i++ {
		if h.BitstreamType == 0 {
			h.ADIFBufferFullness = r.GetBits(20)
		} else {
			h.ADIFBufferFullness = 0
		}
		if err := ParsePCE(r, &h.PCE[i]); err != nil {
			return err
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}
