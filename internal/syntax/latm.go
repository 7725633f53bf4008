package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

const loasSyncword = 0x2B7

// LATMConfig is the StreamMuxConfig state of a LATM stream. It persists
// between frames that reuse the previous configuration.
type LATMConfig struct {
	Initialised      bool
	Version          uint8
	VersionA         uint8
	FrameLengthType  uint8
	OtherDataLenBits uint32
	ASC              AudioSpecificConfig
	ASCBits          uint32
}

// latmGetValue reads LatmGetValue: a 2 bit byte count and that many bytes.
func latmGetValue(r *bits.Reader) uint32 {
	n := r.GetBits(2)
	var v uint32
	for i := uint32(0); i < n; i++ {
		v = v<<8 | r.GetBits(8)
	}
	return v
}

// ParseLOASFrame searches the next AudioSyncStream frame, reads its
// AudioMuxElement and returns the length in bytes of the payload that
// follows, positioned at the start of the raw data block.
func ParseLOASFrame(r *bits.Reader, cfg *LATMConfig) (int, error) {
	for r.BitsLeft() >= 24 {
		r.ByteAlign()
		if r.ShowBits(11) != loasSyncword {
			r.FlushBits(8)
			continue
		}
		r.FlushBits(11)
		length := r.GetBits(13)
		if length == 0 {
			continue
		}
		return ParseAudioMuxElement(r, cfg)
	}
	return 0, ErrLATMSync
}

// ParseAudioMuxElement reads AudioMuxElement(muxConfigPresent=1) and the
// PayloadLengthInfo of its single sub frame.
func ParseAudioMuxElement(r *bits.Reader, cfg *LATMConfig) (int, error) {
	useSameStreamMux := r.Get1Bit() != 0
	if !useSameStreamMux {
		if err := parseStreamMuxConfig(r, cfg); err != nil {
			return 0, err
		}
	}
	if !cfg.Initialised {
		return 0, ErrLATMUnsupported
	}

	length := 0
	for {
		b := int(r.GetBits(8))
		length += b
		if b != 255 || r.Error() {
			break
		}
	}
	if r.Error() {
		return 0, ErrBitstreamRead
	}
	return length, nil
}

func parseStreamMuxConfig(r *bits.Reader, cfg *LATMConfig) error {
	cfg.Version = r.Get1Bit()
	cfg.VersionA = 0
	if cfg.Version == 1 {
		cfg.VersionA = r.Get1Bit()
	}
	if cfg.VersionA != 0 {
		return ErrLATMUnsupported
	}
	if cfg.Version == 1 {
		latmGetValue(r) // taraBufferFullness
	}
	allStreamsSameTimeFraming := r.Get1Bit() != 0
	numSubFrames := r.GetBits(6) + 1
	numPrograms := r.GetBits(4) + 1
	numLayers := r.GetBits(3) + 1
	if !allStreamsSameTimeFraming || numSubFrames > 1 || numPrograms > 1 || numLayers > 1 {
		return ErrLATMUnsupported
	}

	var ascLen uint32
	if cfg.Version == 1 {
		ascLen = latmGetValue(r)
	}
	start := r.ProcessedBits()
	var asc AudioSpecificConfig
	if err := ParseASC(r, &asc, true); err != nil {
		return err
	}
	used := r.ProcessedBits() - start
	if ascLen > used {
		r.FlushBits(uint(ascLen - used))
	}

	cfg.FrameLengthType = uint8(r.GetBits(3))
	if cfg.FrameLengthType != 0 {
		return ErrLATMUnsupported
	}
	r.FlushBits(8) // latmBufferFullness

	cfg.OtherDataLenBits = 0
	if r.Get1Bit() != 0 {
		if cfg.Version == 1 {
			cfg.OtherDataLenBits = latmGetValue(r)
		} else {
			for {
				esc := r.Get1Bit()
				cfg.OtherDataLenBits = cfg.OtherDataLenBits<<8 | r.GetBits(8)
				if esc == 0 || r.Error() {
					break
				}
			}
		}
	}
	if r.Get1Bit() != 0 {
		r.FlushBits(8) // crc
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	cfg.ASC = asc
	cfg.ASCBits = used
	cfg.Initialised = true
	return nil
}
