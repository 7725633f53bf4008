package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/tables"
)

const (
	syncExtensionSBR = 0x2B7
	syncExtensionPS  = 0x548
)

// AudioSpecificConfig is the decoder configuration of an MPEG-4 audio
// stream (ISO/IEC 14496-3, 1.6.2.1).
type AudioSpecificConfig struct {
	ObjectType            ObjectType
	SFIndex               uint8
	SampleRate            uint32
	ChannelsConfiguration uint8

	FrameLengthFlag    bool
	DependsOnCoreCoder bool
	CoreCoderDelay     uint16
	ExtensionFlag      bool

	SectionDataResilience  bool
	ScalefactorResilience  bool
	SpectralDataResilience bool
	EPConfig               uint8

	// SBRPresent and PSPresent are -1 when the stream did not say.
	SBRPresent     int8
	PSPresent      int8
	ExtSFIndex     uint8
	ExtSampleRate  uint32
	DownSampledSBR bool

	HasPCE bool
	PCE    ProgramConfig
}

// ParseASC reads an AudioSpecificConfig. The short form used inside LATM
// stops before the backward compatible sync extensions.
func ParseASC(r *bits.Reader, asc *AudioSpecificConfig, shortForm bool) error {
	*asc = AudioSpecificConfig{SBRPresent: -1, PSPresent: -1}

	asc.ObjectType = readObjectType(r)
	asc.SFIndex, asc.SampleRate = readSampleRate(r)
	asc.ChannelsConfiguration = uint8(r.GetBits(4))
	if r.Error() {
		return ErrBitstreamRead
	}
	if !supportedObjectType(asc.ObjectType) {
		return ErrUnsupportedObject
	}
	if asc.SampleRate == 0 {
		return ErrInvalidSampleRate
	}
	if asc.ChannelsConfiguration > 7 {
		return ErrInvalidChannelConfig
	}

	if asc.ObjectType == ObjectTypeSBR || asc.ObjectType == ObjectTypePS {
		asc.SBRPresent = 1
		if asc.ObjectType == ObjectTypePS {
			asc.PSPresent = 1
		}
		asc.ExtSFIndex, asc.ExtSampleRate = readSampleRate(r)
		if asc.ExtSampleRate == 0 {
			return ErrInvalidSampleRate
		}
		if asc.ExtSFIndex == asc.SFIndex {
			asc.DownSampledSBR = true
		}
		asc.ObjectType = readObjectType(r)
		if !supportedObjectType(asc.ObjectType) || asc.ObjectType == ObjectTypeSBR || asc.ObjectType == ObjectTypePS {
			return ErrUnsupportedObject
		}
	}

	if err := parseGASpecificConfig(r, asc); err != nil {
		return err
	}
	if asc.ObjectType.IsER() {
		asc.EPConfig = uint8(r.GetBits(2))
		if asc.EPConfig != 0 {
			return ErrEPConfig
		}
	}

	if !shortForm && asc.SBRPresent == -1 && r.BitsLeft() >= 16 {
		parseSyncExtension(r, asc)
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}

// FrameLength returns the number of core samples per channel and frame.
func (asc *AudioSpecificConfig) FrameLength() uint16 {
	if asc.ObjectType == ObjectTypeLD {
		if asc.FrameLengthFlag {
			return 480
		}
		return 512
	}
	if asc.FrameLengthFlag {
		return 960
	}
	return 1024
}

// ImplicitSBR reports whether SBR has to be assumed without explicit
// signalling: streams of at most 24 kHz that said nothing about SBR may
// carry it in fill elements.
func (asc *AudioSpecificConfig) ImplicitSBR() bool {
	return asc.SBRPresent == -1 && asc.SampleRate <= 24000
}

func parseGASpecificConfig(r *bits.Reader, asc *AudioSpecificConfig) error {
	asc.FrameLengthFlag = r.Get1Bit() != 0
	asc.DependsOnCoreCoder = r.Get1Bit() != 0
	if asc.DependsOnCoreCoder {
		asc.CoreCoderDelay = uint16(r.GetBits(14))
	}
	asc.ExtensionFlag = r.Get1Bit() != 0
	if asc.ChannelsConfiguration == 0 {
		if err := ParsePCE(r, &asc.PCE); err != nil {
			return err
		}
		asc.HasPCE = true
	}
	if asc.ExtensionFlag {
		if asc.ObjectType.IsER() {
			asc.SectionDataResilience = r.Get1Bit() != 0
			asc.ScalefactorResilience = r.Get1Bit() != 0
			asc.SpectralDataResilience = r.Get1Bit() != 0
		}
		r.FlushBits(1) // extensionFlag3
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}

// parseSyncExtension looks for the SBR and PS extensions appended after a
// plain AAC configuration.
func parseSyncExtension(r *bits.Reader, asc *AudioSpecificConfig) {
	pos := r.Position()
	if r.GetBits(11) != syncExtensionSBR || ObjectType(r.GetBits(5)) != ObjectTypeSBR {
		r.Restore(pos)
		return
	}
	asc.SBRPresent = int8(r.Get1Bit())
	if asc.SBRPresent == 0 {
		return
	}
	asc.ExtSFIndex, asc.ExtSampleRate = readSampleRate(r)
	if asc.ExtSFIndex == asc.SFIndex {
		asc.DownSampledSBR = true
	}
	if r.BitsLeft() >= 12 && r.GetBits(11) == syncExtensionPS {
		asc.PSPresent = int8(r.Get1Bit())
	}
}

func readObjectType(r *bits.Reader) ObjectType {
	ot := ObjectType(r.GetBits(5))
	if ot == 31 {
		ot = 32 + ObjectType(r.GetBits(6))
	}
	return ot
}

// readSampleRate reads a sampling frequency index with its escape to an
// explicit 24 bit rate. The returned index is the nearest table entry.
func readSampleRate(r *bits.Reader) (uint8, uint32) {
	idx := uint8(r.GetBits(4))
	if idx == 15 {
		rate := r.GetBits(24)
		return tables.GetSRIndex(rate), rate
	}
	return idx, tables.GetSampleRate(idx)
}

func supportedObjectType(ot ObjectType) bool {
	switch ot {
	case ObjectTypeMain, ObjectTypeLC, ObjectTypeLTP, ObjectTypeSBR, ObjectTypeERLC, ObjectTypeERLTP, ObjectTypeLD, ObjectTypePS:
		return true
	}
	return false
}
