package aac

import (
	"github.com/llehouerou/go-heaac/internal/output"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// ObjectType is an MPEG-4 audio object type.
type ObjectType uint8

// Object types.
const (
	ObjectTypeMain    ObjectType = 1
	ObjectTypeLC      ObjectType = 2
	ObjectTypeSSR     ObjectType = 3
	ObjectTypeLTP     ObjectType = 4
	ObjectTypeHEAAC   ObjectType = 5 // LC core with SBR
	ObjectTypeERLC    ObjectType = 17
	ObjectTypeERLTP   ObjectType = 19
	ObjectTypeLD      ObjectType = 23
	ObjectTypeDRMERLC ObjectType = 27
	ObjectTypeHEAACv2 ObjectType = 29 // LC core with SBR and PS
)

// decodable reports whether the core of ot can be decoded.
func (ot ObjectType) decodable() bool {
	switch ot {
	case ObjectTypeMain, ObjectTypeLC, ObjectTypeLTP, ObjectTypeERLC, ObjectTypeERLTP, ObjectTypeLD:
		return true
	}
	return false
}

// HeaderType is the transport of the stream being decoded.
type HeaderType uint8

// Header types.
const (
	HeaderTypeRAW  HeaderType = 0
	HeaderTypeADIF HeaderType = 1
	HeaderTypeADTS HeaderType = 2
	HeaderTypeLATM HeaderType = 3
)

// OutputFormat is the PCM sample format Decode produces.
type OutputFormat uint8

// Output formats.
const (
	OutputFormat16Bit  = OutputFormat(output.Format16Bit)  // []int16
	OutputFormat24Bit  = OutputFormat(output.Format24Bit)  // []int32, low 24 bits
	OutputFormat32Bit  = OutputFormat(output.Format32Bit)  // []int32
	OutputFormatFloat  = OutputFormat(output.FormatFloat)  // []float32 in [-1, 1]
	OutputFormatDouble = OutputFormat(output.FormatDouble) // []float64 in [-1, 1]
)

// ChannelPosition is the speaker position of an output channel.
type ChannelPosition uint8

// Channel positions.
const (
	ChannelUnknown     ChannelPosition = 0
	ChannelFrontCenter ChannelPosition = 1
	ChannelFrontLeft   ChannelPosition = 2
	ChannelFrontRight  ChannelPosition = 3
	ChannelSideLeft    ChannelPosition = 4
	ChannelSideRight   ChannelPosition = 5
	ChannelBackLeft    ChannelPosition = 6
	ChannelBackRight   ChannelPosition = 7
	ChannelBackCenter  ChannelPosition = 8
	ChannelLFE         ChannelPosition = 9
)

// SBRSignalling reports how spectral band replication shaped the output.
type SBRSignalling uint8

// SBR states.
const (
	SBRNone          SBRSignalling = 0
	SBRUpsampled     SBRSignalling = 1
	SBRDownsampled   SBRSignalling = 2
	SBRNoneUpsampled SBRSignalling = 3 // no SBR data, output still at twice the core rate
)

// MinStreamSize is the number of input bytes per channel a caller should
// have buffered before calling Decode.
const MinStreamSize = 768

// MaxChannels is the largest number of channels a frame can carry.
const MaxChannels = syntax.MaxChannels

// Config holds the decoder options.
type Config struct {
	// DefObjectType and DefSampleRate describe raw streams initialised
	// without a header.
	DefObjectType ObjectType
	DefSampleRate uint32
	OutputFormat  OutputFormat
	// DownMatrix folds 5 and 5.1 channel output into stereo.
	DownMatrix bool
	// UseOldADTSFormat expects the two emphasis bits of early MPEG-2 ADTS
	// headers.
	UseOldADTSFormat bool
	// DontUpSampleImplicitSBR keeps streams of at most 24 kHz at their core
	// rate until SBR data is actually found.
	DontUpSampleImplicitSBR bool
}

// FrameInfo describes one decoded frame.
type FrameInfo struct {
	BytesConsumed uint32
	// Samples is the total number of samples over all channels.
	Samples    uint32
	Channels   uint8
	Error      Error
	SampleRate uint32
	SBR        SBRSignalling
	ObjectType ObjectType
	HeaderType HeaderType

	NumFrontChannels uint8
	NumSideChannels  uint8
	NumBackChannels  uint8
	NumLFEChannels   uint8
	ChannelPosition  [MaxChannels]ChannelPosition

	// PS is 1 when parametric stereo produced the output.
	PS uint8
}

// InitResult is the stream description returned by Init and Init2.
type InitResult struct {
	SampleRate uint32
	Channels   uint8
	// BytesRead is the size of the header Init consumed: the ADIF header,
	// or zero for streams whose header repeats with every frame.
	BytesRead uint32
}
