// Package syntax parses the AAC bitstream: transport headers (ADTS, ADIF,
// LATM/LOAS), AudioSpecificConfig, program config elements and the syntax
// elements of raw_data_block down to quantised spectral coefficients.
//
// Parsers run on a fail-soft bits.Reader. They validate every value that
// later indexes a table, so the reconstruction stages never see an out of
// range band, codebook or window index.
package syntax

// ElementID is the 3-bit id_syn_ele of a raw_data_block element.
type ElementID uint8

const (
	IDSCE ElementID = 0x0 // single channel
	IDCPE ElementID = 0x1 // channel pair
	IDCCE ElementID = 0x2 // coupling channel
	IDLFE ElementID = 0x3 // low frequency effects
	IDDSE ElementID = 0x4 // data stream
	IDPCE ElementID = 0x5 // program config
	IDFIL ElementID = 0x6 // fill
	IDEND ElementID = 0x7

	InvalidElementID ElementID = 255
)

// WindowSequence is the window_sequence of an ics_info.
type WindowSequence uint8

const (
	OnlyLongSequence   WindowSequence = 0x0
	LongStartSequence  WindowSequence = 0x1
	EightShortSequence WindowSequence = 0x2
	LongStopSequence   WindowSequence = 0x3
)

// ExtensionType is the extension_type of an extension_payload.
type ExtensionType uint8

const (
	ExtFill         ExtensionType = 0
	ExtFillData     ExtensionType = 1
	ExtDataElement  ExtensionType = 2
	ExtDynamicRange ExtensionType = 11
	ExtSBRData      ExtensionType = 13
	ExtSBRDataCRC   ExtensionType = 14
)

// ancData is the only data_element_version with a defined payload.
const ancData = 0

// ObjectType is an MPEG-4 audio object type.
type ObjectType uint8

// Audio object types recognised by the parsers.
const (
	ObjectTypeMain  ObjectType = 1
	ObjectTypeLC    ObjectType = 2
	ObjectTypeSSR   ObjectType = 3
	ObjectTypeLTP   ObjectType = 4
	ObjectTypeSBR   ObjectType = 5
	ObjectTypeERLC  ObjectType = 17
	ObjectTypeERLTP ObjectType = 19
	ObjectTypeLD    ObjectType = 23
	ObjectTypeDRM   ObjectType = 27
	ObjectTypePS    ObjectType = 29
)

// ERObjectStart is the first error resilient object type.
const ERObjectStart ObjectType = 17

// IsER reports whether the object type uses the error resilient syntax.
func (ot ObjectType) IsER() bool {
	return ot >= ERObjectStart
}

// IsLTP reports whether the object type carries long term prediction data.
func (ot ObjectType) IsLTP() bool {
	return ot == ObjectTypeLTP || ot == ObjectTypeERLTP || ot == ObjectTypeLD
}

// Field widths.
const (
	LenSEID = 3
	LenTag  = 4
	LenByte = 8
)
