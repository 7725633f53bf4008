package aac

import (
	"errors"

	"github.com/llehouerou/go-heaac/internal/huffman"
	"github.com/llehouerou/go-heaac/internal/ps"
	"github.com/llehouerou/go-heaac/internal/sbr"
	"github.com/llehouerou/go-heaac/internal/spectrum"
	"github.com/llehouerou/go-heaac/internal/syntax"
	"github.com/llehouerou/go-heaac/internal/tables"
)

// Error is a decoder error code. FrameInfo.Error carries it and the error
// returned by Decode is the same value.
type Error int

// Error codes.
const (
	ErrNone                      Error = 0
	ErrGainControlNotImplemented Error = 1
	ErrPulseInShortBlock         Error = 2
	ErrInvalidHuffmanCodebook    Error = 3
	ErrScalefactorOutOfRange     Error = 4
	ErrADTSSyncwordNotFound      Error = 5
	ErrChannelCouplingNotImpl    Error = 6
	ErrChannelConfigNotAllowed   Error = 7
	ErrBitErrorScalefactor       Error = 8
	ErrHuffmanScalefactor        Error = 9
	ErrHuffmanCodeword           Error = 10
	ErrNonExistentCodebook       Error = 11
	ErrInvalidNumChannels        Error = 12
	ErrMaxBitstreamElements      Error = 13
	ErrInputBufferTooSmall       Error = 14
	ErrArrayIndexOutOfRange      Error = 15
	ErrMaxScalefactorBands       Error = 16
	ErrQuantisedValueOutOfRange  Error = 17
	ErrLTPLagOutOfRange          Error = 18
	ErrInvalidSBRParameter       Error = 19
	ErrSBRNotInitialised         Error = 20
	ErrUnexpectedChannelChange   Error = 21
	ErrProgramConfigElement      Error = 22
	ErrSBRFirstFrame             Error = 23
	ErrUnexpectedFillElement     Error = 24
	ErrSBRDataMissing            Error = 25
	ErrLTPNotAvailable           Error = 26
	ErrOutputBufferTooSmall      Error = 27
	ErrDRMCRC                    Error = 28
	ErrPNSNotAllowedInDRM        Error = 29
	ErrNoExtPayloadInDRM         Error = 30
	ErrPCENotFirst               Error = 31
	ErrBitstreamValueNotAllowed  Error = 32
	ErrMAINPredictionNotInit     Error = 33
)

var errMessages = [...]string{
	"No error",
	"Gain control not yet implemented",
	"Pulse coding not allowed in short blocks",
	"Invalid huffman codebook",
	"Scalefactor out of range",
	"Unable to find ADTS syncword",
	"Channel coupling not yet implemented",
	"Channel configuration not allowed in error resilient frame",
	"Bit error in error resilient scalefactor decoding",
	"Error decoding huffman scalefactor (bitstream error)",
	"Error decoding huffman codeword (bitstream error)",
	"Non existent huffman codebook number found",
	"Invalid number of channels",
	"Maximum number of bitstream elements exceeded",
	"Input data buffer too small",
	"Array index out of range",
	"Maximum number of scalefactor bands exceeded",
	"Quantised value out of range",
	"LTP lag out of range",
	"Invalid SBR parameter decoded",
	"SBR called without being initialised",
	"Unexpected channel configuration change",
	"Error in program_config_element",
	"First SBR frame is not the same as first AAC frame",
	"Unexpected fill element with SBR data",
	"Not all elements were provided with SBR data",
	"LTP decoding not available",
	"Output data buffer too small",
	"CRC error in DRM data",
	"PNS not allowed in DRM data stream",
	"No standard extension payload allowed in DRM",
	"PCE shall be the first element in a frame",
	"Bitstream value not allowed by specification",
	"MAIN prediction not initialised",
}

// ErrorMessage returns the description of code.
func ErrorMessage(code Error) string {
	if code >= 0 && int(code) < len(errMessages) {
		return errMessages[code]
	}
	return "unknown error"
}

func (e Error) Error() string {
	return ErrorMessage(e)
}

// Errors for calls made in the wrong state.
var (
	ErrNotInitialised = errors.New("aac: decoder not initialised")
	ErrDecoderClosed  = errors.New("aac: decoder closed")
)

// codes maps the sentinel errors of the internal packages to error codes.
var codes = []struct {
	err  error
	code Error
}{
	{syntax.ErrGainControl, ErrGainControlNotImplemented},
	{syntax.ErrPulseInShortBlock, ErrPulseInShortBlock},
	{syntax.ErrScaleFactorRange, ErrScalefactorOutOfRange},
	{syntax.ErrADTSSyncword, ErrADTSSyncwordNotFound},
	{syntax.ErrLATMSync, ErrADTSSyncwordNotFound},
	{syntax.ErrERChannelConfig, ErrChannelConfigNotAllowed},
	{syntax.ErrRVLC, ErrBitErrorScalefactor},
	{syntax.ErrSpectralData, ErrHuffmanCodeword},
	{syntax.ErrHCR, ErrHuffmanCodeword},
	{huffman.ErrInvalidCode, ErrHuffmanCodeword},
	{huffman.ErrEscapeSequence, ErrHuffmanCodeword},
	{syntax.ErrInvalidCodebook, ErrInvalidHuffmanCodebook},
	{huffman.ErrInvalidCodebook, ErrInvalidHuffmanCodebook},
	{syntax.ErrReservedCodebook, ErrNonExistentCodebook},
	{syntax.ErrPCEChannels, ErrInvalidNumChannels},
	{syntax.ErrInvalidChannelConfig, ErrInvalidNumChannels},
	{syntax.ErrBitstreamRead, ErrInputBufferTooSmall},
	{syntax.ErrSectionLength, ErrArrayIndexOutOfRange},
	{syntax.ErrSectionCoverage, ErrArrayIndexOutOfRange},
	{syntax.ErrPulseStartSFB, ErrArrayIndexOutOfRange},
	{spectrum.ErrPulseOffset, ErrArrayIndexOutOfRange},
	{syntax.ErrMaxSFBTooLarge, ErrMaxScalefactorBands},
	{syntax.ErrEscapeRange, ErrQuantisedValueOutOfRange},
	{tables.ErrIQRange, ErrQuantisedValueOutOfRange},
	{syntax.ErrLTPLagTooLarge, ErrLTPLagOutOfRange},
	{syntax.ErrFillWithoutElement, ErrUnexpectedFillElement},
	{syntax.ErrPCENotFirst, ErrPCENotFirst},
	{syntax.ErrICSReservedBit, ErrBitstreamValueNotAllowed},
	{syntax.ErrMSMaskReserved, ErrBitstreamValueNotAllowed},
	{syntax.ErrIntensityInSCE, ErrBitstreamValueNotAllowed},
	{syntax.ErrInvalidWindow, ErrBitstreamValueNotAllowed},
	{syntax.ErrUnknownElement, ErrBitstreamValueNotAllowed},
	{syntax.ErrInvalidSRIndex, ErrBitstreamValueNotAllowed},
	{tables.ErrInvalidSRIndex, ErrBitstreamValueNotAllowed},
	{tables.ErrUnsupportedFrameLength, ErrBitstreamValueNotAllowed},
	{syntax.ErrInvalidSampleRate, ErrBitstreamValueNotAllowed},
	{syntax.ErrUnsupportedObject, ErrBitstreamValueNotAllowed},
	{syntax.ErrEPConfig, ErrBitstreamValueNotAllowed},
	{syntax.ErrLATMUnsupported, ErrBitstreamValueNotAllowed},
	{syntax.ErrADIFHeader, ErrBitstreamValueNotAllowed},
	{sbr.ErrNotInitialised, ErrSBRNotInitialised},
	{sbr.ErrUnsupportedRate, ErrInvalidSBRParameter},
	{sbr.ErrFrequencyRange, ErrInvalidSBRParameter},
	{sbr.ErrMasterTable, ErrInvalidSBRParameter},
	{sbr.ErrCrossover, ErrInvalidSBRParameter},
	{sbr.ErrBandLimits, ErrInvalidSBRParameter},
	{sbr.ErrPatches, ErrInvalidSBRParameter},
	{sbr.ErrFrameGrid, ErrInvalidSBRParameter},
	{sbr.ErrEnvelope, ErrInvalidSBRParameter},
	{sbr.ErrPayloadOverrun, ErrInvalidSBRParameter},
	{ps.ErrMode, ErrInvalidSBRParameter},
	{ps.ErrHuffman, ErrInvalidSBRParameter},
	{ps.ErrOverrun, ErrInvalidSBRParameter},
}

// codeOf returns the error code for err. Errors that carry no code of
// their own are reported as bitstream values not allowed.
func codeOf(err error) Error {
	if err == nil {
		return ErrNone
	}
	var code Error
	if errors.As(err, &code) {
		return code
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ErrBitstreamValueNotAllowed
}
