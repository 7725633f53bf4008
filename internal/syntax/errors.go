package syntax

import "errors"

// Sentinel errors returned by the parsers. The decoder maps each of them to
// its numeric error code.
var (
	ErrGainControl          = errors.New("syntax: gain control data present")
	ErrPulseInShortBlock    = errors.New("syntax: pulse data in short block")
	ErrScaleFactorRange     = errors.New("syntax: scale factor out of range")
	ErrADTSSyncword         = errors.New("syntax: ADTS syncword not found")
	ErrERChannelConfig      = errors.New("syntax: channel configuration not allowed in error resilient frame")
	ErrRVLC                 = errors.New("syntax: error in reversible scale factor data")
	ErrSpectralData         = errors.New("syntax: invalid spectral codeword")
	ErrInvalidCodebook      = errors.New("syntax: codebook carries no spectral data")
	ErrBitstreamRead        = errors.New("syntax: read past end of data")
	ErrSectionLength        = errors.New("syntax: section exceeds band limit")
	ErrMaxSFBTooLarge       = errors.New("syntax: max_sfb exceeds number of bands")
	ErrPulseStartSFB        = errors.New("syntax: pulse_start_sfb exceeds number of bands")
	ErrEscapeRange          = errors.New("syntax: escape value out of range")
	ErrLTPLagTooLarge       = errors.New("syntax: LTP lag out of range")
	ErrPCEChannels          = errors.New("syntax: program config element exceeds channel limit")
	ErrReservedCodebook     = errors.New("syntax: reserved codebook 12")
	ErrSectionCoverage      = errors.New("syntax: sections do not cover max_sfb")
	ErrICSReservedBit       = errors.New("syntax: ics_reserved_bit set")
	ErrMSMaskReserved       = errors.New("syntax: reserved ms_mask_present value")
	ErrIntensityInSCE       = errors.New("syntax: intensity stereo in single channel element")
	ErrUnknownElement       = errors.New("syntax: unknown element")
	ErrPCENotFirst          = errors.New("syntax: program config element not first in frame")
	ErrInvalidSRIndex       = errors.New("syntax: invalid sampling frequency index")
	ErrInvalidWindow        = errors.New("syntax: window sequence not allowed")
	ErrHCR                  = errors.New("syntax: invalid reordered spectral data")
	ErrFillWithoutElement   = errors.New("syntax: SBR fill element without preceding channel element")
	ErrLATMUnsupported      = errors.New("syntax: unsupported LATM configuration")
	ErrLATMSync             = errors.New("syntax: LOAS sync not found")
	ErrUnsupportedObject    = errors.New("syntax: unsupported audio object type")
	ErrInvalidSampleRate    = errors.New("syntax: invalid sampling frequency")
	ErrInvalidChannelConfig = errors.New("syntax: invalid channel configuration")
	ErrEPConfig             = errors.New("syntax: unsupported epConfig")
	ErrADIFHeader           = errors.New("syntax: not an ADIF header")
)
