package syntax

// PulseInfo is the pulse_data of a long window channel stream.
type PulseInfo struct {
	NumberPulse   uint8 // pulses minus one
	PulseStartSFB uint8
	PulseOffset   [MaxPulses]uint8
	PulseAmp      [MaxPulses]uint8
}

// TNSInfo is the tns_data of a channel stream, per window and filter.
type TNSInfo struct {
	NFilt        [8]uint8
	CoefRes      [8]uint8
	Length       [8][maxTNSFilters]uint8
	Order        [8][maxTNSFilters]uint8
	Direction    [8][maxTNSFilters]uint8
	CoefCompress [8][maxTNSFilters]uint8
	Coef         [8][maxTNSFilters][maxTNSCoefs]uint8
}

// LTPInfo is the ltp_data of one channel.
type LTPInfo struct {
	DataPresent     bool
	LastBand        uint8
	Lag             uint16
	LagUpdate       bool
	Coef            uint8
	LongUsed        [MaxSFB]bool
	ShortUsed       [8]bool
	ShortLagPresent [8]bool
	ShortLag        [8]uint8
}

// PredInfo is the Main profile predictor side information.
type PredInfo struct {
	Limit                     uint8
	PredictorReset            bool
	PredictorResetGroupNumber uint8
	PredictionUsed            [MaxSFB]bool
}

// RVLCInfo holds the side information of reversible scale factor coding.
type RVLCInfo struct {
	SFConcealment         bool
	RevGlobalGain         uint8
	LengthOfRVLCSF        uint16
	DPCMNoiseNrg          uint16
	SFEscapesPresent      bool
	LengthOfRVLCEscapes   uint8
	DPCMNoiseLastPosition uint16
}

// ICStream is one individual_channel_stream: window layout, section
// codebooks, scale factors, tool side information and the quantised
// spectrum.
//
// Spec holds the quantised lines in bitstream order: for short windows the
// lines of one band are stored for every window of a group before the next
// band starts. The reconstruction stage deinterleaves them.
type ICStream struct {
	GlobalGain          uint8
	WindowSequence      WindowSequence
	WindowShape         uint8
	MaxSFB              uint8
	ScaleFactorGrouping uint8

	NumWindows        uint8
	NumWindowGroups   uint8
	WindowGroupLength [MaxWindowGroups]uint8
	NumSWB            uint8
	SWBOffset         [MaxSFB + 1]uint16
	SWBOffsetMax      uint16
	SectSFBOffset     [MaxWindowGroups][maxSections + 1]uint16

	NumSec    [MaxWindowGroups]uint8
	SectCB    [MaxWindowGroups][maxSections]uint8
	SectStart [MaxWindowGroups][maxSections]uint16
	SectEnd   [MaxWindowGroups][maxSections]uint16
	SFBCB     [MaxWindowGroups][MaxSFB]uint8

	ScaleFactors [MaxWindowGroups][MaxSFB]int16

	MSMaskPresent uint8
	MSUsed        [MaxWindowGroups][MaxSFB]bool

	NoiseUsed bool
	ISUsed    bool

	PulseDataPresent       bool
	TNSDataPresent         bool
	GainControlDataPresent bool
	PredictorDataPresent   bool

	Pulse PulseInfo
	TNS   TNSInfo
	Pred  PredInfo
	LTP   LTPInfo
	LTP2  LTPInfo // second channel of a common window pair

	LengthOfReorderedSpectralData uint16
	LengthOfLongestCodeword       uint8
	RVLC                          RVLCInfo

	Spec [1024]int16

	hcr *hcrState
}

// Reset clears the per-frame flags. Arrays are overwritten by parsing and
// need no clearing.
func (ics *ICStream) Reset() {
	ics.NoiseUsed = false
	ics.ISUsed = false
	ics.MSMaskPresent = 0
	ics.PulseDataPresent = false
	ics.TNSDataPresent = false
	ics.GainControlDataPresent = false
	ics.PredictorDataPresent = false
	ics.Pred.PredictorReset = false
	ics.LTP.DataPresent = false
	ics.LTP2.DataPresent = false
}

// IsShort reports whether the stream uses eight short windows.
func (ics *ICStream) IsShort() bool {
	return ics.WindowSequence == EightShortSequence
}
