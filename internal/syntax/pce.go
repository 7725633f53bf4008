package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

// ProgramConfig is a program_config_element (Table 4.2) together with the
// output channel numbers it assigns to each element instance tag.
type ProgramConfig struct {
	ElementInstanceTag uint8
	ObjectType         uint8
	SFIndex            uint8

	NumFrontChannelElements uint8
	NumSideChannelElements  uint8
	NumBackChannelElements  uint8
	NumLFEChannelElements   uint8
	NumAssocDataElements    uint8
	NumValidCCElements      uint8

	MonoMixdownPresent         bool
	MonoMixdownElementNumber   uint8
	StereoMixdownPresent       bool
	StereoMixdownElementNumber uint8
	MatrixMixdownIdxPresent    bool
	MatrixMixdownIdx           uint8
	PseudoSurroundEnable       bool

	FrontElementIsCPE     [MaxPCEElements]bool
	FrontElementTagSelect [MaxPCEElements]uint8
	SideElementIsCPE      [MaxPCEElements]bool
	SideElementTagSelect  [MaxPCEElements]uint8
	BackElementIsCPE      [MaxPCEElements]bool
	BackElementTagSelect  [MaxPCEElements]uint8
	LFEElementTagSelect   [MaxPCEElements]uint8
	AssocDataTagSelect    [MaxPCEElements]uint8
	CCElementIsIndSw      [MaxPCEElements]bool
	CCElementTagSelect    [MaxPCEElements]uint8

	Channels          uint8
	NumFrontChannels  uint8
	NumSideChannels   uint8
	NumBackChannels   uint8
	NumLFEChannels    uint8
	SCEChannel        [MaxPCEElements]uint8
	CPEChannel        [MaxPCEElements]uint8
	CommentFieldBytes uint8
	CommentFieldData  [MaxCommentBytes]uint8
}

// ParsePCE reads a program_config_element into pce.
func ParsePCE(r *bits.Reader, pce *ProgramConfig) error {
	*pce = ProgramConfig{}
	pce.ElementInstanceTag = uint8(r.GetBits(4))
	pce.ObjectType = uint8(r.GetBits(2))
	pce.SFIndex = uint8(r.GetBits(4))
	pce.NumFrontChannelElements = uint8(r.GetBits(4))
	pce.NumSideChannelElements = uint8(r.GetBits(4))
	pce.NumBackChannelElements = uint8(r.GetBits(4))
	pce.NumLFEChannelElements = uint8(r.GetBits(2))
	pce.NumAssocDataElements = uint8(r.GetBits(3))
	pce.NumValidCCElements = uint8(r.GetBits(4))

	if pce.MonoMixdownPresent = r.Get1Bit() != 0; pce.MonoMixdownPresent {
		pce.MonoMixdownElementNumber = uint8(r.GetBits(4))
	}
	if pce.StereoMixdownPresent = r.Get1Bit() != 0; pce.StereoMixdownPresent {
		pce.StereoMixdownElementNumber = uint8(r.GetBits(4))
	}
	if pce.MatrixMixdownIdxPresent = r.Get1Bit() != 0; pce.MatrixMixdownIdxPresent {
		pce.MatrixMixdownIdx = uint8(r.GetBits(2))
		pce.PseudoSurroundEnable = r.Get1Bit() != 0
	}

	pce.NumFrontChannels = readChannelElements(r, pce, pce.NumFrontChannelElements,
		&pce.FrontElementIsCPE, &pce.FrontElementTagSelect)
	pce.NumSideChannels = readChannelElements(r, pce, pce.NumSideChannelElements,
		&pce.SideElementIsCPE, &pce.SideElementTagSelect)
	pce.NumBackChannels = readChannelElements(r, pce, pce.NumBackChannelElements,
		&pce.BackElementIsCPE, &pce.BackElementTagSelect)

	for i := uint8(0); i < pce.NumLFEChannelElements; i++ {
		tag := uint8(r.GetBits(4))
		pce.LFEElementTagSelect[i] = tag
		pce.SCEChannel[tag] = pce.Channels
		pce.NumLFEChannels++
		pce.Channels++
	}
	for i := uint8(0); i < pce.NumAssocDataElements; i++ {
		pce.AssocDataTagSelect[i] = uint8(r.GetBits(4))
	}
	for i := uint8(0); i < pce.NumValidCCElements; i++ {
		pce.CCElementIsIndSw[i] = r.Get1Bit() != 0
		pce.CCElementTagSelect[i] = uint8(r.GetBits(4))
	}

	r.ByteAlign()
	pce.CommentFieldBytes = uint8(r.GetBits(8))
	for i := uint8(0); i < pce.CommentFieldBytes; i++ {
		pce.CommentFieldData[i] = uint8(r.GetBits(8))
	}

	if r.Error() {
		return ErrBitstreamRead
	}
	if pce.Channels > MaxChannels {
		return ErrPCEChannels
	}
	return nil
}

// readChannelElements reads n (is_cpe, tag) pairs, assigns consecutive
// output channels and returns the number of channels added.
func readChannelElements(r *bits.Reader, pce *ProgramConfig, n uint8, isCPE *[MaxPCEElements]bool, tags *[MaxPCEElements]uint8) uint8 {
	var added uint8
	for i := uint8(0); i < n; i++ {
		isCPE[i] = r.Get1Bit() != 0
		tag := uint8(r.GetBits(4))
		tags[i] = tag
		if isCPE[i] {
			pce.CPEChannel[tag] = pce.Channels
			pce.Channels += 2
			added += 2
		} else {
			pce.SCEChannel[tag] = pce.Channels
			pce.Channels++
			added++
		}
	}
	return added
}
