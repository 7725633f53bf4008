package syntax

const (
	MaxChannels        = 64
	MaxSyntaxElements  = 48
	MaxWindowGroups    = 8
	MaxSFB             = 51
	MaxLTPSFB          = 40
	MaxTNSOrder        = 20
	MaxPredSFB         = 41
	MaxPulses          = 4
	MaxDRCBands        = 17
	MaxPCEElements     = 16
	MaxCommentBytes    = 255
	maxSections        = 8 * 15
	maxTNSFilters      = 4
	maxTNSCoefs        = 32
	maxHCRCodewords    = 512
	maxHCRSegments     = 512
	sfOffsetNoise      = 90
	maxShortWindowSFB  = 15
	maxLongRVLCSFBits  = 9
	maxShortRVLCSFBits = 11
)
