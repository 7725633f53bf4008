package tables

// SampleRates maps a sampling frequency index to Hz.
var SampleRates = [12]uint32{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
}

// GetSampleRate returns the rate of srIndex, or 0 for an invalid index.
func GetSampleRate(srIndex uint8) uint32 {
	if srIndex >= 12 {
		return 0
	}
	return SampleRates[srIndex]
}

// srThresholds are the geometric means between adjacent table rates.
var srThresholds = [11]uint32{
	92017, 75132, 55426, 46009, 37566, 27713, 23004, 18783, 13856, 11502, 9391,
}

// GetSRIndex returns the index of the table rate closest to sampleRate.
func GetSRIndex(sampleRate uint32) uint8 {
	for i, th := range srThresholds {
		if sampleRate >= th {
			return uint8(i)
		}
	}
	return 11
}

var predSFBMax = [12]uint8{
	33, 33, 38, 40, 40, 40, 41, 41, 37, 37, 37, 34,
}

// MaxPredSFB returns the number of bands covered by Main profile prediction.
func MaxPredSFB(srIndex uint8) uint8 {
	if srIndex >= 12 {
		return 0
	}
	return predSFBMax[srIndex]
}

// tnsSFBMax holds the highest TNS band for long and short windows.
var tnsSFBMax = [13][2]uint8{
	{31, 9}, {31, 9}, {34, 10}, {40, 14}, {42, 14}, {51, 14},
	{46, 14}, {46, 14}, {42, 14}, {42, 14}, {42, 14}, {39, 14}, {39, 14},
}

// MaxTNSSFB returns the number of bands TNS may cover.
func MaxTNSSFB(srIndex uint8, isShort bool) uint8 {
	if int(srIndex) >= len(tnsSFBMax) {
		return 0
	}
	if isShort {
		return tnsSFBMax[srIndex][1]
	}
	return tnsSFBMax[srIndex][0]
}
