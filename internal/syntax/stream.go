package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

// Caps on the reordered spectral data length of a channel.
const (
	maxReorderedLenStereo = 6144
	maxReorderedLen       = 12288
	maxLongestCodeword    = 49
)

// ParseICS reads individual_channel_stream (Table 4.50): side information
// followed by the spectral data. When the channel belongs to a common
// window pair ics_info has already been read by the pair and is not read
// again.
func ParseICS(r *bits.Reader, ics *ICStream, cfg *StreamConfig, commonWindow bool) error {
	if err := parseSideInfo(r, ics, cfg, commonWindow); err != nil {
		return err
	}
	if cfg.ER() && ics.TNSDataPresent {
		if err := ParseTNSData(r, ics); err != nil {
			return err
		}
	}
	var err error
	if cfg.SpectralDataResilience {
		err = ParseReorderedSpectralData(r, ics, cfg)
	} else {
		err = ParseSpectralData(r, ics)
	}
	if err != nil {
		return err
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}

func parseSideInfo(r *bits.Reader, ics *ICStream, cfg *StreamConfig, commonWindow bool) error {
	ics.GlobalGain = uint8(r.GetBits(8))
	if !commonWindow {
		if err := ParseICSInfo(r, ics, cfg, false); err != nil {
			return err
		}
	}
	if err := ParseSectionData(r, ics, cfg); err != nil {
		return err
	}

	if cfg.ScalefactorResilience {
		ParseRVLCSideInfo(r, ics)
	} else if err := ParseScaleFactorData(r, ics); err != nil {
		return err
	}

	ics.PulseDataPresent = r.Get1Bit() != 0
	if ics.PulseDataPresent {
		if ics.IsShort() {
			return ErrPulseInShortBlock
		}
		if err := ParsePulseData(r, ics); err != nil {
			return err
		}
	}
	ics.TNSDataPresent = r.Get1Bit() != 0
	if ics.TNSDataPresent && !cfg.ER() {
		if err := ParseTNSData(r, ics); err != nil {
			return err
		}
	}
	ics.GainControlDataPresent = r.Get1Bit() != 0
	if ics.GainControlDataPresent {
		return ErrGainControl
	}

	if cfg.SpectralDataResilience {
		limit := uint16(maxReorderedLen)
		if cfg.ChannelConfig == 2 {
			limit = maxReorderedLenStereo
		}
		ics.LengthOfReorderedSpectralData = min(uint16(r.GetBits(14)), limit)
		ics.LengthOfLongestCodeword = min(uint8(r.GetBits(6)), maxLongestCodeword)
	}
	if cfg.ScalefactorResilience {
		if err := DecodeRVLCScaleFactors(r, ics); err != nil {
			return err
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}
