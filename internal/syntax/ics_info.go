package syntax

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/tables"
)

// ParseICSInfo reads ics_info (Table 4.6): window sequence and shape,
// max_sfb, grouping and, for long windows, the prediction side information
// of Main and LTP object types.
func ParseICSInfo(r *bits.Reader, ics *ICStream, cfg *StreamConfig, commonWindow bool) error {
	if r.Get1Bit() != 0 {
		return ErrICSReservedBit
	}
	ics.WindowSequence = WindowSequence(r.GetBits(2))
	ics.WindowShape = r.Get1Bit()

	if ics.WindowSequence == EightShortSequence {
		if cfg.ObjectType == ObjectTypeLD {
			return ErrInvalidWindow
		}
		ics.MaxSFB = uint8(r.GetBits(4))
		ics.ScaleFactorGrouping = uint8(r.GetBits(7))
	} else {
		ics.MaxSFB = uint8(r.GetBits(6))
	}
	if r.Error() {
		return ErrBitstreamRead
	}

	if err := WindowGroupingInfo(ics, cfg.SRIndex, cfg.FrameLength); err != nil {
		return err
	}

	if ics.WindowSequence == EightShortSequence {
		return nil
	}
	ics.PredictorDataPresent = r.Get1Bit() != 0
	if !ics.PredictorDataPresent {
		return nil
	}

	switch {
	case cfg.ObjectType == ObjectTypeMain:
		parsePredictorData(r, ics, cfg.SRIndex)
	case !cfg.ER():
		ics.LTP.DataPresent = r.Get1Bit() != 0
		if ics.LTP.DataPresent {
			if err := ParseLTPData(r, ics, &ics.LTP, cfg); err != nil {
				return err
			}
		}
		if commonWindow {
			ics.LTP2.DataPresent = r.Get1Bit() != 0
			if ics.LTP2.DataPresent {
				if err := ParseLTPData(r, ics, &ics.LTP2, cfg); err != nil {
					return err
				}
			}
		}
	case !commonWindow:
		// Error resilient pairs carry the LTP data after ms_mask instead.
		ics.LTP.DataPresent = r.Get1Bit() != 0
		if ics.LTP.DataPresent {
			if err := ParseLTPData(r, ics, &ics.LTP, cfg); err != nil {
				return err
			}
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}

func parsePredictorData(r *bits.Reader, ics *ICStream, srIndex uint8) {
	limit := ics.MaxSFB
	if m := tables.MaxPredSFB(srIndex); limit > m {
		limit = m
	}
	ics.Pred.Limit = limit
	ics.Pred.PredictorReset = r.Get1Bit() != 0
	if ics.Pred.PredictorReset {
		ics.Pred.PredictorResetGroupNumber = uint8(r.GetBits(5))
	}
	for sfb := uint8(0); sfb < limit; sfb++ {
		ics.Pred.PredictionUsed[sfb] = r.Get1Bit() != 0
	}
}

// ParseLTPData reads ltp_data (Table 4.7) into ltp.
func ParseLTPData(r *bits.Reader, ics *ICStream, ltp *LTPInfo, cfg *StreamConfig) error {
	if cfg.ObjectType == ObjectTypeLD {
		ltp.LagUpdate = r.Get1Bit() != 0
		if ltp.LagUpdate {
			ltp.Lag = uint16(r.GetBits(10))
		}
	} else {
		ltp.Lag = uint16(r.GetBits(11))
	}
	if ltp.Lag > 2*cfg.FrameLength {
		return ErrLTPLagTooLarge
	}
	ltp.Coef = uint8(r.GetBits(3))

	if ics.WindowSequence == EightShortSequence {
		for w := uint8(0); w < ics.NumWindows; w++ {
			ltp.ShortUsed[w] = r.Get1Bit() != 0
			if ltp.ShortUsed[w] {
				ltp.ShortLagPresent[w] = r.Get1Bit() != 0
				if ltp.ShortLagPresent[w] {
					ltp.ShortLag[w] = uint8(r.GetBits(4))
				}
			}
		}
	} else {
		ltp.LastBand = min(ics.MaxSFB, MaxLTPSFB)
		for sfb := uint8(0); sfb < ltp.LastBand; sfb++ {
			ltp.LongUsed[sfb] = r.Get1Bit() != 0
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}
