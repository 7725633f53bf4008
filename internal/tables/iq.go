package tables

import (
	"errors"
	"math"
)

// IQTableSize bounds the magnitude of a quantised spectral value.
const IQTableSize = 8192

// SFOffset is the bias of transmitted scale factors: a scale factor of 100
// leaves the spectrum unscaled.
const SFOffset = 100

// ErrIQRange is returned for a quantised magnitude of 8192 or more.
var ErrIQRange = errors.New("tables: quantised value out of range")

var (
	// IQTable[i] = i^(4/3).
	IQTable [IQTableSize]float32

	// sfGain[sf] = 2^((sf-100)/4) for the 256 legal scale factors.
	sfGain [256]float32
)

func init() {
	for i := range IQTable {
		IQTable[i] = float32(math.Pow(float64(i), 4.0/3.0))
	}
	for sf := range sfGain {
		sfGain[sf] = float32(math.Exp2(0.25 * float64(sf-SFOffset)))
	}
}

// IQuant returns sign(q)*|q|^(4/3).
func IQuant(q int16) (float32, error) {
	if q < 0 {
		if -int32(q) >= IQTableSize {
			return 0, ErrIQRange
		}
		return -IQTable[-q], nil
	}
	if q >= IQTableSize {
		return 0, ErrIQRange
	}
	return IQTable[q], nil
}

// ScaleFactorGain returns 2^((sf-100)/4); scale factors outside 0..255 map
// to a gain of zero.
func ScaleFactorGain(sf int16) float32 {
	if sf < 0 || sf > 255 {
		return 0
	}
	return sfGain[sf]
}
