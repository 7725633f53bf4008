// Package huffman decodes the prefix codes of the AAC bitstream: spectral
// codebooks 1-11 and their virtual escape variants, the scale factor code,
// reversible scale factor codes and the generic trees used by SBR and PS.
package huffman

// Codebook is a section codebook number as transmitted in section data.
type Codebook uint8

const (
	ZeroHCB         Codebook = 0  // No spectral data
	FirstPairHCB    Codebook = 5  // First pair codebook
	EscHCB          Codebook = 11 // Escape codebook
	ReservedHCB     Codebook = 12
	NoiseHCB        Codebook = 13 // Perceptual noise substitution
	IntensityHCB2   Codebook = 14 // Intensity stereo, out of phase
	IntensityHCB    Codebook = 15 // Intensity stereo, in phase
	FirstVirtualHCB Codebook = 16 // Error resilient escape codebooks 16..31
	LastVirtualHCB  Codebook = 31
)

const (
	QuadLen = 4 // Quadruple length (4 coefficients)
	PairLen = 2 // Pair length (2 coefficients)
)

// EscapeFlag is the decoded magnitude that announces an escape sequence.
const EscapeFlag = 16

// IsSpectral reports whether the codebook carries quantised spectral lines.
func (cb Codebook) IsSpectral() bool {
	return (cb > ZeroHCB && cb <= EscHCB) || (cb >= FirstVirtualHCB && cb <= LastVirtualHCB)
}

// IsIntensity reports whether the codebook marks an intensity stereo band.
func (cb Codebook) IsIntensity() bool {
	return cb == IntensityHCB || cb == IntensityHCB2
}

// Width returns the number of spectral lines per codeword.
func (cb Codebook) Width() int {
	if cb < FirstPairHCB {
		return QuadLen
	}
	return PairLen
}

// Unsigned reports whether sign bits follow the codeword.
func (cb Codebook) Unsigned() bool {
	switch cb {
	case 3, 4, 7, 8, 9, 10, 11:
		return true
	}
	return cb >= FirstVirtualHCB && cb <= LastVirtualHCB
}

// maxVirtualValue is the largest absolute value allowed by each virtual
// codebook 16..31.
var maxVirtualValue = [16]int16{
	16, 31, 47, 63, 95, 127, 159, 191, 223, 255, 319, 383, 511, 767, 1023, 2047,
}

// MaxAbsValue returns the largest absolute value a codebook may carry.
func (cb Codebook) MaxAbsValue() int16 {
	switch {
	case cb == 1 || cb == 2:
		return 1
	case cb == 3 || cb == 4:
		return 2
	case cb == 5 || cb == 6:
		return 4
	case cb == 7 || cb == 8:
		return 7
	case cb == 9 || cb == 10:
		return 12
	case cb == EscHCB:
		return 8191
	case cb >= FirstVirtualHCB && cb <= LastVirtualHCB:
		return maxVirtualValue[cb-FirstVirtualHCB]
	}
	return 0
}
