package huffman

// RVLCInvalid is returned by the reversible decoders for a bit pattern that
// matches no codeword. Decoding of the remaining scale factors is abandoned.
const RVLCInvalid = 99

// rvlcEscapeBound is the reversible difference that is extended by an
// escape codeword.
const rvlcEscapeBound = 7

var (
	rvlcTree    = MustTree(rvlcCodes[:], rvlcLengths[:], -rvlcEscapeBound)
	rvlcEscTree = MustTree(rvlcEscCodes[:], rvlcEscLengths[:], 0)
)

// RVLCScaleFactor decodes one reversible scale factor difference from sf.
// A difference of ±7 is extended by an escape magnitude read from esc. It
// returns RVLCInvalid when either stream holds no valid codeword.
func RVLCScaleFactor(sf, esc Source) int16 {
	v, ok := rvlcTree.Decode(sf)
	if !ok {
		return RVLCInvalid
	}
	switch v {
	case -rvlcEscapeBound, rvlcEscapeBound:
		e := RVLCEscape(esc)
		if e == RVLCInvalid {
			return RVLCInvalid
		}
		if v < 0 {
			return int16(v) - e
		}
		return int16(v) + e
	}
	return int16(v)
}

// RVLCEscape decodes an escape magnitude (0..53).
func RVLCEscape(esc Source) int16 {
	v, ok := rvlcEscTree.Decode(esc)
	if !ok {
		return RVLCInvalid
	}
	return int16(v)
}
