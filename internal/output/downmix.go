package output

// Positions of the five channels in a down-matrix Layout.Map.
const (
	mixCenter = iota
	mixLeft
	mixRight
	mixLeftSurround
	mixRightSurround
)

// Down-matrix weights: centre and surrounds at -3 dB, the sum normalised so
// a full scale signal on every channel stays within full scale.
const (
	mixNorm  = float32(0.3203772410170407) // 1/(1+√2+1/√2)
	mixSide  = float32(0.7071067811865476)
	mixInput = 5
)

// downmix returns output channel ch (0 left, 1 right) of the 5.1 to stereo
// fold. The LFE channel is dropped.
func downmix(in [][]float32, m []uint8, ch, i int) float32 {
	c := in[m[mixCenter]][i] * mixSide
	if ch == 0 {
		return mixNorm * (in[m[mixLeft]][i] + c + in[m[mixLeftSurround]][i]*mixSide)
	}
	return mixNorm * (in[m[mixRight]][i] + c + in[m[mixRightSurround]][i]*mixSide)
}

// CanDownmix reports whether a frame of the given channel count can be
// folded to stereo.
func CanDownmix(channels int) bool {
	return channels == mixInput || channels == mixInput+1
}
