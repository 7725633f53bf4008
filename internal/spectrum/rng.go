package spectrum

// parity holds the number of set bits mod 2 for every byte value.
var parity = [256]uint8{
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1,
	1, 0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 0,
}

// Start state of the noise generator.
const (
	rngSeed1 = 0x2bb431ea
	rngSeed2 = 0x206155b7
)

// RNG is the noise generator of perceptual noise substitution: two linear
// feedback shift registers rotating in opposite directions whose outputs
// are XORed. The period is 3*5*17*257*65537 * 7*47*73*178481.
//
// One generator is shared by all channels of a decoder so that the noise
// sequence depends only on the stream.
type RNG struct {
	r1, r2 uint32
}

// NewRNG returns a generator in its start state.
func NewRNG() *RNG {
	g := &RNG{}
	g.Reset()
	return g
}

// Reset restores the start state.
func (g *RNG) Reset() {
	g.r1, g.r2 = rngSeed1, rngSeed2
}

// Next advances both registers and returns the next 32-bit value.
func (g *RNG) Next() uint32 {
	t1 := uint32(parity[g.r1&0xf5]) << 31
	t2 := uint32(parity[(g.r2>>25)&0x63])
	g.r1 = g.r1>>1 | t1
	g.r2 = g.r2+g.r2 | t2
	return g.r1 ^ g.r2
}
