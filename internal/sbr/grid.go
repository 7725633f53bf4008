package sbr

import "github.com/llehouerou/go-heaac/internal/bits"

// Frame classes of sbr_grid.
const (
	fixFix = 0
	fixVar = 1
	varFix = 2
	varVar = 3
)

const (
	maxEnvelopes      = 5
	maxNoiseEnvelopes = 2
)

// grid is the time segmentation of one SBR frame in time slots.
type grid struct {
	frameClass uint8
	numEnv     int
	numNoise   int
	borders    [maxEnvelopes + 1]int
	noise      [maxNoiseEnvelopes + 1]int
	freqRes    [maxEnvelopes]uint8
	pointer    int
	// transient is the envelope starting at a transient, or -1.
	transient int
}

// pointerBits is ceil(log2(numEnv+1)).
var pointerBits = [maxEnvelopes + 1]uint{0, 1, 2, 2, 3, 3}

// parseGrid reads sbr_grid (Table 4.67) and derives the envelope and noise
// floor borders for a frame of numSlots time slots.
func parseGrid(r *bits.Reader, g *grid, numSlots int) error {
	var varBord0, varBord1 int
	var rel0, rel1 [maxEnvelopes]int
	var numRel0, numRel1 int

	g.frameClass = uint8(r.GetBits(2))
	switch g.frameClass {
	case fixFix:
		g.numEnv = 1 << r.GetBits(2)
		if g.numEnv > 4 {
			return ErrFrameGrid
		}
		res := r.Get1Bit()
		for e := 0; e < g.numEnv; e++ {
			g.freqRes[e] = res
		}
	case fixVar:
		varBord1 = int(r.GetBits(2))
		numRel1 = int(r.GetBits(2))
		g.numEnv = numRel1 + 1
		for i := 0; i < numRel1; i++ {
			rel1[i] = 2*int(r.GetBits(2)) + 2
		}
		g.pointer = int(r.GetBits(pointerBits[g.numEnv]))
		for e := 0; e < g.numEnv; e++ {
			g.freqRes[g.numEnv-1-e] = r.Get1Bit()
		}
	case varFix:
		varBord0 = int(r.GetBits(2))
		numRel0 = int(r.GetBits(2))
		g.numEnv = numRel0 + 1
		for i := 0; i < numRel0; i++ {
			rel0[i] = 2*int(r.GetBits(2)) + 2
		}
		g.pointer = int(r.GetBits(pointerBits[g.numEnv]))
		for e := 0; e < g.numEnv; e++ {
			g.freqRes[e] = r.Get1Bit()
		}
	case varVar:
		varBord0 = int(r.GetBits(2))
		varBord1 = int(r.GetBits(2))
		numRel0 = int(r.GetBits(2))
		numRel1 = int(r.GetBits(2))
		g.numEnv = numRel0 + numRel1 + 1
		if g.numEnv > maxEnvelopes {
			return ErrFrameGrid
		}
		for i := 0; i < numRel0; i++ {
			rel0[i] = 2*int(r.GetBits(2)) + 2
		}
		for i := 0; i < numRel1; i++ {
			rel1[i] = 2*int(r.GetBits(2)) + 2
		}
		g.pointer = int(r.GetBits(pointerBits[g.numEnv]))
		for e := 0; e < g.numEnv; e++ {
			g.freqRes[e] = r.Get1Bit()
		}
	}
	if r.Error() {
		return ErrFrameGrid
	}
	if g.pointer > g.numEnv+1 {
		return ErrFrameGrid
	}
	g.numNoise = 1
	if g.numEnv > 1 {
		g.numNoise = 2
	}
	return g.computeBorders(numSlots, varBord0, varBord1, rel0[:numRel0], rel1[:numRel1])
}

func (g *grid) computeBorders(numSlots, varBord0, varBord1 int, rel0, rel1 []int) error {
	lead, trail := 0, numSlots
	switch g.frameClass {
	case fixVar:
		trail = varBord1 + numSlots
	case varFix:
		lead = varBord0
	case varVar:
		lead = varBord0
		trail = varBord1 + numSlots
	}
	g.borders[0] = lead
	g.borders[g.numEnv] = trail
	if g.frameClass == fixFix {
		step := nint(float64(numSlots) / float64(g.numEnv))
		for e := 1; e < g.numEnv; e++ {
			g.borders[e] = g.borders[e-1] + step
		}
	} else {
		for i, d := range rel0 {
			g.borders[i+1] = g.borders[i] + d
		}
		for i, d := range rel1 {
			g.borders[g.numEnv-1-i] = g.borders[g.numEnv-i] - d
		}
	}
	for e := 1; e <= g.numEnv; e++ {
		if g.borders[e] <= g.borders[e-1] {
			return ErrFrameGrid
		}
	}

	g.transient = -1
	switch g.frameClass {
	case varFix:
		if g.pointer > 1 {
			g.transient = g.pointer - 1
		}
	case fixVar, varVar:
		if g.pointer > 0 {
			g.transient = g.numEnv + 1 - g.pointer
		}
	}

	g.noise[0] = g.borders[0]
	if g.numEnv == 1 {
		g.noise[1] = g.borders[1]
		return nil
	}
	g.noise[1] = g.borders[g.middleBorder()]
	g.noise[2] = g.borders[g.numEnv]
	return nil
}

// middleBorder returns the envelope border that splits the two noise
// floors.
func (g *grid) middleBorder() int {
	switch g.frameClass {
	case fixFix:
		return g.numEnv / 2
	case varFix:
		switch g.pointer {
		case 0:
			return 1
		case 1:
			return g.numEnv - 1
		}
		return g.pointer - 1
	}
	if g.pointer > 1 {
		return g.numEnv + 1 - g.pointer
	}
	return g.numEnv - 1
}
