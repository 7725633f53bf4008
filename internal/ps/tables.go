package ps

import "math"

// Parameter counts per iid_mode / icc_mode.
var (
	nrIIDPar    = [8]int{10, 20, 34, 10, 20, 34, 0, 0}
	nrIPDOPDPar = [8]int{5, 11, 17, 5, 11, 17, 0, 0}
	nrICCPar    = [8]int{10, 20, 34, 10, 20, 34, 0, 0}
)

// numEnvelopes[frameClass][numEnvIdx]
var numEnvelopes = [2][4]int{{0, 1, 2, 4}, {1, 2, 3, 4}}

const (
	iidStepsCoarse = 7
	iidStepsFine   = 15
	iccSteps       = 7
	ipdSteps       = 8
)

// Inter-channel intensity differences in dB per quantiser index.
var (
	iidCoarseDB = [2*iidStepsCoarse + 1]float64{-25, -18, -14, -10, -7, -4, -2, 0, 2, 4, 7, 10, 14, 18, 25}
	iidFineDB   = [2*iidStepsFine + 1]float64{
		-50, -45, -40, -35, -30, -25, -22, -19, -16, -13, -10, -8, -6, -4, -2, 0,
		2, 4, 6, 8, 10, 13, 16, 19, 22, 25, 30, 35, 40, 45, 50,
	}
	iccRho = [iccSteps + 1]float64{1, 0.937, 0.84118, 0.60092, 0.36764, 0, -0.589, -1}
)

// Hybrid filter prototypes, first half of 13 symmetric taps.
var (
	protoReal2  = [7]float64{0, 0.01899487526049, 0, -0.07293139167538, 0, 0.30596630545168, 0.5}
	protoCplx8  = [7]float64{0.00746082949812, 0.02270420949825, 0.04546865930473, 0.07266113929591, 0.09885108575264, 0.11793710567217, 0.125}
	protoCplx12 = [7]float64{0.04081179924692, 0.03812810994926, 0.05144908135699, 0.06399831151592, 0.07428313801106, 0.08100347892914, 0.08333333333333}
	protoCplx8b = [7]float64{0.01565675600122, 0.03752716391991, 0.05417891378782, 0.08417044116767, 0.10307344158036, 0.12222452249753, 0.125}
	protoCplx4  = [7]float64{-0.05908211155639, -0.04871498374946, 0, 0.07778723915851, 0.16486303567403, 0.23279856662996, 0.25}
)

// Decorrelator constants.
const (
	peakDecay     = 0.76592833836465
	smoothFactor  = 0.25
	transientGain = 1.5
	decaySlope    = 0.05
	fractDelay    = 0.39
	allpassLinks  = 3
	preDelay      = 2
	longDelay     = 14
	shortDelayQMF = 35
	hybridDelay   = 6
)

var (
	allpassDelay  = [allpassLinks]int{3, 4, 5}
	allpassFract  = [allpassLinks]float64{0.43, 0.75, 0.347}
	allpassFilter = [allpassLinks]float32{0.65143905753106, 0.56471812200776, 0.48954165955695}
)

// group is a run of subbands sharing one parameter band. Hybrid groups
// index hybrid subbands, the others QMF bands.
type group struct {
	start, end int
	hybrid     bool
	band       int
	negateIPD  bool
}

// bandConfig describes the 20 or the 34 band frequency resolution.
type bandConfig struct {
	params       int
	resolution   []int // hybrid subbands per split QMF band
	hybridBands  int
	groups       []group
	decayCutoff  int
	allpassBands int
	ipdBands     int
	// center is the frequency of every hybrid subband in QMF band units.
	center []float64
	// filters are the complex hybrid filters per split QMF band.
	filters [][][13]complex64
}

func (c *bandConfig) qmfBands() int {
	return len(c.resolution)
}

func hybridGroups(subbands []int, bands []int, negate []bool) []group {
	g := make([]group, len(subbands))
	for i, sb := range subbands {
		g[i] = group{start: sb, end: sb + 1, hybrid: true, band: bands[i], negateIPD: negate[i]}
	}
	return g
}

func qmfGroups(borders []int, firstBand int) []group {
	g := make([]group, len(borders)-1)
	for i := range g {
		g[i] = group{start: borders[i], end: borders[i+1], band: firstBand + i}
	}
	return g
}

var (
	config20 = &bandConfig{
		params:       20,
		resolution:   []int{8, 2, 2},
		hybridBands:  12,
		decayCutoff:  3,
		allpassBands: 22,
		ipdBands:     11,
	}
	config34 = &bandConfig{
		params:       34,
		resolution:   []int{12, 8, 4, 4, 4},
		hybridBands:  32,
		decayCutoff:  5,
		allpassBands: 32,
		ipdBands:     17,
	}
)

func init() {
	config20.groups = append(
		hybridGroups(
			[]int{6, 7, 0, 1, 2, 3, 9, 8, 10, 11},
			[]int{1, 0, 0, 1, 2, 3, 4, 5, 6, 7},
			[]bool{true, true, false, false, false, false, false, false, false, false},
		),
		qmfGroups([]int{3, 4, 5, 6, 7, 8, 9, 11, 14, 18, 23, 35, 64}, 8)...,
	)
	h34 := make([]int, 32)
	for i := range h34 {
		h34[i] = i
	}
	neg := make([]bool, 32)
	neg[9], neg[10], neg[11] = true, true, true
	config34.groups = append(
		hybridGroups(h34,
			[]int{
				0, 1, 2, 3, 4, 5, 6, 6, 7, 2, 1, 0,
				10, 10, 4, 5, 6, 7, 8, 9,
				10, 11, 12, 9,
				14, 11, 12, 13,
				14, 15, 16, 13,
			},
			neg,
		),
		qmfGroups([]int{5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 21, 24, 27, 30, 33, 37, 41, 64}, 16)...,
	)

	config20.filters = [][][13]complex64{
		complexFilters(protoCplx8, 8),
		realFilters(protoReal2),
		realFilters(protoReal2),
	}
	config34.filters = [][][13]complex64{
		complexFilters(protoCplx12, 12),
		complexFilters(protoCplx8b, 8),
		complexFilters(protoCplx4, 4),
		complexFilters(protoCplx4, 4),
		complexFilters(protoCplx4, 4),
	}
	config20.center = centers(config20)
	config34.center = centers(config34)
}

func fullPrototype(half [7]float64) [13]float64 {
	var p [13]float64
	for n := 0; n < 7; n++ {
		p[n] = half[n]
		p[12-n] = half[n]
	}
	return p
}

// complexFilters modulates the prototype into q complex bandpass filters
// centred at (k+1/2)/q of the QMF band.
func complexFilters(half [7]float64, q int) [][13]complex64 {
	p := fullPrototype(half)
	f := make([][13]complex64, q)
	for k := range f {
		for n := range p {
			s, c := math.Sincos(2 * math.Pi / float64(q) * (float64(k) + 0.5) * float64(n-6))
			f[k][n] = complex(float32(p[n]*c), float32(p[n]*s))
		}
	}
	return f
}

// realFilters splits a QMF band into a low and a high half with cosine
// modulation.
func realFilters(half [7]float64) [][13]complex64 {
	p := fullPrototype(half)
	f := make([][13]complex64, 2)
	for k := range f {
		for n := range p {
			f[k][n] = complex(float32(p[n]*math.Cos(math.Pi*float64(k)*float64(n-6))), 0)
		}
	}
	return f
}

func centers(c *bandConfig) []float64 {
	out := make([]float64, 0, c.hybridBands)
	for b, q := range c.resolution {
		for k := 0; k < q; k++ {
			var off float64
			if q == 2 {
				off = -0.25 + 0.5*float64(k)
			} else {
				off = (float64(k) + 0.5) / float64(q)
				if off >= 0.5 {
					off -= 1
				}
			}
			out = append(out, float64(b)+0.5+off)
		}
	}
	return out
}

// band34 maps each band of the 34 band resolution to the band of the 20
// band resolution that covers it.
var band34 = [34]int{
	0, 0, 1, 2, 2, 3, 4, 4, 5, 5, 6, 7, 8, 8, 9, 9, 10,
	11, 12, 13, 14, 14, 15, 15, 16, 16, 17, 17, 18, 18, 18, 18, 18, 19,
}
