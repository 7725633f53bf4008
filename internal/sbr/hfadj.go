package sbr

import "math"

const (
	gainEpsilon  = 1e-12
	maxGain      = 1e5 // 1e10 in energy
	maxBoost     = 1.584893192
	noiseEntries = 512
	smoothLength = 5
)

var limiterGains = [4]float32{0.70795, 1.0, 1.41254, 1e10}

// smoothWeights are applied oldest first.
var smoothWeights = [smoothLength]float32{0.03183050, 0.11516383, 0.21816949, 0.30150283, 0.33333333}

var (
	sinePhaseRe = [4]float32{1, 0, -1, 0}
	sinePhaseIm = [4]float32{0, 1, 0, -1}
)

// noiseTable holds complex noise with unit mean energy.
var noiseTable [noiseEntries]complex64

func init() {
	seed := uint32(0x2f6b9c31)
	next := func() float64 {
		seed = seed*1664525 + 1013904223
		return float64(int32(seed)) / (1 << 31)
	}
	var energy float64
	var v [noiseEntries][2]float64
	for i := range v {
		v[i][0], v[i][1] = next(), next()
		energy += v[i][0]*v[i][0] + v[i][1]*v[i][1]
	}
	scale := math.Sqrt(noiseEntries / energy)
	for i := range v {
		noiseTable[i] = complex(float32(v[i][0]*scale), float32(v[i][1]*scale))
	}
}

// adjuster carries the HF adjustment state that spans frames.
type adjuster struct {
	gTemp      [smoothLength][64]float32
	qTemp      [smoothLength][64]float32
	seeded     bool
	noiseIndex int
	sineIndex  int
	// prevShort is 0 when the last envelope of the previous frame started
	// at a transient, so the first envelope of this frame is short.
	prevShort int
}

func (a *adjuster) reset() {
	a.seeded = false
	a.noiseIndex = 0
	a.sineIndex = 0
	a.prevShort = -1
}

// envelopeGains is the per line result of the gain calculation for one
// envelope.
type envelopeGains struct {
	g, q, s [64]float32
}

// adjustHF shapes xHigh to the transmitted envelope, adds noise and
// sinusoids and writes the result to y.
// Reference: ISO/IEC 14496-3, 4.6.18.7
func (a *adjuster) adjustHF(xHigh, y [][64]complex64, lv *levels, fd *frameData, prevHarmonic *[64]bool, t *freqTables, h *Header) {
	for l := range y {
		clear(y[l][:])
	}
	var eg envelopeGains
	for e := 0; e < fd.numEnv; e++ {
		first := rate * fd.borders[e]
		last := rate * fd.borders[e+1]
		transient := e == fd.transient || e == a.prevShort
		a.gains(&eg, xHigh, lv, fd, prevHarmonic, t, h, e, first, last, transient)

		smooth := h.SmoothingMode == 0 && !transient
		if !a.seeded {
			for i := range a.gTemp {
				copy(a.gTemp[i][:t.m], eg.g[:t.m])
				copy(a.qTemp[i][:t.m], eg.q[:t.m])
			}
			a.seeded = true
		}
		for l := first; l < last; l++ {
			copy(a.gTemp[:], a.gTemp[1:])
			copy(a.qTemp[:], a.qTemp[1:])
			a.gTemp[smoothLength-1] = eg.g
			a.qTemp[smoothLength-1] = eg.q
			j := l + tHFAdj
			for m := 0; m < t.m; m++ {
				k := m + t.kx
				gf, qf := eg.g[m], eg.q[m]
				if smooth {
					gf, qf = 0, 0
					for i, w := range smoothWeights {
						gf += w * a.gTemp[i][m]
						qf += w * a.qTemp[i][m]
					}
				}
				a.noiseIndex = (a.noiseIndex + 1) & (noiseEntries - 1)
				v := xHigh[j][k] * complex(gf, 0)
				switch {
				case eg.s[m] != 0:
					im := eg.s[m] * sinePhaseIm[a.sineIndex]
					if k&1 == 1 {
						im = -im
					}
					v += complex(eg.s[m]*sinePhaseRe[a.sineIndex], im)
				case !transient:
					v += noiseTable[a.noiseIndex] * complex(qf, 0)
				}
				y[j][k] = v
			}
			a.sineIndex = (a.sineIndex + 1) & 3
		}
	}
	a.prevShort = -1
	if fd.transient == fd.numEnv {
		a.prevShort = 0
	}
}

// gains computes the limited and boosted gain, noise level and sinusoid
// level of every line of envelope e.
func (*adjuster) gains(eg *envelopeGains, xHigh [][64]complex64, lv *levels, fd *frameData,
	prevHarmonic *[64]bool, t *freqTables, h *Header, e, first, last int, transient bool) {
	var eOrig, eCurr, qOrig [64]float32
	var sIndexed, sBand [64]bool

	table, nb := t.resolution(fd.freqRes[e])
	q := 0
	if fd.numNoise > 1 && fd.borders[e] >= fd.noise[1] {
		q = 1
	}
	span := float32(last - first)

	band, nband, hb := 0, 0, 0
	for m := 0; m < t.m; m++ {
		k := m + t.kx
		for band < nb-1 && k >= table[band+1] {
			band++
		}
		for nband < t.nQ-1 && k >= t.noise[nband+1] {
			nband++
		}
		for hb < t.nHigh-1 && k >= t.high[hb+1] {
			hb++
		}
		eOrig[m] = lv.env[e][band]
		qOrig[m] = lv.noise[q][nband]
		if fd.addHarmonic[hb] && k == (t.high[hb]+t.high[hb+1])>>1 &&
			(e >= fd.transient || prevHarmonic[hb]) {
			sIndexed[m] = true
		}
	}

	// Sinusoid presence and energy estimation per envelope band.
	for b := 0; b < nb; b++ {
		lo, hi := table[b]-t.kx, table[b+1]-t.kx
		hasSine := false
		for m := lo; m < hi; m++ {
			hasSine = hasSine || sIndexed[m]
		}
		var bandEnergy float32
		for m := lo; m < hi; m++ {
			sBand[m] = hasSine
			var en float32
			for l := first; l < last; l++ {
				v := xHigh[l+tHFAdj][m+t.kx]
				en += real(v)*real(v) + imag(v)*imag(v)
			}
			eCurr[m] = en / span
			bandEnergy += en
		}
		if h.InterpolFreq == 0 && hi > lo {
			avg := bandEnergy / (span * float32(hi-lo))
			for m := lo; m < hi; m++ {
				eCurr[m] = avg
			}
		}
	}

	var qm, sm, g [64]float32
	for m := 0; m < t.m; m++ {
		qm[m] = sqrt32(eOrig[m] * qOrig[m] / (1 + qOrig[m]))
		if sIndexed[m] {
			sm[m] = sqrt32(eOrig[m] / (1 + qOrig[m]))
		}
		switch {
		case sBand[m]:
			g[m] = sqrt32(eOrig[m] / (1 + eCurr[m]) * qOrig[m] / (1 + qOrig[m]))
		case transient:
			g[m] = sqrt32(eOrig[m] / (1 + eCurr[m]))
		default:
			g[m] = sqrt32(eOrig[m] / ((1 + eCurr[m]) * (1 + qOrig[m])))
		}
	}

	limGain := limiterGains[h.LimiterGains&3]
	for b := 0; b < t.nL; b++ {
		lo, hi := t.lim[b]-t.kx, t.lim[b+1]-t.kx
		var sumOrig, sumCurr float32
		for m := lo; m < hi; m++ {
			sumOrig += eOrig[m]
			sumCurr += eCurr[m]
		}
		gMax := min(limGain*sqrt32((gainEpsilon+sumOrig)/(gainEpsilon+sumCurr)), maxGain)

		den := float32(gainEpsilon)
		for m := lo; m < hi; m++ {
			if g[m] > gMax {
				qm[m] *= gMax / g[m]
				g[m] = gMax
			}
			den += eCurr[m] * g[m] * g[m]
			switch {
			case sm[m] != 0:
				den += sm[m] * sm[m]
			case !transient:
				den += qm[m] * qm[m]
			}
		}
		boost := min(sqrt32((gainEpsilon+sumOrig)/den), maxBoost)
		for m := lo; m < hi; m++ {
			eg.g[m] = g[m] * boost
			eg.q[m] = qm[m] * boost
			eg.s[m] = sm[m] * boost
			if sm[m] != 0 || transient {
				eg.q[m] = 0
			}
		}
	}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
