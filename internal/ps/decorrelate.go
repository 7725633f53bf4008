package ps

import "math"

// allpass is the decorrelation state of one set of subbands: a fractional
// pre-delay followed by three all-pass links.
type allpass struct {
	phi   []complex64
	fract [][allpassLinks]complex64
	pre   [preDelay][]complex64
	ser   [allpassLinks][5][]complex64
	preAt int
	serAt [allpassLinks]int
}

// newAllpass builds the state for subbands centred at freq (in QMF band
// units).
func newAllpass(freq []float64) *allpass {
	n := len(freq)
	a := &allpass{phi: make([]complex64, n), fract: make([][allpassLinks]complex64, n)}
	for i, f := range freq {
		a.phi[i] = phasor(-math.Pi * fractDelay * f)
		for m := 0; m < allpassLinks; m++ {
			a.fract[i][m] = phasor(-math.Pi * allpassFract[m] * f)
		}
	}
	for i := range a.pre {
		a.pre[i] = make([]complex64, n)
	}
	for m := range a.ser {
		for i := range a.ser[m] {
			a.ser[m][i] = make([]complex64, n)
		}
	}
	return a
}

func phasor(angle float64) complex64 {
	s, c := math.Sincos(angle)
	return complex(float32(c), float32(s))
}

func (a *allpass) reset() {
	for i := range a.pre {
		clear(a.pre[i])
	}
	for m := range a.ser {
		for i := range a.ser[m] {
			clear(a.ser[m][i])
		}
	}
	a.preAt = 0
	a.serAt = [allpassLinks]int{}
}

// filter decorrelates subband sb. decay scales the all-pass feedback.
func (a *allpass) filter(sb int, in complex64, decay float32) complex64 {
	r := a.pre[a.preAt][sb] * a.phi[sb]
	a.pre[a.preAt][sb] = in
	for m := 0; m < allpassLinks; m++ {
		g := complex(decay*allpassFilter[m], 0)
		slot := &a.ser[m][a.serAt[m]][sb]
		tmp := *slot*a.fract[sb][m] - g*r
		*slot = r + g*tmp
		r = tmp
	}
	return r
}

// advance moves the delay lines to the next slot.
func (a *allpass) advance() {
	a.preAt = (a.preAt + 1) % preDelay
	for m := 0; m < allpassLinks; m++ {
		a.serAt[m] = (a.serAt[m] + 1) % allpassDelay[m]
	}
}

// decorrelator derives the decorrelated signal from the mono input.
type decorrelator struct {
	cfg     *bandConfig
	hyb     *allpass
	qmf     *allpass
	long    [longDelay][64]complex64
	longAt  int
	short   [64]complex64
	peak    [maxParams]float32
	power   [maxParams]float32
	diff    [maxParams]float32
	bandPow [maxParams]float32
	gain    [maxParams]float32
}

func newDecorrelator(cfg *bandConfig) *decorrelator {
	freq := make([]float64, 64)
	for k := range freq {
		freq[k] = float64(k) + 0.5
	}
	return &decorrelator{cfg: cfg, hyb: newAllpass(cfg.center), qmf: newAllpass(freq)}
}

func (d *decorrelator) reset() {
	d.hyb.reset()
	d.qmf.reset()
	for i := range d.long {
		clear(d.long[i][:])
	}
	d.longAt = 0
	clear(d.short[:])
	clear(d.peak[:])
	clear(d.power[:])
	clear(d.diff[:])
}

// transientGains updates the per parameter band attenuation of slot l.
func (d *decorrelator) transientGains(sub *[maxHybrid]complex64, qmf *[64]complex64) {
	clear(d.bandPow[:d.cfg.params])
	for _, g := range d.cfg.groups {
		var e float32
		for sb := g.start; sb < g.end; sb++ {
			v := qmf[sb]
			if g.hybrid {
				v = sub[sb]
			}
			e += real(v)*real(v) + imag(v)*imag(v)
		}
		d.bandPow[g.band] += e
	}
	for bk := 0; bk < d.cfg.params; bk++ {
		p := d.bandPow[bk]
		d.peak[bk] = max(d.peak[bk]*peakDecay, p)
		d.power[bk] += smoothFactor * (p - d.power[bk])
		d.diff[bk] += smoothFactor * (d.peak[bk] - p - d.diff[bk])
		d.gain[bk] = 1
		if transientGain*d.diff[bk] > d.power[bk] {
			d.gain[bk] = d.power[bk] / (transientGain * d.diff[bk])
		}
	}
}

// slot decorrelates one slot of hybrid subbands and delayed QMF bands.
func (d *decorrelator) slot(sub, subOut *[maxHybrid]complex64, qmf, qmfOut *[64]complex64) {
	d.transientGains(sub, qmf)
	for _, g := range d.cfg.groups {
		gain := complex(d.gain[g.band], 0)
		for sb := g.start; sb < g.end; sb++ {
			if g.hybrid {
				subOut[sb] = d.hyb.filter(sb, sub[sb], 1) * gain
				continue
			}
			var out complex64
			switch {
			case sb < d.cfg.allpassBands:
				decay := float32(1)
				if sb > d.cfg.decayCutoff {
					decay = max(0, 1-decaySlope*float32(sb-d.cfg.decayCutoff))
				}
				out = d.qmf.filter(sb, qmf[sb], decay)
			case sb < shortDelayQMF:
				out = d.long[d.longAt][sb]
				d.long[d.longAt][sb] = qmf[sb]
			default:
				out = d.short[sb]
				d.short[sb] = qmf[sb]
			}
			qmfOut[sb] = out * gain
		}
	}
	d.hyb.advance()
	d.qmf.advance()
	d.longAt = (d.longAt + 1) % longDelay
}
