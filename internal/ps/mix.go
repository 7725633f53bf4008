package ps

import (
	"math"
	"math/cmplx"
)

// resolve turns the delta coded parameters of the last Parse into
// absolute indices and envelope borders for the current frame.
func (d *Decoder) resolve() {
	p := &d.next
	d.fineIID = p.iidFine()
	d.mode = p.iccMode
	d.useIPD = p.enableIPD

	if !d.fresh || p.numEnv == 0 {
		d.numEnv = 1
		d.borders[0], d.borders[1] = 0, d.slots
		d.iid[0], d.icc[0] = d.prevIID, d.prevICC
		d.ipd[0], d.opd[0] = d.prevIPD, d.prevOPD
		d.mapTo34(p)
		return
	}

	iidLimit := iidStepsCoarse
	if d.fineIID {
		iidLimit = iidStepsFine
	}
	nIID, nICC, nIPD := nrIIDPar[p.iidMode], nrICCPar[p.iccMode], nrIPDOPDPar[p.iidMode]
	for e := 0; e < p.numEnv; e++ {
		prevIID, prevICC, prevIPD, prevOPD := &d.prevIID, &d.prevICC, &d.prevIPD, &d.prevOPD
		if e > 0 {
			prevIID, prevICC, prevIPD, prevOPD = &d.iid[e-1], &d.icc[e-1], &d.ipd[e-1], &d.opd[e-1]
		}
		d.iid[e] = [maxParams]int8{}
		d.icc[e] = [maxParams]int8{}
		d.ipd[e] = [maxParams]int8{}
		d.opd[e] = [maxParams]int8{}
		if p.enableIID {
			deltaDecode(&d.iid[e], prevIID, p.iid[e][:nIID], p.iidDT[e], strideOf(nIID), -iidLimit, iidLimit)
		}
		if p.enableICC {
			deltaDecode(&d.icc[e], prevICC, p.icc[e][:nICC], p.iccDT[e], strideOf(nICC), 0, iccSteps)
		}
		if p.enableIPD {
			moduloDecode(&d.ipd[e], prevIPD, p.ipd[e][:nIPD], p.ipdDT[e], strideOf(nIPD))
			moduloDecode(&d.opd[e], prevOPD, p.opd[e][:nIPD], p.opdDT[e], strideOf(nIPD))
		}
	}

	d.numEnv = p.numEnv
	last := p.numEnv - 1
	d.prevIID, d.prevICC = d.iid[last], d.icc[last]
	d.prevIPD, d.prevOPD = d.ipd[last], d.opd[last]

	if p.frameClass == 0 {
		for e := 0; e <= d.numEnv; e++ {
			d.borders[e] = e * d.slots / d.numEnv
		}
	} else {
		d.fixBorders(p)
	}
	d.mapTo34(p)
}

// fixBorders copies and sanitises the variable envelope borders. A frame
// that ends early gets a repeated last envelope.
func (d *Decoder) fixBorders(p *params) {
	d.borders[0] = 0
	for e := 1; e <= d.numEnv; e++ {
		d.borders[e] = p.borders[e]
	}
	if d.borders[d.numEnv] < d.slots {
		last := d.numEnv - 1
		d.iid[d.numEnv], d.icc[d.numEnv] = d.iid[last], d.icc[last]
		d.ipd[d.numEnv], d.opd[d.numEnv] = d.ipd[last], d.opd[last]
		d.numEnv++
		d.borders[d.numEnv] = d.slots
	}
	for e := 1; e < d.numEnv; e++ {
		d.borders[e] = min(max(d.borders[e], d.borders[e-1]+1), d.slots-(d.numEnv-e))
	}
	d.borders[d.numEnv] = d.slots
}

// mapTo34 lifts indices decoded at 20 band resolution to the 34 band
// resolution when the frame needs it.
func (d *Decoder) mapTo34(p *params) {
	if !p.uses34() {
		return
	}
	for e := 0; e < d.numEnv; e++ {
		if p.iidMode != 2 && p.iidMode != 5 {
			map20To34(&d.iid[e], 34)
		}
		if p.iccMode != 2 && p.iccMode != 5 {
			map20To34(&d.icc[e], 34)
		}
		if p.iidMode != 2 && p.iidMode != 5 {
			map20To34(&d.ipd[e], 17)
			map20To34(&d.opd[e], 17)
		}
	}
}

func map20To34(idx *[maxParams]int8, n int) {
	src := *idx
	for b := 0; b < n; b++ {
		idx[b] = src[band34[b]]
	}
}

func strideOf(n int) int {
	if n == 10 || n == 5 {
		return 2
	}
	return 1
}

// deltaDecode resolves one envelope of clamped indices. Frequency deltas
// accumulate from zero, time deltas apply to prev. With stride 2 every
// value covers two bands.
func deltaDecode(out, prev *[maxParams]int8, delta []int8, dt bool, stride, lo, hi int) {
	acc := 0
	for i, v := range delta {
		if dt {
			acc = int(prev[i*stride]) + int(v)
		} else {
			acc += int(v)
		}
		acc = min(max(acc, lo), hi)
		out[i] = int8(acc)
	}
	expand(out, len(delta), stride)
}

// moduloDecode is deltaDecode for phase indices, which wrap at ipdSteps.
func moduloDecode(out, prev *[maxParams]int8, delta []int8, dt bool, stride int) {
	acc := 0
	for i, v := range delta {
		if dt {
			acc = int(prev[i*stride]) + int(v)
		} else {
			acc += int(v)
		}
		acc &= ipdSteps - 1
		out[i] = int8(acc)
	}
	expand(out, len(delta), stride)
	if len(delta) == 5 {
		out[10] = out[9]
	}
}

func expand(out *[maxParams]int8, n, stride int) {
	if stride != 2 {
		return
	}
	for i := 2*n - 1; i > 0; i-- {
		out[i] = out[i>>1]
	}
}

// mixMatrix returns the real rotation (h11, h12, h21, h22) for an IID and
// ICC index pair.
func (d *Decoder) mixMatrix(iidIdx, iccIdx int8) [4]float64 {
	var db float64
	if d.fineIID {
		db = iidFineDB[int(iidIdx)+iidStepsFine]
	} else {
		db = iidCoarseDB[int(iidIdx)+iidStepsCoarse]
	}
	rho := iccRho[iccIdx]
	c := math.Pow(10, db/20)

	if d.mode < 3 {
		c1 := math.Sqrt(2 / (1 + c*c))
		c2 := math.Sqrt(2 * c * c / (1 + c*c))
		alpha := 0.5 * math.Acos(rho)
		beta := alpha * (c1 - c2) / math.Sqrt2
		return [4]float64{
			c2 * math.Cos(beta+alpha),
			c1 * math.Cos(beta-alpha),
			c2 * math.Sin(beta+alpha),
			c1 * math.Sin(beta-alpha),
		}
	}

	rho = max(rho, 0.05)
	alpha := math.Pi / 4
	if c != 1 {
		alpha = 0.5 * math.Atan(2*c*rho/(c*c-1))
		if alpha < 0 {
			alpha += math.Pi / 2
		}
	}
	mu := c + 1/c
	mu = 1 + (4*rho*rho-4)/(mu*mu)
	gamma := math.Atan(math.Sqrt((1 - math.Sqrt(mu)) / (1 + math.Sqrt(mu))))
	return [4]float64{
		math.Sqrt2 * math.Cos(alpha) * math.Cos(gamma),
		math.Sqrt2 * math.Sin(alpha) * math.Cos(gamma),
		-math.Sqrt2 * math.Sin(alpha) * math.Sin(gamma),
		math.Sqrt2 * math.Cos(alpha) * math.Sin(gamma),
	}
}

// smoothPhases updates the phase history of envelope e and returns the
// smoothed left and right rotations per parameter band.
func (d *Decoder) smoothPhases(e int, left, right *[maxParams]complex64) {
	for bk := 0; bk < d.cfg.ipdBands; bk++ {
		opd := float64(d.opd[e][bk]) * math.Pi / 4
		ipd := float64(d.ipd[e][bk]) * math.Pi / 4
		pl := complex64(cmplx.Rect(1, opd))
		pr := complex64(cmplx.Rect(1, opd-ipd))
		sl := pl + 0.5*d.phaseL[0][bk] + 0.25*d.phaseL[1][bk]
		sr := pr + 0.5*d.phaseR[0][bk] + 0.25*d.phaseR[1][bk]
		d.phaseL[1][bk], d.phaseL[0][bk] = d.phaseL[0][bk], pl
		d.phaseR[1][bk], d.phaseR[0][bk] = d.phaseR[0][bk], pr
		left[bk] = complex64(cmplx.Rect(1, cmplx.Phase(complex128(sl))))
		right[bk] = complex64(cmplx.Rect(1, cmplx.Phase(complex128(sr))))
	}
}

// mix applies the interpolated mixing matrices to the mono and the
// decorrelated signal of every group.
func (d *Decoder) mix(left, right [][64]complex64) {
	var phL, phR [maxParams]complex64
	for e := 0; e < d.numEnv; e++ {
		start, end := d.borders[e], d.borders[e+1]
		if end <= start {
			continue
		}
		if d.useIPD {
			d.smoothPhases(e, &phL, &phR)
		}
		step := complex(1/float32(end-start), 0)
		for gi, g := range d.cfg.groups {
			bk := g.band
			m := d.mixMatrix(d.iid[e][bk], d.icc[e][bk])
			target := [4]complex64{
				complex(float32(m[0]), 0), complex(float32(m[1]), 0),
				complex(float32(m[2]), 0), complex(float32(m[3]), 0),
			}
			if d.useIPD && bk < d.cfg.ipdBands {
				pl, pr := phL[bk], phR[bk]
				if g.negateIPD {
					pl, pr = conj(pl), conj(pr)
				}
				target[0] *= pl
				target[2] *= pl
				target[1] *= pr
				target[3] *= pr
			}
			prev := d.hPrev[gi]
			var delta [4]complex64
			for i := range delta {
				delta[i] = (target[i] - prev[i]) * step
			}
			h := prev
			for l := start; l < end; l++ {
				for i := range h {
					h[i] += delta[i]
				}
				for sb := g.start; sb < g.end; sb++ {
					if g.hybrid {
						mono, side := d.subL[l][sb], d.subD[l][sb]
						d.subL[l][sb] = h[0]*mono + h[2]*side
						d.subR[l][sb] = h[1]*mono + h[3]*side
						continue
					}
					mono, side := d.qmf[l][sb], d.qmfD[l][sb]
					left[l][sb] = h[0]*mono + h[2]*side
					right[l][sb] = h[1]*mono + h[3]*side
				}
			}
			d.hPrev[gi] = target
		}
	}
}

func conj(v complex64) complex64 {
	return complex(real(v), -imag(v))
}
