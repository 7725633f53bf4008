package sbr

import "math/cmplx"

const (
	rate   = 2 // QMF slots per SBR time slot
	tHFGen = 8 // slots of low band history kept for the predictor
	tHFAdj = 2 // delay of the HF adjuster in slots
)

// chirp is the per noise band bandwidth expansion state.
type chirp struct {
	bw       [maxNoiseBands]float32
	prevInvf [maxNoiseBands]uint8
}

func (c *chirp) reset() {
	*c = chirp{}
}

func targetBandwidth(invf, prevInvf uint8) float32 {
	switch invf {
	case 1:
		if prevInvf == 0 {
			return 0.6
		}
		return 0.75
	case 2:
		return 0.9
	case 3:
		return 0.98
	}
	if prevInvf == 1 {
		return 0.6
	}
	return 0
}

// update computes the chirp factors of the current frame.
func (c *chirp) update(invf []uint8) {
	for i, mode := range invf {
		bw := targetBandwidth(mode, c.prevInvf[i])
		if bw < c.bw[i] {
			bw = 0.75*bw + 0.25*c.bw[i]
		} else {
			bw = 0.90625*bw + 0.09375*c.bw[i]
		}
		switch {
		case bw < 0.015625:
			bw = 0
		case bw > 0.99609375:
			bw = 0.99609375
		}
		c.bw[i] = bw
		c.prevInvf[i] = mode
	}
}

// predictor returns the second order linear prediction coefficients of
// low band p over n+tHFGen-tHFAdj slots by the covariance method.
func predictor(xLow [][64]complex64, p, n int) (a0, a1 complex128) {
	var r01, r02, r12 complex128
	var r11, r22 float64
	for j := tHFAdj; j < n+tHFGen; j++ {
		c0 := complex128(xLow[j][p])
		c1 := complex128(xLow[j-1][p])
		c2 := complex128(xLow[j-2][p])
		r01 += c0 * cmplx.Conj(c1)
		r02 += c0 * cmplx.Conj(c2)
		r12 += c1 * cmplx.Conj(c2)
		r11 += real(c1)*real(c1) + imag(c1)*imag(c1)
		r22 += real(c2)*real(c2) + imag(c2)*imag(c2)
	}
	r12abs := cmplx.Abs(r12)
	det := r11*r22 - r12abs*r12abs/(1+1e-6)
	if det != 0 {
		a1 = (r01*r12 - r02*complex(r11, 0)) / complex(det, 0)
	}
	if r11 != 0 {
		a0 = -(r01 + a1*cmplx.Conj(r12)) / complex(r11, 0)
	}
	if cmplx.Abs(a0) >= 4 || cmplx.Abs(a1) >= 4 {
		return 0, 0
	}
	return a0, a1
}

// generateHF transposes the low band into [kx, kx+M) along the patches
// for the QMF slots covered by the frame's envelopes.
// Reference: ISO/IEC 14496-3, 4.6.18.6
func generateHF(xLow, xHigh [][64]complex64, t *freqTables, g *grid, c *chirp, slots int) {
	first := rate * g.borders[0]
	last := rate * g.borders[g.numEnv]
	for l := range xHigh {
		clear(xHigh[l][:])
	}

	var a0, a1 [64]complex128
	var done [64]bool
	k := t.kx
	for i := 0; i < t.numPatches; i++ {
		for x := 0; x < t.patchBands[i]; x++ {
			p := t.patchStart[i] + x
			if p < 0 || p >= 64 || k >= 64 {
				k++
				continue
			}
			if !done[p] {
				a0[p], a1[p] = predictor(xLow, p, slots)
				done[p] = true
			}
			bw := complex(float64(c.bw[noiseBandOf(t, k)]), 0)
			c0 := a0[p] * bw
			c1 := a1[p] * bw * bw
			for l := first; l < last; l++ {
				j := l + tHFAdj
				v := complex128(xLow[j][p]) + c0*complex128(xLow[j-1][p]) + c1*complex128(xLow[j-2][p])
				xHigh[j][k] = complex64(v)
			}
			k++
		}
	}
}

func noiseBandOf(t *freqTables, k int) int {
	for g := 0; g < t.nQ; g++ {
		if k < t.noise[g+1] {
			return g
		}
	}
	return t.nQ - 1
}
