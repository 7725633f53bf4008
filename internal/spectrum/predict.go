package spectrum

import (
	"math"

	"github.com/llehouerou/go-heaac/internal/syntax"
	"github.com/llehouerou/go-heaac/internal/tables"
)

// Predictor constants: attenuation of the lattice state and of the
// correlation and energy estimates.
const (
	predA     = 0.953125
	predAlpha = 0.90625
	predB     = 0.953125
)

// PredState is the backward adaptive predictor of one spectral line. The
// values are kept as the upper 16 bits of their float32 representation.
type PredState struct {
	R   [2]int16
	COR [2]int16
	VAR [2]int16
}

// Reset clears the state; VAR restarts at 1.0.
func (s *PredState) Reset() {
	s.R = [2]int16{}
	s.COR = [2]int16{}
	s.VAR = [2]int16{0x3f80, 0x3f80}
}

// ResetPredictors resets every state in states.
func ResetPredictors(states []PredState) {
	for i := range states {
		states[i].Reset()
	}
}

// Predict runs Main profile prediction over the long window spectrum of
// ics. Every predictor up to the highest prediction band is updated; the
// prediction is added only in bands flagged for it. Short windows reset
// all predictors, as does a signalled reset group for its lines. Lines of
// noise bands are reset after the update.
func Predict(ics *syntax.ICStream, states []PredState, spec []float32, srIndex uint8, frameLength uint16) {
	if ics.IsShort() {
		ResetPredictors(states[:frameLength])
		return
	}
	maxSFB := min(int(tables.MaxPredSFB(srIndex)), int(ics.NumSWB))
	for sfb := 0; sfb < maxSFB; sfb++ {
		use := ics.PredictorDataPresent && ics.Pred.PredictionUsed[sfb]
		lo, hi := band(ics, sfb)
		for bin := lo; bin < hi; bin++ {
			spec[bin] = states[bin].predict(spec[bin], use)
		}
	}
	if ics.PredictorDataPresent && ics.Pred.PredictorReset && ics.Pred.PredictorResetGroupNumber > 0 {
		for bin := int(ics.Pred.PredictorResetGroupNumber) - 1; bin < int(frameLength); bin += 30 {
			states[bin].Reset()
		}
	}
	for sfb := 0; sfb < int(ics.MaxSFB); sfb++ {
		if !isNoise(ics.SFBCB[0][sfb]) {
			continue
		}
		lo, hi := band(ics, sfb)
		ResetPredictors(states[lo:hi])
	}
}

// predict returns the line after prediction and advances the state.
func (s *PredState) predict(in float32, use bool) float32 {
	r0, r1 := invQuantPred(s.R[0]), invQuantPred(s.R[1])
	cor0, cor1 := invQuantPred(s.COR[0]), invQuantPred(s.COR[1])
	var0, var1 := invQuantPred(s.VAR[0]), invQuantPred(s.VAR[1])

	k1 := gainOf(cor0, var0)
	out := in
	if use {
		k2 := gainOf(cor1, var1)
		out = in + fltRound(k1*r0+k2*r1)
	}

	e0 := out
	e1 := e0 - k1*r0
	dr1 := k1 * e0

	var0 = predAlpha*var0 + 0.5*(r0*r0+e0*e0)
	cor0 = predAlpha*cor0 + r0*e0
	var1 = predAlpha*var1 + 0.5*(r1*r1+e1*e1)
	cor1 = predAlpha*cor1 + r1*e1

	r1 = predA * (r0 - dr1)
	r0 = predA * e0

	s.R = [2]int16{quantPred(r0), quantPred(r1)}
	s.COR = [2]int16{quantPred(cor0), quantPred(cor1)}
	s.VAR = [2]int16{quantPred(var0), quantPred(var1)}
	return out
}

// gainOf returns the lattice coefficient cor/var scaled by predB. Energies
// below 2 give no prediction.
func gainOf(cor, energy float32) float32 {
	if energy < 2 {
		return 0
	}
	return cor * predB / energy
}

// fltRound rounds to 16 bits of float32 precision, halves away from zero.
func fltRound(f float32) float32 {
	u := math.Float32bits(f)
	hi := u & 0xffff0000
	if u&0x00008000 == 0 {
		return math.Float32frombits(hi)
	}
	exp := u & 0xff800000
	return math.Float32frombits(hi) + math.Float32frombits(exp|0x00010000) - math.Float32frombits(exp)
}

func quantPred(f float32) int16 {
	return int16(math.Float32bits(f) >> 16)
}

func invQuantPred(q int16) float32 {
	return math.Float32frombits(uint32(uint16(q)) << 16)
}
