package sbr

import "math"

const (
	noiseFloorOffset = 6
	noisePanOffset   = 12
)

// levels holds the dequantised envelope energies per band of the envelope
// resolution and the noise floor ratios per noise band.
type levels struct {
	env   [maxEnvelopes][64]float32
	noise [maxNoiseEnvelopes][maxNoiseBands]float32
}

func envelopeStep(ampRes uint8) float64 {
	if ampRes != 0 {
		return 1
	}
	return 0.5
}

// dequantize converts the envelope and noise floor data of an uncoupled
// channel.
func (lv *levels) dequantize(fd *frameData, t *freqTables) {
	a := envelopeStep(fd.ampRes)
	for e := 0; e < fd.numEnv; e++ {
		_, n := t.resolution(fd.freqRes[e])
		for b := 0; b < n; b++ {
			lv.env[e][b] = envelopeEnergy(a * float64(fd.env[e][b]))
		}
	}
	for q := 0; q < fd.numNoise; q++ {
		for b := 0; b < t.nQ; b++ {
			v := fd.noiseVal[q][b]
			if v < 0 || v > 30 {
				lv.noise[q][b] = 0
				continue
			}
			lv.noise[q][b] = float32(math.Exp2(float64(noiseFloorOffset - v)))
		}
	}
}

func envelopeEnergy(exp float64) float32 {
	if exp < 0 {
		return 0
	}
	return float32(64 * math.Exp2(math.Min(exp, 100)))
}

// dequantizeCoupled converts the level (first channel) and balance
// (second channel) data of a coupled pair into left and right values.
func dequantizeCoupled(left, right *levels, fl, fr *frameData, t *freqTables) {
	a := envelopeStep(fl.ampRes)
	panOffset := 24.0
	if fl.ampRes != 0 {
		panOffset = 12
	}
	for e := 0; e < fl.numEnv; e++ {
		_, n := t.resolution(fl.freqRes[e])
		for b := 0; b < n; b++ {
			level := float64(fl.env[e][b])
			bal := float64(fr.env[e][b])
			if level < 0 || bal < 0 || bal > 2*panOffset {
				left.env[e][b], right.env[e][b] = 0, 0
				continue
			}
			num := 64 * math.Exp2(math.Min(a*level+1, 100))
			left.env[e][b] = float32(num / (1 + math.Exp2(a*(panOffset-bal))))
			right.env[e][b] = float32(num / (1 + math.Exp2(a*(bal-panOffset))))
		}
	}
	for q := 0; q < fl.numNoise; q++ {
		for b := 0; b < t.nQ; b++ {
			level := fl.noiseVal[q][b]
			bal := fr.noiseVal[q][b]
			if level < 0 || level > 30 || bal < 0 || bal > 24 {
				left.noise[q][b], right.noise[q][b] = 0, 0
				continue
			}
			num := math.Exp2(float64(noiseFloorOffset - level + 1))
			left.noise[q][b] = float32(num / (1 + math.Exp2(float64(noisePanOffset-bal))))
			right.noise[q][b] = float32(num / (1 + math.Exp2(float64(bal-noisePanOffset))))
		}
	}
}
