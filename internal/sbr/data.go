package sbr

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

// Extension ids of sbr_extension.
const extensionPS = 2

// frameData is the parsed sbr_data of one channel with envelope and noise
// floor values already delta decoded.
type frameData struct {
	grid
	ampRes   uint8
	dfEnv    [maxEnvelopes]uint8
	dfNoise  [maxNoiseEnvelopes]uint8
	invf     [maxNoiseBands]uint8
	env      [maxEnvelopes][64]int16
	noiseVal [maxNoiseEnvelopes][maxNoiseBands]int16

	addHarmonicFlag bool
	addHarmonic     [64]bool
}

// history is what the delta decoding of the next frame needs.
type history struct {
	env     [64]int16
	freqRes uint8
	noise   [maxNoiseBands]int16
}

func parseDTDF(r *bits.Reader, fd *frameData) {
	for e := 0; e < fd.numEnv; e++ {
		fd.dfEnv[e] = r.Get1Bit()
	}
	for n := 0; n < fd.numNoise; n++ {
		fd.dfNoise[n] = r.Get1Bit()
	}
}

func parseInvf(r *bits.Reader, fd *frameData, t *freqTables) {
	for n := 0; n < t.nQ; n++ {
		fd.invf[n] = uint8(r.GetBits(2))
	}
}

// parseEnvelope reads sbr_envelope (Table 4.69). balance selects the
// coupled stereo tables of the second channel of a coupled pair.
func parseEnvelope(r *bits.Reader, fd *frameData, t *freqTables, h *history, balance bool) error {
	delta := int16(1)
	var fHuff, tHuff *huffman.Tree
	var startBits uint
	switch {
	case balance && fd.ampRes != 0:
		delta, fHuff, tHuff, startBits = 2, envBalance30F, envBalance30T, 5
	case balance:
		delta, fHuff, tHuff, startBits = 2, envBalance15F, envBalance15T, 6
	case fd.ampRes != 0:
		fHuff, tHuff, startBits = envLevel30F, envLevel30T, 6
	default:
		fHuff, tHuff, startBits = envLevel15F, envLevel15T, 7
	}

	for e := 0; e < fd.numEnv; e++ {
		_, n := t.resolution(fd.freqRes[e])
		cur := &fd.env[e]
		if fd.dfEnv[e] == 0 {
			cur[0] = delta * int16(r.GetBits(startBits))
			for b := 1; b < n; b++ {
				v, ok := fHuff.Decode(r)
				if !ok {
					return ErrEnvelope
				}
				cur[b] = cur[b-1] + delta*int16(v)
			}
			continue
		}
		prev, prevRes := &h.env, h.freqRes
		if e > 0 {
			prev, prevRes = &fd.env[e-1], fd.freqRes[e-1]
		}
		for b := 0; b < n; b++ {
			v, ok := tHuff.Decode(r)
			if !ok {
				return ErrEnvelope
			}
			cur[b] = prev[t.mapBand(b, fd.freqRes[e], prevRes)] + delta*int16(v)
		}
	}
	return nil
}

// mapBand returns the band of resolution from that contains the lower edge
// of band b of resolution to.
func (t *freqTables) mapBand(b int, to, from uint8) int {
	if to == from {
		return b
	}
	if to != 0 {
		edge := t.high[b]
		for i := 0; i < t.nLow; i++ {
			if t.low[i] <= edge && edge < t.low[i+1] {
				return i
			}
		}
		return t.nLow - 1
	}
	edge := t.low[b]
	for i := 0; i < t.nHigh; i++ {
		if t.high[i] == edge {
			return i
		}
	}
	return 0
}

// parseNoise reads sbr_noise (Table 4.70).
func parseNoise(r *bits.Reader, fd *frameData, t *freqTables, h *history, balance bool) error {
	delta := int16(1)
	fHuff, tHuff := envLevel30F, noiseLevel30T
	if balance {
		delta, fHuff, tHuff = 2, envBalance30F, noiseBalance30T
	}
	for n := 0; n < fd.numNoise; n++ {
		cur := &fd.noiseVal[n]
		if fd.dfNoise[n] == 0 {
			cur[0] = delta * int16(r.GetBits(5))
			for b := 1; b < t.nQ; b++ {
				v, ok := fHuff.Decode(r)
				if !ok {
					return ErrEnvelope
				}
				cur[b] = cur[b-1] + delta*int16(v)
			}
			continue
		}
		prev := &h.noise
		if n > 0 {
			prev = &fd.noiseVal[n-1]
		}
		for b := 0; b < t.nQ; b++ {
			v, ok := tHuff.Decode(r)
			if !ok {
				return ErrEnvelope
			}
			cur[b] = prev[b] + delta*int16(v)
		}
	}
	return nil
}

func parseSinusoidal(r *bits.Reader, fd *frameData, t *freqTables) {
	fd.addHarmonicFlag = r.Get1Bit() != 0
	clear(fd.addHarmonic[:])
	if !fd.addHarmonicFlag {
		return
	}
	for b := 0; b < t.nHigh; b++ {
		fd.addHarmonic[b] = r.Get1Bit() != 0
	}
}

// remember stores the state the delta decoding of the next frame needs.
func (h *history) remember(fd *frameData) {
	last := fd.numEnv - 1
	h.env = fd.env[last]
	h.freqRes = fd.freqRes[last]
	h.noise = fd.noiseVal[fd.numNoise-1]
}

// setAmpRes applies the rule that a single FIXFIX envelope always uses the
// 1.5 dB resolution.
func (fd *frameData) setAmpRes(headerAmpRes uint8) {
	fd.ampRes = headerAmpRes
	if fd.frameClass == fixFix && fd.numEnv == 1 {
		fd.ampRes = 0
	}
}
