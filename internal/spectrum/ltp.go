package spectrum

import (
	"github.com/llehouerou/go-heaac/internal/filterbank"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// ltpCoef maps the transmitted 3-bit gain index to the prediction gain.
var ltpCoef = [8]float32{
	0.570829, 0.696616, 0.813004, 0.911304,
	0.984900, 1.067894, 1.194601, 1.369533,
}

// LTP performs long term prediction for one channel: a lagged excerpt of
// the channel's reconstructed output is transformed back into the MDCT
// domain and added to the bands that use it.
type LTP struct {
	fb *filterbank.FilterBank
	x  []float32
	X  []float32
}

// NewLTP returns a predictor using fb for the forward transform.
func NewLTP(fb *filterbank.FilterBank) *LTP {
	n := fb.FrameLength()
	return &LTP{fb: fb, x: make([]float32, 2*n), X: make([]float32, n)}
}

// HistoryLength returns the number of samples of output history a channel
// keeps for frames of frameLength samples.
func HistoryLength(frameLength uint16) int {
	return 4 * int(frameLength)
}

// Predict adds the prediction described by info to the long window
// spectrum of ics. history is the channel's output history; prevShape is
// the window shape of the previous frame.
func (p *LTP) Predict(ics *syntax.ICStream, info *syntax.LTPInfo, spec []float32, history []int16, prevShape, srIndex uint8, frameLength uint16) {
	if ics.IsShort() || !info.DataPresent {
		return
	}
	n := 2 * int(frameLength)
	gain := ltpCoef[info.Coef&7]
	base := n - int(info.Lag)
	for i := 0; i < n; i++ {
		p.x[i] = float32(history[base+i]) * gain
	}
	p.fb.Forward(ics.WindowSequence, ics.WindowShape, prevShape, p.x, p.X)
	TNSEncode(ics, srIndex, p.X, frameLength)

	for sfb := 0; sfb < int(info.LastBand); sfb++ {
		if !info.LongUsed[sfb] {
			continue
		}
		lo, hi := band(ics, sfb)
		for bin := lo; bin < hi; bin++ {
			spec[bin] += p.X[bin]
		}
	}
}

// UpdateLTPHistory shifts the history by one frame and appends the frame's
// output samples and the overlap that will complete the next frame. Low
// delay streams keep an extra frame of lookback.
func UpdateLTPHistory(history []int16, time, overlap []float32, frameLength uint16, ld bool) {
	n := int(frameLength)
	if ld {
		copy(history[:2*n], history[n:3*n])
		for i := 0; i < n; i++ {
			history[2*n+i] = toInt16(time[i])
			history[3*n+i] = toInt16(overlap[i])
		}
		return
	}
	copy(history[:n], history[n:2*n])
	for i := 0; i < n; i++ {
		history[n+i] = toInt16(time[i])
		history[2*n+i] = toInt16(overlap[i])
	}
}

// toInt16 rounds half away from zero and saturates.
func toInt16(v float32) int16 {
	if v >= 0 {
		v += 0.5
		if v >= 32768 {
			return 32767
		}
	} else {
		v -= 0.5
		if v <= -32768 {
			return -32768
		}
	}
	return int16(v)
}
