// Package filterbank turns reconstructed spectra into time samples: inverse
// MDCT, windowing with the four AAC window sequences and overlap-add. It
// also provides the forward path that long term prediction runs on its
// history buffer.
package filterbank

import (
	"github.com/llehouerou/go-heaac/internal/mdct"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// FilterBank holds the transforms and scratch buffers for one frame length.
// A FilterBank is shared by every channel of a decoder but not between
// decoders.
type FilterBank struct {
	frameLength int
	shortLength int
	ld          bool

	long  *mdct.MDCT
	short *mdct.MDCT

	transf []float32 // 2*frameLength, inverse transform output
	block  []float32 // 2*frameLength, windowed block being assembled
	window []float32 // 2*frameLength, forward path window
}

// NewFilterBank creates a filter bank for frames of frameLength samples
// (1024 or 960, or 512 and 480 for LD streams, which have no short blocks).
func NewFilterBank(frameLength uint16, ld bool) *FilterBank {
	n := int(frameLength)
	fb := &FilterBank{
		frameLength: n,
		shortLength: n / 8,
		ld:          ld,
		long:        mdct.NewMDCT(2 * frameLength),
		transf:      make([]float32, 2*n),
		block:       make([]float32, 2*n),
		window:      make([]float32, 2*n),
	}
	if !ld {
		fb.short = mdct.NewMDCT(frameLength / 4)
	}
	return fb
}

// FrameLength returns the number of samples produced per call to Inverse.
func (fb *FilterBank) FrameLength() int {
	return fb.frameLength
}

// flat is the length of the constant parts of the start and stop windows.
func (fb *FilterBank) flat() int {
	return (fb.frameLength - fb.shortLength) / 2
}

// buildLongWindow writes the 2N point window of a long sequence into w.
// The rising half uses the previous frame's shape, the falling half the
// current one.
func (fb *FilterBank) buildLongWindow(w []float32, seq syntax.WindowSequence, shape, prevShape uint8) {
	n, ns, flat := fb.frameLength, fb.shortLength, fb.flat()
	longPrev := LongWindow(prevShape, n, fb.ld)
	longCur := LongWindow(shape, n, fb.ld)

	switch seq {
	case syntax.LongStartSequence:
		copy(w, longPrev)
		shortCur := ShortWindow(shape, ns)
		for i := 0; i < flat; i++ {
			w[n+i] = 1
			w[n+flat+ns+i] = 0
		}
		for i := 0; i < ns; i++ {
			w[n+flat+i] = shortCur[ns-1-i]
		}
	case syntax.LongStopSequence:
		shortPrev := ShortWindow(prevShape, ns)
		for i := 0; i < flat; i++ {
			w[i] = 0
			w[flat+ns+i] = 1
		}
		copy(w[flat:], shortPrev)
		for i := 0; i < n; i++ {
			w[n+i] = longCur[n-1-i]
		}
	default:
		copy(w, longPrev)
		for i := 0; i < n; i++ {
			w[n+i] = longCur[n-1-i]
		}
	}
}

// Inverse runs the synthesis filterbank on spec (frameLength coefficients,
// eight interleaved short spectra for EightShortSequence). It writes
// frameLength samples to out and replaces overlap with the second half of
// the current block.
func (fb *FilterBank) Inverse(seq syntax.WindowSequence, shape, prevShape uint8, spec, out, overlap []float32) {
	n := fb.frameLength
	block := fb.block

	if seq == syntax.EightShortSequence && fb.short != nil {
		fb.eightShort(shape, prevShape, spec)
	} else {
		fb.long.IMDCT(spec[:n], fb.transf)
		fb.buildLongWindow(fb.window, seq, shape, prevShape)
		for i := range block {
			block[i] = fb.transf[i] * fb.window[i]
		}
	}

	for i := 0; i < n; i++ {
		out[i] = overlap[i] + block[i]
	}
	copy(overlap[:n], block[n:])
}

// eightShort assembles the eight windowed short blocks of a frame into
// fb.block. Each block starts nshort samples after the previous one, the
// first at the end of the leading flat part.
func (fb *FilterBank) eightShort(shape, prevShape uint8, spec []float32) {
	ns, flat := fb.shortLength, fb.flat()
	block := fb.block
	clear(block)
	cur := ShortWindow(shape, ns)
	rise := ShortWindow(prevShape, ns)
	for w := 0; w < 8; w++ {
		t := fb.transf[:2*ns]
		fb.short.IMDCT(spec[w*ns:(w+1)*ns], t)
		dst := block[flat+w*ns:]
		for i := 0; i < ns; i++ {
			dst[i] += t[i] * rise[i]
			dst[ns+i] += t[ns+i] * cur[ns-1-i]
		}
		rise = cur
	}
}

// Forward runs the analysis filterbank used by long term prediction: in
// holds 2*frameLength time samples, out receives frameLength coefficients.
// Short sequences produce an all-zero spectrum since prediction is only
// applied to long windows.
func (fb *FilterBank) Forward(seq syntax.WindowSequence, shape, prevShape uint8, in, out []float32) {
	n := fb.frameLength
	if seq == syntax.EightShortSequence {
		clear(out[:n])
		return
	}
	fb.buildLongWindow(fb.window, seq, shape, prevShape)
	for i := 0; i < 2*n; i++ {
		fb.block[i] = in[i] * fb.window[i]
	}
	fb.long.MDCT(fb.block, out[:n])
}
