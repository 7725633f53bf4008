// Package mdct implements the forward and inverse modified discrete cosine
// transforms of the AAC filterbank on top of an N/4 point complex FFT.
//
// The transforms follow the ISO/IEC 14496-3 definitions:
//
//	IMDCT: x[n] = 2/N * sum_k X[k] cos(2*pi/N * (n + n0) * (k + 1/2))
//	MDCT:  X[k] = 2   * sum_n x[n] cos(2*pi/N * (n + n0) * (k + 1/2))
//
// with n0 = (N/2 + 1) / 2, so that IMDCT(MDCT(x)) reproduces x up to the
// time domain aliasing cancelled by overlap-add.
package mdct

import (
	"fmt"
	"math"

	"github.com/llehouerou/go-heaac/internal/fft"
)

// Sizes lists the transform lengths used by the decoder: long and short
// blocks of the 1024 and 960 sample frames and the LD 512/480 frames.
var Sizes = [...]uint16{2048, 1920, 1024, 960, 256, 240}

// MDCT holds the twiddles and FFT plan of one transform size. An MDCT owns
// scratch memory and is not safe for concurrent use.
type MDCT struct {
	N      uint16 // window length, twice the number of coefficients
	N2     uint16
	N4     uint16
	N8     uint16
	cfft   *fft.CFFT
	sincos []fft.Complex // sqrt(2/N) * exp(i*2*pi*(k+1/8)/N), k < N/4
	z      []fft.Complex
}

// NewMDCT creates a transform of window length n. n must be a multiple of 16
// whose quarter factors into 2, 3 and 5.
func NewMDCT(n uint16) *MDCT {
	if n%16 != 0 || fft.Factorize(n/4) == nil {
		panic(fmt.Sprintf("mdct: unsupported size %d", n))
	}
	m := &MDCT{
		N:      n,
		N2:     n >> 1,
		N4:     n >> 2,
		N8:     n >> 3,
		cfft:   fft.NewCFFT(n >> 2),
		sincos: make([]fft.Complex, n>>2),
		z:      make([]fft.Complex, n>>2),
	}
	scale := math.Sqrt(2 / float64(n))
	for k := range m.sincos {
		a := 2 * math.Pi * (float64(k) + 0.125) / float64(n)
		m.sincos[k] = fft.Complex{
			Re: float32(scale * math.Cos(a)),
			Im: float32(scale * math.Sin(a)),
		}
	}
	return m
}

// IMDCT transforms N/2 spectral coefficients into N windowless time samples.
func (m *MDCT) IMDCT(in, out []float32) {
	n2, n4, n8 := int(m.N2), int(m.N4), int(m.N8)
	in = in[:n2]
	out = out[:m.N]
	z := m.z

	for k := 0; k < n4; k++ {
		c := m.sincos[k]
		z[k].Im, z[k].Re = fft.ComplexMult(in[2*k], in[n2-1-2*k], c.Re, c.Im)
	}

	m.cfft.Backward(z)

	for k := 0; k < n4; k++ {
		c := m.sincos[k]
		re, im := z[k].Re, z[k].Im
		z[k].Im, z[k].Re = fft.ComplexMult(im, re, c.Re, c.Im)
	}

	for k := 0; k < n8; k += 2 {
		out[2*k] = z[n8+k].Im
		out[2+2*k] = z[n8+1+k].Im
		out[1+2*k] = -z[n8-1-k].Re
		out[3+2*k] = -z[n8-2-k].Re

		out[n4+2*k] = z[k].Re
		out[n4+2+2*k] = z[1+k].Re
		out[n4+1+2*k] = -z[n4-1-k].Im
		out[n4+3+2*k] = -z[n4-2-k].Im

		out[n2+2*k] = z[n8+k].Re
		out[n2+2+2*k] = z[n8+1+k].Re
		out[n2+1+2*k] = -z[n8-1-k].Im
		out[n2+3+2*k] = -z[n8-2-k].Im

		out[n2+n4+2*k] = -z[k].Im
		out[n2+n4+2+2*k] = -z[1+k].Im
		out[n2+n4+1+2*k] = z[n4-1-k].Re
		out[n2+n4+3+2*k] = z[n4-2-k].Re
	}
}

// MDCT transforms N windowed time samples into N/2 spectral coefficients.
// It is only used to run long term prediction.
func (m *MDCT) MDCT(in, out []float32) {
	n, n2, n4, n8 := int(m.N), int(m.N2), int(m.N4), int(m.N8)
	in = in[:n]
	out = out[:n2]
	z := m.z
	scale := float32(n)

	for k := 0; k < n8; k++ {
		i := 2 * k
		c := m.sincos[k]
		re := in[n-n4-1-i] + in[n-n4+i]
		im := in[n4+i] - in[n4-1-i]
		z[k].Re, z[k].Im = fft.ComplexMult(re, im, c.Re, c.Im)
		z[k].Re *= scale
		z[k].Im *= scale

		c = m.sincos[k+n8]
		re = in[n2-1-i] - in[i]
		im = in[n2+i] + in[n-1-i]
		z[k+n8].Re, z[k+n8].Im = fft.ComplexMult(re, im, c.Re, c.Im)
		z[k+n8].Re *= scale
		z[k+n8].Im *= scale
	}

	m.cfft.Forward(z)

	for k := 0; k < n4; k++ {
		i := 2 * k
		c := m.sincos[k]
		re, im := fft.ComplexMult(z[k].Re, z[k].Im, c.Re, c.Im)
		out[i] = -re
		out[n2-1-i] = im
	}
}
