package sbr

import "math"

const qmfTaps = 640

var (
	// analysisTwiddle[k][n] = 2 exp(i pi/64 (k+0.5)(2n-0.5))
	analysisTwiddle [32][64]complex64
	// synthesisTwiddle64[n][k] = exp(i pi/128 (k+0.5)(2n-255)) / 64
	synthesisTwiddle64 [128][64]complex64
	// synthesisTwiddle32[n][k] = exp(i pi/64 (k+0.5)(2n-127.5)) / 64; the
	// half sample offset keeps the delay of the downsampled chain at 289.
	synthesisTwiddle32 [64][32]complex64
)

func init() {
	for k := range analysisTwiddle {
		for n := range analysisTwiddle[k] {
			s, c := math.Sincos(math.Pi / 64 * (float64(k) + 0.5) * (2*float64(n) - 0.5))
			analysisTwiddle[k][n] = complex(float32(2*c), float32(2*s))
		}
	}
	for n := range synthesisTwiddle64 {
		for k := range synthesisTwiddle64[n] {
			s, c := math.Sincos(math.Pi / 128 * (float64(k) + 0.5) * (2*float64(n) - 255))
			synthesisTwiddle64[n][k] = complex(float32(c/64), float32(s/64))
		}
	}
	for n := range synthesisTwiddle32 {
		for k := range synthesisTwiddle32[n] {
			s, c := math.Sincos(math.Pi / 64 * (float64(k) + 0.5) * (2*float64(n) - 127.5))
			synthesisTwiddle32[n][k] = complex(float32(c/64), float32(s/64))
		}
	}
}

// qmfAnalysis splits 32 time samples per slot into 32 complex subbands.
type qmfAnalysis struct {
	x [320]float32
}

func (a *qmfAnalysis) reset() {
	clear(a.x[:])
}

// slot consumes 32 input samples and writes 32 subband samples to out.
func (a *qmfAnalysis) slot(in []float32, out []complex64) {
	copy(a.x[32:], a.x[:288])
	for n := 0; n < 32; n++ {
		a.x[31-n] = in[n]
	}
	var u [64]float32
	for n := 0; n < 64; n++ {
		var s float32
		for j := 0; j < 5; j++ {
			m := n + 64*j
			s += a.x[m] * qmfWindow[2*m]
		}
		u[n] = s
	}
	for k := 0; k < 32; k++ {
		var re, im float32
		tw := &analysisTwiddle[k]
		for n := 0; n < 64; n++ {
			re += u[n] * real(tw[n])
			im += u[n] * imag(tw[n])
		}
		out[k] = complex(re, im)
	}
}

// qmfSynthesis merges 64 subbands into 64 time samples per slot, or 32
// subbands into 32 samples when downsampled.
type qmfSynthesis struct {
	bands int
	v     []float32
}

func newQMFSynthesis(bands int) *qmfSynthesis {
	return &qmfSynthesis{bands: bands, v: make([]float32, 20*bands)}
}

func (s *qmfSynthesis) reset() {
	clear(s.v)
}

// slot consumes one slot of subband samples and writes s.bands output
// samples to out.
func (s *qmfSynthesis) slot(in []complex64, out []float32) {
	if s.bands == 32 {
		s.slot32(in, out)
		return
	}
	v := s.v
	copy(v[128:], v[:len(v)-128])
	for n := 0; n < 128; n++ {
		var acc float32
		tw := &synthesisTwiddle64[n]
		for k := 0; k < 64; k++ {
			acc += real(in[k])*real(tw[k]) - imag(in[k])*imag(tw[k])
		}
		v[n] = acc
	}
	for k := 0; k < 64; k++ {
		var acc float32
		for n := 0; n < 5; n++ {
			acc += v[256*n+k] * qmfWindow[128*n+k]
			acc += v[256*n+192+k] * qmfWindow[128*n+64+k]
		}
		out[k] = acc
	}
}

func (s *qmfSynthesis) slot32(in []complex64, out []float32) {
	v := s.v
	copy(v[64:], v[:len(v)-64])
	for n := 0; n < 64; n++ {
		var acc float32
		tw := &synthesisTwiddle32[n]
		for k := 0; k < 32; k++ {
			acc += real(in[k])*real(tw[k]) - imag(in[k])*imag(tw[k])
		}
		v[n] = acc
	}
	for k := 0; k < 32; k++ {
		var acc float32
		for n := 0; n < 5; n++ {
			acc += v[128*n+k] * qmfWindow[2*(64*n+k)]
			acc += v[128*n+96+k] * qmfWindow[2*(64*n+32+k)]
		}
		out[k] = acc
	}
}
