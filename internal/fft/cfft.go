// Package fft implements the mixed-radix complex FFT that backs the MDCT of
// every transform length used by AAC (powers of two, and 15*2^k for the 960
// and 480 sample frames).
package fft

import (
	"fmt"
	"math"
)

// CFFT is a precomputed complex FFT plan. It owns a scratch buffer and must
// not be shared between goroutines.
type CFFT struct {
	N      uint16
	stages []stage
	work   []Complex
}

// stage is one Stockham autosort pass of a given radix. It consumes the
// input as radix interleaved subsequences of length m, each repeated stride
// times, and writes the butterflies in natural order.
type stage struct {
	radix  int
	m      int
	stride int
	tw     []Complex // (radix-1) twiddles per butterfly index q
}

// roots of unity exp(-2*pi*i*k/p) for the odd radices.
var (
	roots3 = unitRoots(3)
	roots5 = unitRoots(5)
)

func unitRoots(p int) []Complex {
	r := make([]Complex, p)
	for k := range r {
		a := -2 * math.Pi * float64(k) / float64(p)
		r[k] = Complex{float32(math.Cos(a)), float32(math.Sin(a))}
	}
	return r
}

// Factorize splits n into the radices used by the plan: as many 4s as
// possible, then 2, 3 and 5. It returns nil when n has another prime factor.
func Factorize(n uint16) []int {
	if n == 0 {
		return nil
	}
	var f []int
	rest := int(n)
	for _, p := range [...]int{4, 2, 3, 5} {
		for rest%p == 0 {
			f = append(f, p)
			rest /= p
		}
	}
	if rest != 1 {
		return nil
	}
	return f
}

// NewCFFT builds a plan for transforms of length n. n must factor into 2, 3
// and 5 only.
func NewCFFT(n uint16) *CFFT {
	factors := Factorize(n)
	if factors == nil {
		panic(fmt.Sprintf("fft: unsupported size %d", n))
	}
	c := &CFFT{N: n, work: make([]Complex, n)}
	length, stride := int(n), 1
	for _, p := range factors {
		m := length / p
		st := stage{radix: p, m: m, stride: stride, tw: make([]Complex, m*(p-1))}
		for q := 0; q < m; q++ {
			for k := 1; k < p; k++ {
				a := -2 * math.Pi * float64(q*k) / float64(length)
				st.tw[q*(p-1)+k-1] = Complex{float32(math.Cos(a)), float32(math.Sin(a))}
			}
		}
		c.stages = append(c.stages, st)
		length = m
		stride *= p
	}
	return c
}

// Forward computes X[k] = sum x[n] exp(-2*pi*i*n*k/N) in place, without
// scaling.
func (c *CFFT) Forward(x []Complex) {
	c.run(x[:c.N])
}

// Backward computes x[n] = sum X[k] exp(+2*pi*i*n*k/N) in place, without
// scaling.
func (c *CFFT) Backward(x []Complex) {
	x = x[:c.N]
	conj(x)
	c.run(x)
	conj(x)
}

func conj(x []Complex) {
	for i := range x {
		x[i].Im = -x[i].Im
	}
}

func (c *CFFT) run(x []Complex) {
	src, dst := x, c.work
	for i := range c.stages {
		c.stages[i].apply(src, dst)
		src, dst = dst, src
	}
	if len(c.stages)%2 == 1 {
		copy(x, src)
	}
}

func (st *stage) apply(src, dst []Complex) {
	m, s := st.m, st.stride
	switch st.radix {
	case 2:
		for q := 0; q < m; q++ {
			w := st.tw[q]
			for j := 0; j < s; j++ {
				a0 := src[j+s*q]
				a1 := src[j+s*(q+m)]
				dst[j+s*2*q] = a0.add(a1)
				dst[j+s*(2*q+1)] = a0.sub(a1).mul(w)
			}
		}
	case 4:
		for q := 0; q < m; q++ {
			w1, w2, w3 := st.tw[3*q], st.tw[3*q+1], st.tw[3*q+2]
			for j := 0; j < s; j++ {
				a0 := src[j+s*q]
				a1 := src[j+s*(q+m)]
				a2 := src[j+s*(q+2*m)]
				a3 := src[j+s*(q+3*m)]
				t0, t1 := a0.add(a2), a0.sub(a2)
				t2, t3 := a1.add(a3), a1.sub(a3).mulNegI()
				out := dst[j+s*4*q:]
				out[0] = t0.add(t2)
				out[s] = t1.add(t3).mul(w1)
				out[2*s] = t0.sub(t2).mul(w2)
				out[3*s] = t1.sub(t3).mul(w3)
			}
		}
	default:
		st.applyOdd(src, dst)
	}
}

// applyOdd runs the radix 3 and radix 5 passes as direct small DFTs.
func (st *stage) applyOdd(src, dst []Complex) {
	p, m, s := st.radix, st.m, st.stride
	roots := roots3
	if p == 5 {
		roots = roots5
	}
	var v [5]Complex
	for q := 0; q < m; q++ {
		tw := st.tw[q*(p-1) : (q+1)*(p-1)]
		for j := 0; j < s; j++ {
			for r := 0; r < p; r++ {
				v[r] = src[j+s*(q+r*m)]
			}
			for k := 0; k < p; k++ {
				acc := v[0]
				for r := 1; r < p; r++ {
					acc = acc.add(v[r].mul(roots[(r*k)%p]))
				}
				if k > 0 {
					acc = acc.mul(tw[k-1])
				}
				dst[j+s*(p*q+k)] = acc
			}
		}
	}
}
