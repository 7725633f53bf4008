// Package output turns the decoder's per-channel float spectrum-domain
// output into interleaved PCM: 16, 24 and 32 bit integers or 32 and 64 bit
// floats, with optional 5.1 to stereo down-matrix, mono to stereo
// up-matrix and dynamic range control.
package output

import "math"

// Format is the sample format of converted output.
type Format uint8

// Output formats, numbered as the public API numbers them.
const (
	Format16Bit  Format = 1
	Format24Bit  Format = 2
	Format32Bit  Format = 3
	FormatFloat  Format = 4
	FormatDouble Format = 5
)

// SampleSize returns the size in bytes of one sample, or 0 for an unknown
// format.
func (f Format) SampleSize() int {
	switch f {
	case Format16Bit:
		return 2
	case Format24Bit, Format32Bit, FormatFloat:
		return 4
	case FormatDouble:
		return 8
	}
	return 0
}

// Valid reports whether f is one of the defined formats.
func (f Format) Valid() bool {
	return f.SampleSize() != 0
}

// Decoded samples are on a 16 bit scale; the wider formats shift them up
// and the float formats bring them to [-1, 1].
const (
	floatScale = 1.0 / 32768
	scale24    = 256
	scale32    = 65536
)

// Layout describes how decoded channels become output channels.
type Layout struct {
	// Map gives, for each output channel, the index of the decoded channel
	// feeding it. With DownMatrix it lists C, L, R, Ls, Rs.
	Map []uint8
	// Channels is the number of interleaved output channels.
	Channels int
	// DownMatrix folds five channels into two.
	DownMatrix bool
	// UpMatrix duplicates the first mapped channel into both outputs.
	UpMatrix bool
}

func (l *Layout) sample(in [][]float32, ch, i int) float32 {
	switch {
	case l.DownMatrix:
		return downmix(in, l.Map, ch, i)
	case l.UpMatrix:
		return in[l.Map[0]][i]
	}
	return in[l.Map[ch]][i]
}

func clip(v, lo, hi float64) float64 {
	switch {
	case v >= hi:
		return hi
	case v <= lo:
		return lo
	}
	return math.RoundToEven(v)
}

// ToInt16 writes n samples per output channel as interleaved 16 bit PCM.
func ToInt16(in [][]float32, l Layout, n int, out []int16) {
	for i := 0; i < n; i++ {
		for ch := 0; ch < l.Channels; ch++ {
			v := float64(l.sample(in, ch, i))
			out[i*l.Channels+ch] = int16(clip(v, math.MinInt16, math.MaxInt16))
		}
	}
}

// ToInt24 writes 24 bit PCM held in the low bits of int32 values.
func ToInt24(in [][]float32, l Layout, n int, out []int32) {
	const hi = 1<<23 - 1
	for i := 0; i < n; i++ {
		for ch := 0; ch < l.Channels; ch++ {
			v := float64(l.sample(in, ch, i)) * scale24
			out[i*l.Channels+ch] = int32(clip(v, -hi-1, hi))
		}
	}
}

// ToInt32 writes 32 bit PCM.
func ToInt32(in [][]float32, l Layout, n int, out []int32) {
	for i := 0; i < n; i++ {
		for ch := 0; ch < l.Channels; ch++ {
			v := float64(l.sample(in, ch, i)) * scale32
			out[i*l.Channels+ch] = int32(clip(v, math.MinInt32, math.MaxInt32))
		}
	}
}

// ToFloat32 writes samples normalised to [-1, 1]. Values beyond full scale
// are passed through.
func ToFloat32(in [][]float32, l Layout, n int, out []float32) {
	for i := 0; i < n; i++ {
		for ch := 0; ch < l.Channels; ch++ {
			out[i*l.Channels+ch] = l.sample(in, ch, i) * floatScale
		}
	}
}

// ToFloat64 is ToFloat32 in double precision.
func ToFloat64(in [][]float32, l Layout, n int, out []float64) {
	for i := 0; i < n; i++ {
		for ch := 0; ch < l.Channels; ch++ {
			out[i*l.Channels+ch] = float64(l.sample(in, ch, i)) * floatScale
		}
	}
}

// Buffer holds the converted samples of the last frame. Its slices are
// reused, so a result is only valid until the next call to Convert.
type Buffer struct {
	i16 []int16
	i32 []int32
	f32 []float32
	f64 []float64
}

func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// Convert fills the slice of the type matching f and returns it as
// []int16, []int32, []float32 or []float64.
func (b *Buffer) Convert(f Format, in [][]float32, l Layout, n int) any {
	size := n * l.Channels
	switch f {
	case Format24Bit:
		b.i32 = grow(b.i32, size)
		ToInt24(in, l, n, b.i32)
		return b.i32
	case Format32Bit:
		b.i32 = grow(b.i32, size)
		ToInt32(in, l, n, b.i32)
		return b.i32
	case FormatFloat:
		b.f32 = grow(b.f32, size)
		ToFloat32(in, l, n, b.f32)
		return b.f32
	case FormatDouble:
		b.f64 = grow(b.f64, size)
		ToFloat64(in, l, n, b.f64)
		return b.f64
	}
	b.i16 = grow(b.i16, size)
	ToInt16(in, l, n, b.i16)
	return b.i16
}
