package output

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToInt16_ClipAndRound(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int16
	}{
		{"zero", 0, 0},
		{"half rounds to even", 100.5, 100},
		{"negative half rounds to even", -100.5, -100},
		{"odd half rounds up", 1.5, 2},
		{"round down", 0.4, 0},
		{"negative round", -0.6, -1},
		{"max", 32767, 32767},
		{"min", -32768, -32768},
		{"clip high", 40000, 32767},
		{"clip low", -40000, -32768},
		{"clip huge", 1e10, 32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]int16, 1)
			ToInt16([][]float32{{tt.in}}, Layout{Map: []uint8{0}, Channels: 1}, 1, out)
			if out[0] != tt.want {
				t.Errorf("got %d, want %d", out[0], tt.want)
			}
		})
	}
}

func TestWideFormats(t *testing.T) {
	in := [][]float32{{0.5, -1, 32767, -40000}}
	l := Layout{Map: []uint8{0}, Channels: 1}

	got24 := make([]int32, 4)
	ToInt24(in, l, 4, got24)
	if diff := cmp.Diff([]int32{128, -256, 32767 * 256, -1 << 23}, got24); diff != "" {
		t.Errorf("24 bit mismatch (-want +got):\n%s", diff)
	}

	got32 := make([]int32, 4)
	ToInt32(in, l, 4, got32)
	if diff := cmp.Diff([]int32{32768, -65536, 32767 * 65536, math.MinInt32}, got32); diff != "" {
		t.Errorf("32 bit mismatch (-want +got):\n%s", diff)
	}

	gotF := make([]float32, 4)
	ToFloat32(in, l, 4, gotF)
	wantF := []float32{0.5 / 32768, -1.0 / 32768, 32767.0 / 32768, -40000.0 / 32768}
	if diff := cmp.Diff(wantF, gotF); diff != "" {
		t.Errorf("float mismatch (-want +got):\n%s", diff)
	}

	gotD := make([]float64, 4)
	ToFloat64(in, l, 4, gotD)
	for i, v := range gotD {
		if math.Abs(v-float64(wantF[i])) > 1e-9 {
			t.Errorf("double[%d]: got %v, want %v", i, v, wantF[i])
		}
	}
}

func TestToInt16_Interleave(t *testing.T) {
	in := [][]float32{{1, 2, 3}, {-1, -2, -3}}
	tests := []struct {
		name string
		l    Layout
		want []int16
	}{
		{"stereo", Layout{Map: []uint8{0, 1}, Channels: 2}, []int16{1, -1, 2, -2, 3, -3}},
		{"swapped map", Layout{Map: []uint8{1, 0}, Channels: 2}, []int16{-1, 1, -2, 2, -3, 3}},
		{"up-matrix", Layout{Map: []uint8{0}, Channels: 2, UpMatrix: true}, []int16{1, 1, 2, 2, 3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]int16, 6)
			ToInt16(in, tt.l, 3, out)
			if diff := cmp.Diff(tt.want, out); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_Types(t *testing.T) {
	in := [][]float32{{16384}}
	l := Layout{Map: []uint8{0}, Channels: 1}
	tests := []struct {
		f    Format
		want any
	}{
		{Format16Bit, []int16{16384}},
		{Format24Bit, []int32{16384 * 256}},
		{Format32Bit, []int32{16384 * 65536}},
		{FormatFloat, []float32{0.5}},
		{FormatDouble, []float64{0.5}},
	}
	var b Buffer
	for _, tt := range tests {
		got := b.Convert(tt.f, in, l, 1)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("format %d mismatch (-want +got):\n%s", tt.f, diff)
		}
	}
}

func TestBuffer_Reuse(t *testing.T) {
	var b Buffer
	l := Layout{Map: []uint8{0}, Channels: 1}
	first := b.Convert(Format16Bit, [][]float32{{1, 2, 3}}, l, 3).([]int16)
	second := b.Convert(Format16Bit, [][]float32{{4, 5}}, l, 2).([]int16)
	if len(second) != 2 || &first[0] != &second[0] {
		t.Errorf("got len %d, want 2 sharing the first backing array", len(second))
	}
}

func TestFormat_SampleSize(t *testing.T) {
	want := map[Format]int{0: 0, Format16Bit: 2, Format24Bit: 4, Format32Bit: 4, FormatFloat: 4, FormatDouble: 8, 6: 0}
	for f, n := range want {
		if got := f.SampleSize(); got != n {
			t.Errorf("format %d: got %d, want %d", f, got, n)
		}
		if f.Valid() != (n != 0) {
			t.Errorf("format %d: Valid %v", f, f.Valid())
		}
	}
}

func TestPutLittleEndian(t *testing.T) {
	buf := make([]byte, 8)
	if n := PutLittleEndian([]int16{0x0102, -2}, buf); n != 4 {
		t.Fatalf("int16: wrote %d bytes, want 4", n)
	}
	if diff := cmp.Diff([]byte{0x02, 0x01, 0xfe, 0xff}, buf[:4]); diff != "" {
		t.Errorf("int16 bytes mismatch (-want +got):\n%s", diff)
	}
	if n := PutLittleEndian([]float64{1}, buf); n != 8 {
		t.Fatalf("float64: wrote %d bytes, want 8", n)
	}
	if diff := cmp.Diff([]byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, buf); diff != "" {
		t.Errorf("float64 bytes mismatch (-want +got):\n%s", diff)
	}
}
