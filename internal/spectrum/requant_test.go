package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/llehouerou/go-heaac/internal/huffman"
	"github.com/llehouerou/go-heaac/internal/tables"
)

func TestDequantizeLong(t *testing.T) {
	ics := longICS(t, 2)
	ics.ScaleFactors[0][1] = 104
	ics.Spec[0] = 1
	ics.Spec[5] = -2

	spec := make([]float32, testFrameLength)
	if err := Dequantize(ics, spec, testFrameLength); err != nil {
		t.Fatalf("Dequantize: %v", err)
	}
	if spec[0] != 1 {
		t.Errorf("spec[0]: got %v, want 1", spec[0])
	}
	// band 1 starts at line 4 with a gain of 2
	want := -2 * float32(math.Pow(2, 4.0/3.0))
	if math.Abs(float64(spec[5]-want)) > 1e-5 {
		t.Errorf("spec[5]: got %v, want %v", spec[5], want)
	}
	for i, v := range spec {
		if i != 0 && i != 5 && v != 0 {
			t.Fatalf("spec[%d]: got %v, want 0", i, v)
		}
	}
}

func TestDequantizeShortDeinterleave(t *testing.T) {
	ics := shortICS(t, 2, 0x7f) // one group of eight windows
	ics.Spec[4] = 1             // band 0 of window 1
	ics.Spec[32] = 1            // band 1 of window 0
	ics.Spec[36+3] = -1         // band 1 of window 1, last line

	spec := make([]float32, testFrameLength)
	if err := Dequantize(ics, spec, testFrameLength); err != nil {
		t.Fatalf("Dequantize: %v", err)
	}
	tests := []struct {
		idx  int
		want float32
	}{
		{128, 1},
		{4, 1},
		{128 + 7, -1},
		{0, 0},
	}
	for _, tt := range tests {
		if spec[tt.idx] != tt.want {
			t.Errorf("spec[%d]: got %v, want %v", tt.idx, spec[tt.idx], tt.want)
		}
	}
}

func TestDequantizeSkipsNonSpectralBands(t *testing.T) {
	ics := longICS(t, 1)
	ics.SFBCB[0][0] = uint8(huffman.NoiseHCB)
	ics.Spec[0] = 3

	spec := make([]float32, testFrameLength)
	if err := Dequantize(ics, spec, testFrameLength); err != nil {
		t.Fatalf("Dequantize: %v", err)
	}
	if spec[0] != 0 {
		t.Errorf("spec[0]: got %v, want 0", spec[0])
	}
}

func TestDequantizeRange(t *testing.T) {
	ics := longICS(t, 1)
	ics.Spec[1] = tables.IQTableSize
	spec := make([]float32, testFrameLength)
	if err := Dequantize(ics, spec, testFrameLength); !errors.Is(err, tables.ErrIQRange) {
		t.Errorf("got %v, want %v", err, tables.ErrIQRange)
	}
}
