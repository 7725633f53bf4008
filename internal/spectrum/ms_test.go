package spectrum

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/llehouerou/go-heaac/internal/huffman"
)

func TestMS(t *testing.T) {
	tests := []struct {
		name    string
		present uint8
		used    bool
		rightCB huffman.Codebook
		wantL   []float32
		wantR   []float32
	}{
		{"off", 0, true, 1, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}},
		{"all bands", 2, false, 1, []float32{6, 8, 10, 12}, []float32{-4, -4, -4, -4}},
		{"band flag set", 1, true, 1, []float32{6, 8, 10, 12}, []float32{-4, -4, -4, -4}},
		{"band flag clear", 1, false, 1, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}},
		{"intensity band", 2, false, huffman.IntensityHCB, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}},
		{"noise band", 2, false, huffman.NoiseHCB, []float32{1, 2, 3, 4}, []float32{5, 6, 7, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := longICS(t, 1), longICS(t, 1)
			left.MSMaskPresent = tt.present
			left.MSUsed[0][0] = tt.used
			right.SFBCB[0][0] = uint8(tt.rightCB)

			specL := make([]float32, testFrameLength)
			specR := make([]float32, testFrameLength)
			copy(specL, []float32{1, 2, 3, 4})
			copy(specR, []float32{5, 6, 7, 8})

			MS(left, right, specL, specR, testFrameLength)

			if diff := cmp.Diff(tt.wantL, specL[:4]); diff != "" {
				t.Errorf("left (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantR, specR[:4]); diff != "" {
				t.Errorf("right (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMSShortWindows(t *testing.T) {
	left, right := shortICS(t, 1, 0x77), shortICS(t, 1, 0x77) // groups of 4 and 4
	left.MSMaskPresent = 1
	left.MSUsed[1][0] = true

	specL := make([]float32, testFrameLength)
	specR := make([]float32, testFrameLength)
	for i := range specL {
		specL[i], specR[i] = 1, 1
	}
	MS(left, right, specL, specR, testFrameLength)

	for w := 0; w < 8; w++ {
		base := w * testFrameLength / 8
		wantL, wantR := float32(1), float32(1)
		if w >= 4 {
			wantL, wantR = 2, 0
		}
		if specL[base] != wantL || specR[base] != wantR {
			t.Errorf("window %d: got (%v, %v), want (%v, %v)", w, specL[base], specR[base], wantL, wantR)
		}
		if specL[base+4] != 1 {
			t.Errorf("window %d line 4 outside max_sfb changed: got %v", w, specL[base+4])
		}
	}
}
