package spectrum

import (
	"math"
	"testing"

	"github.com/llehouerou/go-heaac/internal/huffman"
)

func TestIS(t *testing.T) {
	tests := []struct {
		name     string
		cb       huffman.Codebook
		position int16
		msUsed   bool
		want     float32
	}{
		{"in phase", huffman.IntensityHCB, 0, false, 2},
		{"out of phase", huffman.IntensityHCB2, 0, false, -2},
		{"attenuated", huffman.IntensityHCB, 4, false, 1},
		{"boosted", huffman.IntensityHCB, -8, false, 8},
		{"inverted by ms", huffman.IntensityHCB, 0, true, -2},
		{"out of phase inverted", huffman.IntensityHCB2, 0, true, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := longICS(t, 1), longICS(t, 1)
			left.MSMaskPresent = 1
			left.MSUsed[0][0] = tt.msUsed
			right.SFBCB[0][0] = uint8(tt.cb)
			right.ScaleFactors[0][0] = tt.position
			right.Pred.PredictionUsed[0] = true

			specL := make([]float32, testFrameLength)
			specR := make([]float32, testFrameLength)
			for i := 0; i < 4; i++ {
				specL[i] = 2
				specR[i] = 99
			}
			IS(left, right, specL, specR, testFrameLength)

			for i := 0; i < 4; i++ {
				if math.Abs(float64(specR[i]-tt.want)) > 1e-6 {
					t.Errorf("specR[%d]: got %v, want %v", i, specR[i], tt.want)
				}
			}
			if right.Pred.PredictionUsed[0] {
				t.Error("prediction left enabled on an intensity band")
			}
		})
	}
}

func TestISLeavesOtherBands(t *testing.T) {
	left, right := longICS(t, 2), longICS(t, 2)
	right.SFBCB[0][1] = uint8(huffman.IntensityHCB)
	right.ScaleFactors[0][1] = 0
	specL := make([]float32, testFrameLength)
	specR := make([]float32, testFrameLength)
	for i := range specR {
		specL[i], specR[i] = 1, 3
	}
	IS(left, right, specL, specR, testFrameLength)
	if specR[0] != 3 || specR[4] != 1 || specR[8] != 3 {
		t.Errorf("got %v, want band 1 replaced only", specR[:9])
	}
}
