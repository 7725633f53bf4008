package spectrum

import (
	"math"
	"testing"

	"github.com/llehouerou/go-heaac/internal/huffman"
)

func TestPredStateReset(t *testing.T) {
	s := PredState{R: [2]int16{1, 2}, COR: [2]int16{3, 4}, VAR: [2]int16{5, 6}}
	s.Reset()
	want := PredState{VAR: [2]int16{0x3f80, 0x3f80}}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
	if v := invQuantPred(s.VAR[0]); v != 1 {
		t.Errorf("reset variance: got %v, want 1", v)
	}
}

func TestFltRound(t *testing.T) {
	tests := []struct {
		in, want uint32
	}{
		{0x3f800000, 0x3f800000},
		{0x3f807fff, 0x3f800000},
		{0x3f808000, 0x3f810000},
		{0xbf808000, 0xbf810000},
		{0x40123456, 0x40120000},
	}
	for _, tt := range tests {
		got := math.Float32bits(fltRound(math.Float32frombits(tt.in)))
		if got != tt.want {
			t.Errorf("fltRound(%#08x): got %#08x, want %#08x", tt.in, got, tt.want)
		}
	}
}

func TestQuantPred(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{0.5, 0.5},
		{1232, 1232},
		{-0.015625, -0.015625},
		// Only the upper 16 bits of the float survive.
		{1234, 1232},
	}
	for _, tt := range tests {
		if got := invQuantPred(quantPred(tt.in)); got != tt.want {
			t.Errorf("invQuantPred(quantPred(%v)): got %v, want %v", tt.in, got, tt.want)
		}
	}
	if q := quantPred(1); q != 0x3f80 {
		t.Errorf("quantPred(1): got %#04x, want 0x3f80", q)
	}
}

func newPredStates() []PredState {
	states := make([]PredState, testFrameLength)
	ResetPredictors(states)
	return states
}

func constantSpectrum(v float32) []float32 {
	spec := make([]float32, testFrameLength)
	for i := range spec {
		spec[i] = v
	}
	return spec
}

func TestPredictAddsPredictionOnceTrained(t *testing.T) {
	ics := longICS(t, 4)
	ics.PredictorDataPresent = true
	ics.Pred.PredictionUsed[0] = true
	states := newPredStates()

	for frame := 0; frame < 3; frame++ {
		spec := constantSpectrum(100)
		Predict(ics, states, spec, testSRIndex, testFrameLength)
		if frame < 2 && spec[0] != 100 {
			t.Errorf("frame %d: got %v, want no prediction before training", frame, spec[0])
		}
		if frame == 2 && spec[0] == 100 {
			t.Error("frame 2: prediction not applied")
		}
		if spec[4] != 100 {
			t.Errorf("frame %d: unflagged band changed to %v", frame, spec[4])
		}
	}
	if states[4] == (PredState{VAR: [2]int16{0x3f80, 0x3f80}}) {
		t.Error("unflagged band predictor was not updated")
	}
}

func TestPredictShortResets(t *testing.T) {
	states := newPredStates()
	long := longICS(t, 4)
	Predict(long, states, constantSpectrum(10), testSRIndex, testFrameLength)

	short := shortICS(t, 4, 0)
	spec := constantSpectrum(10)
	Predict(short, states, spec, testSRIndex, testFrameLength)
	for i, s := range states {
		if s != (PredState{VAR: [2]int16{0x3f80, 0x3f80}}) {
			t.Fatalf("state %d not reset: %+v", i, s)
		}
	}
	if spec[0] != 10 {
		t.Errorf("short spectrum changed: got %v", spec[0])
	}
}

func TestPredictResetGroup(t *testing.T) {
	ics := longICS(t, 4)
	states := newPredStates()
	Predict(ics, states, constantSpectrum(10), testSRIndex, testFrameLength)

	ics.PredictorDataPresent = true
	ics.Pred.PredictorReset = true
	ics.Pred.PredictorResetGroupNumber = 2
	Predict(ics, states, constantSpectrum(10), testSRIndex, testFrameLength)

	reset := PredState{VAR: [2]int16{0x3f80, 0x3f80}}
	if states[1] != reset || states[31] != reset {
		t.Error("lines of reset group 2 not reset")
	}
	if states[0] == reset || states[2] == reset {
		t.Error("lines outside reset group 2 were reset")
	}
}

func TestPredictResetsNoiseBands(t *testing.T) {
	ics := longICS(t, 4)
	ics.SFBCB[0][2] = uint8(huffman.NoiseHCB)
	states := newPredStates()
	Predict(ics, states, constantSpectrum(10), testSRIndex, testFrameLength)

	reset := PredState{VAR: [2]int16{0x3f80, 0x3f80}}
	lo, hi := band(ics, 2)
	for i := lo; i < hi; i++ {
		if states[i] != reset {
			t.Errorf("noise line %d not reset", i)
		}
	}
	if states[0] == reset {
		t.Error("line 0 not updated")
	}
}
