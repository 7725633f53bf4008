package spectrum

import (
	"testing"
)

func TestApplyPulses(t *testing.T) {
	ics := longICS(t, 4)
	ics.PulseDataPresent = true
	ics.Pulse.NumberPulse = 2
	ics.Pulse.PulseStartSFB = 1 // line 4
	ics.Pulse.PulseOffset = [4]uint8{0, 2, 1}
	ics.Pulse.PulseAmp = [4]uint8{3, 2, 1}
	ics.Spec[4] = 1
	ics.Spec[6] = -1

	if err := ApplyPulses(ics, testFrameLength); err != nil {
		t.Fatalf("ApplyPulses: %v", err)
	}
	want := map[int]int16{4: 4, 6: -3, 7: -1}
	for idx, w := range want {
		if ics.Spec[idx] != w {
			t.Errorf("Spec[%d]: got %d, want %d", idx, ics.Spec[idx], w)
		}
	}
}

func TestApplyPulsesPastFrame(t *testing.T) {
	ics := longICS(t, 49)
	ics.Pulse.NumberPulse = 3
	ics.Pulse.PulseStartSFB = 48
	ics.Pulse.PulseOffset = [4]uint8{31, 31, 31, 31}
	if err := ApplyPulses(ics, testFrameLength); err != ErrPulseOffset {
		t.Errorf("got %v, want %v", err, ErrPulseOffset)
	}
}
