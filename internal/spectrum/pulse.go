package spectrum

import (
	"errors"

	"github.com/llehouerou/go-heaac/internal/syntax"
)

// ErrPulseOffset reports a pulse placed past the end of the frame.
var ErrPulseOffset = errors.New("spectrum: pulse offset beyond frame")

// ApplyPulses adds the pulse amplitudes of a long window stream to its
// quantised lines, away from zero.
func ApplyPulses(ics *syntax.ICStream, frameLength uint16) error {
	p := &ics.Pulse
	k := min(ics.SWBOffset[p.PulseStartSFB], ics.SWBOffsetMax)
	for i := 0; i <= int(p.NumberPulse); i++ {
		k += uint16(p.PulseOffset[i])
		if k >= frameLength {
			return ErrPulseOffset
		}
		amp := int16(p.PulseAmp[i])
		if ics.Spec[k] > 0 {
			ics.Spec[k] += amp
		} else {
			ics.Spec[k] -= amp
		}
	}
	return nil
}
