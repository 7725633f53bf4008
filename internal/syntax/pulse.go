package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

// ParsePulseData reads pulse_data (Table 4.7): up to four amplitude
// corrections placed relative to the start of a band.
func ParsePulseData(r *bits.Reader, ics *ICStream) error {
	p := &ics.Pulse
	p.NumberPulse = uint8(r.GetBits(2))
	p.PulseStartSFB = uint8(r.GetBits(6))
	if p.PulseStartSFB > ics.NumSWB {
		return ErrPulseStartSFB
	}
	for i := uint8(0); i <= p.NumberPulse; i++ {
		p.PulseOffset[i] = uint8(r.GetBits(5))
		p.PulseAmp[i] = uint8(r.GetBits(4))
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}
