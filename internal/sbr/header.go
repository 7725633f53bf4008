package sbr

import "github.com/llehouerou/go-heaac/internal/bits"

// Header is sbr_header. Fields of the two optional header extensions take
// their default values when the extension is absent.
type Header struct {
	AmpRes    uint8
	StartFreq uint8
	StopFreq  uint8
	XoverBand uint8

	FreqScale  uint8
	AlterScale uint8
	NoiseBands uint8

	LimiterBands  uint8
	LimiterGains  uint8
	InterpolFreq  uint8
	SmoothingMode uint8
}

// DefaultHeader returns a header with the defaults of the optional fields.
func DefaultHeader() Header {
	return Header{
		FreqScale:     2,
		AlterScale:    1,
		NoiseBands:    2,
		LimiterBands:  2,
		LimiterGains:  2,
		InterpolFreq:  1,
		SmoothingMode: 1,
	}
}

// parseHeader reads sbr_header (Table 4.63).
func parseHeader(r *bits.Reader) Header {
	h := DefaultHeader()
	h.AmpRes = r.Get1Bit()
	h.StartFreq = uint8(r.GetBits(4))
	h.StopFreq = uint8(r.GetBits(4))
	h.XoverBand = uint8(r.GetBits(3))
	r.FlushBits(2)
	extra1 := r.Get1Bit()
	extra2 := r.Get1Bit()
	if extra1 != 0 {
		h.FreqScale = uint8(r.GetBits(2))
		h.AlterScale = r.Get1Bit()
		h.NoiseBands = uint8(r.GetBits(2))
	}
	if extra2 != 0 {
		h.LimiterBands = uint8(r.GetBits(2))
		h.LimiterGains = uint8(r.GetBits(2))
		h.InterpolFreq = r.Get1Bit()
		h.SmoothingMode = r.Get1Bit()
	}
	return h
}

// needsReset reports whether going from h to next changes the frequency
// tables.
func (h Header) needsReset(next Header) bool {
	return h.StartFreq != next.StartFreq ||
		h.StopFreq != next.StopFreq ||
		h.FreqScale != next.FreqScale ||
		h.AlterScale != next.AlterScale ||
		h.XoverBand != next.XoverBand ||
		h.NoiseBands != next.NoiseBands
}
