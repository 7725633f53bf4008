package aac

import (
	"testing"

	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// Sample rate indices used by the tests.
const (
	sr48    = 3
	sr44    = 4
	sr22    = 7
	profile = 1 // LC in ADTS numbering
)

// adtsFrame wraps the raw data block written by raw in an ADTS header.
func adtsFrame(srIndex, channels uint8, raw func(w *bits.Writer)) []byte {
	var body bits.Writer
	raw(&body)
	body.ByteAlign()
	payload := body.Bytes()

	var w bits.Writer
	w.PutBits(0xFFF, 12)
	w.PutBits(0, 1) // MPEG-4
	w.PutBits(0, 2)
	w.PutBits(1, 1) // no CRC
	w.PutBits(profile, 2)
	w.PutBits(uint32(srIndex), 4)
	w.PutBits(0, 1)
	w.PutBits(uint32(channels), 3)
	w.PutBits(0, 4)
	w.PutBits(uint32(7+len(payload)), 13)
	w.PutBits(0x7FF, 11)
	w.PutBits(0, 2)
	w.PutBytes(payload)
	return w.Bytes()
}

// putICSInfo writes an only-long ics_info without prediction.
func putICSInfo(w *bits.Writer, maxSFB uint8) {
	w.PutBits(0, 1)
	w.PutBits(uint32(syntax.OnlyLongSequence), 2)
	w.PutBits(0, 1)
	w.PutBits(uint32(maxSFB), 6)
	w.PutBits(0, 1)
}

// putSilentICS writes an individual_channel_stream with no bands.
func putSilentICS(w *bits.Writer) {
	w.PutBits(100, 8)
	putICSInfo(w, 0)
	w.PutBits(0, 3) // pulse, tns, gain control
}

func putSilentSCE(w *bits.Writer) {
	w.PutBits(uint32(syntax.IDSCE), syntax.LenSEID)
	w.PutBits(0, syntax.LenTag)
	putSilentICS(w)
}

func putSilentCPE(w *bits.Writer) {
	w.PutBits(uint32(syntax.IDCPE), syntax.LenSEID)
	w.PutBits(0, syntax.LenTag)
	w.PutBits(0, 1) // common_window
	putSilentICS(w)
	putSilentICS(w)
}

func putEnd(w *bits.Writer) {
	w.PutBits(uint32(syntax.IDEND), syntax.LenSEID)
}

// putFill writes a fill element carrying payload.
func putFill(w *bits.Writer, payload []byte) {
	w.PutBits(uint32(syntax.IDFIL), syntax.LenSEID)
	if len(payload) < 15 {
		w.PutBits(uint32(len(payload)), 4)
	} else {
		w.PutBits(15, 4)
		w.PutBits(uint32(len(payload)-14), 8)
	}
	w.PutBytes(payload)
}

// sbrPayload returns a single channel SBR extension with a header for a
// 44.1 kHz SBR rate (start 5, stop 9) and one FIXFIX envelope of
// constant energy. nHigh and nQ must match the tables the header yields.
func sbrPayload(xover uint8, nHigh, nQ int, ps bool) []byte {
	var w bits.Writer
	w.PutBits(uint32(syntax.ExtSBRData), 4)
	w.PutBits(1, 1) // header
	w.PutBits(0, 1) // amp res
	w.PutBits(5, 4)
	w.PutBits(9, 4)
	w.PutBits(uint32(xover), 3)
	w.PutBits(0, 2)
	w.PutBits(0, 2) // no extra header fields

	w.PutBits(0, 1)          // data extra
	w.PutBits(0, 2)          // FIXFIX
	w.PutBits(0, 2)          // one envelope
	w.PutBits(1, 1)          // high frequency resolution
	w.PutBits(0, 2)          // dtdf
	w.PutBits(0, uint(2*nQ)) // invf
	w.PutBits(40, 7)         // envelope start value
	for b := 1; b < nHigh; b++ {
		w.PutBits(0, 2) // delta 0
	}
	w.PutBits(10, 5) // noise start value
	for b := 1; b < nQ; b++ {
		w.PutBits(0, 1) // delta 0
	}
	w.PutBits(0, 1) // sinusoidal coding
	if ps {
		w.PutBits(1, 1)
		w.PutBits(1, 4)
		w.PutBits(2, 2) // parametric stereo
		w.PutBits(0, 4)
		w.PutBits(0, 2)
	} else {
		w.PutBits(0, 1)
	}
	w.ByteAlign()
	return w.Bytes()
}

func newInitialised(t *testing.T, first []byte) *Decoder {
	t.Helper()
	d := NewDecoder()
	if _, err := d.Init(first); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return d
}
