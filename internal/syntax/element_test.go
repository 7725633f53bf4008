package syntax

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-heaac/internal/bits"
)

func TestParseSingleChannelElement_Silent(t *testing.T) {
	var w bits.Writer
	w.PutBits(5, LenTag)
	putSilentICS(&w, 120, true)
	r := readerOf(t, &w)

	var el Element
	if err := ParseSingleChannelElement(r, &el, IDSCE, &lc44); err != nil {
		t.Fatal(err)
	}
	if el.Tag != 5 {
		t.Errorf("Tag: got %d, want 5", el.Tag)
	}
	if el.ICS1.GlobalGain != 120 {
		t.Errorf("GlobalGain: got %d, want 120", el.ICS1.GlobalGain)
	}
	if got := r.ProcessedBits(); got != 4+8+11+3 {
		t.Errorf("ProcessedBits: got %d, want %d", got, 4+8+11+3)
	}
}

func TestParseSingleChannelElement_ZeroSpectrum(t *testing.T) {
	var w bits.Writer
	w.PutBits(0, LenTag)
	w.PutBits(100, 8)
	putLongICSInfo(&w, 1)
	w.PutBits(1, 4) // codebook 1 over band 0
	w.PutBits(1, 5)
	w.PutBits(sfZero, sfZeroLen)
	w.PutBits(0, 3)
	w.PutBits(0, 1) // (0,0,0,0) of codebook 1

	var el Element
	el.ICS1.Spec[0] = 7
	if err := ParseSingleChannelElement(readerOf(t, &w), &el, IDSCE, &lc44); err != nil {
		t.Fatal(err)
	}
	if el.ICS1.ScaleFactors[0][0] != 100 {
		t.Errorf("scale factor: got %d, want 100", el.ICS1.ScaleFactors[0][0])
	}
	for i, v := range el.ICS1.Spec[:4] {
		if v != 0 {
			t.Errorf("Spec[%d]: got %d, want 0", i, v)
		}
	}
}

func TestParseSingleChannelElement_Errors(t *testing.T) {
	tests := []struct {
		name  string
		write func(w *bits.Writer)
		want  error
	}{
		{"reserved bit", func(w *bits.Writer) {
			w.PutBits(0, LenTag)
			w.PutBits(100, 8)
			w.PutBits(1, 1)
		}, ErrICSReservedBit},
		{"gain control", func(w *bits.Writer) {
			w.PutBits(0, LenTag)
			w.PutBits(100, 8)
			putLongICSInfo(w, 0)
			w.PutBits(0b001, 3)
		}, ErrGainControl},
		{"intensity", func(w *bits.Writer) {
			w.PutBits(0, LenTag)
			w.PutBits(100, 8)
			putLongICSInfo(w, 1)
			w.PutBits(15, 4)
			w.PutBits(1, 5)
			w.PutBits(sfZero, sfZeroLen)
			w.PutBits(0, 3)
		}, ErrIntensityInSCE},
		{"truncated", func(w *bits.Writer) {
			w.PutBits(0, LenTag)
		}, ErrBitstreamRead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w bits.Writer
			tt.write(&w)
			var el Element
			err := ParseSingleChannelElement(readerOf(t, &w), &el, IDSCE, &lc44)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseChannelPairElement_CommonWindow(t *testing.T) {
	var w bits.Writer
	w.PutBits(1, LenTag)
	w.PutBits(1, 1) // common_window
	putLongICSInfo(&w, 2)
	w.PutBits(1, 2) // per band mask
	w.PutBits(0b10, 2)
	for i := 0; i < 2; i++ {
		w.PutBits(90, 8)
		w.PutBits(0, 4)
		w.PutBits(2, 5)
		w.PutBits(0, 3)
	}

	var el Element
	if err := ParseChannelPairElement(readerOf(t, &w), &el, &lc44); err != nil {
		t.Fatal(err)
	}
	if !el.CommonWindow {
		t.Fatal("CommonWindow: got false, want true")
	}
	if el.ICS2.MaxSFB != 2 || el.ICS2.NumSWB != el.ICS1.NumSWB {
		t.Errorf("second channel layout: got max_sfb %d, want 2", el.ICS2.MaxSFB)
	}
	if !el.ICS1.MSUsed[0][0] || el.ICS1.MSUsed[0][1] {
		t.Errorf("MSUsed: got %v, want [true false]", el.ICS1.MSUsed[0][:2])
	}
	if el.ICS2.GlobalGain != 90 {
		t.Errorf("second GlobalGain: got %d, want 90", el.ICS2.GlobalGain)
	}
}

func TestParseChannelPairElement_ReservedMask(t *testing.T) {
	var w bits.Writer
	w.PutBits(0, LenTag)
	w.PutBits(1, 1)
	putLongICSInfo(&w, 0)
	w.PutBits(3, 2)
	var el Element
	err := ParseChannelPairElement(readerOf(t, &w), &el, &lc44)
	if !errors.Is(err, ErrMSMaskReserved) {
		t.Errorf("got %v, want %v", err, ErrMSMaskReserved)
	}
}

func TestParseCouplingChannelElement(t *testing.T) {
	var w bits.Writer
	w.PutBits(2, LenTag)
	w.PutBits(0, 1) // ind_sw_cce_flag
	w.PutBits(0, 3) // one coupled element
	w.PutBits(1, 1) // is_cpe
	w.PutBits(0, LenTag)
	w.PutBits(1, 1) // cc_l
	w.PutBits(1, 1) // cc_r
	w.PutBits(0, 4) // domain, sign, scale
	putSilentICS(&w, 100, true)
	w.PutBits(1, 1) // common gain element
	w.PutBits(sfZero, sfZeroLen)
	w.PutBits(0x5A, 8)
	r := readerOf(t, &w)

	var el Element
	if err := ParseCouplingChannelElement(r, &el, &lc44); err != nil {
		t.Fatal(err)
	}
	if got := r.GetBits(8); got != 0x5A {
		t.Errorf("next byte: got %#x, want 0x5a", got)
	}
}

func TestParseDataStreamElement(t *testing.T) {
	var w bits.Writer
	w.PutBits(3, LenTag)
	w.PutBits(1, 1) // align
	w.PutBits(2, 8)
	w.ByteAlign()
	w.PutBytes([]byte{0xAA, 0xBB, 0xCC})
	r := readerOf(t, &w)
	if n := ParseDataStreamElement(r); n != 2 {
		t.Errorf("count: got %d, want 2", n)
	}
	if got := r.GetBits(8); got != 0xCC {
		t.Errorf("next byte: got %#x, want 0xcc", got)
	}
}

func TestERElementOrder(t *testing.T) {
	order, err := ERElementOrder(6)
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != 4 || order[3] != IDLFE {
		t.Errorf("got %v, want SCE CPE CPE LFE", order)
	}
	if _, err := ERElementOrder(0); !errors.Is(err, ErrERChannelConfig) {
		t.Errorf("config 0: got %v, want %v", err, ErrERChannelConfig)
	}
}
