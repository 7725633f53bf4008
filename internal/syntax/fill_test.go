package syntax

import (
	"errors"
	"testing"

	"github.com/llehouerou/go-heaac/internal/bits"
)

type recordingSBR struct {
	cnt  uint16
	read uint
}

func (s *recordingSBR) SBRExtension(r *bits.Reader, cnt uint16) error {
	s.cnt = cnt
	r.FlushBits(s.read)
	return nil
}

func TestParseFillElement_DRC(t *testing.T) {
	var w bits.Writer
	w.PutBits(3, 4) // count
	w.PutBits(uint32(ExtDynamicRange), 4)
	w.PutBits(0, 1) // pce tag
	w.PutBits(0, 1) // excluded channels
	w.PutBits(0, 1) // band info
	w.PutBits(1, 1) // program reference level
	w.PutBits(80, 7)
	w.PutBits(0, 1)
	w.PutBits(1, 1) // sign
	w.PutBits(12, 7)
	w.PutBits(0xEE, 8)
	r := readerOf(t, &w)

	var drc DRCInfo
	if err := ParseFillElement(r, &drc, nil); err != nil {
		t.Fatal(err)
	}
	if !drc.Present || drc.NumBands != 1 {
		t.Fatalf("Present/NumBands: got %v/%d, want true/1", drc.Present, drc.NumBands)
	}
	if drc.ProgRefLevel != 80 || !drc.DynRngSgn[0] || drc.DynRngCtl[0] != 12 {
		t.Errorf("got level %d sign %v ctl %d, want 80 true 12",
			drc.ProgRefLevel, drc.DynRngSgn[0], drc.DynRngCtl[0])
	}
	if got := r.GetBits(8); got != 0xEE {
		t.Errorf("next byte: got %#x, want 0xee", got)
	}
}

func TestParseFillElement_SkipsFill(t *testing.T) {
	var w bits.Writer
	w.PutBits(15, 4)
	w.PutBits(3, 8) // 17 bytes
	w.PutBits(uint32(ExtFillData), 4)
	w.PutBits(0, 4)
	for i := 0; i < 16; i++ {
		w.PutBits(0xA5, 8)
	}
	w.PutBits(0x3C, 8)
	r := readerOf(t, &w)
	var drc DRCInfo
	if err := ParseFillElement(r, &drc, nil); err != nil {
		t.Fatal(err)
	}
	if got := r.GetBits(8); got != 0x3C {
		t.Errorf("next byte: got %#x, want 0x3c", got)
	}
}

func TestParseFillElement_SBR(t *testing.T) {
	tests := []struct {
		name string
		read uint
	}{
		{"handler reads less", 10},
		{"handler reads more", 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w bits.Writer
			w.PutBits(4, 4)
			w.PutBits(uint32(ExtSBRData), 4)
			w.PutBits(0, 28)
			w.PutBits(0x77, 8)
			w.PutBits(0, 32)
			r := readerOf(t, &w)
			h := &recordingSBR{read: tt.read}
			var drc DRCInfo
			if err := ParseFillElement(r, &drc, h); err != nil {
				t.Fatal(err)
			}
			if h.cnt != 4 {
				t.Errorf("cnt: got %d, want 4", h.cnt)
			}
			if got := r.GetBits(8); got != 0x77 {
				t.Errorf("next byte: got %#x, want 0x77", got)
			}
		})
	}
}

func TestParseFillElement_SBRWithoutElement(t *testing.T) {
	var w bits.Writer
	w.PutBits(1, 4)
	w.PutBits(uint32(ExtSBRDataCRC), 4)
	w.PutBits(0, 4)
	var drc DRCInfo
	err := ParseFillElement(readerOf(t, &w), &drc, nil)
	if !errors.Is(err, ErrFillWithoutElement) {
		t.Errorf("got %v, want %v", err, ErrFillWithoutElement)
	}
}
