package huffman

import (
	"testing"

	"github.com/llehouerou/go-heaac/internal/bits"
)

func TestTree_Decode(t *testing.T) {
	// 0 -> -1, 10 -> 0, 11 -> 1
	tr, err := NewTree([]uint32{0b0, 0b10, 0b11}, []uint8{1, 2, 2}, -1)
	if err != nil {
		t.Fatal(err)
	}
	r := bits.NewReader([]byte{0b0_10_11_0_11})
	want := []int{-1, 0, 1, -1, 1}
	for i, w := range want {
		got, ok := tr.Decode(r)
		if !ok || got != w {
			t.Fatalf("symbol %d: got %d ok=%v, want %d", i, got, ok, w)
		}
	}
	if tr.Len() != 3 || tr.Min() != -1 {
		t.Errorf("Len/Min: got %d/%d, want 3/-1", tr.Len(), tr.Min())
	}
}

func TestTree_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		codes   []uint32
		lengths []uint8
	}{
		{"duplicate", []uint32{0b1, 0b1}, []uint8{1, 1}},
		{"prefix", []uint32{0b1, 0b10}, []uint8{1, 2}},
		{"zero length", []uint32{0}, []uint8{0}},
		{"length mismatch", []uint32{0, 1}, []uint8{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTree(tt.codes, tt.lengths, 0); err == nil {
				t.Error("got nil error")
			}
		})
	}
}

func TestTree_IncompleteCodeReportsFailure(t *testing.T) {
	tr := MustTree([]uint32{0b0, 0b10}, []uint8{1, 2}, 0)
	r := bits.NewReader([]byte{0b11000000})
	if _, ok := tr.Decode(r); ok {
		t.Error("decoding an unassigned pattern succeeded")
	}
}

func TestRVLC_Symmetric(t *testing.T) {
	for i := range rvlcCodes {
		code, n := rvlcCodes[i], uint(rvlcLengths[i])
		rev := bits.NewWindow(uint64(code), n)
		rev.Reverse()
		if rev.Value() != uint64(code) {
			t.Errorf("codeword %d (%b) is not a palindrome", i-7, code)
		}
		if i == 0 || i == len(rvlcCodes)-1 {
			continue
		}
		var w bits.Writer
		w.PutBits(code, n)
		if got := RVLCScaleFactor(bits.NewReader(w.Bytes()), bits.NewReader([]byte{0})); got != int16(i-7) {
			t.Errorf("codeword %d: got %d", i-7, got)
		}
	}
}

func TestRVLC_Escape(t *testing.T) {
	for v := 0; v < len(rvlcEscCodes); v++ {
		var sf, esc bits.Writer
		sf.PutBits(rvlcCodes[14], uint(rvlcLengths[14])) // +7
		esc.PutBits(rvlcEscCodes[v], uint(rvlcEscLengths[v]))
		got := RVLCScaleFactor(bits.NewReader(sf.Bytes()), bits.NewReader(esc.Bytes()))
		if got != int16(7+v) {
			t.Fatalf("escape %d: got %d, want %d", v, got, 7+v)
		}
	}
	var sf, esc bits.Writer
	sf.PutBits(rvlcCodes[0], uint(rvlcLengths[0])) // -7
	esc.PutBits(rvlcEscCodes[3], uint(rvlcEscLengths[3]))
	if got := RVLCScaleFactor(bits.NewReader(sf.Bytes()), bits.NewReader(esc.Bytes())); got != -10 {
		t.Errorf("-7 - 3: got %d, want -10", got)
	}
}

func TestRVLC_Invalid(t *testing.T) {
	// 1000000000 matches no reversible codeword
	var w bits.Writer
	w.PutBits(0b1000000000, 10)
	if got := RVLCScaleFactor(bits.NewReader(w.Bytes()), bits.NewReader([]byte{0})); got != RVLCInvalid {
		t.Errorf("got %d, want %d", got, RVLCInvalid)
	}
}
