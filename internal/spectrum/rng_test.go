package spectrum

import (
	"math/bits"
	"testing"
)

func TestParityTable(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := uint8(bits.OnesCount8(uint8(i)) % 2)
		if parity[i] != want {
			t.Errorf("parity[%#02x]: got %d, want %d", i, parity[i], want)
		}
	}
}

func TestRNGSequence(t *testing.T) {
	want := []uint32{0xd518b39b, 0xcb685aa7, 0xa67c2b86}
	g := NewRNG()
	for i, w := range want {
		if got := g.Next(); got != w {
			t.Errorf("value %d: got %#08x, want %#08x", i, got, w)
		}
	}
}

func TestRNGReset(t *testing.T) {
	g := NewRNG()
	first := g.Next()
	for i := 0; i < 100; i++ {
		g.Next()
	}
	g.Reset()
	if got := g.Next(); got != first {
		t.Errorf("after Reset: got %#08x, want %#08x", got, first)
	}
}

func TestRNGSpread(t *testing.T) {
	g := NewRNG()
	seen := make(map[uint32]bool)
	var neg int
	for i := 0; i < 1000; i++ {
		v := g.Next()
		seen[v] = true
		if int32(v) < 0 {
			neg++
		}
	}
	if len(seen) < 990 {
		t.Errorf("distinct values: got %d, want at least 990", len(seen))
	}
	if neg < 400 || neg > 600 {
		t.Errorf("negative values: got %d of 1000, want roughly half", neg)
	}
}
