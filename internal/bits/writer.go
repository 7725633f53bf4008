package bits

// Writer packs bits MSB-first into a growing byte slice.
type Writer struct {
	buf  []byte
	cur  uint64
	nCur uint
	n    uint64
}

// PutBits appends the low n bits of v (n <= 32).
func (w *Writer) PutBits(v uint32, n uint) {
	if n == 0 {
		return
	}
	if n < 32 {
		v &= (1 << n) - 1
	}
	w.cur = w.cur<<n | uint64(v)
	w.nCur += n
	w.n += uint64(n)
	for w.nCur >= 8 {
		w.nCur -= 8
		w.buf = append(w.buf, byte(w.cur>>w.nCur))
	}
	w.cur &= (uint64(1) << w.nCur) - 1
}

// PutBit appends a single bit.
func (w *Writer) PutBit(b bool) {
	if b {
		w.PutBits(1, 1)
		return
	}
	w.PutBits(0, 1)
}

// PutBytes appends whole bytes.
func (w *Writer) PutBytes(p []byte) {
	for _, b := range p {
		w.PutBits(uint32(b), 8)
	}
}

// ByteAlign pads with zero bits up to the next byte boundary.
func (w *Writer) ByteAlign() {
	if w.nCur > 0 {
		w.PutBits(0, 8-w.nCur)
	}
}

// Len returns the number of bits written.
func (w *Writer) Len() uint64 {
	return w.n
}

// Bytes returns the packed bytes, flushing a partial trailing byte padded
// with zeros. The writer remains usable.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf), len(w.buf)+1)
	copy(out, w.buf)
	if w.nCur > 0 {
		out = append(out, byte(w.cur<<(8-w.nCur)))
	}
	return out
}
