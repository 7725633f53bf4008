package bits

// Window holds up to 64 bits read as a unit. Bits are consumed from the most
// significant end of the Len-bit value. Codeword reordering reads segments
// forward and backward through such windows and splices the remainder of one
// codeword onto the next.
//
// Window offers the same read methods as Reader so the codeword decoders run
// on either. Running dry sets the error flag.
type Window struct {
	v   uint64
	Len uint
	err bool
}

// ReadWindow reads n bits (n <= 64) from r into a window.
func ReadWindow(r *Reader, n uint) Window {
	var w Window
	for n > 0 {
		k := n
		if k > MaxRead {
			k = MaxRead
		}
		w.v = w.v<<k | uint64(r.GetBits(k))
		w.Len += k
		n -= k
	}
	return w
}

// NewWindow wraps the low n bits of v.
func NewWindow(v uint64, n uint) Window {
	if n < 64 {
		v &= (uint64(1) << n) - 1
	}
	return Window{v: v, Len: n}
}

// ShowBits returns the next n bits (n <= 32). Missing bits read as zero.
func (w *Window) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	if n <= w.Len {
		return uint32(w.v>>(w.Len-n)) & uint32((uint64(1)<<n)-1)
	}
	return uint32(w.v<<(n-w.Len)) & uint32((uint64(1)<<n)-1)
}

// FlushBits drops n bits.
func (w *Window) FlushBits(n uint) {
	if n > w.Len {
		w.Len = 0
		w.v = 0
		w.err = true
		return
	}
	w.Len -= n
	if w.Len < 64 {
		w.v &= (uint64(1) << w.Len) - 1
	}
}

// GetBits reads n bits.
func (w *Window) GetBits(n uint) uint32 {
	v := w.ShowBits(n)
	w.FlushBits(n)
	if w.err {
		return 0
	}
	return v
}

// Get1Bit reads one bit.
func (w *Window) Get1Bit() uint8 {
	return uint8(w.GetBits(1))
}

// Error reports whether a read ran past the held bits.
func (w *Window) Error() bool {
	return w.err
}

// ClearError resets the error flag.
func (w *Window) ClearError() {
	w.err = false
}

// Concat places the bits of head in front of w so that they are read first.
// The combined length is capped at 64 bits by dropping the trailing bits of
// w.
func (w *Window) Concat(head Window) {
	if head.Len == 0 {
		return
	}
	if excess := int(head.Len+w.Len) - 64; excess > 0 {
		w.v >>= uint(excess)
		w.Len -= uint(excess)
	}
	if w.Len == 0 {
		w.v = head.v
	} else {
		w.v |= head.v << w.Len
	}
	w.Len += head.Len
}

// Reverse mirrors the bit order of the window.
func (w *Window) Reverse() {
	var out uint64
	v := w.v
	for i := uint(0); i < w.Len; i++ {
		out = out<<1 | v&1
		v >>= 1
	}
	w.v = out
}

// Value returns the raw bits.
func (w Window) Value() uint64 {
	return w.v
}
