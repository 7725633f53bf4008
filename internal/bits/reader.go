// Package bits implements the MSB-first bit reader used by every bitstream
// parser of the decoder, the reversed bit windows of Huffman codeword
// reordering and a bit writer used to assemble streams.
package bits

// MaxRead is the widest field a single read may return.
const MaxRead = 32

// Reader reads bits MSB-first from a byte buffer.
//
// The reader never reads past the end of its buffer. Peeking beyond the end
// yields zero bits; consuming beyond the end, or asking for more than 32
// bits at once, sets a sticky error flag and makes every subsequent read
// return 0. Callers check Error once per syntactic unit instead of after
// every field.
type Reader struct {
	buf   []byte
	pos   uint32 // bit position of the next bit to read
	total uint32 // buffer length in bits
	err   bool
}

// Position is an opaque snapshot of a Reader used for speculative parsing.
type Position struct {
	pos uint32
	err bool
}

// NewReader creates a Reader over data. An empty buffer starts in the error
// state.
func NewReader(data []byte) *Reader {
	r := &Reader{}
	r.Reset(data)
	return r
}

// Reset points the reader at a new buffer and clears the error flag.
func (r *Reader) Reset(data []byte) {
	r.buf = data
	r.pos = 0
	r.total = uint32(len(data)) * 8
	r.err = len(data) == 0
}

// Error reports whether a read overran the buffer or was malformed.
func (r *Reader) Error() bool {
	return r.err
}

// SetError forces the error flag, used by parsers that detect a semantic
// overrun (a length field pointing past the payload).
func (r *Reader) SetError() {
	r.err = true
}

// BitsLeft returns the number of unread bits.
func (r *Reader) BitsLeft() uint32 {
	if r.pos >= r.total {
		return 0
	}
	return r.total - r.pos
}

// ProcessedBits returns the number of bits consumed so far.
func (r *Reader) ProcessedBits() uint32 {
	return r.pos
}

// peek returns up to 32 bits starting at bit position pos, padding with
// zeros past the end of the buffer.
func (r *Reader) peek(pos uint32, n uint) uint32 {
	byteIdx := pos >> 3
	var w uint64
	for i := uint32(0); i < 5; i++ {
		w <<= 8
		if int(byteIdx+i) < len(r.buf) {
			w |= uint64(r.buf[byteIdx+i])
		}
	}
	shift := 40 - uint(pos&7) - n
	return uint32(w>>shift) & uint32((uint64(1)<<n)-1)
}

// ShowBits returns the next n bits without consuming them.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 || r.err {
		return 0
	}
	if n > MaxRead {
		r.err = true
		return 0
	}
	return r.peek(r.pos, n)
}

// FlushBits discards n bits.
func (r *Reader) FlushBits(n uint) {
	if r.err {
		return
	}
	if uint64(r.pos)+uint64(n) > uint64(r.total) {
		r.pos = r.total
		r.err = true
		return
	}
	r.pos += uint32(n)
}

// GetBits reads n bits (0..32) as an unsigned value.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 || r.err {
		return 0
	}
	if n > MaxRead {
		r.err = true
		return 0
	}
	if uint64(r.pos)+uint64(n) > uint64(r.total) {
		r.pos = r.total
		r.err = true
		return 0
	}
	v := r.peek(r.pos, n)
	r.pos += uint32(n)
	return v
}

// Get1Bit reads a single bit.
func (r *Reader) Get1Bit() uint8 {
	if r.err {
		return 0
	}
	if r.pos >= r.total {
		r.err = true
		return 0
	}
	b := r.buf[r.pos>>3] >> (7 - r.pos&7) & 1
	r.pos++
	return b
}

// ByteAlign skips to the next byte boundary and returns the number of bits
// skipped.
func (r *Reader) ByteAlign() uint {
	rem := uint(r.pos & 7)
	if rem == 0 {
		return 0
	}
	r.FlushBits(8 - rem)
	return 8 - rem
}

// Rewind moves the cursor back to the start of the buffer and clears the
// error flag.
func (r *Reader) Rewind() {
	r.pos = 0
	r.err = len(r.buf) == 0
}

// ResetTo positions the cursor at an absolute bit offset, clearing the error
// flag when the offset is inside the buffer.
func (r *Reader) ResetTo(bitpos uint32) {
	if bitpos > r.total {
		r.pos = r.total
		r.err = true
		return
	}
	r.pos = bitpos
	r.err = false
}

// SkipBits moves the cursor delta bits from its current position. Negative
// offsets move backwards.
func (r *Reader) SkipBits(delta int64) {
	p := int64(r.pos) + delta
	if p < 0 || p > int64(r.total) {
		r.err = true
		return
	}
	r.pos = uint32(p)
}

// Position snapshots the cursor and error state.
func (r *Reader) Position() Position {
	return Position{pos: r.pos, err: r.err}
}

// Restore rolls the reader back to a snapshot taken with Position.
func (r *Reader) Restore(p Position) {
	r.pos = p.pos
	r.err = p.err
}

// Bytes returns the underlying buffer.
func (r *Reader) Bytes() []byte {
	return r.buf
}

// GetBytes reads n whole bytes into a new slice. The cursor need not be
// byte aligned.
func (r *Reader) GetBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = uint8(r.GetBits(8))
	}
	return out
}
