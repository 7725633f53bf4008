package huffman

import "errors"

var (
	// ErrEscapeSequence is returned for an escape prefix longer than the
	// syntax allows.
	ErrEscapeSequence = errors.New("huffman: invalid escape sequence")

	// ErrInvalidCodebook is returned for a codebook number that carries no
	// spectral data.
	ErrInvalidCodebook = errors.New("huffman: invalid codebook")

	// ErrInvalidCode is returned when a bit pattern matches no codeword.
	ErrInvalidCode = errors.New("huffman: invalid codeword")
)

// Source is the bit supply of the decoders. Both *bits.Reader and
// *bits.Window implement it.
type Source interface {
	ShowBits(n uint) uint32
	FlushBits(n uint)
	GetBits(n uint) uint32
	Get1Bit() uint8
	Error() bool
}

// ScaleFactor decodes one scale factor codeword and returns the signed
// difference to the previous value (-60..60).
func ScaleFactor(src Source) int16 {
	return int16(walk(sfBin, src)) - 60
}

func walk(tree []binNode, src Source) int {
	off := 0
	for !tree[off].leaf {
		b := src.Get1Bit()
		off += int(tree[off].next[b])
		if src.Error() {
			return 0
		}
	}
	return int(tree[off].next[0])
}

func decodeTwoStep(t *twoStep, src Source) int {
	cw := src.ShowBits(uint(t.rootBits))
	fs := t.first[cw]
	off := int(fs.offset)
	if fs.extra != 0 {
		src.FlushBits(uint(t.rootBits))
		off += int(src.ShowBits(uint(fs.extra)))
		src.FlushBits(uint(t.second[off].bits - t.rootBits))
	} else {
		src.FlushBits(uint(t.second[off].bits))
	}
	return int(t.second[off].index)
}

// SpectralData decodes one codeword of codebook cb into sp, which must hold
// cb.Width() values. Sign bits and escapes are consumed as required.
func SpectralData(cb Codebook, src Source, sp []int16) error {
	book := int(cb)
	if cb >= FirstVirtualHCB && cb <= LastVirtualHCB {
		book = int(EscHCB)
	} else if cb == ZeroHCB || cb > EscHCB {
		return ErrInvalidCodebook
	}
	b := &books[book]

	var idx int
	if b.step != nil {
		idx = decodeTwoStep(b.step, src)
	} else {
		idx = walk(b.tree, src)
	}

	switch b.kind {
	case QuadTwoStep, QuadBinary:
		if b.unsigned {
			sp[0], sp[1], sp[2], sp[3] = int16(idx/27), int16(idx/9%3), int16(idx/3%3), int16(idx%3)
		} else {
			sp[0], sp[1], sp[2], sp[3] = int16(idx/27-1), int16(idx/9%3-1), int16(idx/3%3-1), int16(idx%3-1)
		}
		if b.unsigned {
			signBits(src, sp[:QuadLen])
		}
	default:
		sp[0] = int16(idx/b.mod - b.off)
		sp[1] = int16(idx%b.mod - b.off)
		if b.unsigned {
			signBits(src, sp[:PairLen])
		}
	}

	if book == int(EscHCB) {
		if err := getEscape(src, &sp[0]); err != nil {
			return err
		}
		if err := getEscape(src, &sp[1]); err != nil {
			return err
		}
		if cb >= FirstVirtualHCB {
			checkVirtualRange(cb, sp)
		}
	}
	return nil
}

func signBits(src Source, sp []int16) {
	for i := range sp {
		if sp[i] != 0 && src.Get1Bit() != 0 {
			sp[i] = -sp[i]
		}
	}
}

// getEscape replaces a magnitude of 16 by the escape value that follows: a
// unary count N >= 4 and N raw bits, yielding 2^N + bits.
func getEscape(src Source, sp *int16) error {
	x := *sp
	if x != EscapeFlag && x != -EscapeFlag {
		return nil
	}
	var n uint
	for n = 4; n < 16; n++ {
		if src.Get1Bit() == 0 {
			break
		}
	}
	if n >= 15 {
		return ErrEscapeSequence
	}
	v := int16(src.GetBits(n)) | int16(1)<<n
	if x < 0 {
		v = -v
	}
	*sp = v
	return nil
}

// checkVirtualRange zeroes a pair that exceeds the largest value of its
// virtual codebook, which signals a corrupted codeword.
func checkVirtualRange(cb Codebook, sp []int16) {
	m := cb.MaxAbsValue()
	if abs16(sp[0]) > m || abs16(sp[1]) > m {
		sp[0], sp[1] = 0, 0
	}
}

func abs16(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
