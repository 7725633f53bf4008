package huffman

import "fmt"

// Tree decodes a prefix code one bit at a time. Symbols are numbered from
// the base value given at construction, so a tree over signed deltas
// returns them directly.
type Tree struct {
	nodes [][2]int32 // >0: child node, <0: leaf -(symbol+1), 0: no codeword
	min   int
}

// NewTree builds a tree where symbol i has the lengths[i]-bit code codes[i].
func NewTree(codes []uint32, lengths []uint8, base int) (*Tree, error) {
	if len(codes) != len(lengths) {
		return nil, fmt.Errorf("huffman: %d codes, %d lengths", len(codes), len(lengths))
	}
	t := &Tree{nodes: make([][2]int32, 1, 2*len(codes)), min: base}
	for sym, code := range codes {
		n := lengths[sym]
		if n == 0 || n > 32 {
			return nil, fmt.Errorf("huffman: symbol %d has length %d", sym, n)
		}
		node := 0
		for i := int(n) - 1; i >= 0; i-- {
			bit := (code >> uint(i)) & 1
			next := t.nodes[node][bit]
			if i == 0 {
				if next != 0 {
					return nil, fmt.Errorf("huffman: symbol %d collides with another codeword", sym)
				}
				t.nodes[node][bit] = -int32(sym + 1)
				break
			}
			switch {
			case next < 0:
				return nil, fmt.Errorf("huffman: symbol %d extends the codeword of symbol %d", sym, -next-1)
			case next == 0:
				t.nodes = append(t.nodes, [2]int32{})
				next = int32(len(t.nodes) - 1)
				t.nodes[node][bit] = next
			}
			node = int(next)
		}
	}
	return t, nil
}

// MustTree is NewTree for package level tables; it panics on malformed
// code data.
func MustTree(codes []uint32, lengths []uint8, base int) *Tree {
	t, err := NewTree(codes, lengths, base)
	if err != nil {
		panic(err)
	}
	return t
}

// Decode reads one codeword. ok is false when the bits match no codeword or
// the source ran out.
func (t *Tree) Decode(src Source) (v int, ok bool) {
	node := int32(0)
	for {
		next := t.nodes[node][src.Get1Bit()]
		if src.Error() || next == 0 {
			return 0, false
		}
		if next < 0 {
			return int(-next-1) + t.min, true
		}
		node = next
	}
}

// Min returns the value of symbol 0.
func (t *Tree) Min() int {
	return t.min
}

// Len returns the number of symbols.
func (t *Tree) Len() int {
	n := 0
	for _, nd := range t.nodes {
		for _, c := range nd {
			if c < 0 {
				n++
			}
		}
	}
	return n
}
