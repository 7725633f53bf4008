package huffman

import "fmt"

// Kind selects the lookup structure of a spectral codebook.
type Kind uint8

const (
	QuadTwoStep Kind = iota
	QuadBinary
	PairTwoStep
	PairBinary
)

// firstStep is an entry of the first lookup level. When extra is zero the
// offset points directly at the resolved codeword, otherwise extra more bits
// index a run of second-level entries starting at offset.
type firstStep struct {
	offset uint16
	extra  uint8
}

// secondStep is a resolved codeword: its total length and the symbol index.
type secondStep struct {
	bits  uint8
	index uint16
}

type twoStep struct {
	rootBits uint8
	first    []firstStep
	second   []secondStep
}

// binNode is a node of a breadth-first binary tree. Internal nodes hold the
// distance to their two children, leaves hold the symbol index in next[0].
type binNode struct {
	leaf bool
	next [2]int16
}

// spectralBook describes how one spectral codebook is decoded.
type spectralBook struct {
	kind     Kind
	unsigned bool
	mod      int // pair value radix
	off      int // value offset for signed pairs
	step     *twoStep
	tree     []binNode
}

var (
	books [12]spectralBook
	sfBin []binNode
)

func init() {
	books[1] = spectralBook{kind: QuadTwoStep, step: buildTwoStep(widen(hcb1Codes[:]), hcb1Lengths[:], 5)}
	books[2] = spectralBook{kind: QuadTwoStep, step: buildTwoStep(widen(hcb2Codes[:]), hcb2Lengths[:], 5)}
	books[3] = spectralBook{kind: QuadBinary, unsigned: true, tree: buildBinary(widen(hcb3Codes[:]), hcb3Lengths[:])}
	books[4] = spectralBook{kind: QuadTwoStep, unsigned: true, step: buildTwoStep(widen(hcb4Codes[:]), hcb4Lengths[:], 5)}
	books[5] = spectralBook{kind: PairBinary, mod: 9, off: 4, tree: buildBinary(widen(hcb5Codes[:]), hcb5Lengths[:])}
	books[6] = spectralBook{kind: PairTwoStep, mod: 9, off: 4, step: buildTwoStep(widen(hcb6Codes[:]), hcb6Lengths[:], 5)}
	books[7] = spectralBook{kind: PairBinary, unsigned: true, mod: 8, tree: buildBinary(widen(hcb7Codes[:]), hcb7Lengths[:])}
	books[8] = spectralBook{kind: PairTwoStep, unsigned: true, mod: 8, step: buildTwoStep(widen(hcb8Codes[:]), hcb8Lengths[:], 5)}
	books[9] = spectralBook{kind: PairBinary, unsigned: true, mod: 13, tree: buildBinary(widen(hcb9Codes[:]), hcb9Lengths[:])}
	books[10] = spectralBook{kind: PairTwoStep, unsigned: true, mod: 13, step: buildTwoStep(widen(hcb10Codes[:]), hcb10Lengths[:], 6)}
	books[11] = spectralBook{kind: PairTwoStep, unsigned: true, mod: 17, step: buildTwoStep(widen(hcb11Codes[:]), hcb11Lengths[:], 5)}
	sfBin = buildBinary(hcbSFCodes[:], hcbSFLengths[:])
}

func widen(c []uint16) []uint32 {
	out := make([]uint32, len(c))
	for i, v := range c {
		out[i] = uint32(v)
	}
	return out
}

// codeMatches reports whether the len-bit code is a prefix of the n-bit
// value p, or p is a prefix of the code.
func codeMatches(code uint32, length uint8, p uint32, n uint8) bool {
	if length >= n {
		return code>>(length-n) == p
	}
	return p>>(n-length) == code
}

// buildTwoStep lays out a two level lookup: rootBits bits index the first
// level; prefixes shared by longer codewords point at a run of 2^extra
// second level entries where extra is the longest remaining code length.
func buildTwoStep(codes []uint32, lengths []uint8, rootBits uint8) *twoStep {
	t := &twoStep{rootBits: rootBits, first: make([]firstStep, 1<<rootBits)}
	shortAt := make(map[int]uint16)
	for p := uint32(0); p < 1<<rootBits; p++ {
		var group []int
		for i := range codes {
			if codeMatches(codes[i], lengths[i], p, rootBits) {
				group = append(group, i)
			}
		}
		if len(group) == 0 {
			panic(fmt.Sprintf("huffman: prefix %b has no codeword", p))
		}
		if len(group) == 1 && lengths[group[0]] <= rootBits {
			sym := group[0]
			off, ok := shortAt[sym]
			if !ok {
				off = uint16(len(t.second))
				shortAt[sym] = off
				t.second = append(t.second, secondStep{bits: lengths[sym], index: uint16(sym)})
			}
			t.first[p] = firstStep{offset: off}
			continue
		}
		maxLen := uint8(0)
		for _, i := range group {
			maxLen = max(maxLen, lengths[i])
		}
		extra := maxLen - rootBits
		t.first[p] = firstStep{offset: uint16(len(t.second)), extra: extra}
		for q := uint32(0); q < 1<<extra; q++ {
			full := p<<extra | q
			entry := secondStep{}
			for _, i := range group {
				if full>>(maxLen-lengths[i]) == codes[i] {
					entry = secondStep{bits: lengths[i], index: uint16(i)}
					break
				}
			}
			t.second = append(t.second, entry)
		}
	}
	return t
}

// buildBinary lays out the code tree breadth first.
func buildBinary(codes []uint32, lengths []uint8) []binNode {
	type pending struct {
		node   int
		code   uint32
		length uint8
	}
	symbol := func(code uint32, length uint8) int {
		for i := range codes {
			if lengths[i] == length && codes[i] == code {
				return i
			}
		}
		return -1
	}
	nodes := []binNode{{}}
	queue := []pending{{}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p.length > 32 {
			panic("huffman: incomplete code")
		}
		if sym := symbol(p.code, p.length); sym >= 0 {
			nodes[p.node] = binNode{leaf: true, next: [2]int16{int16(sym)}}
			continue
		}
		child := len(nodes)
		nodes = append(nodes, binNode{}, binNode{})
		nodes[p.node].next = [2]int16{int16(child - p.node), int16(child + 1 - p.node)}
		queue = append(queue,
			pending{child, p.code << 1, p.length + 1},
			pending{child + 1, p.code<<1 | 1, p.length + 1})
	}
	return nodes
}
