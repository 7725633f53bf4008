package ps

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/huffman"
)

const (
	maxEnvelopes = 5
	maxParams    = 34
)

// params is the content of one ps_data.
type params struct {
	headerSeen bool
	enableIID  bool
	iidMode    uint8
	enableICC  bool
	iccMode    uint8
	enableExt  bool
	enableIPD  bool

	frameClass uint8
	numEnv     int
	borders    [maxEnvelopes + 1]int

	iidDT [maxEnvelopes]bool
	iccDT [maxEnvelopes]bool
	ipdDT [maxEnvelopes]bool
	opdDT [maxEnvelopes]bool

	iid [maxEnvelopes][maxParams]int8
	icc [maxEnvelopes][maxParams]int8
	ipd [maxEnvelopes][maxParams]int8
	opd [maxEnvelopes][maxParams]int8
}

func (p *params) iidFine() bool {
	return p.iidMode >= 3
}

// uses34 reports whether any enabled parameter needs the 34 band
// resolution.
func (p *params) uses34() bool {
	return (p.enableIID && (p.iidMode == 2 || p.iidMode == 5)) ||
		(p.enableICC && (p.iccMode == 2 || p.iccMode == 5))
}

// Parse reads ps_data (Table 8.1) and decodes the parameter indices.
func (d *Decoder) Parse(r *bits.Reader) error {
	p := &d.next
	if r.Get1Bit() != 0 {
		p.headerSeen = true
		p.enableIID = r.Get1Bit() != 0
		if p.enableIID {
			p.iidMode = uint8(r.GetBits(3))
		}
		p.enableICC = r.Get1Bit() != 0
		if p.enableICC {
			p.iccMode = uint8(r.GetBits(3))
		}
		p.enableExt = r.Get1Bit() != 0
	}
	if (p.enableIID && p.iidMode > 5) || (p.enableICC && p.iccMode > 5) {
		return ErrMode
	}

	p.frameClass = r.Get1Bit()
	p.numEnv = numEnvelopes[p.frameClass][r.GetBits(2)]
	if p.frameClass != 0 {
		for e := 1; e <= p.numEnv; e++ {
			p.borders[e] = int(r.GetBits(5)) + 1
		}
	}

	nIID, nICC := nrIIDPar[p.iidMode], nrICCPar[p.iccMode]
	if p.enableIID {
		fine := p.iidFine()
		for e := 0; e < p.numEnv; e++ {
			p.iidDT[e] = r.Get1Bit() != 0
			t := iidTree(p.iidDT[e], fine)
			if err := readIndices(r, t, p.iid[e][:nIID]); err != nil {
				return err
			}
		}
	}
	if p.enableICC {
		for e := 0; e < p.numEnv; e++ {
			p.iccDT[e] = r.Get1Bit() != 0
			t := iccDeltaFreq
			if p.iccDT[e] {
				t = iccDeltaTime
			}
			if err := readIndices(r, t, p.icc[e][:nICC]); err != nil {
				return err
			}
		}
	}

	p.enableIPD = false
	if p.enableExt {
		cnt := int(r.GetBits(4))
		if cnt == 15 {
			cnt += int(r.GetBits(8))
		}
		left := 8 * cnt
		for left > 7 {
			start := r.ProcessedBits()
			id := r.GetBits(2)
			if id == 0 {
				if err := d.parseIPDOPD(r, p); err != nil {
					return err
				}
			} else {
				r.FlushBits(uint(left - 2))
			}
			left -= int(r.ProcessedBits() - start)
		}
		if left < 0 {
			return ErrOverrun
		}
		r.FlushBits(uint(left))
	}
	if r.Error() {
		return ErrOverrun
	}
	d.available = p.headerSeen
	d.fresh = true
	return nil
}

// parseIPDOPD reads the IPD/OPD extension (ps_extension with id 0).
func (d *Decoder) parseIPDOPD(r *bits.Reader, p *params) error {
	p.enableIPD = r.Get1Bit() != 0
	if p.enableIPD {
		n := nrIPDOPDPar[p.iidMode]
		for e := 0; e < p.numEnv; e++ {
			p.ipdDT[e] = r.Get1Bit() != 0
			t := ipdDeltaFreq
			if p.ipdDT[e] {
				t = ipdDeltaTime
			}
			if err := readIndices(r, t, p.ipd[e][:n]); err != nil {
				return err
			}
			p.opdDT[e] = r.Get1Bit() != 0
			t = opdDeltaFreq
			if p.opdDT[e] {
				t = opdDeltaTime
			}
			if err := readIndices(r, t, p.opd[e][:n]); err != nil {
				return err
			}
		}
	}
	r.FlushBits(1)
	return nil
}

func iidTree(dt, fine bool) *huffman.Tree {
	switch {
	case dt && fine:
		return iidDeltaTimeFine
	case dt:
		return iidDeltaTime
	case fine:
		return iidDeltaFreqFine
	}
	return iidDeltaFreq
}

func readIndices(r *bits.Reader, t *huffman.Tree, dst []int8) error {
	for i := range dst {
		v, ok := t.Decode(r)
		if !ok {
			return ErrHuffman
		}
		dst[i] = int8(v)
	}
	return nil
}
