// Package ps implements parametric stereo: a stereo image rebuilt from a
// mono QMF signal and a small set of inter-channel parameters.
package ps

const maxHybrid = 32

// maxGroups bounds the number of groups of either band configuration.
const maxGroups = 50

// Decoder holds the parametric stereo state of one channel pair. It is fed
// by Parse, once per frame at most, and run by Process once per frame.
type Decoder struct {
	slots int

	next      params
	available bool
	fresh     bool

	cfg  *bandConfig
	hyb  map[*bandConfig]*hybrid
	dec  map[*bandConfig]*decorrelator
	mode uint8 // icc_mode of the last decoded parameters

	// Resolved indices for the current frame.
	numEnv  int
	borders [maxEnvelopes + 1]int
	iid     [maxEnvelopes][maxParams]int8
	icc     [maxEnvelopes][maxParams]int8
	ipd     [maxEnvelopes][maxParams]int8
	opd     [maxEnvelopes][maxParams]int8
	useIPD  bool
	fineIID bool

	prevIID, prevICC, prevIPD, prevOPD [maxParams]int8

	hPrev  [maxGroups][4]complex64
	phaseL [2][maxParams]complex64
	phaseR [2][maxParams]complex64

	subL, subR, subD [][maxHybrid]complex64
	qmf, qmfD        [][64]complex64
}

// NewDecoder returns a decoder for frames of the given number of QMF
// slots.
func NewDecoder(slots int) *Decoder {
	d := &Decoder{
		slots: slots,
		cfg:   config20,
		hyb:   make(map[*bandConfig]*hybrid, 2),
		dec:   make(map[*bandConfig]*decorrelator, 2),
		subL:  make([][maxHybrid]complex64, slots),
		subR:  make([][maxHybrid]complex64, slots),
		subD:  make([][maxHybrid]complex64, slots),
		qmf:   make([][64]complex64, slots),
		qmfD:  make([][64]complex64, slots),
	}
	for _, c := range []*bandConfig{config20, config34} {
		d.hyb[c] = newHybrid(c, slots)
		d.dec[c] = newDecorrelator(c)
	}
	d.Reset()
	return d
}

// Reset forgets all parameters and filter history.
func (d *Decoder) Reset() {
	d.next = params{}
	d.available = false
	d.fresh = false
	d.cfg = config20
	d.resetFilters()
	d.prevIID = [maxParams]int8{}
	d.prevICC = [maxParams]int8{}
	d.prevIPD = [maxParams]int8{}
	d.prevOPD = [maxParams]int8{}
}

func (d *Decoder) resetFilters() {
	for _, h := range d.hyb {
		h.reset()
	}
	for _, c := range d.dec {
		c.reset()
	}
	for g := range d.hPrev {
		d.hPrev[g] = [4]complex64{1, 1, 0, 0}
	}
	for i := range d.phaseL {
		for b := range d.phaseL[i] {
			d.phaseL[i][b] = 1
			d.phaseR[i][b] = 1
		}
	}
}

// Active reports whether parameters have been received since the last
// reset.
func (d *Decoder) Active() bool {
	return d.available
}

// Process turns the mono QMF matrix left into a stereo pair. left is
// rewritten in place; right receives the second channel. Both hold one
// frame of slots.
func (d *Decoder) Process(left, right [][64]complex64) {
	if !d.available {
		for l := 0; l < d.slots; l++ {
			right[l] = left[l]
		}
		return
	}
	d.resolve()
	d.fresh = false

	want := config20
	if d.next.uses34() {
		want = config34
	}
	if want != d.cfg {
		d.cfg = want
		d.resetFilters()
		for l := range d.subR {
			d.subR[l] = [maxHybrid]complex64{}
		}
	}

	hyb, dec := d.hyb[d.cfg], d.dec[d.cfg]
	hyb.analysis(left, d.subL, d.qmf)
	for l := 0; l < d.slots; l++ {
		dec.slot(&d.subL[l], &d.subD[l], &d.qmf[l], &d.qmfD[l])
	}
	d.mix(left, right)
	hyb.synthesis(d.subL, left)
	hyb.synthesis(d.subR, right)
}
