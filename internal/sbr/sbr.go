// Package sbr implements spectral band replication: the SBR payload of
// fill elements, the frequency tables derived from its header, the QMF
// banks, HF generation and HF adjustment. A Decoder is bound to one
// single channel or channel pair element and keeps its state across
// frames. Parametric stereo carried in the extended data of a single
// channel element is handed to the ps package.
package sbr

import (
	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/ps"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// Config describes the element a Decoder serves.
type Config struct {
	// SampleRate is the SBR rate, always twice the core rate. With
	// DownSampled the output stays at the core rate.
	SampleRate  uint32
	FrameLength uint16
	Pair        bool
	// DownSampled selects the 32 band synthesis that keeps the core rate.
	DownSampled bool
}

// TableInfo summarises the frequency tables in use.
type TableInfo struct {
	K0, K2     int
	Kx, M      int
	NMaster    int
	NHigh      int
	NLow       int
	NQ         int
	NL         int
	NumPatches int
}

type channel struct {
	analysis  qmfAnalysis
	synthesis *qmfSynthesis

	xLow  [][64]complex64
	xHigh [][64]complex64
	y     [][64]complex64
	yPrev [][64]complex64
	x     [][64]complex64

	fd           frameData
	hist         history
	lv           levels
	chirp        chirp
	adj          adjuster
	prevHarmonic [64]bool
	// consumed is set once the frame data has been applied.
	consumed bool
}

func newChannel(slots, bands int) *channel {
	rows := func(n int) [][64]complex64 { return make([][64]complex64, n) }
	c := &channel{
		synthesis: newQMFSynthesis(bands),
		xLow:      rows(slots + tHFGen),
		xHigh:     rows(slots + tHFGen),
		y:         rows(slots + tHFGen),
		yPrev:     rows(slots + tHFGen),
		x:         rows(slots),
	}
	c.adj.reset()
	return c
}

func (c *channel) reset() {
	c.analysis.reset()
	c.synthesis.reset()
	for _, m := range [][][64]complex64{c.xLow, c.xHigh, c.y, c.yPrev, c.x} {
		for i := range m {
			clear(m[i][:])
		}
	}
	c.hist = history{}
	c.chirp.reset()
	c.adj.reset()
	clear(c.prevHarmonic[:])
}

// Decoder is the SBR state of one syntax element.
type Decoder struct {
	cfg      Config
	numSlots int // SBR time slots per frame
	slots    int // QMF slots per frame
	bands    int // synthesis bands

	header     Header
	headerSeen bool
	valid      bool
	rebuilt    bool
	frameOK    bool
	coupling   bool
	tables     freqTables
	ch         [2]*channel

	ps     *ps.Decoder
	psUsed bool
}

var _ syntax.SBRHandler = (*Decoder)(nil)

// NewDecoder returns a Decoder for cfg. Only the 1024 and 960 sample core
// frames carry SBR.
func NewDecoder(cfg Config) (*Decoder, error) {
	d := &Decoder{cfg: cfg, bands: 64}
	switch cfg.FrameLength {
	case 1024:
		d.numSlots = 16
	case 960:
		d.numSlots = 15
	default:
		return nil, ErrUnsupportedRate
	}
	if cfg.SampleRate == 0 || cfg.SampleRate > 96000 {
		return nil, ErrUnsupportedRate
	}
	if cfg.DownSampled {
		d.bands = 32
	}
	d.slots = rate * d.numSlots
	d.ch[0] = newChannel(d.slots, d.bands)
	if cfg.Pair {
		d.ch[1] = newChannel(d.slots, d.bands)
	}
	return d, nil
}

// OutputLength returns the number of samples Process writes per channel.
func (d *Decoder) OutputLength() int {
	return d.slots * d.bands
}

// HeaderSeen reports whether an SBR header has been received.
func (d *Decoder) HeaderSeen() bool {
	return d.headerSeen
}

// Rebuilt reports whether the header of the last payload changed the
// frequency tables.
func (d *Decoder) Rebuilt() bool {
	return d.rebuilt
}

// Header returns the header in use.
func (d *Decoder) Header() Header {
	return d.header
}

// PSActive reports whether parametric stereo data has been received.
func (d *Decoder) PSActive() bool {
	return d.psUsed
}

// Tables returns the sizes of the frequency tables in use. The zero value
// is returned while no valid header has been received.
func (d *Decoder) Tables() TableInfo {
	if !d.valid {
		return TableInfo{}
	}
	t := &d.tables
	return TableInfo{
		K0: t.k0, K2: t.k2, Kx: t.kx, M: t.m,
		NMaster: t.nMaster, NHigh: t.nHigh, NLow: t.nLow,
		NQ: t.nQ, NL: t.nL, NumPatches: t.numPatches,
	}
}

// Reset returns every buffer to silence and forgets the envelope history.
// The header and frequency tables stay in place.
func (d *Decoder) Reset() {
	for _, c := range d.ch {
		if c != nil {
			c.reset()
		}
	}
	if d.ps != nil {
		d.ps.Reset()
	}
	d.frameOK = false
}

// SBRExtension parses the sbr_extension_data of a fill element. r is
// positioned at the extension type and the payload spans cnt bytes.
func (d *Decoder) SBRExtension(r *bits.Reader, cnt uint16) error {
	start := r.ProcessedBits()
	d.rebuilt = false
	d.frameOK = false
	if syntax.ExtensionType(r.GetBits(4)) == syntax.ExtSBRDataCRC {
		r.FlushBits(10)
	}
	if r.Get1Bit() != 0 {
		d.applyHeader(parseHeader(r))
	}
	if r.Error() {
		return syntax.ErrBitstreamRead
	}
	if !d.valid {
		return nil
	}

	var err error
	if d.cfg.Pair {
		err = d.parsePair(r)
	} else {
		err = d.parseSingle(r)
	}
	if r.Error() {
		err = syntax.ErrBitstreamRead
	}
	if err == nil && r.ProcessedBits()-start > 8*uint32(cnt) {
		err = ErrPayloadOverrun
	}
	if err != nil {
		return err
	}
	d.frameOK = true
	for _, c := range d.ch {
		if c != nil {
			c.consumed = false
		}
	}
	return nil
}

// applyHeader installs h and rebuilds the tables when a frequency field
// changed. A header the tables cannot be built from leaves the previous
// header in place.
func (d *Decoder) applyHeader(h Header) {
	if d.headerSeen && !d.header.needsReset(h) {
		d.header = h
		return
	}
	prev, prevValid := d.header, d.valid
	var t freqTables
	if err := t.build(h, d.cfg.SampleRate); err != nil {
		if !prevValid {
			d.valid = false
		}
		d.header = prev
		return
	}
	d.tables = t
	d.header = h
	d.headerSeen = true
	d.valid = true
	d.rebuilt = true
	for _, c := range d.ch {
		if c != nil {
			c.adj.reset()
			c.hist = history{}
			clear(c.prevHarmonic[:])
			for i := range c.yPrev {
				clear(c.yPrev[i][:])
			}
		}
	}
}

// parseSingle reads sbr_single_channel_element (Table 4.65).
func (d *Decoder) parseSingle(r *bits.Reader) error {
	if r.Get1Bit() != 0 {
		r.FlushBits(4)
	}
	c := d.ch[0]
	t := &d.tables
	if err := parseGrid(r, &c.fd.grid, d.numSlots); err != nil {
		return err
	}
	c.fd.setAmpRes(d.header.AmpRes)
	parseDTDF(r, &c.fd)
	parseInvf(r, &c.fd, t)
	if err := parseEnvelope(r, &c.fd, t, &c.hist, false); err != nil {
		return err
	}
	if err := parseNoise(r, &c.fd, t, &c.hist, false); err != nil {
		return err
	}
	parseSinusoidal(r, &c.fd, t)
	c.hist.remember(&c.fd)
	c.lv.dequantize(&c.fd, t)
	return d.parseExtended(r)
}

// parsePair reads sbr_channel_pair_element (Table 4.66).
func (d *Decoder) parsePair(r *bits.Reader) error {
	if r.Get1Bit() != 0 {
		r.FlushBits(8)
	}
	c0, c1 := d.ch[0], d.ch[1]
	t := &d.tables
	d.coupling = r.Get1Bit() != 0
	if d.coupling {
		if err := parseGrid(r, &c0.fd.grid, d.numSlots); err != nil {
			return err
		}
		c1.fd.grid = c0.fd.grid
		c0.fd.setAmpRes(d.header.AmpRes)
		c1.fd.setAmpRes(d.header.AmpRes)
		parseDTDF(r, &c0.fd)
		parseDTDF(r, &c1.fd)
		parseInvf(r, &c0.fd, t)
		c1.fd.invf = c0.fd.invf
		if err := parseEnvelope(r, &c0.fd, t, &c0.hist, false); err != nil {
			return err
		}
		if err := parseNoise(r, &c0.fd, t, &c0.hist, false); err != nil {
			return err
		}
		if err := parseEnvelope(r, &c1.fd, t, &c1.hist, true); err != nil {
			return err
		}
		if err := parseNoise(r, &c1.fd, t, &c1.hist, true); err != nil {
			return err
		}
	} else {
		if err := parseGrid(r, &c0.fd.grid, d.numSlots); err != nil {
			return err
		}
		if err := parseGrid(r, &c1.fd.grid, d.numSlots); err != nil {
			return err
		}
		c0.fd.setAmpRes(d.header.AmpRes)
		c1.fd.setAmpRes(d.header.AmpRes)
		parseDTDF(r, &c0.fd)
		parseDTDF(r, &c1.fd)
		parseInvf(r, &c0.fd, t)
		parseInvf(r, &c1.fd, t)
		for _, c := range []*channel{c0, c1} {
			if err := parseEnvelope(r, &c.fd, t, &c.hist, false); err != nil {
				return err
			}
		}
		for _, c := range []*channel{c0, c1} {
			if err := parseNoise(r, &c.fd, t, &c.hist, false); err != nil {
				return err
			}
		}
	}
	parseSinusoidal(r, &c0.fd, t)
	parseSinusoidal(r, &c1.fd, t)
	c0.hist.remember(&c0.fd)
	c1.hist.remember(&c1.fd)
	if d.coupling {
		dequantizeCoupled(&c0.lv, &c1.lv, &c0.fd, &c1.fd, t)
	} else {
		c0.lv.dequantize(&c0.fd, t)
		c1.lv.dequantize(&c1.fd, t)
	}
	return d.parseExtended(r)
}

// parseExtended reads the extended data of sbr_data. Parametric stereo is
// decoded for single channel elements, everything else is skipped.
func (d *Decoder) parseExtended(r *bits.Reader) error {
	if r.Get1Bit() == 0 {
		return nil
	}
	cnt := r.GetBits(4)
	if cnt == 15 {
		cnt += r.GetBits(8)
	}
	left := 8 * int(cnt)
	for left > 7 {
		id := r.GetBits(2)
		left -= 2
		if id != extensionPS || d.cfg.Pair {
			break
		}
		if d.ps == nil {
			d.ps = ps.NewDecoder(d.slots)
		}
		start := r.ProcessedBits()
		if err := d.ps.Parse(r); err != nil {
			return err
		}
		d.psUsed = true
		left -= int(r.ProcessedBits() - start)
		if left < 0 {
			return ErrPayloadOverrun
		}
	}
	r.FlushBits(uint(left))
	return nil
}

// Process runs SBR on the core output in of channel ch and writes
// OutputLength samples to out.
func (d *Decoder) Process(ch int, in, out []float32) {
	c := d.ch[ch]
	d.transform(c, in)
	d.synthesize(c, c.x, out)
}

// ProcessPS runs SBR on the mono core output and derives a stereo pair
// with parametric stereo. Without PS data both outputs carry the mono
// signal.
func (d *Decoder) ProcessPS(in, left, right []float32) {
	c := d.ch[0]
	d.transform(c, in)
	if d.ch[1] == nil {
		d.ch[1] = newChannel(d.slots, d.bands)
	}
	r := d.ch[1]
	if d.ps == nil || !d.psUsed {
		for l := range c.x {
			r.x[l] = c.x[l]
		}
	} else {
		d.ps.Process(c.x, r.x)
	}
	d.synthesize(c, c.x, left)
	d.synthesize(r, r.x, right)
}

// transform analyses one frame of core output, regenerates the high band
// and assembles the subband matrix for synthesis in c.x.
func (d *Decoder) transform(c *channel, in []float32) {
	copy(c.xLow[:tHFGen], c.xLow[d.slots:d.slots+tHFGen])
	for l := 0; l < d.slots; l++ {
		row := &c.xLow[tHFGen+l]
		c.analysis.slot(in[32*l:32*l+32], row[:32])
		clear(row[32:])
	}

	kx, m, first := 32, 0, 0
	if d.valid {
		kx, m = d.tables.kx, d.tables.m
	}
	if d.valid && d.frameOK && !c.consumed {
		c.consumed = true
		fd := &c.fd
		c.chirp.update(fd.invf[:d.tables.nQ])
		generateHF(c.xLow, c.xHigh, &d.tables, &fd.grid, &c.chirp, d.slots)
		c.adj.adjustHF(c.xHigh, c.y, &c.lv, fd, &c.prevHarmonic, &d.tables, &d.header)
		clear(c.prevHarmonic[:])
		if fd.addHarmonicFlag {
			copy(c.prevHarmonic[:], fd.addHarmonic[:])
		}
		first = rate * fd.borders[0]
	} else {
		for l := range c.y {
			clear(c.y[l][:])
		}
		m = 0
	}

	for l := 0; l < d.slots; l++ {
		row := &c.x[l]
		clear(row[:])
		copy(row[:kx], c.xLow[l+tHFAdj][:kx])
		src := &c.y[l+tHFAdj]
		if l < first {
			src = &c.yPrev[l+d.slots+tHFAdj]
		}
		copy(row[kx:kx+m], src[kx:kx+m])
	}
	c.y, c.yPrev = c.yPrev, c.y
}

func (d *Decoder) synthesize(c *channel, x [][64]complex64, out []float32) {
	for l := range x {
		c.synthesis.slot(x[l][:], out[l*d.bands:(l+1)*d.bands])
	}
}
