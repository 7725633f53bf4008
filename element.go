package aac

import (
	"go.uber.org/zap"

	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/sbr"
	"github.com/llehouerou/go-heaac/internal/spectrum"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// channelElement parses and reconstructs a single channel, LFE or channel
// pair element. In the non resilient syntax a fill element directly after
// it carries the element's SBR data.
func (d *Decoder) channelElement(r *bits.Reader, id syntax.ElementID) error {
	f := &d.fr
	idx := len(f.chElems)
	if idx >= syntax.MaxSyntaxElements {
		return ErrMaxBitstreamElements
	}
	n := 1
	if id == syntax.IDCPE {
		n = 2
	}
	if f.channels+n > MaxChannels {
		return ErrInvalidNumChannels
	}

	el := &d.scratch
	var err error
	if id == syntax.IDCPE {
		err = syntax.ParseChannelPairElement(r, el, &d.stream)
	} else {
		err = syntax.ParseSingleChannelElement(r, el, id, &d.stream)
	}
	if err != nil {
		return err
	}

	if !d.stream.ER() && syntax.ElementID(r.ShowBits(syntax.LenSEID)) == syntax.IDFIL {
		r.FlushBits(syntax.LenSEID)
		h := sbrHandler{d: d, index: idx, pair: id == syntax.IDCPE}
		if err := syntax.ParseFillElement(r, &d.drcInfo, h); err != nil {
			return err
		}
	}

	f.chElems = append(f.chElems, frameElement{id: id, tag: el.Tag, first: f.channels})
	first := f.channels
	f.channels += n
	if id == syntax.IDLFE {
		f.lfe++
	}
	return d.reconstruct(el, first)
}

// reconstruct turns the parsed element into time samples: inverse
// quantisation, noise substitution, stereo tools, prediction, TNS and the
// synthesis filter bank.
func (d *Decoder) reconstruct(el *syntax.Element, first int) error {
	fl := d.stream.FrameLength
	c0 := d.channelState(first)
	if err := dequantize(&el.ICS1, c0.spec, fl); err != nil {
		return err
	}
	if el.ID != syntax.IDCPE {
		spectrum.PNS(&el.ICS1, nil, c0.spec, nil, false, d.rng, fl)
		d.synthesize(&el.ICS1, c0, first)
		return nil
	}

	c1 := d.channelState(first + 1)
	if err := dequantize(&el.ICS2, c1.spec, fl); err != nil {
		return err
	}
	spectrum.PNS(&el.ICS1, &el.ICS2, c0.spec, c1.spec, true, d.rng, fl)
	spectrum.MS(&el.ICS1, &el.ICS2, c0.spec, c1.spec, fl)
	spectrum.IS(&el.ICS1, &el.ICS2, c0.spec, c1.spec, fl)
	d.synthesize(&el.ICS1, c0, first)
	d.synthesize(&el.ICS2, c1, first+1)
	return nil
}

func dequantize(ics *syntax.ICStream, spec []float32, fl uint16) error {
	if ics.PulseDataPresent {
		if err := spectrum.ApplyPulses(ics, fl); err != nil {
			return err
		}
	}
	return spectrum.Dequantize(ics, spec, fl)
}

// synthesize runs the per channel tools on the dequantised spectrum of c
// and the filter bank that produces c.time.
func (d *Decoder) synthesize(ics *syntax.ICStream, c *channel, ch int) {
	fl := d.stream.FrameLength
	sr := d.stream.SRIndex
	ot := d.stream.ObjectType
	ld := ot == syntax.ObjectTypeLD

	switch {
	case ot == syntax.ObjectTypeMain:
		spectrum.Predict(ics, c.pred, c.spec, sr, fl)
	case ot.IsLTP():
		if ld {
			if ics.LTP.LagUpdate {
				c.ltpLag = ics.LTP.Lag
			}
			ics.LTP.Lag = c.ltpLag
		}
		d.ltp.Predict(ics, &ics.LTP, c.spec, c.ltpHist, c.prevShape, sr, fl)
	}
	spectrum.TNSDecode(ics, sr, c.spec, fl)
	if d.drc.Applies(&d.drcInfo, ch) {
		d.drc.Apply(&d.drcInfo, c.spec)
	}
	d.fb.Inverse(ics.WindowSequence, ics.WindowShape, c.prevShape, c.spec, c.time, c.overlap)
	if ot.IsLTP() {
		spectrum.UpdateLTPHistory(c.ltpHist, c.time, c.overlap, fl, ld)
	}
	c.prevShape = ics.WindowShape
}

// sbrHandler hands the SBR payload of a fill element to the SBR decoder
// of the channel element before it, creating the decoder on first use.
type sbrHandler struct {
	d     *Decoder
	index int
	pair  bool
}

func (h sbrHandler) SBRExtension(r *bits.Reader, cnt uint16) error {
	s := h.d.sbrFor(h.index, h.pair)
	if s == nil {
		return nil
	}
	if !h.d.sbrActive {
		h.d.sbrActive = true
		h.d.log.Debug("SBR data found", zap.Int("element", h.index))
	}
	wasPS := s.PSActive()
	if err := s.SBRExtension(r, cnt); err != nil {
		return err
	}
	if s.Rebuilt() {
		h.d.log.Debug("SBR tables rebuilt",
			zap.Int("element", h.index),
			zap.Int("kx", s.Tables().Kx),
			zap.Int("m", s.Tables().M),
		)
	}
	if !wasPS && s.PSActive() {
		h.d.log.Debug("parametric stereo found", zap.Int("element", h.index))
	}
	return nil
}

// sbrFor returns the SBR decoder of channel element index, creating it
// when the element has none or changed between single and pair. It
// returns nil when the stream cannot carry SBR.
func (d *Decoder) sbrFor(index int, pair bool) *sbr.Decoder {
	e := &d.el[index]
	if e.sbr != nil && e.pair == pair {
		return e.sbr
	}
	s, err := sbr.NewDecoder(sbr.Config{
		SampleRate:  2 * d.coreRate,
		FrameLength: d.stream.FrameLength,
		Pair:        pair,
		DownSampled: d.downSampled,
	})
	if err != nil {
		d.log.Debug("SBR unavailable", zap.Int("element", index), zap.Error(err))
		return nil
	}
	n := s.OutputLength()
	*e = element{sbr: s, pair: pair}
	e.out[0] = make([]float32, n)
	e.out[1] = make([]float32, n)
	d.log.Debug("SBR decoder created",
		zap.Int("element", index),
		zap.Bool("pair", pair),
		zap.Bool("downSampled", d.downSampled),
	)
	return s
}

// applySBR collects the output planes of the frame. Without SBR they are
// the core channels; with SBR every channel element runs through its SBR
// decoder, and a lone single channel element may become a parametric
// stereo pair.
func (d *Decoder) applySBR() error {
	f := &d.fr
	if !d.sbrActive {
		for ch := 0; ch < f.channels; ch++ {
			f.planes[ch] = d.ch[ch].time
		}
		f.length = int(d.stream.FrameLength)
		return nil
	}

	lone := len(f.chElems) == 1 && f.chElems[0].id == syntax.IDSCE
	for i, fe := range f.chElems {
		pair := fe.id == syntax.IDCPE
		s := d.sbrFor(i, pair)
		if s == nil {
			return ErrSBRNotInitialised
		}
		e := &d.el[i]
		c0 := d.ch[fe.first]
		switch {
		case pair:
			s.Process(0, c0.time, e.out[0])
			s.Process(1, d.ch[fe.first+1].time, e.out[1])
			f.planes[fe.first] = e.out[0]
			f.planes[fe.first+1] = e.out[1]
		case lone && (s.PSActive() || d.psPresent):
			s.ProcessPS(c0.time, e.out[0], e.out[1])
			f.planes[0] = e.out[0]
			f.planes[1] = e.out[1]
			f.ps = true
		default:
			s.Process(0, c0.time, e.out[0])
			f.planes[fe.first] = e.out[0]
		}
		f.length = s.OutputLength()
	}
	if f.ps && !d.psStereo {
		d.psStereo = true
		d.log.Debug("parametric stereo output")
	}
	return nil
}
