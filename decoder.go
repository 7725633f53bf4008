package aac

import (
	"go.uber.org/zap"

	"github.com/llehouerou/go-heaac/internal/filterbank"
	"github.com/llehouerou/go-heaac/internal/output"
	"github.com/llehouerou/go-heaac/internal/sbr"
	"github.com/llehouerou/go-heaac/internal/spectrum"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

type state uint8

const (
	stateOpen state = iota
	stateReady
	stateClosed
)

// channel is the persistent state of one decoded channel. Buffers are
// allocated the first time a frame uses the channel.
type channel struct {
	spec      []float32
	time      []float32
	overlap   []float32
	prevShape uint8

	// Long term prediction history and the lag low delay streams carry
	// over from frame to frame.
	ltpHist []int16
	ltpLag  uint16

	pred []spectrum.PredState
}

func newChannel(frameLength uint16, ot ObjectType) *channel {
	n := int(frameLength)
	c := &channel{
		spec:    make([]float32, n),
		time:    make([]float32, n),
		overlap: make([]float32, n),
	}
	if syntax.ObjectType(ot).IsLTP() {
		c.ltpHist = make([]int16, spectrum.HistoryLength(frameLength))
	}
	if ot == ObjectTypeMain {
		c.pred = make([]spectrum.PredState, n)
		spectrum.ResetPredictors(c.pred)
	}
	return c
}

// silence drops everything the channel carries into the next frame.
func (c *channel) silence() {
	clear(c.overlap)
	clear(c.ltpHist)
	c.ltpLag = 0
	c.prevShape = 0
	if c.pred != nil {
		spectrum.ResetPredictors(c.pred)
	}
}

// element is the persistent state of a channel element position in the
// raw data block: its SBR decoder and the buffers SBR writes to.
type element struct {
	sbr  *sbr.Decoder
	pair bool
	out  [2][]float32
}

// Decoder decodes one AAC stream. It is not safe for concurrent use.
type Decoder struct {
	cfg   Config
	state state
	log   *zap.Logger

	header HeaderType
	latm   syntax.LATMConfig
	stream syntax.StreamConfig
	// coreRate is the sampling rate of the AAC core.
	coreRate uint32

	// SBR signalling. sbrActive is set once SBR is expected or found and
	// from then on every channel element runs through an SBR decoder.
	sbrActive   bool
	forceUp     bool
	downSampled bool
	psPresent   bool
	// psStereo is set once parametric stereo has turned a mono stream
	// into stereo; the stream stays stereo from then on.
	psStereo bool

	pce    syntax.ProgramConfig
	pceSet bool

	fb  *filterbank.FilterBank
	ltp *spectrum.LTP
	rng *spectrum.RNG
	drc *output.DRC

	drcInfo syntax.DRCInfo
	ch      [MaxChannels]*channel
	el      [syntax.MaxSyntaxElements]element

	// Scratch elements reused by every frame.
	scratch syntax.Element
	cce     syntax.Element

	fr      frame
	mapping []uint8
	pcm     output.Buffer
	frames  uint32
	// resetPending is set by PostSeekReset and consumed by the next frame.
	resetPending bool
}

// NewDecoder returns a decoder with the default configuration: Main
// object type at 44.1 kHz for raw streams and 16 bit output.
func NewDecoder() *Decoder {
	return &Decoder{
		cfg: Config{
			DefObjectType: ObjectTypeMain,
			DefSampleRate: 44100,
			OutputFormat:  OutputFormat16Bit,
		},
		log: zap.NewNop(),
		rng: spectrum.NewRNG(),
		drc: output.NewDRC(1, 1),
	}
}

// SetLogger sets the logger used for stream and error diagnostics. A nil
// logger disables logging.
func (d *Decoder) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	d.log = l
}

// Config returns the current configuration.
func (d *Decoder) Config() Config {
	return d.cfg
}

// SetConfiguration validates and installs cfg. It reports false and keeps
// the previous configuration when the default object type cannot be
// decoded, the default sample rate is zero or the output format is
// unknown. Call it before Init.
func (d *Decoder) SetConfiguration(cfg Config) bool {
	if d.state == stateClosed {
		return false
	}
	if !cfg.DefObjectType.decodable() || cfg.DefSampleRate == 0 {
		return false
	}
	if !output.Format(cfg.OutputFormat).Valid() {
		return false
	}
	d.cfg = cfg
	return true
}

// SampleRate returns the core sampling rate of the stream.
func (d *Decoder) SampleRate() uint32 {
	return d.coreRate
}

// FrameLength returns the number of core samples per channel and frame.
func (d *Decoder) FrameLength() uint16 {
	return d.stream.FrameLength
}

// ObjectType returns the object type of the AAC core.
func (d *Decoder) ObjectType() ObjectType {
	return ObjectType(d.stream.ObjectType)
}

// PostSeekReset prepares the decoder for input that does not continue the
// previous frame. The next frame starts from silent overlap and predictor
// state. frame sets the frame counter unless it is -1.
func (d *Decoder) PostSeekReset(frame int64) {
	d.resetPending = true
	if frame != -1 {
		d.frames = uint32(frame)
	}
}

// Close releases the decoder's buffers. Further calls fail with
// ErrDecoderClosed.
func (d *Decoder) Close() {
	d.ch = [MaxChannels]*channel{}
	d.el = [syntax.MaxSyntaxElements]element{}
	d.fb = nil
	d.ltp = nil
	d.pcm = output.Buffer{}
	d.state = stateClosed
}

// channelState returns the state of decoded channel i, allocating it on
// first use.
func (d *Decoder) channelState(i int) *channel {
	if d.ch[i] == nil {
		d.ch[i] = newChannel(d.stream.FrameLength, ObjectType(d.stream.ObjectType))
	}
	return d.ch[i]
}

// silence resets overlap, prediction and SBR state of every channel so
// that nothing of a damaged frame leaks into the next one.
func (d *Decoder) silence() {
	for _, c := range d.ch {
		if c != nil {
			c.silence()
		}
	}
	for i := range d.el {
		if s := d.el[i].sbr; s != nil {
			s.Reset()
		}
	}
}
