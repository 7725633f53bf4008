package aac

import (
	"go.uber.org/zap"

	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/output"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// id3v1Size is the size of an ID3v1 tag, which some files append after
// the last frame.
const id3v1Size = 128

// frameElement records where a channel element of the current frame put
// its channels.
type frameElement struct {
	id    syntax.ElementID
	tag   uint8
	first int
}

// frame is the bookkeeping of the raw data block being decoded.
type frame struct {
	elements int // syntax elements read, fill elements after a channel element excluded
	channels int
	lfe      int
	firstID  syntax.ElementID
	chElems  []frameElement
	ps       bool

	// planes holds, per decoded channel, the time signal to output.
	planes [MaxChannels][]float32
	length int
}

func (f *frame) reset() {
	f.elements = 0
	f.channels = 0
	f.lfe = 0
	f.firstID = syntax.InvalidElementID
	f.chElems = f.chElems[:0]
	f.ps = false
	f.length = 0
}

// Decode decodes the frame at the start of buf. The samples are returned
// interleaved as []int16, []int32, []float32 or []float64 depending on
// Config.OutputFormat; the slice is reused by the next call. On error the
// returned error is the Error also stored in the frame info.
func (d *Decoder) Decode(buf []byte) (any, *FrameInfo, error) {
	info := &FrameInfo{}
	samples, err := d.decode(buf, info)
	if err != nil {
		return nil, info, err
	}
	return samples, info, nil
}

// DecodeInto decodes like Decode and writes the samples to out in little
// endian byte order. out must hold FrameInfo.Samples samples of the
// configured format.
func (d *Decoder) DecodeInto(buf []byte, out []byte) (*FrameInfo, error) {
	info := &FrameInfo{}
	samples, err := d.decode(buf, info)
	if err != nil {
		return info, err
	}
	size := output.Format(d.cfg.OutputFormat).SampleSize()
	if len(out) < int(info.Samples)*size {
		info.Error = ErrOutputBufferTooSmall
		return info, ErrOutputBufferTooSmall
	}
	if samples != nil {
		output.PutLittleEndian(samples, out)
	}
	return info, nil
}

func (d *Decoder) decode(buf []byte, info *FrameInfo) (any, error) {
	switch d.state {
	case stateClosed:
		return nil, ErrDecoderClosed
	case stateOpen:
		return nil, ErrNotInitialised
	}
	info.ObjectType = ObjectType(d.stream.ObjectType)
	info.HeaderType = d.header
	info.SampleRate = d.outputRate()

	if len(buf) >= id3v1Size && string(buf[:3]) == "TAG" {
		info.BytesConsumed = id3v1Size
		return nil, nil
	}
	if d.resetPending {
		d.silence()
		d.resetPending = false
	}

	consumed, err := d.decodeFrame(buf, info)
	if err != nil {
		code := codeOf(err)
		info.Error = code
		d.silence()
		d.log.Debug("frame error",
			zap.Uint32("frame", d.frames),
			zap.Int("code", int(code)),
			zap.Error(err),
		)
		return nil, code
	}
	info.BytesConsumed = consumed
	d.frames++
	return d.emit(info), nil
}

// decodeFrame reads the transport header and raw data block at the start
// of buf and reconstructs every channel. It returns the number of bytes the
// frame occupies. When an ADTS frame fails, info.BytesConsumed covers its
// header so that the caller can search for the next syncword.
func (d *Decoder) decodeFrame(buf []byte, info *FrameInfo) (uint32, error) {
	r := bits.NewReader(buf)
	var end uint32
	switch d.header {
	case HeaderTypeADTS:
		var h syntax.ADTSHeader
		if err := syntax.ParseADTS(r, &h, d.cfg.UseOldADTSFormat); err != nil {
			return 0, err
		}
		start := r.ProcessedBits()/8 - uint32(h.HeaderSize())
		end = start + uint32(h.AACFrameLength)
		if int(h.AACFrameLength) < h.HeaderSize() || int(end) > len(buf) {
			return 0, ErrInputBufferTooSmall
		}
		info.BytesConsumed = start + uint32(h.HeaderSize())
		d.stream.ChannelConfig = h.ChannelConfiguration
	case HeaderTypeLATM:
		n, err := syntax.ParseLOASFrame(r, &d.latm)
		if err != nil {
			return 0, err
		}
		if err := d.followLATM(); err != nil {
			return 0, err
		}
		end = (r.ProcessedBits() + 8*uint32(n) + d.latm.OtherDataLenBits + 7) / 8
		if int(end) > len(buf) {
			return 0, ErrInputBufferTooSmall
		}
	}

	if err := d.rawDataBlock(r); err != nil {
		return 0, err
	}
	if err := d.applySBR(); err != nil {
		return 0, err
	}
	r.ByteAlign()
	if r.Error() {
		return 0, ErrInputBufferTooSmall
	}
	if end == 0 {
		end = r.ProcessedBits() / 8
	}
	return end, nil
}

// followLATM reconfigures the decoder when a LATM stream switched to a new
// AudioSpecificConfig.
func (d *Decoder) followLATM() error {
	asc := d.latm.ASC
	if asc.ObjectType == d.stream.ObjectType &&
		asc.SampleRate == d.coreRate &&
		asc.ChannelsConfiguration == d.stream.ChannelConfig &&
		asc.FrameLength() == d.stream.FrameLength {
		return nil
	}
	d.log.Debug("LATM configuration changed")
	latm := d.latm
	if err := d.configure(&asc, HeaderTypeLATM); err != nil {
		return err
	}
	d.latm = latm
	return nil
}

// rawDataBlock reads raw_data_block (Table 4.3), reconstructing each
// channel element as soon as it and its trailing fill element are read.
// Error resilient streams carry no element ids; their element order
// follows from the channel configuration.
func (d *Decoder) rawDataBlock(r *bits.Reader) error {
	f := &d.fr
	f.reset()

	if d.stream.ER() {
		order, err := syntax.ERElementOrder(d.stream.ChannelConfig)
		if err != nil {
			return err
		}
		for _, id := range order {
			if err := d.channelElement(r, id); err != nil {
				return err
			}
		}
		return nil
	}

	for {
		id := syntax.ReadElementID(r)
		if r.Error() {
			return syntax.ErrBitstreamRead
		}
		if id == syntax.IDEND {
			return nil
		}
		f.elements++
		if f.elements > syntax.MaxSyntaxElements {
			return ErrMaxBitstreamElements
		}
		if f.firstID == syntax.InvalidElementID {
			f.firstID = id
		}

		var err error
		switch id {
		case syntax.IDSCE, syntax.IDCPE, syntax.IDLFE:
			err = d.channelElement(r, id)
		case syntax.IDCCE:
			err = syntax.ParseCouplingChannelElement(r, &d.cce, &d.stream)
		case syntax.IDDSE:
			syntax.ParseDataStreamElement(r)
		case syntax.IDPCE:
			err = d.programConfig(r)
		case syntax.IDFIL:
			err = syntax.ParseFillElement(r, &d.drcInfo, nil)
		}
		if err != nil {
			return err
		}
		if r.Error() {
			return syntax.ErrBitstreamRead
		}
	}
}

// programConfig reads a program config element, which is only allowed as
// the first element of a frame, and makes it the channel mapping.
func (d *Decoder) programConfig(r *bits.Reader) error {
	if d.fr.elements != 1 {
		return syntax.ErrPCENotFirst
	}
	var pce syntax.ProgramConfig
	if err := syntax.ParsePCE(r, &pce); err != nil {
		return err
	}
	d.pce = pce
	d.pceSet = true
	return nil
}
