package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	aac "github.com/llehouerou/go-heaac"
	"github.com/llehouerou/go-heaac/internal/container"
)

const inputBufferSize = 64 << 10

var formats = map[string]aac.OutputFormat{
	"16":     aac.OutputFormat16Bit,
	"24":     aac.OutputFormat24Bit,
	"32":     aac.OutputFormat32Bit,
	"float":  aac.OutputFormatFloat,
	"double": aac.OutputFormatDouble,
}

// source hands out input to decode. Framed sources return whole frames;
// unframed ones return everything left and advance by what the decoder
// consumed.
type source interface {
	Next() ([]byte, error)
	Advance(n int)
}

// frameSource reads whole frames from a Scanner. A frame passed to unread
// is returned again by the next call to Next.
type frameSource struct {
	s       *container.Scanner
	pending []byte
}

func (f *frameSource) Next() ([]byte, error) {
	if b := f.pending; b != nil {
		f.pending = nil
		return b, nil
	}
	return f.s.Next()
}

func (*frameSource) Advance(int) {}

func (f *frameSource) unread(b []byte) { f.pending = b }

type bufferSource struct{ data []byte }

func (b *bufferSource) Next() ([]byte, error) {
	if len(b.data) == 0 {
		return nil, io.EOF
	}
	return b.data, nil
}

func (b *bufferSource) Advance(n int) {
	b.data = b.data[min(n, len(b.data)):]
}

// stats accumulates what the summary line reports.
type stats struct {
	frames  int
	errors  int
	samples uint64
	levels  []float64
	info    aac.FrameInfo
}

func (s *stats) add(samples any, info *aac.FrameInfo) {
	s.frames++
	s.samples += uint64(info.Samples)
	s.info = *info
	s.levels = append(s.levels, meanLevel(samples))
}

// meanLevel returns the mean absolute sample value of a frame relative to
// full scale.
func meanLevel(samples any) float64 {
	var abs []float64
	switch v := samples.(type) {
	case []int16:
		for _, x := range v {
			abs = append(abs, math.Abs(float64(x))/32768)
		}
	case []int32:
		for _, x := range v {
			abs = append(abs, math.Abs(float64(x))/(1<<31))
		}
	case []float32:
		for _, x := range v {
			abs = append(abs, math.Abs(float64(x)))
		}
	case []float64:
		for _, x := range v {
			abs = append(abs, math.Abs(x))
		}
	}
	if len(abs) == 0 {
		return 0
	}
	return stat.Mean(abs, nil)
}

func (s *stats) meanDBFS() float64 {
	if len(s.levels) == 0 {
		return math.Inf(-1)
	}
	m := stat.Mean(s.levels, nil)
	if m == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(m)
}

// decoderConfig turns the flags into a decoder configuration.
func decoderConfig(o options) (aac.Config, error) {
	f, ok := formats[o.format]
	if !ok {
		return aac.Config{}, errors.Errorf("unknown sample format %q", o.format)
	}
	return aac.Config{
		DefObjectType:           aac.ObjectType(o.objectType),
		DefSampleRate:           uint32(o.sampleRate),
		OutputFormat:            f,
		DownMatrix:              o.downmix,
		UseOldADTSFormat:        o.oldADTS,
		DontUpSampleImplicitSBR: o.noImplicitSBR,
	}, nil
}

// openSource detects the framing of r and returns the source to decode
// from.
func openSource(r io.Reader, log *zap.Logger) (source, container.Kind, error) {
	br := bufio.NewReaderSize(r, inputBufferSize)
	if n, err := container.SkipID3v2(br); err != nil {
		return nil, 0, err
	} else if n > 0 {
		log.Debug("skipped ID3v2 tag", zap.Int("bytes", n))
	}

	kind := container.Detect(br)
	switch kind {
	case container.KindTS:
		ts := container.NewTSReader(br)
		if err := ts.Prime(); err != nil {
			return nil, kind, errors.Wrap(err, "find AAC stream")
		}
		log.Debug("transport stream", zap.Uint8("streamType", ts.StreamType()))
		return &frameSource{s: container.NewScanner(ts, ts.Kind())}, ts.Kind(), nil
	case container.KindADTS, container.KindLOAS:
		return &frameSource{s: container.NewScanner(br, kind)}, kind, nil
	}
	data, err := io.ReadAll(br)
	if err != nil {
		return nil, kind, errors.Wrap(err, "read input")
	}
	return &bufferSource{data: data}, kind, nil
}

func run(o options, log *zap.Logger, stdout io.Writer) error {
	cfg, err := decoderConfig(o)
	if err != nil {
		return err
	}
	in, err := openInput(o.input)
	if err != nil {
		return err
	}
	defer in.Close()

	src, kind, err := openSource(in, log)
	if err != nil {
		return err
	}
	log.Info("input", zap.String("name", o.input), zap.Stringer("framing", kind))

	dec := aac.NewDecoder()
	defer dec.Close()
	dec.SetLogger(log.Named("decoder"))
	if !dec.SetConfiguration(cfg) {
		return errors.New("invalid decoder configuration")
	}

	first, err := src.Next()
	if err != nil {
		if err == io.EOF {
			return errors.New("empty input")
		}
		return errors.Wrap(err, "read first frame")
	}
	var res aac.InitResult
	if o.asc != "" {
		asc, err := hex.DecodeString(o.asc)
		if err != nil {
			return errors.Wrap(err, "parse -asc")
		}
		res, err = dec.Init2(asc)
		if err != nil {
			return errors.Wrap(err, "init from AudioSpecificConfig")
		}
	} else {
		res, err = dec.Init(first)
		if err != nil {
			return errors.Wrap(err, "init")
		}
		src.Advance(int(res.BytesRead))
	}
	// The first frame only configured the decoder; it still has to be
	// decoded.
	if f, ok := src.(*frameSource); ok {
		f.unread(first)
	}
	log.Info("stream",
		zap.Uint32("sampleRate", res.SampleRate),
		zap.Uint8("channels", res.Channels),
		zap.Uint32("coreRate", dec.SampleRate()),
		zap.Uint16("frameLength", dec.FrameLength()),
		zap.Uint8("objectType", uint8(dec.ObjectType())),
	)
	if o.infoOnly {
		fmt.Fprintf(stdout, "%s: %s, object type %d, %d Hz, %d channels\n",
			o.input, kind, dec.ObjectType(), res.SampleRate, res.Channels)
		return nil
	}

	out, closeOut, err := openSink(o, cfg.OutputFormat, stdout)
	if err != nil {
		return err
	}
	st, err := decodeAll(dec, src, out, o.maxFrames, log)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	dur := time.Duration(0)
	if st.info.SampleRate > 0 && st.info.Channels > 0 {
		perChannel := st.samples / uint64(st.info.Channels)
		dur = time.Duration(perChannel) * time.Second / time.Duration(st.info.SampleRate)
	}
	log.Info("done",
		zap.Int("frames", st.frames),
		zap.Int("errors", st.errors),
		zap.Duration("duration", dur),
		zap.Float64("meanLevelDBFS", st.meanDBFS()),
		zap.Uint8("sbr", uint8(st.info.SBR)),
		zap.Uint8("ps", st.info.PS),
	)
	return nil
}

// openSink creates the output and returns the function that finishes it.
func openSink(o options, f aac.OutputFormat, stdout io.Writer) (sink, func() error, error) {
	if o.output == "-" {
		s := newRawSink(stdout, f)
		return s, s.Close, nil
	}
	name := o.output
	if name == "" {
		name = outputName(o.input)
		if o.raw {
			name = name[:len(name)-len(".wav")] + ".pcm"
		}
	}
	file, err := os.Create(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}
	var s sink
	if o.raw {
		s = newRawSink(file, f)
	} else {
		s, err = newWAVSink(file, f)
		if err != nil {
			file.Close()
			os.Remove(name)
			return nil, nil, err
		}
	}
	closeAll := func() error {
		serr := s.Close()
		ferr := file.Close()
		if serr != nil {
			return serr
		}
		return errors.Wrap(ferr, "close output")
	}
	return s, closeAll, nil
}

// decodeAll decodes every frame of src into out. Damaged frames are
// logged and skipped.
func decodeAll(dec *aac.Decoder, src source, out sink, maxFrames int, log *zap.Logger) (*stats, error) {
	st := &stats{}
	for maxFrames <= 0 || st.frames+st.errors < maxFrames {
		buf, err := src.Next()
		if err == io.EOF {
			break
		}
		if errors.Is(err, container.ErrNoSync) {
			log.Warn("trailing data without syncword")
			break
		}
		if err != nil {
			return st, err
		}

		samples, info, err := dec.Decode(buf)
		if info.BytesConsumed == 0 && err != nil {
			// Unframed input cannot be resynchronised.
			if _, framed := src.(*frameSource); !framed {
				return st, errors.Wrap(err, "decode")
			}
		}
		src.Advance(int(info.BytesConsumed))
		if err != nil {
			st.errors++
			log.Warn("frame skipped",
				zap.Int("frame", st.frames+st.errors),
				zap.Int("code", int(info.Error)),
				zap.Error(err),
			)
			continue
		}
		if samples == nil {
			if _, framed := src.(*frameSource); !framed && info.BytesConsumed == 0 {
				break
			}
			continue
		}
		if err := out.Write(samples, info); err != nil {
			return st, err
		}
		st.add(samples, info)
	}
	return st, nil
}
