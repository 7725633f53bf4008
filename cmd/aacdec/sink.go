package main

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"

	aac "github.com/llehouerou/go-heaac"
	"github.com/llehouerou/go-heaac/internal/output"
)

// sink receives the decoded frames.
type sink interface {
	Write(samples any, info *aac.FrameInfo) error
	Close() error
}

// wavSink writes integer PCM to a WAV file. The encoder is created on the
// first frame, once the channel count and rate are known.
type wavSink struct {
	w     io.WriteSeeker
	depth int
	enc   *wav.Encoder
	buf   *audio.IntBuffer
}

func newWAVSink(w io.WriteSeeker, f aac.OutputFormat) (*wavSink, error) {
	var depth int
	switch f {
	case aac.OutputFormat16Bit:
		depth = 16
	case aac.OutputFormat24Bit:
		depth = 24
	case aac.OutputFormat32Bit:
		depth = 32
	default:
		return nil, errors.New("WAV output needs an integer sample format")
	}
	return &wavSink{w: w, depth: depth}, nil
}

func (s *wavSink) Write(samples any, info *aac.FrameInfo) error {
	if s.enc == nil {
		nc, sr := int(info.Channels), int(info.SampleRate)
		s.enc = wav.NewEncoder(s.w, sr, s.depth, nc, 1)
		s.buf = &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: nc, SampleRate: sr},
			SourceBitDepth: s.depth,
		}
	}
	data := s.buf.Data[:0]
	switch v := samples.(type) {
	case []int16:
		for _, x := range v {
			data = append(data, int(x))
		}
	case []int32:
		for _, x := range v {
			data = append(data, int(x))
		}
	default:
		return errors.Errorf("unexpected sample type %T", samples)
	}
	s.buf.Data = data
	return errors.Wrap(s.enc.Write(s.buf), "write WAV")
}

func (s *wavSink) Close() error {
	if s.enc == nil {
		return nil
	}
	return errors.Wrap(s.enc.Close(), "finish WAV")
}

// rawSink writes interleaved little endian samples.
type rawSink struct {
	w    io.Writer
	size int
	buf  []byte
}

func newRawSink(w io.Writer, f aac.OutputFormat) *rawSink {
	return &rawSink{w: w, size: output.Format(f).SampleSize()}
}

func (s *rawSink) Write(samples any, info *aac.FrameInfo) error {
	n := int(info.Samples) * s.size
	if cap(s.buf) < n {
		s.buf = make([]byte, n)
	}
	s.buf = s.buf[:n]
	output.PutLittleEndian(samples, s.buf)
	_, err := s.w.Write(s.buf)
	return errors.Wrap(err, "write PCM")
}

func (s *rawSink) Close() error { return nil }
