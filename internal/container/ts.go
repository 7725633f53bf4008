package container

import (
	"io"

	"github.com/Comcast/gots/packet"
	"github.com/Comcast/gots/pes"
	"github.com/Comcast/gots/psi"
	"github.com/pkg/errors"
)

const (
	tsPacketSize = packet.PacketSize
	tsSyncByte   = 0x47
	patPID       = 0
)

// Elementary stream types carrying AAC.
const (
	StreamTypeADTS = 0x0F
	StreamTypeLATM = 0x11
)

// Errors returned by TSReader.
var (
	ErrTSSync      = errors.New("container: lost transport stream sync")
	ErrNoAACStream = errors.New("container: no AAC stream in transport stream")
)

// TSReader reads the AAC elementary stream of the first program of an
// MPEG transport stream. PES headers are stripped, so the bytes read are
// ADTS or LOAS frames as announced by StreamType.
type TSReader struct {
	r   io.Reader
	pkt packet.Packet

	pmtPID     int
	audioPID   int
	streamType uint8

	pes     []byte
	out     []byte
	pending []byte
	packets int64
	err     error
}

// NewTSReader returns a reader over the AAC stream carried by r.
func NewTSReader(r io.Reader) *TSReader {
	return &TSReader{r: r, pmtPID: -1, audioPID: -1}
}

// StreamType returns the stream type of the AAC stream, or 0 before its
// program map table has been read.
func (t *TSReader) StreamType() uint8 {
	return t.streamType
}

// Kind returns the framing of the AAC stream, KindRaw while unknown.
func (t *TSReader) Kind() Kind {
	switch t.streamType {
	case StreamTypeADTS:
		return KindADTS
	case StreamTypeLATM:
		return KindLOAS
	}
	return KindRaw
}

// Packets returns the number of transport packets read.
func (t *TSReader) Packets() int64 {
	return t.packets
}

// Prime reads packets until the AAC stream has been found in the program
// map table.
func (t *TSReader) Prime() error {
	for t.audioPID < 0 && len(t.pending) == 0 {
		if t.err != nil {
			if t.err == io.EOF {
				return ErrNoAACStream
			}
			return t.err
		}
		t.readPacket()
	}
	return nil
}

func (t *TSReader) Read(p []byte) (int, error) {
	for len(t.pending) == 0 {
		if t.err != nil {
			if t.err == io.EOF && t.audioPID < 0 {
				return 0, ErrNoAACStream
			}
			return 0, t.err
		}
		t.readPacket()
	}
	n := copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, nil
}

// readPacket handles one transport packet. A completed PES payload moves
// to pending; errors are kept in t.err.
func (t *TSReader) readPacket() {
	if _, err := io.ReadFull(t.r, t.pkt[:]); err != nil {
		t.flush()
		switch err {
		case io.EOF:
			t.err = io.EOF
		case io.ErrUnexpectedEOF:
			t.err = errors.Wrapf(err, "container: transport packet %d truncated", t.packets)
		default:
			t.err = errors.Wrap(err, "container: read transport packet")
		}
		return
	}
	t.packets++
	if t.pkt[0] != tsSyncByte {
		t.flush()
		t.err = errors.Wrapf(ErrTSSync, "packet %d", t.packets)
		return
	}

	switch pid := int(t.pkt.PID()); {
	case pid == patPID:
		if t.pmtPID >= 0 {
			return
		}
		pat, err := psi.NewPAT(t.pkt[:])
		if err != nil {
			t.err = errors.Wrap(err, "container: parse PAT")
			return
		}
		prog := -1
		for num, pmt := range pat.ProgramMap() {
			if n := int(num); n != 0 && (prog < 0 || n < prog) {
				prog, t.pmtPID = n, int(pmt)
			}
		}
	case pid == t.pmtPID && t.audioPID < 0:
		payload, err := t.pkt.Payload()
		if err != nil {
			t.err = errors.Wrap(err, "container: PMT payload")
			return
		}
		pmt, err := psi.NewPMT(payload)
		if err != nil {
			t.err = errors.Wrap(err, "container: parse PMT")
			return
		}
		for _, es := range pmt.ElementaryStreams() {
			if st := uint8(es.StreamType()); st == StreamTypeADTS || st == StreamTypeLATM {
				t.audioPID = int(es.ElementaryPid())
				t.streamType = st
				break
			}
		}
	case pid == t.audioPID:
		payload, err := t.pkt.Payload()
		if err != nil {
			return
		}
		if !t.pkt.PayloadUnitStartIndicator() {
			t.pes = append(t.pes, payload...)
			return
		}
		t.flush()
		h, err := pes.NewPESHeader(payload)
		if err != nil {
			t.err = errors.Wrapf(err, "container: parse PES header in packet %d", t.packets)
			return
		}
		t.pes = append(t.pes, h.Data()...)
	}
}

// flush hands the PES payload collected so far to the reader. It is only
// called once pending has been drained.
func (t *TSReader) flush() {
	if len(t.pes) == 0 {
		return
	}
	t.out, t.pes = t.pes, t.out[:0]
	t.pending = t.out
}
