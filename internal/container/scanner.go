package container

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Kind is the framing of an AAC byte stream.
type Kind int

// Stream kinds.
const (
	KindRaw Kind = iota
	KindADTS
	KindLOAS
	KindADIF
	KindTS
)

func (k Kind) String() string {
	switch k {
	case KindADTS:
		return "adts"
	case KindLOAS:
		return "loas"
	case KindADIF:
		return "adif"
	case KindTS:
		return "mpegts"
	}
	return "raw"
}

const (
	adtsHeaderSize = 7
	loasHeaderSize = 3
	maxFrameSize   = 8191
)

// ErrNoSync is returned when no syncword is found before the end of the
// input.
var ErrNoSync = errors.New("container: no syncword found")

func isADTS(b []byte) bool {
	return b[0] == 0xFF && b[1]&0xF6 == 0xF0
}

func isLOAS(b []byte) bool {
	return b[0] == 0x56 && b[1]&0xE0 == 0xE0
}

// Scanner reads ADTS or LOAS frames from a byte stream. Bytes between
// frames that do not start with a syncword are skipped.
type Scanner struct {
	r       *bufio.Reader
	kind    Kind
	frame   []byte
	skipped int64
}

// NewScanner returns a Scanner for frames of kind k, which must be
// KindADTS or KindLOAS.
func NewScanner(r io.Reader, k Kind) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 2*maxFrameSize)
	}
	return &Scanner{r: br, kind: k}
}

// Skipped returns the number of bytes skipped while searching for
// syncwords.
func (s *Scanner) Skipped() int64 {
	return s.skipped
}

// Next returns the next frame, headers included. The slice is reused by
// the following call. Next returns io.EOF when the input ends at a frame
// boundary.
func (s *Scanner) Next() ([]byte, error) {
	hdrSize, match, length := adtsHeaderSize, isADTS, adtsLength
	if s.kind == KindLOAS {
		hdrSize, match, length = loasHeaderSize, isLOAS, loasLength
	}
	for {
		hdr, err := s.r.Peek(hdrSize)
		if err != nil {
			if err == io.EOF && len(hdr) == 0 {
				return nil, io.EOF
			}
			if err == io.EOF || err == bufio.ErrBufferFull {
				s.skipped += int64(len(hdr))
				return nil, ErrNoSync
			}
			return nil, errors.Wrap(err, "container: read header")
		}
		if !match(hdr) {
			s.r.Discard(1)
			s.skipped++
			continue
		}
		n := length(hdr)
		if n < hdrSize {
			s.r.Discard(1)
			s.skipped++
			continue
		}
		if cap(s.frame) < n {
			s.frame = make([]byte, n)
		}
		s.frame = s.frame[:n]
		if _, err := io.ReadFull(s.r, s.frame); err != nil {
			if err == io.ErrUnexpectedEOF {
				return nil, errors.Wrapf(err, "container: %s frame of %d bytes truncated", s.kind, n)
			}
			return nil, errors.Wrap(err, "container: read frame")
		}
		return s.frame, nil
	}
}

// adtsLength returns aac_frame_length, which includes the header.
func adtsLength(h []byte) int {
	return int(h[3]&0x03)<<11 | int(h[4])<<3 | int(h[5])>>5
}

// loasLength returns the size of an AudioSyncStream frame including its
// three byte header.
func loasLength(h []byte) int {
	return loasHeaderSize + (int(h[1]&0x1F)<<8 | int(h[2]))
}
