package container

import (
	"bufio"

	"github.com/pkg/errors"
)

const id3v2HeaderSize = 10

// SkipID3v2 discards an ID3v2 tag at the start of r and returns its size.
func SkipID3v2(r *bufio.Reader) (int, error) {
	h, err := r.Peek(id3v2HeaderSize)
	if err != nil || string(h[:3]) != "ID3" {
		return 0, nil
	}
	// The tag size is a 28 bit syncsafe integer; a footer adds another
	// header's worth.
	size := int(h[6]&0x7F)<<21 | int(h[7]&0x7F)<<14 | int(h[8]&0x7F)<<7 | int(h[9]&0x7F)
	size += id3v2HeaderSize
	if h[5]&0x10 != 0 {
		size += id3v2HeaderSize
	}
	n, err := r.Discard(size)
	if err != nil {
		return n, errors.Wrap(err, "container: skip ID3v2 tag")
	}
	return n, nil
}

// Detect looks at the start of r, without consuming it, and reports the
// framing of the stream.
func Detect(r *bufio.Reader) Kind {
	if b, err := r.Peek(2*tsPacketSize + 1); err == nil &&
		b[0] == tsSyncByte && b[tsPacketSize] == tsSyncByte && b[2*tsPacketSize] == tsSyncByte {
		return KindTS
	}
	b, _ := r.Peek(4)
	switch {
	case len(b) >= 4 && string(b) == "ADIF":
		return KindADIF
	case len(b) >= 2 && isADTS(b):
		return KindADTS
	case len(b) >= 2 && isLOAS(b):
		return KindLOAS
	}
	return KindRaw
}
