package container

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	testPMTPID   = 0x1000
	testAudioPID = 0x0101
)

// crc32MPEG computes the CRC of PSI sections.
func crc32MPEG(b []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, v := range b {
		crc ^= uint32(v) << 24
		for i := 0; i < 8; i++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ 0x04C11DB7
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// psiPacket wraps a table section in a transport packet.
func psiPacket(pid int, section []byte) []byte {
	crc := crc32MPEG(section)
	section = append(section, byte(crc>>24), byte(crc>>16), byte(crc>>8), byte(crc))
	pkt := []byte{tsSyncByte, 0x40 | byte(pid>>8), byte(pid), 0x10, 0x00}
	pkt = append(pkt, section...)
	for len(pkt) < tsPacketSize {
		pkt = append(pkt, 0xFF)
	}
	return pkt
}

func patPacket() []byte {
	return psiPacket(patPID, []byte{
		0x00, 0xB0, 0x0D, 0x00, 0x01, 0xC1, 0x00, 0x00,
		0x00, 0x01, 0xE0 | testPMTPID>>8, testPMTPID & 0xFF,
	})
}

func pmtPacket(streamType byte) []byte {
	return psiPacket(testPMTPID, []byte{
		0x02, 0xB0, 0x12, 0x00, 0x01, 0xC1, 0x00, 0x00,
		0xE0 | testAudioPID>>8, testAudioPID & 0xFF, 0xF0, 0x00,
		streamType, 0xE0 | testAudioPID>>8, testAudioPID & 0xFF, 0xF0, 0x00,
	})
}

// pesPackets carries data in one PES packet split over as many transport
// packets as needed. Short packets are padded with adaptation field
// stuffing.
func pesPackets(pid int, data []byte, cc *byte) []byte {
	n := 3 + 5 + len(data)
	pesData := []byte{0x00, 0x00, 0x01, 0xC0, byte(n >> 8), byte(n), 0x80, 0x80, 0x05, 0x21, 0x00, 0x01, 0x00, 0x01}
	pesData = append(pesData, data...)

	var out []byte
	first := true
	for len(pesData) > 0 {
		size := min(len(pesData), tsPacketSize-4)
		hdr := []byte{tsSyncByte, byte(pid >> 8), byte(pid), 0x10 | *cc&0x0F}
		if first {
			hdr[1] |= 0x40
		}
		*cc++
		if size < tsPacketSize-4 {
			hdr[3] |= 0x20
			size = min(size, tsPacketSize-5)
			stuff := tsPacketSize - 5 - size
			hdr = append(hdr, byte(stuff))
			if stuff > 0 {
				hdr = append(hdr, 0x00)
				hdr = append(hdr, bytes.Repeat([]byte{0xFF}, stuff-1)...)
			}
		}
		out = append(out, hdr...)
		out = append(out, pesData[:size]...)
		pesData = pesData[size:]
		first = false
	}
	return out
}

func TestTSReader(t *testing.T) {
	frames := [][]byte{
		adtsFrame(1, 2, 3),
		adtsFrame(bytes.Repeat([]byte{0x5A}, 250)...),
		adtsFrame(9),
	}
	var cc byte
	var ts []byte
	ts = append(ts, patPacket()...)
	ts = append(ts, pmtPacket(StreamTypeADTS)...)
	ts = append(ts, pesPackets(testAudioPID, concat(frames[0], frames[1]), &cc)...)
	ts = append(ts, patPacket()...)
	ts = append(ts, pesPackets(testAudioPID, frames[2], &cc)...)

	r := NewTSReader(bytes.NewReader(ts))
	if err := r.Prime(); err != nil {
		t.Fatalf("Prime: %v", err)
	}
	if r.StreamType() != StreamTypeADTS || r.Kind() != KindADTS {
		t.Errorf("stream type: got %#x (%v), want ADTS", r.StreamType(), r.Kind())
	}

	got := readAll(t, NewScanner(r, r.Kind()))
	if diff := cmp.Diff(frames, got); diff != "" {
		t.Errorf("frames (-want +got):\n%s", diff)
	}
	if want := int64(len(ts) / tsPacketSize); r.Packets() != want {
		t.Errorf("packets: got %d, want %d", r.Packets(), want)
	}
}

func TestTSReader_NoAACStream(t *testing.T) {
	var ts []byte
	ts = append(ts, patPacket()...)
	ts = append(ts, pmtPacket(0x1B)...)
	var cc byte
	ts = append(ts, pesPackets(testAudioPID, []byte{1, 2, 3}, &cc)...)

	r := NewTSReader(bytes.NewReader(ts))
	if err := r.Prime(); err != ErrNoAACStream {
		t.Errorf("Prime: got %v, want %v", err, ErrNoAACStream)
	}
	if _, err := io.ReadAll(r); err != ErrNoAACStream {
		t.Errorf("Read: got %v, want %v", err, ErrNoAACStream)
	}
}

func TestTSReader_LostSync(t *testing.T) {
	ts := patPacket()
	ts = append(ts, make([]byte, tsPacketSize)...)
	r := NewTSReader(bytes.NewReader(ts))
	_, err := io.ReadAll(r)
	if err == nil || err == ErrNoAACStream {
		t.Fatalf("got %v, want a sync error", err)
	}
}
