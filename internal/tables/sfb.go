package tables

import "errors"

var (
	// ErrInvalidSRIndex indicates a sampling index outside the table.
	ErrInvalidSRIndex = errors.New("tables: invalid sample rate index")

	// ErrUnsupportedFrameLength indicates a transform length with no band
	// table at the given sampling index.
	ErrUnsupportedFrameLength = errors.New("tables: unsupported frame length")
)

// Bands describes the scale factor bands of one window shape. Offsets has
// Num+1 entries; the last one equals the window length.
type Bands struct {
	Num     uint8
	Offsets []uint16
}

var (
	longFrameLengths  = [...]uint16{1024, 960, 512, 480}
	shortFrameLengths = [...]uint16{1024, 960}
	longBandSets      [len(longFrameLengths)][12]Bands
	shortBandSets     [len(shortFrameLengths)][12]Bands
)

func init() {
	for sr := 0; sr < 12; sr++ {
		longBandSets[0][sr] = bands(numSWB1024[sr], swbOffset1024[sr], 1024)
		longBandSets[1][sr] = bands(numSWB960[sr], swbOffset1024[sr], 960)
		longBandSets[2][sr] = bands(numSWB512[sr], swbOffset512[sr], 512)
		longBandSets[3][sr] = bands(numSWB480[sr], swbOffset480[sr], 480)
		shortBandSets[0][sr] = bands(numSWB128[sr], swbOffset128[sr], 128)
		shortBandSets[1][sr] = bands(numSWB128[sr], swbOffset128[sr], 120)
	}
}

// LongBands returns the bands of a long window for a frame of frameLength
// lines (1024, 960, 512 or 480). The returned offsets are shared and must
// not be modified.
func LongBands(srIndex uint8, frameLength uint16) (Bands, error) {
	if srIndex >= 12 {
		return Bands{}, ErrInvalidSRIndex
	}
	for i, fl := range longFrameLengths {
		if fl == frameLength {
			b := longBandSets[i][srIndex]
			if b.Num == 0 {
				return Bands{}, ErrUnsupportedFrameLength
			}
			return b, nil
		}
	}
	return Bands{}, ErrUnsupportedFrameLength
}

// ShortBands returns the bands of one short window of a frame of
// frameLength lines (1024 or 960).
func ShortBands(srIndex uint8, frameLength uint16) (Bands, error) {
	if srIndex >= 12 {
		return Bands{}, ErrInvalidSRIndex
	}
	for i, fl := range shortFrameLengths {
		if fl == frameLength {
			return shortBandSets[i][srIndex], nil
		}
	}
	return Bands{}, ErrUnsupportedFrameLength
}

func bands(n uint8, src []uint16, length uint16) Bands {
	if n == 0 || src == nil {
		return Bands{}
	}
	off := make([]uint16, n+1)
	copy(off, src[:n])
	off[n] = length
	return Bands{Num: n, Offsets: off}
}
