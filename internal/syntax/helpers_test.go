package syntax

import (
	"testing"

	"github.com/llehouerou/go-heaac/internal/bits"
)

// Scale factor codewords for small differences.
const (
	sfZero     = 0b0
	sfZeroLen  = 1
	sfMinus1   = 0b100
	sfMinus1Ln = 3
	sfPlus1    = 0b1010
	sfPlus1Len = 4
)

var lc44 = StreamConfig{ObjectType: ObjectTypeLC, SRIndex: 4, FrameLength: 1024, ChannelConfig: 2}

// putLongICSInfo writes ics_info for an only-long window without
// prediction.
func putLongICSInfo(w *bits.Writer, maxSFB uint8) {
	w.PutBits(0, 1) // reserved
	w.PutBits(uint32(OnlyLongSequence), 2)
	w.PutBits(0, 1) // shape
	w.PutBits(uint32(maxSFB), 6)
	w.PutBits(0, 1) // predictor_data_present
}

// putSilentICS writes an individual_channel_stream with max_sfb 0.
func putSilentICS(w *bits.Writer, globalGain uint8, withInfo bool) {
	w.PutBits(uint32(globalGain), 8)
	if withInfo {
		putLongICSInfo(w, 0)
	}
	w.PutBits(0, 3) // pulse, tns, gain control
}

func readerOf(t *testing.T, w *bits.Writer) *bits.Reader {
	t.Helper()
	return bits.NewReader(w.Bytes())
}
