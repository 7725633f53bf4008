package output

import (
	"encoding/binary"
	"math"
)

// PutLittleEndian serialises the result of Convert into dst and returns
// the number of bytes written. dst must hold len(samples)*SampleSize.
// 24 bit samples keep their 4 byte container.
func PutLittleEndian(samples any, dst []byte) int {
	le := binary.LittleEndian
	switch s := samples.(type) {
	case []int16:
		for i, v := range s {
			le.PutUint16(dst[2*i:], uint16(v))
		}
		return 2 * len(s)
	case []int32:
		for i, v := range s {
			le.PutUint32(dst[4*i:], uint32(v))
		}
		return 4 * len(s)
	case []float32:
		for i, v := range s {
			le.PutUint32(dst[4*i:], math.Float32bits(v))
		}
		return 4 * len(s)
	case []float64:
		for i, v := range s {
			le.PutUint64(dst[8*i:], math.Float64bits(v))
		}
		return 8 * len(s)
	}
	return 0
}
