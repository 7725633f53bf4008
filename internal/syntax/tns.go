package syntax

import "github.com/llehouerou/go-heaac/internal/bits"

// ParseTNSData reads tns_data (Table 4.48). Field widths depend on whether
// the stream uses short windows.
func ParseTNSData(r *bits.Reader, ics *ICStream) error {
	nFiltBits, lengthBits, orderBits := uint(2), uint(6), uint(5)
	if ics.IsShort() {
		nFiltBits, lengthBits, orderBits = 1, 4, 3
	}
	tns := &ics.TNS
	for w := uint8(0); w < ics.NumWindows; w++ {
		tns.NFilt[w] = uint8(r.GetBits(nFiltBits))
		if tns.NFilt[w] == 0 {
			continue
		}
		tns.CoefRes[w] = r.Get1Bit()
		for f := uint8(0); f < tns.NFilt[w]; f++ {
			tns.Length[w][f] = uint8(r.GetBits(lengthBits))
			tns.Order[w][f] = uint8(r.GetBits(orderBits))
			if tns.Order[w][f] == 0 {
				continue
			}
			tns.Direction[w][f] = r.Get1Bit()
			tns.CoefCompress[w][f] = r.Get1Bit()
			coefBits := uint(3 + tns.CoefRes[w] - tns.CoefCompress[w][f])
			for i := uint8(0); i < tns.Order[w][f]; i++ {
				tns.Coef[w][f][i] = uint8(r.GetBits(coefBits))
			}
		}
	}
	if r.Error() {
		return ErrBitstreamRead
	}
	return nil
}
