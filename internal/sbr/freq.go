package sbr

import (
	"math"
	"slices"

	"github.com/llehouerou/go-heaac/internal/tables"
)

const (
	maxMasterBands = 63
	maxNoiseBands  = 5
	maxPatches     = 5
	maxLimiter     = 64
)

// freqTables holds every table derived from a header: the master table,
// the high and low resolution envelope tables, the noise floor table, the
// limiter table and the patches of the HF generator.
type freqTables struct {
	k0, k2 int
	kx, m  int

	master  [maxMasterBands + 1]int
	nMaster int
	high    [maxMasterBands + 1]int
	nHigh   int
	low     [maxMasterBands + 1]int
	nLow    int
	noise   [maxNoiseBands + 1]int
	nQ      int
	lim     [maxLimiter + 1]int
	nL      int

	numPatches   int
	patchBands   [maxPatches + 1]int
	patchStart   [maxPatches + 1]int
	limiterBands uint8
}

// resolution returns the envelope table for freqRes and its band count.
func (t *freqTables) resolution(freqRes uint8) ([]int, int) {
	if freqRes != 0 {
		return t.high[:t.nHigh+1], t.nHigh
	}
	return t.low[:t.nLow+1], t.nLow
}

var startOffsets = [7][16]int{
	{-8, -7, -6, -5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7},
	{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13},
	{-5, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16},
	{-6, -4, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16},
	{-4, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16, 20},
	{-2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16, 20, 24},
	{0, 1, 2, 3, 4, 5, 6, 7, 9, 11, 13, 16, 20, 24, 28, 33},
}

// startOffsetRow maps the sample rate index of the SBR rate to a row of
// startOffsets.
var startOffsetRow = [12]int{5, 5, 4, 4, 4, 3, 2, 1, 0, 6, 6, 6}

func nint(x float64) int {
	return int(x + 0.5)
}

// startChannel returns k0, the first QMF band of the master table.
func startChannel(startFreq uint8, sampleRate uint32) int {
	var f float64
	switch {
	case sampleRate < 32000:
		f = 3000
	case sampleRate < 64000:
		f = 4000
	default:
		f = 5000
	}
	startMin := nint(f * 128 / float64(sampleRate))
	row := startOffsetRow[tables.GetSRIndex(sampleRate)]
	return startMin + startOffsets[row][startFreq&15]
}

// stopChannel returns k2, the band after the last band of the master table.
func stopChannel(stopFreq uint8, sampleRate uint32, k0 int) int {
	switch stopFreq {
	case 15:
		return min(64, 3*k0)
	case 14:
		return min(64, 2*k0)
	}
	var f float64
	switch {
	case sampleRate < 32000:
		f = 6000
	case sampleRate < 64000:
		f = 8000
	default:
		f = 10000
	}
	stopMin := nint(f * 128 / float64(sampleRate))
	var dk [13]int
	ratio := 64 / float64(stopMin)
	for p := range dk {
		hi := nint(float64(stopMin) * math.Pow(ratio, float64(p+1)/13))
		lo := nint(float64(stopMin) * math.Pow(ratio, float64(p)/13))
		dk[p] = hi - lo
	}
	slices.Sort(dk[:])
	k2 := stopMin
	for p := 0; p < int(stopFreq); p++ {
		k2 += dk[p]
	}
	return min(64, k2)
}

// build derives every table from h for an SBR rate of sampleRate.
// Reference: ISO/IEC 14496-3, 4.6.18.3
func (t *freqTables) build(h Header, sampleRate uint32) error {
	t.k0 = startChannel(h.StartFreq, sampleRate)
	t.k2 = stopChannel(h.StopFreq, sampleRate, t.k0)
	if t.k0 <= 0 || t.k2 <= t.k0 {
		return ErrFrequencyRange
	}
	maxSpan := 45
	switch {
	case sampleRate >= 48000:
		maxSpan = 32
	case sampleRate <= 32000:
		maxSpan = 48
	}
	if t.k2-t.k0 > maxSpan {
		return ErrFrequencyRange
	}

	var err error
	if h.FreqScale == 0 {
		err = t.masterLinear(h.AlterScale)
	} else {
		err = t.masterBark(h.FreqScale, h.AlterScale)
	}
	if err != nil {
		return err
	}
	if int(h.XoverBand) >= t.nMaster {
		return ErrCrossover
	}
	if err := t.derive(h); err != nil {
		return err
	}
	if err := t.buildPatches(sampleRate); err != nil {
		return err
	}
	t.limiterBands = h.LimiterBands
	t.buildLimiter(h.LimiterBands)
	return nil
}

// masterLinear builds the master table with equally spaced bands.
func (t *freqTables) masterLinear(alterScale uint8) error {
	dk, n := 1, ((t.k2-t.k0)>>1)<<1
	if alterScale != 0 {
		dk, n = 2, ((t.k2-t.k0+2)>>2)<<1
	}
	n = min(n, maxMasterBands)
	if n <= 0 {
		return ErrMasterTable
	}
	var vdk [maxMasterBands]int
	for k := 0; k < n; k++ {
		vdk[k] = dk
	}
	diff := t.k2 - (t.k0 + n*dk)
	if diff != 0 {
		inc, k := 1, 0
		if diff > 0 {
			inc, k = -1, n-1
		}
		for diff != 0 && k >= 0 && k < n {
			vdk[k] -= inc
			k += inc
			diff += inc
		}
	}
	t.master[0] = t.k0
	for k := 1; k <= n; k++ {
		t.master[k] = t.master[k-1] + vdk[k-1]
		if vdk[k-1] <= 0 {
			return ErrMasterTable
		}
	}
	t.nMaster = n
	return nil
}

// bandDeltas splits [a, b) into n logarithmically spaced bands and returns
// their widths in ascending order.
func bandDeltas(a, b, n int) []int {
	d := make([]int, n)
	q := float64(b) / float64(a)
	for k := range d {
		hi := nint(float64(a) * math.Pow(q, float64(k+1)/float64(n)))
		lo := nint(float64(a) * math.Pow(q, float64(k)/float64(n)))
		d[k] = hi - lo
	}
	slices.Sort(d)
	return d
}

// masterBark builds the master table with a constant number of bands per
// octave, optionally split into two regions with a warped second region.
func (t *freqTables) masterBark(freqScale, alterScale uint8) error {
	bands := [3]float64{6, 5, 4}[(freqScale-1)%3]
	warp := 1.0
	if alterScale != 0 {
		warp = 1.3
	}
	twoRegions := float64(t.k2)/float64(t.k0) > 2.2449
	k1 := t.k2
	if twoRegions {
		k1 = 2 * t.k0
	}
	n0 := 2 * nint(bands*math.Log2(float64(k1)/float64(t.k0)))
	if n0 <= 0 || n0 > maxMasterBands {
		return ErrMasterTable
	}
	d0 := bandDeltas(t.k0, k1, n0)
	if d0[0] <= 0 {
		return ErrMasterTable
	}
	t.master[0] = t.k0
	for k := 1; k <= n0; k++ {
		t.master[k] = t.master[k-1] + d0[k-1]
	}
	t.nMaster = n0
	if !twoRegions {
		return nil
	}

	n1 := 2 * nint(bands*math.Log2(float64(t.k2)/float64(k1))/warp)
	if n1 <= 0 || n0+n1 > maxMasterBands {
		return ErrMasterTable
	}
	d1 := bandDeltas(k1, t.k2, n1)
	if d1[0] < d0[n0-1] {
		change := min(d0[n0-1]-d1[0], (d1[n1-1]-d1[0])/2)
		d1[0] += change
		d1[n1-1] -= change
		slices.Sort(d1)
	}
	if d1[0] <= 0 {
		return ErrMasterTable
	}
	for k := 1; k <= n1; k++ {
		t.master[n0+k] = t.master[n0+k-1] + d1[k-1]
	}
	t.nMaster = n0 + n1
	return nil
}

// derive builds the envelope and noise floor tables from the master table.
func (t *freqTables) derive(h Header) error {
	xover := int(h.XoverBand)
	t.nHigh = t.nMaster - xover
	t.nLow = (t.nHigh + 1) >> 1
	for k := 0; k <= t.nHigh; k++ {
		t.high[k] = t.master[k+xover]
	}
	t.kx = t.high[0]
	t.m = t.high[t.nHigh] - t.high[0]
	if t.kx > 32 || t.kx+t.m > 64 || t.m <= 0 {
		return ErrBandLimits
	}
	odd := t.nHigh & 1
	t.low[0] = t.high[0]
	for k := 1; k <= t.nLow; k++ {
		t.low[k] = t.high[2*k-odd]
	}

	t.nQ = 1
	if h.NoiseBands != 0 {
		t.nQ = max(1, nint(float64(h.NoiseBands)*math.Log2(float64(t.k2)/float64(t.kx))))
	}
	t.nQ = min(t.nQ, maxNoiseBands)
	i := 0
	t.noise[0] = t.low[0]
	for k := 1; k <= t.nQ; k++ {
		i += (t.nLow - i) / (t.nQ + 1 - k)
		t.noise[k] = t.low[i]
	}
	return nil
}

// buildPatches lays out the copies of the low band that fill [kx, kx+M).
func (t *freqTables) buildPatches(sampleRate uint32) error {
	goal := nint(2.048e6 / float64(sampleRate))
	k := t.nMaster
	if goal < t.kx+t.m {
		k = 0
		for i := 0; i < t.nMaster && t.master[i] < goal; i++ {
			k = i + 1
		}
	}
	msb, usb := t.k0, t.kx
	t.numPatches = 0
	for guard := 0; guard < 2*maxMasterBands; guard++ {
		j := k + 1
		var sb, odd int
		for {
			j--
			if j < 0 {
				return ErrPatches
			}
			sb = t.master[j]
			odd = (sb - 2 + t.k0) & 1
			if sb <= t.k0-1+msb-odd {
				break
			}
		}
		n := max(sb-usb, 0)
		if n > 0 {
			if t.numPatches >= len(t.patchBands) {
				return ErrPatches
			}
			t.patchBands[t.numPatches] = n
			t.patchStart[t.numPatches] = t.k0 - odd - n
			usb, msb = sb, sb
			t.numPatches++
		} else {
			msb = t.kx
		}
		if t.master[k]-sb < 3 {
			k = t.nMaster
		}
		if sb == t.kx+t.m {
			if t.numPatches > 1 && t.patchBands[t.numPatches-1] < 3 {
				t.numPatches--
			}
			if t.numPatches > maxPatches || t.numPatches == 0 {
				return ErrPatches
			}
			return nil
		}
	}
	return ErrPatches
}

var limiterBandsPerOctave = [3]float64{1.2, 2, 3}

// buildLimiter merges the low resolution table with the patch borders and
// removes bands narrower than the limiter resolution.
func (t *freqTables) buildLimiter(limiterBands uint8) {
	if limiterBands == 0 {
		t.lim[0] = t.low[0]
		t.lim[1] = t.low[t.nLow]
		t.nL = 1
		return
	}
	bpo := limiterBandsPerOctave[limiterBands-1]

	var borders [maxPatches + 1]int
	borders[0] = t.kx
	for i := 1; i <= t.numPatches; i++ {
		borders[i] = borders[i-1] + t.patchBands[i-1]
	}
	isBorder := func(v int) bool {
		return v == t.kx+t.m || slices.Contains(borders[:t.numPatches+1], v)
	}

	lim := make([]int, 0, t.nLow+t.numPatches+1)
	lim = append(lim, t.low[:t.nLow+1]...)
	lim = append(lim, borders[1:t.numPatches]...)
	slices.Sort(lim)

	for k := 1; k < len(lim); {
		octaves := math.Log2(float64(lim[k]) / float64(lim[k-1]))
		if lim[k-1] == 0 || octaves*bpo >= 0.49 {
			k++
			continue
		}
		switch {
		case lim[k] == lim[k-1]:
			lim = slices.Delete(lim, k, k+1)
		case isBorder(lim[k]):
			if isBorder(lim[k-1]) {
				k++
				continue
			}
			lim = slices.Delete(lim, k-1, k)
		default:
			lim = slices.Delete(lim, k, k+1)
		}
	}
	t.nL = len(lim) - 1
	copy(t.lim[:], lim)
}
