package ps

// hybridTaps is the length of the hybrid filters; their group delay is
// hybridDelay slots.
const hybridTaps = 13

// hybrid splits the lowest QMF bands into hybrid subbands and delays the
// remaining bands by the same amount.
type hybrid struct {
	cfg   *bandConfig
	slots int
	// buf holds hybridTaps-1 slots of history followed by the frame, per
	// split QMF band.
	buf   [][]complex64
	delay [hybridDelay][64]complex64
}

func newHybrid(cfg *bandConfig, slots int) *hybrid {
	h := &hybrid{cfg: cfg, slots: slots, buf: make([][]complex64, cfg.qmfBands())}
	for i := range h.buf {
		h.buf[i] = make([]complex64, hybridTaps-1+slots)
	}
	return h
}

func (h *hybrid) reset() {
	for i := range h.buf {
		clear(h.buf[i])
	}
	for i := range h.delay {
		clear(h.delay[i][:])
	}
}

// analysis writes the hybrid subbands of x to sub and the delayed QMF
// bands to qmf.
func (h *hybrid) analysis(x [][64]complex64, sub [][maxHybrid]complex64, qmf [][64]complex64) {
	split := h.cfg.qmfBands()
	for b := 0; b < split; b++ {
		buf := h.buf[b]
		for l := 0; l < h.slots; l++ {
			buf[hybridTaps-1+l] = x[l][b]
		}
		offset := 0
		for i := 0; i < b; i++ {
			offset += h.cfg.resolution[i]
		}
		for q, f := range h.cfg.filters[b] {
			for l := 0; l < h.slots; l++ {
				var acc complex64
				for n := 0; n < hybridTaps; n++ {
					acc += f[n] * buf[l+hybridTaps-1-n]
				}
				sub[l][offset+q] = acc
			}
		}
		copy(buf, buf[h.slots:])
	}
	if h.cfg == config20 {
		for l := 0; l < h.slots; l++ {
			sub[l][3] += sub[l][4]
			sub[l][2] += sub[l][5]
			sub[l][4], sub[l][5] = 0, 0
		}
	}

	for l := 0; l < h.slots; l++ {
		if l < hybridDelay {
			qmf[l] = h.delay[l]
		} else {
			qmf[l] = x[l-hybridDelay]
		}
	}
	for i := 0; i < hybridDelay; i++ {
		h.delay[i] = x[h.slots-hybridDelay+i]
	}
}

// synthesis sums the hybrid subbands back into their QMF bands.
func (h *hybrid) synthesis(sub [][maxHybrid]complex64, x [][64]complex64) {
	for l := 0; l < h.slots; l++ {
		offset := 0
		for b, q := range h.cfg.resolution {
			var acc complex64
			for k := 0; k < q; k++ {
				acc += sub[l][offset+k]
			}
			x[l][b] = acc
			offset += q
		}
	}
}
