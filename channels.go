package aac

import (
	"github.com/llehouerou/go-heaac/internal/output"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

// configPositions lists the speaker positions of channel configurations
// 1 to 7 in decoded channel order. Configuration 7 carries its outer
// front pair as side channels.
var configPositions = [8][]ChannelPosition{
	1: {ChannelFrontCenter},
	2: {ChannelFrontLeft, ChannelFrontRight},
	3: {ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight},
	4: {ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelBackCenter},
	5: {ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelBackLeft, ChannelBackRight},
	6: {ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, ChannelBackLeft, ChannelBackRight, ChannelLFE},
	7: {
		ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight,
		ChannelSideLeft, ChannelSideRight,
		ChannelBackLeft, ChannelBackRight, ChannelLFE,
	},
}

var stereoPositions = []ChannelPosition{ChannelFrontLeft, ChannelFrontRight}

// emit fills the channel description of info and converts the frame's
// output planes to interleaved PCM.
func (d *Decoder) emit(info *FrameInfo) any {
	f := &d.fr
	n := f.channels
	mapping := d.mapping[:0]
	for i := 0; i < n; i++ {
		mapping = append(mapping, uint8(i))
	}

	var pos []ChannelPosition
	l := output.Layout{Channels: n}
	switch {
	case f.ps || (d.psStereo && n == 1):
		// Parametric stereo, or a mono frame of a stream that already
		// turned stereo.
		n = 2
		l.Channels = 2
		l.UpMatrix = !f.ps
		if f.ps {
			mapping = append(mapping[:0], 0, 1)
		}
		pos = stereoPositions
	case d.pceSet && int(d.pce.Channels) == n:
		pos = d.pcePositions(mapping)
	case d.stream.ChannelConfig >= 1 && d.stream.ChannelConfig <= 7 &&
		len(configPositions[d.stream.ChannelConfig]) == n:
		pos = configPositions[d.stream.ChannelConfig]
	default:
		pos = d.genericPositions(n)
	}
	d.mapping = mapping
	l.Map = mapping

	if d.cfg.DownMatrix && output.CanDownmix(n) {
		if m, ok := downmixMap(pos, mapping); ok {
			l = output.Layout{Map: m, Channels: 2, DownMatrix: true}
			pos = stereoPositions
			n = 2
		}
	}

	info.Channels = uint8(n)
	info.Samples = uint32(f.length * n)
	info.SampleRate = d.outputRate()
	info.PS = 0
	if f.ps {
		info.PS = 1
	}
	info.SBR = d.sbrSignalling()
	setPositions(info, pos)

	if f.length == 0 || n == 0 {
		return nil
	}
	planes := f.planes[:f.channels]
	if f.ps {
		planes = f.planes[:2]
	}
	return d.pcm.Convert(output.Format(d.cfg.OutputFormat), planes, l, f.length)
}

func (d *Decoder) sbrSignalling() SBRSignalling {
	switch {
	case !d.sbrActive:
		return SBRNone
	case d.downSampled:
		return SBRDownsampled
	}
	for i := range d.fr.chElems {
		if s := d.el[i].sbr; s != nil && s.HeaderSeen() {
			return SBRUpsampled
		}
	}
	if d.forceUp {
		return SBRNoneUpsampled
	}
	return SBRUpsampled
}

func setPositions(info *FrameInfo, pos []ChannelPosition) {
	info.ChannelPosition = [MaxChannels]ChannelPosition{}
	info.NumFrontChannels, info.NumSideChannels = 0, 0
	info.NumBackChannels, info.NumLFEChannels = 0, 0
	for i, p := range pos {
		info.ChannelPosition[i] = p
		switch p {
		case ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight:
			info.NumFrontChannels++
		case ChannelSideLeft, ChannelSideRight:
			info.NumSideChannels++
		case ChannelBackLeft, ChannelBackRight, ChannelBackCenter:
			info.NumBackChannels++
		case ChannelLFE:
			info.NumLFEChannels++
		}
	}
}

// pcePositions orders the output channels as the program config element
// numbers them and returns their positions: front, side and back groups
// with a centre for an odd count, then the LFE channels. mapping is
// rewritten to the PCE order; it stays in decoded order when the frame's
// elements do not match the PCE.
func (d *Decoder) pcePositions(mapping []uint8) []ChannelPosition {
	p := &d.pce
	var taken [MaxChannels]bool
	var perm [MaxChannels]uint8
	ok := true
	place := func(out int, decoded int) {
		if out >= len(mapping) || taken[out] {
			ok = false
			return
		}
		taken[out] = true
		perm[out] = uint8(decoded)
	}
	for _, fe := range d.fr.chElems {
		switch fe.id {
		case syntax.IDCPE:
			out := int(p.CPEChannel[fe.tag])
			place(out, fe.first)
			place(out+1, fe.first+1)
		default:
			place(int(p.SCEChannel[fe.tag]), fe.first)
		}
	}
	if ok {
		copy(mapping, perm[:len(mapping)])
	}

	pos := make([]ChannelPosition, 0, p.Channels)
	pos = appendGroup(pos, int(p.NumFrontChannels), ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, true)
	pos = appendGroup(pos, int(p.NumSideChannels), ChannelSideLeft, ChannelSideLeft, ChannelSideRight, false)
	pos = appendGroup(pos, int(p.NumBackChannels), ChannelBackCenter, ChannelBackLeft, ChannelBackRight, false)
	for i := 0; i < int(p.NumLFEChannels); i++ {
		pos = append(pos, ChannelLFE)
	}
	return pos
}

// appendGroup adds n channels of one group as left/right pairs. An odd
// channel takes the centre position, first when centreFirst is set and
// last otherwise.
func appendGroup(pos []ChannelPosition, n int, centre, left, right ChannelPosition, centreFirst bool) []ChannelPosition {
	odd := n%2 == 1
	if odd && centreFirst {
		pos = append(pos, centre)
	}
	for i := 0; i < n/2; i++ {
		pos = append(pos, left, right)
	}
	if odd && !centreFirst {
		pos = append(pos, centre)
	}
	return pos
}

// genericPositions assigns positions to a frame whose layout is not
// described by a channel configuration or PCE. LFE channels come last;
// an odd remainder gets a front centre when the frame starts with a single
// channel element and a back centre otherwise; the rest is split into
// front and back pairs.
func (d *Decoder) genericPositions(n int) []ChannelPosition {
	lfe := min(d.fr.lfe, n)
	ch := n - lfe
	pos := make([]ChannelPosition, 0, n)
	switch {
	case ch == 1:
		pos = append(pos, ChannelFrontCenter)
	case ch%2 == 1:
		pairs := (ch - 1) / 2
		front := (pairs + 1) / 2
		if d.fr.firstID == syntax.IDSCE || d.stream.ER() {
			pos = appendGroup(pos, 2*front+1, ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, true)
			pos = appendGroup(pos, 2*(pairs-front), ChannelBackCenter, ChannelBackLeft, ChannelBackRight, false)
		} else {
			pos = appendGroup(pos, 2*front, ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, true)
			pos = appendGroup(pos, 2*(pairs-front)+1, ChannelBackCenter, ChannelBackLeft, ChannelBackRight, false)
		}
	default:
		pairs := ch / 2
		front := (pairs + 1) / 2
		pos = appendGroup(pos, 2*front, ChannelFrontCenter, ChannelFrontLeft, ChannelFrontRight, true)
		pos = appendGroup(pos, 2*(pairs-front), ChannelBackCenter, ChannelBackLeft, ChannelBackRight, false)
	}
	for i := 0; i < lfe; i++ {
		pos = append(pos, ChannelLFE)
	}
	return pos
}

// downmixMap finds the centre, front and surround channels the stereo
// fold needs among the output positions.
func downmixMap(pos []ChannelPosition, mapping []uint8) ([]uint8, bool) {
	find := func(ps ...ChannelPosition) (uint8, bool) {
		for _, want := range ps {
			for i, p := range pos {
				if p == want && i < len(mapping) {
					return mapping[i], true
				}
			}
		}
		return 0, false
	}
	var m [5]uint8
	var ok [5]bool
	m[0], ok[0] = find(ChannelFrontCenter)
	m[1], ok[1] = find(ChannelFrontLeft)
	m[2], ok[2] = find(ChannelFrontRight)
	m[3], ok[3] = find(ChannelSideLeft, ChannelBackLeft)
	m[4], ok[4] = find(ChannelSideRight, ChannelBackRight)
	for _, v := range ok {
		if !v {
			return nil, false
		}
	}
	return m[:], true
}
