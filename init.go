package aac

import (
	"go.uber.org/zap"

	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/filterbank"
	"github.com/llehouerou/go-heaac/internal/output"
	"github.com/llehouerou/go-heaac/internal/spectrum"
	"github.com/llehouerou/go-heaac/internal/syntax"
	"github.com/llehouerou/go-heaac/internal/tables"
)

// implicitSBRMaxRate is the highest core rate at which SBR is assumed
// without explicit signalling.
const implicitSBRMaxRate = 24000

func isADTS(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1]&0xF6 == 0xF0
}

func isLOAS(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0x56 && buf[1]&0xE0 == 0xE0
}

// Init detects the transport of buf and configures the decoder from the
// first header. ADIF, ADTS and LOAS streams are recognised; anything else
// is decoded as raw data blocks described by Config.DefObjectType and
// Config.DefSampleRate.
func (d *Decoder) Init(buf []byte) (InitResult, error) {
	switch d.state {
	case stateClosed:
		return InitResult{}, ErrDecoderClosed
	case stateReady:
		d.reset()
	}

	asc := syntax.AudioSpecificConfig{SBRPresent: -1, PSPresent: -1}
	header := HeaderTypeRAW
	var consumed uint32
	r := bits.NewReader(buf)

	switch {
	case syntax.IsADIF(buf):
		var h syntax.ADIFHeader
		if err := syntax.ParseADIF(r, &h); err != nil {
			return InitResult{}, codeOf(err)
		}
		pce := &h.PCE[0]
		asc.ObjectType = syntax.ObjectType(pce.ObjectType + 1)
		asc.SFIndex = pce.SFIndex
		asc.SampleRate = tables.GetSampleRate(pce.SFIndex)
		asc.HasPCE = true
		asc.PCE = *pce
		r.ByteAlign()
		consumed = r.ProcessedBits() / 8
		header = HeaderTypeADIF
	case isADTS(buf):
		var h syntax.ADTSHeader
		if err := syntax.ParseADTS(r, &h, d.cfg.UseOldADTSFormat); err != nil {
			return InitResult{}, codeOf(err)
		}
		asc.ObjectType = syntax.ObjectType(h.Profile + 1)
		asc.SFIndex = h.SFIndex
		asc.SampleRate = tables.GetSampleRate(h.SFIndex)
		asc.ChannelsConfiguration = h.ChannelConfiguration
		header = HeaderTypeADTS
	case isLOAS(buf):
		d.latm = syntax.LATMConfig{}
		if _, err := syntax.ParseLOASFrame(r, &d.latm); err != nil {
			return InitResult{}, codeOf(err)
		}
		asc = d.latm.ASC
		header = HeaderTypeLATM
	default:
		asc.ObjectType = syntax.ObjectType(d.cfg.DefObjectType)
		asc.SampleRate = d.cfg.DefSampleRate
		asc.SFIndex = tables.GetSRIndex(d.cfg.DefSampleRate)
	}
	if asc.SampleRate == 0 {
		return InitResult{}, ErrBitstreamValueNotAllowed
	}

	if err := d.configure(&asc, header); err != nil {
		return InitResult{}, err
	}
	res := d.initResult()
	res.BytesRead = consumed
	return res, nil
}

// Init2 configures the decoder from an AudioSpecificConfig, as carried
// out of band by MP4 files. Frames are then decoded as raw data blocks.
func (d *Decoder) Init2(ascData []byte) (InitResult, error) {
	switch d.state {
	case stateClosed:
		return InitResult{}, ErrDecoderClosed
	case stateReady:
		d.reset()
	}
	var asc syntax.AudioSpecificConfig
	if err := syntax.ParseASC(bits.NewReader(ascData), &asc, false); err != nil {
		return InitResult{}, codeOf(err)
	}
	if err := d.configure(&asc, HeaderTypeRAW); err != nil {
		return InitResult{}, err
	}
	return d.initResult(), nil
}

// configure installs the stream described by asc: core parameters, SBR
// signalling, the filter bank and fresh channel state.
func (d *Decoder) configure(asc *syntax.AudioSpecificConfig, header HeaderType) error {
	if !ObjectType(asc.ObjectType).decodable() {
		return ErrBitstreamValueNotAllowed
	}
	sfIndex := asc.SFIndex
	if sfIndex >= 15 {
		sfIndex = tables.GetSRIndex(asc.SampleRate)
	}
	fl := asc.FrameLength()

	d.header = header
	d.stream = syntax.StreamConfig{
		ObjectType:             asc.ObjectType,
		SRIndex:                sfIndex,
		FrameLength:            fl,
		ChannelConfig:          asc.ChannelsConfiguration,
		SectionDataResilience:  asc.SectionDataResilience,
		ScalefactorResilience:  asc.ScalefactorResilience,
		SpectralDataResilience: asc.SpectralDataResilience,
	}
	d.coreRate = asc.SampleRate
	d.pceSet = asc.HasPCE
	d.pce = asc.PCE

	d.sbrActive, d.forceUp, d.downSampled = false, false, false
	d.psPresent = asc.PSPresent == 1
	d.psStereo = false
	if fl == 1024 || fl == 960 {
		switch {
		case asc.SBRPresent == 1:
			d.sbrActive = true
			d.downSampled = asc.DownSampledSBR
		case asc.SBRPresent == -1 && !d.cfg.DontUpSampleImplicitSBR:
			if d.coreRate <= implicitSBRMaxRate {
				d.sbrActive = true
				d.forceUp = true
			} else {
				d.downSampled = true
			}
		}
	}

	d.fb = filterbank.NewFilterBank(fl, asc.ObjectType == syntax.ObjectTypeLD)
	d.ltp = nil
	if asc.ObjectType.IsLTP() {
		d.ltp = spectrum.NewLTP(d.fb)
	}
	d.ch = [MaxChannels]*channel{}
	d.el = [syntax.MaxSyntaxElements]element{}
	d.drcInfo = syntax.DRCInfo{ProgRefLevel: output.RefLevel}
	d.rng.Reset()
	d.frames = 0
	d.resetPending = false
	d.state = stateReady

	d.log.Debug("stream configured",
		zap.Uint8("header", uint8(header)),
		zap.Uint8("objectType", uint8(asc.ObjectType)),
		zap.Uint32("sampleRate", d.coreRate),
		zap.Uint16("frameLength", fl),
		zap.Uint8("channelConfig", asc.ChannelsConfiguration),
		zap.Int8("sbr", asc.SBRPresent),
		zap.Bool("forceUpSampling", d.forceUp),
		zap.Bool("downSampledSBR", d.downSampled),
	)
	return nil
}

// outputRate returns the sampling rate of the decoded PCM.
func (d *Decoder) outputRate() uint32 {
	if d.sbrActive && !d.downSampled {
		return 2 * d.coreRate
	}
	return d.coreRate
}

// initResult reports the output rate and channel count expected from the
// configured stream.
func (d *Decoder) initResult() InitResult {
	var ch uint8
	switch {
	case d.pceSet:
		ch = d.pce.Channels
	case d.stream.ChannelConfig == 7:
		ch = 8
	case d.header == HeaderTypeRAW && d.stream.ChannelConfig == 0:
		ch = 1
	default:
		ch = d.stream.ChannelConfig
	}
	if ch == 1 && d.psPresent {
		ch = 2
	}
	if d.cfg.DownMatrix && output.CanDownmix(int(ch)) {
		ch = 2
	}
	return InitResult{SampleRate: d.outputRate(), Channels: ch}
}

// reset returns the decoder to the state NewDecoder left it in, keeping
// the configuration and logger.
func (d *Decoder) reset() {
	cfg, log := d.cfg, d.log
	*d = *NewDecoder()
	d.cfg, d.log = cfg, log
}
