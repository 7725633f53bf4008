package aac

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats"

	"github.com/llehouerou/go-heaac/internal/bits"
	"github.com/llehouerou/go-heaac/internal/syntax"
)

func silentMono(w *bits.Writer) {
	putSilentSCE(w)
	putEnd(w)
}

func TestDecode_SilentMono(t *testing.T) {
	frame := adtsFrame(sr44, 1, silentMono)
	d := NewDecoder()
	res, err := d.Init(frame)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if res != (InitResult{SampleRate: 44100, Channels: 1}) {
		t.Errorf("Init: got %+v, want 44100 Hz mono", res)
	}

	samples, info, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Error != ErrNone || info.BytesConsumed != uint32(len(frame)) {
		t.Errorf("info: got error %d consumed %d, want 0 and %d", info.Error, info.BytesConsumed, len(frame))
	}
	if info.Samples != 1024 || info.Channels != 1 || info.SampleRate != 44100 {
		t.Errorf("info: got %d samples %d channels %d Hz, want 1024 1 44100", info.Samples, info.Channels, info.SampleRate)
	}
	if info.SBR != SBRNone || info.HeaderType != HeaderTypeADTS || info.ObjectType != ObjectTypeLC {
		t.Errorf("info: got sbr %d header %d object %d", info.SBR, info.HeaderType, info.ObjectType)
	}
	if info.ChannelPosition[0] != ChannelFrontCenter || info.NumFrontChannels != 1 {
		t.Errorf("position: got %d (%d front), want front centre", info.ChannelPosition[0], info.NumFrontChannels)
	}
	pcm, ok := samples.([]int16)
	if !ok {
		t.Fatalf("samples: got %T, want []int16", samples)
	}
	if diff := cmp.Diff(make([]int16, 1024), pcm); diff != "" {
		t.Errorf("samples not silent (-want +got):\n%s", diff)
	}
}

func TestDecode_ID3Tag(t *testing.T) {
	d := newInitialised(t, adtsFrame(sr44, 1, silentMono))
	buf := make([]byte, 200)
	copy(buf, "TAG")
	samples, info, err := d.Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.BytesConsumed != 128 || info.Samples != 0 || samples != nil {
		t.Errorf("got consumed %d samples %d (%v), want 128 and none", info.BytesConsumed, info.Samples, samples)
	}
}

func TestDecode_TruncatedADTS(t *testing.T) {
	frame := adtsFrame(sr44, 2, func(w *bits.Writer) {
		putSilentCPE(w)
		putEnd(w)
	})
	d := newInitialised(t, frame)
	_, info, err := d.Decode(frame[:len(frame)-2])
	if !errors.Is(err, ErrInputBufferTooSmall) {
		t.Fatalf("got %v, want %v", err, ErrInputBufferTooSmall)
	}
	if info.Error != ErrInputBufferTooSmall {
		t.Errorf("info.Error: got %d, want %d", info.Error, ErrInputBufferTooSmall)
	}
}

func TestDecode_TruncatedRaw(t *testing.T) {
	var w bits.Writer
	w.PutBits(uint32(syntax.IDCPE), syntax.LenSEID)
	w.PutBits(0, syntax.LenTag)
	w.PutBits(1, 1)
	putICSInfo(&w, 2)
	data := w.Bytes()

	d := NewDecoder()
	// LC, 44.1 kHz, stereo.
	if _, err := d.Init2([]byte{0x12, 0x10}); err != nil {
		t.Fatalf("Init2: %v", err)
	}
	samples, info, err := d.Decode(data)
	if err == nil {
		t.Fatal("truncated frame decoded without error")
	}
	var code Error
	if !errors.As(err, &code) || code == ErrNone || code != info.Error {
		t.Errorf("got error %v (info %d), want a non-zero code in both", err, info.Error)
	}
	if samples != nil || info.Samples != 0 {
		t.Errorf("got %d samples, want none", info.Samples)
	}
}

// putMSPair writes a common window pair over two bands with M/S on the
// first band only. Mid carries (1,0,0,0) in both bands, side (-1,0,0,0)
// then (1,0,0,0).
func putMSPair(w *bits.Writer) {
	const (
		plusOne  = 0x010 // codebook 1 index 67: (1,0,0,0)
		minusOne = 0x011 // codebook 1 index 13: (-1,0,0,0)
		quadLen  = 5
	)
	w.PutBits(uint32(syntax.IDCPE), syntax.LenSEID)
	w.PutBits(0, syntax.LenTag)
	w.PutBits(1, 1) // common_window
	putICSInfo(w, 2)
	w.PutBits(1, 2) // per band M/S mask
	w.PutBits(0b10, 2)
	for _, first := range []uint32{plusOne, minusOne} {
		w.PutBits(100, 8)
		w.PutBits(1, 4) // codebook 1 over both bands
		w.PutBits(2, 5)
		w.PutBits(0, 1) // scale factor deltas of 0
		w.PutBits(0, 1)
		w.PutBits(0, 3)
		w.PutBits(first, quadLen)
		w.PutBits(plusOne, quadLen)
	}
	putEnd(w)
}

func TestDecode_MidSide(t *testing.T) {
	frame := adtsFrame(sr44, 2, putMSPair)
	d := newInitialised(t, frame)
	_, info, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Channels != 2 || info.Samples != 2048 {
		t.Fatalf("got %d channels %d samples, want 2 and 2048", info.Channels, info.Samples)
	}

	// Band 0 is M/S coded: L = M+S, R = M-S. Band 1 is plain L/R.
	wantL := []float32{0, 0, 0, 0, 1, 0, 0, 0}
	wantR := []float32{2, 0, 0, 0, 1, 0, 0, 0}
	if diff := cmp.Diff(wantL, d.ch[0].spec[:8]); diff != "" {
		t.Errorf("left spectrum (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantR, d.ch[1].spec[:8]); diff != "" {
		t.Errorf("right spectrum (-want +got):\n%s", diff)
	}
	if info.ChannelPosition[0] != ChannelFrontLeft || info.ChannelPosition[1] != ChannelFrontRight {
		t.Errorf("positions: got %v, want front left and right", info.ChannelPosition[:2])
	}
}

func TestDecode_FloatOutputMatchesChannels(t *testing.T) {
	frame := adtsFrame(sr44, 2, putMSPair)
	d := NewDecoder()
	cfg := d.Config()
	cfg.OutputFormat = OutputFormatFloat
	if !d.SetConfiguration(cfg) {
		t.Fatal("SetConfiguration rejected float output")
	}
	if _, err := d.Init(frame); err != nil {
		t.Fatalf("Init: %v", err)
	}
	var left, right []float64
	for i := 0; i < 2; i++ {
		samples, _, err := d.Decode(frame)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		pcm := samples.([]float32)
		for i := 0; i < len(pcm); i += 2 {
			left = append(left, float64(pcm[i]))
			right = append(right, float64(pcm[i+1]))
		}
	}
	if floats.Norm(left, 2) == 0 || floats.Norm(right, 2) == 0 {
		t.Fatal("output is silent")
	}
	// The right channel carries twice the left band 0 line plus the same
	// band 1 line, so the two channels differ.
	if floats.EqualApprox(left, right, 1e-9) {
		t.Error("left and right are identical")
	}
}

func TestDecode_LOAS(t *testing.T) {
	var payload bits.Writer
	putSilentCPE(&payload)
	putEnd(&payload)
	frame := loasFrame(payload.Bytes())

	d := NewDecoder()
	res, err := d.Init(frame)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if res.SampleRate != 48000 || res.Channels != 2 {
		t.Errorf("Init: got %+v, want 48000 Hz stereo", res)
	}
	_, info, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.HeaderType != HeaderTypeLATM || info.Samples != 2048 || info.BytesConsumed != uint32(len(frame)) {
		t.Errorf("info: got header %d samples %d consumed %d, want LATM 2048 %d",
			info.HeaderType, info.Samples, info.BytesConsumed, len(frame))
	}
}

// loasFrame wraps payload in an AudioSyncStream frame whose
// StreamMuxConfig describes LC 48 kHz stereo.
func loasFrame(payload []byte) []byte {
	var mux bits.Writer
	mux.PutBits(0, 1) // useSameStreamMux
	mux.PutBits(0, 1) // audioMuxVersion
	mux.PutBits(1, 1) // allStreamsSameTimeFraming
	mux.PutBits(0, 6)
	mux.PutBits(0, 4)
	mux.PutBits(0, 3)
	mux.PutBits(2, 5) // AudioSpecificConfig
	mux.PutBits(sr48, 4)
	mux.PutBits(2, 4)
	mux.PutBits(0, 3)
	mux.PutBits(0, 3)    // frameLengthType
	mux.PutBits(0xFF, 8) // buffer fullness
	mux.PutBits(0, 1)    // other data
	mux.PutBits(0, 1)    // crc
	mux.PutBits(uint32(len(payload)), 8)
	mux.PutBytes(payload)
	body := mux.Bytes()

	var w bits.Writer
	w.PutBits(0x2B7, 11)
	w.PutBits(uint32(len(body)), 13)
	w.PutBytes(body)
	return w.Bytes()
}

func TestDecode_ImplicitSBRUpsamples(t *testing.T) {
	frame := adtsFrame(sr22, 1, silentMono)
	d := NewDecoder()
	res, err := d.Init(frame)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if res.SampleRate != 44100 {
		t.Errorf("Init sample rate: got %d, want 44100", res.SampleRate)
	}
	samples, info, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Samples != 2048 || info.SBR != SBRNoneUpsampled || info.SampleRate != 44100 {
		t.Errorf("info: got %d samples sbr %d rate %d, want 2048 %d 44100", info.Samples, info.SBR, info.SampleRate, SBRNoneUpsampled)
	}
	if diff := cmp.Diff(make([]int16, 2048), samples.([]int16)); diff != "" {
		t.Errorf("samples not silent (-want +got):\n%s", diff)
	}
}

func TestDecode_DontUpSampleImplicitSBR(t *testing.T) {
	frame := adtsFrame(sr22, 1, silentMono)
	d := NewDecoder()
	cfg := d.Config()
	cfg.DontUpSampleImplicitSBR = true
	d.SetConfiguration(cfg)
	res, err := d.Init(frame)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if res.SampleRate != 22050 {
		t.Errorf("Init sample rate: got %d, want 22050", res.SampleRate)
	}
	_, info, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Samples != 1024 || info.SBR != SBRNone {
		t.Errorf("info: got %d samples sbr %d, want 1024 and none", info.Samples, info.SBR)
	}
}

func sbrFrame(xover uint8, nHigh int, ps bool) []byte {
	return adtsFrame(sr22, 1, func(w *bits.Writer) {
		putSilentSCE(w)
		putFill(w, sbrPayload(xover, nHigh, 3, ps))
		putEnd(w)
	})
}

func TestDecode_SBRHeaderChangeRebuildsTables(t *testing.T) {
	first := sbrFrame(0, 16, false)
	d := newInitialised(t, first)

	_, info, err := d.Decode(first)
	if err != nil {
		t.Fatalf("frame 1: %v", err)
	}
	if info.SBR != SBRUpsampled || info.Samples != 2048 {
		t.Errorf("frame 1: got sbr %d samples %d, want upsampled 2048", info.SBR, info.Samples)
	}
	s := d.el[0].sbr
	if s == nil || !s.Rebuilt() {
		t.Fatal("frame 1: tables not built")
	}
	before := s.Tables()

	if _, _, err := d.Decode(sbrFrame(2, 14, false)); err != nil {
		t.Fatalf("frame 2: %v", err)
	}
	if !s.Rebuilt() {
		t.Error("frame 2: crossover change did not rebuild the tables")
	}
	after := s.Tables()
	if after.Kx == before.Kx || after.NHigh == before.NHigh {
		t.Errorf("tables unchanged: before %+v after %+v", before, after)
	}

	if _, _, err := d.Decode(sbrFrame(2, 14, false)); err != nil {
		t.Fatalf("frame 3: %v", err)
	}
	if s.Rebuilt() {
		t.Error("frame 3: repeated header rebuilt the tables")
	}
}

func TestDecode_ParametricStereo(t *testing.T) {
	frame := sbrFrame(0, 16, true)
	d := newInitialised(t, frame)
	samples, info, err := d.Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.Channels != 2 || info.PS != 1 || info.Samples != 4096 {
		t.Fatalf("info: got %d channels ps %d %d samples, want 2 1 4096", info.Channels, info.PS, info.Samples)
	}
	if info.ChannelPosition[0] != ChannelFrontLeft || info.ChannelPosition[1] != ChannelFrontRight {
		t.Errorf("positions: got %v, want front left and right", info.ChannelPosition[:2])
	}
	pcm := samples.([]int16)
	for i := 0; i < len(pcm); i += 2 {
		if pcm[i] != pcm[i+1] {
			t.Fatalf("sample %d: left %d right %d, want equal without stereo parameters", i/2, pcm[i], pcm[i+1])
		}
	}

	// A later frame without PS data stays stereo.
	_, info, err = d.Decode(sbrFrame(0, 16, false))
	if err != nil {
		t.Fatalf("second frame: %v", err)
	}
	if info.Channels != 2 {
		t.Errorf("second frame: got %d channels, want 2", info.Channels)
	}
}

func TestDecode_ErrorResetsState(t *testing.T) {
	frame := adtsFrame(sr44, 2, putMSPair)
	d := newInitialised(t, frame)
	if _, _, err := d.Decode(frame); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if floats.Norm(toFloat64(d.ch[0].overlap), 2) == 0 {
		t.Fatal("overlap is silent after a coded frame")
	}

	bad := adtsFrame(sr44, 2, func(w *bits.Writer) {
		w.PutBits(uint32(syntax.IDCPE), syntax.LenSEID)
		w.PutBits(0, syntax.LenTag)
		w.PutBits(1, 1)
		putICSInfo(w, 0)
		w.PutBits(3, 2) // reserved M/S mask value
	})
	_, info, err := d.Decode(bad)
	if !errors.Is(err, ErrBitstreamValueNotAllowed) {
		t.Fatalf("got %v, want %v", err, ErrBitstreamValueNotAllowed)
	}
	if info.BytesConsumed != 7 {
		t.Errorf("BytesConsumed: got %d, want the 7 header bytes", info.BytesConsumed)
	}
	for ch := 0; ch < 2; ch++ {
		if floats.Norm(toFloat64(d.ch[ch].overlap), 2) != 0 {
			t.Errorf("channel %d: overlap not reset", ch)
		}
	}
}

func TestDecode_PostSeekReset(t *testing.T) {
	frame := adtsFrame(sr44, 2, putMSPair)
	silent := adtsFrame(sr44, 2, func(w *bits.Writer) {
		putSilentCPE(w)
		putEnd(w)
	})
	d := NewDecoder()
	cfg := d.Config()
	cfg.OutputFormat = OutputFormatFloat
	d.SetConfiguration(cfg)
	if _, err := d.Init(frame); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, _, err := d.Decode(frame); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	d.PostSeekReset(-1)
	samples, _, err := d.Decode(silent)
	if err != nil {
		t.Fatalf("Decode after seek: %v", err)
	}
	if diff := cmp.Diff(make([]float32, 2048), samples.([]float32)); diff != "" {
		t.Errorf("previous frame leaked past the seek (-want +got):\n%s", diff)
	}
}

func TestDecode_DownMatrix(t *testing.T) {
	frame := adtsFrame(sr44, 6, func(w *bits.Writer) {
		putSilentSCE(w)
		putSilentCPE(w)
		putSilentCPE(w)
		w.PutBits(uint32(syntax.IDLFE), syntax.LenSEID)
		w.PutBits(0, syntax.LenTag)
		putSilentICS(w)
		putEnd(w)
	})
	tests := []struct {
		name     string
		down     bool
		channels uint8
		lfe      uint8
	}{
		{"5.1", false, 6, 1},
		{"folded", true, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecoder()
			cfg := d.Config()
			cfg.DownMatrix = tt.down
			d.SetConfiguration(cfg)
			res, err := d.Init(frame)
			if err != nil {
				t.Fatalf("Init: %v", err)
			}
			if res.Channels != tt.channels {
				t.Errorf("Init channels: got %d, want %d", res.Channels, tt.channels)
			}
			_, info, err := d.Decode(frame)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if info.Channels != tt.channels || info.NumLFEChannels != tt.lfe {
				t.Errorf("got %d channels %d LFE, want %d and %d", info.Channels, info.NumLFEChannels, tt.channels, tt.lfe)
			}
			if info.Samples != uint32(tt.channels)*1024 {
				t.Errorf("samples: got %d, want %d", info.Samples, uint32(tt.channels)*1024)
			}
		})
	}
}

func TestDecodeInto(t *testing.T) {
	frame := adtsFrame(sr44, 1, silentMono)
	d := newInitialised(t, frame)
	if _, err := d.DecodeInto(frame, make([]byte, 100)); !errors.Is(err, ErrOutputBufferTooSmall) {
		t.Errorf("small buffer: got %v, want %v", err, ErrOutputBufferTooSmall)
	}
	out := make([]byte, 2048)
	for i := range out {
		out[i] = 0xAA
	}
	info, err := d.DecodeInto(frame, out)
	if err != nil {
		t.Fatalf("DecodeInto: %v", err)
	}
	if info.Samples != 1024 {
		t.Errorf("samples: got %d, want 1024", info.Samples)
	}
	if diff := cmp.Diff(make([]byte, 2048), out); diff != "" {
		t.Errorf("bytes not silent (-want +got):\n%s", diff)
	}
}

func toFloat64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}
