// Package aac provides a pure Go decoder for MPEG-2/4 AAC audio: the
// Main, LC, LTP and LD object types, their error resilient variants, and
// HE-AAC (spectral band replication) and HE-AACv2 (parametric stereo).
//
// # Basic Usage
//
//	dec := aac.NewDecoder()
//	defer dec.Close()
//
//	res, err := dec.Init(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data = data[res.BytesRead:]
//
//	for len(data) > 0 {
//	    samples, info, err := dec.Decode(data)
//	    if info.BytesConsumed == 0 {
//	        break
//	    }
//	    data = data[info.BytesConsumed:]
//	    if err != nil {
//	        continue
//	    }
//	    pcm := samples.([]int16)
//	    // Use pcm, interleaved info.Channels ways.
//	}
//
// Init detects ADIF, ADTS and LOAS headers; other input is treated as raw
// data blocks. Streams from MP4 files are set up with Init2 and the
// AudioSpecificConfig of the track.
//
// # Output
//
// Decode returns []int16, []int32, []float32 or []float64 depending on
// Config.OutputFormat. HE-AAC streams decode at twice the core sampling
// rate; FrameInfo.SampleRate and FrameInfo.SBR report what each frame
// produced. A mono HE-AACv2 stream decodes to stereo. Config.DownMatrix
// folds 5 and 5.1 channel streams into stereo.
//
// # Errors
//
// A failed frame returns an Error, also stored in FrameInfo.Error, and
// resets the decoder state that carries over between frames. Decoding can
// continue with the next frame.
//
// # Thread Safety
//
// Decoder instances are NOT safe for concurrent use. Each goroutine should
// have its own Decoder.
package aac
