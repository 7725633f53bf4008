// Package container splits AAC transport streams into the frames the
// decoder consumes: ADTS and LOAS byte streams, and the audio elementary
// stream of an MPEG transport stream.
package container
