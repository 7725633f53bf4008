// Package spectrum turns the quantised lines of parsed channel streams into
// MDCT coefficients ready for the synthesis filterbank.
//
// The stages run in a fixed order per element: pulses are added to the
// quantised values, lines are dequantised and scaled, noise bands are
// filled, stereo pairs are undone with M/S and intensity stereo, and the
// prediction tools and TNS finish the spectrum. Every stage works in place
// on float32 slices holding one frame with short windows stored
// contiguously.
package spectrum
