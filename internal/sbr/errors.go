package sbr

import "errors"

var (
	ErrFrequencyRange  = errors.New("sbr: invalid start or stop frequency")
	ErrMasterTable     = errors.New("sbr: invalid master frequency table")
	ErrCrossover       = errors.New("sbr: crossover band beyond master table")
	ErrBandLimits      = errors.New("sbr: derived bands exceed the QMF range")
	ErrPatches         = errors.New("sbr: too many patches")
	ErrFrameGrid       = errors.New("sbr: invalid time borders")
	ErrEnvelope        = errors.New("sbr: invalid envelope data")
	ErrPayloadOverrun  = errors.New("sbr: payload longer than its fill element")
	ErrNotInitialised  = errors.New("sbr: data without a preceding header")
	ErrUnsupportedRate = errors.New("sbr: unsupported sample rate or frame length")
)
