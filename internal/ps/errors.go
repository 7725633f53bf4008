package ps

import "errors"

var (
	ErrMode    = errors.New("ps: reserved iid or icc mode")
	ErrHuffman = errors.New("ps: invalid parameter codeword")
	ErrOverrun = errors.New("ps: extension longer than its payload")
)
