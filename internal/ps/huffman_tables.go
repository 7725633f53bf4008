package ps

import "github.com/llehouerou/go-heaac/internal/huffman"

var (
	iidDeltaFreq     = huffman.MustTree(iidDeltaFreqCodes[:], iidDeltaFreqLengths[:], -14)
	iidDeltaTime     = huffman.MustTree(iidDeltaTimeCodes[:], iidDeltaTimeLengths[:], -14)
	iidDeltaFreqFine = huffman.MustTree(iidDeltaFreqFineCodes[:], iidDeltaFreqFineLengths[:], -30)
	iidDeltaTimeFine = huffman.MustTree(iidDeltaTimeFineCodes[:], iidDeltaTimeFineLengths[:], -30)
	iccDeltaFreq     = huffman.MustTree(iccDeltaFreqCodes[:], iccDeltaFreqLengths[:], -7)
	iccDeltaTime     = huffman.MustTree(iccDeltaTimeCodes[:], iccDeltaTimeLengths[:], -7)
	ipdDeltaFreq     = huffman.MustTree(ipdDeltaFreqCodes[:], ipdDeltaFreqLengths[:], 0)
	ipdDeltaTime     = huffman.MustTree(ipdDeltaTimeCodes[:], ipdDeltaTimeLengths[:], 0)
	opdDeltaFreq     = huffman.MustTree(opdDeltaFreqCodes[:], opdDeltaFreqLengths[:], 0)
	opdDeltaTime     = huffman.MustTree(opdDeltaTimeCodes[:], opdDeltaTimeLengths[:], 0)
)

// IID, default resolution, frequency differential.
var iidDeltaFreqCodes = [...]uint32{
	0x1fffb, 0x1fffc, 0x1fffd, 0x1fffa, 0x0fffc, 0x07ffc, 0x01ffd, 0x003fe, 0x001fe, 0x0007e,
	0x0003c, 0x0001d, 0x0000d, 0x00005, 0x00000, 0x00004, 0x0000c, 0x0001c, 0x0003d, 0x0003e,
	0x000fe, 0x007fe, 0x01ffc, 0x03ffc, 0x03ffd, 0x07ffd, 0x1fffe, 0x3fffe, 0x3ffff,
}

var iidDeltaFreqLengths = [...]uint8{
	17, 17, 17, 17, 16, 15, 13, 10, 9, 7, 6, 5, 4, 3, 1, 3, 4, 5, 6, 6,
	8, 11, 13, 14, 14, 15, 17, 18, 18,
}

// IID, default resolution, time differential.
var iidDeltaTimeCodes = [...]uint32{
	0x7fff8, 0x7fff9, 0x7fffa, 0xffff8, 0xffff9, 0xffffa, 0x1fffc, 0x07ffe, 0x00ffe, 0x003fe,
	0x000fe, 0x0003e, 0x0000e, 0x00002, 0x00000, 0x00006, 0x0001e, 0x0007e, 0x001fe, 0x007fe,
	0x01ffe, 0x03ffe, 0x1fffd, 0x7fffb, 0xffffb, 0xffffc, 0xffffd, 0xffffe, 0xfffff,
}

var iidDeltaTimeLengths = [...]uint8{
	19, 19, 19, 20, 20, 20, 17, 15, 12, 10, 8, 6, 4, 2, 1, 3, 5, 7, 9, 11,
	13, 14, 17, 19, 20, 20, 20, 20, 20,
}

// IID, fine resolution, frequency differential.
var iidDeltaFreqFineCodes = [...]uint32{
	0x3ffea, 0x3ffeb, 0x3ffec, 0x3ffed, 0x3ffee, 0x3ffef, 0x3fff0, 0x3fff1, 0x3fff2, 0x1fff0,
	0x3fff3, 0x1fff1, 0x1fff2, 0x0fff4, 0x0fff5, 0x07ff8, 0x03ff8, 0x03ff9, 0x01ffa, 0x00ffa,
	0x00ffb, 0x007fa, 0x003fc, 0x001fc, 0x000fc, 0x0007c, 0x0003c, 0x0001c, 0x0000c, 0x00004,
	0x00000, 0x00005, 0x0000d, 0x0001d, 0x0003d, 0x0007d, 0x000fd, 0x001fd, 0x007fb, 0x007fc,
	0x00ffc, 0x01ffb, 0x03ffa, 0x03ffb, 0x07ff9, 0x0fff6, 0x0fff7, 0x1fff3, 0x1fff4, 0x3fff4,
	0x3fff5, 0x3fff6, 0x3fff7, 0x3fff8, 0x3fff9, 0x3fffa, 0x3fffb, 0x3fffc, 0x3fffd, 0x3fffe,
	0x3ffff,
}

var iidDeltaFreqFineLengths = [...]uint8{
	18, 18, 18, 18, 18, 18, 18, 18, 18, 17, 18, 17, 17, 16, 16, 15, 14, 14, 13, 12,
	12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 1, 3, 4, 5, 6, 7, 8, 9, 11, 11,
	12, 13, 14, 14, 15, 16, 16, 17, 17, 18, 18, 18, 18, 18, 18, 18, 18, 18, 18, 18,
	18,
}

// IID, fine resolution, time differential.
var iidDeltaTimeFineCodes = [...]uint32{
	0xffec, 0xffed, 0xffee, 0xffef, 0xfff0, 0xfff1, 0xfff2, 0xfff3, 0xfff4, 0xfff5,
	0xfff6, 0xfff7, 0xfff8, 0xfff9, 0x7fec, 0x7fed, 0x7fee, 0x7fef, 0x7ff0, 0x7ff1,
	0x3ff2, 0x3ff3, 0x1ff4, 0x1ff5, 0x1ff6, 0x0ff6, 0x0ff7, 0x07f8, 0x03fa, 0x01fa,
	0x01fb, 0x007c, 0x003c, 0x001c, 0x0006, 0x0000, 0x0002, 0x001d, 0x003d, 0x007d,
	0x00fc, 0x01fc, 0x03fb, 0x07f9, 0x07fa, 0x0ff8, 0x0ff9, 0x1ff7, 0x1ff8, 0x3ff4,
	0x3ff5, 0x7ff2, 0x7ff3, 0x7ff4, 0x7ff5, 0xfffa, 0xfffb, 0xfffc, 0xfffd, 0xfffe,
	0xffff,
}

var iidDeltaTimeFineLengths = [...]uint8{
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 16, 15, 15, 15, 15, 15, 15,
	14, 14, 13, 13, 13, 12, 12, 11, 10, 9, 9, 7, 6, 5, 3, 1, 2, 5, 6, 7,
	8, 9, 10, 11, 11, 12, 12, 13, 13, 14, 14, 15, 15, 15, 15, 16, 16, 16, 16, 16,
	16,
}

// ICC, frequency differential.
var iccDeltaFreqCodes = [...]uint32{
	0x3ffe, 0x3fff, 0x0ffe, 0x03fe, 0x007e, 0x001e, 0x0006, 0x0000, 0x0002, 0x000e,
	0x003e, 0x00fe, 0x01fe, 0x07fe, 0x1ffe,
}

var iccDeltaFreqLengths = [...]uint8{
	14, 14, 12, 10, 7, 5, 3, 1, 2, 4, 6, 8, 9, 11, 13,
}

// ICC, time differential.
var iccDeltaTimeCodes = [...]uint32{
	0x3ffe, 0x1ffe, 0x07fe, 0x01fe, 0x007e, 0x001e, 0x0006, 0x0000, 0x0002, 0x000e,
	0x003e, 0x00fe, 0x03fe, 0x0ffe, 0x3fff,
}

var iccDeltaTimeLengths = [...]uint8{
	14, 13, 11, 9, 7, 5, 3, 1, 2, 4, 6, 8, 10, 12, 14,
}

// IPD, frequency differential.
var ipdDeltaFreqCodes = [...]uint32{
	0x1, 0x0, 0x6, 0x4, 0x2, 0x3, 0x5, 0x7,
}

var ipdDeltaFreqLengths = [...]uint8{
	1, 3, 4, 4, 4, 4, 4, 4,
}

// IPD, time differential.
var ipdDeltaTimeCodes = [...]uint32{
	0x01, 0x02, 0x02, 0x03, 0x02, 0x00, 0x03, 0x03,
}

var ipdDeltaTimeLengths = [...]uint8{
	1, 3, 4, 5, 5, 4, 4, 3,
}

// OPD, frequency differential.
var opdDeltaFreqCodes = [...]uint32{
	0x01, 0x01, 0x06, 0x04, 0x0f, 0x0e, 0x05, 0x00,
}

var opdDeltaFreqLengths = [...]uint8{
	1, 3, 4, 4, 5, 5, 4, 3,
}

// OPD, time differential.
var opdDeltaTimeCodes = [...]uint32{
	0x01, 0x02, 0x01, 0x07, 0x06, 0x00, 0x02, 0x03,
}

var opdDeltaTimeLengths = [...]uint8{
	1, 3, 4, 5, 5, 4, 4, 3,
}
