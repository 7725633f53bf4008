package huffman

// Spectrum codebook 8: unsigned pairs, values 0..7.
var hcb8Codes = [...]uint16{
	0x00e, 0x005, 0x010, 0x030, 0x06f, 0x0f1, 0x1fa, 0x3fe, 0x003, 0x000,
	0x004, 0x012, 0x02c, 0x06a, 0x075, 0x0f8, 0x00f, 0x002, 0x006, 0x014,
	0x02e, 0x069, 0x072, 0x0f5, 0x02f, 0x011, 0x013, 0x02a, 0x032, 0x06c,
	0x0ec, 0x0fa, 0x071, 0x02b, 0x02d, 0x031, 0x06d, 0x070, 0x0f2, 0x1f9,
	0x0ef, 0x068, 0x033, 0x06b, 0x06e, 0x0ee, 0x0f9, 0x3fc, 0x1f8, 0x074,
	0x073, 0x0ed, 0x0f0, 0x0f6, 0x1f6, 0x1fd, 0x3fd, 0x0f3, 0x0f4, 0x0f7,
	0x1f7, 0x1fb, 0x1fc, 0x3ff,
}

var hcb8Lengths = [...]uint8{
	5, 4, 5, 6, 7, 8, 9, 10, 4, 3, 4, 5, 6, 7, 7, 8, 5, 4, 4, 5,
	6, 7, 7, 8, 6, 5, 5, 6, 6, 7, 8, 8, 7, 6, 6, 6, 7, 7, 8, 9,
	8, 7, 6, 7, 7, 8, 8, 10, 9, 7, 7, 8, 8, 8, 9, 9, 10, 8, 8, 8,
	9, 9, 9, 10,
}
