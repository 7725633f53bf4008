package huffman

// Spectrum codebook 4: unsigned quadruples, values 0..2.
var hcb4Codes = [...]uint16{
	0x007, 0x016, 0x1ec, 0x018, 0x008, 0x0ef, 0x1ef, 0x0f3, 0x7f8, 0x019,
	0x017, 0x0ed, 0x015, 0x001, 0x0e2, 0x0f0, 0x070, 0x3f0, 0x1ee, 0x0f1,
	0x7fa, 0x0ee, 0x0e4, 0x3f2, 0x7f9, 0x3ef, 0x7fd, 0x005, 0x014, 0x0f2,
	0x009, 0x004, 0x0e5, 0x0f4, 0x0e8, 0x3f4, 0x006, 0x002, 0x0e7, 0x003,
	0x000, 0x06b, 0x0e3, 0x069, 0x1f3, 0x0eb, 0x0e6, 0x3f6, 0x06e, 0x06a,
	0x1f4, 0x3ec, 0x1f0, 0x3f9, 0x0f5, 0x0ec, 0x7fb, 0x0ea, 0x06f, 0x3f7,
	0x1f1, 0x3fb, 0xfff, 0x06c, 0x0e9, 0x3f8, 0x1f2, 0x068, 0x3ea, 0x3ee,
	0x3eb, 0x7fc, 0x3f1, 0x3f3, 0xffe, 0x1ed, 0x06d, 0x3f5, 0x3ed, 0x3fa,
	0x7fe,
}

var hcb4Lengths = [...]uint8{
	4, 5, 9, 5, 4, 8, 9, 8, 11, 5, 5, 8, 5, 4, 8, 8, 7, 10, 9, 8,
	11, 8, 8, 10, 11, 10, 11, 4, 5, 8, 4, 4, 8, 8, 8, 10, 4, 4, 8, 4,
	4, 7, 8, 7, 9, 8, 8, 10, 7, 7, 9, 10, 9, 10, 8, 8, 11, 8, 7, 10,
	9, 10, 12, 7, 8, 10, 9, 7, 10, 10, 10, 11, 10, 10, 12, 9, 7, 10, 10, 10,
	11,
}
