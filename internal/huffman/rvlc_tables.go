package huffman

// Reversible scale factor codewords for differences -7..7. Every codeword
// is a palindrome so the same table decodes in both directions.
var rvlcCodes = [...]uint32{
	0x041, 0x101, 0x081, 0x021, 0x011, 0x009, 0x005, 0x000,
	0x007, 0x01b, 0x033, 0x06b, 0x0c3, 0x1ab, 0x063,
}

var rvlcLengths = [...]uint8{
	7, 9, 8, 6, 5, 4, 3, 1, 3, 5, 6, 7, 8, 9, 7,
}

// Escape codewords for magnitudes 0..53 beyond the reversible range.
var rvlcEscCodes = [...]uint32{
	0x00002, 0x00000, 0x00006, 0x00002, 0x0000e, 0x0001f, 0x0000f, 0x0000d,
	0x0003d, 0x0001d, 0x00019, 0x00018, 0x00078, 0x00038, 0x000f2, 0x00072,
	0x001e6, 0x000e6, 0x003ce, 0x001cf, 0x0079e, 0x0079f, 0x0039d, 0x00738,
	0x01ce7, 0x00e72, 0x039cd, 0x7398a, 0x7398b, 0x7398c, 0x7398d, 0x7398e,
	0x7398f, 0x73990, 0x73991, 0x73992, 0x73993, 0x73994, 0x73995, 0x73996,
	0x73997, 0x73998, 0x73999, 0x7399a, 0x7399b, 0x7399c, 0x7399d, 0x7399e,
	0x7399f, 0x39cc0, 0x39cc1, 0x39cc2, 0x39cc3, 0x39cc4,
}

var rvlcEscLengths = [...]uint8{
	2, 2, 3, 3, 4, 5, 5, 5, 6, 6, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10,
	11, 11, 11, 12, 14, 13, 15, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20, 20, 19, 19, 19, 19, 19,
}
