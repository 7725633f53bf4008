package tables

// numSWB128 is the band count of short windows, shared by 128 and 120-line
// windows.
var numSWB128 = [12]uint8{
	12, 12, 12, 14, 14, 14, 15, 15, 15, 15, 15, 15,
}

// swb128_96: band edges of 128-line windows, 96kHz/88.2kHz.
var swb128_96 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128,
}

// swb128_64: band edges of 128-line windows, 64kHz.
var swb128_64 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128,
}

// swb128_48: band edges of 128-line windows, 48kHz/44.1kHz/32kHz.
var swb128_48 = []uint16{
	0, 4, 8, 12, 16, 20, 28, 36, 44, 56, 68, 80, 96, 112, 128,
}

// swb128_24: band edges of 128-line windows, 24kHz/22.05kHz.
var swb128_24 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 64, 76, 92, 108, 128,
}

// swb128_16: band edges of 128-line windows, 16kHz/12kHz/11.025kHz.
var swb128_16 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 40, 48, 60, 72, 88, 108, 128,
}

// swb128_8: band edges of 128-line windows, 8kHz.
var swb128_8 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 60, 72, 88, 108, 128,
}

var swbOffset128 = [12][]uint16{
	swb128_96, // 96000
	swb128_96, // 88200
	swb128_64, // 64000
	swb128_48, // 48000
	swb128_48, // 44100
	swb128_48, // 32000
	swb128_24, // 24000
	swb128_24, // 22050
	swb128_16, // 16000
	swb128_16, // 12000
	swb128_16, // 11025
	swb128_8,  // 8000
}
