package tables

// Low delay windows of 512 and 480 lines only exist for 48, 44.1, 32, 24
// and 22.05 kHz.
var (
	numSWB512 = [12]uint8{0, 0, 0, 36, 36, 37, 31, 31, 0, 0, 0, 0}
	numSWB480 = [12]uint8{0, 0, 0, 35, 35, 37, 30, 30, 0, 0, 0, 0}
)

var swb512_48 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60,
	68, 76, 84, 92, 100, 112, 124, 136, 148, 164, 184, 208, 236, 268,
	300, 332, 364, 396, 428, 460, 512,
}

var swb512_32 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 64,
	72, 80, 88, 96, 108, 120, 132, 144, 160, 176, 192, 212, 236, 260,
	288, 320, 352, 384, 416, 448, 480, 512,
}

var swb512_24 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 52, 60, 68, 80,
	92, 104, 120, 140, 164, 192, 224, 256, 288, 320, 352, 384, 416,
	448, 480, 512,
}

var swb480_48 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 64,
	72, 80, 88, 96, 108, 120, 132, 144, 156, 172, 188, 212, 240, 272,
	304, 336, 368, 400, 432, 480,
}

var swb480_32 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60,
	64, 72, 80, 88, 96, 104, 112, 124, 136, 148, 164, 180, 200, 224,
	256, 288, 320, 352, 384, 416, 448, 480,
}

var swb480_24 = []uint16{
	0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 52, 60, 68, 80,
	92, 104, 120, 140, 164, 192, 224, 256, 288, 320, 352, 384, 416,
	448, 480,
}

var swbOffset512 = [12][]uint16{
	nil, nil, nil, swb512_48, swb512_48, swb512_32, swb512_24, swb512_24, nil, nil, nil, nil,
}

var swbOffset480 = [12][]uint16{
	nil, nil, nil, swb480_48, swb480_48, swb480_32, swb480_24, swb480_24, nil, nil, nil, nil,
}
