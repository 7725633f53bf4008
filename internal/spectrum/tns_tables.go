package spectrum

// Reflection coefficients by transmitted index, one table per coefficient
// resolution and compression setting.
var (
	tnsCoef03 = [16]float32{
		0.0, 0.4338837391, 0.7818314825, 0.9749279122,
		-0.9848077530, -0.8660254038, -0.6427876097, -0.3420201433,
		-0.4338837391, -0.7818314825, -0.9749279122, -0.9749279122,
		-0.9848077530, -0.8660254038, -0.6427876097, -0.3420201433,
	}
	tnsCoef04 = [16]float32{
		0.0, 0.2079116908, 0.4067366431, 0.5877852523,
		0.7431448255, 0.8660254038, 0.9510565163, 0.9945218954,
		-0.9957341763, -0.9618256432, -0.8951632914, -0.7980172273,
		-0.6736956436, -0.5264321629, -0.3612416662, -0.1837495178,
	}
	tnsCoef13 = [16]float32{
		0.0, 0.4338837391, -0.6427876097, -0.3420201433,
		0.9749279122, 0.7818314825, -0.6427876097, -0.3420201433,
		-0.4338837391, -0.7818314825, -0.6427876097, -0.3420201433,
		-0.7818314825, -0.4338837391, -0.6427876097, -0.3420201433,
	}
	tnsCoef14 = [16]float32{
		0.0, 0.2079116908, 0.4067366431, 0.5877852523,
		-0.6736956436, -0.5264321629, -0.3612416662, -0.1837495178,
		0.9945218954, 0.9510565163, 0.8660254038, 0.7431448255,
		-0.6736956436, -0.5264321629, -0.3612416662, -0.1837495178,
	}
)

// tnsCoefTable returns the table for a filter. coefRes is the transmitted
// resolution flag (0 for 3 bits, 1 for 4 bits).
func tnsCoefTable(coefCompress, coefRes uint8) *[16]float32 {
	switch {
	case coefCompress == 0 && coefRes == 0:
		return &tnsCoef03
	case coefCompress == 0:
		return &tnsCoef04
	case coefRes == 0:
		return &tnsCoef13
	default:
		return &tnsCoef14
	}
}
