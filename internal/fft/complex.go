package fft

// Complex is a single precision complex value laid out as two float32s, the
// form every transform of the decoder works on.
type Complex struct {
	Re float32
	Im float32
}

func (a Complex) add(b Complex) Complex { return Complex{a.Re + b.Re, a.Im + b.Im} }
func (a Complex) sub(b Complex) Complex { return Complex{a.Re - b.Re, a.Im - b.Im} }

func (a Complex) mul(b Complex) Complex {
	return Complex{a.Re*b.Re - a.Im*b.Im, a.Re*b.Im + a.Im*b.Re}
}

// mulNegI returns -i*a.
func (a Complex) mulNegI() Complex { return Complex{a.Im, -a.Re} }

// ComplexMult rotates (x1, x2) by the angle whose cosine and sine are c1 and
// c2:
//
//	y1 = x1*c1 + x2*c2
//	y2 = x2*c1 - x1*c2
//
// The MDCT pre and post twiddles are expressed with it.
func ComplexMult(x1, x2, c1, c2 float32) (y1, y2 float32) {
	y1 = x1*c1 + x2*c2
	y2 = x2*c1 - x1*c2
	return
}
