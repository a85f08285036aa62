package jpegdsp

// convSamp is the vector sample conversion: one lane group per block row.
func (bk Backend) convSamp(in [][]byte, startCol int, ws *[dctSize2]int16) {
	for r := 0; r < dctSize; r++ {
		row := in[r][startCol : startCol+dctSize]
		for c := 0; c < dctSize; {
			vl := bk.blockGrant(dctSize - c)
			vsubc8(ws[r*dctSize+c:r*dctSize+c+vl], row[c:], centerSample)
			c += vl
		}
	}
}

// quantize is the vector quantizer: absolute value, add the correction, multiply-high by the
// reciprocal and by the scale, then restore the sign. Tables that do not fit 16-bit lanes are
// quantized by the scalar code.
func (bk Backend) quantize(coef *[dctSize2]int16, div *Divisors, ws *[dctSize2]int16) {
	if !div.vector {
		quantizeScalar(coef, div, ws)
		return
	}

	var ab [maxLanes]uint16
	var sb [maxLanes]int16

	i := 0
	for {
		vl := bk.grant(dctSize2-i, 16)
		if vl == 0 {
			break
		}

		a, s := ab[:vl], sb[:vl]
		vabs16(a, s, ws[i:i+vl])
		vaddu16(a, a, div.corr16[i:i+vl])
		vmulhu16(a, a, div.recip16[i:i+vl])
		vmulhu16(a, a, div.Scale[i:i+vl])
		vsign16(coef[i:i+vl], a, s)

		i += vl
	}

	quantizeFrom(i, coef, div, ws)
}
