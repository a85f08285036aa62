package jpegdsp

// h2v1Upsample is the vector 2x1 box upsampler: every lane stores its sample twice.
func (bk Backend) h2v1Upsample(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i++ {
		bk.h2v1UpsampleSpan(outputWidth, in[inRow+i], out[i])
	}
}

// h2v1UpsampleSpan replicates one row and finishes the odd tail with scalar code.
func (bk Backend) h2v1UpsampleSpan(outputWidth int, in, out []byte) {
	var sb [maxLanes]uint16

	pairs := outputWidth / 2
	c := 0
	for {
		vl := bk.grant(pairs-c, 16)
		if vl == 0 {
			break
		}

		s := sb[:vl]
		vzext8(s, in[c:])
		vsse8(out[2*c:], 2, s)
		vsse8(out[2*c+1:], 2, s)

		c += vl
	}

	h2v1UpsampleRow(2*c, outputWidth, in, out)
}

// h2v2Upsample is the vector 2x2 box upsampler.
func (bk Backend) h2v2Upsample(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		bk.h2v1UpsampleSpan(outputWidth, in[inRow+i/2], out[i])
		copy(out[i+1][:outputWidth], out[i][:outputWidth])
	}
}

// h2v1FancyUpsample is the vector triangle-filter 2x1 upsampler. Lanes cover the interior
// input columns [1, downsampledWidth-1); the edge columns use the scalar formulas.
func (bk Backend) h2v1FancyUpsample(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	var curb, nbrb, outb [maxLanes]uint16

	last := downsampledWidth - 1
	for i := 0; i < maxVSamp; i++ {
		inp, outp := in[inRow+i], out[i]
		h2v1FancyCols(0, 1, downsampledWidth, outputWidth, inp, outp)

		c := 1
		for {
			vl := bk.grant(last-c, 16)
			if vl == 0 {
				break
			}

			cur, nbr, o := curb[:vl], nbrb[:vl], outb[:vl]
			vzext8(cur, inp[c:])

			vzext8(nbr, inp[c-1:])
			vmaddu16(o, cur, 3, nbr)
			vaddcu16(o, o, 1)
			vsrlu16(o, o, 2)
			vsse8(outp[2*c:], 2, o)

			vzext8(nbr, inp[c+1:])
			vmaddu16(o, cur, 3, nbr)
			vaddcu16(o, o, 2)
			vsrlu16(o, o, 2)
			vsse8(outp[2*c+1:], 2, o)

			c += vl
		}

		h2v1FancyCols(c, downsampledWidth, downsampledWidth, outputWidth, inp, outp)
	}
}

// h2v2FancyUpsample is the vector triangle-filter 2x2 upsampler.
func (bk Backend) h2v2FancyUpsample(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		cur := in[inRow+i/2]
		bk.h2v2FancyRow(downsampledWidth, outputWidth, cur, in[inRow+i/2-1], out[i])
		bk.h2v2FancyRow(downsampledWidth, outputWidth, cur, in[inRow+i/2+1], out[i+1])
	}
}

// h2v2FancyRow produces one output row from the nearer row in0 and the further row in1.
func (bk Backend) h2v2FancyRow(downsampledWidth, outputWidth int, in0, in1, out []byte) {
	var ab, bb, thisb, nbrb, ob [maxLanes]uint16

	last := downsampledWidth - 1
	h2v2FancyCols(0, 1, downsampledWidth, outputWidth, in0, in1, out)

	// colsum loads the vertical sums 3*in0 + in1 of columns [c, c+len(dst)).
	colsum := func(dst []uint16, c int) {
		a, b := ab[:len(dst)], bb[:len(dst)]
		vzext8(a, in0[c:])
		vzext8(b, in1[c:])
		vmaddu16(dst, a, 3, b)
	}

	c := 1
	for {
		vl := bk.grant(last-c, 16)
		if vl == 0 {
			break
		}

		this, nbr, o := thisb[:vl], nbrb[:vl], ob[:vl]
		colsum(this, c)

		colsum(nbr, c-1)
		vmaddu16(o, this, 3, nbr)
		vaddcu16(o, o, 8)
		vsrlu16(o, o, 4)
		vsse8(out[2*c:], 2, o)

		colsum(nbr, c+1)
		vmaddu16(o, this, 3, nbr)
		vaddcu16(o, o, 7)
		vsrlu16(o, o, 4)
		vsse8(out[2*c+1:], 2, o)

		c += vl
	}

	h2v2FancyCols(c, downsampledWidth, downsampledWidth, outputWidth, in0, in1, out)
}

// h1v2FancyUpsample is the vector triangle-filter 1x2 upsampler.
func (bk Backend) h1v2FancyUpsample(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		cur := in[inRow+i/2]
		bk.h1v2FancySpan(outputWidth, cur, in[inRow+i/2-1], out[i], 1)
		bk.h1v2FancySpan(outputWidth, cur, in[inRow+i/2+1], out[i+1], 2)
	}
}

func (bk Backend) h1v2FancySpan(outputWidth int, in0, in1, out []byte, bias uint16) {
	var ab, bb [maxLanes]uint16

	col := 0
	for {
		vl := bk.grant(outputWidth-col, 16)
		if vl == 0 {
			break
		}

		a, b := ab[:vl], bb[:vl]
		vzext8(a, in0[col:])
		vzext8(b, in1[col:])
		vmaddu16(a, a, 3, b)
		vaddcu16(a, a, bias)
		vsrlu16(a, a, 2)
		vsse8(out[col:], 1, a)

		col += vl
	}

	h1v2FancyRow(col, outputWidth, in0, in1, out, bias)
}
