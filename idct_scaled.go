package jpegdsp

import "fmt"

// Reduced-size inverse DCTs for decoding at 1/2, 1/4 and 1/8 scale. They take accurate
// (islow) multipliers and write a 4x4, 2x2 or 1x1 block at out[0..n-1][outCol:].
const (
	fix0_211164243 = 1730
	fix0_509795579 = 4176
	fix0_601344887 = 4926
	fix0_720959822 = 5906
	fix0_850430095 = 6967
	fix1_061594337 = 8697
	fix1_272758580 = 10426
	fix1_451774981 = 11893
	fix2_172734803 = 17799
	fix3_624509785 = 29692
)

// IDCTScaled returns the inverse DCT for scale 1/denom: 1 returns the full-size IDCT for m,
// 2, 4 and 8 return the 4x4, 2x2 and 1x1 kernels. The reduced kernels always take ISlow
// multipliers.
func (k *Kernels) IDCTScaled(m DCTMethod, denom int) (IDCTFunc, error) {
	switch denom {
	case 1:
		return k.IDCT(m), nil
	case 2:
		return k.IDCT4x4, nil
	case 4:
		return k.IDCT2x2, nil
	case 8:
		return k.IDCT1x1, nil
	}

	return nil, fmt.Errorf("scale 1/%d: %w", denom, errUnsupportedScaling)
}

// idct4x4 produces a 4x4 block. Term 4 drops out of the reduced transform, so column 4 is
// never computed and never read.
func idct4x4(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var ws [dctSize * 4]int32

	// Pass 1: columns into 4 rows.
	for c := 0; c < dctSize; c++ {
		if c == 4 {
			continue
		}

		var x [dctSize]int32
		for k := range x {
			x[k] = int32(coef[k*dctSize+c]) * int32(mult[k*dctSize+c])
		}

		r := idct4x4Row(x[0], x[2], x[6], x[7], x[5], x[3], x[1], constBits-pass1Bits+1)
		for k, v := range r {
			ws[k*dctSize+c] = v
		}
	}

	// Pass 2: 4 rows into 4 columns.
	for row := 0; row < 4; row++ {
		w := ws[row*dctSize : row*dctSize+dctSize]
		r := idct4x4Row(w[0], w[2], w[6], w[7], w[5], w[3], w[1], constBits+pass1Bits+3+1)

		outp := out[row][outCol : outCol+4]
		for i, v := range r {
			outp[i] = rangeLimit(v + centerSample)
		}
	}
}

// idct4x4Row is the reduced 1-D transform: d0, d2 and d6 are the even inputs, z1..z4 the odd
// inputs 7, 5, 3 and 1.
func idct4x4Row(d0, d2, d6, z1, z2, z3, z4 int32, down uint) [4]int32 {
	// Even part.
	tmp0 := d0 << (constBits + 1)
	tmp2 := d2*fix1_847759065 - d6*fix0_765366865
	tmp10 := tmp0 + tmp2
	tmp12 := tmp0 - tmp2

	// Odd part.
	tmp0 = -z1*fix0_211164243 + z2*fix1_451774981 - z3*fix2_172734803 + z4*fix1_061594337
	tmp2 = -z1*fix0_509795579 - z2*fix0_601344887 + z3*fix0_899976223 + z4*fix2_562915447

	return [4]int32{
		descale(tmp10+tmp2, down),
		descale(tmp12+tmp0, down),
		descale(tmp12-tmp0, down),
		descale(tmp10-tmp2, down),
	}
}

// idct2x2 produces a 2x2 block from the DC and odd terms.
func idct2x2(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var ws [dctSize * 2]int32

	// Pass 1: columns 0, 1, 3, 5 and 7 into 2 rows.
	for _, c := range [...]int{0, 1, 3, 5, 7} {
		dq := func(k int) int32 { return int32(coef[k*dctSize+c]) * int32(mult[k*dctSize+c]) }
		r := idct2x2Pair(dq(0), dq(7), dq(5), dq(3), dq(1), constBits-pass1Bits+2)
		ws[c] = r[0]
		ws[dctSize+c] = r[1]
	}

	// Pass 2: 2 rows into 2 columns.
	for row := 0; row < 2; row++ {
		w := ws[row*dctSize : row*dctSize+dctSize]
		r := idct2x2Pair(w[0], w[7], w[5], w[3], w[1], constBits+pass1Bits+3+2)
		out[row][outCol] = rangeLimit(r[0] + centerSample)
		out[row][outCol+1] = rangeLimit(r[1] + centerSample)
	}
}

func idct2x2Pair(d0, d7, d5, d3, d1 int32, down uint) [2]int32 {
	tmp10 := d0 << (constBits + 2)
	tmp0 := -d7*fix0_720959822 + d5*fix0_850430095 - d3*fix1_272758580 + d1*fix3_624509785

	return [2]int32{descale(tmp10+tmp0, down), descale(tmp10-tmp0, down)}
}

// idct1x1 produces the block average from the DC term.
func idct1x1(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	dc := int32(coef[0]) * int32(mult[0])
	out[0][outCol] = rangeLimit(descale(dc, 3) + centerSample)
}
