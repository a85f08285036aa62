package jpegdsp

// Fast IDCT constants, scaled by 2^8.
const (
	fastFix1_082392200 = 277
	fastFix1_414213562 = 362
	fastFix1_847759065 = 473
	fastFix2_613125930 = 669
)

// The inverse DCTs dequantize coef with mult, transform columns into a workspace and then
// rows into out[0..7][outCol : outCol+8], level shifted by 128 and clamped to [0, 255].
// In the accurate IDCT a column or row whose AC terms are all zero takes a shortcut that
// computes the same value as the full transform.

// idctIslowScalar is the accurate inverse DCT. The workspace carries PASS1_BITS of extra
// precision, removed together with the 2^3 block scale in the row pass.
func idctIslowScalar(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var ws [dctSize2]int32

	// Pass 1: columns.
	for c := 0; c < dctSize; c++ {
		var x [dctSize]int32
		ac := int16(0)
		for k := range x {
			x[k] = int32(coef[k*dctSize+c]) * int32(mult[k*dctSize+c])
			if k > 0 {
				ac |= coef[k*dctSize+c]
			}
		}

		if ac == 0 {
			dc := descale(x[0]<<constBits, constBits-pass1Bits)
			for k := 0; k < dctSize; k++ {
				ws[k*dctSize+c] = dc
			}

			continue
		}

		idctIslow1D(&x, constBits-pass1Bits)
		for k, v := range x {
			ws[k*dctSize+c] = v
		}
	}

	// Pass 2: rows.
	for r := 0; r < dctSize; r++ {
		var x [dctSize]int32
		copy(x[:], ws[r*dctSize:r*dctSize+dctSize])
		outp := out[r][outCol : outCol+dctSize]

		if x[1]|x[2]|x[3]|x[4]|x[5]|x[6]|x[7] == 0 {
			v := rangeLimit(descale(x[0]<<constBits, constBits+pass1Bits+3) + centerSample)
			for i := range outp {
				outp[i] = v
			}

			continue
		}

		idctIslow1D(&x, constBits+pass1Bits+3)
		for i, v := range x {
			outp[i] = rangeLimit(v + centerSample)
		}
	}
}

// idctIslow1D is the 1-D accurate inverse transform, descaling its outputs by down.
func idctIslow1D(x *[dctSize]int32, down uint) {
	// Even part.
	z2, z3 := x[2], x[6]
	z1 := (z2 + z3) * fix0_541196100
	tmp2 := z1 - z3*fix1_847759065
	tmp3 := z1 + z2*fix0_765366865

	z2, z3 = x[0], x[4]
	tmp0 := (z2 + z3) << constBits
	tmp1 := (z2 - z3) << constBits

	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	// Odd part.
	tmp0, tmp1, tmp2, tmp3 = x[7], x[5], x[3], x[1]

	z1 = tmp0 + tmp3
	z2 = tmp1 + tmp2
	z3 = tmp0 + tmp2
	z4 := tmp1 + tmp3
	z5 := (z3 + z4) * fix1_175875602

	tmp0 *= fix0_298631336
	tmp1 *= fix2_053119869
	tmp2 *= fix3_072711026
	tmp3 *= fix1_501321110
	z1 *= -fix0_899976223
	z2 *= -fix2_562915447
	z3 *= -fix1_961570560
	z4 *= -fix0_390180644

	z3 += z5
	z4 += z5

	tmp0 += z1 + z3
	tmp1 += z2 + z4
	tmp2 += z2 + z3
	tmp3 += z1 + z4

	x[0] = descale(tmp10+tmp3, down)
	x[7] = descale(tmp10-tmp3, down)
	x[1] = descale(tmp11+tmp2, down)
	x[6] = descale(tmp11-tmp2, down)
	x[2] = descale(tmp12+tmp1, down)
	x[5] = descale(tmp12-tmp1, down)
	x[3] = descale(tmp13+tmp0, down)
	x[4] = descale(tmp13-tmp0, down)
}

// idctIfastScalar is the fast inverse DCT. Dequantization, the workspace and all
// intermediates are 16-bit; mult carries the AAN scale factors and PASS1_BITS of precision.
// The final descale truncates, as in libjpeg-turbo, so outputs are biased by -1/2 relative
// to the accurate IDCT.
func idctIfastScalar(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var ws [dctSize2]int16

	// Pass 1: columns.
	for c := 0; c < dctSize; c++ {
		var x [dctSize]int16
		for k := range x {
			x[k] = coef[k*dctSize+c] * mult[k*dctSize+c]
		}

		idctIfast1D(&x)
		for k, v := range x {
			ws[k*dctSize+c] = v
		}
	}

	// Pass 2: rows.
	for r := 0; r < dctSize; r++ {
		var x [dctSize]int16
		copy(x[:], ws[r*dctSize:r*dctSize+dctSize])
		idctIfast1D(&x)

		outp := out[r][outCol : outCol+dctSize]
		for i, v := range x {
			outp[i] = rangeLimit(int32(v)>>(pass1Bits+3) + centerSample)
		}
	}
}

// idctIfast1D is the 1-D fast inverse transform.
func idctIfast1D(x *[dctSize]int16) {
	// Even part.
	tmp10 := x[0] + x[4]
	tmp11 := x[0] - x[4]
	tmp13 := x[2] + x[6]
	tmp12 := fastMultiply(x[2]-x[6], fastFix1_414213562) - tmp13

	tmp0 := tmp10 + tmp13
	tmp3 := tmp10 - tmp13
	tmp1 := tmp11 + tmp12
	tmp2 := tmp11 - tmp12

	// Odd part.
	z13 := x[5] + x[3]
	z10 := x[5] - x[3]
	z11 := x[1] + x[7]
	z12 := x[1] - x[7]

	tmp7 := z11 + z13
	tmp11 = fastMultiply(z11-z13, fastFix1_414213562)
	z5 := fastMultiply(z10+z12, fastFix1_847759065)
	tmp10 = fastMultiply(z12, fastFix1_082392200) - z5
	tmp12 = fastMultiply(z10, -fastFix2_613125930) + z5

	tmp6 := tmp12 - tmp7
	tmp5 := tmp11 - tmp6
	tmp4 := tmp10 + tmp5

	x[0] = tmp0 + tmp7
	x[7] = tmp0 - tmp7
	x[1] = tmp1 + tmp6
	x[6] = tmp1 - tmp6
	x[2] = tmp2 + tmp5
	x[5] = tmp2 - tmp5
	x[4] = tmp3 + tmp4
	x[3] = tmp3 - tmp4
}
