package jpegdsp

// idctIslow is the vector accurate inverse DCT. The column pass runs on the dequantized
// block with columns as lanes; the row pass runs the same butterfly on the transposed
// workspace, and the result is transposed back for contiguous stores.
func (bk Backend) idctIslow(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var tile, tr [dctSize2]int32

	vwmulvv16(tile[:], coef[:], mult[:])
	bk.idctIslowPass(&tile, constBits-pass1Bits)
	transpose8x8(&tr, &tile)
	bk.idctIslowPass(&tr, constBits+pass1Bits+3)
	transpose8x8(&tile, &tr)

	for r := 0; r < dctSize; r++ {
		vpackus32(out[r][outCol:], 1, tile[r*dctSize:r*dctSize+dctSize])
	}
}

func (bk Backend) idctIslowPass(t *[dctSize2]int32, down uint) {
	var b [14][dctSize]int32

	for c := 0; c < dctSize; {
		vl := bk.blockGrant(dctSize - c)
		x := lanes32(t, c, vl)
		tmp0, tmp1, tmp2, tmp3 := b[0][:vl], b[1][:vl], b[2][:vl], b[3][:vl]
		tmp10, tmp11, tmp12, tmp13 := b[4][:vl], b[5][:vl], b[6][:vl], b[7][:vl]
		z1, z2, z3, z4, z5, s := b[8][:vl], b[9][:vl], b[10][:vl], b[11][:vl], b[12][:vl], b[13][:vl]

		// Even part.
		vadd32(z1, x[2], x[6])
		vmul32(z1, z1, fix0_541196100)
		vmul32(tmp2, x[6], -fix1_847759065)
		vadd32(tmp2, tmp2, z1)
		vmul32(tmp3, x[2], fix0_765366865)
		vadd32(tmp3, tmp3, z1)

		vadd32(tmp0, x[0], x[4])
		vsll32(tmp0, tmp0, constBits)
		vsub32(tmp1, x[0], x[4])
		vsll32(tmp1, tmp1, constBits)

		vadd32(tmp10, tmp0, tmp3)
		vsub32(tmp13, tmp0, tmp3)
		vadd32(tmp11, tmp1, tmp2)
		vsub32(tmp12, tmp1, tmp2)

		// Odd part.
		vadd32(z1, x[7], x[1])
		vadd32(z2, x[5], x[3])
		vadd32(z3, x[7], x[3])
		vadd32(z4, x[5], x[1])
		vadd32(z5, z3, z4)
		vmul32(z5, z5, fix1_175875602)

		vmul32(tmp0, x[7], fix0_298631336)
		vmul32(tmp1, x[5], fix2_053119869)
		vmul32(tmp2, x[3], fix3_072711026)
		vmul32(tmp3, x[1], fix1_501321110)
		vmul32(z1, z1, -fix0_899976223)
		vmul32(z2, z2, -fix2_562915447)
		vmul32(z3, z3, -fix1_961570560)
		vmul32(z4, z4, -fix0_390180644)

		vadd32(z3, z3, z5)
		vadd32(z4, z4, z5)

		vadd32(s, z1, z3)
		vadd32(tmp0, tmp0, s)
		vadd32(s, z2, z4)
		vadd32(tmp1, tmp1, s)
		vadd32(s, z2, z3)
		vadd32(tmp2, tmp2, s)
		vadd32(s, z1, z4)
		vadd32(tmp3, tmp3, s)

		vadd32(x[0], tmp10, tmp3)
		vsra32r(x[0], x[0], down)
		vsub32(x[7], tmp10, tmp3)
		vsra32r(x[7], x[7], down)
		vadd32(x[1], tmp11, tmp2)
		vsra32r(x[1], x[1], down)
		vsub32(x[6], tmp11, tmp2)
		vsra32r(x[6], x[6], down)
		vadd32(x[2], tmp12, tmp1)
		vsra32r(x[2], x[2], down)
		vsub32(x[5], tmp12, tmp1)
		vsra32r(x[5], x[5], down)
		vadd32(x[3], tmp13, tmp0)
		vsra32r(x[3], x[3], down)
		vsub32(x[4], tmp13, tmp0)
		vsra32r(x[4], x[4], down)

		c += vl
	}
}

// idctIfast is the vector fast inverse DCT. Like the scalar one it truncates the final
// descale.
func (bk Backend) idctIfast(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var tile, tr [dctSize2]int16
	var wide [dctSize]int32

	vmullo16(tile[:], coef[:], mult[:])
	bk.idctIfastPass(&tile)
	transpose8x8i16(&tr, &tile)
	bk.idctIfastPass(&tr)
	transpose8x8i16(&tile, &tr)

	for r := 0; r < dctSize; r++ {
		vwiden16(wide[:], tile[r*dctSize:r*dctSize+dctSize])
		vsra32(wide[:], wide[:], pass1Bits+3)
		vpackus32(out[r][outCol:], 1, wide[:])
	}
}

func (bk Backend) idctIfastPass(t *[dctSize2]int16) {
	var b [16][dctSize]int16
	var wb [dctSize]int32

	for c := 0; c < dctSize; {
		vl := bk.blockGrant(dctSize - c)
		x := lanes16(t, c, vl)
		w := wb[:vl]
		tmp0, tmp1, tmp2, tmp3 := b[0][:vl], b[1][:vl], b[2][:vl], b[3][:vl]
		tmp4, tmp5, tmp6, tmp7 := b[4][:vl], b[5][:vl], b[6][:vl], b[7][:vl]
		tmp10, tmp11, tmp12, tmp13 := b[8][:vl], b[9][:vl], b[10][:vl], b[11][:vl]
		z5, z10, z11, z12 := b[12][:vl], b[13][:vl], b[14][:vl], b[15][:vl]
		z13 := tmp4

		// Even part.
		vadd16(tmp10, x[0], x[4])
		vsub16(tmp11, x[0], x[4])
		vadd16(tmp13, x[2], x[6])
		vsub16(tmp12, x[2], x[6])
		vfastMultiply(tmp12, tmp12, fastFix1_414213562, w)
		vsub16(tmp12, tmp12, tmp13)

		vadd16(tmp0, tmp10, tmp13)
		vsub16(tmp3, tmp10, tmp13)
		vadd16(tmp1, tmp11, tmp12)
		vsub16(tmp2, tmp11, tmp12)

		// Odd part.
		vadd16(z13, x[5], x[3])
		vsub16(z10, x[5], x[3])
		vadd16(z11, x[1], x[7])
		vsub16(z12, x[1], x[7])

		vadd16(tmp7, z11, z13)
		vsub16(tmp11, z11, z13)
		vfastMultiply(tmp11, tmp11, fastFix1_414213562, w)
		vadd16(z5, z10, z12)
		vfastMultiply(z5, z5, fastFix1_847759065, w)
		vfastMultiply(tmp10, z12, fastFix1_082392200, w)
		vsub16(tmp10, tmp10, z5)
		vfastMultiply(tmp12, z10, -fastFix2_613125930, w)
		vadd16(tmp12, tmp12, z5)

		vsub16(tmp6, tmp12, tmp7)
		vsub16(tmp5, tmp11, tmp6)
		vadd16(tmp4, tmp10, tmp5)

		vadd16(x[0], tmp0, tmp7)
		vsub16(x[7], tmp0, tmp7)
		vadd16(x[1], tmp1, tmp6)
		vsub16(x[6], tmp1, tmp6)
		vadd16(x[2], tmp2, tmp5)
		vsub16(x[5], tmp2, tmp5)
		vadd16(x[4], tmp3, tmp4)
		vsub16(x[3], tmp3, tmp4)

		c += vl
	}
}
