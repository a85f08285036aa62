package jpegdsp

// The vector DCTs run every 1-D pass with lanes across the block: lane i of row k holds
// element k of the i-th 1-D transform. The row pass is done on the transposed block, so both
// passes use the same column-oriented butterfly and only contiguous loads. Integer adds,
// multiplies and left shifts commute with reduction modulo 2^32, so the lanes produce the
// scalar results for every input, including the wrapping ones.

// lanes32 returns the eight rows of a 32-bit tile restricted to columns [c, c+vl).
func lanes32(t *[dctSize2]int32, c, vl int) (x [dctSize][]int32) {
	for k := range x {
		x[k] = t[k*dctSize+c : k*dctSize+c+vl]
	}

	return x
}

// lanes16 is lanes32 for 16-bit tiles.
func lanes16(t *[dctSize2]int16, c, vl int) (x [dctSize][]int16) {
	for k := range x {
		x[k] = t[k*dctSize+c : k*dctSize+c+vl]
	}

	return x
}

// fdctIslow is the vector accurate forward DCT.
func (bk Backend) fdctIslow(data *[dctSize2]int16) {
	var tile, tr [dctSize2]int32

	vwiden16(tile[:], data[:])
	transpose8x8(&tr, &tile)
	bk.fdctIslowPass(&tr, pass1Bits, constBits-pass1Bits)
	transpose8x8(&tile, &tr)

	// The row pass result is stored in 16 bits between the passes.
	vnsra32(data[:], tile[:], 0)
	vwiden16(tile[:], data[:])
	bk.fdctIslowPass(&tile, 0, constBits+pass1Bits)
	vnsra32(data[:], tile[:], 0)
}

// fdctIslowPass runs fdctIslow1D on every column of t, a lane group of columns at a time.
func (bk Backend) fdctIslowPass(t *[dctSize2]int32, up, down uint) {
	var b [18][dctSize]int32

	for c := 0; c < dctSize; {
		vl := bk.blockGrant(dctSize - c)
		x := lanes32(t, c, vl)
		tmp0, tmp1, tmp2, tmp3 := b[0][:vl], b[1][:vl], b[2][:vl], b[3][:vl]
		tmp4, tmp5, tmp6, tmp7 := b[4][:vl], b[5][:vl], b[6][:vl], b[7][:vl]
		tmp10, tmp11, tmp12, tmp13 := b[8][:vl], b[9][:vl], b[10][:vl], b[11][:vl]
		z1, z2, z3, z4, z5, s := b[12][:vl], b[13][:vl], b[14][:vl], b[15][:vl], b[16][:vl], b[17][:vl]

		vadd32(tmp0, x[0], x[7])
		vsub32(tmp7, x[0], x[7])
		vadd32(tmp1, x[1], x[6])
		vsub32(tmp6, x[1], x[6])
		vadd32(tmp2, x[2], x[5])
		vsub32(tmp5, x[2], x[5])
		vadd32(tmp3, x[3], x[4])
		vsub32(tmp4, x[3], x[4])

		// Even part.
		vadd32(tmp10, tmp0, tmp3)
		vsub32(tmp13, tmp0, tmp3)
		vadd32(tmp11, tmp1, tmp2)
		vsub32(tmp12, tmp1, tmp2)

		vadd32(x[0], tmp10, tmp11)
		vsub32(x[4], tmp10, tmp11)
		if up > 0 {
			vsll32(x[0], x[0], up)
			vsll32(x[4], x[4], up)
		} else {
			vsra32r(x[0], x[0], pass1Bits)
			vsra32r(x[4], x[4], pass1Bits)
		}

		vadd32(z1, tmp12, tmp13)
		vmul32(z1, z1, fix0_541196100)
		vmul32(s, tmp13, fix0_765366865)
		vadd32(s, s, z1)
		vsra32r(x[2], s, down)
		vmul32(s, tmp12, -fix1_847759065)
		vadd32(s, s, z1)
		vsra32r(x[6], s, down)

		// Odd part.
		vadd32(z1, tmp4, tmp7)
		vadd32(z2, tmp5, tmp6)
		vadd32(z3, tmp4, tmp6)
		vadd32(z4, tmp5, tmp7)
		vadd32(z5, z3, z4)
		vmul32(z5, z5, fix1_175875602)

		vmul32(tmp4, tmp4, fix0_298631336)
		vmul32(tmp5, tmp5, fix2_053119869)
		vmul32(tmp6, tmp6, fix3_072711026)
		vmul32(tmp7, tmp7, fix1_501321110)
		vmul32(z1, z1, -fix0_899976223)
		vmul32(z2, z2, -fix2_562915447)
		vmul32(z3, z3, -fix1_961570560)
		vmul32(z4, z4, -fix0_390180644)

		vadd32(z3, z3, z5)
		vadd32(z4, z4, z5)

		vadd32(s, tmp4, z1)
		vadd32(s, s, z3)
		vsra32r(x[7], s, down)
		vadd32(s, tmp5, z2)
		vadd32(s, s, z4)
		vsra32r(x[5], s, down)
		vadd32(s, tmp6, z2)
		vadd32(s, s, z3)
		vsra32r(x[3], s, down)
		vadd32(s, tmp7, z1)
		vadd32(s, s, z4)
		vsra32r(x[1], s, down)

		c += vl
	}
}

// fdctIfast is the vector fast forward DCT.
func (bk Backend) fdctIfast(data *[dctSize2]int16) {
	var tr [dctSize2]int16

	transpose8x8i16(&tr, data)
	bk.fdctIfastPass(&tr)
	transpose8x8i16(data, &tr)
	bk.fdctIfastPass(data)
}

// vfastMultiply is fastMultiply on lanes: a widening multiply narrowed by the 8 fraction bits.
func vfastMultiply(dst, a []int16, c int16, wide []int32) {
	vwmul16(wide, a, c)
	vnsra32(dst, wide, fastConstBits)
}

func (bk Backend) fdctIfastPass(t *[dctSize2]int16) {
	var b [19][dctSize]int16
	var wb [dctSize]int32

	for c := 0; c < dctSize; {
		vl := bk.blockGrant(dctSize - c)
		x := lanes16(t, c, vl)
		w := wb[:vl]
		tmp0, tmp1, tmp2, tmp3 := b[0][:vl], b[1][:vl], b[2][:vl], b[3][:vl]
		tmp4, tmp5, tmp6, tmp7 := b[4][:vl], b[5][:vl], b[6][:vl], b[7][:vl]
		tmp10, tmp11, tmp12, tmp13 := b[8][:vl], b[9][:vl], b[10][:vl], b[11][:vl]
		z1, z2, z3, z4, z5 := b[12][:vl], b[13][:vl], b[14][:vl], b[15][:vl], b[16][:vl]
		z11, z13 := b[17][:vl], b[18][:vl]

		vadd16(tmp0, x[0], x[7])
		vsub16(tmp7, x[0], x[7])
		vadd16(tmp1, x[1], x[6])
		vsub16(tmp6, x[1], x[6])
		vadd16(tmp2, x[2], x[5])
		vsub16(tmp5, x[2], x[5])
		vadd16(tmp3, x[3], x[4])
		vsub16(tmp4, x[3], x[4])

		// Even part.
		vadd16(tmp10, tmp0, tmp3)
		vsub16(tmp13, tmp0, tmp3)
		vadd16(tmp11, tmp1, tmp2)
		vsub16(tmp12, tmp1, tmp2)

		vadd16(x[0], tmp10, tmp11)
		vsub16(x[4], tmp10, tmp11)

		vadd16(z1, tmp12, tmp13)
		vfastMultiply(z1, z1, fastFix0_707106781, w)
		vadd16(x[2], tmp13, z1)
		vsub16(x[6], tmp13, z1)

		// Odd part.
		vadd16(tmp10, tmp4, tmp5)
		vadd16(tmp11, tmp5, tmp6)
		vadd16(tmp12, tmp6, tmp7)

		vsub16(z5, tmp10, tmp12)
		vfastMultiply(z5, z5, fastFix0_382683433, w)
		vfastMultiply(z2, tmp10, fastFix0_541196100, w)
		vadd16(z2, z2, z5)
		vfastMultiply(z4, tmp12, fastFix1_306562965, w)
		vadd16(z4, z4, z5)
		vfastMultiply(z3, tmp11, fastFix0_707106781, w)

		vadd16(z11, tmp7, z3)
		vsub16(z13, tmp7, z3)

		vadd16(x[5], z13, z2)
		vsub16(x[3], z13, z2)
		vadd16(x[1], z11, z4)
		vsub16(x[7], z11, z4)

		c += vl
	}
}
