package jpegdsp

// Accurate integer DCT constants, FIX(x) = round(x * 2^13).
const (
	constBits = 13
	pass1Bits = 2

	fix0_298631336 = 2446
	fix0_390180644 = 3196
	fix0_541196100 = 4433
	fix0_765366865 = 6270
	fix0_899976223 = 7373
	fix1_175875602 = 9633
	fix1_501321110 = 12299
	fix1_847759065 = 15137
	fix1_961570560 = 16069
	fix2_053119869 = 16819
	fix2_562915447 = 20995
	fix3_072711026 = 25172
)

// Fast integer DCT constants, scaled by 2^8.
const (
	fastConstBits = 8

	fastFix0_382683433 = 98
	fastFix0_541196100 = 139
	fastFix0_707106781 = 181
	fastFix1_306562965 = 334
)

// descale divides by 2^n, rounding half up.
func descale(x int32, n uint) int32 {
	return (x + 1<<(n-1)) >> n
}

// fdctIslowScalar is the accurate forward DCT (Loeffler, Ligtenberg and Moschytz, 12
// multiplies and 32 adds per 1-D pass). It works in place on a block of centered samples.
// Pass 1 keeps PASS1_BITS of extra precision; pass 2 removes it, so the output is the true
// DCT scaled up by 8. Intermediates are 32-bit.
func fdctIslowScalar(data *[dctSize2]int16) {
	for r := 0; r < dctSize; r++ {
		fdctIslow1D(data, r*dctSize, 1, pass1Bits, constBits-pass1Bits)
	}

	for c := 0; c < dctSize; c++ {
		fdctIslow1D(data, c, dctSize, 0, constBits+pass1Bits)
	}
}

// fdctIslow1D transforms the 8 elements at data[off + k*step]. The DC and Nyquist outputs are
// shifted left by up (pass 1) or descaled by PASS1_BITS (pass 2); the rotated outputs are
// descaled by down.
func fdctIslow1D(data *[dctSize2]int16, off, step int, up, down uint) {
	d := func(k int) int32 { return int32(data[off+k*step]) }
	put := func(k int, v int32) { data[off+k*step] = int16(v) }

	tmp0 := d(0) + d(7)
	tmp7 := d(0) - d(7)
	tmp1 := d(1) + d(6)
	tmp6 := d(1) - d(6)
	tmp2 := d(2) + d(5)
	tmp5 := d(2) - d(5)
	tmp3 := d(3) + d(4)
	tmp4 := d(3) - d(4)

	// Even part.
	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	if up > 0 {
		put(0, (tmp10+tmp11)<<up)
		put(4, (tmp10-tmp11)<<up)
	} else {
		put(0, descale(tmp10+tmp11, pass1Bits))
		put(4, descale(tmp10-tmp11, pass1Bits))
	}

	z1 := (tmp12 + tmp13) * fix0_541196100
	put(2, descale(z1+tmp13*fix0_765366865, down))
	put(6, descale(z1-tmp12*fix1_847759065, down))

	// Odd part.
	z1 = tmp4 + tmp7
	z2 := tmp5 + tmp6
	z3 := tmp4 + tmp6
	z4 := tmp5 + tmp7
	z5 := (z3 + z4) * fix1_175875602

	tmp4 *= fix0_298631336
	tmp5 *= fix2_053119869
	tmp6 *= fix3_072711026
	tmp7 *= fix1_501321110
	z1 *= -fix0_899976223
	z2 *= -fix2_562915447
	z3 *= -fix1_961570560
	z4 *= -fix0_390180644

	z3 += z5
	z4 += z5

	put(7, descale(tmp4+z1+z3, down))
	put(5, descale(tmp5+z2+z4, down))
	put(3, descale(tmp6+z2+z3, down))
	put(1, descale(tmp7+z1+z4, down))
}

// fastMultiply is the truncating 8-bit fixed-point multiply of the fast DCT.
func fastMultiply(x int16, c int32) int16 {
	return int16((int32(x) * c) >> fastConstBits)
}

// fdctIfastScalar is the fast forward DCT (Arai, Agui and Nakajima, 5 multiplies and 29 adds
// per 1-D pass). Its output is scaled by the AAN factors, which the quantizer divisors absorb.
// All intermediates are 16-bit and wrap on overflow.
func fdctIfastScalar(data *[dctSize2]int16) {
	for r := 0; r < dctSize; r++ {
		fdctIfast1D(data, r*dctSize, 1)
	}

	for c := 0; c < dctSize; c++ {
		fdctIfast1D(data, c, dctSize)
	}
}

func fdctIfast1D(data *[dctSize2]int16, off, step int) {
	d := func(k int) int16 { return data[off+k*step] }
	put := func(k int, v int16) { data[off+k*step] = v }

	tmp0 := d(0) + d(7)
	tmp7 := d(0) - d(7)
	tmp1 := d(1) + d(6)
	tmp6 := d(1) - d(6)
	tmp2 := d(2) + d(5)
	tmp5 := d(2) - d(5)
	tmp3 := d(3) + d(4)
	tmp4 := d(3) - d(4)

	// Even part.
	tmp10 := tmp0 + tmp3
	tmp13 := tmp0 - tmp3
	tmp11 := tmp1 + tmp2
	tmp12 := tmp1 - tmp2

	put(0, tmp10+tmp11)
	put(4, tmp10-tmp11)

	z1 := fastMultiply(tmp12+tmp13, fastFix0_707106781)
	put(2, tmp13+z1)
	put(6, tmp13-z1)

	// Odd part.
	tmp10 = tmp4 + tmp5
	tmp11 = tmp5 + tmp6
	tmp12 = tmp6 + tmp7

	z5 := fastMultiply(tmp10-tmp12, fastFix0_382683433)
	z2 := fastMultiply(tmp10, fastFix0_541196100) + z5
	z4 := fastMultiply(tmp12, fastFix1_306562965) + z5
	z3 := fastMultiply(tmp11, fastFix0_707106781)

	z11 := tmp7 + z3
	z13 := tmp7 - z3

	put(5, z13+z2)
	put(3, z13-z2)
	put(1, z11+z4)
	put(7, z11-z4)
}
