package jpegdsp

// Lane-group primitives.
//
// Every vector kernel in this package is a sequence of the operations below applied to
// lane groups: slices of length vl backed by fixed [maxLanes] arrays on the caller's stack.
// The names follow the RVV mnemonics they model (vzext, vwmaccu, vnsrl, ...), and each one
// has a direct NEON/SSE2 counterpart (vmovl/punpcklbw, vmlal/pmaddwd, vshrn/psrld+packus).
// Arithmetic on 16-bit lanes wraps like the hardware does; widening ops keep the full product.

// vzext8 zero-extends vl bytes into 16-bit lanes.
func vzext8(dst []uint16, src []byte) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = uint16(src[i])
	}
}

// vlse8 is a strided zero-extending load: dst[i] = src[i*stride].
func vlse8(dst []uint16, src []byte, stride int) {
	if len(dst) == 0 {
		return
	}

	_ = src[(len(dst)-1)*stride]
	for i := range dst {
		dst[i] = uint16(src[i*stride])
	}
}

// vsse8 is a strided store of the low byte of each lane: dst[i*stride] = byte(src[i]).
func vsse8(dst []byte, stride int, src []uint16) {
	if len(src) == 0 {
		return
	}

	_ = dst[(len(src)-1)*stride]
	for i, v := range src {
		dst[i*stride] = byte(v)
	}
}

// vsse8c stores the constant c at every stride (alpha and padding bytes).
func vsse8c(dst []byte, stride, vl int, c byte) {
	if vl == 0 {
		return
	}

	_ = dst[(vl-1)*stride]
	for i := 0; i < vl; i++ {
		dst[i*stride] = c
	}
}

// vsplat32 broadcasts x.
func vsplat32(dst []uint32, x uint32) {
	for i := range dst {
		dst[i] = x
	}
}

// vwmulu is a widening unsigned multiply by a scalar: dst = a*c.
func vwmulu(dst []uint32, a []uint16, c uint16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = uint32(a[i]) * uint32(c)
	}
}

// vwmaccu is a widening unsigned multiply-accumulate: dst += a*c.
func vwmaccu(dst []uint32, a []uint16, c uint16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] += uint32(a[i]) * uint32(c)
	}
}

// vwmsacu is a widening unsigned multiply-subtract: dst -= a*c (modulo 2^32).
func vwmsacu(dst []uint32, a []uint16, c uint16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] -= uint32(a[i]) * uint32(c)
	}
}

// vnsrl narrows with a truncating right shift.
func vnsrl(dst []uint16, a []uint32, shift uint) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = uint16(a[i] >> shift)
	}
}

// vnsrlr narrows with a rounding right shift (vrshrn).
func vnsrlr(dst []uint16, a []uint32, shift uint) {
	a = a[:len(dst)]
	half := uint32(1) << (shift - 1)
	for i := range dst {
		dst[i] = uint16((a[i] + half) >> shift)
	}
}

// vaddu16 adds 16-bit lanes with wraparound.
func vaddu16(dst, a, b []uint16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// vmaddu16 computes dst = a*c + b on 16-bit lanes.
func vmaddu16(dst, a []uint16, c uint16, b []uint16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i]*c + b[i]
	}
}

// vsrlu16 shifts 16-bit lanes right logically.
func vsrlu16(dst, a []uint16, shift uint) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] >> shift
	}
}

// vaddcu16 adds a scalar to 16-bit lanes.
func vaddcu16(dst, a []uint16, c uint16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + c
	}
}

// vbias fills alternating per-column rounding biases. The pattern follows the absolute column
// index col+i, not the lane index, so partial grants keep the reference alternation.
func vbias(dst []uint16, col int, even, odd uint16) {
	for i := range dst {
		if (col+i)&1 == 0 {
			dst[i] = even
		} else {
			dst[i] = odd
		}
	}
}

// vmulhu16 is an unsigned multiply-high (pmulhuw): dst = (a*b) >> 16.
func vmulhu16(dst, a, b []uint16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = uint16((uint32(a[i]) * uint32(b[i])) >> 16)
	}
}

// vcenter converts unsigned samples to signed lanes centered on c.
func vcenter(dst []int16, a []uint16, c int16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = int16(a[i]) - c
	}
}

// vsubc8 loads bytes and subtracts c, widening to signed 16-bit lanes.
func vsubc8(dst []int16, src []byte, c int16) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] = int16(src[i]) - c
	}
}

// vsubc8x2 is vsubc8 on a byte vector zipped with itself: lane i reads src[(col+i)/2].
func vsubc8x2(dst []int16, src []byte, col int, c int16) {
	for i := range dst {
		dst[i] = int16(src[(col+i)>>1]) - c
	}
}

// vadd16 adds signed 16-bit lanes with wraparound.
func vadd16(dst, a, b []int16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// vsub16 subtracts signed 16-bit lanes with wraparound.
func vsub16(dst, a, b []int16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// vaddc16 adds a scalar to signed 16-bit lanes.
func vaddc16(dst, a []int16, c int16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + c
	}
}

// vsra16 shifts signed 16-bit lanes right arithmetically.
func vsra16(dst, a []int16, shift uint) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] >> shift
	}
}

// vmullo16 is an element-wise multiply keeping the low 16 bits (pmullw).
func vmullo16(dst, a, b []int16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// vmulh16 is a signed multiply-high (pmulhw): dst = (a*c) >> 16.
func vmulh16(dst, a []int16, c int16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = int16((int32(a[i]) * int32(c)) >> 16)
	}
}

// vwmul16 is a widening signed multiply by a scalar.
func vwmul16(dst []int32, a []int16, c int16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = int32(a[i]) * int32(c)
	}
}

// vwmacc16 is a widening signed multiply-accumulate by a scalar.
func vwmacc16(dst []int32, a []int16, c int16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] += int32(a[i]) * int32(c)
	}
}

// vwmulvv16 is a widening element-wise signed multiply (vmull_s16 with a vector operand).
func vwmulvv16(dst []int32, a, b []int16) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = int32(a[i]) * int32(b[i])
	}
}

// vwiden16 sign-extends 16-bit lanes to 32 bits.
func vwiden16(dst []int32, a []int16) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = int32(a[i])
	}
}

// vnsra32 narrows with a truncating arithmetic right shift. The narrowing itself does not
// saturate; values are bounded by construction.
func vnsra32(dst []int16, a []int32, shift uint) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = int16(a[i] >> shift)
	}
}

// vnsra32r narrows with a rounding arithmetic right shift (vrshrn_n_s32).
func vnsra32r(dst []int16, a []int32, shift uint) {
	a = a[:len(dst)]
	half := int32(1) << (shift - 1)
	for i := range dst {
		dst[i] = int16((a[i] + half) >> shift)
	}
}

// vadd32 adds signed 32-bit lanes with wraparound.
func vadd32(dst, a, b []int32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// vsub32 subtracts signed 32-bit lanes with wraparound.
func vsub32(dst, a, b []int32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// vmul32 multiplies signed 32-bit lanes by a scalar.
func vmul32(dst, a []int32, c int32) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] * c
	}
}

// vmacc32 accumulates a*c into dst.
func vmacc32(dst, a []int32, c int32) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] += a[i] * c
	}
}

// vsll32 shifts signed 32-bit lanes left.
func vsll32(dst, a []int32, shift uint) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] << shift
	}
}

// vsra32 shifts signed 32-bit lanes right arithmetically.
func vsra32(dst, a []int32, shift uint) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = a[i] >> shift
	}
}

// vsra32r is a rounding arithmetic right shift: (a + 2^(shift-1)) >> shift.
func vsra32r(dst, a []int32, shift uint) {
	a = a[:len(dst)]
	half := int32(1) << (shift - 1)
	for i := range dst {
		dst[i] = (a[i] + half) >> shift
	}
}

// vpackus saturates signed 16-bit lanes to [0, 255] and stores them at the given byte stride.
func vpackus(dst []byte, stride int, a []int16) {
	if len(a) == 0 {
		return
	}

	_ = dst[(len(a)-1)*stride]
	for i, v := range a {
		switch {
		case v < 0:
			dst[i*stride] = 0
		case v > maxSample:
			dst[i*stride] = maxSample
		default:
			dst[i*stride] = byte(v)
		}
	}
}

// vpackus32 adds the sample center to 32-bit lanes, saturates to [0, 255] and stores them
// at the given byte stride.
func vpackus32(dst []byte, stride int, a []int32) {
	if len(a) == 0 {
		return
	}

	_ = dst[(len(a)-1)*stride]
	for i, v := range a {
		dst[i*stride] = rangeLimit(v + centerSample)
	}
}

// vabs16 splits signed lanes into magnitude and sign mask (psraw 15, pxor, psubw).
// The magnitude of -32768 is 32768, which fits the unsigned lane.
func vabs16(abs []uint16, sign, a []int16) {
	sign = sign[:len(abs)]
	a = a[:len(abs)]
	for i := range abs {
		s := a[i] >> 15
		sign[i] = s
		abs[i] = uint16(a[i]^s) - uint16(s)
	}
}

// vsign16 reapplies a sign mask produced by vabs16.
func vsign16(dst []int16, a []uint16, sign []int16) {
	a = a[:len(dst)]
	sign = sign[:len(dst)]
	for i := range dst {
		s := uint16(sign[i])
		dst[i] = int16((a[i] ^ s) - s)
	}
}

// transpose8x8 transposes an 8x8 tile of 32-bit values.
func transpose8x8(dst, src *[64]int32) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			dst[c*8+r] = src[r*8+c]
		}
	}
}

// transpose8x8i16 transposes an 8x8 tile of 16-bit values.
func transpose8x8i16(dst, src *[64]int16) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			dst[c*8+r] = src[r*8+c]
		}
	}
}
