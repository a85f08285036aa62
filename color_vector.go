package jpegdsp

// Vector forms of the inverse transform. The 1.402 and 1.772 products do not fit a 16-bit
// multiply-high, so they are split as Cr + 0.402*Cr and 2*Cb - 0.228*Cb, with the fractional
// part computed on doubled inputs and rounded by (x + 1) >> 1. G is computed as
// (-0.34414*Cb + 0.28586*Cr) - Cr on 32-bit lanes. All three agree with the tables bit for bit.
const (
	fix0_40200 = 26345  // fix1_40200 - 1<<16
	fix0_22800 = -14942 // fix1_77200 - 2<<16
	fix0_28586 = 18734  // 1<<16 - fix0_71414
)

// rgbToYCC is the vector RGB to YCbCr conversion.
func (bk Backend) rgbToYCC(pf PixelFormat, width int, in [][]byte, out [3][][]byte, outRow, numRows int) {
	var rb, gb, bb, nb [maxLanes]uint16
	var ab [maxLanes]uint32

	for i := 0; i < numRows; i++ {
		inp := in[i]
		yp, cbp, crp := out[0][outRow+i], out[1][outRow+i], out[2][outRow+i]

		col := 0
		for {
			vl := bk.grant(width-col, 16)
			if vl == 0 {
				break
			}

			p := inp[col*pf.Size:]
			r, g, b, n, acc := rb[:vl], gb[:vl], bb[:vl], nb[:vl], ab[:vl]
			vlse8(r, p[pf.Red:], pf.Size)
			vlse8(g, p[pf.Green:], pf.Size)
			vlse8(b, p[pf.Blue:], pf.Size)

			// Y = 0.299R + 0.587G + 0.114B, rounded.
			vwmulu(acc, r, fix0_29900)
			vwmaccu(acc, g, fix0_58700)
			vwmaccu(acc, b, fix0_11400)
			vnsrlr(n, acc, scaleBits)
			vsse8(yp[col:], 1, n)

			// Cb = -0.16874R - 0.33126G + 0.5B + 128. The sum is non-negative, so the
			// unsigned accumulator wraps back to the exact value.
			vsplat32(acc, cbcrOffset+oneHalf-1)
			vwmaccu(acc, b, fix0_50000)
			vwmsacu(acc, r, fix0_16874)
			vwmsacu(acc, g, fix0_33126)
			vnsrl(n, acc, scaleBits)
			vsse8(cbp[col:], 1, n)

			// Cr = 0.5R - 0.41869G - 0.08131B + 128.
			vsplat32(acc, cbcrOffset+oneHalf-1)
			vwmaccu(acc, r, fix0_50000)
			vwmsacu(acc, g, fix0_41869)
			vwmsacu(acc, b, fix0_08131)
			vnsrl(n, acc, scaleBits)
			vsse8(crp[col:], 1, n)

			col += vl
		}

		rgbToYCCRow(pf, col, width, inp, yp, cbp, crp)
	}
}

// rgbToGray is the vector RGB to grayscale conversion.
func (bk Backend) rgbToGray(pf PixelFormat, width int, in [][]byte, out [][]byte, outRow, numRows int) {
	var rb, gb, bb, nb [maxLanes]uint16
	var ab [maxLanes]uint32

	for i := 0; i < numRows; i++ {
		inp, yp := in[i], out[outRow+i]

		col := 0
		for {
			vl := bk.grant(width-col, 16)
			if vl == 0 {
				break
			}

			p := inp[col*pf.Size:]
			r, g, b, n, acc := rb[:vl], gb[:vl], bb[:vl], nb[:vl], ab[:vl]
			vlse8(r, p[pf.Red:], pf.Size)
			vlse8(g, p[pf.Green:], pf.Size)
			vlse8(b, p[pf.Blue:], pf.Size)
			vwmulu(acc, r, fix0_29900)
			vwmaccu(acc, g, fix0_58700)
			vwmaccu(acc, b, fix0_11400)
			vnsrlr(n, acc, scaleBits)
			vsse8(yp[col:], 1, n)

			col += vl
		}

		rgbToGrayRow(pf, col, width, inp, yp)
	}
}

// yccToRGB is the vector YCbCr to RGB conversion.
func (bk Backend) yccToRGB(pf PixelFormat, width int, in [3][][]byte, inRow int, out [][]byte, numRows int) {
	for i := 0; i < numRows; i++ {
		yp, cbp, crp := in[0][inRow+i], in[1][inRow+i], in[2][inRow+i]
		outp := out[i]

		col := bk.yccToRGBSpan(pf, width, yp, cbp, crp, outp, false)
		yccToRGBRow(pf, col, width, yp, cbp, crp, outp)
	}
}

// yccToRGBSpan converts whole lane groups of one row and returns the first column left
// for the scalar remainder. With dup set, chroma is horizontally subsampled by 2 and each
// chroma sample is loaded twice, which is how the merged upsamplers use it.
func (bk Backend) yccToRGBSpan(pf PixelFormat, width int, yp, cbp, crp, outp []byte, dup bool) int {
	var yb [maxLanes]uint16
	var ys, cbs, crs, t, c2 [maxLanes]int16
	var gacc [maxLanes]int32

	col := 0
	for {
		vl := bk.grant(width-col, 16)
		if vl == 0 {
			return col
		}

		yu, y, cb, cr, tt, x2, g32 := yb[:vl], ys[:vl], cbs[:vl], crs[:vl], t[:vl], c2[:vl], gacc[:vl]
		vzext8(yu, yp[col:])
		vcenter(y, yu, 0)
		if dup {
			vsubc8x2(cb, cbp, col, centerSample)
			vsubc8x2(cr, crp, col, centerSample)
		} else {
			vsubc8(cb, cbp[col:], centerSample)
			vsubc8(cr, crp[col:], centerSample)
		}

		p := outp[col*pf.Size:]

		// R = Y + Cr + 0.402*Cr
		vadd16(x2, cr, cr)
		vmulh16(tt, x2, fix0_40200)
		vaddc16(tt, tt, 1)
		vsra16(tt, tt, 1)
		vadd16(tt, tt, cr)
		vadd16(tt, tt, y)
		vpackus(p[pf.Red:], pf.Size, tt)

		// B = Y + 2*Cb - 0.228*Cb
		vadd16(x2, cb, cb)
		vmulh16(tt, x2, fix0_22800)
		vaddc16(tt, tt, 1)
		vsra16(tt, tt, 1)
		vadd16(tt, tt, x2)
		vadd16(tt, tt, y)
		vpackus(p[pf.Blue:], pf.Size, tt)

		// G = Y + (-0.34414*Cb + 0.28586*Cr) - Cr
		vwmul16(g32, cb, -fix0_34414)
		vwmacc16(g32, cr, fix0_28586)
		vnsra32r(tt, g32, scaleBits)
		vsub16(tt, tt, cr)
		vadd16(tt, tt, y)
		vpackus(p[pf.Green:], pf.Size, tt)

		if f := pf.filler(); f >= 0 {
			vsse8c(p[f:], pf.Size, vl, maxSample)
		}

		col += vl
	}
}

// grayToRGB is the vector grayscale to RGB expansion.
func (bk Backend) grayToRGB(pf PixelFormat, width int, in [][]byte, inRow int, out [][]byte, numRows int) {
	var yb [maxLanes]uint16

	for i := 0; i < numRows; i++ {
		yp, outp := in[inRow+i], out[i]

		col := 0
		for {
			vl := bk.grant(width-col, 16)
			if vl == 0 {
				break
			}

			y := yb[:vl]
			vzext8(y, yp[col:])
			p := outp[col*pf.Size:]
			vsse8(p[pf.Red:], pf.Size, y)
			vsse8(p[pf.Green:], pf.Size, y)
			vsse8(p[pf.Blue:], pf.Size, y)
			if f := pf.filler(); f >= 0 {
				vsse8c(p[f:], pf.Size, vl, maxSample)
			}

			col += vl
		}

		grayToRGBRow(pf, col, width, yp, outp)
	}
}
