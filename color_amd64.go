//go:build amd64 && !noasm

package jpegdsp

// colorConstants holds the color conversion multipliers, one row of eight equal lanes per
// value, addressed by the assembly at row*32.
var colorConstants = broadcastLanes(
	fix0_29900, fix0_58700, fix0_11400, oneHalf,
	-fix0_16874, -fix0_33126, cbcrOffset+oneHalf-1, -fix0_41869,
	-fix0_08131, maxSample, centerSample, fix1_40200,
	fix1_77200, -fix0_34414, -fix0_71414, maxSample,
)

// pixelLayout holds the bit positions of red, green and blue in a 32-bit pixel and the mask
// of its filler byte.
type pixelLayout [4]uint64

func newPixelLayout(pf PixelFormat) pixelLayout {
	return pixelLayout{
		uint64(8 * pf.Red),
		uint64(8 * pf.Green),
		uint64(8 * pf.Blue),
		uint64(maxSample) << (8 * pf.filler()),
	}
}

//go:noescape
func rgbToYCCAVX2(in, y, cb, cr *byte, n int, l *pixelLayout, k *[8]int32)

//go:noescape
func rgbToGrayAVX2(in, y *byte, n int, l *pixelLayout, k *[8]int32)

//go:noescape
func yccToRGBAVX2(y, cb, cr, out *byte, n int, l *pixelLayout, k *[8]int32)

// The color kernels convert eight 4-byte pixels per step in 32-bit lanes and leave the
// remaining columns to the scalar row functions. Three-byte formats are scalar.

func rgbToYCCNative(pf PixelFormat, width int, in [][]byte, out [3][][]byte, outRow, numRows int) {
	n := width &^ 7
	if pf.Size != 4 || n == 0 {
		rgbToYCCScalar(pf, width, in, out, outRow, numRows)
		return
	}

	l := newPixelLayout(pf)
	for i := 0; i < numRows; i++ {
		src := in[i][:width*4]
		y, cb, cr := out[0][outRow+i][:width], out[1][outRow+i][:width], out[2][outRow+i][:width]

		rgbToYCCAVX2(&src[0], &y[0], &cb[0], &cr[0], n, &l, &colorConstants[0])
		rgbToYCCRow(pf, n, width, src, y, cb, cr)
	}
}

func rgbToGrayNative(pf PixelFormat, width int, in [][]byte, out [][]byte, outRow, numRows int) {
	n := width &^ 7
	if pf.Size != 4 || n == 0 {
		rgbToGrayScalar(pf, width, in, out, outRow, numRows)
		return
	}

	l := newPixelLayout(pf)
	for i := 0; i < numRows; i++ {
		src, y := in[i][:width*4], out[outRow+i][:width]

		rgbToGrayAVX2(&src[0], &y[0], n, &l, &colorConstants[0])
		rgbToGrayRow(pf, n, width, src, y)
	}
}

func yccToRGBNative(pf PixelFormat, width int, in [3][][]byte, inRow int, out [][]byte, numRows int) {
	n := width &^ 7
	if pf.Size != 4 || n == 0 {
		yccToRGBScalar(pf, width, in, inRow, out, numRows)
		return
	}

	l := newPixelLayout(pf)
	for i := 0; i < numRows; i++ {
		y, cb, cr := in[0][inRow+i][:width], in[1][inRow+i][:width], in[2][inRow+i][:width]
		dst := out[i][:width*4]

		yccToRGBAVX2(&y[0], &cb[0], &cr[0], &dst[0], n, &l, &colorConstants[0])
		yccToRGBRow(pf, n, width, y, cb, cr, dst)
	}
}
