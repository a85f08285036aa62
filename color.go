package jpegdsp

// Fixed-point color conversion constants, scaled by 2^scaleBits.
const (
	scaleBits  = 16
	oneHalf    = 1 << (scaleBits - 1)
	cbcrOffset = centerSample << scaleBits

	fix0_29900 = 19595
	fix0_58700 = 38470
	fix0_11400 = 7471
	fix0_16874 = 11059
	fix0_33126 = 21709
	fix0_50000 = 32768
	fix0_41869 = 27439
	fix0_08131 = 5329

	fix1_40200 = 91881
	fix1_77200 = 116130
	fix0_71414 = 46802
	fix0_34414 = 22554
)

// rgbYCCTable holds the per-sample products of the forward transform.
// The Cb/Cr bias is folded into the blue (Cb) and red (Cr) columns, which share the
// 0.5 coefficient.
type rgbYCCTable struct {
	rY, gY, bY    [256]int32
	rCb, gCb, bCb [256]int32
	gCr, bCr      [256]int32
}

// yccRGBTable holds the per-sample terms of the inverse transform.
type yccRGBTable struct {
	crR, cbB [256]int32
	crG, cbG [256]int32
}

var (
	rgbYCCTab = newRGBYCCTable()
	yccRGBTab = newYCCRGBTable()
)

func newRGBYCCTable() *rgbYCCTable {
	t := new(rgbYCCTable)
	for i := int32(0); i < 256; i++ {
		t.rY[i] = fix0_29900 * i
		t.gY[i] = fix0_58700 * i
		t.bY[i] = fix0_11400*i + oneHalf
		t.rCb[i] = -fix0_16874 * i
		t.gCb[i] = -fix0_33126 * i
		// B=>Cb and R=>Cr are the same; ONE_HALF-1 keeps the maximum below 256<<16.
		t.bCb[i] = fix0_50000*i + cbcrOffset + oneHalf - 1
		t.gCr[i] = -fix0_41869 * i
		t.bCr[i] = -fix0_08131 * i
	}

	return t
}

func newYCCRGBTable() *yccRGBTable {
	t := new(yccRGBTable)
	for i := int32(0); i < 256; i++ {
		x := i - centerSample
		t.crR[i] = (fix1_40200*x + oneHalf) >> scaleBits
		t.cbB[i] = (fix1_77200*x + oneHalf) >> scaleBits
		t.crG[i] = -fix0_71414 * x
		t.cbG[i] = -fix0_34414*x + oneHalf
	}

	return t
}

// rgbToYCCPixel is the scalar forward transform of one pixel.
func rgbToYCCPixel(r, g, b byte) (y, cb, cr byte) {
	t := rgbYCCTab
	y = byte((t.rY[r] + t.gY[g] + t.bY[b]) >> scaleBits)
	cb = byte((t.rCb[r] + t.gCb[g] + t.bCb[b]) >> scaleBits)
	cr = byte((t.bCb[r] + t.gCr[g] + t.bCr[b]) >> scaleBits)

	return y, cb, cr
}

// rgbToGrayPixel is the luma projection of rgbToYCCPixel.
func rgbToGrayPixel(r, g, b byte) byte {
	t := rgbYCCTab

	return byte((t.rY[r] + t.gY[g] + t.bY[b]) >> scaleBits)
}

// yccToRGBPixel is the scalar inverse transform of one pixel.
func yccToRGBPixel(y, cb, cr byte) (r, g, b byte) {
	t := yccRGBTab
	yy := int32(y)
	r = rangeLimit(yy + t.crR[cr])
	g = rangeLimit(yy + ((t.cbG[cb] + t.crG[cr]) >> scaleBits))
	b = rangeLimit(yy + t.cbB[cb])

	return r, g, b
}

// rgbToYCCScalar converts numRows rows of interleaved pixels to Y, Cb and Cr planes.
func rgbToYCCScalar(pf PixelFormat, width int, in [][]byte, out [3][][]byte, outRow, numRows int) {
	for i := 0; i < numRows; i++ {
		rgbToYCCRow(pf, 0, width, in[i], out[0][outRow+i], out[1][outRow+i], out[2][outRow+i])
	}
}

// rgbToYCCRow converts columns [col, width) of one row.
func rgbToYCCRow(pf PixelFormat, col, width int, in, y, cb, cr []byte) {
	for ; col < width; col++ {
		p := in[col*pf.Size : col*pf.Size+pf.Size]
		y[col], cb[col], cr[col] = rgbToYCCPixel(p[pf.Red], p[pf.Green], p[pf.Blue])
	}
}

// rgbToGrayScalar converts numRows rows of interleaved pixels to a luma plane.
func rgbToGrayScalar(pf PixelFormat, width int, in [][]byte, out [][]byte, outRow, numRows int) {
	for i := 0; i < numRows; i++ {
		rgbToGrayRow(pf, 0, width, in[i], out[outRow+i])
	}
}

func rgbToGrayRow(pf PixelFormat, col, width int, in, out []byte) {
	for ; col < width; col++ {
		p := in[col*pf.Size : col*pf.Size+pf.Size]
		out[col] = rgbToGrayPixel(p[pf.Red], p[pf.Green], p[pf.Blue])
	}
}

// yccToRGBScalar converts numRows rows starting at inRow of the Y, Cb and Cr planes
// to interleaved pixels.
func yccToRGBScalar(pf PixelFormat, width int, in [3][][]byte, inRow int, out [][]byte, numRows int) {
	for i := 0; i < numRows; i++ {
		yccToRGBRow(pf, 0, width, in[0][inRow+i], in[1][inRow+i], in[2][inRow+i], out[i])
	}
}

func yccToRGBRow(pf PixelFormat, col, width int, y, cb, cr, out []byte) {
	for ; col < width; col++ {
		p := out[col*pf.Size : col*pf.Size+pf.Size]
		p[pf.Red], p[pf.Green], p[pf.Blue] = yccToRGBPixel(y[col], cb[col], cr[col])
		pf.putFiller(p)
	}
}

// grayToRGBScalar replicates luma into every color channel.
func grayToRGBScalar(pf PixelFormat, width int, in [][]byte, inRow int, out [][]byte, numRows int) {
	for i := 0; i < numRows; i++ {
		grayToRGBRow(pf, 0, width, in[inRow+i], out[i])
	}
}

func grayToRGBRow(pf PixelFormat, col, width int, in, out []byte) {
	for ; col < width; col++ {
		p := out[col*pf.Size : col*pf.Size+pf.Size]
		v := in[col]
		p[pf.Red], p[pf.Green], p[pf.Blue] = v, v, v
		pf.putFiller(p)
	}
}

// cmykToYCCK converts interleaved CMYK to YCCK. The CMY channels are complemented to RGB
// and transformed like RGB; K passes through.
func cmykToYCCK(width int, in [][]byte, out [4][][]byte, outRow, numRows int) {
	for i := 0; i < numRows; i++ {
		inp := in[i]
		y, cb, cr, k := out[0][outRow+i], out[1][outRow+i], out[2][outRow+i], out[3][outRow+i]
		for col := 0; col < width; col++ {
			p := inp[col*4 : col*4+4]
			y[col], cb[col], cr[col] = rgbToYCCPixel(maxSample-p[0], maxSample-p[1], maxSample-p[2])
			k[col] = p[3]
		}
	}
}

// ycckToCMYK is the inverse of cmykToYCCK.
func ycckToCMYK(width int, in [4][][]byte, inRow int, out [][]byte, numRows int) {
	for i := 0; i < numRows; i++ {
		y, cb, cr, k := in[0][inRow+i], in[1][inRow+i], in[2][inRow+i], in[3][inRow+i]
		outp := out[i]
		for col := 0; col < width; col++ {
			r, g, b := yccToRGBPixel(y[col], cb[col], cr[col])
			p := outp[col*4 : col*4+4]
			p[0], p[1], p[2], p[3] = maxSample-r, maxSample-g, maxSample-b, k[col]
		}
	}
}
