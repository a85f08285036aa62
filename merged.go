package jpegdsp

// Merged upsamplers combine 2x1 or 2x2 box upsampling of the chroma planes with YCbCr to RGB
// conversion, so the upsampled chroma is never stored. Their output equals the box upsampler
// followed by YCCToRGB.

// h2v1MergedScalar converts luma row inRowGroup using chroma row inRowGroup.
func h2v1MergedScalar(pf PixelFormat, outputWidth int, in [3][][]byte, inRowGroup int, out [][]byte) {
	mergedRow(pf, 0, outputWidth, in[0][inRowGroup], in[1][inRowGroup], in[2][inRowGroup], out[0])
}

// h2v2MergedScalar converts luma rows 2*inRowGroup and 2*inRowGroup+1 using chroma row inRowGroup.
func h2v2MergedScalar(pf PixelFormat, outputWidth int, in [3][][]byte, inRowGroup int, out [][]byte) {
	cb, cr := in[1][inRowGroup], in[2][inRowGroup]
	mergedRow(pf, 0, outputWidth, in[0][2*inRowGroup], cb, cr, out[0])
	mergedRow(pf, 0, outputWidth, in[0][2*inRowGroup+1], cb, cr, out[1])
}

// mergedRow converts columns [col, outputWidth). The chroma terms are computed once per
// chroma sample and shared by the pixels it covers.
func mergedRow(pf PixelFormat, col, outputWidth int, y, cb, cr, out []byte) {
	t := yccRGBTab

	for col < outputWidth {
		c := col >> 1
		red := t.crR[cr[c]]
		green := (t.cbG[cb[c]] + t.crG[cr[c]]) >> scaleBits
		blue := t.cbB[cb[c]]

		for end := min(2*c+2, outputWidth); col < end; col++ {
			yy := int32(y[col])
			p := out[col*pf.Size : col*pf.Size+pf.Size]
			p[pf.Red] = rangeLimit(yy + red)
			p[pf.Green] = rangeLimit(yy + green)
			p[pf.Blue] = rangeLimit(yy + blue)
			pf.putFiller(p)
		}
	}
}
