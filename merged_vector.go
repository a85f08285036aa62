package jpegdsp

// h2v1Merged is the vector 2x1 merged upsampler.
func (bk Backend) h2v1Merged(pf PixelFormat, outputWidth int, in [3][][]byte, inRowGroup int, out [][]byte) {
	bk.mergedSpan(pf, outputWidth, in[0][inRowGroup], in[1][inRowGroup], in[2][inRowGroup], out[0])
}

// h2v2Merged is the vector 2x2 merged upsampler: the 2x1 kernel run on two luma rows.
func (bk Backend) h2v2Merged(pf PixelFormat, outputWidth int, in [3][][]byte, inRowGroup int, out [][]byte) {
	cb, cr := in[1][inRowGroup], in[2][inRowGroup]
	bk.mergedSpan(pf, outputWidth, in[0][2*inRowGroup], cb, cr, out[0])
	bk.mergedSpan(pf, outputWidth, in[0][2*inRowGroup+1], cb, cr, out[1])
}

func (bk Backend) mergedSpan(pf PixelFormat, outputWidth int, y, cb, cr, out []byte) {
	col := bk.yccToRGBSpan(pf, outputWidth, y, cb, cr, out, true)
	mergedRow(pf, col, outputWidth, y, cb, cr, out)
}
