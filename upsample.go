package jpegdsp

// Upsamplers read the downsampled rows in[inRow:] of one row group and write maxVSamp
// full-resolution rows of exactly outputWidth columns to out. The fancy 2x2 and 1x2 kernels
// also read the context rows in[inRow-1] and in[inRow+n], which the caller must provide
// (replicated edge rows at the top and bottom of the image).

// fullsizeUpsample copies a component that was not subsampled.
func fullsizeUpsample(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i++ {
		copy(out[i][:outputWidth], in[inRow+i][:outputWidth])
	}
}

// h2v1UpsampleScalar duplicates each sample horizontally.
func h2v1UpsampleScalar(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i++ {
		h2v1UpsampleRow(0, outputWidth, in[inRow+i], out[i])
	}
}

func h2v1UpsampleRow(col, outputWidth int, in, out []byte) {
	for ; col < outputWidth; col++ {
		out[col] = in[col>>1]
	}
}

// h2v2UpsampleScalar duplicates each sample horizontally and vertically.
func h2v2UpsampleScalar(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		h2v1UpsampleRow(0, outputWidth, in[inRow+i/2], out[i])
		copy(out[i+1][:outputWidth], out[i][:outputWidth])
	}
}

// intUpsample returns a box upsampler for integral factors hExpand x vExpand.
func intUpsample(hExpand, vExpand int) UpsampleFunc {
	return func(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
		for i := 0; i < maxVSamp; i += vExpand {
			inp, outp := in[inRow+i/vExpand], out[i][:outputWidth]
			for col := range outp {
				outp[col] = inp[col/hExpand]
			}

			for v := 1; v < vExpand; v++ {
				copy(out[i+v][:outputWidth], outp)
			}
		}
	}
}

// h2v1FancyUpsampleScalar doubles rows horizontally with a triangle filter: each output is
// 3/4 of the nearer input sample plus 1/4 of the further one. Even outputs round with bias
// 1 and odd outputs with bias 2, so that neither direction is favored. The outermost
// outputs are copies of the edge samples.
func h2v1FancyUpsampleScalar(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i++ {
		h2v1FancyCols(0, downsampledWidth, downsampledWidth, outputWidth, in[inRow+i], out[i])
	}
}

// h2v1FancyCols produces the two outputs of input columns [c0, c1), skipping outputs at or
// beyond outputWidth.
func h2v1FancyCols(c0, c1, downsampledWidth, outputWidth int, in, out []byte) {
	last := downsampledWidth - 1

	for c := c0; c < c1; c++ {
		cur := uint16(in[c]) * 3

		if j := 2 * c; j < outputWidth {
			if c == 0 {
				out[j] = in[0]
			} else {
				out[j] = byte((cur + uint16(in[c-1]) + 1) >> 2)
			}
		}

		if j := 2*c + 1; j < outputWidth {
			if c == last {
				out[j] = in[c]
			} else {
				out[j] = byte((cur + uint16(in[c+1]) + 2) >> 2)
			}
		}
	}
}

// h2v2FancyUpsampleScalar doubles rows in both directions with weights 9/16, 3/16, 3/16 and
// 1/16. Vertical sums are formed first (3*nearer row + further row), then the horizontal
// triangle is applied with biases 8 and 7.
func h2v2FancyUpsampleScalar(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		cur := in[inRow+i/2]
		h2v2FancyCols(0, downsampledWidth, downsampledWidth, outputWidth, cur, in[inRow+i/2-1], out[i])
		h2v2FancyCols(0, downsampledWidth, downsampledWidth, outputWidth, cur, in[inRow+i/2+1], out[i+1])
	}
}

// h2v2FancyCols produces the two outputs of input columns [c0, c1) for one output row; in0
// is the nearer input row and in1 the further one.
func h2v2FancyCols(c0, c1, downsampledWidth, outputWidth int, in0, in1, out []byte) {
	last := downsampledWidth - 1
	sum := func(c int) uint16 { return uint16(in0[c])*3 + uint16(in1[c]) }

	for c := c0; c < c1; c++ {
		this := sum(c)

		if j := 2 * c; j < outputWidth {
			if c == 0 {
				out[j] = byte((this*4 + 8) >> 4)
			} else {
				out[j] = byte((this*3 + sum(c-1) + 8) >> 4)
			}
		}

		if j := 2*c + 1; j < outputWidth {
			if c == last {
				out[j] = byte((this*4 + 7) >> 4)
			} else {
				out[j] = byte((this*3 + sum(c+1) + 7) >> 4)
			}
		}
	}
}

// h1v2FancyUpsampleScalar doubles rows vertically with a triangle filter: the output row
// above an input row rounds with bias 1 and the row below with bias 2.
func h1v2FancyUpsampleScalar(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		cur := in[inRow+i/2]
		h1v2FancyRow(0, outputWidth, cur, in[inRow+i/2-1], out[i], 1)
		h1v2FancyRow(0, outputWidth, cur, in[inRow+i/2+1], out[i+1], 2)
	}
}

func h1v2FancyRow(col, outputWidth int, in0, in1, out []byte, bias uint16) {
	for ; col < outputWidth; col++ {
		out[col] = byte((uint16(in0[col])*3 + uint16(in1[col]) + bias) >> 2)
	}
}
