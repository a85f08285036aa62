package jpegdsp

// h2v1Downsample is the vector 2x1 downsampler. Each lane owns one output column and loads
// its even and odd input samples with stride 2.
func (bk Backend) h2v1Downsample(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	var ab, bb, biasb [maxLanes]uint16

	outputCols := widthInBlocks * dctSize
	expandRightEdge(in, maxVSamp, imageWidth, outputCols*2)

	for row := 0; row < vSamp; row++ {
		inp, outp := in[row], out[row]

		col := 0
		for {
			vl := bk.grant(outputCols-col, 16)
			if vl == 0 {
				break
			}

			a, b, bias := ab[:vl], bb[:vl], biasb[:vl]
			vlse8(a, inp[2*col:], 2)
			vlse8(b, inp[2*col+1:], 2)
			vbias(bias, col, 0, 1)
			vaddu16(a, a, b)
			vaddu16(a, a, bias)
			vsrlu16(a, a, 1)
			vsse8(outp[col:], 1, a)

			col += vl
		}

		h2v1DownsampleRow(col, outputCols, inp, outp)
	}
}

// h2v2Downsample is the vector 2x2 downsampler.
func (bk Backend) h2v2Downsample(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	var ab, bb, biasb [maxLanes]uint16

	outputCols := widthInBlocks * dctSize
	expandRightEdge(in, maxVSamp, imageWidth, outputCols*2)

	for row := 0; row < vSamp; row++ {
		in0, in1, outp := in[2*row], in[2*row+1], out[row]

		col := 0
		for {
			vl := bk.grant(outputCols-col, 16)
			if vl == 0 {
				break
			}

			a, b, bias := ab[:vl], bb[:vl], biasb[:vl]
			vbias(bias, col, 1, 2)
			vlse8(a, in0[2*col:], 2)
			vlse8(b, in0[2*col+1:], 2)
			vaddu16(bias, bias, a)
			vaddu16(bias, bias, b)
			vlse8(a, in1[2*col:], 2)
			vlse8(b, in1[2*col+1:], 2)
			vaddu16(bias, bias, a)
			vaddu16(bias, bias, b)
			vsrlu16(a, bias, 2)
			vsse8(outp[col:], 1, a)

			col += vl
		}

		h2v2DownsampleRow(col, outputCols, in0, in1, outp)
	}
}
