package jpegdsp

// expandRightEdge replicates the last real column of each row into columns
// [inputCols, outputCols). Downsamplers call it before reading so that lane groups and
// pairs of input columns never see stale padding.
func expandRightEdge(rows [][]byte, numRows, inputCols, outputCols int) {
	if outputCols <= inputCols {
		return
	}

	for _, row := range rows[:numRows] {
		pad := row[inputCols:outputCols]
		v := row[inputCols-1]
		for i := range pad {
			pad[i] = v
		}
	}
}

// fullsizeDownsample copies a component that is not subsampled and pads it to whole blocks.
func fullsizeDownsample(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	for i := 0; i < vSamp; i++ {
		copy(out[i][:imageWidth], in[i][:imageWidth])
	}

	expandRightEdge(out, vSamp, imageWidth, widthInBlocks*dctSize)
}

// h2v1DownsampleScalar averages horizontal pairs. The rounding bias alternates 0,1,0,1 so
// that halves are rounded up and down in turn.
// The 0,1 bias is that of h2v1_downsample in IJG jcsample.c; 1,2 belongs to h2v2_downsample.
func h2v1DownsampleScalar(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	outputCols := widthInBlocks * dctSize
	expandRightEdge(in, maxVSamp, imageWidth, outputCols*2)

	for row := 0; row < vSamp; row++ {
		h2v1DownsampleRow(0, outputCols, in[row], out[row])
	}
}

func h2v1DownsampleRow(col, outputCols int, in, out []byte) {
	for ; col < outputCols; col++ {
		bias := uint16(col & 1)
		out[col] = byte((uint16(in[2*col]) + uint16(in[2*col+1]) + bias) >> 1)
	}
}

// h2v2DownsampleScalar averages 2x2 squares with the alternating bias 1,2,1,2.
func h2v2DownsampleScalar(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	outputCols := widthInBlocks * dctSize
	expandRightEdge(in, maxVSamp, imageWidth, outputCols*2)

	for row := 0; row < vSamp; row++ {
		h2v2DownsampleRow(0, outputCols, in[2*row], in[2*row+1], out[row])
	}
}

func h2v2DownsampleRow(col, outputCols int, in0, in1, out []byte) {
	for ; col < outputCols; col++ {
		bias := uint16(1 + col&1)
		sum := uint16(in0[2*col]) + uint16(in0[2*col+1]) + uint16(in1[2*col]) + uint16(in1[2*col+1])
		out[col] = byte((sum + bias) >> 2)
	}
}

// intDownsample returns a box-filter downsampler for integral factors hExpand x vExpand,
// rounding the average half up.
func intDownsample(hExpand, vExpand int) DownsampleFunc {
	return func(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
		outputCols := widthInBlocks * dctSize
		numPix := hExpand * vExpand
		expandRightEdge(in, maxVSamp, imageWidth, outputCols*hExpand)

		inRow := 0
		for row := 0; row < vSamp; row++ {
			outp := out[row]
			for col := 0; col < outputCols; col++ {
				sum := 0
				for v := 0; v < vExpand; v++ {
					inp := in[inRow+v][col*hExpand : col*hExpand+hExpand]
					for _, s := range inp {
						sum += int(s)
					}
				}

				outp[col] = byte((sum + numPix/2) / numPix)
			}

			inRow += vExpand
		}
	}
}

// h2v2SmoothDownsample is the 2x2 downsampler with the IJG smoothing filter. Each output is a
// blend of its four members and their twelve neighbors, so in carries one context row above
// and one below the maxVSamp input rows: in[0] is the row above, in[maxVSamp+1] the row below.
func h2v2SmoothDownsample(smoothing, imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	outputCols := widthInBlocks * dctSize
	expandRightEdge(in, maxVSamp+2, imageWidth, outputCols*2)

	// (1-5*SF)/4 and SF/4, scaled by 2^16.
	memberScale := int32(16384 - smoothing*80)
	neighScale := int32(smoothing * 16)

	at := func(row []byte, i int) int32 { return int32(row[i]) }

	for row := 0; row < vSamp; row++ {
		above, in0, in1, below := in[2*row], in[2*row+1], in[2*row+2], in[2*row+3]
		outp := out[row]

		for col := 0; col < outputCols; col++ {
			c := 2 * col
			// Columns -1 and 2*outputCols mirror their neighbors.
			left, right := c-1, c+2
			if col == 0 {
				left = 0
			}

			if col == outputCols-1 {
				right = c + 1
			}

			member := at(in0, c) + at(in0, c+1) + at(in1, c) + at(in1, c+1)
			neigh := at(above, c) + at(above, c+1) + at(below, c) + at(below, c+1) +
				at(in0, left) + at(in0, right) + at(in1, left) + at(in1, right)
			neigh += neigh
			neigh += at(above, left) + at(above, right) + at(below, left) + at(below, right)

			sum := member*memberScale + neigh*neighScale
			outp[col] = byte((sum + 32768) >> 16)
		}
	}
}

// fullsizeSmoothDownsample smooths a component that is not subsampled. in carries one
// context row above and below, like h2v2SmoothDownsample.
func fullsizeSmoothDownsample(smoothing, imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte) {
	outputCols := widthInBlocks * dctSize
	expandRightEdge(in, maxVSamp+2, imageWidth, outputCols)

	// (1-8*SF) and SF, scaled by 2^16.
	memberScale := int32(65536 - smoothing*512)
	neighScale := int32(smoothing * 64)

	at := func(row []byte, i int) int32 { return int32(row[i]) }

	for row := 0; row < vSamp; row++ {
		above, cur, below := in[row], in[row+1], in[row+2]
		outp := out[row]

		for col := 0; col < outputCols; col++ {
			left, right := col-1, col+1
			if col == 0 {
				left = 0
			}

			if col == outputCols-1 {
				right = col
			}

			// All eight neighbors weigh the same here.
			neigh := at(above, col) + at(below, col) + at(cur, left) + at(cur, right) +
				at(above, left) + at(above, right) + at(below, left) + at(below, right)

			sum := at(cur, col)*memberScale + neigh*neighScale
			outp[col] = byte((sum + 32768) >> 16)
		}
	}
}
