//go:build amd64 && !noasm

package jpegdsp

//go:noescape
func h2v2FancyAVX2(in0, in1, out *byte, n int)

// h2v2FancyUpsampleNative is the 2x2 triangle filter with the interior columns computed 16
// input columns (32 outputs) per step. The edge columns and the tail are scalar.
func h2v2FancyUpsampleNative(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte) {
	for i := 0; i < maxVSamp; i += 2 {
		cur := in[inRow+i/2]
		h2v2FancyRowNative(downsampledWidth, outputWidth, cur, in[inRow+i/2-1], out[i])
		h2v2FancyRowNative(downsampledWidth, outputWidth, cur, in[inRow+i/2+1], out[i+1])
	}
}

// h2v2FancyRowNative produces one output row. A step starting at input column c reads
// columns c-1 through c+16 and writes outputs 2c through 2c+31, so steps cover columns
// [1, 1+16n) with the last one ending before the final input column.
func h2v2FancyRowNative(downsampledWidth, outputWidth int, in0, in1, out []byte) {
	n := min((downsampledWidth-2)/16, (outputWidth-2)/32)
	if n <= 0 {
		h2v2FancyCols(0, downsampledWidth, downsampledWidth, outputWidth, in0, in1, out)
		return
	}

	in0, in1, out = in0[:downsampledWidth], in1[:downsampledWidth], out[:outputWidth]

	h2v2FancyCols(0, 1, downsampledWidth, outputWidth, in0, in1, out)
	h2v2FancyAVX2(&in0[0], &in1[0], &out[2], n)
	h2v2FancyCols(1+16*n, downsampledWidth, downsampledWidth, outputWidth, in0, in1, out)
}
