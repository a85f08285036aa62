//go:build amd64 && !noasm

package jpegdsp

// islowConstants holds the accurate DCT multipliers and rounding terms, one row of eight
// equal lanes per value. The assembly addresses rows by byte offset (row*32), so the order
// must not change.
var islowConstants = broadcastLanes(
	fix0_541196100, fix0_765366865, fix1_847759065, fix1_175875602,
	fix0_298631336, fix2_053119869, fix3_072711026, fix1_501321110,
	-fix0_899976223, -fix2_562915447, -fix1_961570560, -fix0_390180644,
	0, 1<<1, 1<<10, 1<<14, 1<<17, centerSample,
)

// broadcastLanes returns one 8-lane row per value.
func broadcastLanes(v ...int32) [][8]int32 {
	rows := make([][8]int32, len(v))
	for i, x := range v {
		for j := range rows[i] {
			rows[i][j] = x
		}
	}

	return rows
}

//go:noescape
func fdctIslowAVX2(data *[dctSize2]int16, ws *[dctSize2]int32, k *[8]int32)

//go:noescape
func idctIslowAVX2(mult, coef *[dctSize2]int16, rows *[dctSize]*byte, ws *[dctSize2]int32, k *[8]int32)

// fdctIslowNative transforms all eight rows, then all eight columns, at once in 32-bit
// lanes. The block is transposed before each pass and truncated to 16 bits after it.
func fdctIslowNative(data *[dctSize2]int16) {
	var ws [dctSize2]int32
	fdctIslowAVX2(data, &ws, &islowConstants[0])
}

// idctIslowNative dequantizes and transforms a block in 32-bit lanes. It has no shortcut for
// zero AC terms; the full transform gives the same result.
func idctIslowNative(mult, coef *[dctSize2]int16, out [][]byte, outCol int) {
	var rows [dctSize]*byte
	for r := range rows {
		rows[r] = &out[r][outCol : outCol+dctSize][0]
	}

	var ws [dctSize2]int32
	idctIslowAVX2(mult, coef, &rows, &ws, &islowConstants[0])
}
