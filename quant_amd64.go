//go:build amd64 && !noasm

package jpegdsp

//go:noescape
func quantizeAVX2(coef, ws *[dctSize2]int16, recip, corr, scale *[dctSize2]uint16)

//go:noescape
func convSampAVX2(rows *[dctSize]*byte, ws *[dctSize2]int16)

// quantizeNative runs the 16-bit multiply-high quantizer on 16 coefficients per step.
func quantizeNative(coef *[dctSize2]int16, div *Divisors, ws *[dctSize2]int16) {
	if !div.vector {
		quantizeScalar(coef, div, ws)
		return
	}

	quantizeAVX2(coef, ws, &div.recip16, &div.corr16, &div.Scale)
}

func convSampNative(in [][]byte, startCol int, ws *[dctSize2]int16) {
	var rows [dctSize]*byte
	for r := range rows {
		rows[r] = &in[r][startCol : startCol+dctSize][0]
	}

	convSampAVX2(&rows, ws)
}
