package jpegdsp

import "fmt"

// QuantTable is a quantization table in natural (row-major) order.
type QuantTable [dctSize2]uint16

// Example tables from the JPEG standard, Annex K, at quality 50.
var (
	StandardLuminance = QuantTable{
		16, 11, 10, 16, 24, 40, 51, 61,
		12, 12, 14, 19, 26, 58, 60, 55,
		14, 13, 16, 24, 40, 57, 69, 56,
		14, 17, 22, 29, 51, 87, 80, 62,
		18, 22, 37, 56, 68, 109, 103, 77,
		24, 35, 55, 64, 81, 104, 113, 92,
		49, 64, 78, 87, 103, 121, 120, 101,
		72, 92, 95, 98, 112, 100, 103, 99,
	}
	StandardChrominance = QuantTable{
		17, 18, 24, 47, 99, 99, 99, 99,
		18, 21, 26, 66, 99, 99, 99, 99,
		24, 26, 56, 99, 99, 99, 99, 99,
		47, 66, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
		99, 99, 99, 99, 99, 99, 99, 99,
	}
)

// aanScales are the AAN DCT scale factors scaleFactor[row] * scaleFactor[col] * 2^14, with
// scaleFactor[0] = 1 and scaleFactor[k] = cos(k*pi/16) * sqrt(2) otherwise.
var aanScales = [dctSize2]int32{
	16384, 22725, 21407, 19266, 16384, 12873, 8867, 4520,
	22725, 31521, 29692, 26722, 22725, 17855, 12299, 6270,
	21407, 29692, 27969, 25172, 21407, 16819, 11585, 5906,
	19266, 26722, 25172, 22654, 19266, 15137, 10426, 5315,
	16384, 22725, 21407, 19266, 16384, 12873, 8867, 4520,
	12873, 17855, 16819, 15137, 12873, 10114, 6967, 3552,
	8867, 12299, 11585, 10426, 8867, 6967, 4799, 2446,
	4520, 6270, 5906, 5315, 4520, 3552, 2446, 1247,
}

const (
	maxQuantValue = 32767
	aanScaleBits  = 14
)

// QualityScaling converts an IJG quality rating in [1, 100] to a percentage scale factor
// for the standard tables. Out-of-range values are clamped.
func QualityScaling(quality int) int {
	switch {
	case quality <= 0:
		quality = 1
	case quality > 100:
		quality = 100
	}

	if quality < 50 {
		return 5000 / quality
	}

	return 200 - quality*2
}

// Scaled returns t scaled by scale percent, with entries clamped to [1, 32767], or to
// [1, 255] when baseline is set.
func (t *QuantTable) Scaled(scale int, baseline bool) QuantTable {
	limit := maxQuantValue
	if baseline {
		limit = 255
	}

	var q QuantTable
	for i, v := range t {
		x := (int(v)*scale + 50) / 100
		switch {
		case x <= 0:
			x = 1
		case x > limit:
			x = limit
		}

		q[i] = uint16(x)
	}

	return q
}

// Validate checks that every entry is in [1, 32767].
func (t *QuantTable) Validate() error {
	for i, v := range t {
		if v == 0 || v > maxQuantValue {
			return fmt.Errorf("entry %d is %d: %w", i, v, ErrInvalidQuantTable)
		}
	}

	return nil
}

// Divisors holds a quantization table prepared for division by multiplication.
//
// Coefficient x is quantized to ((|x| + Correction) * Reciprocal) >> (Shift + 16), with the
// sign of x reapplied. Reciprocal and Shift are chosen so this equals |x| / divisor rounded
// half up for every 16-bit coefficient. Scale is 2^(32 - Shift - 16), the second
// multiply-high factor used by the vector quantizer.
type Divisors struct {
	Reciprocal [dctSize2]uint32
	Correction [dctSize2]uint32
	Scale      [dctSize2]uint16
	Shift      [dctSize2]int16

	// 16-bit copies for the vector quantizer, valid when vector is set.
	recip16, corr16 [dctSize2]uint16
	vector          bool
}

// NewDivisors prepares q for the forward DCT of the given method. The accurate DCT leaves its
// output scaled by 8, which the divisors absorb; the fast DCT also leaves the AAN factors.
func NewDivisors(q *QuantTable, method DCTMethod) (*Divisors, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	d := new(Divisors)
	d.vector = true

	for i, v := range q {
		var divisor uint32
		switch method {
		case ISlow:
			divisor = uint32(v) << 3
		case IFast:
			divisor = uint32(descale(int32(v)*aanScales[i], aanScaleBits-3))
		default:
			return nil, fmt.Errorf("dct method %d: %w", method, ErrUnsupported)
		}

		if !d.setReciprocal(i, divisor) {
			d.vector = false
		}
	}

	return d, nil
}

// setReciprocal computes the entries for position i and reports whether they fit the
// 16-bit lanes of the vector quantizer.
func (d *Divisors) setReciprocal(i int, divisor uint32) bool {
	if divisor <= 1 {
		// Identity: the scalar quantizer passes coefficients through.
		d.Reciprocal[i], d.Correction[i], d.Scale[i], d.Shift[i] = 1, 0, 1, -16

		return false
	}

	b := 0
	for divisor>>(b+1) != 0 {
		b++
	}

	r := 16 + b
	fq := (uint64(1) << r) / uint64(divisor)
	fr := (uint64(1) << r) % uint64(divisor)
	c := divisor / 2

	switch {
	case fr == 0:
		// Power of two: fq would need one more bit.
		fq >>= 1
		r--
	case fr <= uint64(divisor/2):
		c++
	default:
		fq++
	}

	d.Reciprocal[i] = uint32(fq)
	d.Correction[i] = c
	d.Shift[i] = int16(r - 16)
	if r <= 32 {
		d.Scale[i] = uint16(uint32(1) << (32 - r))
	}

	if r <= 16 || divisor >= 1<<15 {
		return false
	}

	d.recip16[i] = uint16(fq)
	d.corr16[i] = uint16(c)

	return true
}

// quantizeScalar quantizes ws into coef.
func quantizeScalar(coef *[dctSize2]int16, div *Divisors, ws *[dctSize2]int16) {
	quantizeFrom(0, coef, div, ws)
}

func quantizeFrom(i int, coef *[dctSize2]int16, div *Divisors, ws *[dctSize2]int16) {
	for ; i < dctSize2; i++ {
		x := int32(ws[i])
		neg := x < 0
		if neg {
			x = -x
		}

		p := (uint64(uint32(x)+div.Correction[i]) * uint64(div.Reciprocal[i])) >> (int(div.Shift[i]) + 16)
		v := int16(p)
		if neg {
			v = -v
		}

		coef[i] = v
	}
}

// convSampScalar loads an 8x8 block at column startCol of in and centers it on zero.
func convSampScalar(in [][]byte, startCol int, ws *[dctSize2]int16) {
	for r := 0; r < dctSize; r++ {
		row := in[r][startCol : startCol+dctSize]
		for c, v := range row {
			ws[r*dctSize+c] = int16(v) - centerSample
		}
	}
}

// NewMultipliers prepares q for the inverse DCT of the given method: the accurate IDCT takes
// the table as is, the fast IDCT takes it premultiplied by the AAN factors with 2 fraction bits.
func NewMultipliers(q *QuantTable, method DCTMethod) (*[dctSize2]int16, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	m := new([dctSize2]int16)
	for i, v := range q {
		switch method {
		case ISlow:
			m[i] = int16(v)
		case IFast:
			x := descale(int32(v)*aanScales[i], aanScaleBits-pass1Bits)
			if x > maxQuantValue {
				return nil, fmt.Errorf("entry %d is too large for the fast IDCT: %w", i, ErrInvalidQuantTable)
			}

			m[i] = int16(x)
		default:
			return nil, fmt.Errorf("dct method %d: %w", method, ErrUnsupported)
		}
	}

	return m, nil
}

// Dequantize multiplies coefficients by q, giving the DCT coefficients the quantizer saw
// divided by the accurate DCT's scale of 8.
func Dequantize(coef *[dctSize2]int16, q *QuantTable) [dctSize2]int32 {
	var out [dctSize2]int32
	for i, v := range coef {
		out[i] = int32(v) * int32(q[i])
	}

	return out
}

// LevelShiftBack is the inverse of ConvSamp: it adds 128, clamps and stores an 8x8 block at
// column outCol of out.
func LevelShiftBack(ws *[dctSize2]int16, out [][]byte, outCol int) {
	for r := 0; r < dctSize; r++ {
		row := out[r][outCol : outCol+dctSize]
		for c := range row {
			row[c] = rangeLimit(int32(ws[r*dctSize+c]) + centerSample)
		}
	}
}
