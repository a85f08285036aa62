package jpegdsp

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

// idctTestBlock is a set of DCT coefficients used as input for the test.
// This block has a single non-zero DC coefficient (512) and all AC coefficients are zero.
// The IDCT of such a block should result in a flat 8x8 block where every pixel has the same value.
var idctTestBlock = [64]int16{
	512, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// idctTestPixels is the expected 8x8 pixel block output after applying the IDCT.
// The result should be a flat block where every pixel value is 192.
// This is calculated as (512 / 8) + 128 = 64 + 128 = 192.
var idctTestPixels = [64]byte{
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
	192, 192, 192, 192, 192, 192, 192, 192,
}

// idctTestBlockAC is a test block with non-zero AC coefficients to test the main transform logic.
var idctTestBlockAC = [64]int16{
	0, 20, 0, 0, 0, 0, 0, 0,
	-30, 0, 15, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// idctTestPixelsAC is the expected output for idctTestBlockAC.
// These values are pre-calculated from a known-good IDCT implementation.
var idctTestPixelsAC = [64]byte{
	130, 127, 123, 120, 119, 119, 121, 123,
	130, 128, 124, 121, 120, 120, 122, 123,
	130, 129, 126, 124, 122, 122, 123, 124,
	131, 130, 129, 127, 126, 125, 124, 124,
	132, 132, 131, 130, 129, 127, 126, 125,
	132, 133, 134, 134, 132, 130, 127, 126,
	133, 134, 136, 136, 135, 132, 128, 126,
	133, 135, 137, 137, 136, 133, 129, 126,
}

// unitMult is an accurate-IDCT multiplier table of ones, so coefficients are used as is.
var unitMult = func() *[dctSize2]int16 {
	m := new([dctSize2]int16)
	for i := range m {
		m[i] = 1
	}

	return m
}()

// idctHelper performs a full 8x8 2D IDCT into a packed 8x8 block.
func idctHelper(idct IDCTFunc, block *[64]int16) [64]byte {
	var out [64]byte

	rows := make([][]byte, dctSize)
	for r := range rows {
		rows[r] = out[r*8 : r*8+8]
	}

	idct(unitMult, block, rows, 0)

	return out
}

// printBlock is a helper for formatting an 8x8 block for readable test output.
func printBlock(t *testing.T, block []byte) {
	var buf bytes.Buffer

	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			buf.WriteString("\n")
		}

		buf.WriteString(fmt.Sprintf("%4d", block[i]))
	}

	t.Log("\n" + buf.String())
}

// TestIdctDC verifies the IDCT implementation for the DC-only case.
// This tests the shortcut path in both passes.
func TestIdctDC(t *testing.T) {
	for _, b := range append([]Backend{Scalar}, testBackends...) {
		block := idctTestBlock
		pixels := idctHelper(NewLaneKernels(b).IDCTIslow, &block)

		for i, want := range idctTestPixels {
			if got := pixels[i]; got != want {
				t.Errorf("%v: IDCT DC mismatch at index %d: got %d, want %d", b, i, got, want)
				t.Log("Got pixels:")
				printBlock(t, pixels[:])
				t.Log("Want pixels:")
				printBlock(t, idctTestPixels[:])
				t.FailNow()
			}
		}
	}
}

// TestIdctAC verifies the IDCT implementation for a general case with AC coefficients.
func TestIdctAC(t *testing.T) {
	for _, b := range append([]Backend{Scalar}, testBackends...) {
		block := idctTestBlockAC
		pixels := idctHelper(NewLaneKernels(b).IDCTIslow, &block)

		for i, want := range idctTestPixelsAC {
			if got := pixels[i]; got != want {
				t.Errorf("%v: IDCT AC mismatch at index %d: got %d, want %d", b, i, got, want)
				t.Log("Got pixels:")
				printBlock(t, pixels[:])
				t.Log("Want pixels:")
				printBlock(t, idctTestPixelsAC[:])
				t.FailNow()
			}
		}

		if block != idctTestBlockAC {
			t.Fatalf("%v: IDCT modified its input", b)
		}
	}
}

// TestIdctACStrided verifies the IDCT implementation writing at a column offset into wider rows.
func TestIdctACStrided(t *testing.T) {
	const stride, outCol = 24, 8

	for _, b := range append([]Backend{Scalar}, testBackends...) {
		out := filledRows(dctSize, stride, 0xEE)
		block := idctTestBlockAC
		NewLaneKernels(b).IDCTIslow(unitMult, &block, out, outCol)

		for r := 0; r < 8; r++ {
			for c := 0; c < stride; c++ {
				got := out[r][c]
				if c < outCol || c >= outCol+8 {
					if got != 0xEE {
						t.Fatalf("%v: IDCT wrote outside its block at row %d, col %d", b, r, c)
					}

					continue
				}

				if want := idctTestPixelsAC[r*8+c-outCol]; got != want {
					t.Errorf("%v: IDCT AC (strided) mismatch at row %d, col %d: got %d, want %d", b, r, c, got, want)

					// De-stride the output for easier comparison printing.
					var gotFlat [64]byte
					for r2 := 0; r2 < 8; r2++ {
						copy(gotFlat[r2*8:r2*8+8], out[r2][outCol:outCol+8])
					}

					t.Log("Got pixels (de-strided):")
					printBlock(t, gotFlat[:])
					t.Log("Want pixels:")
					printBlock(t, idctTestPixelsAC[:])
					t.FailNow()
				}
			}
		}
	}
}

// quantizedBlocks returns coefficient blocks as an encoder would produce them with q.
func quantizedBlocks(t *testing.T, rng *rand.Rand, q *QuantTable, n int) []*[dctSize2]int16 {
	t.Helper()

	div, err := NewDivisors(q, ISlow)
	if err != nil {
		t.Fatal(err)
	}

	var out []*[dctSize2]int16
	for _, ws := range testBlocks(rng, n) {
		coef := new([dctSize2]int16)
		scalarKernels.FDCTIslow(ws)
		scalarKernels.Quantize(coef, div, ws)
		out = append(out, coef)
	}

	return out
}

// TestIdctVectorMatchesScalar verifies every backend against the scalar transforms, on
// encoder output and on random coefficients.
func TestIdctVectorMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(31))

	blocks := quantizedBlocks(t, rng, &StandardLuminance, 60)
	for i := 0; i < 30; i++ {
		blocks = append(blocks, randomBlock(rng, -64, 64))
	}

	for _, m := range []DCTMethod{ISlow, IFast} {
		mult, err := NewMultipliers(&StandardLuminance, m)
		if err != nil {
			t.Fatal(err)
		}

		for _, b := range testBackends {
			k := NewLaneKernels(b)

			for n, coef := range blocks {
				got := filledRows(dctSize, 2*dctSize, 0xAA)
				want := cloneRows(got)

				k.IDCT(m)(mult, coef, got, 4)
				scalarKernels.IDCT(m)(mult, coef, want, 4)

				equalRows(t, got, want, fmt.Sprintf("%v %v block %d", b, m, n))
				if t.Failed() {
					t.FailNow()
				}
			}
		}
	}
}

// TestIdctFastTruncates verifies that the fast IDCT truncates its final descale: a DC term
// of 48/32 decodes to 1 above the center and -48/32 to 2 below it.
func TestIdctFastTruncates(t *testing.T) {
	var mult [dctSize2]int16
	for i := range mult {
		mult[i] = 1
	}
	mult[0] = 48

	tables := []*Kernels{scalarKernels, NewKernels(AVX2)}
	for _, b := range testBackends {
		tables = append(tables, NewLaneKernels(b))
	}

	for _, tc := range []struct {
		dc   int16
		want byte
	}{
		{1, 129},
		{-1, 126},
	} {
		var coef [dctSize2]int16
		coef[0] = tc.dc

		for _, k := range tables {
			out := filledRows(dctSize, dctSize, 0)
			k.IDCTIfast(&mult, &coef, out, 0)

			for r := range out {
				isEqual(t, out[r], bytes.Repeat([]byte{tc.want}, dctSize), fmt.Sprintf("%v dc %d row %d", k.Backend, tc.dc, r))
			}
		}
	}
}

// TestIdctFastClose verifies that the fast IDCT stays close to the accurate one on
// quantized encoder output.
func TestIdctFastClose(t *testing.T) {
	rng := rand.New(rand.NewSource(37))

	slowMult, err := NewMultipliers(&StandardLuminance, ISlow)
	if err != nil {
		t.Fatal(err)
	}

	fastMult, err := NewMultipliers(&StandardLuminance, IFast)
	if err != nil {
		t.Fatal(err)
	}

	for n, coef := range quantizedBlocks(t, rng, &StandardLuminance, 300) {
		slow := filledRows(dctSize, dctSize, 0)
		fast := filledRows(dctSize, dctSize, 0)
		scalarKernels.IDCTIslow(slowMult, coef, slow, 0)
		scalarKernels.IDCTIfast(fastMult, coef, fast, 0)

		for r := range slow {
			for c := range slow[r] {
				if absDiff(slow[r][c], fast[r][c]) > 4 {
					t.Fatalf("block %d (%d, %d): islow %d, ifast %d", n, r, c, slow[r][c], fast[r][c])
				}
			}
		}
	}
}

// TestNewMultipliers verifies the fast multiplier tables and their overflow check.
func TestNewMultipliers(t *testing.T) {
	m, err := NewMultipliers(&StandardLuminance, IFast)
	if err != nil {
		t.Fatal(err)
	}

	// Position 0 has an AAN factor of 1: 16 with two fraction bits.
	if m[0] != 64 {
		t.Errorf("ifast multiplier 0 = %d, want 64", m[0])
	}

	var big QuantTable
	for i := range big {
		big[i] = 32767
	}

	if _, err := NewMultipliers(&big, IFast); err == nil {
		t.Error("expected an overflow error for the fast IDCT")
	}

	if _, err := NewMultipliers(&big, ISlow); err != nil {
		t.Errorf("accurate multipliers: %v", err)
	}

	if _, err := NewMultipliers(&StandardLuminance, DCTMethod(9)); err == nil {
		t.Error("expected an error for an unknown method")
	}
}

// BenchmarkIdct measures the performance of the full 8x8 IDCT process.
func BenchmarkIdct(b *testing.B) {
	// Use the AC test block as a representative input.
	block := idctTestBlockAC
	out := filledRows(dctSize, dctSize, 0)
	k := Default()

	for _, m := range []DCTMethod{ISlow, IFast} {
		b.Run(m.String(), func(b *testing.B) {
			idct := k.IDCT(m)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				idct(unitMult, &block, out, 0)
			}
		})
	}
}
