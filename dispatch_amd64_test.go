//go:build amd64 && !noasm

package jpegdsp

import (
	"fmt"
	"math/rand"
	"testing"
)

// nativeKernels is the AVX2 table when the CPU supports it, else the scalar one.
var nativeKernels = NewKernels(AVX2)

func requireAVX2(tb testing.TB) {
	tb.Helper()

	if !hasAVX2 {
		tb.Skip("CPU does not support AVX2")
	}
}

// TestNativeBinding verifies which tables receive the AVX2 kernels.
func TestNativeBinding(t *testing.T) {
	requireAVX2(t)

	for _, b := range []Backend{AVX2, AVX512} {
		k := NewKernels(b)
		if funcPointer(k.IDCTIslow) != funcPointer(idctIslowNative) || funcPointer(k.Quantize) != funcPointer(quantizeNative) {
			t.Errorf("%v: AVX2 kernels not bound", b)
		}
	}

	for _, b := range []Backend{SSE2, RVV(256, 1)} {
		k := NewKernels(b)
		if funcPointer(k.IDCTIslow) != funcPointer(idctIslowScalar) {
			t.Errorf("%v: got AVX2 kernels", b)
		}
	}
}

func TestNativeColorMatchesScalar(t *testing.T) {
	requireAVX2(t)

	const pad = 40

	rng := rand.New(rand.NewSource(11))
	for _, pf := range PixelFormats {
		for _, w := range testWidths {
			name := fmt.Sprintf("%v/%d", pf, w)
			in := randomRows(rng, 3, w*pf.Size+pad)

			var got, want [3][][]byte
			for c := range got {
				got[c] = filledRows(4, w+pad, 0x5A)
				want[c] = filledRows(4, w+pad, 0x5A)
			}

			nativeKernels.RGBToYCC(pf, w, in, got, 1, 3)
			scalarKernels.RGBToYCC(pf, w, in, want, 1, 3)
			for c := range got {
				equalRows(t, got[c], want[c], name+" RGBToYCC")
			}

			gotY, wantY := filledRows(3, w+pad, 0x5A), filledRows(3, w+pad, 0x5A)
			nativeKernels.RGBToGray(pf, w, in, gotY, 0, 3)
			scalarKernels.RGBToGray(pf, w, in, wantY, 0, 3)
			equalRows(t, gotY, wantY, name+" RGBToGray")

			ycc := [3][][]byte{randomRows(rng, 4, w+pad), randomRows(rng, 4, w+pad), randomRows(rng, 4, w+pad)}
			gotRGB, wantRGB := filledRows(3, w*pf.Size+pad, 0x5A), filledRows(3, w*pf.Size+pad, 0x5A)
			nativeKernels.YCCToRGB(pf, w, ycc, 1, gotRGB, 3)
			scalarKernels.YCCToRGB(pf, w, ycc, 1, wantRGB, 3)
			equalRows(t, gotRGB, wantRGB, name+" YCCToRGB")
		}
	}
}

// TestNativeColorExtremes covers the saturating corners of the inverse transform.
func TestNativeColorExtremes(t *testing.T) {
	requireAVX2(t)

	const w = 16

	for _, v := range [][3]byte{{0, 0, 0}, {255, 255, 255}, {0, 255, 255}, {255, 0, 0}, {0, 0, 255}, {255, 255, 0}} {
		ycc := [3][][]byte{filledRows(1, w, v[0]), filledRows(1, w, v[1]), filledRows(1, w, v[2])}
		got, want := filledRows(1, w*4, 0), filledRows(1, w*4, 0)

		nativeKernels.YCCToRGB(BGRA, w, ycc, 0, got, 1)
		scalarKernels.YCCToRGB(BGRA, w, ycc, 0, want, 1)
		equalRows(t, got, want, fmt.Sprintf("YCCToRGB%v", v))
	}
}

func TestNativeFancyUpsampleMatchesScalar(t *testing.T) {
	requireAVX2(t)

	const pad = 40

	rng := rand.New(rand.NewSource(12))
	for _, dw := range []int{3, 16, 17, 18, 19, 33, 34, 35, 50, 97, 960} {
		for _, ow := range []int{2*dw - 1, 2 * dw} {
			in := randomRows(rng, 4, dw+pad)
			got, want := filledRows(2, ow+pad, 0x5A), filledRows(2, ow+pad, 0x5A)

			nativeKernels.H2V2FancyUpsample(2, dw, ow, in, 1, got)
			scalarKernels.H2V2FancyUpsample(2, dw, ow, in, 1, want)
			equalRows(t, got, want, fmt.Sprintf("H2V2FancyUpsample %d->%d", dw, ow))
		}
	}
}

func TestNativeDCTMatchesScalar(t *testing.T) {
	requireAVX2(t)

	rng := rand.New(rand.NewSource(13))
	ranges := [][2]int{{-128, 127}, {-1024, 1023}, {-32768, 32767}}

	for i := 0; i < 2000; i++ {
		r := ranges[i%len(ranges)]

		data := randomBlock(rng, r[0], r[1])
		got, want := *data, *data
		nativeKernels.FDCTIslow(&got)
		scalarKernels.FDCTIslow(&want)

		if got != want {
			t.Fatalf("FDCTIslow differs for %v", *data)
		}

		coef := randomBlock(rng, r[0], r[1])
		mult := randomBlock(rng, 1, 255)
		if i%7 == 0 {
			for j := 1; j < dctSize2; j++ {
				coef[j] = 0
			}
		}

		gotPx := filledRows(dctSize, dctSize+5, 0x5A)
		wantPx := filledRows(dctSize, dctSize+5, 0x5A)
		nativeKernels.IDCTIslow(mult, coef, gotPx, 3)
		scalarKernels.IDCTIslow(mult, coef, wantPx, 3)
		equalRows(t, gotPx, wantPx, fmt.Sprintf("IDCTIslow block %d", i))
	}
}

func TestNativeQuantizeMatchesScalar(t *testing.T) {
	requireAVX2(t)

	rng := rand.New(rand.NewSource(14))
	for _, quality := range []int{1, 10, 50, 75, 90, 100} {
		for _, m := range []DCTMethod{ISlow, IFast} {
			q := StandardChrominance.Scaled(QualityScaling(quality), false)
			div, err := NewDivisors(&q, m)
			if err != nil {
				t.Fatal(err)
			}

			for i := 0; i < 200; i++ {
				ws := randomBlock(rng, -32768, 32767)

				var got, want [dctSize2]int16
				nativeKernels.Quantize(&got, div, ws)
				scalarKernels.Quantize(&want, div, ws)

				if got != want {
					t.Fatalf("quality %d %v: Quantize differs", quality, m)
				}
			}
		}
	}
}

func TestNativeConvSampMatchesScalar(t *testing.T) {
	requireAVX2(t)

	rng := rand.New(rand.NewSource(15))
	in := randomRows(rng, dctSize, 40)

	for _, col := range []int{0, 1, 8, 17, 32} {
		var got, want [dctSize2]int16
		nativeKernels.ConvSamp(in, col, &got)
		scalarKernels.ConvSamp(in, col, &want)

		if got != want {
			t.Errorf("ConvSamp at column %d differs", col)
		}
	}
}

func BenchmarkIDCTIslow(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	coef := randomBlock(rng, -64, 63)
	mult := randomBlock(rng, 1, 99)
	out := filledRows(dctSize, dctSize, 0)

	for _, k := range []*Kernels{scalarKernels, nativeKernels} {
		b.Run(k.Backend.String(), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				k.IDCTIslow(mult, coef, out, 0)
			}
		})
	}
}

func BenchmarkFDCTIslow(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	block := randomBlock(rng, -128, 127)

	for _, k := range []*Kernels{scalarKernels, nativeKernels} {
		b.Run(k.Backend.String(), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				data := *block
				k.FDCTIslow(&data)
			}
		})
	}
}
