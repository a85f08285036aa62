package jpegdsp

import (
	"bytes"
	"image"
	"testing"
)

// fuzzBackend picks a vector backend from a fuzzer byte.
func fuzzBackend(sel uint8) Backend {
	return testBackends[int(sel)%len(testBackends)]
}

// fuzzRows splits data into n rows of size bytes, padding with zeros.
func fuzzRows(data []byte, n, size int) [][]byte {
	rows := filledRows(n, size, 0)
	for i, row := range rows {
		if off := i * size; off < len(data) {
			copy(row, data[off:])
		}
	}

	return rows
}

// FuzzKernels tests that the vector color conversion and resampling kernels match the
// scalar ones for arbitrary samples and widths.
func FuzzKernels(f *testing.F) {
	f.Add([]byte{0, 255, 128, 1, 2, 3, 254, 17, 99}, uint8(0), uint8(6))
	f.Add(bytes.Repeat([]byte{255, 0}, 100), uint8(5), uint8(0))

	const pad = 16

	f.Fuzz(func(t *testing.T, data []byte, backend, format uint8) {
		k := NewLaneKernels(fuzzBackend(backend))
		pf := PixelFormats[int(format)%len(PixelFormats)]

		w := min(len(data)/pf.Size, 512)
		in := fuzzRows(data, 2, w*pf.Size+pad)

		var got, want [3][][]byte
		for c := range got {
			got[c] = filledRows(2, w+pad, 0)
			want[c] = filledRows(2, w+pad, 0)
		}

		k.RGBToYCC(pf, w, in, got, 0, 2)
		scalarKernels.RGBToYCC(pf, w, in, want, 0, 2)

		for c := range got {
			equalRows(t, got[c], want[c], "RGBToYCC")
		}

		ycc := [3][][]byte{fuzzRows(data, 2, w+pad), fuzzRows(data[len(data)/3:], 2, w+pad), fuzzRows(data[len(data)/2:], 2, w+pad)}
		gotRGB := filledRows(2, w*pf.Size+pad, 0)
		wantRGB := filledRows(2, w*pf.Size+pad, 0)

		k.YCCToRGB(pf, w, ycc, 0, gotRGB, 2)
		scalarKernels.YCCToRGB(pf, w, ycc, 0, wantRGB, 2)
		equalRows(t, gotRGB, wantRGB, "YCCToRGB")

		if w == 0 {
			return
		}

		for _, fancy := range []bool{false, true} {
			for _, hv := range [][2]int{{2, 1}, {2, 2}, {1, 2}} {
				dw := ceilDiv(w, hv[0])
				chroma := fuzzRows(data, 3, dw+pad)
				gotUp := filledRows(2, w+pad, 0)
				wantUp := filledRows(2, w+pad, 0)

				k.Upsampler(hv[0], hv[1], fancy, dw)(hv[1], dw, w, chroma, 1, gotUp)
				scalarKernels.Upsampler(hv[0], hv[1], fancy, dw)(hv[1], dw, w, chroma, 1, wantUp)
				equalRows(t, gotUp, wantUp, "Upsampler")
			}
		}

		wib := ceilDiv(w, 2*dctSize)
		full := fuzzRows(data, 2, wib*2*dctSize)
		gotIn, wantIn := cloneRows(full), cloneRows(full)
		gotDown := filledRows(1, wib*dctSize, 0)
		wantDown := filledRows(1, wib*dctSize, 0)

		k.H2V2Downsample(w, 2, 1, wib, gotIn, gotDown)
		scalarKernels.H2V2Downsample(w, 2, 1, wib, wantIn, wantDown)
		equalRows(t, gotDown, wantDown, "H2V2Downsample")
	})
}

// FuzzDCT tests that the vector transforms and quantizer match the scalar ones for
// arbitrary blocks.
func FuzzDCT(f *testing.F) {
	f.Add(make([]byte, 128), uint8(0), uint8(50))
	f.Add(bytes.Repeat([]byte{0x80, 0x7F}, 64), uint8(3), uint8(1))

	f.Fuzz(func(t *testing.T, data []byte, backend, quality uint8) {
		if len(data) < 2*dctSize2 {
			return
		}

		k := NewLaneKernels(fuzzBackend(backend))
		q := StandardLuminance.Scaled(QualityScaling(int(quality)%100+1), true)

		var samples, coef [dctSize2]int16
		for i := range samples {
			samples[i] = int16(data[i]) - centerSample
			coef[i] = (int16(data[dctSize2+i]) - centerSample) / 2
		}

		for _, m := range []DCTMethod{ISlow, IFast} {
			got, want := samples, samples
			k.FDCT(m)(&got)
			scalarKernels.FDCT(m)(&want)

			if got != want {
				t.Fatalf("%v FDCT differs from scalar", m)
			}

			div, err := NewDivisors(&q, m)
			if err != nil {
				t.Fatal(err)
			}

			var gotQ, wantQ [dctSize2]int16
			k.Quantize(&gotQ, div, &got)
			scalarKernels.Quantize(&wantQ, div, &want)

			if gotQ != wantQ {
				t.Fatalf("%v Quantize differs from scalar", m)
			}

			mult, err := NewMultipliers(&StandardLuminance, m)
			if err != nil {
				t.Fatal(err)
			}

			gotPx := filledRows(dctSize, dctSize, 0)
			wantPx := filledRows(dctSize, dctSize, 0)
			k.IDCT(m)(mult, &coef, gotPx, 0)
			scalarKernels.IDCT(m)(mult, &coef, wantPx, 0)
			equalRows(t, gotPx, wantPx, m.String()+" IDCT")
		}
	})
}

// FuzzRoundTrip tests Forward, snapshots and Inverse for panics and size errors.
func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4}, uint8(1), uint8(1), uint8(0), uint8(0))
	f.Add(bytes.Repeat([]byte{200, 10, 90, 255}, 300), uint8(17), uint8(9), uint8(2), uint8(3))

	f.Fuzz(func(t *testing.T, data []byte, w, h, layout, flags uint8) {
		if w == 0 || h == 0 || len(data) == 0 {
			return
		}

		img := image.NewRGBA(image.Rect(0, 0, int(w)%64+1, int(h)%64+1))
		for i := range img.Pix {
			img.Pix[i] = data[i%len(data)]
		}

		opts := &Options{
			Quality:        int(flags)%100 + 1,
			Subsampling:    Subsampling(layout % 4),
			DCTMethod:      DCTMethod(flags >> 7),
			UpsampleMethod: UpsampleMethod(layout >> 2 % 3),
			Scale:          1 << (flags >> 2 % 4),
			Smoothing:      int(flags>>4) * 6,
		}

		c, err := Forward(img, opts)
		if err != nil {
			t.Fatalf("Forward: %v", err)
		}

		var buf bytes.Buffer
		if err := WriteSnapshot(&buf, c); err != nil {
			t.Fatalf("WriteSnapshot: %v", err)
		}

		c, err = ReadSnapshot(&buf)
		if err != nil {
			t.Fatalf("ReadSnapshot: %v", err)
		}

		out, err := Inverse(c, opts)
		if err != nil {
			t.Fatalf("Inverse: %v", err)
		}

		b := img.Bounds()
		if want := image.Rect(0, 0, ceilDiv(b.Dx(), opts.Scale), ceilDiv(b.Dy(), opts.Scale)); out.Bounds() != want {
			t.Fatalf("Inverse bounds %v, want %v", out.Bounds(), want)
		}
	})
}

// FuzzReadSnapshot tests that malformed snapshots are rejected without panicking.
func FuzzReadSnapshot(f *testing.F) {
	for _, img := range []image.Image{testImage(9, 9), image.NewGray(image.Rect(0, 0, 3, 20))} {
		c, err := Forward(img)
		if err != nil {
			f.Fatal(err)
		}

		var buf bytes.Buffer
		if err := WriteSnapshot(&buf, c); err != nil {
			f.Fatal(err)
		}

		f.Add(buf.Bytes())
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		c, err := ReadSnapshot(bytes.NewReader(data))
		if err != nil {
			return
		}

		if _, err := Inverse(c, &Options{Scale: 8}); err != nil {
			t.Fatalf("Inverse rejected a validated snapshot: %v", err)
		}
	})
}
