package jpegdsp

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// TestQualityScaling verifies the IJG quality curve.
func TestQualityScaling(t *testing.T) {
	tests := []struct {
		quality, want int
	}{
		{-5, 5000}, {0, 5000}, {1, 5000}, {10, 500}, {25, 200}, {49, 102},
		{50, 100}, {75, 50}, {90, 20}, {100, 0}, {150, 0},
	}

	for _, tc := range tests {
		if got := QualityScaling(tc.quality); got != tc.want {
			t.Errorf("QualityScaling(%d) = %d, want %d", tc.quality, got, tc.want)
		}
	}
}

// TestQuantTableScaled verifies scaling and clamping of quantization tables.
func TestQuantTableScaled(t *testing.T) {
	q := StandardLuminance.Scaled(50, true)
	if q[0] != 8 || q[1] != 6 || q[63] != 50 {
		t.Errorf("Scaled(50) = %d, %d ... %d", q[0], q[1], q[63])
	}

	q = StandardLuminance.Scaled(0, true)
	for i, v := range q {
		if v != 1 {
			t.Fatalf("Scaled(0)[%d] = %d, want 1", i, v)
		}
	}

	q = StandardChrominance.Scaled(5000, true)
	if q[0] != 255 {
		t.Errorf("baseline clamp: got %d, want 255", q[0])
	}

	q = StandardChrominance.Scaled(5000, false)
	if q[0] != 850 || q[63] != 4950 {
		t.Errorf("extended scaling: got %d and %d, want 850 and 4950", q[0], q[63])
	}

	q = StandardLuminance.Scaled(100000, false)
	if q[0] != 16000 || q[63] != maxQuantValue {
		t.Errorf("extended clamp: got %d and %d, want 16000 and %d", q[0], q[63], maxQuantValue)
	}
}

// TestQuantTableValidate verifies that zero and oversized entries are rejected.
func TestQuantTableValidate(t *testing.T) {
	if err := StandardLuminance.Validate(); err != nil {
		t.Errorf("standard table: %v", err)
	}

	bad := StandardLuminance
	bad[5] = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidQuantTable) {
		t.Errorf("zero entry: got %v", err)
	}

	bad = StandardLuminance
	bad[63] = 40000
	if err := bad.Validate(); !errors.Is(err, ErrInvalidQuantTable) {
		t.Errorf("oversized entry: got %v", err)
	}

	if _, err := NewDivisors(&bad, ISlow); !errors.Is(err, ErrInvalidQuantTable) {
		t.Errorf("NewDivisors accepted an invalid table: %v", err)
	}

	if _, err := NewDivisors(&StandardLuminance, DCTMethod(7)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("NewDivisors accepted an unknown method: %v", err)
	}
}

// divisorFor returns the divisor the quantizer applies at position i.
func divisorFor(q *QuantTable, m DCTMethod, i int) int {
	if m == IFast {
		return (int(q[i])*int(aanScales[i]) + 1<<10) >> 11
	}

	return int(q[i]) << 3
}

// roundDiv divides x by d rounding half away from zero.
func roundDiv(x, d int) int {
	if x < 0 {
		return -((-x + d/2) / d)
	}

	return (x + d/2) / d
}

// TestQuantizeExhaustive verifies the quantizer against rounded division for every 16-bit
// input, with flat and standard tables, on the scalar and vector paths.
func TestQuantizeExhaustive(t *testing.T) {
	var tables []QuantTable
	for _, v := range []uint16{1, 2, 3, 7, 16, 99, 255, 1000, 4095, 4096, 32767} {
		var q QuantTable
		for i := range q {
			q[i] = v
		}

		tables = append(tables, q)
	}

	tables = append(tables, StandardLuminance, StandardChrominance.Scaled(QualityScaling(95), true))

	kernels := []*Kernels{scalarKernels, NewKernels(AVX2), NewLaneKernels(AVX2), NewLaneKernels(RVV(128, 1))}

	for ti := range tables {
		q := &tables[ti]

		for _, m := range []DCTMethod{ISlow, IFast} {
			div, err := NewDivisors(q, m)
			if err != nil {
				t.Fatal(err)
			}

			for _, k := range kernels {
				name := fmt.Sprintf("%v table %d %v", k.Backend, ti, m)

				var ws, coef [dctSize2]int16
				for base := -32768; base < 32768; base += dctSize2 {
					for i := range ws {
						ws[i] = int16(base + i)
					}

					k.Quantize(&coef, div, &ws)

					for i := range coef {
						want := roundDiv(base+i, divisorFor(q, m, i))
						if int(coef[i]) != want {
							t.Fatalf("%s: quantize(%d) at %d = %d, want %d", name, base+i, i, coef[i], want)
						}
					}
				}
			}
		}
	}
}

// TestQuantizeVectorMatchesScalar verifies every backend against the scalar quantizer.
func TestQuantizeVectorMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(43))

	for _, quality := range []int{1, 10, 50, 75, 90, 100} {
		for _, base := range []*QuantTable{&StandardLuminance, &StandardChrominance} {
			q := base.Scaled(QualityScaling(quality), false)

			for _, m := range []DCTMethod{ISlow, IFast} {
				div, err := NewDivisors(&q, m)
				if err != nil {
					t.Fatal(err)
				}

				for n := 0; n < 20; n++ {
					ws := randomBlock(rng, -32768, 32767)

					var want [dctSize2]int16
					scalarKernels.Quantize(&want, div, ws)

					for _, b := range testBackends {
						var got [dctSize2]int16
						NewLaneKernels(b).Quantize(&got, div, ws)

						if got != want {
							t.Fatalf("%v quality %d %v: vector result differs\ngot  %v\nwant %v", b, quality, m, got, want)
						}
					}
				}
			}
		}
	}
}

// TestDequantize verifies coefficient scaling by the table.
func TestDequantize(t *testing.T) {
	var coef [dctSize2]int16
	coef[0], coef[1], coef[63] = 10, -3, 32767

	out := Dequantize(&coef, &StandardLuminance)
	if out[0] != 160 || out[1] != -33 || out[63] != 32767*99 || out[2] != 0 {
		t.Errorf("Dequantize = %v", out)
	}
}

// BenchmarkQuantize measures the quantizer on the default backend.
func BenchmarkQuantize(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	ws := randomBlock(rng, -2048, 2047)

	div, err := NewDivisors(&StandardLuminance, ISlow)
	if err != nil {
		b.Fatal(err)
	}

	var coef [dctSize2]int16
	k := Default()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		k.Quantize(&coef, div, ws)
	}
}
