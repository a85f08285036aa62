//go:build amd64 && !noasm

package jpegdsp

import "golang.org/x/sys/cpu"

// hasAVX2 reports whether the running CPU and OS support the AVX2 kernels. It is checked
// independently of the forced capabilities so that a table built for a wider backend never
// executes instructions the CPU lacks.
var hasAVX2 = cpu.X86.HasAVX2

// bindNative replaces the scalar kernels of k with AVX2 code when the backend is at least
// 256 bits wide and the CPU supports it. Kernels without AVX2 code stay scalar.
func bindNative(k *Kernels) {
	if !hasAVX2 || k.Backend.Variable || k.Backend.Bits < AVX2.Bits {
		return
	}

	k.RGBToYCC = rgbToYCCNative
	k.RGBToGray = rgbToGrayNative
	k.YCCToRGB = yccToRGBNative

	k.H2V2FancyUpsample = h2v2FancyUpsampleNative

	k.FDCTIslow = fdctIslowNative
	k.IDCTIslow = idctIslowNative

	k.ConvSamp = convSampNative
	k.Quantize = quantizeNative
}
