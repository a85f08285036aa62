package jpegdsp

import "sync"

// Kernel signatures. Row arguments are slices of scanlines; kernels never allocate and never
// check their arguments.
type (
	// ColorFunc converts numRows interleaved rows to three component planes at outRow.
	ColorFunc func(pf PixelFormat, width int, in [][]byte, out [3][][]byte, outRow, numRows int)
	// GrayFunc converts numRows interleaved rows to one luma plane at outRow.
	GrayFunc func(pf PixelFormat, width int, in [][]byte, out [][]byte, outRow, numRows int)
	// InverseColorFunc converts three component planes at inRow to numRows interleaved rows.
	InverseColorFunc func(pf PixelFormat, width int, in [3][][]byte, inRow int, out [][]byte, numRows int)
	// ExpandGrayFunc converts a luma plane at inRow to numRows interleaved rows.
	ExpandGrayFunc func(pf PixelFormat, width int, in [][]byte, inRow int, out [][]byte, numRows int)
	// DownsampleFunc reduces the maxVSamp rows of in to vSamp rows of widthInBlocks*8 columns.
	DownsampleFunc func(imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte)
	// SmoothDownsampleFunc is a DownsampleFunc with a smoothing factor in [0, 100]. in[0] is
	// the context row above the row group and in[maxVSamp+1] the row below.
	SmoothDownsampleFunc func(smoothing, imageWidth, maxVSamp, vSamp, widthInBlocks int, in, out [][]byte)
	// UpsampleFunc expands the row group at in[inRow:] to maxVSamp rows of outputWidth columns.
	UpsampleFunc func(maxVSamp, downsampledWidth, outputWidth int, in [][]byte, inRow int, out [][]byte)
	// MergedFunc upsamples chroma row inRowGroup and converts it with the matching luma rows.
	MergedFunc func(pf PixelFormat, outputWidth int, in [3][][]byte, inRowGroup int, out [][]byte)
	// FDCTFunc transforms a level-shifted block in place.
	FDCTFunc func(data *[dctSize2]int16)
	// IDCTFunc dequantizes coef with mult and writes the decoded block at out[r][outCol:].
	IDCTFunc func(mult, coef *[dctSize2]int16, out [][]byte, outCol int)
	// ConvSampFunc loads the block at in[0..7][startCol:] and centers it on zero.
	ConvSampFunc func(in [][]byte, startCol int, ws *[dctSize2]int16)
	// QuantizeFunc quantizes the transformed block ws into coef.
	QuantizeFunc func(coef *[dctSize2]int16, div *Divisors, ws *[dctSize2]int16)
)

// Kernels is a dispatch table: one implementation per kernel, chosen for a Backend.
// A Kernels value is immutable after construction and safe for concurrent use.
type Kernels struct {
	Backend Backend

	RGBToYCC   ColorFunc
	RGBToGray  GrayFunc
	YCCToRGB   InverseColorFunc
	GrayToRGB  ExpandGrayFunc
	CMYKToYCCK func(width int, in [][]byte, out [4][][]byte, outRow, numRows int)
	YCCKToCMYK func(width int, in [4][][]byte, inRow int, out [][]byte, numRows int)

	FullsizeDownsample       DownsampleFunc
	H2V1Downsample           DownsampleFunc
	H2V2Downsample           DownsampleFunc
	FullsizeSmoothDownsample SmoothDownsampleFunc
	H2V2SmoothDownsample     SmoothDownsampleFunc

	FullsizeUpsample  UpsampleFunc
	H2V1Upsample      UpsampleFunc
	H2V2Upsample      UpsampleFunc
	H2V1FancyUpsample UpsampleFunc
	H2V2FancyUpsample UpsampleFunc
	H1V2FancyUpsample UpsampleFunc

	H2V1Merged MergedFunc
	H2V2Merged MergedFunc

	FDCTIslow FDCTFunc
	FDCTIfast FDCTFunc
	IDCTIslow IDCTFunc
	IDCTIfast IDCTFunc
	IDCT4x4   IDCTFunc
	IDCT2x2   IDCTFunc
	IDCT1x1   IDCTFunc

	ConvSamp ConvSampFunc
	Quantize QuantizeFunc
}

// NewKernels returns the kernel table for b. Every kernel starts out scalar; kernels with
// native code for the running CPU and a matching backend replace them. Backends without
// native code (NEON, AltiVec and RVV at present) therefore run the scalar kernels.
func NewKernels(b Backend) *Kernels {
	k := newScalarKernels(b)
	if !b.IsScalar() {
		bindNative(k)
	}

	return k
}

// NewLaneKernels returns the kernel table for b built on the portable lane-group kernels,
// which emulate the lane geometry of b in plain Go. They produce the same output as the
// scalar kernels for every width and serve as the reference for native code. Kernels without
// a lane-group form (CMYK, smoothing and the reduced IDCTs) are scalar.
func NewLaneKernels(b Backend) *Kernels {
	k := newScalarKernels(b)
	if b.IsScalar() {
		return k
	}

	k.RGBToYCC = b.rgbToYCC
	k.RGBToGray = b.rgbToGray
	k.YCCToRGB = b.yccToRGB
	k.GrayToRGB = b.grayToRGB

	k.H2V1Downsample = b.h2v1Downsample
	k.H2V2Downsample = b.h2v2Downsample

	k.H2V1Upsample = b.h2v1Upsample
	k.H2V2Upsample = b.h2v2Upsample
	k.H2V1FancyUpsample = b.h2v1FancyUpsample
	k.H2V2FancyUpsample = b.h2v2FancyUpsample
	k.H1V2FancyUpsample = b.h1v2FancyUpsample

	k.H2V1Merged = b.h2v1Merged
	k.H2V2Merged = b.h2v2Merged

	k.FDCTIslow = b.fdctIslow
	k.FDCTIfast = b.fdctIfast
	k.IDCTIslow = b.idctIslow
	k.IDCTIfast = b.idctIfast

	k.ConvSamp = b.convSamp
	k.Quantize = b.quantize

	return k
}

func newScalarKernels(b Backend) *Kernels {
	return &Kernels{
		Backend: b,

		RGBToYCC:   rgbToYCCScalar,
		RGBToGray:  rgbToGrayScalar,
		YCCToRGB:   yccToRGBScalar,
		GrayToRGB:  grayToRGBScalar,
		CMYKToYCCK: cmykToYCCK,
		YCCKToCMYK: ycckToCMYK,

		FullsizeDownsample:       fullsizeDownsample,
		H2V1Downsample:           h2v1DownsampleScalar,
		H2V2Downsample:           h2v2DownsampleScalar,
		FullsizeSmoothDownsample: fullsizeSmoothDownsample,
		H2V2SmoothDownsample:     h2v2SmoothDownsample,

		FullsizeUpsample:  fullsizeUpsample,
		H2V1Upsample:      h2v1UpsampleScalar,
		H2V2Upsample:      h2v2UpsampleScalar,
		H2V1FancyUpsample: h2v1FancyUpsampleScalar,
		H2V2FancyUpsample: h2v2FancyUpsampleScalar,
		H1V2FancyUpsample: h1v2FancyUpsampleScalar,

		H2V1Merged: h2v1MergedScalar,
		H2V2Merged: h2v2MergedScalar,

		FDCTIslow: fdctIslowScalar,
		FDCTIfast: fdctIfastScalar,
		IDCTIslow: idctIslowScalar,
		IDCTIfast: idctIfastScalar,
		IDCT4x4:   idct4x4,
		IDCT2x2:   idct2x2,
		IDCT1x1:   idct1x1,

		ConvSamp: convSampScalar,
		Quantize: quantizeScalar,
	}
}

var (
	defaultKernels *Kernels
	defaultOnce    sync.Once
)

// Default returns the kernel table for the backend selected by DetectSIMDSupport. It is
// built on first use; later changes to the forced capabilities do not affect it.
func Default() *Kernels {
	defaultOnce.Do(func() {
		defaultKernels = NewKernels(BackendFor(DetectSIMDSupport()))
	})

	return defaultKernels
}

// Downsampler returns the downsampler for a component whose samples cover hExpand x vExpand
// luma samples.
func (k *Kernels) Downsampler(hExpand, vExpand int) DownsampleFunc {
	switch {
	case hExpand == 1 && vExpand == 1:
		return k.FullsizeDownsample
	case hExpand == 2 && vExpand == 1:
		return k.H2V1Downsample
	case hExpand == 2 && vExpand == 2:
		return k.H2V2Downsample
	}

	return intDownsample(hExpand, vExpand)
}

// SmoothDownsampler returns the smoothing downsampler for hExpand x vExpand, or nil when
// only the plain downsampler exists for that layout.
func (k *Kernels) SmoothDownsampler(hExpand, vExpand int) SmoothDownsampleFunc {
	switch {
	case hExpand == 1 && vExpand == 1:
		return k.FullsizeSmoothDownsample
	case hExpand == 2 && vExpand == 2:
		return k.H2V2SmoothDownsample
	}

	return nil
}

// Upsampler returns the upsampler for hExpand x vExpand. Triangle filtering is used when
// fancy is set and the layout has a fancy kernel; the 2x1 and 2x2 triangle filters need more
// than two input columns, so narrower components get the box kernel.
func (k *Kernels) Upsampler(hExpand, vExpand int, fancy bool, downsampledWidth int) UpsampleFunc {
	switch {
	case hExpand == 1 && vExpand == 1:
		return k.FullsizeUpsample
	case hExpand == 2 && vExpand == 1:
		if fancy && downsampledWidth > 2 {
			return k.H2V1FancyUpsample
		}

		return k.H2V1Upsample
	case hExpand == 2 && vExpand == 2:
		if fancy && downsampledWidth > 2 {
			return k.H2V2FancyUpsample
		}

		return k.H2V2Upsample
	case hExpand == 1 && vExpand == 2:
		if fancy {
			return k.H1V2FancyUpsample
		}
	}

	return intUpsample(hExpand, vExpand)
}

// Merged returns the merged upsampler for a luma sampling of 2 x vSamp, or nil.
func (k *Kernels) Merged(hSamp, vSamp int) MergedFunc {
	switch {
	case hSamp == 2 && vSamp == 1:
		return k.H2V1Merged
	case hSamp == 2 && vSamp == 2:
		return k.H2V2Merged
	}

	return nil
}

// FDCT returns the forward DCT for m.
func (k *Kernels) FDCT(m DCTMethod) FDCTFunc {
	if m == IFast {
		return k.FDCTIfast
	}

	return k.FDCTIslow
}

// IDCT returns the full-size inverse DCT for m.
func (k *Kernels) IDCT(m DCTMethod) IDCTFunc {
	if m == IFast {
		return k.IDCTIfast
	}

	return k.IDCTIslow
}
