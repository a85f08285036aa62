// Package jpegdsp implements the sample-domain core of a JPEG codec: color conversion,
// chroma down/upsampling, merged upsampling, forward and inverse DCTs and quantization.
//
// Every kernel has a scalar reference and a vector implementation written once against
// lane groups whose width is chosen by a Backend at run time. The vector kernels are
// bit-exact with the scalar ones for every backend. Default returns the kernel table for
// the running CPU; Forward and Inverse drive the kernels over whole images.
package jpegdsp

import (
	"errors"
	"fmt"
	"sync"
)

// Standard error types.
var (
	ErrUnsupported        = errors.New("unsupported format")
	ErrInvalidDimensions  = errors.New("invalid dimensions")
	ErrInvalidQuantTable  = errors.New("invalid quantization table")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
	ErrInternal           = errors.New("internal error")
	errUnsupportedScaling = fmt.Errorf("scale must be 1, 2, 4 or 8: %w", ErrUnsupported)
)

const (
	dctSize      = 8
	dctSize2     = 64
	maxSample    = 255
	centerSample = 128

	// maxDimension bounds image width and height, as in the JPEG frame header.
	maxDimension = 65500
)

// DCTMethod selects the forward/inverse DCT algorithm.
type DCTMethod int

const (
	// ISlow is the accurate integer DCT (Loeffler, Ligtenberg and Moschytz).
	ISlow DCTMethod = iota
	// IFast is the faster, less accurate integer DCT (Arai, Agui and Nakajima).
	IFast
)

// String implements fmt.Stringer.
func (m DCTMethod) String() string {
	switch m {
	case ISlow:
		return "islow"
	case IFast:
		return "ifast"
	}

	return "unknown"
}

// Subsampling defines the chroma sampling layout used by Forward.
type Subsampling int

const (
	// Subsample444 keeps chroma at full resolution.
	Subsample444 Subsampling = iota
	// Subsample422 halves chroma horizontally.
	Subsample422
	// Subsample420 halves chroma in both directions.
	Subsample420
	// Subsample440 halves chroma vertically.
	Subsample440
)

// factors returns the luma sampling factors; chroma is always 1x1.
func (s Subsampling) factors() (h, v int) {
	switch s {
	case Subsample422:
		return 2, 1
	case Subsample420:
		return 2, 2
	case Subsample440:
		return 1, 2
	}

	return 1, 1
}

// UpsampleMethod defines the algorithm used for chroma upsampling in Inverse.
type UpsampleMethod int

const (
	// FancyUpsample uses triangle filtering (the libjpeg default).
	FancyUpsample UpsampleMethod = iota
	// BoxUpsample replicates samples.
	BoxUpsample
	// MergedUpsample fuses box upsampling with color conversion for 2x1 and 2x2 layouts.
	// Other layouts fall back to BoxUpsample.
	MergedUpsample
)

// Options specifies Forward and Inverse parameters.
type Options struct {
	// Quality is the IJG quality setting in [1, 100]. Zero selects 75.
	Quality int
	// Subsampling is the chroma layout produced by Forward.
	Subsampling Subsampling
	// Grayscale makes Forward produce a single luma component from a color image.
	Grayscale bool
	// DCTMethod selects the DCT used by Forward. Inverse uses the method recorded
	// in the coefficients.
	DCTMethod DCTMethod
	// Smoothing enables the smoothing downsampler for 2x2 chroma, in [0, 100].
	Smoothing int
	// UpsampleMethod selects chroma upsampling in Inverse.
	UpsampleMethod UpsampleMethod
	// Scale is the IDCT scale denominator used by Inverse: 1, 2, 4 or 8. Zero selects 1.
	Scale int
	// ToRGBA makes Inverse return grayscale images as *image.RGBA.
	ToRGBA bool
	// Orientation is an EXIF orientation (1-8) applied to the output of Inverse.
	// Zero and 1 leave the image as is.
	Orientation int
	// Kernels overrides the kernel table. Nil selects Default().
	Kernels *Kernels
}

// defaultQuality is the IJG default.
const defaultQuality = 75

// options returns the effective options.
func options(opts []*Options) Options {
	o := Options{Quality: defaultQuality, Scale: 1}
	if len(opts) > 0 && opts[0] != nil {
		o = *opts[0]
	}

	if o.Quality == 0 {
		o.Quality = defaultQuality
	}

	if o.Scale == 0 {
		o.Scale = 1
	}

	if o.Kernels == nil {
		o.Kernels = Default()
	}

	return o
}

// blockPool reuses DCT workspaces across pipeline goroutines.
var blockPool = sync.Pool{
	New: func() interface{} {
		return new([dctSize2]int16)
	},
}

// rangeLimit clamps v to a sample.
func rangeLimit(v int32) byte {
	switch {
	case v < 0:
		return 0
	case v > maxSample:
		return maxSample
	}

	return byte(v)
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
