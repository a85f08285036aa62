package jpegdsp

import (
	"fmt"
	"image"
	"sync"
)

// ColorSpace is the color space of the components in Coefficients.
type ColorSpace int

const (
	// ColorGray is a single luma component.
	ColorGray ColorSpace = iota
	// ColorYCbCr is luma and two chroma components.
	ColorYCbCr
	// ColorYCCK is YCbCr plus an untransformed black component, used for CMYK images.
	ColorYCCK
)

// components returns the number of components in the color space, or 0 if it is unknown.
func (cs ColorSpace) components() int {
	switch cs {
	case ColorGray:
		return 1
	case ColorYCbCr:
		return 3
	case ColorYCCK:
		return 4
	}

	return 0
}

// Component is the quantized DCT data of one image component.
type Component struct {
	// H and V are the sampling factors. Luma (and K) carry the largest factors.
	H, V int
	// BlocksWide and BlocksHigh give the block grid, padded to whole MCUs.
	BlocksWide, BlocksHigh int
	// QuantIndex selects the table in Coefficients.Quant.
	QuantIndex int
	// Blocks holds BlocksWide*BlocksHigh blocks in raster order, coefficients in natural order.
	Blocks [][dctSize2]int16
}

// Coefficients is an image in the quantized DCT domain: what an entropy coder would write
// and read.
type Coefficients struct {
	Width      int
	Height     int
	Method     DCTMethod
	ColorSpace ColorSpace
	Quant      []QuantTable
	Components []Component
}

// maxSampling returns the largest horizontal and vertical sampling factors.
func (c *Coefficients) maxSampling() (hMax, vMax int) {
	for _, cp := range c.Components {
		hMax = max(hMax, cp.H)
		vMax = max(vMax, cp.V)
	}

	return hMax, vMax
}

// Validate checks that c is consistent enough for Inverse.
func (c *Coefficients) Validate() error {
	if c == nil {
		return fmt.Errorf("nil coefficients: %w", ErrInvalidDimensions)
	}

	if err := checkDimensions(c.Width, c.Height); err != nil {
		return err
	}

	if n := c.ColorSpace.components(); n == 0 || n != len(c.Components) {
		return fmt.Errorf("color space %d with %d components: %w", c.ColorSpace, len(c.Components), ErrUnsupported)
	}

	if c.Method != ISlow && c.Method != IFast {
		return fmt.Errorf("dct method %d: %w", c.Method, ErrUnsupported)
	}

	for i := range c.Quant {
		if err := c.Quant[i].Validate(); err != nil {
			return fmt.Errorf("table %d: %w", i, err)
		}
	}

	hMax, vMax := c.maxSampling()
	for i, cp := range c.Components {
		if cp.H < 1 || cp.H > 4 || cp.V < 1 || cp.V > 4 || hMax%cp.H != 0 || vMax%cp.V != 0 {
			return fmt.Errorf("component %d sampling %dx%d: %w", i, cp.H, cp.V, ErrUnsupported)
		}

		if cp.QuantIndex < 0 || cp.QuantIndex >= len(c.Quant) {
			return fmt.Errorf("component %d quant table %d: %w", i, cp.QuantIndex, ErrInvalidQuantTable)
		}

		minWide := ceilDiv(ceilDiv(c.Width*cp.H, hMax), dctSize)
		minHigh := ceilDiv(ceilDiv(c.Height*cp.V, vMax), dctSize)
		if cp.BlocksWide < minWide || cp.BlocksHigh < minHigh || len(cp.Blocks) != cp.BlocksWide*cp.BlocksHigh {
			return fmt.Errorf("component %d has %dx%d blocks (%d stored): %w",
				i, cp.BlocksWide, cp.BlocksHigh, len(cp.Blocks), ErrInvalidDimensions)
		}
	}

	return nil
}

// checkDimensions validates image dimensions.
func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 || w > maxDimension || h > maxDimension {
		return fmt.Errorf("%dx%d: %w", w, h, ErrInvalidDimensions)
	}

	return nil
}

// Forward converts img to quantized DCT coefficients, running the compression half of the
// kernels: color conversion, edge expansion, downsampling, sample conversion, forward DCT and
// quantization. Grayscale images produce one component, CMYK images four (YCCK) and
// everything else three (YCbCr).
func Forward(img image.Image, opts ...*Options) (*Coefficients, error) {
	o := options(opts)

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}

	if o.Smoothing < 0 || o.Smoothing > 100 {
		return nil, fmt.Errorf("smoothing %d: %w", o.Smoothing, ErrUnsupported)
	}

	cs := ColorYCbCr
	switch {
	case isGray(img) || o.Grayscale:
		cs = ColorGray
	case isCMYK(img):
		cs = ColorYCCK
	}

	hMax, vMax := o.Subsampling.factors()
	if cs == ColorGray {
		hMax, vMax = 1, 1
	}

	mcusX, mcusY := ceilDiv(w, dctSize*hMax), ceilDiv(h, dctSize*vMax)

	c := &Coefficients{
		Width:      w,
		Height:     h,
		Method:     o.DCTMethod,
		ColorSpace: cs,
		Components: make([]Component, cs.components()),
	}

	scale := QualityScaling(o.Quality)
	c.Quant = append(c.Quant, StandardLuminance.Scaled(scale, true))
	if cs != ColorGray {
		c.Quant = append(c.Quant, StandardChrominance.Scaled(scale, true))
	}

	divisors := make([]*Divisors, len(c.Quant))
	for i := range c.Quant {
		d, err := NewDivisors(&c.Quant[i], o.DCTMethod)
		if err != nil {
			return nil, err
		}

		divisors[i] = d
	}

	// Full-resolution planes, padded to whole MCUs.
	planes := make([]*Plane, len(c.Components))
	for i := range planes {
		planes[i] = NewPlane(mcusX*dctSize*hMax, mcusY*dctSize*vMax)
	}

	convertIn(o.Kernels, img, cs, planes, w, h)

	var wg sync.WaitGroup
	for i := range c.Components {
		cp := &c.Components[i]
		cp.H, cp.V = hMax, vMax
		if i == 1 || i == 2 {
			cp.H, cp.V, cp.QuantIndex = 1, 1, 1
		}

		cp.BlocksWide, cp.BlocksHigh = mcusX*cp.H, mcusY*cp.V
		cp.Blocks = make([][dctSize2]int16, cp.BlocksWide*cp.BlocksHigh)

		wg.Add(1)
		go func(full *Plane, div *Divisors) {
			defer wg.Done()
			forwardComponent(&o, cp, full, w, hMax, vMax, div)
		}(planes[i], divisors[cp.QuantIndex])
	}

	wg.Wait()

	return c, nil
}

// isCMYK reports whether img stores CMYK samples.
func isCMYK(img image.Image) bool {
	_, ok := img.(*image.CMYK)

	return ok
}

// convertIn fills the first h rows of the full-resolution planes from img and replicates the
// last row into the padding below.
func convertIn(k *Kernels, img image.Image, cs ColorSpace, planes []*Plane, w, h int) {
	switch {
	case cs == ColorGray && isGray(img):
		pix, stride := grayPixels(img)
		for y := 0; y < h; y++ {
			copy(planes[0].Row(y), pix[y*stride:y*stride+w])
		}
	case cs == ColorGray:
		pix, stride := rgbaPixels(img)
		k.RGBToGray(RGBA, w, pixRows(pix, stride, w*4, 0, h), planes[0].Rows(0, h), 0, h)
	case cs == ColorYCCK:
		m := img.(*image.CMYK)
		pix := m.Pix[m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y):]
		out := [4][][]byte{planes[0].Rows(0, h), planes[1].Rows(0, h), planes[2].Rows(0, h), planes[3].Rows(0, h)}
		k.CMYKToYCCK(w, pixRows(pix, m.Stride, w*4, 0, h), out, 0, h)
	default:
		pix, stride := rgbaPixels(img)
		out := [3][][]byte{planes[0].Rows(0, h), planes[1].Rows(0, h), planes[2].Rows(0, h)}
		k.RGBToYCC(RGBA, w, pixRows(pix, stride, w*4, 0, h), out, 0, h)
	}

	for _, p := range planes {
		p.ReplicateBottom(h)
	}
}

// forwardComponent downsamples one full-resolution plane and transforms and quantizes its
// blocks into cp.
func forwardComponent(o *Options, cp *Component, full *Plane, imageWidth, hMax, vMax int, div *Divisors) {
	k := o.Kernels
	hExpand, vExpand := hMax/cp.H, vMax/cp.V

	var smooth SmoothDownsampleFunc
	if o.Smoothing > 0 {
		smooth = k.SmoothDownsampler(hExpand, vExpand)
	}

	downsample := k.Downsampler(hExpand, vExpand)
	plane := NewPlane(cp.BlocksWide*dctSize, cp.BlocksHigh*dctSize)

	for g := 0; g < full.Height/vMax; g++ {
		out := plane.Rows(g*cp.V, cp.V)
		if smooth != nil {
			in := full.ContextRows(g*vMax, vMax, full.Height-1)
			smooth(o.Smoothing, imageWidth, vMax, cp.V, cp.BlocksWide, in, out)
		} else {
			downsample(imageWidth, vMax, cp.V, cp.BlocksWide, full.Rows(g*vMax, vMax), out)
		}
	}

	fdct := k.FDCT(o.DCTMethod)
	ws := blockPool.Get().(*[dctSize2]int16)
	defer blockPool.Put(ws)

	for by := 0; by < cp.BlocksHigh; by++ {
		rows := plane.Rows(by*dctSize, dctSize)
		for bx := 0; bx < cp.BlocksWide; bx++ {
			k.ConvSamp(rows, bx*dctSize, ws)
			fdct(ws)
			k.Quantize(&cp.Blocks[by*cp.BlocksWide+bx], div, ws)
		}
	}
}

// Inverse reconstructs an image from c, running the decompression half of the kernels:
// inverse DCT (optionally scaled), chroma upsampling or merged upsampling, and color
// conversion. It returns *image.Gray, *image.RGBA or *image.CMYK depending on the color
// space and options.
func Inverse(c *Coefficients, opts ...*Options) (image.Image, error) {
	o := options(opts)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	k := o.Kernels
	idct, err := k.IDCTScaled(c.Method, o.Scale)
	if err != nil {
		return nil, err
	}

	multMethod := c.Method
	if o.Scale != 1 {
		multMethod = ISlow
	}

	mults := make([]*[dctSize2]int16, len(c.Quant))
	for i := range c.Quant {
		m, err := NewMultipliers(&c.Quant[i], multMethod)
		if err != nil {
			return nil, err
		}

		mults[i] = m
	}

	size := dctSize / o.Scale
	planes := make([]*Plane, len(c.Components))

	var wg sync.WaitGroup
	for i := range c.Components {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cp := &c.Components[i]
			planes[i] = inverseComponent(idct, mults[cp.QuantIndex], cp, size)
		}(i)
	}

	wg.Wait()

	outW, outH := ceilDiv(c.Width, o.Scale), ceilDiv(c.Height, o.Scale)

	var img image.Image
	switch c.ColorSpace {
	case ColorGray:
		img = grayOut(k, planes[0], outW, outH, o.ToRGBA)
	case ColorYCbCr, ColorYCCK:
		img = colorOut(&o, c, planes, outW, outH)
	default:
		return nil, ErrInternal
	}

	return orientImage(img, o.Orientation), nil
}

// inverseComponent decodes every block of cp into a plane of size x size pixels per block.
func inverseComponent(idct IDCTFunc, mult *[dctSize2]int16, cp *Component, size int) *Plane {
	plane := NewPlane(cp.BlocksWide*size, cp.BlocksHigh*size)

	for by := 0; by < cp.BlocksHigh; by++ {
		rows := plane.Rows(by*size, size)
		for bx := 0; bx < cp.BlocksWide; bx++ {
			idct(mult, &cp.Blocks[by*cp.BlocksWide+bx], rows, bx*size)
		}
	}

	return plane
}

// grayOut packs a luma plane into an image.
func grayOut(k *Kernels, p *Plane, w, h int, toRGBA bool) image.Image {
	if toRGBA {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		k.GrayToRGB(RGBA, w, p.Rows(0, h), 0, pixRows(dst.Pix, dst.Stride, w*4, 0, h), h)

		return dst
	}

	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], p.Row(y))
	}

	return dst
}

// colorOut upsamples and converts YCbCr or YCCK planes row group by row group.
func colorOut(o *Options, c *Coefficients, planes []*Plane, outW, outH int) image.Image {
	k := o.Kernels
	hMax, vMax := c.maxSampling()
	groups := ceilDiv(outH, vMax)

	// Downsampled rows of each component with one replicated context row above and below.
	ctx := make([][][]byte, len(planes))
	widths := make([]int, len(planes))
	for i, cp := range c.Components {
		dh := ceilDiv(c.Height*cp.V, vMax*o.Scale)
		widths[i] = ceilDiv(c.Width*cp.H, hMax*o.Scale)

		rows := make([][]byte, groups*cp.V+2)
		for j := range rows {
			rows[j] = planes[i].Row(max(0, min(j-1, dh-1)))
		}

		ctx[i] = rows
	}

	var (
		pix    []byte
		stride int
		img    image.Image
	)

	rect := image.Rect(0, 0, outW, outH)
	if c.ColorSpace == ColorYCCK {
		m := image.NewCMYK(rect)
		pix, stride, img = m.Pix, m.Stride, m
	} else {
		m := image.NewRGBA(rect)
		pix, stride, img = m.Pix, m.Stride, m
	}

	scratch := make([][]byte, vMax)
	for i := range scratch {
		scratch[i] = make([]byte, outW*4)
	}

	// outRows returns the output rows of group g, with scratch rows past the bottom edge.
	outRows := func(g int) [][]byte {
		rows := make([][]byte, vMax)
		for i := range rows {
			if y := g*vMax + i; y < outH {
				rows[i] = pix[y*stride : y*stride+outW*4]
			} else {
				rows[i] = scratch[i]
			}
		}

		return rows
	}

	if o.UpsampleMethod == MergedUpsample && c.ColorSpace == ColorYCbCr && mergedOut(k, c, ctx, outW, groups, outRows) {
		return img
	}

	ups := make([]UpsampleFunc, len(planes))
	full := make([][][]byte, len(planes))
	for i, cp := range c.Components {
		ups[i] = k.Upsampler(hMax/cp.H, vMax/cp.V, o.UpsampleMethod == FancyUpsample, widths[i])
		full[i] = NewPlane(outW, vMax).Rows(0, vMax)
	}

	for g := 0; g < groups; g++ {
		for i, cp := range c.Components {
			ups[i](vMax, widths[i], outW, ctx[i], 1+g*cp.V, full[i])
		}

		n := min(vMax, outH-g*vMax)
		out := outRows(g)

		if c.ColorSpace == ColorYCCK {
			k.YCCKToCMYK(outW, [4][][]byte{full[0], full[1], full[2], full[3]}, 0, out, n)
		} else {
			k.YCCToRGB(RGBA, outW, [3][][]byte{full[0], full[1], full[2]}, 0, out, n)
		}
	}

	return img
}

// mergedOut converts with the merged upsampler when luma is 2x1 or 2x2 and chroma is 1x1.
// It reports false, writing nothing, for other layouts.
func mergedOut(k *Kernels, c *Coefficients, ctx [][][]byte, outW, groups int, outRows func(int) [][]byte) bool {
	y, cb, cr := c.Components[0], c.Components[1], c.Components[2]
	if cb.H != 1 || cb.V != 1 || cr.H != 1 || cr.V != 1 {
		return false
	}

	merged := k.Merged(y.H, y.V)
	if merged == nil {
		return false
	}

	in := [3][][]byte{ctx[0][1:], ctx[1][1:], ctx[2][1:]}
	for g := 0; g < groups; g++ {
		merged(RGBA, outW, in, g, outRows(g))
	}

	return true
}
