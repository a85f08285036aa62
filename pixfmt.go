package jpegdsp

// PixelFormat describes the byte layout of one interleaved pixel.
// Alpha is -1 for three-byte formats. Bytes that are neither a color nor alpha
// (the X in RGBX) are written as 0xFF, the same as alpha.
type PixelFormat struct {
	Name  string
	Red   int
	Green int
	Blue  int
	Alpha int
	Size  int
}

// Supported pixel formats.
var (
	RGB  = PixelFormat{Name: "RGB", Red: 0, Green: 1, Blue: 2, Alpha: -1, Size: 3}
	BGR  = PixelFormat{Name: "BGR", Red: 2, Green: 1, Blue: 0, Alpha: -1, Size: 3}
	RGBX = PixelFormat{Name: "RGBX", Red: 0, Green: 1, Blue: 2, Alpha: -1, Size: 4}
	BGRX = PixelFormat{Name: "BGRX", Red: 2, Green: 1, Blue: 0, Alpha: -1, Size: 4}
	XBGR = PixelFormat{Name: "XBGR", Red: 3, Green: 2, Blue: 1, Alpha: -1, Size: 4}
	XRGB = PixelFormat{Name: "XRGB", Red: 1, Green: 2, Blue: 3, Alpha: -1, Size: 4}
	RGBA = PixelFormat{Name: "RGBA", Red: 0, Green: 1, Blue: 2, Alpha: 3, Size: 4}
	BGRA = PixelFormat{Name: "BGRA", Red: 2, Green: 1, Blue: 0, Alpha: 3, Size: 4}
	ABGR = PixelFormat{Name: "ABGR", Red: 3, Green: 2, Blue: 1, Alpha: 0, Size: 4}
	ARGB = PixelFormat{Name: "ARGB", Red: 1, Green: 2, Blue: 3, Alpha: 0, Size: 4}
)

// PixelFormats lists every supported format, in a stable order.
var PixelFormats = []PixelFormat{RGB, RGBX, BGR, BGRX, XBGR, XRGB, RGBA, BGRA, ABGR, ARGB}

// String implements fmt.Stringer.
func (pf PixelFormat) String() string {
	return pf.Name
}

// filler returns the offset of the byte that is not a color channel, or -1.
func (pf PixelFormat) filler() int {
	if pf.Size < 4 {
		return -1
	}

	return 6 - pf.Red - pf.Green - pf.Blue
}

// putFiller writes 0xFF into the alpha or padding byte of the pixel at p, if any.
func (pf PixelFormat) putFiller(p []byte) {
	if f := pf.filler(); f >= 0 {
		p[f] = maxSample
	}
}
