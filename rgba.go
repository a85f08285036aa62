package jpegdsp

import (
	"image"
	"image/color"
	"image/draw"
)

// pixRows returns n rows of rowLen bytes from an interleaved buffer, starting at row y.
func pixRows(pix []byte, stride, rowLen, y, n int) [][]byte {
	rows := make([][]byte, n)
	for i := range rows {
		off := (y + i) * stride
		rows[i] = pix[off : off+rowLen : off+rowLen]
	}

	return rows
}

// rgbaPixels returns the pixels of img as 4-byte R, G, B, A tuples with the origin at the
// bounds minimum. RGBA and NRGBA images are used in place; anything else is drawn into a
// new RGBA buffer.
func rgbaPixels(img image.Image) (pix []byte, stride int) {
	b := img.Bounds()

	switch m := img.(type) {
	case *image.RGBA:
		return m.Pix[m.PixOffset(b.Min.X, b.Min.Y):], m.Stride
	case *image.NRGBA:
		return m.Pix[m.PixOffset(b.Min.X, b.Min.Y):], m.Stride
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst.Pix, dst.Stride
}

// grayPixels returns the luma samples of a grayscale image, converting other gray models
// through image/draw.
func grayPixels(img image.Image) (pix []byte, stride int) {
	b := img.Bounds()
	if m, ok := img.(*image.Gray); ok {
		return m.Pix[m.PixOffset(b.Min.X, b.Min.Y):], m.Stride
	}

	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	return dst.Pix, dst.Stride
}

// isGray reports whether img carries a single luma channel.
func isGray(img image.Image) bool {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	}

	return false
}

// orient applies an EXIF orientation to an interleaved buffer of w x h pixels of bpp bytes
// and returns the new buffer and dimensions. Orientations 5-8 swap width and height.
func orient(src []byte, w, h, bpp, orientation int) (dst []byte, dw, dh int) {
	if orientation < 2 || orientation > 8 {
		return src, w, h
	}

	dw, dh = w, h
	if orientation >= 5 {
		dw, dh = h, w
	}

	dst = make([]byte, dw*dh*bpp)
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			var dx, dy int

			switch orientation {
			case 2: // Flip horizontal
				dx, dy = w-1-sx, sy
			case 3: // Rotate 180
				dx, dy = w-1-sx, h-1-sy
			case 4: // Flip vertical
				dx, dy = sx, h-1-sy
			case 5: // Transpose
				dx, dy = sy, sx
			case 6: // Rotate 90 CW
				dx, dy = h-1-sy, sx
			case 7: // Transverse
				dx, dy = h-1-sy, w-1-sx
			case 8: // Rotate 270 CW
				dx, dy = sy, w-1-sx
			}

			so := (sy*w + sx) * bpp
			do := (dy*dw + dx) * bpp
			copy(dst[do:do+bpp], src[so:so+bpp])
		}
	}

	return dst, dw, dh
}

// orientImage applies orientation to the packed images returned by Inverse.
func orientImage(img image.Image, orientation int) image.Image {
	if orientation < 2 || orientation > 8 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch m := img.(type) {
	case *image.RGBA:
		pix, dw, dh := orient(m.Pix, w, h, 4, orientation)
		return &image.RGBA{Pix: pix, Stride: dw * 4, Rect: image.Rect(0, 0, dw, dh)}
	case *image.Gray:
		pix, dw, dh := orient(m.Pix, w, h, 1, orientation)
		return &image.Gray{Pix: pix, Stride: dw, Rect: image.Rect(0, 0, dw, dh)}
	case *image.CMYK:
		pix, dw, dh := orient(m.Pix, w, h, 4, orientation)
		return &image.CMYK{Pix: pix, Stride: dw * 4, Rect: image.Rect(0, 0, dw, dh)}
	}

	return img
}
