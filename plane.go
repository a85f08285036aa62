package jpegdsp

// Plane holds the samples of one component. Width and Height include any padding to whole
// blocks; callers track the number of real columns and rows separately.
type Plane struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// NewPlane allocates a zeroed width x height plane.
func NewPlane(width, height int) *Plane {
	return &Plane{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]byte, width*height),
	}
}

// Row returns row y, Width samples long.
func (p *Plane) Row(y int) []byte {
	off := y * p.Stride

	return p.Pix[off : off+p.Width : off+p.Width]
}

// Rows returns n consecutive rows starting at y.
func (p *Plane) Rows(y, n int) [][]byte {
	rows := make([][]byte, n)
	for i := range rows {
		rows[i] = p.Row(y + i)
	}

	return rows
}

// ContextRows returns rows [y-1, y+n] with row indices clamped to [0, last]. Kernels that
// filter vertically read the first and final entries as the rows above and below the group.
func (p *Plane) ContextRows(y, n, last int) [][]byte {
	rows := make([][]byte, n+2)
	for i := range rows {
		rows[i] = p.Row(max(0, min(y-1+i, last)))
	}

	return rows
}

// ReplicateBottom copies row valid-1 into every row below it, so that partial blocks and row
// groups at the bottom edge see the last real row.
func (p *Plane) ReplicateBottom(valid int) {
	if valid <= 0 || valid >= p.Height {
		return
	}

	src := p.Row(valid - 1)
	for y := valid; y < p.Height; y++ {
		copy(p.Row(y), src)
	}
}
