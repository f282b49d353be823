package render

import "github.com/lixenwraith/motion-sandbox/raster"

// Buffer is a logical-pixel framebuffer in viewport coordinates
// Writes outside the viewport are clipped
type Buffer struct {
	pix    []RGB
	width  int
	height int
}

var _ raster.SpanFiller[RGB] = (*Buffer)(nil)

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		pix:    make([]RGB, width*height),
		width:  width,
		height: height,
	}
}

// Bounds returns the viewport dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Clear fills every pixel with c using exponential copy
func (b *Buffer) Clear(c RGB) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0] = c
	for filled := 1; filled < len(b.pix); filled *= 2 {
		copy(b.pix[filled:], b.pix[:filled])
	}
}

// inBounds returns true if in viewport bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one pixel
func (b *Buffer) Set(x, y int, c RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.pix[y*b.width+x] = c
}

// At reads one pixel, black outside the viewport
func (b *Buffer) At(x, y int) RGB {
	if !b.inBounds(x, y) {
		return RGBBlack
	}
	return b.pix[y*b.width+x]
}

// FillSpan writes x0..x1 inclusive on row y, clipped to the viewport
func (b *Buffer) FillSpan(y, x0, x1 int, c RGB) {
	if y < 0 || y >= b.height {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x0 = max(x0, 0)
	x1 = min(x1, b.width-1)
	if x0 > x1 {
		return
	}
	row := b.pix[y*b.width : (y+1)*b.width]
	row[x0] = c
	for filled := 1; filled < x1-x0+1; filled *= 2 {
		copy(row[x0+filled:x1+1], row[x0:x0+filled])
	}
}

// Count returns how many pixels hold c
func (b *Buffer) Count(c RGB) int {
	n := 0
	for _, p := range b.pix {
		if p == c {
			n++
		}
	}
	return n
}
