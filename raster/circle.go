// Package raster converts shapes into horizontal pixel spans.
package raster

import "math"

// Span is a horizontal run of pixels on row Y covering X0..X1 inclusive
type Span struct {
	Y      int
	X0, X1 int
}

// Len returns the pixel count of the span
func (s Span) Len() int {
	return s.X1 - s.X0 + 1
}

// SpanFiller receives spans in a single color
type SpanFiller[C any] interface {
	FillSpan(y, x0, x1 int, c C)
}

// Circle enumerates a filled disk with the midpoint algorithm. Each step emits
// four chords mirrored about both axes and the diagonal, so the union is the
// full disk rather than its outline. Negative radius emits nothing
func Circle(cx, cy, r int, emit func(Span)) {
	if r < 0 {
		return
	}

	x := 0
	y := r
	p := 1 - r // decision parameter

	for x <= y {
		emit(Span{Y: cy + y, X0: cx - x, X1: cx + x})
		emit(Span{Y: cy - y, X0: cx - x, X1: cx + x})
		emit(Span{Y: cy + x, X0: cx - y, X1: cx + y})
		emit(Span{Y: cy - x, X0: cx - y, X1: cx + y})

		if p < 0 {
			p += 2*x + 1
		} else {
			p += 2*(x-y) + 1
			y--
		}
		x++
	}
}

// FillCircle rasterizes a filled disk into dst
func FillCircle[C any](dst SpanFiller[C], cx, cy, r int, c C) {
	Circle(cx, cy, r, func(s Span) {
		dst.FillSpan(s.Y, s.X0, s.X1, c)
	})
}

// Rect enumerates the pixel rows touched by a float rectangle, covering
// columns floor(x)..ceil(x+w)-1 and rows floor(y)..ceil(y+h)-1
func Rect(x, y, w, h float64, emit func(Span)) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x))
	x1 := int(math.Ceil(x+w)) - 1
	y0 := int(math.Floor(y))
	y1 := int(math.Ceil(y+h)) - 1

	for row := y0; row <= y1; row++ {
		emit(Span{Y: row, X0: x0, X1: x1})
	}
}

// FillRect rasterizes a float rectangle into dst
func FillRect[C any](dst SpanFiller[C], x, y, w, h float64, c C) {
	Rect(x, y, w, h, func(s Span) {
		dst.FillSpan(s.Y, s.X0, s.X1, c)
	})
}
