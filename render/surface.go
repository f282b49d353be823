package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/motion-sandbox/constant"
)

// ErrScreenTooSmall is returned when the screen has no drawable cells
var ErrScreenTooSmall = errors.New("screen too small")

// Surface presents a Buffer on a tcell screen, scaling the logical viewport
// to the current terminal size at two vertical pixels per cell
type Surface struct {
	screen tcell.Screen
}

// NewSurface binds a presenter to an initialized screen
func NewSurface(screen tcell.Screen) (*Surface, error) {
	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return nil, ErrScreenTooSmall
	}
	return &Surface{screen: screen}, nil
}

// SamplePoint maps the center of sub-pixel (col, row) of a cols x rows grid to
// a pixel in a vw x vh viewport
func SamplePoint(col, row, cols, rows, vw, vh int) (int, int) {
	x := (2*col + 1) * vw / (2 * cols)
	y := (2*row + 1) * vh / (2 * rows)
	return x, y
}

// Present samples b onto every cell and shows the result. Cells that already
// hold the sampled colors are left alone; the return value counts rewritten cells
func (s *Surface) Present(b *Buffer) int {
	cols, cellRows := s.screen.Size()
	if cols <= 0 || cellRows <= 0 {
		return 0
	}
	rows := cellRows * 2
	vw, vh := b.Bounds()

	written := 0
	for cy := 0; cy < cellRows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := b.At(SamplePoint(cx, 2*cy, cols, rows, vw, vh))
			bottom := b.At(SamplePoint(cx, 2*cy+1, cols, rows, vw, vh))
			if s.cellShows(cx, cy, top, bottom) {
				continue
			}
			style := tcell.StyleDefault.
				Foreground(top.Tcell()).
				Background(bottom.Tcell())
			s.screen.SetContent(cx, cy, constant.HalfBlock, nil, style)
			written++
		}
	}
	s.screen.Show()
	return written
}

// cellShows reports whether cell (x, y) already holds a half block in the given colors
func (s *Surface) cellShows(x, y int, top, bottom RGB) bool {
	r, _, style, _ := s.screen.GetContent(x, y)
	if r != constant.HalfBlock {
		return false
	}
	fg, bg, _ := style.Decompose()
	shownTop, ok := rgbFromTcell(fg)
	if !ok || shownTop != top {
		return false
	}
	shownBottom, ok := rgbFromTcell(bg)
	return ok && shownBottom == bottom
}

// Sync repaints the whole screen after a resize
func (s *Surface) Sync() {
	s.screen.Sync()
}

// Release blanks the screen; the screen itself is finalized by its owner
func (s *Surface) Release() {
	s.screen.Clear()
	s.screen.Show()
}
