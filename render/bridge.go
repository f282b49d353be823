package render

import "github.com/gdamore/tcell/v2"

// Tcell returns c as a 24-bit tcell color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// rgbFromTcell reads a screen color back. ok is false for ColorDefault and
// any color without an RGB value, which never match a buffer pixel
func rgbFromTcell(c tcell.Color) (RGB, bool) {
	if c == tcell.ColorDefault {
		return RGB{}, false
	}
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return RGB{}, false
	}
	return RGB{uint8(r), uint8(g), uint8(b)}, true
}
