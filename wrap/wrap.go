// Package wrap moves an axis-aligned rectangle on a toroidal viewport.
//
// Classification runs once per frame against the four viewport edges in a
// fixed order (left, right, top, bottom). Only the first matching edge is
// handled, so a rectangle straddling a corner wraps on one axis only.
package wrap

import "github.com/lixenwraith/motion-sandbox/config"

// Rect is an axis-aligned rectangle in viewport units
type Rect struct {
	X, Y float64
	W, H float64
}

// Centered returns a w x h rectangle centered in a vw x vh viewport
func Centered(w, h, vw, vh float64) Rect {
	return Rect{
		X: (vw - w) / 2,
		Y: (vh - h) / 2,
		W: w,
		H: h,
	}
}

// FromConfig returns the starting rectangle for loaded settings
func FromConfig(cfg *config.Config) Rect {
	return Centered(cfg.Rect.Width, cfg.Rect.Height, float64(cfg.Window.Width), float64(cfg.Window.Height))
}

// State is the rectangle's relation to the viewport edges for one frame
type State uint8

const (
	InBounds State = iota
	LeftPartial
	LeftFullyOut
	RightPartial
	RightFullyOut
	TopPartial
	TopFullyOut
	BottomPartial
	BottomFullyOut
)

var stateNames = [...]string{
	InBounds:       "IN_BOUNDS",
	LeftPartial:    "LEFT_PARTIAL",
	LeftFullyOut:   "LEFT_FULLY_OUT",
	RightPartial:   "RIGHT_PARTIAL",
	RightFullyOut:  "RIGHT_FULLY_OUT",
	TopPartial:     "TOP_PARTIAL",
	TopFullyOut:    "TOP_FULLY_OUT",
	BottomPartial:  "BOTTOM_PARTIAL",
	BottomFullyOut: "BOTTOM_FULLY_OUT",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "UNKNOWN"
}

// Partial reports whether the rectangle straddles an edge
func (s State) Partial() bool {
	switch s {
	case LeftPartial, RightPartial, TopPartial, BottomPartial:
		return true
	}
	return false
}

// FullyOut reports whether the rectangle has crossed entirely past an edge
func (s State) FullyOut() bool {
	switch s {
	case LeftFullyOut, RightFullyOut, TopFullyOut, BottomFullyOut:
		return true
	}
	return false
}

// Axis identifies which axis a state wraps on
type Axis uint8

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// Wraps returns the axis this state wraps on, AxisNone for InBounds
func (s State) Wraps() Axis {
	switch s {
	case LeftPartial, LeftFullyOut, RightPartial, RightFullyOut:
		return AxisX
	case TopPartial, TopFullyOut, BottomPartial, BottomFullyOut:
		return AxisY
	}
	return AxisNone
}

// Frame is the outcome of classifying one frame
type Frame struct {
	State State
	// Rect is the rectangle position after any teleport
	Rect Rect
	// Draws holds zero (fully out), one (in bounds) or two (partial) rectangles
	Draws []Rect
}

// Classify evaluates r against a vw x vh viewport
func Classify(r Rect, vw, vh float64) Frame {
	f := Frame{Rect: r}

	at := func(x, y float64) Rect {
		return Rect{X: x, Y: y, W: r.W, H: r.H}
	}

	switch {
	case r.X < 0:
		if r.X+r.W <= 0 {
			f.State = LeftFullyOut
			f.Rect.X += vw
		} else {
			f.State = LeftPartial
			f.Draws = []Rect{r, at(vw+r.X, r.Y)}
		}

	case r.X+r.W > vw:
		if r.X >= vw {
			f.State = RightFullyOut
			f.Rect.X -= vw
		} else {
			f.State = RightPartial
			f.Draws = []Rect{r, at(r.X-vw, r.Y)}
		}

	case r.Y <= 0:
		if r.Y+r.H <= 0 {
			f.State = TopFullyOut
			f.Rect.Y += vh
		} else {
			f.State = TopPartial
			f.Draws = []Rect{r, at(r.X, vh+r.Y)}
		}

	case r.Y+r.H > vh:
		if r.Y >= vh {
			f.State = BottomFullyOut
			f.Rect.Y -= vh
		} else {
			f.State = BottomPartial
			f.Draws = []Rect{r, at(r.X, r.Y-vh)}
		}

	default:
		f.State = InBounds
		f.Draws = []Rect{r}
	}

	return f
}
