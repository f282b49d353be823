package wrap

// Direction is one of the four arrow-key displacements
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Move displaces r by step along d without clamping; classification handles
// anything pushed off-screen
func Move(r Rect, d Direction, step float64) Rect {
	switch d {
	case Up:
		r.Y -= step
	case Down:
		r.Y += step
	case Left:
		r.X -= step
	case Right:
		r.X += step
	}
	return r
}
