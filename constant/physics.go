package constant

// Ball physics, all in viewport units per tick
const (
	Gravity = 1
	Damping = 0.95
	Force   = 50

	// BallRadius is fixed for the ball's lifetime
	BallRadius = 50

	// BallStartLift places the starting center this far above the floor
	BallStartLift = 20
)

// Wrapping rectangle
const (
	RectWidth  = 200.0
	RectHeight = 200.0

	// RectStep is the displacement per arrow key-down
	RectStep = 10.0
)
