package constant

import "time"

// Viewport dimensions in logical pixels, independent of terminal size
const (
	WindowWidth  = 800
	WindowHeight = 600
	// MaxWindowSide is the largest configurable viewport width or height
	MaxWindowSide = 4096
)

// Frame loop timing
const (
	// BallFrameDelay paces the bouncing ball loop (~100 FPS)
	BallFrameDelay = 10 * time.Millisecond

	// RectFrameDelay paces the wrapping rectangle loop
	RectFrameDelay = 1 * time.Millisecond
)

// Logging
const (
	LogDir = "logs"
)
