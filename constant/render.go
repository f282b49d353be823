package constant

// Default palette as RGB triplets
var (
	BackgroundRGB = [3]uint8{0, 0, 0}
	ForegroundRGB = [3]uint8{109, 109, 109}
)

// HalfBlock renders two vertical pixels per terminal cell: fg is the top pixel, bg the bottom
const HalfBlock = '▀'
