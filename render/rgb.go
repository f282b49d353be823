package render

import "github.com/lixenwraith/motion-sandbox/config"

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
)

// FromConfig converts a configured triplet
func FromConfig(c config.RGB) RGB {
	return RGB{c[0], c[1], c[2]}
}
