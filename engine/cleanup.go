package engine

import "strings"

// CleanupFlags records which resources a Context acquired and still owes a release for
type CleanupFlags uint8

const (
	CleanupScreen   CleanupFlags = 1 << iota // window: tcell screen initialized
	CleanupRenderer                          // presenter bound to the screen
	CleanupAudio                             // speaker subsystem opened
)

// Has reports whether every bit in f is set
func (c CleanupFlags) Has(f CleanupFlags) bool {
	return c&f == f
}

func (c CleanupFlags) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	if c.Has(CleanupScreen) {
		parts = append(parts, "screen")
	}
	if c.Has(CleanupRenderer) {
		parts = append(parts, "renderer")
	}
	if c.Has(CleanupAudio) {
		parts = append(parts, "audio")
	}
	return strings.Join(parts, "|")
}
