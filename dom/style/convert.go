package style

import (
	"fmt"
	"image/color"
)

// ColorString returns a short textual form of a color, used for debugging.
// Well-known colors are returned by name, all others in hex notation.
func ColorString(c color.RGBA) string {
	switch c {
	case color.RGBA{0xff, 0xff, 0xff, 0xff}:
		return "white"
	case color.RGBA{0, 0, 0, 0xff}:
		return "black"
	case color.RGBA{0xff, 0, 0, 0xff}:
		return "red"
	case color.RGBA{0, 0xff, 0, 0xff}:
		return "green"
	case color.RGBA{0, 0, 0xff, 0xff}:
		return "blue"
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
