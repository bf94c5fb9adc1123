package gfx

import (
	"fmt"
	"strconv"

	"github.com/gogpu/gg"
)

// Color is an 8-bit RGB colour with a separate alpha in [0, 1].
// Tk canvases ignore alpha; callback hosts receive it.
type Color struct {
	R, G, B uint8
	A       float64
}

// Colour ids understood by SetColorID.
const (
	ColorBackground = 0
	ColorForeground = 1
)

// Common colours.
var (
	Black = Color{A: 1}
	White = Color{R: 255, G: 255, B: 255, A: 1}
)

// RGB returns an opaque colour. Components are clamped to [0, 255].
func RGB(r, g, b int) Color {
	return Color{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 1}
}

// RGBA returns a colour with alpha clamped to [0, 1].
func RGBA(r, g, b int, a float64) Color {
	c := RGB(r, g, b)
	c.A = min(max(a, 0), 1)
	return c
}

// ColorID returns the theme colour for a colour id: the foreground id is
// black, every other id is the white background.
func ColorID(id int) Color {
	if id == ColorForeground {
		return Black
	}
	return White
}

// Hex returns the colour as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA converts c to a gg colour.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, c.A)
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (Color, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("gfx: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("gfx: invalid colour %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
}

func clamp8(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
