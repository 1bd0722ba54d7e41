package terminal

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
// The zero value renders as the terminal's default color
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsZero returns true for the default-color sentinel
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseHex parses #rrggbb or #rgb
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return fromColorful(c), nil
}

// Blend mixes a toward b in Lab space, t in [0,1]
func Blend(a, b RGB, t float64) RGB {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return fromColorful(a.colorful().BlendLab(b.colorful(), t))
}

// Dim darkens the color by factor in [0,1], 0 leaves it unchanged
func Dim(c RGB, factor float64) RGB {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s, l*(1-factor)))
}
