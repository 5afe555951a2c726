package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color. The zero value means "terminal default":
// flushing a zero fg or bg leaves the terminal's own color in place.
type RGB struct {
	R, G, B uint8
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsDefault returns true for the zero value (terminal default color)
func (c RGB) IsDefault() bool {
	return c == RGB{}
}

// Blend interpolates between c and other in Luv space, t in [0,1].
// t=0 returns c, t=1 returns other.
func (c RGB) Blend(other RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	m := a.BlendLuv(b, t).Clamped()
	return RGB{
		R: uint8(m.R*255 + 0.5),
		G: uint8(m.G*255 + 0.5),
		B: uint8(m.B*255 + 0.5),
	}
}

// toTcell converts RGB to a tcell color, mapping the zero value
// to the terminal default
func (c RGB) toTcell() tcell.Color {
	if c.IsDefault() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
