package eda

import (
	"image/color"
)

// Palette is an ordered list of colors. It satisfies gonum's
// palette.Palette interface.
type Palette []color.Color

// Colors returns the colors of p.
func (p Palette) Colors() []color.Color { return p }

// Stride returns every step'th color of p starting at start.
func (p Palette) Stride(start, step int) Palette {
	var s Palette
	for i := start; i < len(p); i += step {
		s = append(s, p[i])
	}
	return s
}

// Paired is the twelve color qualitative palette of light/dark pairs.
var Paired = Palette{
	String2Color("#a6cee3"), String2Color("#1f78b4"),
	String2Color("#b2df8a"), String2Color("#33a02c"),
	String2Color("#fb9a99"), String2Color("#e31a1c"),
	String2Color("#fdbf6f"), String2Color("#ff7f00"),
	String2Color("#cab2d6"), String2Color("#6a3d9a"),
	String2Color("#ffff99"), String2Color("#b15928"),
}

// DefaultPalette are the six dark shades of Paired, which are the most
// distinct from each other.
var DefaultPalette = Paired.Stride(1, 2)

// ParsePalette converts color names or hex codes to a palette.
func ParsePalette(names []string) (Palette, error) {
	p := make(Palette, 0, len(names))
	for _, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// PaletteCycle hands out the colors of a palette one after the other,
// starting again at the first color after the last one.
type PaletteCycle struct {
	palette Palette
	next    int
}

// NewPaletteCycle returns a cycle over p, or over DefaultPalette if p is empty.
func NewPaletteCycle(p Palette) *PaletteCycle {
	if len(p) == 0 {
		p = DefaultPalette
	}
	return &PaletteCycle{palette: p}
}

// Next returns the current color and advances the cycle.
func (c *PaletteCycle) Next() color.Color {
	col := c.palette[c.next]
	c.next = (c.next + 1) % len(c.palette)
	return col
}

// Reset restarts the cycle at the first color.
func (c *PaletteCycle) Reset() { c.next = 0 }

// Len is the number of distinct colors in the cycle.
func (c *PaletteCycle) Len() int { return len(c.palette) }

// Palette returns the underlying palette.
func (c *PaletteCycle) Palette() Palette { return c.palette }

// At returns the i'th color of the palette, wrapping around.
func (c *PaletteCycle) At(i int) color.Color {
	return c.palette[i%len(c.palette)]
}
