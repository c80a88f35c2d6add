package eda

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// String2Float parses s as a float clamped to [low, high]. A trailing %
// divides by 100. Unparsable input yields the midpoint of the range.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha returns c with its opacity replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*0xff + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray75":  {0xbf, 0xbf, 0xbf, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
	"k":       {0x00, 0x00, 0x00, 0xff},
}

// ParseColor understands "#rrggbb", "#rrggbbaa" and the names in
// BuiltinColors.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad color %q", ErrInvalidArgument, s)
		}
		c := color.NRGBA{A: 0xff}
		if len(s) == 9 {
			c.A = uint8(v)
			v >>= 8
		}
		c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
		return c, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidArgument, s)
}

// String2Color is ParseColor with a conspicuous fallback for bad input.
func String2Color(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
	}
	return c
}
