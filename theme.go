package eda

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Theme controls the look of the figures. Styles are Options with the
// keys "color", "fill", "alpha" and "size" (line width or glyph radius
// in points).
type Theme struct {
	TitleSize      vg.Length
	CloudTitleSize vg.Length

	// Pad is the space around and between the grid cells.
	Pad vg.Length

	CountStyle, BoxStyle, OutlierStyle Options
	DensityStyle, KDEStyle, GridStyle  Options
	BarStyle, PointStyle, TrendStyle   Options

	// KDEPoints is the number of points a density curve is sampled at.
	KDEPoints int

	CloudWidth, CloudHeight vg.Length
	CloudMaxWords           int
	CloudBackground         color.Color
	CloudColormap           string
}

var DefaultTheme = Theme{
	TitleSize:      vg.Points(12),
	CloudTitleSize: vg.Points(18),
	Pad:            vg.Points(10),
	CountStyle: Options{
		"alpha": "0.5",
		"color": "black",
		"size":  "1",
	},
	BoxStyle: Options{
		"alpha": "1",
		"color": "gray20",
		"size":  "1",
	},
	OutlierStyle: Options{
		"color": "gray20",
		"size":  "2",
	},
	DensityStyle: Options{
		"alpha": "0.4",
		"size":  "0.5",
	},
	KDEStyle: Options{
		"color": "black",
		"size":  "2",
	},
	GridStyle: Options{
		"color": "gray75",
		"size":  "1",
	},
	BarStyle: Options{
		"alpha": "0.8",
		"color": "gray20",
		"size":  "1",
	},
	PointStyle: Options{
		"alpha": "0.8",
		"size":  "2",
	},
	TrendStyle: Options{
		"size": "2",
	},
	KDEPoints:       200,
	CloudWidth:      800,
	CloudHeight:     500,
	CloudMaxWords:   100,
	CloudBackground: color.Black,
	CloudColormap:   "plasma",
}

// lineWidth reads the "size" of style s as a line width.
func lineWidth(s Options) vg.Length {
	return vg.Points(s.Float("size", 1, 0, 20))
}

// styleAlpha reads the "alpha" of style s.
func styleAlpha(s Options) float64 {
	return s.Float("alpha", 1, 0, 1)
}
