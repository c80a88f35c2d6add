package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Annotation is a text placed relative to the data area of a plot:
// (0,0) is the lower left and (1,1) the upper right corner, independent
// of the axis ranges.
type Annotation struct {
	X, Y float64
	Text string

	TextStyle text.Style
}

var _ plot.Plotter = (*Annotation)(nil)

// NewAnnotation returns a centered annotation in the default font.
func NewAnnotation(x, y float64, txt string) *Annotation {
	return &Annotation{
		X:    x,
		Y:    y,
		Text: txt,
		TextStyle: text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, vg.Points(10)),
			XAlign:  draw.XCenter,
			YAlign:  draw.YCenter,
			Handler: plot.DefaultTextHandler,
		},
	}
}

// Plot implements the plot.Plotter interface.
func (a *Annotation) Plot(c draw.Canvas, _ *plot.Plot) {
	pt := vg.Point{
		X: c.Min.X + vg.Length(a.X)*(c.Max.X-c.Min.X),
		Y: c.Min.Y + vg.Length(a.Y)*(c.Max.Y-c.Min.Y),
	}
	c.FillText(a.TextStyle, pt, a.Text)
}
