package geom

import (
	"errors"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/eda/stat"
)

// ErrNoData is returned when a plotter is constructed from no values.
var ErrNoData = errors.New("geom: no data")

// Box is a horizontal box and whisker glyph of one sample, drawn at a
// fixed position on the y axis.
type Box struct {
	stat.BoxPlotData

	// Y is the vertical position in data coordinates.
	Y float64

	// Width is the height of the box.
	Width vg.Length

	FillColor color.Color

	// LineStyle is used for the box outline and the whiskers.
	draw.LineStyle

	MedianStyle  draw.LineStyle
	OutlierStyle draw.GlyphStyle
}

var (
	_ plot.Plotter     = (*Box)(nil)
	_ plot.DataRanger  = (*Box)(nil)
	_ plot.GlyphBoxer  = (*Box)(nil)
	_ plot.Thumbnailer = (*Box)(nil)
)

// NewBox summarises data with whiskers reaching coef times the
// interquartile range.
func NewBox(data []float64, coef float64, y float64, width vg.Length) (*Box, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	line := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	return &Box{
		BoxPlotData:  stat.BoxPlot(data, coef),
		Y:            y,
		Width:        width,
		LineStyle:    line,
		MedianStyle:  line,
		OutlierStyle: draw.GlyphStyle{Color: color.Black, Radius: vg.Points(2), Shape: draw.RingGlyph{}},
	}, nil
}

// Plot implements the plot.Plotter interface.
func (b *Box) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	y := trY(b.Y)
	if !c.ContainsY(y) {
		return
	}
	half := b.Width / 2
	q1, median, q3 := trX(b.Q1), trX(b.Median), trX(b.Q3)
	low, high := trX(b.Low), trX(b.High)

	pts := []vg.Point{
		{X: q1, Y: y - half},
		{X: q3, Y: y - half},
		{X: q3, Y: y + half},
		{X: q1, Y: y + half},
		{X: q1, Y: y - half},
	}
	if b.FillColor != nil {
		c.FillPolygon(b.FillColor, c.ClipPolygonX(pts))
	}
	c.StrokeLines(b.LineStyle, c.ClipLinesX(pts)...)
	c.StrokeLines(b.MedianStyle, c.ClipLinesX([]vg.Point{{X: median, Y: y - half}, {X: median, Y: y + half}})...)

	whiskers := [][]vg.Point{
		{{X: low, Y: y}, {X: q1, Y: y}},
		{{X: q3, Y: y}, {X: high, Y: y}},
		{{X: low, Y: y - half/2}, {X: low, Y: y + half/2}},
		{{X: high, Y: y - half/2}, {X: high, Y: y + half/2}},
	}
	c.StrokeLines(b.LineStyle, c.ClipLinesX(whiskers...)...)

	for _, o := range b.Outliers {
		x := trX(o)
		if c.ContainsX(x) {
			c.DrawGlyphNoClip(b.OutlierStyle, vg.Point{X: x, Y: y})
		}
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *Box) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.Min, b.Max, b.Y, b.Y
}

// GlyphBoxes implements the plot.GlyphBoxer interface. It keeps the
// box ends and outliers off the edges of the data area.
func (b *Box) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	half := b.Width / 2
	r := b.OutlierStyle.Radius
	if r < b.LineStyle.Width {
		r = b.LineStyle.Width
	}
	box := vg.Rectangle{Min: vg.Point{X: -r, Y: -half}, Max: vg.Point{X: r, Y: half}}
	ys := plt.Y.Norm(b.Y)

	boxes := []plot.GlyphBox{
		{X: plt.X.Norm(b.Min), Y: ys, Rectangle: box},
		{X: plt.X.Norm(b.Max), Y: ys, Rectangle: box},
	}
	return boxes
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *Box) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Min.Y},
	}
	if b.FillColor != nil {
		c.FillPolygon(b.FillColor, c.ClipPolygonY(pts))
	}
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
