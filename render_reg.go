package eda

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/eda/geom"
	"github.com/vdobler/eda/stat"
)

// reg draws a scatter plot of a column pair with a polynomial trend line
// and the correlation coefficient.
type reg struct{}

func (reg) Name() string { return "regplot" }

func (reg) Render(t Target, ax *Axes, f Frame, opts Options) error {
	if !t.IsPair() {
		return fmt.Errorf("%w: regplot needs a column pair, got %s", ErrInvalidArgument, t)
	}
	order, err := opts.Int(OptPolyOrder, DefaultPolyOrder)
	if err != nil {
		return err
	}
	xs, err := f.FloatsNaN(t.Col)
	if err != nil {
		return err
	}
	ys, err := f.FloatsNaN(t.Y)
	if err != nil {
		return err
	}

	var pts plotter.XYs
	var x, y []float64
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		x, y = append(x, xs[i]), append(y, ys[i])
	}

	theme := ax.Theme()
	c := ax.NextColor()
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	points := styled(opts, theme.PointStyle)
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  fillColor(points, c),
		Radius: lineWidth(points),
		Shape:  draw.CircleGlyph{},
	}
	ax.Plot.Add(scatter)

	if coef, err := stat.PolyFit(x, y, order); err != nil {
		ax.Warnf("regplot %s: no trend line: %v", t, err)
	} else {
		lo, hi := x[0], x[0]
		for _, v := range x {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		xt, yt := stat.Curve(func(v float64) float64 { return stat.PolyEval(coef, v) }, lo, hi, theme.KDEPoints)
		trend := make(plotter.XYs, len(xt))
		for i := range xt {
			trend[i].X, trend[i].Y = xt[i], yt[i]
		}
		line, err := plotter.NewLine(trend)
		if err != nil {
			return err
		}
		line.LineStyle = lineStyle(theme.TrendStyle, c)
		line.LineStyle.Color = c
		ax.Plot.Add(line)
	}

	ax.SetTitle("%s and %s", t.Col, t.Y)
	ax.Plot.Add(geom.NewAnnotation(0.18, 0.93, fmt.Sprintf("Cor Coef: %.2f", t.Coef)))
	ax.Plot.X.Label.Text = t.Col
	ax.Plot.Y.Label.Text = t.Y
	return nil
}
