package eda

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/stat"
)

// dist draws the density of a numeric column as histogram plus kernel
// density estimate, optionally one per level of a hue.
type dist struct{}

func (dist) Name() string { return "distplot" }

func (dist) Render(t Target, ax *Axes, f Frame, opts Options) error {
	hue, err := requireColumn(f, opts, OptHue)
	if err != nil {
		return err
	}
	if hue == t.Col {
		return fmt.Errorf("%w: hue %q equals the plotted column", ErrInvalidArgument, hue)
	}
	topN, err := opts.Int(OptTopN, DefaultTopN)
	if err != nil {
		return err
	}
	theme := ax.Theme()
	bins, err := opts.Int(OptBins, 0)
	if err != nil {
		return err
	}
	width := 0.0
	if s := opts.String(OptBinWidth); s != "" {
		if width, err = strconv.ParseFloat(s, 64); err != nil || !(width > 0) {
			return fmt.Errorf("%w: option %s=%q is not a positive number", ErrInvalidArgument, OptBinWidth, s)
		}
	}
	binOpts := &stat.BinOptions{Bins: bins, BinWidth: width}
	style := styled(opts, theme.DensityStyle)
	min, max, err := f.MinMax(t.Col)
	if err != nil {
		return err
	}
	missing, err := f.Missing(t.Col)
	if err != nil {
		return err
	}
	name := PrepareTitle(t.Col)

	grid := plotter.NewGrid()
	grid.Vertical = lineStyle(theme.GridStyle, BuiltinColors["gray75"])
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Horizontal = grid.Vertical
	ax.Plot.Add(grid)

	if hue == "" {
		values, err := f.Floats(t.Col)
		if err != nil {
			return err
		}
		if _, err := density(ax, values, binOpts, style, ax.NextColor(), theme.KDEStyle.Color("color", color.Black)); err != nil {
			return err
		}
		ax.SetTitle("%s", name)
	} else {
		levels, err := f.TopCategories(hue, topN)
		if err != nil {
			return err
		}
		groups, err := groupFloats(f, t.Col, hue, levels)
		if err != nil {
			return err
		}
		for j, values := range groups {
			c := ax.NextColor()
			if len(values) < 2 {
				ax.Warnf("distplot %s: skipping %s=%s with %d values", t.Col, hue, levels[j], len(values))
				continue
			}
			hist, err := density(ax, values, binOpts, style, c, c)
			if err != nil {
				return err
			}
			ax.Plot.Legend.Add(levels[j], hist)
		}
		ax.SetTitle("%s by %s - %d Missing", name, PrepareTitle(hue), missing)
	}

	if !math.IsNaN(min) {
		if min == max {
			min, max = min-0.5, max+0.5
		}
		ax.Plot.X.Min, ax.Plot.X.Max = min, max
	}
	ax.Plot.X.Label.Text = name
	ax.Plot.Y.Label.Text = "Density"
	return nil
}

// density adds the density histogram of values filled with fill and its
// kernel density estimate drawn in line to ax. The histogram is drawn
// in style.
func density(ax *Axes, values []float64, binOpts *stat.BinOptions, style Options, fill, line color.Color) (*plotter.Histogram, error) {
	theme := ax.Theme()
	bins := stat.Bin(values, binOpts)
	if len(bins) == 0 {
		return nil, nil
	}
	hist := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(bins)),
		Width:     bins[0].XMax - bins[0].XMin,
		FillColor: fillColor(style, fill),
		LineStyle: lineStyle(style, fill),
	}
	for i, b := range bins {
		hist.Bins[i] = plotter.HistogramBin{Min: b.XMin, Max: b.XMax, Weight: b.Density}
	}
	ax.Plot.Add(hist)

	bw := stat.ScottBandwidth(values)
	if bw == 0 {
		return hist, nil
	}
	lo, hi := bins[0].XMin-3*bw, bins[len(bins)-1].XMax+3*bw
	xs, ys := stat.Curve(stat.KDE(values, bw), lo, hi, theme.KDEPoints)
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}
	kde, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	kde.LineStyle = lineStyle(theme.KDEStyle, line)
	kde.LineStyle.Color = line
	ax.Plot.Add(kde)
	return hist, nil
}
