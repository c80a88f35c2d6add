package eda

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/eda/geom"
	"github.com/vdobler/eda/stat"
)

// categorical draws count plots and box plots of the top categories.
type categorical struct{}

func (categorical) Name() string { return "categorical" }

func (categorical) Render(t Target, ax *Axes, f Frame, opts Options) error {
	topN, err := opts.Int(OptTopN, DefaultTopN)
	if err != nil {
		return err
	}
	hue, err := requireColumn(f, opts, OptHue)
	if err != nil {
		return err
	}
	missing, err := f.Missing(t.Col)
	if err != nil {
		return err
	}

	name := PrepareTitle(t.Col)
	var fill color.Color
	if hue != "" {
		ax.SetTitle("%s by %s - %d Missing", name, PrepareTitle(hue), missing)
	} else {
		fill = ax.NextColor()
		ax.SetTitle("%s - %d Missing", name, missing)
	}

	theme := ax.Theme()
	switch tag := opts.String(OptPlotType); tag {
	case CountPlot.String():
		err = countBars(t.Col, hue, topN, fill, styled(opts, theme.CountStyle), ax, f)
	case BoxPlot.String():
		err = boxes(t.Col, hue, topN, fill, styled(opts, theme.BoxStyle), ax, f)
	default:
		err = fmt.Errorf("%w: %q is not a categorical plot", ErrUnknownPlotType, tag)
	}
	if err != nil {
		return err
	}

	ax.Plot.Y.Label.Text = name
	ax.Plot.X.Label.Text = "Count"
	return nil
}

// countBars draws horizontal bars of the frequencies of the topN most
// frequent values of col, the most frequent on top. With a hue the bars
// of each of its topN levels are dodged around the category. A column
// without values leaves the cell empty.
func countBars(col, hue string, topN int, fill color.Color, style Options, ax *Axes, f Frame) error {
	top, err := f.TopCategories(col, topN)
	if err != nil {
		return err
	}
	n := len(top)
	if n == 0 {
		ax.Warnf("countplot %s: no values", col)
		return nil
	}
	pos := make(map[string]int, n)
	labels := make([]string, n)
	for i, c := range top {
		pos[c] = n - 1 - i
		labels[n-1-i] = c
	}

	edges := lineStyle(style, color.Black)

	if hue == "" {
		counts, err := f.ValueCounts(col)
		if err != nil {
			return err
		}
		values := make(plotter.Values, n)
		for _, vc := range counts {
			if i, ok := pos[vc.Value]; ok {
				values[i] = float64(vc.Count)
			}
		}
		bars, err := plotter.NewBarChart(values, slotWidth(ax, n, 0.6, true))
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.Color = fillColor(style, fill)
		bars.LineStyle = edges
		ax.Plot.Add(bars)
		ax.Plot.NominalY(labels...)
		return nil
	}

	levels, err := f.TopCategories(hue, topN)
	if err != nil {
		return err
	}
	if len(levels) == 0 {
		ax.Warnf("countplot %s: no values of %s", col, hue)
		return nil
	}
	colLabels, colNA, err := f.Labels(col)
	if err != nil {
		return err
	}
	hueLabels, hueNA, err := f.Labels(hue)
	if err != nil {
		return err
	}
	level := make(map[string]int, len(levels))
	values := make([]plotter.Values, len(levels))
	for j, l := range levels {
		level[l] = j
		values[j] = make(plotter.Values, n)
	}
	for i := range colLabels {
		if colNA[i] || hueNA[i] {
			continue
		}
		c, ok := pos[colLabels[i]]
		if !ok {
			continue
		}
		if j, ok := level[hueLabels[i]]; ok {
			values[j][c]++
		}
	}

	w := slotWidth(ax, n*len(levels), 0.6, true)
	for j, l := range levels {
		bars, err := plotter.NewBarChart(values[j], w)
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.Color = fillColor(style, ax.Palette().At(j))
		bars.LineStyle = edges
		// First level on top.
		bars.Offset = w * (vg.Length(len(levels)-1)/2 - vg.Length(j))
		ax.Plot.Add(bars)
		ax.Plot.Legend.Add(l, bars)
	}
	ax.Plot.NominalY(labels...)
	return nil
}

// boxes draws a horizontal box of the numeric column col. With a hue
// there is one box per topN level of hue, the most frequent on top.
func boxes(col, hue string, topN int, fill color.Color, style Options, ax *Axes, f Frame) error {
	theme := ax.Theme()

	var groups [][]float64
	var levels []string
	if hue == "" {
		values, err := f.Floats(col)
		if err != nil {
			return err
		}
		groups, levels = [][]float64{values}, []string{""}
	} else {
		var err error
		if levels, err = f.TopCategories(hue, topN); err != nil {
			return err
		}
		if len(levels) == 0 {
			ax.Warnf("boxplot %s: no values of %s", col, hue)
			return nil
		}
		if groups, err = groupFloats(f, col, hue, levels); err != nil {
			return err
		}
	}

	n := len(levels)
	w := slotWidth(ax, n, 0.4, true)
	labels := make([]string, n)
	for j, values := range groups {
		y := n - 1 - j
		labels[y] = levels[j]
		if len(values) == 0 {
			ax.Warnf("boxplot %s: no values for %s=%s", col, hue, levels[j])
			continue
		}
		box, err := geom.NewBox(values, stat.DefaultCoef, float64(y), w)
		if err != nil {
			return err
		}
		c := fill
		if hue != "" {
			c = ax.Palette().At(j)
		}
		box.FillColor = fillColor(style, c)
		box.LineStyle = lineStyle(style, color.Black)
		box.MedianStyle = box.LineStyle
		box.OutlierStyle.Color = theme.OutlierStyle.Color("color", color.Black)
		box.OutlierStyle.Radius = lineWidth(theme.OutlierStyle)
		ax.Plot.Add(box)
	}
	ax.Plot.NominalY(labels...)
	ax.Plot.Y.Min, ax.Plot.Y.Max = -0.5, float64(n)-0.5
	return nil
}
