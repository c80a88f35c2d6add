package eda

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
)

// bar draws the mean of a numeric column per category of OptXVar.
type bar struct{}

func (bar) Name() string { return "bar" }

func (bar) Render(t Target, ax *Axes, f Frame, opts Options) error {
	xVar, err := requireColumn(f, opts, OptXVar)
	if err != nil {
		return err
	}
	if xVar == "" {
		return fmt.Errorf("%w: bar plot of %s needs option %s", ErrInvalidArgument, t.Col, OptXVar)
	}
	missing, err := f.Missing(t.Col)
	if err != nil {
		return err
	}
	cats, means, err := categoryMeans(f, t.Col, xVar)
	if err != nil {
		return err
	}

	ax.SetTitle("%s by %s - Missing %d", PrepareTitle(t.Col), PrepareTitle(xVar), missing)
	ax.Plot.X.Label.Text = xVar
	ax.Plot.Y.Label.Text = t.Col
	if len(cats) == 0 {
		ax.Warnf("bar %s: no values by %s", t.Col, xVar)
		return nil
	}

	style := styled(opts, ax.Theme().BarStyle)
	bars, err := plotter.NewBarChart(means, slotWidth(ax, len(cats), 0.6, false))
	if err != nil {
		return err
	}
	bars.Color = fillColor(style, ax.NextColor())
	bars.LineStyle = lineStyle(style, color.Black)
	ax.Plot.Add(bars)
	ax.Plot.NominalX(cats...)
	return nil
}

// categoryMeans averages the present values of col per present value of
// by. Categories are ordered by first appearance; categories without a
// value of col are dropped.
func categoryMeans(f Frame, col, by string) ([]string, plotter.Values, error) {
	values, err := f.FloatsNaN(col)
	if err != nil {
		return nil, nil, err
	}
	labels, na, err := f.Labels(by)
	if err != nil {
		return nil, nil, err
	}
	index := make(map[string]int)
	var cats []string
	var sums []float64
	var counts []int
	for i, v := range values {
		if na[i] || math.IsNaN(v) {
			continue
		}
		j, ok := index[labels[i]]
		if !ok {
			j = len(cats)
			index[labels[i]] = j
			cats = append(cats, labels[i])
			sums = append(sums, 0)
			counts = append(counts, 0)
		}
		sums[j] += v
		counts[j]++
	}
	means := make(plotter.Values, len(cats))
	for j := range cats {
		means[j] = sums[j] / float64(counts[j])
	}
	return cats, means, nil
}
