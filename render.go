package eda

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// -------------------------------------------------------------------------
// Helpers shared by the renderers

// lineStyle builds a line style from the "color" and "size" of s.
func lineStyle(s Options, def color.Color) draw.LineStyle {
	return draw.LineStyle{
		Color: s.Color("color", def),
		Width: lineWidth(s),
	}
}

// fillColor is c with the "alpha" of style s.
func fillColor(s Options, c color.Color) color.Color {
	return SetAlpha(c, styleAlpha(s))
}

// slotWidth is the extent available to one of n slots along the
// category axis of ax, times the fraction frac.
func slotWidth(ax *Axes, n int, frac float64, horizontal bool) vg.Length {
	extent := ax.Size.Width
	if horizontal {
		extent = ax.Size.Height
	}
	if extent == 0 {
		extent = CellWidth
		if horizontal {
			extent = CellHeight
		}
	}
	if n < 1 {
		n = 1
	}
	return extent * vg.Length(frac) / vg.Length(n)
}

// requireColumn checks that an optional column name given in opts
// exists in f.
func requireColumn(f Frame, opts Options, key string) (string, error) {
	name := opts.String(key)
	if name == "" {
		return "", nil
	}
	if !f.Has(name) {
		return "", fmt.Errorf("%w: %s column %q not found", ErrInvalidArgument, key, name)
	}
	return name, nil
}

// groupFloats splits the present values of the numeric column col by the
// present labels of column by. Groups follow the order of levels; rows
// whose label is not a level are dropped.
func groupFloats(f Frame, col, by string, levels []string) ([][]float64, error) {
	values, err := f.FloatsNaN(col)
	if err != nil {
		return nil, err
	}
	labels, na, err := f.Labels(by)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int, len(levels))
	for i, l := range levels {
		index[l] = i
	}
	groups := make([][]float64, len(levels))
	for i, v := range values {
		if na[i] || math.IsNaN(v) {
			continue
		}
		if g, ok := index[labels[i]]; ok {
			groups[g] = append(groups[g], v)
		}
	}
	return groups, nil
}
