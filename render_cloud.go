package eda

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/eda/geom"
)

var colormaps = map[string]func() palette.ColorMap{
	"plasma":       moreland.ExtendedBlackBody,
	"inferno":      moreland.ExtendedBlackBody,
	"magma":        moreland.BlackBody,
	"blackbody":    moreland.BlackBody,
	"viridis":      moreland.ExtendedKindlmann,
	"kindlmann":    moreland.Kindlmann,
	"coolwarm":     diverging(moreland.SmoothBlueRed),
	"bluered":      diverging(moreland.SmoothBlueRed),
	"bluetan":      diverging(moreland.SmoothBlueTan),
	"greenpurple":  diverging(moreland.SmoothGreenPurple),
	"greenred":     diverging(moreland.SmoothGreenRed),
	"purpleorange": diverging(moreland.SmoothPurpleOrange),
}

func diverging(mk func() palette.DivergingColorMap) func() palette.ColorMap {
	return func() palette.ColorMap { return mk() }
}

// Colormap returns the color map of the given name spanning [0,1].
// Common matplotlib names are mapped onto the closest of the
// perceptually uniform maps of package moreland.
func Colormap(name string) (palette.ColorMap, error) {
	mk, ok := colormaps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color map %q", ErrInvalidArgument, name)
	}
	cm := mk()
	cm.SetMax(1)
	cm.SetMin(0)
	return cm, nil
}

// cloud draws the word cloud of a text column.
type cloud struct{}

func (cloud) Name() string { return "wordcloud" }

func (cloud) Render(t Target, ax *Axes, f Frame, opts Options) error {
	s, err := f.Column(t.Col)
	if err != nil {
		return err
	}
	missing, err := f.Missing(t.Col)
	if err != nil {
		return err
	}
	theme := ax.Theme()
	name := opts.String(OptCmap)
	if name == "" {
		name = theme.CloudColormap
	}
	cmap, err := Colormap(name)
	if err != nil {
		return err
	}

	c := geom.Cloud{
		Width:      theme.CloudWidth,
		Height:     theme.CloudHeight,
		MaxWords:   theme.CloudMaxWords,
		Background: theme.CloudBackground,
		Colormap:   cmap,
		Font:       plot.DefaultFont,
	}
	img, err := c.Render(CleanText(s))
	if err != nil {
		return fmt.Errorf("wordcloud of %s: %w", t.Col, err)
	}
	w, h := float64(theme.CloudWidth), float64(theme.CloudHeight)
	ax.Plot.Add(plotter.NewImage(img, 0, 0, w, h))
	ax.Plot.X.Min, ax.Plot.X.Max = 0, w
	ax.Plot.Y.Min, ax.Plot.Y.Max = 0, h

	ax.SetTitle("%s Wordcloud - %d Missing", PrepareTitle(t.Col), missing)
	ax.SetTitleSize(theme.CloudTitleSize)
	ax.AxisOff()
	return nil
}
