package eda

import "fmt"

// PlotType enumerates the plots MassPlot can draw into a grid.
type PlotType int

const (
	BoxPlot PlotType = iota
	CountPlot
	DistPlot
	WordCloud
	BarPlot
)

var plotTypeTags = [...]string{
	BoxPlot:   "boxplot",
	CountPlot: "countplot",
	DistPlot:  "distplot",
	WordCloud: "wordcloud",
	BarPlot:   "bar",
}

// String returns the tag of pt.
func (pt PlotType) String() string {
	if pt < 0 || int(pt) >= len(plotTypeTags) {
		return fmt.Sprintf("PlotType(%d)", int(pt))
	}
	return plotTypeTags[pt]
}

// PlotTypes lists all plot types.
func PlotTypes() []PlotType {
	return []PlotType{BoxPlot, CountPlot, DistPlot, WordCloud, BarPlot}
}

// ParsePlotType looks up the plot type with the given tag.
func ParsePlotType(tag string) (PlotType, error) {
	for i, t := range plotTypeTags {
		if t == tag {
			return PlotType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlotType, tag)
}

// Renderer draws one target into one grid cell.
type Renderer interface {
	Name() string

	// Render draws t into ax using the data of f. Options not
	// understood by the renderer are ignored.
	Render(t Target, ax *Axes, f Frame, opts Options) error
}

var (
	_ Renderer = categorical{}
	_ Renderer = dist{}
	_ Renderer = cloud{}
	_ Renderer = bar{}
	_ Renderer = reg{}
)

// renderer returns the renderer of pt and the options it always gets.
// Box and count plots share one renderer told apart by OptPlotType.
// It panics if pt is not one of PlotTypes.
func (pt PlotType) renderer() (Renderer, Options) {
	switch pt {
	case BoxPlot, CountPlot:
		return categorical{}, Options{OptPlotType: pt.String()}
	case DistPlot:
		return dist{}, Options{}
	case WordCloud:
		return cloud{}, Options{}
	case BarPlot:
		return bar{}, Options{}
	}
	panic(fmt.Sprintf("eda: no renderer for %s", pt))
}

// Resolve returns the renderer and fixed options for the plot type tag.
func Resolve(tag string) (Renderer, Options, error) {
	pt, err := ParsePlotType(tag)
	if err != nil {
		return nil, nil, err
	}
	r, fixed := pt.renderer()
	return r, fixed, nil
}
