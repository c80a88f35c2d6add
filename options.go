package eda

import (
	"fmt"
	"image/color"
	"strconv"
)

// Option keys understood by the renderers.
const (
	OptPlotType  = "plottype"  // boxplot or countplot; set by Resolve
	OptHue       = "hue"       // grouping column
	OptTopN      = "top_n"     // number of most frequent categories shown
	OptXVar      = "x_var"     // categorical x axis of bar plots
	OptCmap      = "cmap"      // color map of word clouds
	OptPolyOrder = "polyorder" // order of the regression trend line
	OptBins      = "bins"      // number of histogram bins of dist plots
	OptBinWidth  = "binwidth"  // histogram bin width; takes precedence over bins

	// Overrides of the theme style of the main marks of a plot.
	OptColor = "color" // outline color
	OptAlpha = "alpha" // fill opacity
	OptSize  = "size"  // line width or point radius in points
)

// Defaults of options which are not set.
const (
	DefaultTopN      = 10
	DefaultPolyOrder = 2
)

// Options controls the behaviour of a renderer, much like keyword
// arguments. Values are kept as strings and converted on access.
// The zero value is a valid, empty set of options.
type Options map[string]string

// Copy returns a shallow copy of o; a nil o gives an empty Options.
func (o Options) Copy() Options {
	c := make(Options, len(o))
	for k, v := range o {
		c[k] = v
	}
	return c
}

// Combine merges set values of all the others into a copy of o.
// Later values overwrite earlier ones or values in o.
func (o Options) Combine(others ...Options) Options {
	merged := o.Copy()
	for _, other := range others {
		for k, v := range other {
			merged[k] = v
		}
	}
	return merged
}

// MergeStyles merges styles with the first one taking precedence:
// a key is only taken from a later style if no earlier style sets it.
// Empty values do not count as set.
func MergeStyles(styles ...Options) Options {
	merged := make(Options)
	for _, s := range styles {
		for k, v := range s {
			if v == "" {
				continue
			}
			if _, ok := merged[k]; !ok {
				merged[k] = v
			}
		}
	}
	return merged
}

// styled layers the style keys set in opts over the theme style base.
func styled(opts, base Options) Options {
	return MergeStyles(Options{
		"color": opts[OptColor],
		"alpha": opts[OptAlpha],
		"size":  opts[OptSize],
	}, base)
}

// String returns the value of key or "".
func (o Options) String(key string) string { return o[key] }

// Int returns key as integer or def if unset.
func (o Options) Int(key string, def int) (int, error) {
	s, ok := o[key]
	if !ok || s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: option %s=%q is not an integer", ErrInvalidArgument, key, s)
	}
	return n, nil
}

// Float returns key as a float clamped to [low, high], or def if unset.
func (o Options) Float(key string, def, low, high float64) float64 {
	s, ok := o[key]
	if !ok || s == "" {
		return def
	}
	return String2Float(s, low, high)
}

// Color returns key as color, or def if unset.
func (o Options) Color(key string, def color.Color) color.Color {
	s, ok := o[key]
	if !ok || s == "" {
		return def
	}
	return String2Color(s)
}
