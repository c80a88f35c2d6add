package eda

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-gota/gota/dataframe"

	"github.com/vdobler/eda/stat"
)

// Explorer draws grids of exploratory plots of one data frame. The data
// frame is only read.
type Explorer struct {
	frame  Frame
	theme  Theme
	logger *log.Logger
	out    io.Writer
}

// Option configures an Explorer.
type Option func(*Explorer)

// WithTheme sets the theme of all figures.
func WithTheme(t Theme) Option {
	return func(e *Explorer) { e.theme = t }
}

// WithLogger sets the logger. The default logger discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Explorer) { e.logger = l }
}

// WithOutput sets where CategoricalDescribe prints the dimension line.
// It defaults to standard output.
func WithOutput(w io.Writer) Option {
	return func(e *Explorer) { e.out = w }
}

// New returns an Explorer of df.
func New(df dataframe.DataFrame, opts ...Option) *Explorer {
	e := &Explorer{
		frame:  NewFrame(df),
		theme:  DefaultTheme,
		logger: log.New(io.Discard),
		out:    os.Stdout,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Frame returns the explored data.
func (e *Explorer) Frame() Frame { return e.frame }

// GridOptions controls the layout of MassPlot.
type GridOptions struct {
	Columns int

	// Size of the figure; nil uses EstimateSize.
	Size *Size

	// Palette of the figure; empty uses DefaultPalette.
	Palette Palette

	// Options are handed to the renderer and take precedence over the
	// fixed options of the plot type.
	Options Options
}

// DefaultGridOptions lays out two plots per row.
func DefaultGridOptions() GridOptions {
	return GridOptions{Columns: 2}
}

// MassPlot draws one plot of the type tag per target into a grid of
// opts.Columns columns. Cells beyond the targets are blank.
func (e *Explorer) MassPlot(targets []Target, tag string, opts GridOptions) (*Figure, error) {
	r, fixed, err := Resolve(tag)
	if err != nil {
		return nil, err
	}
	return e.grid(targets, r, fixed.Combine(opts.Options), opts.Columns, opts.Size, opts.Palette)
}

// RankOptions controls RankCorrelationsPlots.
type RankOptions struct {
	Columns   int
	PolyOrder int
	Size      *Size
	Palette   Palette
}

// DefaultRankOptions lays out three plots per row with quadratic trends.
func DefaultRankOptions() RankOptions {
	return RankOptions{Columns: 3, PolyOrder: DefaultPolyOrder}
}

// RankCorrelations ranks all distinct pairs of the numeric columns cols
// by the absolute value of their correlation coefficient, strongest
// first. Rows missing either value are ignored per pair.
func (e *Explorer) RankCorrelations(cols []string) ([]stat.Pair, error) {
	columns := make([][]float64, len(cols))
	for i, c := range cols {
		values, err := e.frame.FloatsNaN(c)
		if err != nil {
			return nil, err
		}
		columns[i] = values
	}
	return stat.RankCorrelations(cols, columns), nil
}

// RankCorrelationsPlots draws scatter plots with trend lines of the n
// most strongly correlated pairs of cols.
func (e *Explorer) RankCorrelationsPlots(cols []string, n int, opts RankOptions) (*Figure, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative number of pairs %d", ErrInvalidArgument, n)
	}
	pairs, err := e.RankCorrelations(cols)
	if err != nil {
		return nil, err
	}
	if n < len(pairs) {
		pairs = pairs[:n]
	}
	targets := make([]Target, len(pairs))
	for i, p := range pairs {
		targets[i] = PairTarget(p)
	}
	ro := Options{OptPolyOrder: fmt.Sprint(opts.PolyOrder)}
	return e.grid(targets, reg{}, ro, opts.Columns, opts.Size, opts.Palette)
}

// grid renders targets with r into a fresh figure.
func (e *Explorer) grid(targets []Target, r Renderer, opts Options, columns int, size *Size, pal Palette) (*Figure, error) {
	spec, err := ComputeGrid(len(targets), columns)
	if err != nil {
		return nil, err
	}
	figSize := spec.Size
	if size != nil {
		figSize = *size
	}
	colors := NewPaletteCycle(pal)
	e.logger.Debug("grid", "renderer", r.Name(), "targets", len(targets),
		"rows", spec.Rows, "columns", spec.Columns, "colors", colors.Len())

	fig := newFigure(spec, figSize, e.theme, colors, e.logger)
	for i := 0; i < spec.NPlots; i++ {
		ax := fig.At(i)
		if i >= len(targets) {
			ax.Blank = true
			ax.AxisOff()
			continue
		}
		e.logger.Debug("render", "cell", i, "target", targets[i].String())
		if err := r.Render(targets[i], ax, e.frame, opts); err != nil {
			return nil, fmt.Errorf("%s of %s: %w", r.Name(), targets[i], err)
		}
	}
	return fig, nil
}

// CategoricalDescribe summarises every column, see DescribeCategorical.
func (e *Explorer) CategoricalDescribe(topN int) (Summary, error) {
	return DescribeCategorical(e.out, e.frame.DataFrame(), topN)
}
