package eda

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a grid of subplots produced by MassPlot or
// RankCorrelationsPlots.
type Figure struct {
	Grid  GridSpec
	Size  Size
	Theme Theme

	// Axes holds Grid.Rows rows of Grid.Columns cells each.
	Axes [][]*Axes
}

func newFigure(grid GridSpec, size Size, theme Theme, colors *PaletteCycle, logger *log.Logger) *Figure {
	f := &Figure{Grid: grid, Size: size, Theme: theme}
	cell := Size{}
	if grid.Rows > 0 {
		cell.Width = size.Width / vg.Length(grid.Columns)
		cell.Height = size.Height / vg.Length(grid.Rows)
	}
	f.Axes = make([][]*Axes, grid.Rows)
	for r := range f.Axes {
		f.Axes[r] = make([]*Axes, grid.Columns)
		for c := range f.Axes[r] {
			f.Axes[r][c] = newAxes(r, c, cell, &f.Theme, colors, logger)
		}
	}
	return f
}

// At returns the i'th cell in row-major order.
func (f *Figure) At(i int) *Axes {
	r, c := f.Grid.Cell(i)
	return f.Axes[r][c]
}

// Plots returns the plots of all cells.
func (f *Figure) Plots() [][]*plot.Plot {
	plots := make([][]*plot.Plot, len(f.Axes))
	for r, row := range f.Axes {
		plots[r] = make([]*plot.Plot, len(row))
		for c, ax := range row {
			plots[r][c] = ax.Plot
		}
	}
	return plots
}

// Draw draws all cells to dc. Cells are aligned so that titles and
// labels of neighbouring cells do not overlap.
func (f *Figure) Draw(dc draw.Canvas) {
	if f.Grid.Rows == 0 {
		return
	}
	pad := f.Theme.Pad
	tiles := draw.Tiles{
		Rows:      f.Grid.Rows,
		Cols:      f.Grid.Columns,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadX:      pad,
		PadY:      pad,
	}
	canvases := plot.Align(f.Plots(), tiles, dc)
	for r, row := range f.Axes {
		for c, ax := range row {
			ax.Plot.Draw(canvases[r][c])
		}
	}
}

// WriteTo renders f in the given format (png, jpg, svg, pdf, eps or
// tiff) to w.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	if f.Grid.Rows == 0 {
		return 0, fmt.Errorf("%w: figure without cells", ErrInvalidArgument)
	}
	c, err := draw.NewFormattedCanvas(f.Size.Width, f.Size.Height, format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save writes f to path; the format is taken from the file extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.WriteTo(file, format)
	return err
}
