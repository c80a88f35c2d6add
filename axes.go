package eda

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Axes is one cell of a Figure. Renderers draw into its Plot.
type Axes struct {
	Plot *plot.Plot

	// Row and Col locate the cell in the grid.
	Row, Col int

	// Blank is set for the cells beyond the targets of a figure.
	Blank bool

	// Size is the nominal extent of the cell.
	Size Size

	theme  *Theme
	colors *PaletteCycle
	logger *log.Logger
}

func newAxes(row, col int, size Size, theme *Theme, colors *PaletteCycle, logger *log.Logger) *Axes {
	p := plot.New()
	p.Title.TextStyle.Font.Size = theme.TitleSize
	p.Legend.Top = true
	return &Axes{
		Plot:   p,
		Row:    row,
		Col:    col,
		Size:   size,
		theme:  theme,
		colors: colors,
		logger: logger,
	}
}

// SetTitle formats the title of the cell.
func (ax *Axes) SetTitle(format string, args ...any) {
	ax.Plot.Title.Text = fmt.Sprintf(format, args...)
}

// SetTitleSize changes the font size of the title.
func (ax *Axes) SetTitleSize(size vg.Length) {
	ax.Plot.Title.TextStyle.Font.Size = size
}

// AxisOff hides axes, ticks and labels.
func (ax *Axes) AxisOff() { ax.Plot.HideAxes() }

// NextColor advances the palette cycle shared by all cells of the figure.
func (ax *Axes) NextColor() color.Color { return ax.colors.Next() }

// Palette is the palette cycle of the figure.
func (ax *Axes) Palette() *PaletteCycle { return ax.colors }

// Theme is the theme of the figure.
func (ax *Axes) Theme() *Theme { return ax.theme }

// Warnf reports a problem which did not stop rendering the cell.
func (ax *Axes) Warnf(format string, args ...any) {
	ax.logger.Warn(fmt.Sprintf(format, args...), "row", ax.Row, "col", ax.Col)
}
