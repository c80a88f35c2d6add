package eda

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// Size is the extent of a figure.
type Size struct {
	Width, Height vg.Length
}

// Cell dimensions used by EstimateSize.
const (
	CellWidth  = 5 * vg.Inch
	CellHeight = 4 * vg.Inch
)

// EstimateSize is the default size of a figure with the given number of
// grid columns and rows.
func EstimateSize(columns, rows int) Size {
	return Size{
		Width:  vg.Length(columns) * CellWidth,
		Height: vg.Length(rows) * CellHeight,
	}
}

// GridSpec is the layout of the subplots of a figure.
// NPlots = Rows*Columns is at least the number of targets; the cells
// beyond the targets stay blank.
type GridSpec struct {
	Rows, Columns int
	NPlots        int
	Size          Size
}

// ComputeGrid lays out n targets on a grid with the given number of
// columns and as many rows as needed. Zero targets give zero rows.
func ComputeGrid(n, columns int) (GridSpec, error) {
	if columns <= 0 {
		return GridSpec{}, fmt.Errorf("%w: %d grid columns", ErrInvalidArgument, columns)
	}
	if n < 0 {
		return GridSpec{}, fmt.Errorf("%w: %d targets", ErrInvalidArgument, n)
	}
	rows := (n + columns - 1) / columns
	return GridSpec{
		Rows:    rows,
		Columns: columns,
		NPlots:  rows * columns,
		Size:    EstimateSize(columns, rows),
	}, nil
}

// Cell returns row and column of the i'th cell in row-major order.
func (g GridSpec) Cell(i int) (row, col int) {
	return i / g.Columns, i % g.Columns
}
