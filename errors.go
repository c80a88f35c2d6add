package eda

import "errors"

var (
	// ErrInvalidArgument reports a caller supplied argument the operation
	// cannot work with, e.g. a non-positive number of grid columns or a
	// grouping variable equal to the plotted column.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownPlotType is returned when a plot type tag is not one of
	// boxplot, countplot, distplot, wordcloud or bar.
	ErrUnknownPlotType = errors.New("unknown plot type")

	// ErrNotNumeric is returned when a numeric renderer or helper is
	// handed a column holding strings.
	ErrNotNumeric = errors.New("column is not numeric")
)
