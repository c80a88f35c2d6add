package eda

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/vdobler/eda/stat"
)

// Frame is a read-only view on a data frame with the column level
// helpers the plots need. Missing values are the NA elements of the
// underlying series.
type Frame struct {
	df dataframe.DataFrame
}

// NewFrame wraps df.
func NewFrame(df dataframe.DataFrame) Frame {
	return Frame{df: df}
}

// DataFrame returns the wrapped data frame.
func (f Frame) DataFrame() dataframe.DataFrame { return f.df }

// Shape returns the number of rows and columns.
func (f Frame) Shape() (rows, cols int) { return f.df.Dims() }

// Names returns the column names.
func (f Frame) Names() []string { return f.df.Names() }

// Has reports whether f has a column called name.
func (f Frame) Has(name string) bool {
	for _, n := range f.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Column returns the named column.
func (f Frame) Column(name string) (series.Series, error) {
	if !f.Has(name) {
		return series.Series{}, fmt.Errorf("%w: no column %q", ErrInvalidArgument, name)
	}
	return f.df.Col(name), nil
}

// Missing counts the missing values in column name.
func (f Frame) Missing(name string) (int, error) {
	s, err := f.Column(name)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := 0; i < s.Len(); i++ {
		if s.Elem(i).IsNA() {
			n++
		}
	}
	return n, nil
}

// Labels returns the string form of every row of column name together
// with a flag marking missing rows.
func (f Frame) Labels(name string) (labels []string, na []bool, err error) {
	s, err := f.Column(name)
	if err != nil {
		return nil, nil, err
	}
	labels, na = make([]string, s.Len()), make([]bool, s.Len())
	for i := range labels {
		e := s.Elem(i)
		if e.IsNA() {
			na[i] = true
			continue
		}
		labels[i] = e.String()
	}
	return labels, na, nil
}

// Strings returns the string form of the present values of column name.
func (f Frame) Strings(name string) ([]string, error) {
	labels, na, err := f.Labels(name)
	if err != nil {
		return nil, err
	}
	var present []string
	for i, l := range labels {
		if !na[i] {
			present = append(present, l)
		}
	}
	return present, nil
}

// FloatsNaN returns every row of the numeric column name with NaN for
// missing values.
func (f Frame) FloatsNaN(name string) ([]float64, error) {
	s, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if s.Type() == series.String {
		return nil, fmt.Errorf("%w: %q holds strings", ErrNotNumeric, name)
	}
	values := make([]float64, s.Len())
	for i := range values {
		e := s.Elem(i)
		if e.IsNA() {
			values[i] = math.NaN()
			continue
		}
		values[i] = e.Float()
	}
	return values, nil
}

// Floats returns the present values of the numeric column name.
func (f Frame) Floats(name string) ([]float64, error) {
	all, err := f.FloatsNaN(name)
	if err != nil {
		return nil, err
	}
	values := all[:0]
	for _, v := range all {
		if !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	return values, nil
}

// MinMax determines minimum and maximum of the present values of the
// numeric column name. Both are NaN if no value is present.
func (f Frame) MinMax(name string) (min, max float64, err error) {
	values, err := f.Floats(name)
	if err != nil {
		return 0, 0, err
	}
	min, max = math.NaN(), math.NaN()
	for i, v := range values {
		if i == 0 || v < min {
			min = v
		}
		if i == 0 || v > max {
			max = v
		}
	}
	return min, max, nil
}

// ValueCounts counts the distinct present values of column name, most
// frequent first. Ties keep the order of first appearance.
func (f Frame) ValueCounts(name string) ([]stat.ValueCount, error) {
	values, err := f.Strings(name)
	if err != nil {
		return nil, err
	}
	return stat.ValueCounts(values), nil
}

// TopCategories returns the n most frequent values of column name.
func (f Frame) TopCategories(name string, n int) ([]string, error) {
	counts, err := f.ValueCounts(name)
	if err != nil {
		return nil, err
	}
	return stat.Top(counts, n), nil
}
