package eda

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// DefaultDescribeTopN is the number of most frequent values
// DescribeCategorical reports when called through an Explorer.
const DefaultDescribeTopN = 5

// TopValue is one of the most frequent values of a column. Valid is
// false for the padding used when a column has too few distinct values.
type TopValue struct {
	Value string
	Count int
	Valid bool
}

// ColumnSummary describes one column of a data frame.
type ColumnSummary struct {
	Column  string
	Unique  int // distinct present values
	Missing int
	Type    series.Type
	Top     []TopValue
}

// Summary is the result of DescribeCategorical, one entry per column.
type Summary struct {
	Rows, Cols int
	TopN       int
	Columns    []ColumnSummary
}

// DescribeCategorical summarises every column of df: number of distinct
// values, number of missing values, the column type and the topN most
// frequent values with their counts. The dimension of df is written to w
// (if non-nil) before the summary is returned.
func DescribeCategorical(w io.Writer, df dataframe.DataFrame, topN int) (Summary, error) {
	if topN < 0 {
		return Summary{}, fmt.Errorf("%w: negative number of values %d", ErrInvalidArgument, topN)
	}
	f := NewFrame(df)
	rows, cols := f.Shape()
	summary := Summary{Rows: rows, Cols: cols, TopN: topN}

	for _, name := range f.Names() {
		counts, err := f.ValueCounts(name)
		if err != nil {
			return Summary{}, err
		}
		missing, err := f.Missing(name)
		if err != nil {
			return Summary{}, err
		}
		cs := ColumnSummary{
			Column:  name,
			Unique:  len(counts),
			Missing: missing,
			Type:    df.Col(name).Type(),
			Top:     make([]TopValue, topN),
		}
		for i := 0; i < topN && i < len(counts); i++ {
			cs.Top[i] = TopValue{Value: counts[i].Value, Count: counts[i].Count, Valid: true}
		}
		summary.Columns = append(summary.Columns, cs)
	}

	if w != nil {
		fmt.Fprintf(w, "Dataframe Dimension: %d Rows, %d Columns\n", rows, cols)
	}
	return summary, nil
}

// Header returns the column headers of Records.
func (s Summary) Header() []string {
	h := []string{"Column", "Unique", "Missing", "dtype"}
	for i := 1; i <= s.TopN; i++ {
		h = append(h, "ValCount "+strconv.Itoa(i), "Occ "+strconv.Itoa(i))
	}
	return h
}

// Records renders s as a table of strings, header first. Padding is
// rendered as NaN.
func (s Summary) Records() [][]string {
	records := [][]string{s.Header()}
	for _, c := range s.Columns {
		r := []string{c.Column, strconv.Itoa(c.Unique), strconv.Itoa(c.Missing), string(c.Type)}
		for _, t := range c.Top {
			if !t.Valid {
				r = append(r, "NaN", "NaN")
				continue
			}
			r = append(r, t.Value, strconv.Itoa(t.Count))
		}
		records = append(records, r)
	}
	return records
}

// DataFrame returns s as a data frame of strings with padding as
// missing values.
func (s Summary) DataFrame() dataframe.DataFrame {
	return dataframe.LoadRecords(s.Records(),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}
