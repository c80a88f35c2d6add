package eda

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/vdobler/eda/stat"
)

// Other replaces infrequent categories in CategoricalReduce.
const Other = "Other"

// Strategy selects how CategoricalReduce treats infrequent categories.
type Strategy string

const (
	// AsOther relabels infrequent categories (and missing values) as Other.
	AsOther Strategy = "as other"
	// Exclude drops the rows of infrequent categories.
	Exclude Strategy = "exclude"
)

// ContinuousNullAndOutliers drops the rows where col is missing and then
// the rows above the upperPct percentile of col. If lowerPct is non-nil the
// rows below the lowerPct percentile are dropped too. Percentiles are
// taken without interpolation over the present values. The result is a
// new data frame; df is not modified.
func ContinuousNullAndOutliers(df dataframe.DataFrame, col string, upperPct float64, lowerPct *float64) (dataframe.DataFrame, error) {
	if upperPct < 0 || upperPct > 100 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: upper percentile %g outside [0,100]", ErrInvalidArgument, upperPct)
	}
	if lowerPct != nil && (*lowerPct < 0 || *lowerPct > 100) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: lower percentile %g outside [0,100]", ErrInvalidArgument, *lowerPct)
	}

	values, err := NewFrame(df).FloatsNaN(col)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	var present []float64
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}

	upper := stat.LowerQuantile(present, upperPct/100)
	lower := math.Inf(-1)
	if lowerPct != nil {
		lower = stat.LowerQuantile(present, *lowerPct/100)
	}

	keep := []int{}
	for i, v := range values {
		if math.IsNaN(v) || v > upper || v < lower {
			continue
		}
		keep = append(keep, i)
	}
	return df.Subset(keep), nil
}

// CategoricalReduce limits col to its topN most frequent categories.
// With AsOther every other value, missing ones included, is replaced by
// Other and col becomes a string column; the row count is unchanged.
// With Exclude only rows holding one of the top categories are kept.
// The result is a new data frame; df is not modified.
func CategoricalReduce(df dataframe.DataFrame, col string, topN int, strategy Strategy) (dataframe.DataFrame, error) {
	if strategy != AsOther && strategy != Exclude {
		return dataframe.DataFrame{}, fmt.Errorf("%w: strategy %q", ErrInvalidArgument, strategy)
	}
	if topN < 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: negative number of categories %d", ErrInvalidArgument, topN)
	}

	f := NewFrame(df)
	top, err := f.TopCategories(col, topN)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	labels, na, err := f.Labels(col)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	frequent := NewSet(top...)

	if strategy == Exclude {
		keep := []int{}
		for i, l := range labels {
			if !na[i] && frequent.Contains(l) {
				keep = append(keep, i)
			}
		}
		return df.Subset(keep), nil
	}

	reduced := make([]string, len(labels))
	for i, l := range labels {
		if na[i] || !frequent.Contains(l) {
			l = Other
		}
		reduced[i] = l
	}
	return df.Mutate(series.New(reduced, series.String, col)), nil
}
