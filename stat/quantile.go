package stat

import (
	"math"
	"sort"
)

// sortedCopy returns an ascending copy of data.
func sortedCopy(data []float64) []float64 {
	d := make([]float64, len(data))
	copy(d, data)
	sort.Float64s(d)
	return d
}

// LowerQuantile returns the p-quantile of data without interpolation:
// the sorted value at index floor(p*(n-1)). p must be in [0,1].
// NaN is returned for empty data.
func LowerQuantile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return math.NaN()
	}
	d := sortedCopy(data)
	return d[int(math.Floor(p*float64(len(d)-1)))]
}

// Percentile returns the p-quantile of the already sorted data using linear
// interpolation between closest ranks.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// IQR is the interquartile range of data.
func IQR(data []float64) float64 {
	d := sortedCopy(data)
	return Percentile(d, 0.75) - Percentile(d, 0.25)
}
