package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxBins caps the automatically chosen number of histogram bins.
const MaxBins = 50

// BinnedData is one bin of a histogram.
type BinnedData struct {
	XMin, XMax float64 // Bin boundaries.
	X          float64 // Center of the bin.
	Count      int64
	Density    float64 // Count / (BinWidth * N), integrates to 1.
}

// BinOptions controls Bin. The zero value selects the number of bins
// with the Freedman-Diaconis rule.
type BinOptions struct {
	BinWidth float64 // Fixed bin width; takes precedence over Bins.
	Bins     int     // Fixed number of bins.
}

// FreedmanDiaconis returns the number of bins the Freedman-Diaconis rule
// suggests for data, capped at MaxBins and at least 1.
func FreedmanDiaconis(data []float64) int {
	n := len(data)
	if n < 2 {
		return 1
	}
	h := 2 * IQR(data) / math.Cbrt(float64(n))
	var bins int
	if h == 0 {
		bins = int(math.Sqrt(float64(n)))
	} else {
		bins = int(math.Ceil((floats.Max(data) - floats.Min(data)) / h))
	}
	if bins < 1 {
		bins = 1
	}
	if bins > MaxBins {
		bins = MaxBins
	}
	return bins
}

// Bin groups data into bins and counts occurrences in these bins.
// A nil options will use the default options. The maximum of data is
// counted in the last bin. Empty data yields no bins.
func Bin(data []float64, options *BinOptions) []BinnedData {
	if len(data) == 0 {
		return nil
	}
	if options == nil {
		options = &BinOptions{}
	}

	min, max := floats.Min(data), floats.Max(data)
	if min == max {
		min -= 0.5
		max += 0.5
	}

	binWidth, numBins := options.BinWidth, options.Bins
	switch {
	case binWidth > 0:
		numBins = int(math.Ceil((max - min) / binWidth))
		if numBins < 1 {
			numBins = 1
		}
	case numBins > 0:
		binWidth = (max - min) / float64(numBins)
	default:
		numBins = FreedmanDiaconis(data)
		binWidth = (max - min) / float64(numBins)
	}

	counts := make([]int64, numBins)
	for _, x := range data {
		bin := int((x - min) / binWidth)
		if bin >= numBins {
			bin = numBins - 1
		} else if bin < 0 {
			bin = 0
		}
		counts[bin]++
	}

	n := float64(len(data))
	result := make([]BinnedData, 0, numBins)
	for bin, count := range counts {
		lo := min + float64(bin)*binWidth
		density := float64(count) / binWidth / n
		result = append(result, BinnedData{
			XMin:    lo,
			XMax:    lo + binWidth,
			X:       lo + binWidth/2,
			Count:   count,
			Density: density,
		})
	}
	return result
}
