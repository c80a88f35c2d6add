package stat

// DefaultCoef is the whisker length in units of the interquartile range.
const DefaultCoef = 1.5

// BoxPlotData contains the components of a box and whisker plot.
type BoxPlotData struct {
	N              int
	Min, Max       float64 // Extremes of the data.
	Low, High      float64 // Whisker ends: most extreme values within Coef*IQR of the box.
	Q1, Median, Q3 float64
	Outliers       []float64
}

// BoxPlot calculates components of a box and whisker plot of data.
// Whiskers reach the most extreme data points within coef times the
// interquartile range from the box; everything beyond is an outlier.
// A coef <= 0 uses DefaultCoef. Empty data yields the zero BoxPlotData.
func BoxPlot(data []float64, coef float64) BoxPlotData {
	n := len(data)
	if n == 0 {
		return BoxPlotData{}
	}
	if coef <= 0 {
		coef = DefaultCoef
	}
	d := sortedCopy(data)

	b := BoxPlotData{N: n, Min: d[0], Max: d[n-1]}
	b.Q1 = Percentile(d, 0.25)
	b.Median = Percentile(d, 0.5)
	b.Q3 = Percentile(d, 0.75)

	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-coef*iqr, b.Q3+coef*iqr
	b.Low, b.High = b.Max, b.Min

	for _, y := range d {
		if y >= lo && y < b.Low {
			b.Low = y
		}
		if y <= hi && y > b.High {
			b.High = y
		}
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
		}
	}

	return b
}
