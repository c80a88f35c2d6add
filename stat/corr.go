package stat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Pair is the correlation coefficient between two variables.
type Pair struct {
	X, Y string
	Coef float64
}

// Abs is the absolute value of the coefficient; pairs are ranked by it.
func (p Pair) Abs() float64 { return math.Abs(p.Coef) }

// Correlation computes the Pearson correlation of x and y over the rows
// where both are present; NaN marks a missing value. NaN is returned
// if fewer than two complete rows exist or one variable is constant.
func Correlation(x, y []float64) float64 {
	var xs, ys []float64
	for i := range x {
		if i >= len(y) {
			break
		}
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// RankCorrelations computes the correlation of every unique pair of the
// named columns and returns them ordered by descending absolute
// coefficient. Self pairs are excluded and each unordered pair appears
// once, as (names[i], names[j]) with i < j. Pairs whose coefficient is
// undefined are left out. Equal magnitudes keep the matrix order.
func RankCorrelations(names []string, columns [][]float64) []Pair {
	var pairs []Pair
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			c := Correlation(columns[i], columns[j])
			if math.IsNaN(c) {
				continue
			}
			pairs = append(pairs, Pair{X: names[i], Y: names[j], Coef: c})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].Abs() > pairs[b].Abs()
	})
	return pairs
}
