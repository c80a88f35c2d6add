package stat

import (
	"math"
	"testing"
)

var weights = []float64{80, 85, 90, 90, 77, 82, 85, 84, 85, 90, 99, 95, 80, 85, 87, 90, 60, 65, 55, 70}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestLowerQuantile(t *testing.T) {
	data := []float64{5, 1, 4, 2, 3}
	tests := []struct {
		p, want float64
	}{
		{0, 1},
		{0.5, 3},
		{0.99, 4},
		{1, 5},
	}
	for i, tc := range tests {
		if got := LowerQuantile(data, tc.p); got != tc.want {
			t.Errorf("%d: LowerQuantile(%.2f) = %v, want %v", i, tc.p, got, tc.want)
		}
	}
	if !math.IsNaN(LowerQuantile(nil, 0.5)) {
		t.Errorf("Expected NaN for empty data")
	}
	if data[0] != 5 {
		t.Errorf("Input was sorted in place: %v", data)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	if got := Percentile(sorted, 0.5); got != 2.5 {
		t.Errorf("Got median %v, want 2.5", got)
	}
	if got := Percentile(sorted, 1); got != 4 {
		t.Errorf("Got max %v, want 4", got)
	}
	if got := IQR([]float64{4, 3, 2, 1}); got != 1.5 {
		t.Errorf("Got IQR %v, want 1.5", got)
	}
}

func TestBin(t *testing.T) {
	bins := Bin(weights, &BinOptions{BinWidth: 10})
	if len(bins) != 5 {
		t.Fatalf("Got %d bins, want 5: %+v", len(bins), bins)
	}
	total := int64(0)
	area := 0.0
	for _, b := range bins {
		total += b.Count
		area += b.Density * (b.XMax - b.XMin)
	}
	if total != int64(len(weights)) {
		t.Errorf("Got %d counts, want %d", total, len(weights))
	}
	if !near(area, 1, 1e-9) {
		t.Errorf("Density integrates to %v", area)
	}
	// Maximum 99 must land in the last bin.
	if last := bins[len(bins)-1]; last.Count == 0 || last.XMax < 99 {
		t.Errorf("Bad last bin %+v", last)
	}

	if b := Bin(nil, nil); b != nil {
		t.Errorf("Got %v for empty data", b)
	}

	single := Bin([]float64{3, 3, 3}, nil)
	if len(single) != 1 || single[0].Count != 3 || single[0].XMin != 2.5 {
		t.Errorf("Got %+v for constant data", single)
	}

	five := Bin([]float64{0, 10}, &BinOptions{Bins: 5})
	if len(five) != 5 || five[0].Count != 1 || five[4].Count != 1 || five[2].Count != 0 {
		t.Errorf("Got %+v, want 5 bins", five)
	}
}

func TestFreedmanDiaconis(t *testing.T) {
	if n := FreedmanDiaconis([]float64{1}); n != 1 {
		t.Errorf("Got %d bins for one value", n)
	}
	if n := FreedmanDiaconis([]float64{2, 2, 2, 2}); n != 2 {
		t.Errorf("Got %d bins for zero IQR, want 2", n)
	}
	data := make([]float64, 200000)
	for i := range data {
		data[i] = float64(i)
	}
	if n := FreedmanDiaconis(data); n != MaxBins {
		t.Errorf("Got %d bins, want cap %d", n, MaxBins)
	}
}

func TestBoxPlot(t *testing.T) {
	b := BoxPlot([]float64{1, 2, 3, 4, 5, 6, 7, 8, 100}, 0)
	if b.N != 9 || b.Median != 5 || b.Q1 != 3 || b.Q3 != 7 {
		t.Errorf("Got %+v", b)
	}
	if b.Low != 1 || b.High != 8 {
		t.Errorf("Got whiskers %v %v, want 1 8", b.Low, b.High)
	}
	if len(b.Outliers) != 1 || b.Outliers[0] != 100 {
		t.Errorf("Got outliers %v", b.Outliers)
	}
	if b.Min != 1 || b.Max != 100 {
		t.Errorf("Got min/max %v %v", b.Min, b.Max)
	}

	if z := BoxPlot(nil, 1.5); z.N != 0 {
		t.Errorf("Got %+v for empty data", z)
	}
}

func TestKDE(t *testing.T) {
	bw := ScottBandwidth(weights)
	if bw <= 0 {
		t.Fatalf("Got bandwidth %v", bw)
	}
	f := KDE(weights, bw)
	xs, ys := Curve(f, 0, 160, 1601)
	area := 0.0
	for i := 1; i < len(xs); i++ {
		area += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	if !near(area, 1, 1e-3) {
		t.Errorf("KDE integrates to %v", area)
	}
	if ScottBandwidth([]float64{1}) != 0 {
		t.Errorf("Expected zero bandwidth for a single value")
	}
}

func TestPolyFit(t *testing.T) {
	var x, y []float64
	for i := 0; i < 6; i++ {
		xi := float64(i)
		x = append(x, xi)
		y = append(y, 1+2*xi+3*xi*xi)
	}
	coef, err := PolyFit(x, y, 2)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := []float64{1, 2, 3}
	for i := range want {
		if !near(coef[i], want[i], 1e-8) {
			t.Errorf("coef[%d] = %v, want %v", i, coef[i], want[i])
		}
	}
	if got := PolyEval(coef, 10); !near(got, 321, 1e-6) {
		t.Errorf("PolyEval(10) = %v, want 321", got)
	}

	if _, err := PolyFit([]float64{1, 2}, []float64{1, 2}, 2); err != ErrTooFewPoints {
		t.Errorf("Got %v, want ErrTooFewPoints", err)
	}
	if _, err := PolyFit([]float64{1, 2}, []float64{1}, 1); err == nil {
		t.Errorf("Missing error for length mismatch")
	}
}

func TestValueCounts(t *testing.T) {
	counts := ValueCounts([]string{"b", "a", "c", "a", "b", "d", "a"})
	want := []ValueCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}}
	if len(counts) != len(want) {
		t.Fatalf("Got %v", counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("%d: got %v, want %v", i, counts[i], want[i])
		}
	}
	if top := Top(counts, 2); len(top) != 2 || top[0] != "a" || top[1] != "b" {
		t.Errorf("Got top %v", top)
	}
	if top := Top(counts, 10); len(top) != 4 {
		t.Errorf("Got top %v", top)
	}
}

func TestRankCorrelations(t *testing.T) {
	nan := math.NaN()
	names := []string{"a", "b", "c", "d"}
	columns := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 4, 6, 8, 10},  // perfectly correlated with a
		{5, 3, 4, 1, nan}, // negative, one missing
		{7, 7, 7, 7, 7},   // constant, undefined correlation
	}
	pairs := RankCorrelations(names, columns)
	if len(pairs) != 3 {
		t.Fatalf("Got %d pairs, want 3: %v", len(pairs), pairs)
	}
	if pairs[0].X != "a" || pairs[0].Y != "b" || !near(pairs[0].Coef, 1, 1e-12) {
		t.Errorf("Got first pair %+v", pairs[0])
	}
	for i, p := range pairs {
		if p.X == p.Y {
			t.Errorf("Self pair %+v", p)
		}
		if i > 0 && p.Abs() > pairs[i-1].Abs() {
			t.Errorf("Pairs not ranked: %v", pairs)
		}
		if p.Coef >= 0 {
			if p.X != "a" || p.Y != "b" {
				t.Errorf("Unexpected positive pair %+v", p)
			}
		}
	}
}
