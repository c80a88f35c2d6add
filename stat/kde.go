package stat

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// ScottBandwidth returns the kernel bandwidth of Scott's rule,
// std * n^(-1/5), using the sample standard deviation.
// Data with fewer than two values has bandwidth 0.
func ScottBandwidth(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	_, std := stat.MeanStdDev(data, nil)
	return std * math.Pow(float64(len(data)), -0.2)
}

// KDE returns the Gaussian kernel density estimate of data with bandwidth bw.
// The returned function integrates to one over the real line.
func KDE(data []float64, bw float64) func(x float64) float64 {
	d := make([]float64, len(data))
	copy(d, data)
	norm := 1 / (float64(len(d)) * bw * math.Sqrt(2*math.Pi))
	return func(x float64) float64 {
		sum := 0.0
		for _, xi := range d {
			u := (x - xi) / bw
			sum += math.Exp(-0.5 * u * u)
		}
		return sum * norm
	}
}

// Curve samples f at n evenly spaced points from min to max inclusive.
func Curve(f func(float64) float64, min, max float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs, ys = make([]float64, n), make([]float64, n)
	delta := (max - min) / float64(n-1)
	for i := 0; i < n; i++ {
		x := min + float64(i)*delta
		xs[i], ys[i] = x, f(x)
	}
	return xs, ys
}
