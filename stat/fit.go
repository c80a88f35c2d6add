package stat

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrTooFewPoints is returned by PolyFit if there are not more points
// than the order of the polynomial.
var ErrTooFewPoints = errors.New("stat: too few points for polynomial fit")

// PolyFit fits a polynomial of the given order to the points (x[i], y[i])
// by least squares. The returned coefficients are ordered by ascending
// power: y = c[0] + c[1]*x + c[2]*x^2 + ...
func PolyFit(x, y []float64, order int) ([]float64, error) {
	if order < 0 {
		return nil, fmt.Errorf("stat: negative polynomial order %d", order)
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("stat: length mismatch %d != %d", len(x), len(y))
	}
	n := len(x)
	if n <= order {
		return nil, ErrTooFewPoints
	}

	// Vandermonde matrix.
	a := mat.NewDense(n, order+1, nil)
	for i, xi := range x {
		p := 1.0
		for j := 0; j <= order; j++ {
			a.Set(i, j, p)
			p *= xi
		}
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return nil, err
	}
	coef := make([]float64, order+1)
	for j := range coef {
		coef[j] = c.AtVec(j)
	}
	return coef, nil
}

// PolyEval evaluates the polynomial with coefficients coef (ascending
// powers, as returned by PolyFit) at x.
func PolyEval(coef []float64, x float64) float64 {
	y := 0.0
	for j := len(coef) - 1; j >= 0; j-- {
		y = y*x + coef[j]
	}
	return y
}
