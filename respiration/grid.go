package respiration

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

/*
Build an ordered sample grid of evenly spaced values.

	Args:
	    start: first sample
	    stop: last sample (inclusive)
	    n: number of samples, n >= 2

	Returns:
	    sample grid, [n]
*/
func Linspace(start, stop float64, n int) []float64 {
	return floats.Span(make([]float64, n), start, stop)
}

/*
Evaluate a two-variable formula over the cartesian product of two grids.

	Args:
	    xs: first independent variable grid, [nx]
	    ys: second independent variable grid, [ny]
	    f: formula of (x, y)

	Returns:
	    response surface, [ny, nx] (row i holds f(xs, ys[i]))
*/
func EvalSurface(xs, ys []float64, f func(x, y float64) float64) *mat.Dense {
	z := mat.NewDense(len(ys), len(xs), nil)
	for i, y := range ys {
		for j, x := range xs {
			z.Set(i, j, f(x, y))
		}
	}
	return z
}

// evalCurve applies f to every sample of xs.
func evalCurve(xs []float64, f func(x float64) float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	return ys
}
