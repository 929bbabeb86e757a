// Package polynomial provides least-squares polynomial fitting and
// evaluation over float64 samples. Coefficients are stored in ascending
// order: coeffs[k] multiplies x^k.
package polynomial

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Fit solves the least-squares problem for a polynomial with order
// coefficients (degree order-1) mapping xs to ys. The design matrix is the
// Vandermonde matrix of xs; the solve goes through gonum's QR
// factorization. Under-determined systems (fewer samples than
// coefficients) and singular design matrices are errors, not warnings.
func Fit(xs, ys []float64, order int) ([]float64, error) {
	if order < 1 {
		return nil, fmt.Errorf("order must be at least 1, got %d", order)
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("sample length mismatch: %d xs vs %d ys", len(xs), len(ys))
	}
	if len(xs) < order {
		return nil, fmt.Errorf("need at least %d samples for %d coefficients, got %d", order, order, len(xs))
	}

	vand := mat.NewDense(len(xs), order, nil)
	for i, x := range xs {
		p := 1.0
		for j := 0; j < order; j++ {
			vand.Set(i, j, p)
			p *= x
		}
	}

	var beta mat.VecDense
	if err := beta.SolveVec(vand, mat.NewVecDense(len(ys), ys)); err != nil {
		return nil, fmt.Errorf("least-squares solve failed: %w", err)
	}

	coeffs := make([]float64, order)
	copy(coeffs, beta.RawVector().Data)
	return coeffs, nil
}

// Eval evaluates the polynomial at x by Horner's rule.
func Eval(coeffs []float64, x float64) float64 {
	v := 0.0
	for k := len(coeffs) - 1; k >= 0; k-- {
		v = v*x + coeffs[k]
	}
	return v
}

// EvalAll evaluates the polynomial at every sample point and returns a new
// slice.
func EvalAll(coeffs, xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Eval(coeffs, x)
	}
	return out
}
