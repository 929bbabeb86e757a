package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/lsmc/option-pricer/internal/domain"
	"github.com/lsmc/option-pricer/pkg/polynomial"
)

// Result is the output of one backward-induction pass. All tensors are
// indexed by (timestep, path) and owned by the caller once returned; only
// the backward fill of V mutates anything, and only before the Result is
// handed out.
type Result struct {
	// X is the simulated price tensor, row 0 pinned to the spot.
	X *mat.Dense
	// H is the immediate exercise value, payoff applied elementwise to X.
	H *mat.Dense
	// V is the option value along each path under the fitted exercise
	// policy. The terminal row equals the terminal row of H.
	V *mat.Dense
	// C is the regression estimate of the continuation value; defined for
	// interior timesteps only, zero at the boundaries.
	C *mat.Dense
	// Beta holds the continuation coefficients per timestep; nil at the
	// boundary rows which carry no regression.
	Beta [][]float64

	// NPV is the sample mean of V at time 0, StdErr its standard error.
	NPV    float64
	StdErr float64
}

// Induct runs the Longstaff-Schwartz backward recursion over a simulated
// price tensor. With beta nil the continuation coefficients are fitted at
// each interior timestep ("fit" mode); with beta supplied, e.g. from an
// earlier run on an independent path set, fitting is skipped and the given
// coefficients are applied unchanged ("apply" mode).
//
// The recursion walks t = Timesteps-2 down to 1: discount the forward
// value, fit or apply the regression, evaluate the continuation over the
// full cross-section, and exercise every path whose payoff strictly
// exceeds max(continuation, 0). The clamp matters: raw polynomial
// estimates can go negative outside the fitted domain, and comparing a
// zero payoff against a negative continuation would trigger spurious
// exercise. Time 0 carries no exercise decision and is discounted only.
func Induct(sc domain.Scenario, payoff domain.Payoff, x *mat.Dense, beta [][]float64) (*Result, error) {
	n, p := sc.Timesteps, sc.Paths

	h := mat.NewDense(n, p, nil)
	for t := 0; t < n; t++ {
		for j := 0; j < p; j++ {
			h.Set(t, j, payoff(x.At(t, j)))
		}
	}

	v := mat.NewDense(n, p, nil)
	c := mat.NewDense(n, p, nil)
	v.SetRow(n-1, h.RawRowView(n-1))

	fit := beta == nil
	if fit {
		beta = make([][]float64, n)
	}

	df := sc.StepDiscount()
	for t := n - 2; t >= 1; t-- {
		for j := 0; j < p; j++ {
			v.Set(t, j, df*v.At(t+1, j))
		}

		if fit {
			coeffs, err := fitContinuation(t, x.RawRowView(t), v.RawRowView(t), h.RawRowView(t), sc.Order, sc.InTheMoneyOnly)
			if err != nil {
				return nil, err
			}
			beta[t] = coeffs
		} else if beta[t] == nil {
			return nil, &FitError{Timestep: t, Err: fmt.Errorf("no supplied coefficients for interior timestep")}
		}

		for j := 0; j < p; j++ {
			cv := polynomial.Eval(beta[t], x.At(t, j))
			c.Set(t, j, cv)
			if h.At(t, j) > math.Max(cv, 0) {
				v.Set(t, j, h.At(t, j))
			}
		}
	}

	for j := 0; j < p; j++ {
		v.Set(0, j, df*v.At(1, j))
	}

	today := v.RawRowView(0)
	npv := stat.Mean(today, nil)
	se := stat.StdErr(stat.StdDev(today, nil), float64(p))

	return &Result{X: x, H: h, V: v, C: c, Beta: beta, NPV: npv, StdErr: se}, nil
}
