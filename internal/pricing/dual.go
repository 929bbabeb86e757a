package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/lsmc/option-pricer/internal/domain"
	"github.com/lsmc/option-pricer/pkg/polynomial"
)

// BoundResult is the output of the dual upper-bound estimator.
type BoundResult struct {
	// UpperBound is the sample mean of the per-path bounds, StdErr its
	// standard error across paths.
	UpperBound float64
	StdErr     float64
	// PerPath holds max over t of (h[t] - M[t]) for each path.
	PerPath []float64
}

// UpperBound computes a Rogers-style dual bound on the option price from a
// completed induction pass. For any martingale M with M[0] = 0,
// E[max_t (h[t] - M[t])] dominates the true price; the martingale here is
// built from the fitted continuation value, with the conditional
// expectation at each step estimated by nMini nested two-step
// sub-simulations launched from the previous step's price on every path.
//
// The estimator is consistent as nMini grows and upward-biased in
// expectation for any finite nMini, so the bound stays valid. Cost is
// Timesteps x Paths x nMini simulated endpoints, by far the most expensive
// stage of a run.
func UpperBound(sc domain.Scenario, payoff domain.Payoff, res *Result, nMini int, gen *PathGenerator) (*BoundResult, error) {
	n, p := sc.Timesteps, sc.Paths

	martingale := make([]float64, p)
	perPath := make([]float64, p)
	for j := 0; j < p; j++ {
		// t = 0 term: M is zero there.
		perPath[j] = res.H.At(0, j)
	}

	for t := 1; t < n; t++ {
		ends := gen.GenerateShort(res.X.RawRowView(t-1), nMini)
		coeffs := res.Beta[t] // nil at expiry: continuation is zero there

		for j := 0; j < p; j++ {
			sum := 0.0
			for k := 0; k < nMini; k++ {
				y := ends.At(j, k)
				mv := payoff(y)
				if coeffs != nil {
					mv = math.Max(mv, polynomial.Eval(coeffs, y))
				}
				sum += mv
			}
			expected := sum / float64(nMini)

			target := math.Max(res.H.At(t, j), res.C.At(t, j))
			martingale[j] += target - expected

			if b := res.H.At(t, j) - martingale[j]; b > perPath[j] {
				perPath[j] = b
			}
		}
	}

	mean, sd := stat.MeanStdDev(perPath, nil)
	return &BoundResult{
		UpperBound: mean,
		StdErr:     stat.StdErr(sd, float64(p)),
		PerPath:    perPath,
	}, nil
}
