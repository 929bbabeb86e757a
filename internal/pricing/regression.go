package pricing

import (
	"fmt"

	"github.com/lsmc/option-pricer/pkg/polynomial"
)

// FitError reports an ill-conditioned continuation regression: too few
// in-the-money paths for the requested polynomial order, or a singular
// design matrix. It is fatal to the pricing run that raised it; there is
// no fallback to a lower order.
type FitError struct {
	Timestep int
	Err      error
}

func (e *FitError) Error() string {
	return fmt.Sprintf("continuation regression failed at timestep %d: %v", e.Timestep, e.Err)
}

func (e *FitError) Unwrap() error { return e.Err }

// fitContinuation regresses the discounted forward values onto a
// polynomial in the current prices. When inTheMoneyOnly is set the fit
// uses only paths with strictly positive payoff; an empty or
// under-determined subset is a FitError, never a silent substitution.
// The timestep t is carried for error reporting only.
func fitContinuation(t int, prices, values, payoffs []float64, order int, inTheMoneyOnly bool) ([]float64, error) {
	xs, ys := prices, values
	if inTheMoneyOnly {
		xs = make([]float64, 0, len(prices))
		ys = make([]float64, 0, len(values))
		for j, h := range payoffs {
			if h > 0 {
				xs = append(xs, prices[j])
				ys = append(ys, values[j])
			}
		}
		if len(xs) == 0 {
			return nil, &FitError{Timestep: t, Err: fmt.Errorf("no in-the-money paths")}
		}
	}

	coeffs, err := polynomial.Fit(xs, ys, order)
	if err != nil {
		return nil, &FitError{Timestep: t, Err: err}
	}
	return coeffs, nil
}
