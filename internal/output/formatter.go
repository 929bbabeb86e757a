package output

import (
	"fmt"
	"strings"

	"github.com/lsmc/option-pricer/internal/domain"
	"github.com/lsmc/option-pricer/internal/pricing"
)

// FormatPricing renders a pricing result as a small console report.
func FormatPricing(sc domain.Scenario, res *pricing.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "American put  S0=%s K=%s r=%s sigma=%s T=%s\n",
		FormatValue(sc.Spot, 4), FormatValue(sc.Strike, 4),
		FormatValue(sc.Rate, 4), FormatValue(sc.Volatility, 4),
		FormatValue(sc.Maturity, 4))
	fmt.Fprintf(&b, "Grid          %d steps x %d paths, order %d\n", sc.Timesteps, sc.Paths, sc.Order)
	fmt.Fprintf(&b, "Price (LSMC)  %s +/- %s\n", FormatValue(res.NPV, 6), FormatValue(res.StdErr, 6))
	return b.String()
}

// FormatBound renders the dual upper bound next to the lower bound it
// complements.
func FormatBound(res *pricing.Result, bound *pricing.BoundResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Lower bound   %s +/- %s\n", FormatValue(res.NPV, 6), FormatValue(res.StdErr, 6))
	fmt.Fprintf(&b, "Upper bound   %s +/- %s\n", FormatValue(bound.UpperBound, 6), FormatValue(bound.StdErr, 6))
	fmt.Fprintf(&b, "Duality gap   %s\n", FormatValue(bound.UpperBound-res.NPV, 6))
	return b.String()
}
