package domain

import "math"

// Payoff maps an underlying price to an immediate exercise value. It must
// be pure: no shared state, same output for the same price. Callers apply
// it elementwise across the path cross-section.
type Payoff func(price float64) float64

// Put returns the vanilla put payoff max(strike - price, 0).
func Put(strike float64) Payoff {
	return func(price float64) float64 {
		return math.Max(strike-price, 0)
	}
}

// Call returns the vanilla call payoff max(price - strike, 0).
func Call(strike float64) Payoff {
	return func(price float64) float64 {
		return math.Max(price-strike, 0)
	}
}
