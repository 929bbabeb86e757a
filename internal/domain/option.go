package domain

import (
	"fmt"
	"math"
)

// Scenario holds the full configuration surface for a pricing run: the
// risk-neutral model parameters, the simulation grid, and the estimator
// toggles. It is an immutable value; components receive it by value and
// never write back into it.
type Scenario struct {
	Spot       float64 `yaml:"spot"`
	Strike     float64 `yaml:"strike"`
	Rate       float64 `yaml:"rate"`
	Volatility float64 `yaml:"volatility"`
	Maturity   float64 `yaml:"maturity"`

	Timesteps int   `yaml:"timesteps"`
	Paths     int   `yaml:"paths"`
	Seed      int64 `yaml:"seed"`

	// Order is the number of polynomial coefficients in the continuation
	// regression (degree Order-1).
	Order int `yaml:"order"`

	// InTheMoneyOnly restricts the continuation regression to paths whose
	// immediate exercise value is strictly positive.
	InTheMoneyOnly bool `yaml:"in_the_money_only"`

	// IndependentPaths runs the backward induction twice: once to fit the
	// continuation coefficients, then again on a fresh path set with those
	// coefficients frozen, removing look-ahead bias from the reported price.
	IndependentPaths bool `yaml:"independent_paths"`

	// Minipaths is the number of nested sub-simulations per path and
	// timestep used by the dual upper-bound estimator.
	Minipaths int `yaml:"minipaths"`
}

// Default returns the reference scenario: an at-the-money one-year put
// under a 5% rate and 20% volatility on a 64-step grid.
func Default() Scenario {
	return Scenario{
		Spot:       1.0,
		Strike:     1.0,
		Rate:       0.05,
		Volatility: 0.2,
		Maturity:   1.0,
		Timesteps:  64,
		Paths:      100000,
		Order:      3,
		Minipaths:  100,
	}
}

// Validate checks the configuration eagerly. A scenario that fails
// validation must never reach the simulation components.
func (s Scenario) Validate() error {
	if s.Spot <= 0 {
		return fmt.Errorf("spot must be positive, got %g", s.Spot)
	}
	if s.Strike <= 0 {
		return fmt.Errorf("strike must be positive, got %g", s.Strike)
	}
	if s.Volatility <= 0 {
		return fmt.Errorf("volatility must be positive, got %g", s.Volatility)
	}
	if s.Maturity <= 0 {
		return fmt.Errorf("maturity must be positive, got %g", s.Maturity)
	}
	if s.Timesteps < 2 {
		return fmt.Errorf("timesteps must be at least 2, got %d", s.Timesteps)
	}
	if s.Paths < 1 {
		return fmt.Errorf("paths must be at least 1, got %d", s.Paths)
	}
	if s.Order < 1 {
		return fmt.Errorf("polynomial order must be at least 1, got %d", s.Order)
	}
	if s.Minipaths < 1 {
		return fmt.Errorf("minipaths must be at least 1, got %d", s.Minipaths)
	}
	return nil
}

// Dt returns the year fraction between adjacent grid points. Step 0 is
// today and step Timesteps-1 is expiry, so the grid has Timesteps-1
// intervals.
func (s Scenario) Dt() float64 {
	return s.Maturity / float64(s.Timesteps-1)
}

// StepDiscount returns the one-step discount factor exp(-r*dt).
func (s Scenario) StepDiscount() float64 {
	return math.Exp(-s.Rate * s.Dt())
}
