package pricing

import (
	"fmt"

	"github.com/lsmc/option-pricer/internal/domain"
)

// boundSeedOffset separates the upper-bound estimator's random stream from
// the pricing stream, so Price and UpperBound are each reproducible
// regardless of call order.
const boundSeedOffset = 1

// Pricer orchestrates the simulation, regression, and backward induction
// for one scenario. It holds no mutable computation state; every Price
// call allocates fresh tensors and replays the seeded stream from the
// start.
type Pricer struct {
	scenario domain.Scenario
	payoff   domain.Payoff
	seed     int64
	logger   Logger
}

// NewPricer validates the scenario and builds a pricer with the default
// put payoff. A zero seed means the run is not reproducible: the fallback
// seed source is consulted once, at construction.
func NewPricer(sc domain.Scenario) (*Pricer, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	seed := sc.Seed
	if seed == 0 {
		seed = seedFunc()
	}
	return &Pricer{
		scenario: sc,
		payoff:   domain.Put(sc.Strike),
		seed:     seed,
		logger:   NopLogger{},
	}, nil
}

// SetPayoff replaces the default put payoff. The function must be pure.
func (p *Pricer) SetPayoff(payoff domain.Payoff) {
	if payoff != nil {
		p.payoff = payoff
	}
}

// SetLogger sets the logger. If nil is provided, a no-op logger is used.
func (p *Pricer) SetLogger(l Logger) {
	if l == nil {
		p.logger = NopLogger{}
		return
	}
	p.logger = l
}

// Price runs the Longstaff-Schwartz estimator. With IndependentPaths set
// it runs the induction twice: the first pass fits the continuation
// coefficients, the second prices a freshly simulated path set with those
// coefficients frozen. The second pass draws from the same stream, so its
// paths are independent of the first pass yet the whole protocol stays
// reproducible.
func (p *Pricer) Price() (*Result, error) {
	sc := p.scenario
	gen := NewPathGenerator(sc, p.seed)

	p.logger.Infof("pricing %d paths on %d steps, seed %d", sc.Paths, sc.Timesteps, p.seed)

	x := gen.Generate(sc.Timesteps, sc.Paths, sc.Spot)
	res, err := Induct(sc, p.payoff, x, nil)
	if err != nil {
		return nil, err
	}
	if !sc.IndependentPaths {
		return res, nil
	}

	p.logger.Debugf("fit pass npv=%g, repricing on independent paths", res.NPV)

	x2 := gen.Generate(sc.Timesteps, sc.Paths, sc.Spot)
	return Induct(sc, p.payoff, x2, res.Beta)
}

// UpperBound runs the dual estimator over a completed pricing result using
// the scenario's mini-path count. The nested simulations use a
// deterministically derived sub-stream of the pricer's seed.
func (p *Pricer) UpperBound(res *Result) (*BoundResult, error) {
	sc := p.scenario
	gen := NewPathGenerator(sc, p.seed+boundSeedOffset)

	p.logger.Infof("dual bound with %d minipaths per path and step", sc.Minipaths)

	return UpperBound(sc, p.payoff, res, sc.Minipaths, gen)
}
