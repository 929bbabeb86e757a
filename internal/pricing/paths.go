package pricing

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lsmc/option-pricer/internal/domain"
)

// PathGenerator simulates geometric Brownian motion under the risk-neutral
// measure. The only state it owns is the seeded Gaussian source, so two
// generators built from the same seed emit bit-identical tensors for
// identical call sequences.
type PathGenerator struct {
	rate   float64
	vol    float64
	dt     float64
	normal distuv.Normal
}

// NewPathGenerator builds a generator on the scenario's grid spacing with
// an explicitly seeded source.
func NewPathGenerator(sc domain.Scenario, seed int64) *PathGenerator {
	return &PathGenerator{
		rate: sc.Rate,
		vol:  sc.Volatility,
		dt:   sc.Dt(),
		normal: distuv.Normal{
			Mu:    0,
			Sigma: 1,
			Src:   rand.NewSource(uint64(seed)),
		},
	}
}

// step returns one log-price increment: (r - sigma^2/2)*dt + sigma*sqrt(dt)*Z.
func (g *PathGenerator) step() float64 {
	return (g.rate-0.5*g.vol*g.vol)*g.dt + g.vol*math.Sqrt(g.dt)*g.normal.Rand()
}

// Generate simulates nPaths full-length paths on an nSteps grid, all
// starting from s0. The result has rows indexed by timestep and columns by
// path; row 0 is exactly s0 on every path and every entry is strictly
// positive (lognormal dynamics).
func (g *PathGenerator) Generate(nSteps, nPaths int, s0 float64) *mat.Dense {
	x := mat.NewDense(nSteps, nPaths, nil)
	for j := 0; j < nPaths; j++ {
		x.Set(0, j, s0)
		logPrice := math.Log(s0)
		for t := 1; t < nSteps; t++ {
			logPrice += g.step()
			x.Set(t, j, math.Exp(logPrice))
		}
	}
	return x
}

// GenerateShort simulates one bundle of nMini independent two-step
// mini-paths per starting price and returns only the terminal step: row i
// holds the nMini endpoints of the bundle launched from starts[i]. The
// starting row is the caller's own vector, so it is not rematerialized.
func (g *PathGenerator) GenerateShort(starts []float64, nMini int) *mat.Dense {
	ends := mat.NewDense(len(starts), nMini, nil)
	for i, s0 := range starts {
		logStart := math.Log(s0)
		for k := 0; k < nMini; k++ {
			ends.Set(i, k, math.Exp(logStart+g.step()))
		}
	}
	return ends
}
