package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/lsmc/option-pricer/internal/domain"
)

// The finite-difference reference price for the default scenario
// (S0=1, K=1, r=0.05, sigma=0.2, T=1), computed by an independently
// validated PDE solver. Used only as a comparison constant.
const referencePrice = 0.060879

func TestNewPricerRejectsInvalidScenario(t *testing.T) {
	sc := domain.Default()
	sc.Timesteps = 1
	_, err := NewPricer(sc)
	assert.Error(t, err)
}

func TestPriceReproducible(t *testing.T) {
	sc := domain.Default()
	sc.Timesteps = 16
	sc.Paths = 1000
	sc.Seed = 42

	a, err := NewPricer(sc)
	require.NoError(t, err)
	b, err := NewPricer(sc)
	require.NoError(t, err)

	r1, err := a.Price()
	require.NoError(t, err)
	r2, err := b.Price()
	require.NoError(t, err)

	assert.True(t, mat.Equal(r1.X, r2.X), "path tensors must be bit-identical for a fixed seed")
	assert.True(t, mat.Equal(r1.V, r2.V))
	assert.Equal(t, r1.NPV, r2.NPV)
	assert.Equal(t, r1.StdErr, r2.StdErr)

	// Repeat invocations on the same pricer replay the stream.
	r3, err := a.Price()
	require.NoError(t, err)
	assert.Equal(t, r1.NPV, r3.NPV)
}

func TestPriceZeroSeedUsesFallbackSource(t *testing.T) {
	orig := seedFunc
	SetSeedFunc(func() int64 { return 77 })
	defer SetSeedFunc(orig)

	sc := domain.Default()
	sc.Timesteps = 8
	sc.Paths = 200
	sc.Seed = 0

	a, err := NewPricer(sc)
	require.NoError(t, err)
	r1, err := a.Price()
	require.NoError(t, err)

	sc.Seed = 77
	b, err := NewPricer(sc)
	require.NoError(t, err)
	r2, err := b.Price()
	require.NoError(t, err)

	assert.Equal(t, r2.NPV, r1.NPV, "seed 0 must defer to the fallback seed source")
}

func TestPriceIndependentPathsProtocol(t *testing.T) {
	sc := domain.Default()
	sc.Timesteps = 16
	sc.Paths = 2000
	sc.Seed = 13
	sc.IndependentPaths = true

	pricer, err := NewPricer(sc)
	require.NoError(t, err)
	res, err := pricer.Price()
	require.NoError(t, err)

	// The reported tensors come from the second, independent path set; the
	// coefficients were frozen by the first pass, so the result still
	// carries an interior coefficient row per regression step.
	require.Len(t, res.Beta, sc.Timesteps)
	assert.Nil(t, res.Beta[0])
	assert.Nil(t, res.Beta[sc.Timesteps-1])
	for tt := 1; tt < sc.Timesteps-1; tt++ {
		assert.Len(t, res.Beta[tt], sc.Order, "timestep %d", tt)
	}

	// Pass 2 paths differ from a plain single-pass run on the same seed.
	scSingle := sc
	scSingle.IndependentPaths = false
	single, err := NewPricer(scSingle)
	require.NoError(t, err)
	sres, err := single.Price()
	require.NoError(t, err)
	assert.False(t, mat.Equal(res.X, sres.X))
}

func TestPricePayoffOverride(t *testing.T) {
	sc := domain.Default()
	sc.Timesteps = 8
	sc.Paths = 500
	sc.Seed = 31

	pricer, err := NewPricer(sc)
	require.NoError(t, err)
	pricer.SetPayoff(domain.Call(sc.Strike))

	res, err := pricer.Price()
	require.NoError(t, err)
	assert.Greater(t, res.NPV, 0.0)
}

func TestPriceConvergenceRate(t *testing.T) {
	// Monte Carlo standard error scales like 1/sqrt(n): 100x the paths
	// should shrink the standard error by a factor near 10.
	sc := domain.Default()
	sc.Timesteps = 16
	sc.Seed = 3

	sc.Paths = 1000
	small, err := NewPricer(sc)
	require.NoError(t, err)
	rSmall, err := small.Price()
	require.NoError(t, err)

	sc.Paths = 100000
	big, err := NewPricer(sc)
	require.NoError(t, err)
	rBig, err := big.Price()
	require.NoError(t, err)

	ratio := rSmall.StdErr / rBig.StdErr
	assert.Greater(t, ratio, 6.0, "stddev ratio %g too far below sqrt(100)", ratio)
	assert.Less(t, ratio, 16.0, "stddev ratio %g too far above sqrt(100)", ratio)
}

func TestPriceReferenceScenario(t *testing.T) {
	// The end-to-end scenario from the contract: the reported price must
	// land in the neighborhood of the finite-difference reference.
	sc := domain.Scenario{
		Spot:             1.0,
		Strike:           1.0,
		Rate:             0.05,
		Volatility:       0.2,
		Maturity:         1.0,
		Timesteps:        64,
		Paths:            100000,
		Seed:             1,
		Order:            3,
		InTheMoneyOnly:   false,
		IndependentPaths: true,
		Minipaths:        100,
	}

	pricer, err := NewPricer(sc)
	require.NoError(t, err)
	res, err := pricer.Price()
	require.NoError(t, err)

	assert.Greater(t, res.StdErr, 0.0)
	assert.Less(t, res.StdErr, 0.01)
	assert.InDelta(t, referencePrice, res.NPV, 0.005,
		"npv %g strayed from the reference %g", res.NPV, referencePrice)
}

func TestInTheMoneyRegressionReducesBias(t *testing.T) {
	// Directional property: averaged across many seeds, restricting the
	// regression to in-the-money paths lands the mean price at least as
	// close to the reference as the full-cross-section fit. Modest slack
	// absorbs the residual Monte Carlo noise of the seed family.
	const repetitions = 50

	base := domain.Default()
	base.Timesteps = 64
	base.Paths = 2000
	base.IndependentPaths = true

	mean := func(inTheMoney bool) float64 {
		npvs := make([]float64, 0, repetitions)
		for rep := 0; rep < repetitions; rep++ {
			sc := base
			sc.Seed = int64(1000 + rep)
			sc.InTheMoneyOnly = inTheMoney
			pricer, err := NewPricer(sc)
			require.NoError(t, err)
			res, err := pricer.Price()
			require.NoError(t, err)
			npvs = append(npvs, res.NPV)
		}
		return stat.Mean(npvs, nil)
	}

	distFull := referencePrice - mean(false)
	distITM := referencePrice - mean(true)

	if distFull < 0 {
		distFull = -distFull
	}
	if distITM < 0 {
		distITM = -distITM
	}
	assert.LessOrEqual(t, distITM, distFull+1e-3,
		"in-the-money restriction should not move the mean price away from the reference")
}
