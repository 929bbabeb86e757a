package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/lsmc/option-pricer/internal/domain"
)

func TestGenerateShapeAndStartRow(t *testing.T) {
	sc := domain.Default()
	gen := NewPathGenerator(sc, 11)

	x := gen.Generate(16, 200, sc.Spot)
	rows, cols := x.Dims()
	require.Equal(t, 16, rows)
	require.Equal(t, 200, cols)

	for j := 0; j < cols; j++ {
		assert.Equal(t, sc.Spot, x.At(0, j), "time-0 row must equal the start value exactly")
	}
	for tt := 0; tt < rows; tt++ {
		for j := 0; j < cols; j++ {
			assert.Greater(t, x.At(tt, j), 0.0, "lognormal prices are strictly positive")
		}
	}
}

func TestGenerateReproducible(t *testing.T) {
	sc := domain.Default()
	a := NewPathGenerator(sc, 1234).Generate(32, 100, sc.Spot)
	b := NewPathGenerator(sc, 1234).Generate(32, 100, sc.Spot)
	assert.True(t, mat.Equal(a, b), "same seed must reproduce bit-identical tensors")

	c := NewPathGenerator(sc, 1235).Generate(32, 100, sc.Spot)
	assert.False(t, mat.Equal(a, c), "different seeds must diverge")
}

func TestGenerateShort(t *testing.T) {
	sc := domain.Default()
	starts := []float64{0.8, 1.0, 1.3}

	a := NewPathGenerator(sc, 99).GenerateShort(starts, 40)
	rows, cols := a.Dims()
	require.Equal(t, len(starts), rows)
	require.Equal(t, 40, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			assert.Greater(t, a.At(i, k), 0.0)
		}
	}

	b := NewPathGenerator(sc, 99).GenerateShort(starts, 40)
	assert.True(t, mat.Equal(a, b))
}
