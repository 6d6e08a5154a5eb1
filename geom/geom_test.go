package geom_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcolony/geom"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// TestBuildDistanceMatrix_Square checks the 10×10 square: sides 10, diagonals 10√2.
func TestBuildDistanceMatrix_Square(t *testing.T) {
	pts := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

	dist, err := geom.BuildDistanceMatrix(pts)
	require.NoError(t, err)
	require.Equal(t, 4, dist.Rows())

	for i := 0; i < 4; i++ {
		d, _ := dist.At(i, i)
		require.Equal(t, 0.0, d)
	}

	side, _ := dist.At(0, 1)
	require.Equal(t, 10.0, side)

	diag, _ := dist.At(0, 2)
	require.InDelta(t, 10*math.Sqrt2, diag, 1e-12)

	require.NoError(t, matrix.ValidateSymmetric(dist, 0))
}

// TestBuildDistanceMatrix_Duplicates allows coincident cities (zero edge).
func TestBuildDistanceMatrix_Duplicates(t *testing.T) {
	pts := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 4, Y: 5}}

	dist, err := geom.BuildDistanceMatrix(pts)
	require.NoError(t, err)

	d01, _ := dist.At(0, 1)
	d12, _ := dist.At(1, 2)
	require.Equal(t, 0.0, d01)
	require.Equal(t, 5.0, d12)
}

// TestBuildDistanceMatrix_Errors covers the input guards.
func TestBuildDistanceMatrix_Errors(t *testing.T) {
	_, err := geom.BuildDistanceMatrix(nil)
	require.ErrorIs(t, err, geom.ErrTooFewPoints)

	_, err = geom.BuildDistanceMatrix([]geom.Point{{X: 1, Y: 2}})
	require.ErrorIs(t, err, geom.ErrTooFewPoints)

	_, err = geom.BuildDistanceMatrix([]geom.Point{{X: 0, Y: 0}, {X: math.Inf(1), Y: 0}})
	require.ErrorIs(t, err, geom.ErrNonFinite)
}

// TestBuildDistanceMatrix_Deterministic runs the builder twice on the same input.
func TestBuildDistanceMatrix_Deterministic(t *testing.T) {
	pts, err := geom.RandomCities(25, geom.DefaultBounds(600, 600, 50), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	a, err := geom.BuildDistanceMatrix(pts)
	require.NoError(t, err)
	b, err := geom.BuildDistanceMatrix(pts)
	require.NoError(t, err)
	require.True(t, a.Equal(b, 0))
}

// TestAllCoincident distinguishes degenerate city sets.
func TestAllCoincident(t *testing.T) {
	require.False(t, geom.AllCoincident(nil))
	require.True(t, geom.AllCoincident([]geom.Point{{X: 3, Y: 3}, {X: 3, Y: 3}}))
	require.False(t, geom.AllCoincident([]geom.Point{{X: 3, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 4}}))
}

// TestRandomCities checks bounds, integrality and seed replay.
func TestRandomCities(t *testing.T) {
	b := geom.DefaultBounds(geom.DefaultWidth, geom.DefaultHeight, geom.DefaultMargin)
	require.Equal(t, geom.Bounds{MinX: 50, MaxX: 550, MinY: 50, MaxY: 250}, b)

	first, err := geom.RandomCities(40, b, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := geom.RandomCities(40, b, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, first, second)

	for _, p := range first {
		require.GreaterOrEqual(t, p.X, 50.0)
		require.LessOrEqual(t, p.X, 550.0)
		require.GreaterOrEqual(t, p.Y, 50.0)
		require.LessOrEqual(t, p.Y, 250.0)
		require.Equal(t, math.Trunc(p.X), p.X)
	}
}

// TestRandomCities_Errors covers invalid counts, bounds and nil rng.
func TestRandomCities_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := geom.RandomCities(1, geom.DefaultBounds(600, 600, 50), rng)
	require.ErrorIs(t, err, geom.ErrTooFewPoints)

	_, err = geom.RandomCities(5, geom.Bounds{MinX: 10, MaxX: 0}, rng)
	require.ErrorIs(t, err, geom.ErrBadBounds)

	_, err = geom.RandomCities(5, geom.DefaultBounds(600, 600, 50), nil)
	require.Error(t, err)
}
