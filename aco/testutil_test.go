// Package aco_test holds shared fixtures for the colony tests.
package aco_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geom"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is the deterministic seed shared by replay tests.
	seedDet = int64(7)

	// epsTiny is the tolerance for exact-arithmetic expectations.
	epsTiny = 1e-9
)

// squareCities is the 10×10 square; the optimal tour is its perimeter (40).
func squareCities() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
}

// circleCities places n points on a gently rippled circle so distances are
// distinct and strictly positive.
func circleCities(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 100 + 2.5*float64(i%3)
		pts[i] = geom.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// randomCities draws n cities from the default canvas with the given seed.
func randomCities(t *testing.T, n int, seed int64) []geom.Point {
	t.Helper()
	pts, err := geom.RandomCities(n, geom.DefaultBounds(600, 600, 50), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	return pts
}

// testConfig is the scenario configuration: 10 ants, α=1, β=2, ρ=0.5, Q=100.
func testConfig() aco.Config {
	cfg := aco.DefaultConfig()
	cfg.Ants = 10
	cfg.Seed = seedDet

	return cfg
}

// requirePermutation asserts that tour visits every city exactly once.
func requirePermutation(t *testing.T, tour aco.Tour, n int) {
	t.Helper()
	require.NoError(t, aco.ValidatePermutation(tour, n), "tour %v is not a permutation of %d cities", tour, n)
}

// requireNonNegative asserts every pheromone cell is ≥ 0.
func requireNonNegative(t *testing.T, f *aco.Field) {
	t.Helper()
	require.GreaterOrEqual(t, f.Matrix().Min(), 0.0)
}

// mustDistances builds the distance matrix or fails the test.
func mustDistances(t testing.TB, pts []geom.Point) *matrix.Dense {
	t.Helper()
	dist, err := geom.BuildDistanceMatrix(pts)
	require.NoError(t, err)

	return dist
}

// newRand returns a seeded random source.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
