// Package geom provides the planar city model consumed by the colony solver:
// immutable 2D points, the cached Euclidean distance matrix, and a seeded
// random city generator.
//
// Cities are identified by their index in the ordered slice handed to
// BuildDistanceMatrix; the ordering is fixed for the lifetime of a run.
package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooFewPoints is returned when fewer than two points are supplied.
	ErrTooFewPoints = errors.New("geom: at least two points are required")

	// ErrNonFinite is returned when a coordinate is NaN or ±Inf.
	ErrNonFinite = errors.New("geom: non-finite coordinate")

	// ErrBadBounds is returned when generator bounds are empty or inverted.
	ErrBadBounds = errors.New("geom: invalid bounds")
)

// Point is an immutable 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// AllCoincident reports whether every point equals the first one.
// This is the only configuration in which a Hamiltonian cycle has zero length.
// Returns false for an empty slice.
func AllCoincident(points []Point) bool {
	if len(points) == 0 {
		return false
	}
	for _, p := range points[1:] {
		if p != points[0] {
			return false
		}
	}

	return true
}

// validatePoints checks count and finiteness.
func validatePoints(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w (got %d)", ErrTooFewPoints, len(points))
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("%w: point %d = %v", ErrNonFinite, i, p)
		}
	}

	return nil
}
