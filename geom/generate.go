package geom

import (
	"fmt"
	"math/rand"
)

// Canvas defaults used by the interactive viewer and the CLI.
const (
	DefaultWidth  = 600
	DefaultHeight = 600
	DefaultMargin = 50
)

// Bounds is an inclusive integer rectangle for generated cities.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// DefaultBounds returns the upper-half canvas region used for generated
// cities: x ∈ [margin, width−margin], y ∈ [margin, height/2−margin].
// The lower half is left free so a viewer can draw a second copy of the
// cities underneath the first.
func DefaultBounds(width, height, margin int) Bounds {
	return Bounds{
		MinX: margin,
		MaxX: width - margin,
		MinY: margin,
		MaxY: height/2 - margin,
	}
}

// Validate checks that the rectangle is non-empty.
func (b Bounds) Validate() error {
	if b.MaxX < b.MinX || b.MaxY < b.MinY {
		return fmt.Errorf("%w: x∈[%d,%d] y∈[%d,%d]", ErrBadBounds, b.MinX, b.MaxX, b.MinY, b.MaxY)
	}

	return nil
}

// RandomCities draws n cities with integer coordinates uniformly inside b.
// The same rng state always yields the same cities.
//
// Complexity: O(n).
func RandomCities(n int, b Bounds, rng *rand.Rand) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewPoints, n)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("geom: nil random source")
	}

	var (
		out = make([]Point, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = Point{
			X: float64(b.MinX + rng.Intn(b.MaxX-b.MinX+1)),
			Y: float64(b.MinY + rng.Intn(b.MaxY-b.MinY+1)),
		}
	}

	return out, nil
}
