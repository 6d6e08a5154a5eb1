package aco

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antcolony/matrix"
)

// Constructor builds tours with the probabilistic transition rule.
//
// It owns reusable scratch buffers, so one Constructor must not be used by
// two goroutines at once. Several Constructors may share the same Field and
// distance matrix as long as neither is written while they run.
type Constructor struct {
	field *Field
	dist  *matrix.Dense
	alpha float64
	beta  float64

	unvisited []int     // candidates in ascending city order
	weights   []float64 // desirability per candidate

	fallbacks int
}

// NewConstructor binds a constructor to a field and a distance matrix of the
// same size.
func NewConstructor(field *Field, dist *matrix.Dense, alpha, beta float64) (*Constructor, error) {
	if field == nil || dist == nil {
		return nil, ErrDimensionMismatch
	}
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, err
	}
	if dist.Rows() != field.Size() {
		return nil, ErrDimensionMismatch
	}
	n := dist.Rows()

	return &Constructor{
		field:     field,
		dist:      dist,
		alpha:     alpha,
		beta:      beta,
		unvisited: make([]int, 0, n),
		weights:   make([]float64, n),
	}, nil
}

// Fallbacks returns how many selections were resolved by the uniform rule
// because every candidate had zero desirability.
func (c *Constructor) Fallbacks() int { return c.fallbacks }

// Construct builds a new tour using rng.
func (c *Constructor) Construct(rng *rand.Rand) Tour {
	return c.ConstructInto(nil, rng)
}

// ConstructInto builds a tour into dst (reallocated if too small) and
// returns it.
//
// Steps:
//  1. uniform random start city;
//  2. candidates = every other city, ascending;
//  3. repeatedly pick the next city with selectNext, remove it from the
//     candidates (order preserved) and move there.
//
// The result is always a permutation of 0..n-1.
//
// Complexity: O(n²) time, no allocations when dst has capacity n.
func (c *Constructor) ConstructInto(dst Tour, rng *rand.Rand) Tour {
	n := c.dist.Rows()
	if cap(dst) < n {
		dst = make(Tour, n)
	}
	dst = dst[:n]

	start := rng.Intn(n)
	dst[0] = start

	unv := c.unvisited[:0]
	for v := 0; v < n; v++ {
		if v != start {
			unv = append(unv, v)
		}
	}

	var (
		cur = start
		pos int
		k   int
	)
	for pos = 1; pos < n; pos++ {
		k = c.selectNext(cur, unv, rng)
		cur = unv[k]
		dst[pos] = cur
		unv = append(unv[:k], unv[k+1:]...)
	}
	c.unvisited = unv[:0]

	return dst
}

// selectNext returns the index in unv of the next city.
//
// Implementation:
//   - Stage 1: score every candidate c as τ^α · (1/d)^β, or 0 when d == 0.
//   - Stage 2: a zero (or NaN) total falls back to a uniform pick.
//   - Stage 3: an overflowed total picks the first infinite score; when only
//     the sum overflowed, scores are divided by their maximum first.
//   - Stage 4: one draw r ∈ [0,1) is compared with the running sum of
//     normalized weights; the first candidate whose cumulative probability
//     reaches r wins.
//
// Behavior highlights:
//   - The last candidate is taken if rounding leaves r above every partial sum.
//   - Stage 3 consumes no random draw.
//
// Complexity: O(len(unv)).
func (c *Constructor) selectNext(cur int, unv []int, rng *rand.Rand) int {
	var (
		tauRow  = c.field.row(cur)
		distRow = c.dist.Row(cur)
		weights = c.weights[:len(unv)]
		total   float64
		w, d    float64
	)
	for i, city := range unv {
		w = 0
		if d = distRow[city]; d > 0 {
			w = fastPow(tauRow[city], c.alpha) * fastPow(1.0/d, c.beta)
		}
		weights[i] = w
		total += w
	}

	if total == 0 || math.IsNaN(total) {
		c.fallbacks++
		return rng.Intn(len(unv))
	}
	if math.IsInf(total, 1) {
		// A near-zero distance can push one score past MaxFloat64.
		if k := firstInf(weights); k >= 0 {
			return k
		}
		total = rescale(weights)
	}

	r := rng.Float64()
	cumulative := 0.0
	for i := range weights {
		cumulative += weights[i] / total
		if cumulative >= r {
			return i
		}
	}

	return len(unv) - 1
}

// firstInf returns the index of the first +Inf weight, or -1.
func firstInf(weights []float64) int {
	for i, w := range weights {
		if math.IsInf(w, 1) {
			return i
		}
	}

	return -1
}

// rescale divides every finite weight by the largest one and returns the
// new total, which is at most len(weights).
func rescale(weights []float64) float64 {
	var top, total float64
	for _, w := range weights {
		if w > top {
			top = w
		}
	}
	for i := range weights {
		weights[i] /= top
		total += weights[i]
	}

	return total
}

// fastPow avoids math.Pow for the common exponents 0, 1 and 2.
func fastPow(x, p float64) float64 {
	switch p {
	case 0:
		return 1.0
	case 1:
		return x
	case 2:
		return x * x
	}

	return math.Pow(x, p)
}
