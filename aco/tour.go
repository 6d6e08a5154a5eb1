// Package aco - tour utilities.
//
// Helpers that operate on tour structure and on the cached distance matrix:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - (Tour).Length: closed-cycle length from cached distances.
//   - (Tour).Canonical: rotation/orientation-normalized copy for comparisons.
package aco

import (
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// ValidatePermutation checks that t is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(t Tour, n int) error {
	if n <= 0 || len(t) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range t {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// Length returns the closed-cycle length of t, read from the cached
// distance matrix dist (never recomputed from coordinates), rounded to 1e-9.
//
// Contract: t is a permutation of the rows of dist.
//
// Complexity: O(n).
func (t Tour) Length(dist *matrix.Dense) float64 {
	n := len(t)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += dist.Row(t[i])[t[i+1]]
	}
	sum += dist.Row(t[n-1])[t[0]] // closing edge

	return round1e9(sum)
}

// Canonical returns a copy of t rotated so the smallest city comes first and
// oriented so that its second entry is smaller than its last. Two tours
// describe the same undirected cycle iff their canonical forms are equal.
//
// Complexity: O(n).
func (t Tour) Canonical() Tour {
	n := len(t)
	if n == 0 {
		return Tour{}
	}

	pivot := 0
	for i := 1; i < n; i++ {
		if t[i] < t[pivot] {
			pivot = i
		}
	}

	out := make(Tour, n)
	for i := 0; i < n; i++ {
		out[i] = t[(pivot+i)%n]
	}
	if n > 2 && out[1] > out[n-1] {
		// Reverse positions 1..n-1 to flip direction around the fixed start.
		for i, j := 1, n-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
