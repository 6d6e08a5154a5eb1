// Package aco - 2-opt polishing of a finished tour.
//
// TwoOpt applies deterministic first-improvement 2-opt to a tour on the
// symmetric distance matrix: for cut points 1 ≤ i < k ≤ n−1 of the closed
// sequence it reverses [i..k] whenever
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d) < −eps,  a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// It never touches the pheromone field: it is a post-run refinement of the
// best-ever tour, not part of an iteration.
//
// Complexity: O(n²) per pass, O(k−i) per accepted move.
package aco

import "github.com/katalvlaran/antcolony/matrix"

// twoOptEps is the minimum gain for a move to be accepted.
const twoOptEps = 1e-9

// TwoOpt returns a 2-opt local optimum reached from t and its length.
// maxMoves > 0 caps the number of accepted moves; 0 runs to the optimum.
// The input tour is not modified.
func TwoOpt(t Tour, dist *matrix.Dense, maxMoves int) (Tour, float64, error) {
	if dist == nil {
		return nil, 0, ErrDimensionMismatch
	}
	n := dist.Rows()
	if err := ValidatePermutation(t, n); err != nil {
		return nil, 0, err
	}
	if n < 4 {
		// Every tour on three or fewer cities is already optimal.
		out := t.Clone()
		return out, out.Length(dist), nil
	}

	// Closed working copy: cur[n] == cur[0].
	cur := make([]int, n+1)
	copy(cur, t)
	cur[n] = cur[0]

	at := func(u, v int) float64 { return dist.Row(u)[v] }

	var (
		accepted   int
		a, b, c, d int
		i, k       int
		delta      float64
	)
	for {
		improved := false
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = (at(a, c) + at(b, d)) - (at(a, b) + at(c, d))
				if delta >= -twoOptEps {
					continue
				}
				reverseSegment(cur, i, k)
				accepted++
				improved = true
				if maxMoves > 0 && accepted >= maxMoves {
					out := Tour(cur[:n]).Clone()
					return out, out.Length(dist), nil
				}
			}
		}
		if !improved {
			break
		}
	}

	out := Tour(cur[:n]).Clone()

	return out, out.Length(dist), nil
}

// reverseSegment reverses s[i..k] in place.
func reverseSegment(s []int, i, k int) {
	for i < k {
		s[i], s[k] = s[k], s[i]
		i++
		k--
	}
}
