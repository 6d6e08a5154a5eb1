package geom

import "github.com/katalvlaran/antcolony/matrix"

// BuildDistanceMatrix computes the N×N Euclidean distance matrix of points.
//
// Contract:
//   - len(points) ≥ 2 and every coordinate finite.
//   - Duplicate coordinates are allowed and yield a zero-distance edge.
//   - Result is symmetric by construction with an exact zero diagonal.
//
// The function is pure; the returned matrix is owned by the caller and is
// expected to stay read-only afterwards.
//
// Complexity: O(n²) time and memory (one Hypot per unordered pair).
func BuildDistanceMatrix(points []Point) (*matrix.Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	var n = len(points)
	dist, err := matrix.NewSquare(n, 0)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			// Indices are in range by construction.
			_ = dist.Set(i, j, d)
			_ = dist.Set(j, i, d)
		}
	}

	return dist, nil
}
