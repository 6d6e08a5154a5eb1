// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place element-wise kernels used by the pheromone field
//     (uniform fill, multiplicative decay, symmetric reinforcement).
//   - Read-only reductions used by tests and observers (Min, Equal).
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop order over the row-major buffer.
//   - No allocations; O(r*c) time for full-matrix kernels, O(1) for AddSymmetric.

package matrix

import "math"

// Fill sets every cell to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for k := range m.data {
		m.data[k] = v
	}
}

// Scale multiplies every cell by f in place.
// Complexity: O(r*c).
func (m *Dense) Scale(f float64) {
	if f == 1 {
		return
	}
	for k := range m.data {
		m.data[k] *= f
	}
}

// AddSymmetric adds v to (i,j) and, when i != j, to (j,i).
// The matrix must be square.
// Complexity: O(1).
func (m *Dense) AddSymmetric(i, j int, v float64) error {
	if m.r != m.c {
		return matrixErrorf("AddSymmetric", ErrNonSquare)
	}
	ij, err := m.indexOf("AddSymmetric", i, j)
	if err != nil {
		return err
	}
	m.data[ij] += v
	if i != j {
		m.data[j*m.c+i] += v
	}

	return nil
}

// Min returns the smallest cell value.
// Complexity: O(r*c).
func (m *Dense) Min() float64 {
	lo := math.Inf(1)
	for _, v := range m.data {
		if v < lo {
			lo = v
		}
	}

	return lo
}

// Equal reports whether m and other have the same shape and every pair of
// cells differs by at most eps.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense, eps float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k, v := range m.data {
		if math.Abs(v-other.data[k]) > eps {
			return false
		}
	}

	return true
}
