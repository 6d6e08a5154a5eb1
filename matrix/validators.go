// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical validation checks shared by the solver's input guards.
//   - Plain sentinel errors wrapped with a validator tag; callers match with errors.Is.
//
// Determinism & Performance:
//   - Pure, allocation-free; symmetry scans the upper triangle only (O(n²)).

package matrix

import "math"

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks that no cell is NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if m == nil {
		return matrixErrorf("ValidateFinite", ErrNilMatrix)
	}
	for _, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrixErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks |a_ij − a_ji| ≤ eps for every i<j.
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n    = m.r
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > eps {
				return matrixErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
