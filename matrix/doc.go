// SPDX-License-Identifier: MIT

// Package matrix provides the dense square storage shared by the colony
// solver: the read-only Euclidean distance matrix and the mutable pheromone
// field.
//
// Dense is a row-major matrix backed by a single flat []float64. Public
// indexers (At/Set) are bounds-checked and return sentinel errors; hot loops
// use Row to obtain a read-only view of one row without per-element checks.
//
// Element-wise kernels (Fill, Scale, AddSymmetric) mutate the receiver in a
// fixed i→j order so that repeated runs produce bit-identical results.
//
// Errors:
//   - ErrInvalidDimensions for non-positive shapes.
//   - ErrIndexOutOfBounds for out-of-range indices.
//   - ErrNonSquare / ErrAsymmetry / ErrNaNInf from the validators.
//
// All sentinels are matched with errors.Is; call sites may wrap them.
package matrix
