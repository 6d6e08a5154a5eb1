package aco

import (
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// InitialPheromone is the uniform starting intensity of every cell.
const InitialPheromone = 1.0

// Field is the N×N pheromone trail matrix.
//
// Invariants:
//   - every cell is ≥ 0 as long as rates stay in [0,1] and deposits are ≥ 0;
//   - symmetric in practice, because Deposit always writes (a,b) and (b,a)
//     together. Nothing enforces it structurally.
//
// A Field is not safe for concurrent mutation; concurrent readers are fine
// while no Evaporate/Deposit is in flight.
type Field struct {
	tau *matrix.Dense
}

// NewField returns an n×n field with every cell (diagonal included) set to
// InitialPheromone.
func NewField(n int) (*Field, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	tau, err := matrix.NewSquare(n, InitialPheromone)
	if err != nil {
		return nil, err
	}

	return &Field{tau: tau}, nil
}

// Size returns N.
func (f *Field) Size() int { return f.tau.Rows() }

// At returns τ[i][j].
func (f *Field) At(i, j int) (float64, error) { return f.tau.At(i, j) }

// Matrix returns a deep copy of the trail matrix.
func (f *Field) Matrix() *matrix.Dense { return f.tau.Clone() }

// row exposes row i for the constructor's hot loop (read-only).
func (f *Field) row(i int) []float64 { return f.tau.Row(i) }

// Evaporate multiplies every cell by (1 − rate).
// rate 0 is a no-op; rate 1 zeroes the field.
//
// Complexity: O(n²).
func (f *Field) Evaporate(rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return ErrInvalidRate
	}
	f.tau.Scale(1 - rate)

	return nil
}

// Deposit adds q/length to (a,b) and (b,a) for every consecutive pair of t,
// including the closing edge from the last city back to the first.
//
// Contract:
//   - t is a permutation of 0..N-1 (ErrDimensionMismatch otherwise);
//   - length > 0 (ErrNonPositiveLength otherwise);
//   - q ≥ 0 and finite (ErrInvalidDeposit otherwise). q == 0 leaves the field unchanged.
//
// The field is not modified when an error is returned.
//
// Complexity: O(n).
func (f *Field) Deposit(t Tour, length, q float64) error {
	if err := ValidatePermutation(t, f.Size()); err != nil {
		return err
	}
	if math.IsNaN(length) || length <= 0 {
		return ErrNonPositiveLength
	}
	if !finiteNonNegative(q) {
		return ErrInvalidDeposit
	}
	f.deposit(t, q/length)

	return nil
}

// deposit is the unchecked inner loop shared with the Solver, whose tours
// are permutations by construction.
func (f *Field) deposit(t Tour, delta float64) {
	n := len(t)
	for k := 0; k < n; k++ {
		// Indices are valid for a permutation of the field size.
		_ = f.tau.AddSymmetric(t[k], t[(k+1)%n], delta)
	}
}
