package aco

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrConfiguration is the umbrella sentinel for every setup-time rejection.
// Specific causes below are reported together with it, so both
// errors.Is(err, ErrConfiguration) and errors.Is(err, ErrInvalidAnts) hold.
var ErrConfiguration = errors.New("aco: invalid configuration")

// Configuration causes.
var (
	ErrTooFewCities       = errors.New("aco: at least two cities are required")
	ErrDegenerateCities   = errors.New("aco: all cities coincide (every tour has zero length)")
	ErrInvalidAnts        = errors.New("aco: ant count must be >= 1")
	ErrInvalidAlpha       = errors.New("aco: alpha must be a finite value >= 0")
	ErrInvalidBeta        = errors.New("aco: beta must be a finite value >= 0")
	ErrInvalidEvaporation = errors.New("aco: evaporation rate must lie in [0,1]")
	ErrInvalidDeposit     = errors.New("aco: deposit constant must be a finite value > 0")
	ErrInvalidWorkers     = errors.New("aco: workers must be >= 0")
)

// Runtime/argument errors returned by Field and tour helpers.
var (
	// ErrDimensionMismatch is returned when a tour does not match the field
	// size or is not a permutation.
	ErrDimensionMismatch = errors.New("aco: dimension mismatch")

	// ErrNonPositiveLength is returned by Field.Deposit for a tour length
	// that is zero, negative or NaN.
	ErrNonPositiveLength = errors.New("aco: tour length must be > 0")

	// ErrInvalidRate is returned by Field.Evaporate for a rate outside [0,1].
	ErrInvalidRate = errors.New("aco: rate must lie in [0,1]")
)

// configErrorf reports cause under ErrConfiguration with extra context.
func configErrorf(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConfiguration, cause, fmt.Sprintf(format, args...))
}

// Tour is an ordered permutation of city indices 0..n-1. The cycle is
// implicitly closed: the last city connects back to the first.
type Tour []int

// Clone returns an independent copy of t (nil stays nil).
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}

	return append(Tour(nil), t...)
}

// State is the solver's progress record.
//
// Best-ever fields only change on a strict improvement and are therefore
// non-increasing in distance. Iteration fields are overwritten by every Step.
type State struct {
	// Iteration is the number of completed iterations (starts at 0).
	Iteration int

	// BestEverTour is the shortest tour seen so far (nil before the first Step).
	BestEverTour Tour

	// BestEverDistance is +Inf before the first Step.
	BestEverDistance float64

	// BestEverIteration is the 0-based index of the iteration that found
	// BestEverTour, or -1 before the first Step.
	BestEverIteration int

	// IterationTour is the shortest tour of the most recent iteration.
	IterationTour Tour

	// IterationDistance is +Inf before the first Step.
	IterationDistance float64
}

// newState returns the pre-run state.
func newState() State {
	return State{
		BestEverDistance:  math.Inf(1),
		BestEverIteration: -1,
		IterationDistance: math.Inf(1),
	}
}

// clone deep-copies the tour slices.
func (s State) clone() State {
	s.BestEverTour = s.BestEverTour.Clone()
	s.IterationTour = s.IterationTour.Clone()

	return s
}

// IterationResult is returned by Step.
type IterationResult struct {
	// Index is the 0-based index of the iteration that just completed.
	Index int

	BestEverTour     Tour
	BestEverDistance float64

	IterationTour     Tour
	IterationDistance float64

	// Improved reports whether this iteration lowered the best-ever distance.
	Improved bool
}

// Stats is the end-of-run summary handed to a reporting layer.
type Stats struct {
	RunID         string
	Cities        int
	Config        Config
	Iterations    int
	BestDistance  float64
	BestTour      Tour
	BestIteration int
	// Fallbacks counts selections resolved by the uniform zero-desirability
	// rule instead of the roulette wheel.
	Fallbacks int
	Elapsed   time.Duration
}
