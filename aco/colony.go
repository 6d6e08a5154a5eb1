package aco

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/antcolony/geom"
	"github.com/katalvlaran/antcolony/matrix"
)

// Solver runs the colony. It owns the distance matrix, the pheromone field,
// the random source and the progress state; nothing is process-global, so
// any number of Solvers may coexist.
type Solver struct {
	cfg    Config
	cities []geom.Point
	dist   *matrix.Dense // read-only after New
	field  *Field

	rng      *rand.Rand  // injected by WithRand, nil otherwise
	streams  *antStreams // base source plus one source per ant
	builders []*Constructor

	tours   []Tour    // per-ant scratch, reused across iterations
	lengths []float64 // per-ant scratch

	state State

	logger    *slog.Logger
	observers []Observer
	runID     string
	started   time.Time
}

// New validates cities and cfg, builds the distance matrix and a pheromone
// field initialized to InitialPheromone, and returns a ready Solver.
//
// Implementation:
//   - Stage 1: reject too few cities, a bad Config, and all-coincident cities.
//   - Stage 2: build the distance matrix once; it is read-only afterwards.
//   - Stage 3: allocate per-ant tours, one Constructor per worker, and the
//     random sources (WithRand, else Config.Seed, else a fixed fallback).
//
// Behavior highlights:
//   - The cities slice is copied; later edits by the caller are not seen.
//   - Options run before the random sources are created.
//
// Complexity: O(n²) time and memory for the distance and pheromone matrices.
//
// Errors (all match ErrConfiguration):
//   - ErrTooFewCities when len(cities) < 2;
//   - ErrDegenerateCities when every city coincides;
//   - the Config.Validate causes;
//   - geometry errors (non-finite coordinates).
func New(cities []geom.Point, cfg Config, opts ...Option) (*Solver, error) {
	if len(cities) < 2 {
		return nil, configErrorf(ErrTooFewCities, "got %d", len(cities))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if geom.AllCoincident(cities) {
		return nil, configErrorf(ErrDegenerateCities, "%d cities at %v", len(cities), cities[0])
	}

	dist, err := geom.BuildDistanceMatrix(cities)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	n := len(cities)
	field, err := NewField(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	s := &Solver{
		cfg:     cfg,
		cities:  append([]geom.Point(nil), cities...),
		dist:    dist,
		field:   field,
		tours:   make([]Tour, cfg.Ants),
		lengths: make([]float64, cfg.Ants),
		state:   newState(),
		logger:  discardLogger(),
		runID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.streams = newAntStreams(cfg.Seed, s.rng, cfg.Ants)
	for i := range s.tours {
		s.tours[i] = make(Tour, n)
	}
	s.builders = make([]*Constructor, cfg.workers())
	for w := range s.builders {
		// Shapes were validated above; NewConstructor cannot fail here.
		s.builders[w], _ = NewConstructor(field, dist, cfg.Alpha, cfg.Beta)
	}
	s.started = time.Now()

	s.logger.Debug("colony initialized",
		"run_id", s.runID, "cities", n, "ants", cfg.Ants,
		"alpha", cfg.Alpha, "beta", cfg.Beta,
		"rho", cfg.EvaporationRate, "q", cfg.DepositConstant,
		"workers", len(s.builders))

	return s, nil
}

// Step advances the solver by exactly one iteration:
//
//  1. every ant builds a tour and measures it with the cached distances;
//  2. best-ever is replaced on strict improvement, scanning ants in index
//     order (earliest tour wins ties);
//  3. the first shortest tour of the iteration becomes the iteration best;
//  4. the field evaporates once;
//  5. every ant deposits Q/L on its own tour;
//  6. the iteration counter increments.
//
// Step cannot fail: all validation happened in New.
func (s *Solver) Step() IterationResult {
	index := s.state.Iteration

	// Construction phase: the field and distances are read-only here.
	s.construct()

	// Reduction in ant order; equivalent to comparing right after each ant.
	var (
		improved = false
		iterBest = 0
	)
	for a := range s.tours {
		if s.lengths[a] < s.state.BestEverDistance {
			s.state.BestEverDistance = s.lengths[a]
			s.state.BestEverTour = s.tours[a].Clone()
			s.state.BestEverIteration = index
			improved = true
		}
		if s.lengths[a] < s.lengths[iterBest] {
			iterBest = a
		}
	}
	s.state.IterationTour = s.tours[iterBest].Clone()
	s.state.IterationDistance = s.lengths[iterBest]

	// Update phase: evaporate once, then every ant deposits on the same field.
	_ = s.field.Evaporate(s.cfg.EvaporationRate) // rate validated in New
	for a, t := range s.tours {
		if s.lengths[a] > 0 {
			s.field.deposit(t, s.cfg.DepositConstant/s.lengths[a])
		}
	}

	s.state.Iteration++

	res := IterationResult{
		Index:             index,
		BestEverTour:      s.state.BestEverTour.Clone(),
		BestEverDistance:  s.state.BestEverDistance,
		IterationTour:     s.state.IterationTour.Clone(),
		IterationDistance: s.state.IterationDistance,
		Improved:          improved,
	}

	s.logger.Debug("iteration complete",
		"iteration", index,
		"iteration_best", res.IterationDistance,
		"best_ever", res.BestEverDistance)
	if improved {
		s.logger.Info("new best tour",
			"run_id", s.runID, "iteration", index, "distance", res.BestEverDistance)
	}
	for _, o := range s.observers {
		o.OnIteration(res)
	}

	return res
}

// construct fills s.tours and s.lengths for every ant.
// With several builders, ant a is handled by builder a % workers; each
// builder owns its scratch buffers and every ant owns its random stream.
func (s *Solver) construct() {
	s.streams.reseed()

	workers := len(s.builders)
	if workers == 1 {
		s.constructRange(s.builders[0], 0, 1)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		b, first := s.builders[w], w
		g.Go(func() error {
			s.constructRange(b, first, workers)
			return nil
		})
	}
	// Workers never return an error; Wait is the phase barrier.
	_ = g.Wait()
}

// constructRange builds tours for ants first, first+stride, ... .
func (s *Solver) constructRange(b *Constructor, first, stride int) {
	for a := first; a < len(s.tours); a += stride {
		s.tours[a] = b.ConstructInto(s.tours[a], s.streams.ants[a])
		s.lengths[a] = s.tours[a].Length(s.dist)
	}
}

// Run calls Step until iterations steps have completed or ctx is done.
//
// Behavior highlights:
//   - iterations ≤ 0 means no limit; only ctx ends the run.
//   - Cancellation is observed between iterations; an iteration in flight
//     always completes.
//   - Returns the last IterationResult, and ctx.Err() when stopped early.
//
// Complexity: O(iterations · ants · n²).
func (s *Solver) Run(ctx context.Context, iterations int) (IterationResult, error) {
	var last IterationResult
	for done := 0; iterations <= 0 || done < iterations; done++ {
		if err := ctx.Err(); err != nil {
			return last, err
		}
		last = s.Step()
	}

	return last, nil
}

// Snapshot returns a deep copy of the current state. It has no side effects
// and may be called at any time between Steps.
func (s *Solver) Snapshot() State {
	return s.state.clone()
}

// Stats returns the end-of-run summary.
func (s *Solver) Stats() Stats {
	fallbacks := 0
	for _, b := range s.builders {
		fallbacks += b.Fallbacks()
	}

	return Stats{
		RunID:         s.runID,
		Cities:        len(s.cities),
		Config:        s.cfg,
		Iterations:    s.state.Iteration,
		BestDistance:  s.state.BestEverDistance,
		BestTour:      s.state.BestEverTour.Clone(),
		BestIteration: s.state.BestEverIteration,
		Fallbacks:     fallbacks,
		Elapsed:       time.Since(s.started),
	}
}

// Config returns the configuration the solver was built with.
func (s *Solver) Config() Config { return s.cfg }

// Cities returns a copy of the city set.
func (s *Solver) Cities() []geom.Point {
	return append([]geom.Point(nil), s.cities...)
}

// Distances returns a copy of the cached distance matrix.
func (s *Solver) Distances() *matrix.Dense { return s.dist.Clone() }

// Pheromone returns a copy of the current trail matrix.
func (s *Solver) Pheromone() *matrix.Dense { return s.field.Matrix() }

// RunID returns the identifier attached to logs and stats.
func (s *Solver) RunID() string { return s.runID }
