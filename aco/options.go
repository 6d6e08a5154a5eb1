package aco

import (
	"io"
	"log/slog"
	"math/rand"
)

// Observer receives every completed iteration, synchronously, after the
// pheromone update. Implementations must not retain the tour slices beyond
// the call unless they copy them.
type Observer interface {
	OnIteration(res IterationResult)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(res IterationResult)

// OnIteration calls f(res).
func (f ObserverFunc) OnIteration(res IterationResult) { f(res) }

// Option customizes a Solver at construction time.
type Option func(*Solver)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver appends an iteration observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(s *Solver) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithRand injects the solver's base random source, overriding Config.Seed.
// The Solver takes ownership: rng must not be used elsewhere.
func WithRand(rng *rand.Rand) Option {
	return func(s *Solver) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithRunID overrides the generated run identifier.
func WithRunID(id string) Option {
	return func(s *Solver) {
		if id != "" {
			s.runID = id
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
