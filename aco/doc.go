// Package aco implements an Ant Colony Optimization solver for the
// symmetric Euclidean Travelling Salesman Problem.
//
// A colony of ants repeatedly builds Hamiltonian cycles over a fixed city
// set. Each ant picks its next city by roulette-wheel sampling over
//
//	τ[cur][c]^α · (1/d[cur][c])^β
//
// where τ is the shared pheromone field and d the cached distance matrix.
// After every ant has finished, the field evaporates once (τ ← (1−ρ)·τ) and
// each ant deposits Q/L on every edge of its tour, wrap-around included.
//
// Entry points:
//
//   - New(cities, cfg, opts...) validates the configuration and builds the
//     distance matrix and a pheromone field initialized to 1.0.
//   - (*Solver).Step advances exactly one iteration and returns the
//     best-ever and best-of-iteration tours.
//   - (*Solver).Snapshot returns a read-only copy of the solver state for a
//     presentation layer; it has no side effects.
//   - (*Solver).Run steps until an iteration budget is spent or ctx is done.
//
// Determinism: all randomness flows from one seeded *rand.Rand owned by the
// Solver (Config.Seed, or WithRand). Per-ant streams are derived from it
// sequentially before construction starts, so results are identical for any
// Config.Workers value.
//
// Concurrency: a Solver is not safe for concurrent use. With Workers > 1 the
// ants of one iteration are built in parallel against a field that is not
// written until every construction has returned.
//
// Errors: configuration problems are reported once by New and match
// ErrConfiguration via errors.Is; Step never fails.
package aco
