// Package antcolony is an ant colony optimization solver for the symmetric
// Euclidean travelling salesman problem, with a headless CLI and a live
// terminal viewer.
//
// A colony of ants repeatedly builds closed tours through a fixed set of
// planar cities. Each ant walks city by city, choosing the next one with
// probability proportional to τ^α·(1/d)^β, where τ is the pheromone on the
// edge and d its length. After every iteration the trails evaporate by a
// factor 1−ρ and each ant lays Q/L on the edges of its tour, so short tours
// reinforce themselves over time.
//
// Packages:
//
//	aco/       - Field (pheromone), Constructor (tour building), Solver
//	             (iteration controller), 2-opt polishing
//	geom/      - points, distance matrix, random city generator
//	matrix/    - dense float64 matrix used for distances and pheromone
//	config/    - YAML run configuration with validation
//	logging/   - slog-based structured logger
//	metrics/   - Prometheus observer for solver progress
//	report/    - start-up banner and results table
//	render/    - two-panel terminal viewer (tcell)
//	cmd/antcolony - the `run`, `view` and `version` commands
//
// Quick example, a 10×10 square:
//
//	(0,10)───(10,10)
//	  │          │
//	(0,0) ───(10,0)
//
//	s, _ := aco.New(cities, aco.DefaultConfig())
//	_, _ = s.Run(ctx, 200)
//	fmt.Println(s.Snapshot().BestEverDistance) // 40
//
//	go install github.com/katalvlaran/antcolony/cmd/antcolony@latest
package antcolony
