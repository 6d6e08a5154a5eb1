package aco

import "math"

// Config holds the colony parameters. It is fixed for the lifetime of a Solver.
type Config struct {
	// Ants is the number of tours built per iteration (>= 1).
	Ants int `yaml:"ants"`

	// Alpha weights pheromone intensity (>= 0).
	Alpha float64 `yaml:"alpha"`

	// Beta weights proximity, i.e. inverse distance (>= 0).
	Beta float64 `yaml:"beta"`

	// EvaporationRate is ρ ∈ [0,1]; every cell is multiplied by 1−ρ once per iteration.
	EvaporationRate float64 `yaml:"evaporation_rate"`

	// DepositConstant is Q > 0; each ant adds Q/L to the edges of its tour.
	DepositConstant float64 `yaml:"deposit_constant"`

	// Seed drives the solver's random source. 0 selects a fixed default stream.
	Seed int64 `yaml:"seed"`

	// Workers bounds parallel tour construction. 0 and 1 both mean sequential.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the classic parameter set:
// 20 ants, α=1, β=2, ρ=0.5, Q=100, sequential construction.
func DefaultConfig() Config {
	return Config{
		Ants:            20,
		Alpha:           1.0,
		Beta:            2.0,
		EvaporationRate: 0.5,
		DepositConstant: 100,
		Seed:            0,
		Workers:         1,
	}
}

// Validate checks every numeric field against its range. The returned error
// matches ErrConfiguration and the specific cause.
func (c Config) Validate() error {
	if c.Ants < 1 {
		return configErrorf(ErrInvalidAnts, "got %d", c.Ants)
	}
	if !finiteNonNegative(c.Alpha) {
		return configErrorf(ErrInvalidAlpha, "got %g", c.Alpha)
	}
	if !finiteNonNegative(c.Beta) {
		return configErrorf(ErrInvalidBeta, "got %g", c.Beta)
	}
	if math.IsNaN(c.EvaporationRate) || c.EvaporationRate < 0 || c.EvaporationRate > 1 {
		return configErrorf(ErrInvalidEvaporation, "got %g", c.EvaporationRate)
	}
	if math.IsNaN(c.DepositConstant) || math.IsInf(c.DepositConstant, 0) || c.DepositConstant <= 0 {
		return configErrorf(ErrInvalidDeposit, "got %g", c.DepositConstant)
	}
	if c.Workers < 0 {
		return configErrorf(ErrInvalidWorkers, "got %d", c.Workers)
	}

	return nil
}

// workers returns the effective parallelism, never more than the ant count.
func (c Config) workers() int {
	w := c.Workers
	if w < 1 {
		w = 1
	}
	if w > c.Ants {
		w = c.Ants
	}

	return w
}

func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
