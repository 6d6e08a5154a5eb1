package aco_test

import (
	"fmt"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/geom"
)

// ExampleSolver solves the 10×10 square: the best tour is its perimeter.
func ExampleSolver() {
	cities := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}

	cfg := aco.DefaultConfig()
	cfg.Ants = 10
	cfg.Seed = 42

	s, err := aco.New(cities, cfg)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 200; i++ {
		s.Step()
	}

	st := s.Snapshot()
	fmt.Printf("iterations: %d\n", st.Iteration)
	fmt.Printf("best: %.2f %v\n", st.BestEverDistance, st.BestEverTour.Canonical())
	// Output:
	// iterations: 200
	// best: 40.00 [0 1 2 3]
}

// ExampleField_Deposit shows the per-edge increment Q/L.
func ExampleField_Deposit() {
	f, _ := aco.NewField(3)
	_ = f.Evaporate(1)
	_ = f.Deposit(aco.Tour{0, 1, 2}, 30, 100)

	v, _ := f.At(2, 0)
	fmt.Printf("%.3f\n", v)
	// Output:
	// 3.333
}
