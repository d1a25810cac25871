package aco_test

import (
	"fmt"

	"github.com/katalvlaran/acotsp/aco"
	"github.com/katalvlaran/acotsp/core"
)

// ExampleEngine_Run optimizes a small symmetric instance with the default
// parameters. The fixed seed and single worker make the run reproducible.
func ExampleEngine_Run() {
	g, err := core.NewGraphFromMatrix([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		fmt.Println("graph:", err)
		return
	}

	opts := aco.DefaultOptions()
	opts.NumAnts = 10
	opts.MaxIterations = 30

	engine, err := aco.NewEngine(g, opts)
	if err != nil {
		fmt.Println("engine:", err)
		return
	}
	res, err := engine.Run()
	if err != nil {
		fmt.Println("run:", err)
		return
	}

	fmt.Println("outcome:", res.Outcome)
	fmt.Println("iterations:", res.Iterations)
	fmt.Println("best length:", res.BestLength)
	// Output:
	// outcome: exhausted
	// iterations: 30
	// best length: 80
}
