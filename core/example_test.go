package core_test

import (
	"fmt"

	"github.com/katalvlaran/acotsp/core"
)

// ExampleNewGraphFromMatrix builds a 4-city instance and measures one cycle.
func ExampleNewGraphFromMatrix() {
	g, err := core.NewGraphFromMatrix([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	tour, err := core.NewTour(g, []int{0, 1, 2, 3})
	if err != nil {
		fmt.Println("tour:", err)
		return
	}

	fmt.Println("cities:", g.Size())
	fmt.Println("cycle:", tour.Path())
	fmt.Println("length:", tour.Length())
	// Output:
	// cities: 4
	// cycle: [0 1 2 3 0]
	// length: 95
}
