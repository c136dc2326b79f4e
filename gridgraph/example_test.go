package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/gridgraph"
)

// ExampleGridGraph_ConnectedComponents lists the open clusters of a 3×3 grid.
//
//	. . #
//	# # .
//	. # .
func ExampleGridGraph_ConnectedComponents() {
	mask := []bool{
		true, true, false,
		false, false, true,
		true, false, true,
	}
	gg, _ := gridgraph.FromMask(3, mask)

	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}
	fmt.Println("percolates:", gg.Percolates())

	// Output:
	// component 0: (0,0) (1,0)
	// component 1: (2,1) (2,2)
	// component 2: (0,2)
	// percolates: false
}

// ExampleGridGraph_MinOpenToPercolate shows how many blocked sites still
// separate the top from the bottom.
func ExampleGridGraph_MinOpenToPercolate() {
	mask := []bool{
		true, true, false,
		false, false, true,
		true, false, true,
	}
	gg, _ := gridgraph.FromMask(3, mask)

	_, cost := gg.MinOpenToPercolate()
	fmt.Println("sites to open:", cost)

	// Output:
	// sites to open: 1
}
