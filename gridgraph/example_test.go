// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridastar/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Regions demonstrates how to identify contiguous regions
// of free cells in a floor plan.
// Scenario:
//
//   - Grid values: 0 = floor, 1 = wall
//   - Conn8: diagonal moves allowed
//   - A full wall column splits the plan into a west and an east region.
//
// Complexity: O(R·C·8), Memory: O(R·C)
func ExampleGridGraph_Regions() {
	grid := [][]int{
		{0, 0, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)

	regions := gg.Regions()
	fmt.Println("regions:", len(regions))
	for i, region := range regions {
		fmt.Printf("region %d:", i)
		for _, p := range region {
			fmt.Printf(" %v", p)
		}
		fmt.Println()
	}

	// Output:
	// regions: 2
	// region 0: (0,0) (0,1) (1,0) (2,0) (2,1)
	// region 1: (0,3) (1,3) (2,3)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Neighbors
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Neighbors lists the passable neighbors of a cell in the
// fixed order searches try them: orthogonal moves first, then diagonals.
func ExampleGridGraph_Neighbors() {
	grid := [][]int{
		{0, 1, 0},
		{0, 0, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn8)

	fmt.Println(gg.Neighbors(gridgraph.Pos(0, 0)))
	// Output: [(1,0) (1,1)]
}
